// Package dto defines request and response shapes for the v1 API.
package dto

// IDResponse is returned by create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// SuccessResponse is returned by operations without a payload.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
