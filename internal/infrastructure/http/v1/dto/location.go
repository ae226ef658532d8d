package dto

import (
	"stallbook/internal/domain/catalogs/location"
)

// LocationRequest is the body of POST /locations.
type LocationRequest struct {
	Name string `json:"name" binding:"required"`
}

// LocationResponse is one market location.
type LocationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToLocationResponses converts a list of domain locations.
func ToLocationResponses(items []*location.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(items))
	for _, l := range items {
		out = append(out, LocationResponse{ID: l.ID.String(), Name: l.Name})
	}
	return out
}
