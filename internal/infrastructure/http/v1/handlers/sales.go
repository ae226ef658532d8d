package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stallbook/internal/core/apperror"
	"stallbook/internal/domain/reports"
	"stallbook/internal/domain/sales"
	"stallbook/internal/infrastructure/http/v1/dto"
)

// SalesHandler serves batch entry, the daily report, and batch
// delete/replace.
type SalesHandler struct {
	*BaseHandler
	sales   *sales.Service
	reports *reports.Service
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(base *BaseHandler, salesService *sales.Service, reportService *reports.Service) *SalesHandler {
	return &SalesHandler{BaseHandler: base, sales: salesService, reports: reportService}
}

// BulkCreate handles POST /sales/bulk: saves all entered lines as one
// batch, atomically.
func (h *SalesHandler) BulkCreate(c *gin.Context) {
	var req dto.BulkCreateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	recordDate, err := dto.ParseDate(req.Date)
	if err != nil {
		h.Error(c, err)
		return
	}

	batch, err := h.sales.Create(c.Request.Context(), recordDate, req.Location, dto.ToLineInputs(req.Items))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBatchResponse(batch))
}

// Report handles GET /sales/report?date&location: the daily settlement
// view with per-line computed values and batch subtotals.
func (h *SalesHandler) Report(c *gin.Context) {
	dateParam := c.Query("date")
	if dateParam == "" {
		h.Error(c, apperror.NewValidation("date query parameter is required"))
		return
	}

	recordDate, err := dto.ParseDate(dateParam)
	if err != nil {
		h.Error(c, err)
		return
	}

	report, err := h.reports.Daily(c.Request.Context(), recordDate, c.Query("location"))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, report)
}

// DeleteBatch handles DELETE /sales/batch: removes one batch by its exact
// (date, location, created_at) identity.
func (h *SalesHandler) DeleteBatch(c *gin.Context) {
	var req dto.BatchKeyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	recordDate, createdAt, ok := h.parseBatchKey(c, req.Date, req.CreatedAt)
	if !ok {
		return
	}

	if err := h.sales.Delete(c.Request.Context(), recordDate, req.Location, createdAt); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// ReplaceBatch handles PUT /sales/batch: deletes the identified batch and
// inserts its replacement in one transaction.
func (h *SalesHandler) ReplaceBatch(c *gin.Context) {
	var req dto.BatchReplaceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	recordDate, createdAt, ok := h.parseBatchKey(c, req.Date, req.CreatedAt)
	if !ok {
		return
	}

	batch, err := h.sales.Replace(c.Request.Context(), recordDate, req.Location, createdAt, dto.ToLineInputs(req.Items))
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ToBatchResponse(batch))
}

func (h *SalesHandler) parseBatchKey(c *gin.Context, date, createdAt string) (time.Time, time.Time, bool) {
	recordDate, err := dto.ParseDate(date)
	if err != nil {
		h.Error(c, err)
		return time.Time{}, time.Time{}, false
	}

	created, err := dto.ParseCreatedAt(createdAt)
	if err != nil {
		h.Error(c, err)
		return time.Time{}, time.Time{}, false
	}

	return recordDate, created, true
}
