// Package http provides the gin handlers for lead intake and listing.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/leadlink/internal/httputil"
	"github.com/allisson/leadlink/internal/lead/http/dto"
	leadUseCase "github.com/allisson/leadlink/internal/lead/usecase"
	sharelinkDTO "github.com/allisson/leadlink/internal/sharelink/http/dto"
)

// LeadHandler handles lead requests.
type LeadHandler struct {
	leadUseCase leadUseCase.LeadUseCase
	logger      *slog.Logger
}

// NewLeadHandler creates a new lead handler.
func NewLeadHandler(leadUseCase leadUseCase.LeadUseCase, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		leadUseCase: leadUseCase,
		logger:      logger,
	}
}

// SubmitHandler accepts a public form submission for the token in the query.
// POST /v1/public/leads?token=... - Returns 201 Created.
func (h *LeadHandler) SubmitHandler(c *gin.Context) {
	var query sharelinkDTO.PublicFormQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	var req dto.SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	lead, err := h.leadUseCase.Submit(c.Request.Context(), query.Token, query.IsPreview(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("lead captured",
		slog.String("lead_id", lead.ID.String()),
		slog.String("realtor_id", lead.RealtorID),
		slog.Bool("is_duplicate", lead.IsDuplicate),
	)

	c.JSON(http.StatusCreated, dto.MapSubmitLeadToResponse(lead))
}

// ListHandler returns a page of the realtor's leads.
// GET /v1/realtors/:id/leads?offset=0&limit=25 - Returns 200 OK.
func (h *LeadHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	leads, err := h.leadUseCase.ListByRealtor(c.Request.Context(), c.Param("id"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLeadsToListResponse(leads, offset, limit))
}
