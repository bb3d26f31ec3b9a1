// Package http provides the gin handlers for realtor profiles.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/leadlink/internal/httputil"
	"github.com/allisson/leadlink/internal/realtor/http/dto"
	realtorUseCase "github.com/allisson/leadlink/internal/realtor/usecase"
	customValidation "github.com/allisson/leadlink/internal/validation"
)

// RealtorHandler handles realtor profile requests.
type RealtorHandler struct {
	realtorUseCase realtorUseCase.RealtorUseCase
	logger         *slog.Logger
}

// NewRealtorHandler creates a new realtor handler.
func NewRealtorHandler(realtorUseCase realtorUseCase.RealtorUseCase, logger *slog.Logger) *RealtorHandler {
	return &RealtorHandler{
		realtorUseCase: realtorUseCase,
		logger:         logger,
	}
}

// CreateHandler registers a realtor.
// POST /v1/realtors - Returns 201 Created.
func (h *RealtorHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateRealtorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	realtor, err := h.realtorUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRealtorToResponse(realtor))
}

// GetHandler returns a realtor profile.
// GET /v1/realtors/:id - Returns 200 OK.
func (h *RealtorHandler) GetHandler(c *gin.Context) {
	realtor, err := h.realtorUseCase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRealtorToResponse(realtor))
}

// UpdateCustomizationHandler replaces the realtor's public form customization.
// PUT /v1/realtors/:id/customization - Returns 200 OK with the updated realtor.
func (h *RealtorHandler) UpdateCustomizationHandler(c *gin.Context) {
	var req dto.UpdateCustomizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	realtor, err := h.realtorUseCase.UpdateCustomization(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRealtorToResponse(realtor))
}
