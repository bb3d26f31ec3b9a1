// Package http provides the gin handlers for share links and the public form.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/leadlink/internal/httputil"
	"github.com/allisson/leadlink/internal/sharelink/http/dto"
	sharelinkUseCase "github.com/allisson/leadlink/internal/sharelink/usecase"
)

// ShareLinkHandler handles the realtor facing share link endpoints.
type ShareLinkHandler struct {
	shareLinkUseCase sharelinkUseCase.ShareLinkUseCase
	logger           *slog.Logger
}

// NewShareLinkHandler creates a new share link handler.
func NewShareLinkHandler(shareLinkUseCase sharelinkUseCase.ShareLinkUseCase, logger *slog.Logger) *ShareLinkHandler {
	return &ShareLinkHandler{
		shareLinkUseCase: shareLinkUseCase,
		logger:           logger,
	}
}

// GetHandler returns the realtor's share link, issuing one on first use.
// GET /v1/realtors/:id/share-link - Returns 200 OK.
func (h *ShareLinkHandler) GetHandler(c *gin.Context) {
	link, err := h.shareLinkUseCase.GetOrCreate(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapShareLinkToResponse(link))
}

// RegenerateHandler replaces the realtor's token.
// POST /v1/realtors/:id/share-link/regenerate - Returns 201 Created.
func (h *ShareLinkHandler) RegenerateHandler(c *gin.Context) {
	link, err := h.shareLinkUseCase.Regenerate(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapShareLinkToResponse(link))
}

// KitHandler returns the share link with social posts, email and SMS templates.
// GET /v1/realtors/:id/share-link/kit - Returns 200 OK.
func (h *ShareLinkHandler) KitHandler(c *gin.Context) {
	kit, err := h.shareLinkUseCase.ShareKit(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapShareKitToResponse(kit))
}

// ResolveHandler returns the branding a public form needs for the token in the query.
// GET /v1/public/forms?token=...&preview=true - Returns 200 OK.
func (h *ShareLinkHandler) ResolveHandler(c *gin.Context) {
	var query dto.PublicFormQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	resolution, err := h.shareLinkUseCase.Resolve(c.Request.Context(), query.Token, query.IsPreview())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResolutionToResponse(resolution))
}
