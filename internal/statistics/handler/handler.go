// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	statsModel "github.com/matchday/matchday/internal/statistics/model"
	"github.com/matchday/matchday/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetMemberStatistics handles GET /statistics/members request.
func (h *Handler) GetMemberStatistics(c *gin.Context) {
	teamSlug := c.Query("team")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "team parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetMemberStatistics(c.Request.Context(), teamSlug)
	if err != nil {
		if errors.Is(err, statsModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting member statistics", "team", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMatchStatistics handles GET /statistics/matches request.
func (h *Handler) GetMatchStatistics(c *gin.Context) {
	teamSlug := c.Query("team")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "team parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetMatchStatistics(c.Request.Context(), teamSlug)
	if err != nil {
		if errors.Is(err, statsModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting match statistics", "team", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
