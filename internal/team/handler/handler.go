// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/matchday/matchday/internal/team/model"
	"github.com/matchday/matchday/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddTeam handles POST /team/add request.
func (h *Handler) AddTeam(c *gin.Context) {
	var req teamModel.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvalidTeamName) {
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrInvalidPlayersNeeded) {
			errorResponse(c, "INVALID_REQUEST", "players_needed must be a positive integer", http.StatusBadRequest)
			return
		}
		if errors.Is(err, teamModel.ErrTeamExists) {
			errorResponse(c, "TEAM_EXISTS", "team slug already exists", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding team", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"team": resp,
	})
}

// GetTeam handles GET /team/get request.
func (h *Handler) GetTeam(c *gin.Context) {
	teamSlug := c.Query("slug")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "slug parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), teamSlug)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "slug", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// JoinTeam handles POST /team/join request.
func (h *Handler) JoinTeam(c *gin.Context) {
	var req teamModel.JoinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.JoinTeam(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		if errors.Is(err, teamModel.ErrInvalidAccessCode) {
			errorResponse(c, "INVALID_ACCESS_CODE", "access code does not match", http.StatusForbidden)
			return
		}
		if errors.Is(err, teamModel.ErrInvalidMemberName) {
			errorResponse(c, "INVALID_REQUEST", "member_name is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error joining team", "slug", req.Slug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// InviteQR handles GET /team/invite/qr request.
func (h *Handler) InviteQR(c *gin.Context) {
	teamSlug := c.Query("slug")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "slug parameter is required", http.StatusBadRequest)
		return
	}

	png, err := h.service.InviteQR(c.Request.Context(), teamSlug)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error rendering invite QR", "slug", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
