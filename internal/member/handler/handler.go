// Package handler provides HTTP handlers for member endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matchday/matchday/internal/member/model"
	"github.com/matchday/matchday/internal/member/service"
)

// ErrorResponse represents the error response structure.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// Handler handles HTTP requests for member endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new member handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddMember handles POST /member/add request.
func (h *Handler) AddMember(c *gin.Context) {
	var req model.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddMember(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, model.ErrInvalidMemberName) {
			errorResponse(c, "INVALID_REQUEST", "name is required", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error adding member", "team_slug", req.TeamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"member": resp,
	})
}

// ListMembers handles GET /member/list request.
func (h *Handler) ListMembers(c *gin.Context) {
	teamSlug := c.Query("team_slug")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "team_slug parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListMembers(c.Request.Context(), teamSlug)
	if err != nil {
		if errors.Is(err, model.ErrTeamNotFound) {
			errorResponse(c, "NOT_FOUND", "team not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error listing members", "team_slug", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetIsActive handles POST /member/setIsActive request.
func (h *Handler) SetIsActive(c *gin.Context) {
	var req model.SetIsActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SetIsActive(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			errorResponse(c, "NOT_FOUND", "member not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("error updating member activity", "member_id", req.MemberID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, map[string]interface{}{
		"member": resp,
	})
}
