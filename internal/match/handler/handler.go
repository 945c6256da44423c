// Package handler provides HTTP handlers for match endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	matchModel "github.com/matchday/matchday/internal/match/model"
	"github.com/matchday/matchday/internal/match/service"
)

// Handler handles HTTP requests for match endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new match handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateMatch handles POST /match/create request.
func (h *Handler) CreateMatch(c *gin.Context) {
	var req matchModel.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, matchModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		if errors.Is(err, matchModel.ErrInvalidOpponent) {
			errorResponse(c, "INVALID_REQUEST", "opponent is required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, matchModel.ErrInvalidDate) {
			errorResponse(c, "INVALID_DATE", "date must be yyyy-mm-dd or dd.mm.yyyy", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating match", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, map[string]interface{}{
		"match": resp,
	})
}

// ListMatches handles GET /match/list request.
func (h *Handler) ListMatches(c *gin.Context) {
	teamSlug := c.Query("team")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "team parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ListMatches(c.Request.Context(), teamSlug)
	if err != nil {
		if errors.Is(err, matchModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error listing matches", "team", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangeDate handles POST /match/changeDate request.
func (h *Handler) ChangeDate(c *gin.Context) {
	var req matchModel.ChangeDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ChangeDate(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error changing match date", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetAvailability handles POST /match/availability/set request.
func (h *Handler) SetAvailability(c *gin.Context) {
	var req matchModel.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SetAvailability(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error setting availability", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AddPrediction handles POST /match/prediction/add request.
func (h *Handler) AddPrediction(c *gin.Context) {
	var req matchModel.AddPredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddPrediction(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error adding prediction", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemovePrediction handles POST /match/prediction/remove request.
func (h *Handler) RemovePrediction(c *gin.Context) {
	var req matchModel.RemovePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RemovePrediction(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, "error removing prediction", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChoosePredictedDate handles POST /match/prediction/choose request.
func (h *Handler) ChoosePredictedDate(c *gin.Context) {
	var req matchModel.ChoosePredictedDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ChoosePredictedDate(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, matchModel.ErrNoPredictionForDate) {
			errorResponse(c, "NO_PREDICTION", "no prediction exists for the chosen date", http.StatusBadRequest)
			return
		}
		h.writeError(c, "error choosing predicted date", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// writeError maps shared service errors to HTTP responses.
func (h *Handler) writeError(c *gin.Context, logMsg string, err error) {
	switch {
	case errors.Is(err, matchModel.ErrMatchNotFound):
		notFoundResponse(c, "match not found")
	case errors.Is(err, matchModel.ErrTeamNotFound):
		notFoundResponse(c, "team not found")
	case errors.Is(err, matchModel.ErrMemberNotInTeam):
		errorResponse(c, "MEMBER_NOT_IN_TEAM", "member does not belong to the team", http.StatusForbidden)
	case errors.Is(err, matchModel.ErrInvalidDate):
		errorResponse(c, "INVALID_DATE", "date must be yyyy-mm-dd or dd.mm.yyyy", http.StatusBadRequest)
	case errors.Is(err, matchModel.ErrInvalidAvailability):
		errorResponse(c, "INVALID_AVAILABILITY", "availability must be available, not_available or maybe", http.StatusBadRequest)
	default:
		h.logger.Errorw(logMsg, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
	}
}
