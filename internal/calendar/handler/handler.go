// Package handler provides HTTP handlers for calendar import endpoints.
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	calendarModel "github.com/matchday/matchday/internal/calendar/model"
	"github.com/matchday/matchday/internal/calendar/service"
)

// Handler handles HTTP requests for calendar import endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new calendar import handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Import handles POST /calendar/import request. The calendar can arrive
// either as a multipart upload under the "file" field or as the raw
// request body.
func (h *Handler) Import(c *gin.Context) {
	teamSlug := c.Query("team")
	if teamSlug == "" {
		errorResponse(c, "INVALID_REQUEST", "team parameter is required", http.StatusBadRequest)
		return
	}

	body, err := h.calendarBody(c)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "calendar file is required", http.StatusBadRequest)
		return
	}
	defer body.Close()

	resp, err := h.service.Import(c.Request.Context(), teamSlug, body)
	if err != nil {
		if errors.Is(err, calendarModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		if errors.Is(err, calendarModel.ErrEmptyCalendar) {
			errorResponse(c, "EMPTY_CALENDAR", "calendar contains no events", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error importing calendar", "team", teamSlug, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) calendarBody(c *gin.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err == nil {
		return file.Open()
	}
	if c.Request.Body == nil {
		return nil, http.ErrMissingFile
	}
	return c.Request.Body, nil
}
