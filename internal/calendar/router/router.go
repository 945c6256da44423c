// Package router provides calendar import module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/calendar/handler"
	"github.com/matchday/matchday/internal/calendar/repository"
	"github.com/matchday/matchday/internal/calendar/service"
)

// RegisterRoutes registers calendar import module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, publisher service.Publisher) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger, publisher)
	h := handler.New(svc, logger)

	r.POST("/calendar/import", h.Import)
}
