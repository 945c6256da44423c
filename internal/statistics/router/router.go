// Package router provides statistics module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/readiness"
	"github.com/matchday/matchday/internal/statistics/handler"
	"github.com/matchday/matchday/internal/statistics/repository"
	"github.com/matchday/matchday/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	clock service.Clock,
	cfg readiness.Config,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger, clock, cfg)
	h := handler.New(svc, logger)

	r.GET("/statistics/members", h.GetMemberStatistics)
	r.GET("/statistics/matches", h.GetMatchStatistics)
}
