// Package router provides match module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/match/handler"
	"github.com/matchday/matchday/internal/match/repository"
	"github.com/matchday/matchday/internal/match/service"
	"github.com/matchday/matchday/internal/readiness"
)

// RegisterRoutes registers match module routes.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	logger *zap.SugaredLogger,
	publisher service.Publisher,
	clock service.Clock,
	cfg readiness.Config,
) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger, publisher, clock, cfg)
	h := handler.New(svc, logger)

	r.POST("/match/create", h.CreateMatch)
	r.GET("/match/list", h.ListMatches)
	r.POST("/match/changeDate", h.ChangeDate)
	r.POST("/match/availability/set", h.SetAvailability)
	r.POST("/match/prediction/add", h.AddPrediction)
	r.POST("/match/prediction/remove", h.RemovePrediction)
	r.POST("/match/prediction/choose", h.ChoosePredictedDate)
}
