// Package router provides member module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/member/handler"
	"github.com/matchday/matchday/internal/member/repository"
	"github.com/matchday/matchday/internal/member/service"
)

// RegisterRoutes registers member module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, publisher service.Publisher) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger, publisher)
	h := handler.New(svc, logger)

	r.POST("/member/add", h.AddMember)
	r.GET("/member/list", h.ListMembers)
	r.POST("/member/setIsActive", h.SetIsActive)
}
