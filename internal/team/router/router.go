// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/matchday/matchday/internal/team/handler"
	"github.com/matchday/matchday/internal/team/repository"
	"github.com/matchday/matchday/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger, publisher service.Publisher, baseURL string) {
	repo := repository.New(db, logger)
	svc := service.New(repo, db, logger, publisher, baseURL)
	h := handler.New(svc, logger)

	r.POST("/team/add", h.AddTeam)
	r.GET("/team/get", h.GetTeam)
	r.POST("/team/join", h.JoinTeam)
	r.GET("/team/invite/qr", h.InviteQR)
}
