package routes

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/handler"
	"URL_Ping_Monitor/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddControlRoutes(r *gin.Engine, handler handler.ControlHandler, m middleware.AuthMiddleware) {
	r.POST("/control", m.RequireToken(), handler.HandleControlRequest())
}
