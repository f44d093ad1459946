package routes

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/handler"
	"URL_Ping_Monitor/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddEventRoutes(r *gin.Engine, handler handler.EventHandler, m middleware.AuthMiddleware) {
	r.GET("/events", m.RequireToken(), handler.StreamEvents())
	r.GET("/healthz", handler.Health())
}
