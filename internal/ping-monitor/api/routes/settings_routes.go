package routes

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/handler"
	"URL_Ping_Monitor/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddSettingsRoutes(r *gin.Engine, handler handler.SettingsHandler, m middleware.AuthMiddleware) {
	settingsRoutes := r.Group("/settings", m.RequireToken())
	settingsRoutes.GET("", handler.GetSettings())
	settingsRoutes.PUT("/interval", handler.UpdateInterval())
	settingsRoutes.PUT("/launcher", handler.UpdateLauncher())
	settingsRoutes.PUT("/notifications", handler.UpdateNotificationPermission())
}
