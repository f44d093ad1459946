package routes

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/handler"
	"URL_Ping_Monitor/pkg/middleware"

	"github.com/gin-gonic/gin"
)

func AddEndpointRoutes(r *gin.Engine, handler handler.EndpointHandler, m middleware.AuthMiddleware) {
	endpointRoutes := r.Group("/urls", m.RequireToken())
	endpointRoutes.GET("", handler.GetEndpoints())
	endpointRoutes.POST("", handler.CreateEndpoint())
	endpointRoutes.PATCH("", handler.UpdateEndpoint())
	endpointRoutes.DELETE("", handler.DeleteEndpoint())
	endpointRoutes.GET("/summary", handler.GetSummary())
	endpointRoutes.GET("/export", handler.ExportEndpointsToExcelFile())
	endpointRoutes.POST("/import", handler.ImportEndpointsFromExcelFile())
	endpointRoutes.POST("/reports", handler.SendSummaryReport())
}
