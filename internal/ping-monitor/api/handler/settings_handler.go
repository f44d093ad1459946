package handler

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/dto/request"
	"URL_Ping_Monitor/internal/ping-monitor/api/dto/response"
	apperrors "URL_Ping_Monitor/internal/ping-monitor/errors"
	"URL_Ping_Monitor/internal/ping-monitor/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SettingsHandler interface {
	GetSettings() gin.HandlerFunc
	UpdateInterval() gin.HandlerFunc
	UpdateLauncher() gin.HandlerFunc
	UpdateNotificationPermission() gin.HandlerFunc
}

type settingsHandler struct {
	logger          Logger
	settingsService service.SettingsService
}

func (h *settingsHandler) internalError(c *gin.Context, err error, errDescription string) {
	h.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal server error",
	})
}

func (h *settingsHandler) GetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := h.settingsService.GetSettings(c)
		if err != nil {
			h.internalError(c, fmt.Errorf("SettingsHandler.GetSettings: %w", err), "failed to get settings")
			return
		}
		c.JSON(http.StatusOK, response.SettingsResponse{
			PingInterval:           settings.PingInterval,
			HideLauncher:           settings.HideLauncher,
			NotificationPermission: settings.NotificationPermission,
		})
	}
}

func (h *settingsHandler) UpdateInterval() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.IntervalRequest
		if !bindJSON(c, &req) {
			return
		}
		err := h.settingsService.UpdateInterval(c, *req.Interval)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidInterval) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Interval is below the minimum",
				})
				return
			}
			h.internalError(c, fmt.Errorf("SettingsHandler.UpdateInterval: %w", err), "failed to update interval")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Interval updated",
		})
	}
}

func (h *settingsHandler) UpdateLauncher() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.LauncherRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := h.settingsService.SetHideLauncher(c, *req.HideLauncher); err != nil {
			h.internalError(c, fmt.Errorf("SettingsHandler.UpdateLauncher: %w", err), "failed to update launcher setting")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Launcher setting updated",
		})
	}
}

func (h *settingsHandler) UpdateNotificationPermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.NotificationPermissionRequest
		if !bindJSON(c, &req) {
			return
		}
		err := h.settingsService.SetNotificationPermission(c, req.Permission)
		if err != nil {
			if errors.Is(err, apperrors.ErrInvalidPermission) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid permission",
				})
				return
			}
			h.internalError(c, fmt.Errorf("SettingsHandler.UpdateNotificationPermission: %w", err), "failed to update notification permission")
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Notification permission updated",
		})
	}
}

func NewSettingsHandler(logger Logger, settingsService service.SettingsService) SettingsHandler {
	return &settingsHandler{
		logger:          logger,
		settingsService: settingsService,
	}
}
