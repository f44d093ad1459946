package handler

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/dto/request"
	"URL_Ping_Monitor/internal/ping-monitor/control"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ControlHandler interface {
	HandleControlRequest() gin.HandlerFunc
}

type controlHandler struct {
	logger     Logger
	dispatcher control.Dispatcher
}

// HandleControlRequest answers every well-formed request with exactly one control.Response.
func (h *controlHandler) HandleControlRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.ControlRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, control.Response{
				Error: "Invalid request body",
			})
			return
		}
		res := h.dispatcher.Dispatch(c, control.Request{
			Action:   req.Action,
			Interval: req.Interval,
			URL:      req.URL,
		})
		if res.Error != "" {
			h.logger.LoggingError(c, errors.New(res.Error), "control request rejected", zap.WarnLevel)
		}
		c.JSON(http.StatusOK, res)
	}
}

func NewControlHandler(logger Logger, dispatcher control.Dispatcher) ControlHandler {
	return &controlHandler{
		logger:     logger,
		dispatcher: dispatcher,
	}
}
