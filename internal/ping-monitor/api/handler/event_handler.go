package handler

import (
	"URL_Ping_Monitor/internal/ping-monitor/api/dto/response"
	"URL_Ping_Monitor/internal/ping-monitor/publisher"
	"URL_Ping_Monitor/internal/ping-monitor/scheduler"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const keepAliveInterval = 15 * time.Second

type EventSource interface {
	Subscribe() (<-chan publisher.Event, func())
	Subscribers() int
}

type StateReporter interface {
	Snapshot() scheduler.StateSnapshot
}

type EventHandler interface {
	StreamEvents() gin.HandlerFunc
	Health() gin.HandlerFunc
}

type eventHandler struct {
	events EventSource
	state  StateReporter
}

// StreamEvents relays hub events as Server-Sent Events until the client goes away or the hub drops it.
func (h *eventHandler) StreamEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		ch, unsubscribe := h.events.Subscribe()
		defer unsubscribe()

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Status(http.StatusOK)
		c.Writer.Flush()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()
		for {
			select {
			case <-c.Request.Context().Done():
				return
			case event, ok := <-ch:
				if !ok {
					return
				}
				c.SSEvent(event.Name, event.Data)
				c.Writer.Flush()
			case <-keepAlive.C:
				_, _ = c.Writer.WriteString(": keep-alive\n\n")
				c.Writer.Flush()
			}
		}
	}
}

func (h *eventHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := h.state.Snapshot()
		activeURLs := snapshot.ActiveURLs
		if activeURLs == nil {
			activeURLs = []string{}
		}
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:          "ok",
			IntervalSeconds: int(snapshot.Interval / time.Second),
			ActiveURLs:      activeURLs,
			Subscribers:     h.events.Subscribers(),
		})
	}
}

func NewEventHandler(events EventSource, state StateReporter) EventHandler {
	return &eventHandler{
		events: events,
		state:  state,
	}
}
