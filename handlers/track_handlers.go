package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"spleux/api/models"
	"spleux/api/store"
	"spleux/api/utils"
)

type AnalyticsHandlers struct {
	AnalyticsStore *store.AnalyticsStore
	Log            *zap.Logger
}

func NewAnalyticsHandlers(s *store.AnalyticsStore, log *zap.Logger) *AnalyticsHandlers {
	return &AnalyticsHandlers{
		AnalyticsStore: s,
		Log:            log,
	}
}

// TrackEvent ingests one analytics event from the public tracking
// script. The body is untrusted and unauthenticated; losing an event is
// acceptable, so the client treats this as fire-and-forget either way.
func (h *AnalyticsHandlers) TrackEvent(c *gin.Context) {
	var event models.AnalyticsEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	deviceType := utils.ClassifyDevice(event.Data.UserAgent)
	if _, err := h.AnalyticsStore.Append(event, deviceType); err != nil {
		h.Log.Error("failed to record analytics event", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to track event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetStats recomputes the full rollup from the event log on every call.
// The log is capped, so the recompute stays cheap enough to skip caching.
func (h *AnalyticsHandlers) GetStats(c *gin.Context) {
	events := h.AnalyticsStore.Load()
	stats := store.ComputeStats(events, time.Now())
	c.JSON(http.StatusOK, stats)
}
