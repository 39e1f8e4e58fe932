package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/healthshare/backend/internal/interfaces/http/dto"
)

// CorpusCounter reports the size of the whole text corpus.
type CorpusCounter interface {
	TotalRecords(ctx context.Context) (int64, error)
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	counter   CorpusCounter
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(counter CorpusCounter) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		counter:   counter,
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name         string `json:"name" example:"HealthShare Analytics API"`
	Version      string `json:"version" example:"1.0.0"`
	GoVersion    string `json:"go_version" example:"go1.25.5"`
	Uptime       string `json:"uptime" example:"1h30m45s"`
	TotalRecords int64  `json:"total_records" example:"24000"`
}

// GetSystemInfo godoc
// @ID           getSystemSystemInfo
// @Summary      Get system information
// @Description  Returns basic system information including version, uptime and corpus size
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      500 {object} dto.Response
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	total, err := h.counter.TotalRecords(c.Request.Context())
	if err != nil {
		h.InternalError(c, "failed to count records")
		return
	}

	info := SystemInfoResponse{
		Name:         "HealthShare Analytics API",
		Version:      "1.0.0",
		GoVersion:    runtime.Version(),
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		TotalRecords: total,
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message" example:"pong"`
	Timestamp string `json:"timestamp" example:"2026-01-23T12:00:00Z"`
}

// Ping godoc
// @ID           pingSystem
// @Summary      Ping the API
// @Description  Simple ping endpoint to check if the API is responsive
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response
// @Router       /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	response := PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}
