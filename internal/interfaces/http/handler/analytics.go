package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/healthshare/backend/internal/application/analytics"
	"github.com/healthshare/backend/internal/domain/emotion"
)

// AnalyticsService is the application-layer surface the handler depends on.
type AnalyticsService interface {
	Distribution(ctx context.Context, filter emotion.Filter) (*analytics.DistributionResult, error)
	Spider(ctx context.Context, filter emotion.Filter) (*analytics.SpiderResult, error)
	Timeline(ctx context.Context, filter emotion.Filter) (*analytics.TimelineResult, error)
	WordCloud(ctx context.Context, filter emotion.Filter) (*analytics.WordCloudResult, error)
	TextsByEmotion(ctx context.Context, target emotion.Emotion, filter emotion.Filter) (*analytics.TextsResult, error)
	DailyVolume(ctx context.Context, filter emotion.Filter) (*analytics.DailyVolumeResult, error)
	TextByID(ctx context.Context, id int64) (*analytics.TextDetail, error)
}

// AnalyticsHandler handles the emotion analytics API endpoints.
//
// Unlike the system endpoints these return their payloads raw, without the
// success envelope, since the response shapes are fixed chart inputs.
type AnalyticsHandler struct {
	BaseHandler
	service AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// bindFilter binds the shared query parameters and normalizes them into a
// domain filter. Normalization is tolerant of malformed optional values, so
// only a binding failure writes an error response and returns false.
func (h *AnalyticsHandler) bindFilter(c *gin.Context) (emotion.Filter, bool) {
	var q analytics.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BadRequest(c, "invalid query parameters: "+err.Error())
		return emotion.Filter{}, false
	}
	return q.Normalize(), true
}

// GetEmotionDistribution godoc
// @Summary      Dominant emotion distribution
// @Description  Returns per-emotion dominant counts with percentages and sample texts
// @Tags         analytics
// @Produce      json
// @Param        sources   query string false "Comma-separated data sources, or All"
// @Param        startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param        endDate   query string false "Inclusive end date (YYYY-MM-DD)"
// @Param        emotions  query string false "Comma-separated emotions, or All"
// @Success      200 {object} analytics.DistributionResult
// @Router       /emotion-distribution [get]
func (h *AnalyticsHandler) GetEmotionDistribution(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.Distribution(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetEmotionSpider godoc
// @Summary      Emotion presence profile
// @Description  Returns dominant and presence counts for every emotion axis
// @Tags         analytics
// @Produce      json
// @Success      200 {object} analytics.SpiderResult
// @Router       /emotion-spider [get]
func (h *AnalyticsHandler) GetEmotionSpider(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.Spider(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetEmotionTimeline godoc
// @Summary      Daily dominant emotion counts
// @Description  Returns a dense per-day series of dominant emotion counts
// @Tags         analytics
// @Produce      json
// @Success      200 {object} analytics.TimelineResult
// @Router       /emotion-timeline [get]
func (h *AnalyticsHandler) GetEmotionTimeline(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.Timeline(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetWordCloudData godoc
// @Summary      Word frequency data
// @Description  Returns the top words with dominant emotion and average scores
// @Tags         analytics
// @Produce      json
// @Success      200 {object} analytics.WordCloudResult
// @Router       /wordcloud-data [get]
func (h *AnalyticsHandler) GetWordCloudData(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.WordCloud(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetEmotionTexts godoc
// @Summary      Texts for one dominant emotion
// @Description  Lists the matching texts classified under the given emotion, newest first
// @Tags         analytics
// @Produce      json
// @Param        emotion query string true "Target emotion, Mixed included"
// @Success      200 {object} analytics.TextsResult
// @Failure      400 {object} dto.Response
// @Router       /emotion-texts [get]
func (h *AnalyticsHandler) GetEmotionTexts(c *gin.Context) {
	raw := c.Query("emotion")
	if raw == "" {
		h.BadRequest(c, "emotion parameter is required")
		return
	}
	target, ok := emotion.Parse(raw)
	if !ok {
		h.BadRequest(c, "unknown emotion "+strconv.Quote(raw))
		return
	}

	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.TextsByEmotion(c.Request.Context(), target, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetDailyVolume godoc
// @Summary      Daily record volume
// @Description  Returns per-day record counts for the matching records
// @Tags         analytics
// @Produce      json
// @Success      200 {object} analytics.DailyVolumeResult
// @Router       /daily-volume [get]
func (h *AnalyticsHandler) GetDailyVolume(c *gin.Context) {
	filter, ok := h.bindFilter(c)
	if !ok {
		return
	}

	result, err := h.service.DailyVolume(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetTextByID godoc
// @Summary      Single text record
// @Description  Returns one record with its classification and full score vector
// @Tags         analytics
// @Produce      json
// @Param        id path int true "Record ID"
// @Success      200 {object} analytics.TextDetail
// @Failure      404 {object} dto.Response
// @Router       /texts/{id} [get]
func (h *AnalyticsHandler) GetTextByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.BadRequest(c, "invalid record id")
		return
	}

	result, err := h.service.TextByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
