package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/healthshare/backend/internal/application/analytics"
	"github.com/healthshare/backend/internal/domain/emotion"
	"github.com/healthshare/backend/internal/domain/shared"
	"github.com/healthshare/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsService struct {
	mock.Mock
}

func (m *mockAnalyticsService) Distribution(ctx context.Context, filter emotion.Filter) (*analytics.DistributionResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.DistributionResult), args.Error(1)
}

func (m *mockAnalyticsService) Spider(ctx context.Context, filter emotion.Filter) (*analytics.SpiderResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.SpiderResult), args.Error(1)
}

func (m *mockAnalyticsService) Timeline(ctx context.Context, filter emotion.Filter) (*analytics.TimelineResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.TimelineResult), args.Error(1)
}

func (m *mockAnalyticsService) WordCloud(ctx context.Context, filter emotion.Filter) (*analytics.WordCloudResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.WordCloudResult), args.Error(1)
}

func (m *mockAnalyticsService) TextsByEmotion(ctx context.Context, target emotion.Emotion, filter emotion.Filter) (*analytics.TextsResult, error) {
	args := m.Called(ctx, target, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.TextsResult), args.Error(1)
}

func (m *mockAnalyticsService) DailyVolume(ctx context.Context, filter emotion.Filter) (*analytics.DailyVolumeResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.DailyVolumeResult), args.Error(1)
}

func (m *mockAnalyticsService) TextByID(ctx context.Context, id int64) (*analytics.TextDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analytics.TextDetail), args.Error(1)
}

func setupAnalyticsRouter(svc AnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalyticsHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/emotion-distribution", h.GetEmotionDistribution)
	api.GET("/emotion-spider", h.GetEmotionSpider)
	api.GET("/emotion-timeline", h.GetEmotionTimeline)
	api.GET("/wordcloud-data", h.GetWordCloudData)
	api.GET("/emotion-texts", h.GetEmotionTexts)
	api.GET("/daily-volume", h.GetDailyVolume)
	api.GET("/texts/:id", h.GetTextByID)
	return r
}

func doGet(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyticsHandler_GetEmotionDistribution(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("Distribution", mock.Anything, emotion.Filter{}).Return(&analytics.DistributionResult{
		EmotionData: []analytics.EmotionSlice{
			{
				Name:        "Joy",
				Value:       2,
				Percentage:  66.67,
				SampleTexts: []analytics.SampleText{{ID: 1, Text: "grateful for my team"}},
				EmotionAvgs: map[string]float64{"joy": 0.8},
			},
		},
		TotalCount: 3,
	}, nil)

	w := doGet(setupAnalyticsRouter(svc), "/api/v1/emotion-distribution")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["totalCount"])

	slices := body["emotionData"].([]any)
	require.Len(t, slices, 1)
	slice := slices[0].(map[string]any)
	assert.Equal(t, "Joy", slice["name"])
	assert.Equal(t, float64(66.67), slice["percentage"])
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_FilterNormalization(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 3, 16, 0, 0, 0, 0, time.UTC)
	want := emotion.Filter{
		Sources:   []string{"reddit"},
		StartAt:   &start,
		EndBefore: &end,
		Emotions:  []emotion.Emotion{emotion.Fear},
	}

	svc := new(mockAnalyticsService)
	svc.On("Spider", mock.Anything, want).Return(&analytics.SpiderResult{
		Emotions:       emotion.Names(),
		DominantCounts: map[string]int64{},
		PresentCounts:  map[string]analytics.PresenceStat{},
	}, nil)

	w := doGet(setupAnalyticsRouter(svc),
		"/api/v1/emotion-spider?sources=reddit&startDate=2020-03-01&endDate=2020-03-15&emotions=fear")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_AllSentinelClearsFilters(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("Timeline", mock.Anything, emotion.Filter{}).Return(&analytics.TimelineResult{
		TimelineData: []analytics.TimelinePoint{},
		Emotions:     emotion.Names(),
	}, nil)

	w := doGet(setupAnalyticsRouter(svc), "/api/v1/emotion-timeline?sources=All&emotions=All")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_MalformedDateIsDropped(t *testing.T) {
	end := time.Date(2020, 3, 16, 0, 0, 0, 0, time.UTC)
	svc := new(mockAnalyticsService)
	svc.On("Distribution", mock.Anything, emotion.Filter{EndBefore: &end}).
		Return(&analytics.DistributionResult{EmotionData: []analytics.EmotionSlice{}}, nil)

	w := doGet(setupAnalyticsRouter(svc),
		"/api/v1/emotion-distribution?startDate=03-01-2020&endDate=2020-03-15")

	// The unparseable startDate leaves that bound open instead of failing.
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_UnknownEmotionFilterIsSkipped(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("WordCloud", mock.Anything, emotion.Filter{Emotions: []emotion.Emotion{emotion.Joy}}).
		Return(&analytics.WordCloudResult{Words: []analytics.WordStat{}}, nil)

	w := doGet(setupAnalyticsRouter(svc), "/api/v1/wordcloud-data?emotions=serenity,joy")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_GetEmotionTexts(t *testing.T) {
	t.Run("missing emotion parameter", func(t *testing.T) {
		svc := new(mockAnalyticsService)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/emotion-texts")

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		svc.AssertNotCalled(t, "TextsByEmotion")
	})

	t.Run("unknown emotion", func(t *testing.T) {
		svc := new(mockAnalyticsService)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/emotion-texts?emotion=boredom")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "TextsByEmotion")
	})

	t.Run("mixed is a valid target", func(t *testing.T) {
		svc := new(mockAnalyticsService)
		svc.On("TextsByEmotion", mock.Anything, emotion.Mixed, emotion.Filter{}).
			Return(&analytics.TextsResult{Texts: []analytics.TextItem{}, Count: 0}, nil)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/emotion-texts?emotion=mixed")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(0), body["count"])
		// Empty list must serialize as [] rather than null
		assert.NotNil(t, body["texts"])
		svc.AssertExpectations(t)
	})

	t.Run("case-insensitive emotion", func(t *testing.T) {
		svc := new(mockAnalyticsService)
		svc.On("TextsByEmotion", mock.Anything, emotion.Joy, emotion.Filter{}).
			Return(&analytics.TextsResult{
				Texts: []analytics.TextItem{{ID: 7, Text: "finally a day off", DataSource: "twitter"}},
				Count: 1,
			}, nil)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/emotion-texts?emotion=JOY")

		require.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestAnalyticsHandler_GetDailyVolume(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("DailyVolume", mock.Anything, emotion.Filter{}).Return(&analytics.DailyVolumeResult{
		Data: []analytics.DayCount{{Date: "2020-03-01", Count: 12}},
	}, nil)

	w := doGet(setupAnalyticsRouter(svc), "/api/v1/daily-volume")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "2020-03-01", data[0].(map[string]any)["date"])
	svc.AssertExpectations(t)
}

func TestAnalyticsHandler_GetTextByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(mockAnalyticsService)
		svc.On("TextByID", mock.Anything, int64(42)).Return(&analytics.TextDetail{
			ID:              42,
			Text:            "night shift again",
			DominantEmotion: "Sadness",
			Scores:          map[string]float64{"sadness": 0.9},
		}, nil)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/texts/42")

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Sadness", body["dominant_emotion"])
		svc.AssertExpectations(t)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := new(mockAnalyticsService)
		svc.On("TextByID", mock.Anything, int64(99)).Return(nil, shared.ErrNotFound)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/texts/99")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := new(mockAnalyticsService)

		w := doGet(setupAnalyticsRouter(svc), "/api/v1/texts/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "TextByID")
	})
}

func TestAnalyticsHandler_ServiceError(t *testing.T) {
	svc := new(mockAnalyticsService)
	svc.On("WordCloud", mock.Anything, emotion.Filter{}).
		Return(nil, assert.AnError)

	w := doGet(setupAnalyticsRouter(svc), "/api/v1/wordcloud-data")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
}
