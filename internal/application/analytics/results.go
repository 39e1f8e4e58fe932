package analytics

import "time"

// SampleText is a short excerpt attached to a distribution slice.
type SampleText struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// EmotionSlice is one slice of the dominant-emotion distribution.
type EmotionSlice struct {
	Name        string             `json:"name"`
	Value       int64              `json:"value"`
	Percentage  float64            `json:"percentage"`
	SampleTexts []SampleText       `json:"sampleTexts"`
	EmotionAvgs map[string]float64 `json:"emotionAvgs"`
}

// DistributionResult is the payload of the emotion-distribution endpoint.
type DistributionResult struct {
	EmotionData []EmotionSlice `json:"emotionData"`
	TotalCount  int64          `json:"totalCount"`
}

// PresenceStat counts records where an emotion is present at any intensity.
type PresenceStat struct {
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SpiderResult is the payload of the emotion-spider endpoint. Both maps are
// dense over the eight emotions, zero-filled where nothing matched.
type SpiderResult struct {
	Emotions       []string                `json:"emotions"`
	DominantCounts map[string]int64        `json:"dominantCounts"`
	PresentCounts  map[string]PresenceStat `json:"presentCounts"`
	TotalCount     int64                   `json:"totalCount"`
}

// TimelinePoint is one day of the timeline: a "date" key plus one count
// per emotion name.
type TimelinePoint map[string]any

// TimelineResult is the payload of the emotion-timeline endpoint.
type TimelineResult struct {
	TimelineData []TimelinePoint `json:"timelineData"`
	Emotions     []string        `json:"emotions"`
}

// WordStat is one entry of the word cloud. Frequency is the number of
// matching records containing the word, and the averages are taken over
// those same records.
type WordStat struct {
	Word            string  `json:"word"`
	Frequency       int64   `json:"frequency"`
	DominantEmotion string  `json:"dominant_emotion"`
	AvgAnger        float64 `json:"avg_anger"`
	AvgAnticipation float64 `json:"avg_anticipation"`
	AvgDisgust      float64 `json:"avg_disgust"`
	AvgFear         float64 `json:"avg_fear"`
	AvgJoy          float64 `json:"avg_joy"`
	AvgSadness      float64 `json:"avg_sadness"`
	AvgSurprise     float64 `json:"avg_surprise"`
	AvgTrust        float64 `json:"avg_trust"`
}

// WordCloudResult is the payload of the wordcloud-data endpoint.
type WordCloudResult struct {
	Words        []WordStat `json:"words"`
	TotalRecords int64      `json:"totalRecords"`
}

// TextItem is one row of an emotion-texts listing.
type TextItem struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	DataSource string    `json:"data_source"`
}

// TextsResult is the payload of the emotion-texts endpoint.
type TextsResult struct {
	Texts []TextItem `json:"texts"`
	Count int        `json:"count"`
}

// TextDetail is a single record with its classification and full scores.
type TextDetail struct {
	ID              int64              `json:"id"`
	Text            string             `json:"text"`
	CreatedAt       time.Time          `json:"created_at"`
	DataSource      string             `json:"data_source"`
	DominantEmotion string             `json:"dominant_emotion"`
	Scores          map[string]float64 `json:"scores"`
}

// DayCount is one day of the daily-volume series.
type DayCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DailyVolumeResult is the payload of the daily-volume endpoint.
type DailyVolumeResult struct {
	Data []DayCount `json:"data"`
}
