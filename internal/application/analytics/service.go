// Package analytics implements the aggregation layer behind the dashboard
// endpoints: dominant-emotion distribution, presence radar, per-day timeline,
// word frequency, and text listings.
package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/healthshare/backend/internal/domain/emotion"
	"github.com/healthshare/backend/internal/infrastructure/logger"
	"github.com/healthshare/backend/internal/infrastructure/telemetry"
)

// maxSampleTexts bounds the excerpt list per distribution slice.
const maxSampleTexts = 10

// maxWords bounds the word cloud payload.
const maxWords = 100

// Service computes all analytics aggregates. Every aggregate materializes
// the filtered row set exactly once and derives totals and breakdowns from
// that single result, so the denominators always agree with the details.
type Service struct {
	repo   emotion.TextRecordRepository
	logger *zap.Logger
}

// NewService creates an analytics service.
func NewService(repo emotion.TextRecordRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.Named("analytics"),
	}
}

// Distribution returns dominant-emotion counts over the matching records,
// with sample texts and per-emotion score averages for each slice. Slices
// only exist for outcomes that won at least one record.
func (s *Service) Distribution(ctx context.Context, filter emotion.Filter) (*DistributionResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "distribution")
	defer span.End()

	rows, err := s.repo.FindMatching(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrRowCount, len(rows))

	type slice struct {
		count   int64
		samples []SampleText
		sums    map[emotion.Emotion]float64
	}
	buckets := make(map[emotion.Emotion]*slice)

	for i := range rows {
		r := &rows[i]
		winner := r.Dominant()
		b := buckets[winner]
		if b == nil {
			b = &slice{sums: make(map[emotion.Emotion]float64, 8)}
			buckets[winner] = b
		}
		b.count++
		for _, e := range emotion.All() {
			b.sums[e] += r.Scores.Get(e)
		}
		// Rows arrive newest first, so the first ten are the samples.
		if len(b.samples) < maxSampleTexts {
			b.samples = append(b.samples, SampleText{
				ID:        r.ID,
				Text:      r.Text,
				CreatedAt: r.CreatedAt,
			})
		}
	}

	total := int64(len(rows))
	result := &DistributionResult{
		EmotionData: make([]EmotionSlice, 0, len(buckets)),
		TotalCount:  total,
	}

	for _, outcome := range outcomeOrder() {
		b, ok := buckets[outcome]
		if !ok {
			continue
		}
		avgs := make(map[string]float64, 8)
		for _, e := range emotion.All() {
			avgs[e.Column()] = b.sums[e] / float64(b.count)
		}
		result.EmotionData = append(result.EmotionData, EmotionSlice{
			Name:        string(outcome),
			Value:       b.count,
			Percentage:  percentage(b.count, total),
			SampleTexts: b.samples,
			EmotionAvgs: avgs,
		})
	}

	// Largest slice first; canonical order breaks ties.
	sort.SliceStable(result.EmotionData, func(i, j int) bool {
		return result.EmotionData[i].Value > result.EmotionData[j].Value
	})

	return result, nil
}

// Spider returns, for each of the eight emotions, how many matching records
// it dominates and in how many it is present at any intensity. Both maps are
// dense so the radar chart never sees missing axes.
func (s *Service) Spider(ctx context.Context, filter emotion.Filter) (*SpiderResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "spider")
	defer span.End()

	rows, err := s.repo.FindMatching(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrRowCount, len(rows))

	total := int64(len(rows))
	result := &SpiderResult{
		Emotions:       emotion.Names(),
		DominantCounts: make(map[string]int64, 8),
		PresentCounts:  make(map[string]PresenceStat, 8),
		TotalCount:     total,
	}

	dominant := make(map[emotion.Emotion]int64, 8)
	present := make(map[emotion.Emotion]int64, 8)
	for i := range rows {
		r := &rows[i]
		if winner := r.Dominant(); winner.IsScored() {
			dominant[winner]++
		}
		for _, e := range emotion.All() {
			if r.Scores.Present(e) {
				present[e]++
			}
		}
	}

	for _, e := range emotion.All() {
		result.DominantCounts[string(e)] = dominant[e]
		result.PresentCounts[string(e)] = PresenceStat{
			Count:      present[e],
			Percentage: percentage(present[e], total),
		}
	}

	return result, nil
}

// Timeline returns per-day dominant-emotion counts over a dense, continuous
// date range covering every matching record. Records without a dominant
// emotion keep their date on the grid but add no counts, so a day holding
// only Mixed rows appears with all-zero entries. When the matching records
// cover exactly one calendar day, a synthetic next-day point with the same
// counts is appended so line charts still render a segment.
func (s *Service) Timeline(ctx context.Context, filter emotion.Filter) (*TimelineResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "timeline")
	defer span.End()

	rows, err := s.repo.FindMatching(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrRowCount, len(rows))

	counts := make(map[time.Time]map[emotion.Emotion]int64)
	seen := make(map[time.Time]bool)
	var first, last time.Time
	for i := range rows {
		r := &rows[i]
		day := r.Day()
		if !seen[day] {
			seen[day] = true
			if first.IsZero() || day.Before(first) {
				first = day
			}
			if day.After(last) {
				last = day
			}
		}
		winner := r.Dominant()
		if !winner.IsScored() {
			continue
		}
		if counts[day] == nil {
			counts[day] = make(map[emotion.Emotion]int64, 8)
		}
		counts[day][winner]++
	}

	result := &TimelineResult{
		TimelineData: make([]TimelinePoint, 0, len(seen)),
		Emotions:     emotion.Names(),
	}
	if len(seen) == 0 {
		return result, nil
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		result.TimelineData = append(result.TimelineData, timelinePoint(day, counts[day]))
	}

	if len(seen) == 1 {
		next := first.AddDate(0, 0, 1)
		result.TimelineData = append(result.TimelineData, timelinePoint(next, counts[first]))
	}

	return result, nil
}

// WordCloud returns the top words across the matching records, weighted by
// how many records contain each word, together with the mode of those
// records' dominant emotions and their average score vector.
func (s *Service) WordCloud(ctx context.Context, filter emotion.Filter) (*WordCloudResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "wordcloud")
	defer span.End()

	rows, err := s.repo.FindMatching(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrRowCount, len(rows))

	type wordAgg struct {
		records int64
		winners map[emotion.Emotion]int64
		sums    map[emotion.Emotion]float64
	}
	words := make(map[string]*wordAgg)

	for i := range rows {
		r := &rows[i]
		winner := r.Dominant()
		for _, token := range Tokenize(r.Text) {
			agg := words[token]
			if agg == nil {
				agg = &wordAgg{
					winners: make(map[emotion.Emotion]int64, 4),
					sums:    make(map[emotion.Emotion]float64, 8),
				}
				words[token] = agg
			}
			agg.records++
			agg.winners[winner]++
			for _, e := range emotion.All() {
				agg.sums[e] += r.Scores.Get(e)
			}
		}
	}

	stats := make([]WordStat, 0, len(words))
	for word, agg := range words {
		n := float64(agg.records)
		stats = append(stats, WordStat{
			Word:            word,
			Frequency:       agg.records,
			DominantEmotion: string(modeEmotion(agg.winners)),
			AvgAnger:        agg.sums[emotion.Anger] / n,
			AvgAnticipation: agg.sums[emotion.Anticipation] / n,
			AvgDisgust:      agg.sums[emotion.Disgust] / n,
			AvgFear:         agg.sums[emotion.Fear] / n,
			AvgJoy:          agg.sums[emotion.Joy] / n,
			AvgSadness:      agg.sums[emotion.Sadness] / n,
			AvgSurprise:     agg.sums[emotion.Surprise] / n,
			AvgTrust:        agg.sums[emotion.Trust] / n,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Frequency != stats[j].Frequency {
			return stats[i].Frequency > stats[j].Frequency
		}
		return stats[i].Word < stats[j].Word
	})
	if len(stats) > maxWords {
		stats = stats[:maxWords]
	}
	telemetry.SetAttribute(span, telemetry.SpanAttrWordCount, len(stats))

	logger.WithTraceContext(ctx, s.logger).Debug("word cloud computed",
		zap.Int("records", len(rows)),
		zap.Int("distinct_words", len(words)),
		zap.Int("returned", len(stats)),
	)

	return &WordCloudResult{Words: stats, TotalRecords: int64(len(rows))}, nil
}

// TextsByEmotion lists the matching records whose dominant emotion equals
// the target, newest first. Mixed is a valid target.
func (s *Service) TextsByEmotion(ctx context.Context, target emotion.Emotion, filter emotion.Filter) (*TextsResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "texts_by_emotion",
		telemetry.WithAttribute(telemetry.SpanAttrEmotion, string(target)))
	defer span.End()

	rows, err := s.repo.FindMatching(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	result := &TextsResult{Texts: make([]TextItem, 0)}
	for i := range rows {
		r := &rows[i]
		if r.Dominant() != target {
			continue
		}
		result.Texts = append(result.Texts, TextItem{
			ID:         r.ID,
			Text:       r.Text,
			CreatedAt:  r.CreatedAt,
			DataSource: r.DataSource,
		})
	}
	result.Count = len(result.Texts)

	return result, nil
}

// DailyVolume returns per-day record counts for the matching records,
// oldest day first. Days without records are omitted.
func (s *Service) DailyVolume(ctx context.Context, filter emotion.Filter) (*DailyVolumeResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "daily_volume")
	defer span.End()

	rows, err := s.repo.FindMatching(ctx, filter)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	counts := make(map[time.Time]int64)
	for i := range rows {
		counts[rows[i].Day()]++
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	result := &DailyVolumeResult{Data: make([]DayCount, 0, len(days))}
	for _, day := range days {
		result.Data = append(result.Data, DayCount{
			Date:  day.Format(dateLayout),
			Count: counts[day],
		})
	}

	return result, nil
}

// TextByID returns a single record with its classification and full scores.
func (s *Service) TextByID(ctx context.Context, id int64) (*TextDetail, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "analytics", "text_by_id",
		telemetry.WithAttribute(telemetry.SpanAttrRecordID, id))
	defer span.End()

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	scores := make(map[string]float64, 8)
	for _, e := range emotion.All() {
		scores[e.Column()] = r.Scores.Get(e)
	}

	return &TextDetail{
		ID:              r.ID,
		Text:            r.Text,
		CreatedAt:       r.CreatedAt,
		DataSource:      r.DataSource,
		DominantEmotion: string(r.Dominant()),
		Scores:          scores,
	}, nil
}

// TotalRecords returns the size of the whole corpus.
func (s *Service) TotalRecords(ctx context.Context) (int64, error) {
	return s.repo.CountMatching(ctx, emotion.Filter{})
}

// percentage returns part/total as a percent rounded to two decimals.
// A zero total yields zero rather than NaN.
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}

// outcomeOrder is the canonical outcome order: the eight emotions, then Mixed.
func outcomeOrder() []emotion.Emotion {
	return append(emotion.All(), emotion.Mixed)
}

// timelinePoint builds one dense, zero-filled day entry.
func timelinePoint(day time.Time, dayCounts map[emotion.Emotion]int64) TimelinePoint {
	point := TimelinePoint{"date": day.Format(dateLayout)}
	for _, e := range emotion.All() {
		point[string(e)] = dayCounts[e]
	}
	return point
}

// modeEmotion returns the most frequent outcome, breaking ties by the
// canonical outcome order.
func modeEmotion(winners map[emotion.Emotion]int64) emotion.Emotion {
	best := emotion.Mixed
	var bestCount int64 = -1
	for _, e := range outcomeOrder() {
		if c := winners[e]; c > bestCount {
			best = e
			bestCount = c
		}
	}
	return best
}
