// Package emotion contains the core domain model for emotion-scored texts:
// the eight-emotion vocabulary, score vectors, dominant-emotion classification,
// and the filter/repository contracts used by the analytics layer.
package emotion

import "strings"

// Emotion identifies one of the eight scored emotions, or the Mixed sentinel.
type Emotion string

const (
	Anger        Emotion = "Anger"
	Anticipation Emotion = "Anticipation"
	Disgust      Emotion = "Disgust"
	Fear         Emotion = "Fear"
	Joy          Emotion = "Joy"
	Sadness      Emotion = "Sadness"
	Surprise     Emotion = "Surprise"
	Trust        Emotion = "Trust"

	// Mixed is the classifier outcome for rows without a strict maximum.
	// It is never a filterable score dimension.
	Mixed Emotion = "Mixed"
)

// All returns the eight scored emotions in canonical order.
// This order is the tie-break and display order used everywhere.
func All() []Emotion {
	return []Emotion{Anger, Anticipation, Disgust, Fear, Joy, Sadness, Surprise, Trust}
}

// Names returns the canonical emotion names as strings.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = string(e)
	}
	return names
}

// Parse resolves a case-insensitive emotion name. Mixed is accepted so that
// callers can look up texts classified as Mixed.
func Parse(s string) (Emotion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "anger":
		return Anger, true
	case "anticipation":
		return Anticipation, true
	case "disgust":
		return Disgust, true
	case "fear":
		return Fear, true
	case "joy":
		return Joy, true
	case "sadness":
		return Sadness, true
	case "surprise":
		return Surprise, true
	case "trust":
		return Trust, true
	case "mixed":
		return Mixed, true
	}
	return "", false
}

// Column returns the database column holding this emotion's score.
func (e Emotion) Column() string {
	return strings.ToLower(string(e))
}

// IsScored reports whether the emotion is one of the eight score dimensions.
func (e Emotion) IsScored() bool {
	return e != Mixed && e != ""
}
