package emotion

// Scores holds the eight emotion intensities of a single text.
// Missing values are stored as zero.
type Scores struct {
	Anger        float64
	Anticipation float64
	Disgust      float64
	Fear         float64
	Joy          float64
	Sadness      float64
	Surprise     float64
	Trust        float64
}

// Get returns the score for the given emotion. Mixed and unknown
// emotions have no score dimension and return zero.
func (s Scores) Get(e Emotion) float64 {
	switch e {
	case Anger:
		return s.Anger
	case Anticipation:
		return s.Anticipation
	case Disgust:
		return s.Disgust
	case Fear:
		return s.Fear
	case Joy:
		return s.Joy
	case Sadness:
		return s.Sadness
	case Surprise:
		return s.Surprise
	case Trust:
		return s.Trust
	}
	return 0
}

// Present reports whether the emotion has a positive score.
func (s Scores) Present(e Emotion) bool {
	return s.Get(e) > 0
}

// Dominant classifies the score vector. The winner is the emotion whose
// score is strictly greater than every other score. All-zero vectors and
// ties produce Mixed.
func (s Scores) Dominant() Emotion {
	winner := Mixed
	best := 0.0
	tied := false

	for _, e := range All() {
		v := s.Get(e)
		switch {
		case v > best:
			winner = e
			best = v
			tied = false
		case v == best && v > 0:
			tied = true
		}
	}

	if tied || best <= 0 {
		return Mixed
	}
	return winner
}
