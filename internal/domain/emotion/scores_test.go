package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoresDominant(t *testing.T) {
	t.Run("strict maximum wins", func(t *testing.T) {
		s := Scores{Anger: 0.2, Joy: 0.9, Trust: 0.5}
		assert.Equal(t, Joy, s.Dominant())
	})

	t.Run("all zero is mixed", func(t *testing.T) {
		assert.Equal(t, Mixed, Scores{}.Dominant())
	})

	t.Run("two-way tie is mixed", func(t *testing.T) {
		s := Scores{Fear: 0.7, Sadness: 0.7, Joy: 0.1}
		assert.Equal(t, Mixed, s.Dominant())
	})

	t.Run("tie below the maximum does not matter", func(t *testing.T) {
		s := Scores{Fear: 0.3, Sadness: 0.3, Trust: 0.8}
		assert.Equal(t, Trust, s.Dominant())
	})

	t.Run("tie broken by a later larger score", func(t *testing.T) {
		s := Scores{Anger: 0.5, Anticipation: 0.5, Surprise: 0.6}
		assert.Equal(t, Surprise, s.Dominant())
	})

	t.Run("single positive score wins", func(t *testing.T) {
		s := Scores{Disgust: 0.01}
		assert.Equal(t, Disgust, s.Dominant())
	})
}

func TestScoresGet(t *testing.T) {
	s := Scores{
		Anger: 1, Anticipation: 2, Disgust: 3, Fear: 4,
		Joy: 5, Sadness: 6, Surprise: 7, Trust: 8,
	}

	for i, e := range All() {
		assert.Equal(t, float64(i+1), s.Get(e), "score for %s", e)
	}

	assert.Zero(t, s.Get(Mixed))
}

func TestScoresPresent(t *testing.T) {
	s := Scores{Joy: 0.001}
	assert.True(t, s.Present(Joy))
	assert.False(t, s.Present(Anger))
	assert.False(t, Scores{}.Present(Trust))
}
