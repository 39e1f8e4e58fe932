package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("lowercases and splits on non-alphanumerics", func(t *testing.T) {
		tokens := Tokenize("Nurses EXHAUSTED; hospitals overwhelmed!")
		assert.Equal(t, []string{"nurses", "exhausted", "hospitals", "overwhelmed"}, tokens)
	})

	t.Run("words shorter than four characters are dropped", func(t *testing.T) {
		assert.Empty(t, Tokenize("we all so sad now icu ppe"))
	})

	t.Run("stopwords are dropped", func(t *testing.T) {
		tokens := Tokenize("there would have been nothing between them")
		assert.Equal(t, []string{"nothing"}, tokens)
	})

	t.Run("each word counts once per text", func(t *testing.T) {
		tokens := Tokenize("ventilators ventilators VENTILATORS")
		assert.Equal(t, []string{"ventilators"}, tokens)
	})

	t.Run("link debris is dropped", func(t *testing.T) {
		tokens := Tokenize("overworked staff https example.com/post")
		assert.Equal(t, []string{"overworked", "staff", "example", "post"}, tokens)
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		assert.Empty(t, Tokenize(""))
	})
}
