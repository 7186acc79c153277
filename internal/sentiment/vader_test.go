package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveLinks(t *testing.T) {
	assert.Equal(t, "a guide", RemoveLinks("a [guide](https://example.com/guide)"))
	assert.Equal(t, "read ", RemoveLinks("read https://example.com/article"))
}

func TestConvertMarkdownToText(t *testing.T) {
	got := ConvertMarkdownToText("# Heading\n\nSome **bold** text")
	assert.NotContains(t, got, "#")
	assert.NotContains(t, got, "**")
	assert.Contains(t, got, "bold")
}

func TestVADERClassifier_LabelsStayInVocabulary(t *testing.T) {
	classifier := NewVADERClassifier()

	for _, text := range []string{
		"I absolutely love this, it is wonderful and amazing!",
		"This is horrible, I hate it so much.",
		"The table is round.",
	} {
		result, err := classifier.Classify(context.Background(), text)
		require.NoError(t, err)
		assert.NotEqual(t, "Unknown", TranslateLabel(result.Label), "text %q produced label %q", text, result.Label)
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
	}
}

func TestVADERClassifier_Polarity(t *testing.T) {
	classifier := NewVADERClassifier()

	positive, err := classifier.Classify(context.Background(), "I absolutely love this, it is wonderful and amazing!")
	require.NoError(t, err)
	assert.Contains(t, []string{"4 stars", "5 stars"}, positive.Label)

	negative, err := classifier.Classify(context.Background(), "This is horrible, terrible, I hate it.")
	require.NoError(t, err)
	assert.Contains(t, []string{"1 star", "2 stars"}, negative.Label)
}
