package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslateLabel_CanonicalLabels(t *testing.T) {
	cases := map[string]string{
		"1 star":  "Very Negative",
		"2 stars": "Negative",
		"3 stars": "Neutral",
		"4 stars": "Positive",
		"5 stars": "Very Positive",
	}

	for raw, want := range cases {
		assert.Equal(t, want, TranslateLabel(raw), "label %q", raw)
	}
}

func TestTranslateLabel_UnknownLabels(t *testing.T) {
	for _, raw := range []string{
		"",
		"6 stars",
		"1 Star",
		"1 stars",
		"five stars",
		"POSITIVE",
	} {
		assert.Equal(t, "Unknown", TranslateLabel(raw), "label %q", raw)
	}
}
