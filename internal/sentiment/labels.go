package sentiment

// labelMap translates the classifier's five-class star-rating vocabulary
// into human-readable sentiment categories.
var labelMap = map[string]string{
	"1 star":  "Very Negative",
	"2 stars": "Negative",
	"3 stars": "Neutral",
	"4 stars": "Positive",
	"5 stars": "Very Positive",
}

// TranslateLabel maps a raw classifier label to its sentiment category.
// Labels outside the known vocabulary come back as "Unknown"; translation
// never fails.
func TranslateLabel(raw string) string {
	if label, ok := labelMap[raw]; ok {
		return label
	}
	return "Unknown"
}
