package models

// Classification is the top result of a sentiment classifier run: the raw
// star-rating label and the model's confidence in [0,1].
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Segmentation holds sentence boundaries and noun-phrase spans for a text,
// both in document order.
type Segmentation struct {
	Sentences   []string `json:"sentences"`
	NounPhrases []string `json:"noun_phrases"`
}
