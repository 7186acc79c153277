package models

// Wire types for the remote model service endpoints.

type ClassifyRequest struct {
	Inputs string `json:"inputs"`
}

type ClassifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type SegmentRequest struct {
	Inputs string `json:"inputs"`
}

type SegmentResponse struct {
	Sentences   []string `json:"sentences"`
	NounPhrases []string `json:"noun_phrases"`
}

type SummarizeModelRequest struct {
	Inputs    string `json:"inputs"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
	DoSample  bool   `json:"do_sample"`
}

type SummarizeModelResponse struct {
	SummaryText string `json:"summary_text"`
}
