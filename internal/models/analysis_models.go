package models

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type SentenceSentiment struct {
	Sentence  string  `json:"sentence"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

type AnalysisResult struct {
	Text             string              `json:"text"`
	OverallSentiment string              `json:"overall_sentiment"`
	Score            float64             `json:"score"`
	RawLabel         string              `json:"raw_label"`
	KeyPhrases       []string            `json:"key_phrases"`
	SentenceAnalysis []SentenceSentiment `json:"sentence_analysis"`
}

type SummaryResult struct {
	Summary string `json:"summary"`
}
