package models

// HistoryEntry is one persisted analysis record. Timestamp is assigned by the
// store at insertion time and doubles as the entry's identity for deletion;
// two entries saved within the same second share a timestamp.
type HistoryEntry struct {
	Text             string   `json:"text"`
	OverallSentiment string   `json:"overall_sentiment"`
	Score            float64  `json:"score"`
	Timestamp        string   `json:"timestamp"`
	KeyPhrases       []string `json:"key_phrases"`
	Summary          string   `json:"summary"`
}

type SaveHistoryRequest struct {
	Text             string   `json:"text"`
	OverallSentiment string   `json:"overall_sentiment"`
	Score            float64  `json:"score"`
	KeyPhrases       []string `json:"key_phrases"`
	Summary          string   `json:"summary"`
}

type DeleteEntryRequest struct {
	Timestamp string `json:"timestamp"`
}
