// Package history persists analysis records in a single JSON-encoded log
// file. The log is loaded whole, mutated in memory, and rewritten whole on
// every change; there is no cache between calls.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Bhavyaprem777/news-sentiment-analyzer-backend/internal/models"
)

var (
	ErrMissingTimestamp = errors.New("missing timestamp")
	ErrNoHistory        = errors.New("history file not found")
)

// TimestampLayout is the on-disk timestamp format. It also serves as the
// entry's identity for deletion, so entries saved within the same second
// collide and are deleted together.
const TimestampLayout = "2006-01-02 15:04:05"

type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// Save stamps the payload with the current local time, appends it to the
// log, and rewrites the file. A missing log file counts as an empty log.
func (s *Store) Save(payload models.SaveHistoryRequest) (models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return models.HistoryEntry{}, err
	}

	keyPhrases := payload.KeyPhrases
	if keyPhrases == nil {
		keyPhrases = []string{}
	}

	entry := models.HistoryEntry{
		Text:             payload.Text,
		OverallSentiment: payload.OverallSentiment,
		Score:            payload.Score,
		Timestamp:        s.now().Format(TimestampLayout),
		KeyPhrases:       keyPhrases,
		Summary:          payload.Summary,
	}

	entries = append(entries, entry)
	if err := s.write(entries); err != nil {
		return models.HistoryEntry{}, err
	}

	slog.Info("[HistoryStore] Entry saved",
		slog.String("timestamp", entry.Timestamp),
		slog.Int("total_entries", len(entries)))
	return entry, nil
}

// List returns every entry in append order. A missing file yields an empty
// log, never an error.
func (s *Store) List() ([]models.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

// Delete removes every entry whose timestamp equals the given value and
// rewrites the log. Matching nothing still succeeds; a missing log file
// does not.
func (s *Store) Delete(timestamp string) error {
	if timestamp == "" {
		return ErrMissingTimestamp
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNoHistory
		}
		return fmt.Errorf("checking history file: %w", err)
	}

	entries, err := s.load()
	if err != nil {
		return err
	}

	kept := make([]models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Timestamp != timestamp {
			kept = append(kept, entry)
		}
	}

	if err := s.write(kept); err != nil {
		return err
	}

	slog.Info("[HistoryStore] Entries deleted",
		slog.String("timestamp", timestamp),
		slog.Int("removed", len(entries)-len(kept)))
	return nil
}

func (s *Store) load() ([]models.HistoryEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	var entries []models.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding history file: %w", err)
	}
	return entries, nil
}

// write replaces the log file through a temp file and rename so a crash
// mid-write never leaves a torn JSON array behind.
func (s *Store) write(entries []models.HistoryEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".history_*")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp history file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replacing history file: %w", err)
	}
	return nil
}
