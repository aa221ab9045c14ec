// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rating persists pairwise question comparisons and aggregates
// them into leaderboards.
package rating

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrUnknownRatingType is returned for rating types other than goodbad
// and hardeasy, and for history kinds other than good and hard.
var ErrUnknownRatingType = errors.New("unknown rating type")

// Event is one pairwise comparison submitted by a user. Exactly one of
// the two pairs is used depending on RatingType: goodbad fills
// Winner/Loser, hardeasy fills Hard/Easy.
type Event struct {
	UserID     string `json:"userId"`
	RatingType string `json:"ratingType"`
	Winner     string `json:"qidWinner,omitempty"`
	Loser      string `json:"qidLoser,omitempty"`
	Hard       string `json:"qidHard,omitempty"`
	Easy       string `json:"qidEasy,omitempty"`
}

// HistoryEntry is one leaderboard row: how often a question won and when
// it last did.
type HistoryEntry struct {
	QID   string `json:"qid"`
	Count int    `json:"count"`
	Last  int64  `json:"last"`
}

const createRatingsTable = `
CREATE TABLE IF NOT EXISTS pk_ratings (
	id TEXT PRIMARY KEY,
	user_id TEXT,
	rating_type TEXT,
	qid_winner TEXT,
	qid_loser TEXT,
	qid_hard TEXT,
	qid_easy TEXT,
	created_at INTEGER
)`

// Store persists rating events in SQLite.
type Store struct {
	db *sql.DB

	// now is stubbed in tests for deterministic timestamps.
	now func() time.Time
}

// NewStore opens (creating if needed) the ratings database at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating rating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening rating database: %w", err)
	}

	if _, err := db.Exec(createRatingsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating pk_ratings table: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Rate records one comparison.
func (s *Store) Rate(ctx context.Context, ev Event) error {
	switch ev.RatingType {
	case "goodbad", "hardeasy":
	default:
		return fmt.Errorf("%w %q", ErrUnknownRatingType, ev.RatingType)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pk_ratings (id, user_id, rating_type, qid_winner, qid_loser, qid_hard, qid_easy, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), ev.UserID, ev.RatingType,
		ev.Winner, ev.Loser, ev.Hard, ev.Easy,
		s.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("inserting rating: %w", err)
	}
	return nil
}

// History aggregates wins per question for one dimension. kind is "good"
// (counts of qid_winner under goodbad ratings) or "hard" (counts of
// qid_hard under hardeasy ratings). Rows are ordered by win count, ties
// broken by most recent win, capped at 100.
func (s *Store) History(ctx context.Context, kind string) ([]HistoryEntry, error) {
	var column, ratingType string
	switch kind {
	case "good":
		column, ratingType = "qid_winner", "goodbad"
	case "hard":
		column, ratingType = "qid_hard", "hardeasy"
	default:
		return nil, fmt.Errorf("%w: history kind %q", ErrUnknownRatingType, kind)
	}

	query := fmt.Sprintf(`
		SELECT %s AS qid, COUNT(*) AS count, MAX(created_at) AS last
		FROM pk_ratings
		WHERE rating_type = ? AND %s != ''
		GROUP BY qid
		ORDER BY count DESC, last DESC
		LIMIT 100`, column, column)

	rows, err := s.db.QueryContext(ctx, query, ratingType)
	if err != nil {
		return nil, fmt.Errorf("querying rating history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.QID, &e.Count, &e.Last); err != nil {
			return nil, fmt.Errorf("scanning rating history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rating history: %w", err)
	}
	return entries, nil
}
