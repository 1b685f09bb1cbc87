package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// excerptLength bounds how much entry text is kept per history row.
// The full entry belongs to the journal application, not this service.
const excerptLength = 200

// HistoryEntry is one recorded analysis outcome.
type HistoryEntry struct {
	ID               uuid.UUID `json:"id"`
	Excerpt          string    `json:"excerpt"`
	PrimaryMood      string    `json:"primary_mood"`
	Energy           Energy    `json:"energy"`
	BusinessCategory Category  `json:"business_category"`
	Confidence       int       `json:"confidence"`
	AnalysisSource   Source    `json:"analysis_source"`
	CreatedAt        time.Time `json:"created_at"`
}

// HistoryService persists analysis outcomes for the history endpoint.
// All methods are nil-safe so the service runs without a database.
type HistoryService struct {
	pool *pgxpool.Pool
}

func NewHistoryService(pool *pgxpool.Pool) *HistoryService {
	return &HistoryService{pool: pool}
}

// Record stores one analysis outcome and returns the saved entry.
func (s *HistoryService) Record(ctx context.Context, text string, result AnalysisResult) (*HistoryEntry, error) {
	if s == nil || s.pool == nil {
		return nil, nil
	}

	query := `
		INSERT INTO analysis_history (id, excerpt, primary_mood, energy, business_category, confidence, analysis_source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	entry := &HistoryEntry{
		ID:               uuid.New(),
		Excerpt:          excerpt(text),
		PrimaryMood:      result.PrimaryMood,
		Energy:           result.Energy,
		BusinessCategory: result.BusinessCategory,
		Confidence:       result.Confidence,
		AnalysisSource:   result.AnalysisSource,
	}

	err := s.pool.QueryRow(ctx, query,
		entry.ID,
		entry.Excerpt,
		entry.PrimaryMood,
		entry.Energy,
		entry.BusinessCategory,
		entry.Confidence,
		entry.AnalysisSource,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to record analysis: %w", err)
	}
	return entry, nil
}

// Recent returns the newest entries, most recent first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if s == nil || s.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, excerpt, primary_mood, energy, business_category, confidence, analysis_source, created_at
		FROM analysis_history
		ORDER BY created_at DESC
		LIMIT $1
	`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.Excerpt,
			&entry.PrimaryMood,
			&entry.Energy,
			&entry.BusinessCategory,
			&entry.Confidence,
			&entry.AnalysisSource,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return entries, nil
}

// ByID fetches a single entry.
func (s *HistoryService) ByID(ctx context.Context, id uuid.UUID) (*HistoryEntry, error) {
	if s == nil || s.pool == nil {
		return nil, ErrHistoryNotFound
	}

	query := `
		SELECT id, excerpt, primary_mood, energy, business_category, confidence, analysis_source, created_at
		FROM analysis_history
		WHERE id = $1
	`

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var entry HistoryEntry
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.Excerpt,
		&entry.PrimaryMood,
		&entry.Energy,
		&entry.BusinessCategory,
		&entry.Confidence,
		&entry.AnalysisSource,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to load history entry: %w", err)
	}
	return &entry, nil
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	return string(runes[:excerptLength])
}
