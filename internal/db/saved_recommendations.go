package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-comeback/internal/types"
)

// SavedRecommendation is a snapshot of a generated role the user kept.
// Recommendations are regenerated on every request, so the snapshot is the
// only durable copy.
type SavedRecommendation struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Title     string      `json:"title"`
	Company   string      `json:"company"`
	Match     int         `json:"match"`
	Gap       StringArray `json:"gap"`
	Salary    string      `json:"salary"`
	Type      string      `json:"type"`
	Desc      string      `json:"desc"`
	Category  string      `json:"category"`
	CreatedAt time.Time   `json:"created_at"`
}

// Recommendation drops the storage fields.
func (s SavedRecommendation) Recommendation() types.Recommendation {
	return types.Recommendation{
		ID:      s.ID.String(),
		Title:   s.Title,
		Company: s.Company,
		Match:   s.Match,
		Gap:     []string(s.Gap),
		Salary:  s.Salary,
		Type:    s.Type,
		Desc:    s.Desc,
	}
}

const savedColumns = `id, user_id, title, company, match_score, skill_gaps, salary, work_type,
	description, category, created_at`

func scanSaved(row pgx.Row) (*SavedRecommendation, error) {
	var s SavedRecommendation
	err := row.Scan(&s.ID, &s.UserID, &s.Title, &s.Company, &s.Match, &s.Gap, &s.Salary, &s.Type,
		&s.Desc, &s.Category, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveRecommendation stores a snapshot and returns it with its new ID.
func (db *DB) SaveRecommendation(ctx context.Context, userID uuid.UUID, s SavedRecommendation) (*SavedRecommendation, error) {
	out, err := scanSaved(db.pool.QueryRow(ctx,
		`INSERT INTO saved_recommendations (user_id, title, company, match_score, skill_gaps, salary,
		                                    work_type, description, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+savedColumns,
		userID, s.Title, s.Company, s.Match, s.Gap, s.Salary, s.Type, s.Desc, s.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to save recommendation: %w", err)
	}
	return out, nil
}

// DeleteSavedRecommendation removes a snapshot owned by the user.
func (db *DB) DeleteSavedRecommendation(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM saved_recommendations WHERE id = $1 AND user_id = $2`, id, userID)
	return exactlyOne(tag, err, "delete saved recommendation")
}

// ListSavedRecommendations returns the user's snapshots, newest first.
func (db *DB) ListSavedRecommendations(ctx context.Context, userID uuid.UUID) ([]SavedRecommendation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+savedColumns+` FROM saved_recommendations WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved recommendations: %w", err)
	}
	defer rows.Close()

	out := []SavedRecommendation{}
	for rows.Next() {
		s, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved recommendation: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}
