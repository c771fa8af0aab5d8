package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-comeback/internal/types"
)

// Metrics are the dashboard numbers tracked per user.
type Metrics struct {
	UserID            uuid.UUID          `json:"user_id"`
	ComebackScore     int                `json:"comeback_score"`
	ConfidenceHistory IntArray           `json:"confidence_history"`
	AppsSent          int                `json:"apps_sent"`
	ProfileStrength   int                `json:"profile_strength"`
	SkillsData        []types.SkillLevel `json:"skills_data"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// MetricsUpdate is a partial edit; nil fields are left alone.
type MetricsUpdate struct {
	ComebackScore *int                `json:"comeback_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	AppsSent      *int                `json:"apps_sent,omitempty" validate:"omitempty,gte=0"`
	SkillsData    *[]types.SkillLevel `json:"skills_data,omitempty"`
}

const metricsColumns = `user_id, comeback_score, confidence_history, apps_sent, profile_strength,
	skills_data, updated_at`

func scanMetrics(row pgx.Row) (*Metrics, error) {
	var m Metrics
	err := row.Scan(&m.UserID, &m.ComebackScore, &m.ConfidenceHistory, &m.AppsSent, &m.ProfileStrength,
		&m.SkillsData, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if m.SkillsData == nil {
		m.SkillsData = []types.SkillLevel{}
	}
	return &m, nil
}

// EnsureMetrics returns the user's metrics, creating the defaults first if
// needed.
func (db *DB) EnsureMetrics(ctx context.Context, userID uuid.UUID) (*Metrics, error) {
	m, err := scanMetrics(db.pool.QueryRow(ctx,
		`WITH ins AS (
		     INSERT INTO dashboard_metrics (user_id) VALUES ($1)
		     ON CONFLICT (user_id) DO NOTHING
		     RETURNING `+metricsColumns+`
		 )
		 SELECT `+metricsColumns+` FROM ins
		 UNION ALL
		 SELECT `+metricsColumns+` FROM dashboard_metrics WHERE user_id = $1
		 LIMIT 1`,
		userID))
	if err != nil {
		return nil, fmt.Errorf("failed to load metrics: %w", err)
	}
	return m, nil
}

// resetMetrics overwrites the score, history, strength and skills chart.
// Apps sent is kept.
func resetMetrics(ctx context.Context, q querier, userID uuid.UUID, m Metrics) (*Metrics, error) {
	skills := m.SkillsData
	if skills == nil {
		skills = []types.SkillLevel{}
	}
	out, err := scanMetrics(q.QueryRow(ctx,
		`INSERT INTO dashboard_metrics (user_id, comeback_score, confidence_history, profile_strength, skills_data)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id) DO UPDATE SET
		     comeback_score     = EXCLUDED.comeback_score,
		     confidence_history = EXCLUDED.confidence_history,
		     profile_strength   = EXCLUDED.profile_strength,
		     skills_data        = EXCLUDED.skills_data,
		     updated_at         = NOW()
		 RETURNING `+metricsColumns,
		userID, m.ComebackScore, m.ConfidenceHistory, m.ProfileStrength, skills))
	if err != nil {
		return nil, fmt.Errorf("failed to reset metrics: %w", err)
	}
	return out, nil
}

// UpdateMetrics applies a partial edit.
func (db *DB) UpdateMetrics(ctx context.Context, userID uuid.UUID, upd MetricsUpdate) (*Metrics, error) {
	m, err := scanMetrics(db.pool.QueryRow(ctx,
		`UPDATE dashboard_metrics SET
		     comeback_score = COALESCE($2, comeback_score),
		     apps_sent      = COALESCE($3, apps_sent),
		     skills_data    = COALESCE($4, skills_data),
		     updated_at     = NOW()
		 WHERE user_id = $1
		 RETURNING `+metricsColumns,
		userID, upd.ComebackScore, upd.AppsSent, upd.SkillsData))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update metrics: %w", err)
	}
	return m, nil
}

// SetComebackScore stores a recomputed comeback score.
func (db *DB) SetComebackScore(ctx context.Context, userID uuid.UUID, score int) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE dashboard_metrics SET comeback_score = $2, updated_at = NOW() WHERE user_id = $1`,
		userID, score)
	return exactlyOne(tag, err, "set comeback score")
}

// AppendConfidence adds an entry to the confidence history and returns the
// whole history.
func (db *DB) AppendConfidence(ctx context.Context, userID uuid.UUID, confidence int) (IntArray, error) {
	var history IntArray
	err := db.pool.QueryRow(ctx,
		`INSERT INTO dashboard_metrics (user_id, confidence_history)
		 VALUES ($1, jsonb_build_array($2::int))
		 ON CONFLICT (user_id) DO UPDATE SET
		     confidence_history = dashboard_metrics.confidence_history || jsonb_build_array($2::int),
		     updated_at = NOW()
		 RETURNING confidence_history`,
		userID, confidence,
	).Scan(&history)
	if err != nil {
		return nil, fmt.Errorf("failed to log confidence: %w", err)
	}
	return history, nil
}
