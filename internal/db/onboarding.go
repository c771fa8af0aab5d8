package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-comeback/internal/types"
)

const onboardingColumns = `user_id, career_break_years, last_role, industry, skills, confidence, goal,
	completed, created_at, updated_at`

func scanOnboarding(row pgx.Row) (*Onboarding, error) {
	var o Onboarding
	err := row.Scan(&o.UserID, &o.CareerBreakYears, &o.LastRole, &o.Industry, &o.Skills, &o.Confidence,
		&o.Goal, &o.Completed, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOnboarding retrieves a user's answers. Returns nil, nil when the user
// has not onboarded.
func (db *DB) GetOnboarding(ctx context.Context, userID uuid.UUID) (*Onboarding, error) {
	o, err := scanOnboarding(db.pool.QueryRow(ctx,
		`SELECT `+onboardingColumns+` FROM onboarding WHERE user_id = $1`, userID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get onboarding: %w", err)
	}
	return o, nil
}

// CompleteOnboarding stores a submitted questionnaire together with the
// roadmap and dashboard metrics derived from it. Everything is written in one
// transaction; on error nothing changes. A non-empty Name also renames the
// account, and ErrNotFound is returned when the account does not exist.
func (db *DB) CompleteOnboarding(ctx context.Context, userID uuid.UUID, c OnboardingCompletion) (*Onboarding, error) {
	var saved *Onboarding
	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		if c.Name != "" {
			if err := renameUser(ctx, tx, userID, c.Name); err != nil {
				return err
			}
		}

		var err error
		if saved, err = upsertOnboarding(ctx, tx, userID, c.Answers); err != nil {
			return err
		}
		if _, err = replaceRoadmap(ctx, tx, userID, c.Roadmap); err != nil {
			return err
		}
		_, err = resetMetrics(ctx, tx, userID, c.Metrics)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// upsertOnboarding stores a complete set of answers, replacing any previous
// ones, and marks onboarding completed.
func upsertOnboarding(ctx context.Context, q querier, userID uuid.UUID, in types.Onboarding) (*Onboarding, error) {
	o, err := scanOnboarding(q.QueryRow(ctx,
		`INSERT INTO onboarding (user_id, career_break_years, last_role, industry, skills, confidence, goal, completed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		 ON CONFLICT (user_id) DO UPDATE SET
		     career_break_years = EXCLUDED.career_break_years,
		     last_role          = EXCLUDED.last_role,
		     industry           = EXCLUDED.industry,
		     skills             = EXCLUDED.skills,
		     confidence         = EXCLUDED.confidence,
		     goal               = EXCLUDED.goal,
		     completed          = TRUE,
		     updated_at         = NOW()
		 RETURNING `+onboardingColumns,
		userID, in.CareerBreakYears, in.LastRole, in.Industry, StringArray(in.Skills), in.Confidence, in.Goal))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert onboarding: %w", err)
	}
	return o, nil
}

// UpdateOnboarding applies a partial edit. Returns ErrNotFound when the user
// has not onboarded.
func (db *DB) UpdateOnboarding(ctx context.Context, userID uuid.UUID, upd OnboardingUpdate) (*Onboarding, error) {
	o, err := scanOnboarding(db.pool.QueryRow(ctx,
		`UPDATE onboarding SET
		     career_break_years = COALESCE($2, career_break_years),
		     last_role          = COALESCE($3, last_role),
		     industry           = COALESCE($4, industry),
		     skills             = COALESCE($5, skills),
		     confidence         = COALESCE($6, confidence),
		     goal               = COALESCE($7, goal),
		     updated_at         = NOW()
		 WHERE user_id = $1
		 RETURNING `+onboardingColumns,
		userID, upd.CareerBreakYears, upd.LastRole, upd.Industry, upd.Skills, upd.Confidence, upd.Goal))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update onboarding: %w", err)
	}
	return o, nil
}
