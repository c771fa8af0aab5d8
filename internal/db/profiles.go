package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `id, user_id, headline, location, website, about, career_break,
	skills, open_to, target_roles, created_at, updated_at`

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	err := row.Scan(&p.ID, &p.UserID, &p.Headline, &p.Location, &p.Website, &p.About, &p.CareerBreak,
		&p.Skills, &p.OpenTo, &p.TargetRoles, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile retrieves the profile for a user. Returns nil, nil when absent.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := scanProfile(db.pool.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// EnsureProfile returns the user's profile, creating an empty one first if
// needed.
func (db *DB) EnsureProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	p, err := db.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// UpsertProfile applies a partial edit, creating the profile if the user has
// none. A non-nil Name renames the account in the same transaction.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, upd ProfileUpdate) (*Profile, error) {
	var profile *Profile
	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		var err error
		profile, err = scanProfile(tx.QueryRow(ctx,
			`INSERT INTO profiles (user_id, headline, location, website, about, career_break,
			                       skills, open_to, target_roles)
			 VALUES ($1, COALESCE($2, ''), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, ''),
			         COALESCE($6, ''), COALESCE($7, '[]'::jsonb), COALESCE($8, '[]'::jsonb),
			         COALESCE($9, '[]'::jsonb))
			 ON CONFLICT (user_id) DO UPDATE SET
			     headline     = COALESCE($2, profiles.headline),
			     location     = COALESCE($3, profiles.location),
			     website      = COALESCE($4, profiles.website),
			     about        = COALESCE($5, profiles.about),
			     career_break = COALESCE($6, profiles.career_break),
			     skills       = COALESCE($7, profiles.skills),
			     open_to      = COALESCE($8, profiles.open_to),
			     target_roles = COALESCE($9, profiles.target_roles),
			     updated_at   = NOW()
			 RETURNING `+profileColumns,
			userID, upd.Headline, upd.Location, upd.Website, upd.About, upd.CareerBreak,
			upd.Skills, upd.OpenTo, upd.TargetRoles,
		))
		if err != nil {
			return fmt.Errorf("failed to upsert profile: %w", err)
		}

		if upd.Name != nil && *upd.Name != "" {
			tag, err := tx.Exec(ctx,
				`UPDATE users SET name = $2, updated_at = NOW() WHERE id = $1`, userID, *upd.Name)
			if err := exactlyOne(tag, err, "rename user"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
