package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-comeback/internal/types"
)

// RoadmapItem is a stored milestone.
type RoadmapItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Week        string    `json:"week"`
	SortOrder   int       `json:"sort_order"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"created_at"`
}

// Milestone drops the storage fields.
func (r RoadmapItem) Milestone() types.Milestone {
	return types.Milestone{
		Title:       r.Title,
		Description: r.Description,
		Week:        r.Week,
		SortOrder:   r.SortOrder,
		Done:        r.Done,
	}
}

// RoadmapItemUpdate is a partial edit; nil fields are left alone.
type RoadmapItemUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Week        *string `json:"week,omitempty"`
	Done        *bool   `json:"done,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

const roadmapColumns = `id, user_id, title, description, week, sort_order, done, created_at`

func scanRoadmapItem(row pgx.Row) (*RoadmapItem, error) {
	var r RoadmapItem
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &r.Description, &r.Week, &r.SortOrder, &r.Done, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func listRoadmap(ctx context.Context, q querier, userID uuid.UUID) ([]RoadmapItem, error) {
	rows, err := q.Query(ctx,
		`SELECT `+roadmapColumns+` FROM roadmap WHERE user_id = $1 ORDER BY sort_order, created_at`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmap: %w", err)
	}
	defer rows.Close()

	items := []RoadmapItem{}
	for rows.Next() {
		r, err := scanRoadmapItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roadmap item: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// ListRoadmap returns a user's milestones by sort order.
func (db *DB) ListRoadmap(ctx context.Context, userID uuid.UUID) ([]RoadmapItem, error) {
	return listRoadmap(ctx, db.pool, userID)
}

// ReplaceRoadmap deletes a user's milestones and stores a freshly generated
// set in one transaction.
func (db *DB) ReplaceRoadmap(ctx context.Context, userID uuid.UUID, milestones []types.Milestone) ([]RoadmapItem, error) {
	var items []RoadmapItem
	err := pgx.BeginFunc(ctx, db.pool, func(tx pgx.Tx) error {
		var err error
		items, err = replaceRoadmap(ctx, tx, userID, milestones)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func replaceRoadmap(ctx context.Context, q querier, userID uuid.UUID, milestones []types.Milestone) ([]RoadmapItem, error) {
	if _, err := q.Exec(ctx, `DELETE FROM roadmap WHERE user_id = $1`, userID); err != nil {
		return nil, fmt.Errorf("failed to clear roadmap: %w", err)
	}

	_, err := q.CopyFrom(ctx,
		pgx.Identifier{"roadmap"},
		[]string{"user_id", "title", "description", "week", "sort_order", "done"},
		pgx.CopyFromSlice(len(milestones), func(i int) ([]any, error) {
			m := milestones[i]
			return []any{userID, m.Title, m.Description, m.Week, m.SortOrder, m.Done}, nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert roadmap: %w", err)
	}
	return listRoadmap(ctx, q, userID)
}

// AddRoadmapItem appends a custom milestone after the current last one.
func (db *DB) AddRoadmapItem(ctx context.Context, userID uuid.UUID, title, description, week string) (*RoadmapItem, error) {
	r, err := scanRoadmapItem(db.pool.QueryRow(ctx,
		`INSERT INTO roadmap (user_id, title, description, week, sort_order, done)
		 SELECT $1, $2, $3, $4, COALESCE(MAX(sort_order), 0) + 1, FALSE
		 FROM roadmap WHERE user_id = $1
		 RETURNING `+roadmapColumns,
		userID, title, description, week))
	if err != nil {
		return nil, fmt.Errorf("failed to add roadmap item: %w", err)
	}
	return r, nil
}

// SetRoadmapDone sets a milestone's done flag, or flips it when done is nil.
func (db *DB) SetRoadmapDone(ctx context.Context, userID, id uuid.UUID, done *bool) (*RoadmapItem, error) {
	r, err := scanRoadmapItem(db.pool.QueryRow(ctx,
		`UPDATE roadmap SET done = COALESCE($3, NOT done)
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+roadmapColumns,
		id, userID, done))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to toggle roadmap item: %w", err)
	}
	return r, nil
}

// UpdateRoadmapItem applies a partial edit to a milestone.
func (db *DB) UpdateRoadmapItem(ctx context.Context, userID, id uuid.UUID, upd RoadmapItemUpdate) (*RoadmapItem, error) {
	r, err := scanRoadmapItem(db.pool.QueryRow(ctx,
		`UPDATE roadmap SET
		     title       = COALESCE($3, title),
		     description = COALESCE($4, description),
		     week        = COALESCE($5, week),
		     done        = COALESCE($6, done),
		     sort_order  = COALESCE($7, sort_order)
		 WHERE id = $1 AND user_id = $2
		 RETURNING `+roadmapColumns,
		id, userID, upd.Title, upd.Description, upd.Week, upd.Done, upd.SortOrder))
	if err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update roadmap item: %w", err)
	}
	return r, nil
}

// DeleteRoadmapItem removes a milestone.
func (db *DB) DeleteRoadmapItem(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM roadmap WHERE id = $1 AND user_id = $2`, id, userID)
	return exactlyOne(tag, err, "delete roadmap item")
}

// RoadmapCounts returns how many of a user's milestones are done.
func (db *DB) RoadmapCounts(ctx context.Context, userID uuid.UUID) (done, total int, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FILTER (WHERE done), COUNT(*) FROM roadmap WHERE user_id = $1`, userID,
	).Scan(&done, &total)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count roadmap: %w", err)
	}
	return done, total, nil
}
