package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-comeback/internal/types"
)

// Conversation is one stored coach chat turn.
type Conversation struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Context   string    `json:"context"`
	CreatedAt time.Time `json:"created_at"`
}

// AddConversationTurns stores chat turns in order under one context.
func (db *DB) AddConversationTurns(ctx context.Context, userID uuid.UUID, chatContext string, turns ...types.ChatTurn) error {
	batch := &pgx.Batch{}
	for _, t := range turns {
		batch.Queue(
			`INSERT INTO ai_conversations (user_id, role, message, context) VALUES ($1, $2, $3, $4)`,
			userID, t.Role, t.Message, chatContext)
	}
	if err := db.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to store conversation: %w", err)
	}
	return nil
}

// RecentTurns returns the last limit turns of a context, oldest first.
func (db *DB) RecentTurns(ctx context.Context, userID uuid.UUID, chatContext string, limit int) ([]types.ChatTurn, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT role, message FROM (
		     SELECT role, message, created_at FROM ai_conversations
		     WHERE user_id = $1 AND context = $2
		     ORDER BY created_at DESC LIMIT $3
		 ) recent ORDER BY created_at`,
		userID, chatContext, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	defer rows.Close()

	turns := []types.ChatTurn{}
	for rows.Next() {
		var t types.ChatTurn
		if err := rows.Scan(&t.Role, &t.Message); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// ListConversations returns up to limit turns, oldest first. An empty
// chatContext lists every context.
func (db *DB) ListConversations(ctx context.Context, userID uuid.UUID, chatContext string, limit int) ([]Conversation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, role, message, context, created_at FROM ai_conversations
		 WHERE user_id = $1 AND ($2 = '' OR context = $2)
		 ORDER BY created_at LIMIT $3`,
		userID, chatContext, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	out := []Conversation{}
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Role, &c.Message, &c.Context, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ClearConversations deletes a user's turns, optionally limited to one
// context, and reports how many were removed.
func (db *DB) ClearConversations(ctx context.Context, userID uuid.UUID, chatContext string) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM ai_conversations WHERE user_id = $1 AND ($2 = '' OR context = $2)`,
		userID, chatContext)
	if err != nil {
		return 0, fmt.Errorf("failed to clear conversations: %w", err)
	}
	return tag.RowsAffected(), nil
}
