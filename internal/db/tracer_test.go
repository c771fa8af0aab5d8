package db

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestTracer(buf *bytes.Buffer, step time.Duration) *queryTracer {
	tr := newQueryTracer(zerolog.New(buf).Level(zerolog.DebugLevel), 100*time.Millisecond)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	tr.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * step)
	}
	return tr
}

func TestQueryTracer_FastQuery(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracer(&buf, 5*time.Millisecond)

	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{
		SQL:  "SELECT id\n\t\tFROM users\n\t\tWHERE email = $1",
		Args: []any{"secret@example.com"},
	})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("SELECT 1")})

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"sql":"SELECT id FROM users WHERE email = $1"`)
	assert.Contains(t, out, `"elapsed_ms":5`)
	assert.Contains(t, out, `"args":1`)
	assert.Contains(t, out, `"slow":false`)
	assert.NotContains(t, out, "secret@example.com")
}

func TestQueryTracer_SlowOrFailed(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracer(&buf, 250*time.Millisecond)

	ctx := tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT pg_sleep(1)"})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"slow":true`)

	buf.Reset()
	tr = newTestTracer(&buf, time.Millisecond)
	ctx = tr.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT broken"})
	tr.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("syntax error")})
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "syntax error")
}

func TestQueryTracer_EndWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTracer(&buf, time.Millisecond)
	tr.TraceQueryEnd(context.Background(), nil, pgx.TraceQueryEndData{})
	assert.Empty(t, buf.String())
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "SELECT a FROM b", compact("  SELECT a\n\tFROM   b \r\n"))
	assert.Equal(t, "", compact(" \n "))
}
