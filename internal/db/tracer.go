package db

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const defaultSlowQuery = 200 * time.Millisecond

// queryTracer logs every statement at debug and slow or failed ones at warn.
// Arguments are never logged since they carry password hashes and free text.
type queryTracer struct {
	log  zerolog.Logger
	slow time.Duration
	now  func() time.Time
}

func newQueryTracer(log zerolog.Logger, slow time.Duration) *queryTracer {
	return &queryTracer{log: log, slow: slow, now: time.Now}
}

type traceKey struct{}

type traceStart struct {
	sql   string
	args  int
	start time.Time
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{sql: data.SQL, args: len(data.Args), start: t.now()})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	st, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}
	elapsed := t.now().Sub(st.start)
	slow := elapsed >= t.slow

	evt := t.log.Debug()
	if slow || data.Err != nil {
		evt = t.log.Warn()
	}
	evt.Float64("elapsed_ms", float64(elapsed.Microseconds())/1000).
		Bool("slow", slow).
		Str("sql", compact(st.sql)).
		Int("args", st.args).
		Int64("rows", data.CommandTag.RowsAffected()).
		Err(data.Err).
		Msg("pg query")
}

// compact collapses runs of whitespace so multi-line SQL logs on one line.
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
