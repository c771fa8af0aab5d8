package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"WARN":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"":         zerolog.InfoLevel,
		" bogus  ": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "Debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_SERVICE", "api")

	opt := FromEnv()
	assert.Equal(t, "debug", opt.Level)
	assert.Equal(t, "json", opt.Format)
	assert.Equal(t, "api", opt.Service)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_SERVICE", "")

	opt := FromEnv()
	assert.Equal(t, "info", opt.Level)
	assert.Equal(t, "console", opt.Format)
	assert.Equal(t, "comeback", opt.Service)
}

func TestInit_NamedAndContext(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Level: "debug", Format: "json", Service: "svc-test", Writer: &buf})

	Get().Info().Msg("root-msg")
	Named("roadmap").Info().Msg("named-msg")

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-9")
	C(ctx).Info().Msg("ctx-msg")
	C(context.Background()).Debug().Msg("bare-msg")

	out := buf.String()
	assert.Contains(t, out, `"service":"svc-test"`)
	assert.Contains(t, out, "root-msg")
	assert.Contains(t, out, `"component":"roadmap"`)
	assert.Contains(t, out, `"request_id":"req-1"`)
	assert.Contains(t, out, `"user_id":"user-9"`)
	assert.Contains(t, out, "bare-msg")
}

func TestWithRequestID_Empty(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, WithRequestID(ctx, ""))
	assert.Equal(t, ctx, WithUserID(ctx, ""))
}
