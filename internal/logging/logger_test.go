package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"":        zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"garbage": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	log := New(cfg)
	log.Info().Str("window_id", "1").Msg("hello")

	assert.Contains(t, buf.String(), `"window_id":"1"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf

	ctx := WithContext(context.Background(), New(cfg))
	ctx = WithComponent(ctx, "layout")
	ctx = WithSpace(ctx, "main")
	ctx = WithWindowID(ctx, "42")

	FromContext(ctx).Info().Msg("scoped")

	assert.Contains(t, buf.String(), `"component":"layout"`)
	assert.Contains(t, buf.String(), `"space":"main"`)
	assert.Contains(t, buf.String(), `"window_id":"42"`)
}

func TestFromContext_NoLoggerIsNoop(t *testing.T) {
	log := FromContext(context.Background())
	assert.NotPanics(t, func() { log.Info().Msg("dropped") })
}
