package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Str("script", "boss").Msg("shown")
	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "script=boss")
	assert.NotContains(t, out, "\x1b[", "non-terminal output must not be colored")
}

func TestSampledKeepsBurst(t *testing.T) {
	var buf bytes.Buffer
	log := Sampled(New(&buf, "info"))
	for i := 0; i < 5; i++ {
		log.Info().Int("i", i).Msg("tick")
	}
	assert.Equal(t, 5, bytes.Count(buf.Bytes(), []byte("tick")))
}
