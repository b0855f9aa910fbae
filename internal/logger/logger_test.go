package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLevel(t *testing.T) {
	var buf bytes.Buffer

	log := WithLevel(&buf, "warn")
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
	log.Info().Msg("hidden")
	log.Warn().Str("game", "A").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"game":"A"`)
}

func TestWithLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, WithLevel(&bytes.Buffer{}, "").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, WithLevel(&bytes.Buffer{}, "loud").GetLevel())
}
