package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureJSON(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: "info", Pretty: true}) })

	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})

	Info().Msg("dropped")
	Warn().Str("resource", "member").Msg("kept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "member", entry["resource"])
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestConfigureUnknownLevel(t *testing.T) {
	t.Cleanup(func() { Configure(Config{Level: "info", Pretty: true}) })

	Configure(Config{Level: "chatty", Output: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
