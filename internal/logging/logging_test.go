package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noodlebox/celestial/internal/logging"
)

func TestNewWritesJSONWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, false)

	logger.Info("schedule started", "interval", "1s")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "schedule started", record["msg"])
	assert.Equal(t, "1s", record["interval"])
}

func TestNewDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logging.New(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	logging.New(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
