package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m), line)
		out = append(out, m)
	}
	return out
}

func TestKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, false)

	Info("Search finished", "status", "found", "probes", 42)
	Warn("Slow search", "workers", 8)
	Error("Search failed", errors.New("boom"), "prefix", "mint")

	got := lines(t, &buf)
	require.Len(t, got, 3)

	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "Search finished", got[0]["message"])
	assert.Equal(t, "found", got[0]["status"])
	assert.Equal(t, float64(42), got[0]["probes"])

	assert.Equal(t, "warn", got[1]["level"])
	assert.Equal(t, float64(8), got[1]["workers"])

	assert.Equal(t, "error", got[2]["level"])
	assert.Equal(t, "boom", got[2]["error"])
	assert.Equal(t, "mint", got[2]["prefix"])
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, false)
	Debug("hidden")
	assert.Empty(t, buf.String())

	SetOutput(&buf, true)
	Debug("shown", "k", "v")
	got := lines(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "debug", got[0]["level"])
	assert.Equal(t, "v", got[0]["k"])
}

func TestConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(ConsoleWriter(&buf), false)
	Info("Account generated", "address", "0xabc")
	assert.Contains(t, buf.String(), "Account generated")
	assert.Contains(t, buf.String(), "address")
	assert.Contains(t, buf.String(), "0xabc")
}
