package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/glyphlab/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("trace")
	assert.Error(t, err)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "info", "json")
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("loaded", "lines", 9)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "loaded", rec["msg"])
	assert.Equal(t, "glyphlab", rec["component"])
	assert.EqualValues(t, 9, rec["lines"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "debug", "text")
	require.NoError(t, err)
	log.Debug("step", "k", 3)
	assert.Contains(t, buf.String(), "msg=step")
	assert.Contains(t, buf.String(), "component=glyphlab")

	_, err = logging.New(&buf, "info", "xml")
	assert.Error(t, err)
	_, err = logging.New(&buf, "chatty", "text")
	assert.Error(t, err)
}
