package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelDebug)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	want := []struct {
		level string
		msg   string
		key   string
		val   float64
	}{
		{"DEBUG", "dbg", "a", 1},
		{"INFO", "inf", "b", 2},
		{"WARN", "wrn", "c", 3},
		{"ERROR", "err", "d", 4},
	}

	for i, w := range want {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &rec))
		assert.Equal(t, w.level, rec["level"])
		assert.Equal(t, w.msg, rec["msg"])
		assert.Equal(t, w.val, rec[w.key])
	}
}

func TestJSONLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelInfo)

	log.Debug(context.Background(), "invisible")
	assert.Empty(t, buf.String())
}

func TestWithAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelInfo)

	child := log.With("user", "peggy")
	child.Info(context.Background(), "challenge issued", "auth_id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "peggy", rec["user"])
	assert.Equal(t, "abc", rec["auth_id"])
}

func TestNewSlogLoggerWrapsExisting(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	log := NewSlogLogger(base)
	log.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "msg=hello")
}
