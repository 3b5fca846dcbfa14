package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, false, slog.LevelWarn)

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestAppendCtx_AttrsFollowRecords(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelInfo)

	ctx := AppendCtx(context.Background(), slog.String("job", "abc123"))
	ctx = AppendCtx(ctx, slog.String("git", "deadbeef"))
	log.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "abc123", record["job"])
	assert.Equal(t, "deadbeef", record["git"])
	assert.Equal(t, "hello", record["msg"])
}

func TestAppendCtx_NilParent(t *testing.T) {
	var parent context.Context
	ctx := AppendCtx(parent, slog.String("k", "v"))
	assert.NotNil(t, ctx)
}
