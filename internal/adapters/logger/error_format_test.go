package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/orchay/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("permission denied"),
			wantMessages: []string{"permission denied"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("root cause"),
					"middle layer",
				),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name: "metadata stays on its level",
			err: func() error {
				inner := zerr.With(zerr.New("inner"), "inner_key", "inner_val")
				return zerr.With(zerr.Wrap(inner, "outer"), "outer_key", "outer_val")
			}(),
			wantMessages: []string{"outer", "inner"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			require.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message, "message mismatch at index %d", i)
			}
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	inner := zerr.With(zerr.New("read timeout"), "timeout_ms", 5000)
	outer := zerr.With(zerr.Wrap(inner, "failed to read wbs.yaml"), "project", "projA")

	entries := logger.CollectErrorEntriesExported(outer)
	require.Len(t, entries, 2)
	assert.Equal(t, "projA", entries[0].Metadata["project"])
	assert.Equal(t, 5000, entries[1].Metadata["timeout_ms"])
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "project not found"}},
			want:    "Error: project not found",
		},
		{
			name: "three entries",
			entries: []logger.ErrorEntry{
				{Message: "failed to emit notification"},
				{Message: "failed to write to subscriber"},
				{Message: "broken pipe"},
			},
			want: "Error: failed to emit notification\n\n  Caused by:\n    → failed to write to subscriber\n    → broken pipe",
		},
		{
			name: "metadata sorted alphabetically",
			entries: []logger.ErrorEntry{
				{
					Message:  "server failed",
					Metadata: map[string]any{"reason": "bind", "addr": "127.0.0.1:7421"},
				},
			},
			want: "Error: server failed\n       addr: 127.0.0.1:7421\n       reason: bind",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "watch session ended unexpectedly"},
				{Message: "watch root does not exist", Metadata: map[string]any{"root": "/r"}},
			},
			want: "Error: watch session ended unexpectedly\n\n  Caused by:\n    → watch root does not exist\n      root: /r",
		},
		{
			name: "multiline cause message",
			entries: []logger.ErrorEntry{
				{Message: "failed to parse wbs.yaml"},
				{Message: "yaml: line 4:\nmapping values are not allowed"},
			},
			want: "Error: failed to parse wbs.yaml\n\n  Caused by:\n    → yaml: line 4:\n      mapping values are not allowed",
		},
		{
			name:    "empty entries",
			entries: []logger.ErrorEntry{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
