package failure

import (
	"fmt"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
		code int
	}{
		{Unknown, "unknown", 1},
		{SourceNotFound, "source not found", 2},
		{SourceUnreadable, "source unreadable", 3},
		{RowShapeMismatch, "row shape mismatch", 4},
		{OutputUnwritable, "output unwritable", 5},
		{StalePage, "stale page", 6},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
			assert.Equal(t, tt.code, tt.kind.ExitCode())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := New(SourceNotFound, "data.csv", eris.New("loader: open"))
	assert.Contains(t, err.Error(), "source not found: data.csv: loader: open")

	rowErr := NewRow("data.csv", 7, eris.New("got 2 fields, want 3"))
	assert.Contains(t, rowErr.Error(), "row shape mismatch: data.csv: row 7: got 2 fields, want 3")
}

func TestKindOf(t *testing.T) {
	err := New(OutputUnwritable, "index.html", eris.New("publish: create temp"))
	wrapped := fmt.Errorf("generate: %w", err)

	assert.Equal(t, OutputUnwritable, KindOf(err))
	assert.Equal(t, OutputUnwritable, KindOf(wrapped))
	assert.True(t, Is(wrapped, OutputUnwritable))
	assert.False(t, Is(wrapped, SourceNotFound))
	assert.Equal(t, Unknown, KindOf(eris.New("plain")))
	assert.False(t, Is(nil, Unknown))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(eris.New("boom")))
	assert.Equal(t, 3, ExitCode(New(SourceUnreadable, "config.json", nil)))
}

func TestUnwrap(t *testing.T) {
	cause := eris.New("root cause")
	err := New(SourceUnreadable, "config.json", cause)
	require.NotNil(t, err.Unwrap())
	assert.Equal(t, cause, err.Unwrap())
}
