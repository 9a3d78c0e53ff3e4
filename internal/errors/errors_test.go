package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuzzleErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *PuzzleError
		expected string
	}{
		{
			name:     "code and message",
			err:      NewParseError(ErrCodeBadNumber, "invalid integer"),
			expected: "[ERR_BAD_NUMBER] invalid integer",
		},
		{
			name:     "puzzle and line",
			err:      NewParseError(ErrCodeBadLine, "bad").WithPuzzle("2023/07").WithLocation("", 3, 0),
			expected: "[ERR_BAD_LINE] puzzle:2023/07 input:3 bad",
		},
		{
			name:     "file line and column",
			err:      NewInputError("", "ragged").WithLocation("day01.txt", 4, 2),
			expected: "day01.txt:4:2 ragged",
		},
		{
			name:     "cause appended",
			err:      NewIOError(ErrCodeFileNotFound, "read failed", fmt.Errorf("boom")),
			expected: "[ERR_FILE_NOT_FOUND] read failed: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPuzzleErrorIs(t *testing.T) {
	err := fmt.Errorf("solving: %w", ErrPuzzleNotFound(2022, 30))

	assert.True(t, Is(err, NewNotFoundError(ErrCodePuzzleNotFound, "")))
	assert.False(t, Is(err, NewNotFoundError(ErrCodeFileNotFound, "")))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsParseError(err))
}

func TestWithContext(t *testing.T) {
	err := NewInputError(ErrCodeMissingMarker, "no start").
		WithContext("marker", "S").
		WithContext("rows", 5)

	require.NotNil(t, err.Context)
	assert.Equal(t, "S", err.Context["marker"])
	assert.Equal(t, 5, err.Context["rows"])
}

func TestWrapPreservesLocation(t *testing.T) {
	inner := ErrBadLine(7, "x=?", nil).WithPuzzle("2022/05")
	wrapped := Wrap(inner, ErrorTypeInternal, ErrCodeInternalError, "solve failed")

	assert.Equal(t, 7, wrapped.Line)
	assert.Equal(t, "2022/05", wrapped.Puzzle)
	assert.Equal(t, inner, wrapped.Unwrap())
	assert.Nil(t, Wrap(nil, ErrorTypeIO, "", ""))
}

func TestAtLine(t *testing.T) {
	t.Run("plain error becomes parse error", func(t *testing.T) {
		err := AtLine(New("unexpected token"), 12)
		assert.True(t, IsParseError(err))

		var pe *PuzzleError
		require.True(t, As(err, &pe))
		assert.Equal(t, 12, pe.Line)
	})

	t.Run("existing line is kept", func(t *testing.T) {
		err := AtLine(ErrBadLine(3, "?", nil), 9)

		var pe *PuzzleError
		require.True(t, As(err, &pe))
		assert.Equal(t, 3, pe.Line)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, AtLine(nil, 1))
	})
}

func TestHasErrorCodeAndRootCause(t *testing.T) {
	root := New("disk on fire")
	err := Wrap(Wrap(root, ErrorTypeIO, ErrCodeFileNotFound, "open"), ErrorTypeInternal, ErrCodeInternalError, "solve")

	assert.True(t, HasErrorCode(err, ErrCodeFileNotFound))
	assert.True(t, HasErrorCode(err, ErrCodeInternalError))
	assert.False(t, HasErrorCode(err, ErrCodeBadLine))
	assert.Equal(t, root, GetRootCause(err))
}

type recordingLogger struct {
	errors []string
	warns  []string
}

func (r *recordingLogger) Error(_ context.Context, _ error, msg string, _ ...interface{}) {
	r.errors = append(r.errors, msg)
}

func (r *recordingLogger) Warn(_ context.Context, _ error, msg string, _ ...interface{}) {
	r.warns = append(r.warns, msg)
}

func TestErrorHandler(t *testing.T) {
	logger := &recordingLogger{}
	handler := NewErrorHandler(logger)
	ctx := context.Background()

	handler.Handle(ctx, nil)
	handler.Handle(ctx, ErrBadLine(1, "?", nil))
	handler.Handle(ctx, ErrPuzzleNotFound(2020, 1))
	handler.Handle(ctx, New("plain"))

	assert.Equal(t, []string{"Puzzle input rejected", "Unhandled error occurred"}, logger.errors)
	assert.Equal(t, []string{"Request could not be served"}, logger.warns)
}

func TestErrorCollector(t *testing.T) {
	collector := NewErrorCollector()
	assert.False(t, collector.HasErrors())
	assert.NoError(t, collector.Err())

	bad := ErrBadLine(2, "x", nil).WithPuzzle("2022/01")
	missing := ErrPuzzleNotFound(2022, 30)
	collector.Add(nil)
	collector.Add(bad)
	collector.Add(missing)

	require.Equal(t, 2, collector.Len())
	assert.Equal(t, []error{bad}, collector.ByType(ErrorTypeParse))
	assert.Empty(t, collector.ByType(ErrorTypeNetwork))
	assert.Equal(t,
		"  - [ERR_BAD_LINE] puzzle:2022/01 input:2 cannot parse \"x\"\n  - "+missing.Error()+"\n",
		collector.Summary())

	err := collector.Err()
	require.Error(t, err)
	assert.True(t, HasErrorCode(err, ErrCodeBatchFailed))
	assert.True(t, Is(err, NewNotFoundError(ErrCodePuzzleNotFound, "")))
	assert.Contains(t, err.Error(), "2 puzzle(s) failed")

	errs := collector.Errors()
	errs[0] = nil
	assert.Equal(t, bad, collector.Errors()[0])

	collector.Clear()
	assert.Zero(t, collector.Len())
}
