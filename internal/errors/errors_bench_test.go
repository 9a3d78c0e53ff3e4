package errors

import (
	"fmt"
	"testing"
)

func BenchmarkErrorCollector_Add(b *testing.B) {
	collector := NewErrorCollector()

	b.ResetTimer()
	for i := range b.N {
		collector.Add(ErrBadLine(i+1, "?", nil))
	}
}

func BenchmarkErrorCollector_Summary(b *testing.B) {
	collector := NewErrorCollector()
	for i := range 100 {
		collector.Add(ErrBadLine(i+1, fmt.Sprint(i), nil).WithPuzzle("2023/07"))
	}

	b.ResetTimer()
	for range b.N {
		_ = collector.Summary()
	}
}

func BenchmarkPuzzleError_Error(b *testing.B) {
	err := Wrap(ErrBadNumber("x1", nil).WithPuzzle("2024/11").WithLocation("day11.txt", 3, 7),
		ErrorTypeInternal, ErrCodeInternalError, "solve failed")

	b.ResetTimer()
	for range b.N {
		_ = err.Error()
	}
}

func BenchmarkHasErrorCode(b *testing.B) {
	var err error = ErrBadLine(1, "?", nil)
	for i := range 8 {
		err = Wrap(err, ErrorTypeInternal, fmt.Sprintf("ERR_LAYER_%d", i), "layer")
	}

	b.ResetTimer()
	for range b.N {
		_ = HasErrorCode(err, ErrCodeBadLine)
	}
}
