package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a PuzzleError if the input is not already one.
// Location and puzzle tags of a wrapped PuzzleError are carried over.
func Wrap(err error, errType ErrorType, code, message string) *PuzzleError {
	if err == nil {
		return nil
	}

	var pe *PuzzleError
	if errors.As(err, &pe) {
		return &PuzzleError{
			Type:     errType,
			Code:     code,
			Message:  message,
			Cause:    pe,
			Context:  pe.Context,
			Puzzle:   pe.Puzzle,
			FilePath: pe.FilePath,
			Line:     pe.Line,
			Column:   pe.Column,
		}
	}

	return &PuzzleError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// AtLine stamps a 1-based line number onto err. Plain errors become parse errors.
func AtLine(err error, line int) error {
	if err == nil {
		return nil
	}

	var pe *PuzzleError
	if errors.As(err, &pe) {
		if pe.Line == 0 {
			pe.Line = line
		}
		return err
	}

	return Wrap(err, ErrorTypeParse, ErrCodeBadLine, "malformed input").WithLocation("", line, 0)
}

// GetRootCause returns the innermost error of a chain.
func GetRootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// HasErrorCode reports whether any PuzzleError in the chain has the code.
func HasErrorCode(err error, code string) bool {
	for err != nil {
		var pe *PuzzleError
		if !errors.As(err, &pe) {
			return false
		}
		if pe.Code == code {
			return true
		}
		err = pe.Cause
	}

	return false
}

// Is and As re-export the standard helpers so callers need a single import.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)
