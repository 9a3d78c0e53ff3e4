package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeUnsolvable ErrorType = "unsolvable"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// PuzzleError is a structured error type with context.
type PuzzleError struct {
	Type     ErrorType
	Code     string
	Message  string
	Cause    error
	Context  map[string]interface{}
	Puzzle   string
	FilePath string
	Line     int
	Column   int
}

// Error implements the error interface.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Puzzle != "" {
		parts = append(parts, "puzzle:"+e.Puzzle)
	}

	if e.FilePath != "" || e.Line > 0 {
		location := e.FilePath
		if location == "" {
			location = "input"
		}
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				location += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PuzzleError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a PuzzleError of the same type and code.
func (e *PuzzleError) Is(target error) bool {
	var t *PuzzleError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *PuzzleError) WithContext(key string, value interface{}) *PuzzleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation adds file location information. Lines are 1-based.
func (e *PuzzleError) WithLocation(filePath string, line, column int) *PuzzleError {
	e.FilePath = filePath
	e.Line = line
	e.Column = column

	return e
}

// WithPuzzle tags the error with the puzzle key, e.g. "2023/07".
func (e *PuzzleError) WithPuzzle(puzzle string) *PuzzleError {
	e.Puzzle = puzzle

	return e
}

// NewParseError creates an error for input that does not match the puzzle grammar.
func NewParseError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeParse,
		Code:    code,
		Message: message,
	}
}

// NewInputError creates an error for input that parses but breaks a puzzle rule.
func NewInputError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeInput,
		Code:    code,
		Message: message,
	}
}

// NewUnsolvableError creates an error for a well-formed input with no answer.
func NewUnsolvableError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeUnsolvable,
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a lookup error.
func NewNotFoundError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewNetworkError creates an error for a failed remote call.
func NewNetworkError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeNetwork,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsParseError checks if an error was raised while parsing puzzle input.
func IsParseError(err error) bool {
	return hasType(err, ErrorTypeParse)
}

// IsInputError checks if an error reports a puzzle rule violation.
func IsInputError(err error) bool {
	return hasType(err, ErrorTypeInput)
}

// IsNotFound checks if an error is a failed lookup.
func IsNotFound(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

func hasType(err error, t ErrorType) bool {
	var pe *PuzzleError
	if errors.As(err, &pe) {
		return pe.Type == t
	}

	return false
}

// ErrorHandler logs errors according to their category.
type ErrorHandler struct {
	logger Logger
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle processes an error with appropriate logging.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var pe *PuzzleError
	if !errors.As(err, &pe) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch pe.Type {
	case ErrorTypeParse, ErrorTypeInput:
		h.logger.Error(ctx, err, "Puzzle input rejected",
			"type", pe.Type,
			"code", pe.Code,
			"puzzle", pe.Puzzle,
			"line", pe.Line)
	case ErrorTypeNotFound, ErrorTypeConfig:
		h.logger.Warn(ctx, err, "Request could not be served",
			"type", pe.Type,
			"code", pe.Code)
	default:
		h.logger.Error(ctx, err, "Error occurred",
			"type", pe.Type,
			"code", pe.Code,
			"puzzle", pe.Puzzle)
	}
}

// Common error codes.
const (
	ErrCodeBadLine          = "ERR_BAD_LINE"
	ErrCodeBadNumber        = "ERR_BAD_NUMBER"
	ErrCodeEmptyInput       = "ERR_EMPTY_INPUT"
	ErrCodeRaggedGrid       = "ERR_RAGGED_GRID"
	ErrCodeMissingMarker    = "ERR_MISSING_MARKER"
	ErrCodeNoSolution       = "ERR_NO_SOLUTION"
	ErrCodePuzzleNotFound   = "ERR_PUZZLE_NOT_FOUND"
	ErrCodeDuplicatePuzzle  = "ERR_DUPLICATE_PUZZLE"
	ErrCodeFileNotFound     = "ERR_FILE_NOT_FOUND"
	ErrCodeFetchFailed      = "ERR_FETCH_FAILED"
	ErrCodeMissingSession   = "ERR_MISSING_SESSION"
	ErrCodeConfigInvalid    = "ERR_CONFIG_INVALID"
	ErrCodeInternalError    = "ERR_INTERNAL"
	ErrCodeValidationFailed = "ERR_VALIDATION_FAILED"
	ErrCodeBatchFailed      = "ERR_BATCH_FAILED"
)

// Helper functions for common errors

// ErrBadLine creates a parse error pointing at a 1-based input line.
func ErrBadLine(line int, text string, cause error) *PuzzleError {
	err := NewParseError(ErrCodeBadLine, fmt.Sprintf("cannot parse %q", text))
	err.Cause = cause
	return err.WithLocation("", line, 0)
}

// ErrBadNumber creates a parse error for a token that is not an integer.
func ErrBadNumber(token string, cause error) *PuzzleError {
	err := NewParseError(ErrCodeBadNumber, fmt.Sprintf("invalid integer %q", token))
	err.Cause = cause
	return err
}

// ErrEmptyInput creates an input error for a blank input.
func ErrEmptyInput() *PuzzleError {
	return NewInputError(ErrCodeEmptyInput, "input is empty")
}

// ErrMissingMarker creates an input error for a required tile or token that is absent.
func ErrMissingMarker(marker string) *PuzzleError {
	return NewInputError(ErrCodeMissingMarker, "input has no "+marker)
}

// ErrNoSolution creates an unsolvable error.
func ErrNoSolution(message string) *PuzzleError {
	return NewUnsolvableError(ErrCodeNoSolution, message)
}

// ErrPuzzleNotFound creates a registry lookup error.
func ErrPuzzleNotFound(year, day int) *PuzzleError {
	return NewNotFoundError(
		ErrCodePuzzleNotFound,
		fmt.Sprintf("no solution registered for %d day %d", year, day),
	)
}
