package errors

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrorCollector gathers the failures of a batch of solves. It is safe for
// concurrent use.
type ErrorCollector struct {
	errors []error
	mutex  sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add records err. Nil errors are ignored.
func (ec *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// Errors returns a copy of the collected errors in the order they were added.
func (ec *ErrorCollector) Errors() []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]error, len(ec.errors))
	copy(result, ec.errors)
	return result
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.errors) > 0
}

// Len returns the number of collected errors.
func (ec *ErrorCollector) Len() int {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	return len(ec.errors)
}

// Clear clears all errors
func (ec *ErrorCollector) Clear() {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = ec.errors[:0]
}

// ByType returns the collected PuzzleErrors of one category.
func (ec *ErrorCollector) ByType(errType ErrorType) []error {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	var matched []error
	for _, err := range ec.errors {
		if hasType(err, errType) {
			matched = append(matched, err)
		}
	}
	return matched
}

// Err folds the collected errors into one, or returns nil. The result
// unwraps to every collected error.
func (ec *ErrorCollector) Err() error {
	errs := ec.Errors()
	if len(errs) == 0 {
		return nil
	}
	err := NewUnsolvableError(ErrCodeBatchFailed,
		fmt.Sprintf("%d puzzle(s) failed", len(errs)))
	err.Cause = errors.Join(errs...)
	return err
}

// Summary lists one failure per line.
func (ec *ErrorCollector) Summary() string {
	var sb strings.Builder
	for _, err := range ec.Errors() {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteByte('\n')
	}
	return sb.String()
}
