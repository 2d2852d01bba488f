package store

import "fmt"

// ValidationError reports a rejected write: a required field was empty after
// trimming, or exceeded its length cap. The operation that returned it made
// no state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func errRequired(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

func errTooLong(field string, max int) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("too long (max %d)", max)}
}

// IndexError reports an out-of-range positional reference, typically a stale
// UI index after a delete. The operation that returned it made no state
// change.
type IndexError struct {
	List  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range (len %d)", e.List, e.Index, e.Len)
}

func checkIndex(list string, index, n int) error {
	if index < 0 || index >= n {
		return &IndexError{List: list, Index: index, Len: n}
	}
	return nil
}
