package core

import "fmt"

// ParseError marks a fetch response whose body could not be decoded. The
// poller leaves the offset untouched on a ParseError so the backend
// redelivers the same updates on the next cycle.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse response: %s", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
