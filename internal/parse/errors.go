package parse

import (
	"errors"
	"fmt"
)

var (
	ErrNoMessages = errors.New("no timestamped messages found")
	ErrAlignment  = errors.New("timestamps and message bodies are misaligned")
	ErrDateParse  = errors.New("unparseable timestamp")
	ErrTooLarge   = errors.New("transcript exceeds size limit")
)

// AlignmentError reports that the transcript contains timestamp-shaped text
// that does not start a message. The whole parse is rejected.
type AlignmentError struct {
	Stamps int // timestamp-shaped substrings
	Bodies int // message boundaries at line starts
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%v: %d timestamps, %d bodies", ErrAlignment, e.Stamps, e.Bodies)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// DateParseError is a per-record failure; the record is dropped.
type DateParseError struct {
	Stamp  string
	Reason string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("%v %q: %s", ErrDateParse, e.Stamp, e.Reason)
}

func (e *DateParseError) Unwrap() error { return ErrDateParse }
