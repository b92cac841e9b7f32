package parse

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const maxSampledErrors = 20

// Transcript parses an exported chat. Structural problems (no timestamps,
// misaligned bodies) fail the whole parse; a record with a bad timestamp or
// broken encoding is dropped and counted in Result.Diagnostics.
func Transcript(text string) (*Result, error) {
	segments, err := Split(text)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Boundaries: len(segments),
		Messages:   make([]Message, 0, len(segments)),
	}
	diag := &result.Diagnostics

	for _, seg := range segments {
		if !utf8.ValidString(seg.Body) {
			diag.BadEncoding++
			diag.sample(fmt.Errorf("line %d: invalid UTF-8 in message body", seg.Line))
			continue
		}

		ts, err := ParseTimestamp(seg.Stamp)
		if err != nil {
			diag.BadTimestamps++
			diag.sample(fmt.Errorf("line %d: %w", seg.Line, err))
			continue
		}

		msg := Message{
			Timestamp: ts,
			Stamp:     seg.Stamp,
			Line:      seg.Line,
			Calendar:  Index(ts),
		}
		if sender, text, ok := SplitSender(seg.Body); ok {
			msg.Kind = KindPersonal
			msg.sender = sender
			msg.Body = text
		} else {
			msg.Kind = KindSystem
			msg.Body = text
		}
		result.Messages = append(result.Messages, msg)
	}

	return result, nil
}

func (d *Diagnostics) sample(err error) {
	if len(d.Errors) < maxSampledErrors {
		d.Errors = append(d.Errors, err)
	}
}

// File reads and parses a transcript from disk. Files larger than maxBytes
// are rejected before reading; maxBytes <= 0 disables the check.
func File(path string, maxBytes int64) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, info.Size(), maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Transcript(strings.TrimPrefix(string(data), "\ufeff"))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return result, nil
}
