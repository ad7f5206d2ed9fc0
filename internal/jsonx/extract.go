// Package jsonx pulls a JSON payload out of free-form model output.
package jsonx

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind selects which JSON container Extract looks for.
type Kind int

const (
	Object Kind = iota
	Array
)

func (k Kind) delimiters() (byte, byte) {
	if k == Array {
		return '[', ']'
	}
	return '{', '}'
}

// ErrNoPayload is returned when no JSON container of the requested kind is
// present in the text.
var ErrNoPayload = errors.New("no JSON payload in response")

// ParseError tags a model response that could not be turned into the
// expected typed value.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extract returns the JSON payload embedded in text. Fenced responses
// (```json ... ```) are cut from the first opening delimiter to the last
// closing one; unfenced responses are used as-is after trimming. Empty text
// is reported as ErrNoPayload.
func Extract(text string, kind Kind) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoPayload
	}
	if !strings.Contains(text, "```") {
		return text, nil
	}

	left, right := kind.delimiters()
	start := strings.IndexByte(text, left)
	end := strings.LastIndexByte(text, right)
	if start < 0 || end < start {
		return "", ErrNoPayload
	}
	return text[start : end+1], nil
}

// Decode extracts the payload of the given kind from text and unmarshals it
// into v. Every failure is returned as a *ParseError.
func Decode(text string, kind Kind, v any) error {
	payload, err := Extract(text, kind)
	if err != nil {
		return &ParseError{Raw: text, Err: err}
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return &ParseError{Raw: text, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return nil
}

// Invalid wraps a schema violation found after a successful unmarshal.
func Invalid(raw string, format string, args ...any) error {
	return &ParseError{Raw: raw, Err: fmt.Errorf(format, args...)}
}
