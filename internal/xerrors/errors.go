// Package xerrors provides the extraction pipeline's flat error taxonomy.
//
// Every failure the core pipeline can produce carries exactly one Tag (see
// spec §7). Callers that need to branch on failure kind should use errors.As
// against *Error and inspect its Tag, rather than string-matching messages.
package xerrors

import (
	"errors"
	"fmt"
)

// Tag identifies one of the fixed failure categories the core pipeline can
// surface. Tags are format constants, not an extensible registry.
type Tag string

const (
	InvalidFilename   Tag = "INVALID_FILENAME"
	UnsupportedIssue  Tag = "UNSUPPORTED_ISSUE"
	UnsupportedFormat Tag = "UNSUPPORTED_FORMAT"
	InvalidArchive    Tag = "INVALID_ARCHIVE"
	FileTooLarge      Tag = "FILE_TOO_LARGE"
	TooManyFiles      Tag = "TOO_MANY_FILES"
	SuspiciousContent Tag = "SUSPICIOUS_CONTENT"
	InvalidDatabase   Tag = "INVALID_DATABASE"
	DecryptionFailed  Tag = "DECRYPTION_FAILED"
	MalformedContent  Tag = "MALFORMED_CONTENT"
	IOError           Tag = "IO_ERROR"
)

// Error is the single error type surfaced by every exported pipeline
// operation. Message carries human-readable context; Err, when non-nil, is
// the underlying cause and participates in errors.Unwrap.
type Error struct {
	Tag     Tag
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Tag)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an *Error with the given tag and message.
func New(tag Tag, message string) *Error {
	return &Error{Tag: tag, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(tag Tag, format string, args ...interface{}) *Error {
	return &Error{Tag: tag, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error with the given tag, wrapping an underlying cause.
// If err is nil, Wrap returns nil.
func Wrap(tag Tag, err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Tag: tag, Message: message, Err: err}
}

// Wrapf creates an *Error with a formatted message, wrapping an underlying cause.
func Wrapf(tag Tag, err error, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Tag: tag, Message: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err is an *Error carrying the given tag.
func Is(err error, tag Tag) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Tag == tag
	}
	return false
}

// As wraps errors.As for convenience.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
