package xerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"with message", New(InvalidFilename, "bad name"), "INVALID_FILENAME: bad name"},
		{"without message", &Error{Tag: MalformedContent}, "MALFORMED_CONTENT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(IOError, nil, "x") != nil {
		t.Fatal("Wrap(tag, nil, ...) must return nil")
	}
	if Wrapf(IOError, nil, "x %d", 1) != nil {
		t.Fatal("Wrapf(tag, nil, ...) must return nil")
	}
}

func TestUnwrapAndIs(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(IOError, cause, "temp file")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should find wrapped cause")
	}
	if !Is(err, IOError) {
		t.Errorf("Is(err, IOError) = false, want true")
	}
	if Is(err, DecryptionFailed) {
		t.Errorf("Is(err, DecryptionFailed) = true, want false")
	}
}

func TestAs(t *testing.T) {
	err := New(SuspiciousContent, "zip slip")
	var target *Error
	if !As(err, &target) {
		t.Fatal("As should succeed")
	}
	if target.Tag != SuspiciousContent {
		t.Errorf("Tag = %v, want %v", target.Tag, SuspiciousContent)
	}
}
