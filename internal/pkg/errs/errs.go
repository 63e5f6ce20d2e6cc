// Package errs wraps cockroachdb/errors so the rest of the codebase
// never imports it directly: wrapping, sentinel marking and stack
// extraction all go through here.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, keeping the original stack trace.
// A nil err stays nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark ties err to a sentinel so errors.Is(err, markErr) holds without
// losing the underlying cause.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders the verbose error and returns up to
// maxLines of it, for structured log output. maxLines <= 0 means all.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
