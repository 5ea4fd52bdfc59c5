// Package blind removes explicit author-identifying markers from a
// document before it is shown to any reviewer.
package blind

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyDocument indicates the input is empty or whitespace-only
	ErrEmptyDocument = errors.New("document is empty")

	// ErrNotText indicates the input is not valid UTF-8 text
	ErrNotText = errors.New("document is not valid UTF-8 text")
)

// Redacted is the replacement placed where an identity value was removed
const Redacted = "[redacted]"

// identityLine matches metadata lines that name the author directly.
// Self-referential framing ("I", "my") is deliberately left alone; only
// explicit identity markers are removed.
var identityLine = regexp.MustCompile(`(?im)^(\s*(?:[*#>\s]*)(?:authors?|affiliations?|e-?mail|orcid|correspondence|contact)\s*:)\s*.*$`)

// emailAddr matches bare email addresses anywhere in the text
var emailAddr = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Apply returns the document with author-identifying markers redacted.
// It is deterministic and idempotent: Apply(Apply(d)) == Apply(d).
func Apply(doc string) (string, error) {
	if !utf8.ValidString(doc) {
		return "", ErrNotText
	}
	if strings.TrimSpace(doc) == "" {
		return "", ErrEmptyDocument
	}

	out := identityLine.ReplaceAllString(doc, "${1} "+Redacted)
	out = emailAddr.ReplaceAllString(out, Redacted)

	return out, nil
}
