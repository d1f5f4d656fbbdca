package engine

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go-chi-calculator/internal/numfmt"
)

// MaxEntryLen is the longest entry accepted while typing.
const MaxEntryLen = 14

// ErrMalformedEntry is returned by ParseEntry for text that is neither a
// decimal literal nor the error token.
var ErrMalformedEntry = errors.New("malformed entry")

// literal matches what the display can hold: an optional minus, digits, an
// optional point with digits, and the exponent suffix produced by numfmt.
var literal = regexp.MustCompile(`^-?[0-9]+(\.[0-9]*)?(e[+-][0-9]+)?$`)

// Entry is the text on the display. The zero value reads as "0".
type Entry struct {
	text string
}

var (
	zeroEntry  = Entry{text: "0"}
	errorEntry = Entry{text: numfmt.ErrorToken}
)

// ParseEntry validates s as display text.
func ParseEntry(s string) (Entry, error) {
	if numfmt.IsError(s) {
		return errorEntry, nil
	}
	if !literal.MatchString(s) {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, s)
	}
	return Entry{text: s}, nil
}

// entryOf renders a computed value.
func entryOf(v float64) Entry {
	return Entry{text: numfmt.Format(v)}
}

func (e Entry) String() string {
	if e.text == "" {
		return "0"
	}
	return e.text
}

// IsError reports whether the entry is the error token.
func (e Entry) IsError() bool {
	return numfmt.IsError(e.text)
}

// IsZero reports whether the entry is the literal "0".
func (e Entry) IsZero() bool {
	return e.String() == "0"
}

// Value parses the entry. The error token parses as NaN.
func (e Entry) Value() float64 {
	if e.IsError() {
		return math.NaN()
	}
	// The literal is validated on construction, so the only possible error is
	// a range error, for which ParseFloat already returns ±Inf.
	v, _ := strconv.ParseFloat(e.String(), 64)
	return v
}

func (e Entry) hasPoint() bool {
	return strings.ContainsRune(e.text, '.')
}

func (e Entry) hasExponent() bool {
	return strings.ContainsRune(e.text, 'e')
}

// withDigit appends d, replacing a lone "0" or the error token.
func (e Entry) withDigit(d byte) Entry {
	if e.IsError() || e.IsZero() {
		return Entry{text: string(d)}
	}
	return e.extend(e.String() + string(d))
}

// withPoint appends a decimal point unless the entry already has one or is in
// exponent form.
func (e Entry) withPoint() Entry {
	if e.IsError() {
		return Entry{text: "0."}
	}
	if e.hasPoint() || e.hasExponent() {
		return e
	}
	return e.extend(e.String() + ".")
}

// extend truncates next to MaxEntryLen and keeps e when the result would not
// be a valid literal.
func (e Entry) extend(next string) Entry {
	if len(next) > MaxEntryLen {
		next = next[:MaxEntryLen]
	}
	if !literal.MatchString(next) {
		return e
	}
	return Entry{text: next}
}

// negated flips the leading minus. "0" and the error token are unchanged.
func (e Entry) negated() Entry {
	if e.IsError() || e.IsZero() {
		return e
	}
	if s, ok := strings.CutPrefix(e.text, "-"); ok {
		return Entry{text: s}
	}
	return Entry{text: "-" + e.text}
}
