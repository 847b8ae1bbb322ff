package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparsableDate indicates that no recognised pattern matched the input.
var ErrUnparsableDate = errors.New("dateparse: unable to parse date")

// beforeCommonEra is the marker that flips the sign of a resolved year.
const beforeCommonEra = "B.C."

// Span sizes for the midpoint rules.
const (
	centurySpan    = 100
	millenniumSpan = 1000
)

// rule is one pattern of the priority chain. group selects the capture
// holding the number; resolve maps that number to a year.
type rule struct {
	name    string
	re      *regexp.Regexp
	group   int
	resolve func(n float64) float64
}

// identity keeps the captured number as the year.
func identity(n float64) float64 { return n }

// midpoint returns a resolver for the middle year of the N-th span.
func midpoint(span float64) func(float64) float64 {
	return func(n float64) float64 { return (n-1)*span + span/2 }
}

// rules is the ordered pattern chain; first match wins.
var rules = []rule{
	// "15th century", "10th-century", "10th–century", "11th c.", "early 14th period"
	{name: "century", re: regexp.MustCompile(`(\d+)..[ \x{2013}-]+[CcPp]`), group: 1, resolve: midpoint(centurySpan)},
	// "3rd millennium"
	{name: "millennium", re: regexp.MustCompile(`(\d+).. +[Mm]`), group: 1, resolve: midpoint(millenniumSpan)},
	// "514 B.C."
	{name: "number-era", re: regexp.MustCompile(`(\d+) (B\.C\.|A\.D\.)`), group: 1, resolve: identity},
	// "A.D. 25"
	{name: "era-number", re: regexp.MustCompile(`(B\.C\.|A\.D\.) (\d+)`), group: 2, resolve: identity},
	// "ca. 1920"
	{name: "plain-year", re: regexp.MustCompile(`(\d{3,4})`), group: 1, resolve: identity},
	// anything with digits
	{name: "any-digits", re: regexp.MustCompile(`(\d+)`), group: 1, resolve: identity},
}

// ParseYear converts a free-text date into a signed year.
//
// Returns ErrUnparsableDate (wrapped with the offending text) when no rule
// matches. The result is negative when s mentions "B.C.".
//
// Complexity: O(len(s)) per rule, six rules at most.
func ParseYear(s string) (float64, error) {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		n, err := strconv.ParseFloat(m[r.group], 64)
		if err != nil {
			// digit-only captures always parse; keep the chain total anyway
			return 0, fmt.Errorf("%w: %q (%s: %v)", ErrUnparsableDate, s, r.name, err)
		}
		year := r.resolve(n)
		if strings.Contains(s, beforeCommonEra) {
			year = -year
		}

		return year, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnparsableDate, s)
}

// unknownMarkers are placeholder values catalogue staff use for "no date".
var unknownMarkers = map[string]struct{}{
	"":               {},
	"Date unknown":   {},
	"date unknown":   {},
	"date uncertain": {},
	"n.d.":           {},
	"unknown":        {},
}

// IsUnknownDate reports whether s is one of the known "no date" placeholders.
// Such values must be skipped before ParseYear, since a placeholder that
// happens to contain digits would otherwise parse.
func IsUnknownDate(s string) bool {
	_, ok := unknownMarkers[strings.TrimSpace(s)]

	return ok
}
