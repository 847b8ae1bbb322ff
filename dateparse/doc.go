// Package dateparse turns free-text catalogue dates ("15th century",
// "514 B.C.", "ca. 1920") into a signed numeric year.
//
// The parser is a best-effort heuristic, not a calendar parser. Patterns are
// tried in strict priority order and the first match wins:
//
//  1. "<N>th century", "10th-century", "11th c.", "early 14th period"
//     → midpoint of the century: (N−1)·100 + 50.
//  2. "<N>rd millennium" → midpoint of the millennium: (N−1)·1000 + 500.
//  3. "<N> B.C." / "<N> A.D." → N.
//  4. "B.C. <N>" / "A.D. <N>" → N.
//  5. the first run of 3 to 4 digits → that number.
//  6. the first run of digits of any length → that number.
//
// After a year is resolved, the result is negated when the text contains the
// literal marker "B.C.". Centuries and millennia deliberately collapse to a
// midpoint and the final rule deliberately accepts any digits, so the parser
// never reports confidence: callers that need exact dates must reject
// ambiguous input before calling ParseYear.
//
// Errors:
//
//	ErrUnparsableDate – no pattern matched; the record should be skipped.
package dateparse
