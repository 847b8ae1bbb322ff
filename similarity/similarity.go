// Package similarity scores pairs of items. A Metric is the strategy the
// grouper applies to every item pair; its score becomes the edge weight.
//
// All metrics are pure and symmetric: Score(a, b) == Score(b, a). Scores are
// distances in the sense that the grouper keeps a pair when
// score <= threshold, so they must never be negative.
//
//	Date    – |a.Year − b.Year|
//	Creator – 1 when creators match exactly (case-sensitive), else 0
//	Origin  – 1 when origins match exactly (case-sensitive), else 0
//
// The creator/origin scores keep the exhibit tool's historical convention,
// which pairs them with a threshold of 2. With outputs in {0, 1} that
// threshold keeps every pair. DefaultThreshold reproduces it; a threshold of
// 0 keeps only differing pairs.
package similarity

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/exhibit/item"
)

// ErrUnknownKind indicates an unrecognised metric selector.
var ErrUnknownKind = errors.New("similarity: unknown metric kind")

// Metric scores two distinct items.
type Metric interface {
	// Score returns the pair's distance; symmetric and non-negative.
	Score(a, b item.Item) float64

	// Name returns a short stable identifier for logs.
	Name() string
}

// Date scores by year proximity.
type Date struct{}

// Score returns the absolute difference in years.
func (Date) Score(a, b item.Item) float64 { return math.Abs(a.Year - b.Year) }

// Name implements Metric.
func (Date) Name() string { return "date" }

// Creator scores by exact artist match.
type Creator struct{}

// Score returns 1 when both creators are identical, 0 otherwise.
func (Creator) Score(a, b item.Item) float64 { return exact(a.Creator, b.Creator) }

// Name implements Metric.
func (Creator) Name() string { return "creator" }

// Origin scores by exact location match.
type Origin struct{}

// Score returns 1 when both origins are identical, 0 otherwise.
func (Origin) Score(a, b item.Item) float64 { return exact(a.Origin, b.Origin) }

// Name implements Metric.
func (Origin) Name() string { return "origin" }

func exact(a, b string) float64 {
	if a == b {
		return 1
	}

	return 0
}

// Kind enumerates the built-in metrics. Values match the interactive menu.
type Kind int

const (
	// KindDate selects Date.
	KindDate Kind = iota + 1
	// KindCreator selects Creator.
	KindCreator
	// KindOrigin selects Origin.
	KindOrigin
)

// Historical thresholds of the interactive exhibit workflow.
const (
	defaultDateThreshold  = 100.0
	defaultMatchThreshold = 2.0
)

// String returns the canonical lowercase name of k.
func (k Kind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindCreator:
		return "creator"
	case KindOrigin:
		return "origin"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Valid reports whether k names a built-in metric.
func (k Kind) Valid() bool { return k >= KindDate && k <= KindOrigin }

// kindAliases maps accepted selectors to kinds.
var kindAliases = map[string]Kind{
	"1":        KindDate,
	"date":     KindDate,
	"time":     KindDate,
	"period":   KindDate,
	"2":        KindCreator,
	"creator":  KindCreator,
	"artist":   KindCreator,
	"3":        KindOrigin,
	"origin":   KindOrigin,
	"location": KindOrigin,
	"country":  KindOrigin,
}

// ParseKind resolves a menu number or name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}

	return k, nil
}

// New returns the Metric for k.
func New(k Kind) (Metric, error) {
	switch k {
	case KindDate:
		return Date{}, nil
	case KindCreator:
		return Creator{}, nil
	case KindOrigin:
		return Origin{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
}

// DefaultThreshold returns the max-cost the interactive workflow pairs with k:
// 100 years for Date and 2 for Creator/Origin. Unknown kinds yield 0.
func DefaultThreshold(k Kind) float64 {
	switch k {
	case KindDate:
		return defaultDateThreshold
	case KindCreator, KindOrigin:
		return defaultMatchThreshold
	default:
		return 0
	}
}
