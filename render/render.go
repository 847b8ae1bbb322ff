// Package render prints exhibit graphs for people and for GraphViz.
//
// DOT writes an undirected GraphViz document: one boxed node per vertex,
// labelled with title, approximate year and accession number, and one
// "--" line per undirected edge. Output is deterministic (vertices and
// edges sorted by accession key), so documents diff cleanly between runs.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/item"
)

// DefaultName is the graph identifier used when WithName is not given.
const DefaultName = "Exhibit"

// ErrNilGraph is returned by DOT for a nil graph.
var ErrNilGraph = errors.New("render: graph is nil")

// Option configures DOT.
type Option func(*options)

type options struct {
	name    string
	weights bool
}

// WithName sets the graph identifier. Empty names are ignored.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithWeights adds a label with the similarity score to every edge.
func WithWeights() Option {
	return func(o *options) { o.weights = true }
}

// DOT writes g to w as a GraphViz "graph" document.
//
//	graph Exhibit {
//		"29.100.5" [shape=box,label="Portrait\nCirca: 1660\nAN: 29.100.5"];
//		"17.190.1" -- "29.100.5";
//	}
func DOT(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	o := options{name: DefaultName}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "graph %s {\n", quoteID(o.name))
	for _, it := range g.Vertices() {
		fmt.Fprintf(bw, "\t%s [shape=box,label=%s];\n", quote(it.ID), quote(label(it)))
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		if o.weights {
			fmt.Fprintf(bw, "\t%s -- %s [label=%s];\n", quote(e.From), quote(e.To), quote(formatNumber(e.Weight)))
			continue
		}
		fmt.Fprintf(bw, "\t%s -- %s;\n", quote(e.From), quote(e.To))
	}
	fmt.Fprintln(bw, "}")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write dot: %w", err)
	}

	return nil
}

// Describe returns the one-line description of it used in listings:
//
//	"Harp" (circa 1352 B.C., accession number: 1979.206.1)
func Describe(it item.Item) string {
	return fmt.Sprintf("%q (circa %s, accession number: %s)", it.Name, Circa(it), it.ID)
}

// Circa formats the item's year as a positive number, suffixed with
// " B.C." for years before the common era.
func Circa(it item.Item) string {
	s := formatNumber(math.Abs(it.Year))
	if it.BeforeCommonEra() {
		s += " B.C."
	}

	return s
}

func label(it item.Item) string {
	return it.Name + "\nCirca: " + Circa(it) + "\nAN: " + it.ID
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// quote produces a DOT double-quoted string. Newlines become the \n escape
// GraphViz interprets as a centered line break.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")
	return `"` + r.Replace(s) + `"`
}

// quoteID leaves plain identifiers bare and quotes everything else.
func quoteID(s string) string {
	for i, c := range s {
		isLetter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isLetter && (i == 0 || c < '0' || c > '9') {
			return quote(s)
		}
	}

	return s
}
