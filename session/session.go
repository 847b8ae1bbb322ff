// Package session runs the interactive question-and-answer exchange that
// picks exhibit anchors and a grouping metric.
//
// Input is read as whitespace-separated tokens, so answers may be typed on
// one line or many. Invalid answers are reported and asked again; running
// out of input ends the session with ErrInputClosed.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/exhibit/similarity"
)

// MaxAnchors bounds the anchor count; every ordered anchor pair costs one
// shortest-path search.
const MaxAnchors = 100

// ErrInputClosed is returned when input ends before every question is answered.
var ErrInputClosed = errors.New("session: input closed before selection was complete")

// Selection is the outcome of a session.
type Selection struct {
	// Anchors are accession numbers in the order they were given.
	Anchors []string

	// Kind selects the similarity metric.
	Kind similarity.Kind
}

// Run asks for whatever preset leaves open and returns the full selection.
// Non-empty preset.Anchors skip the anchor questions; a valid preset.Kind
// skips the grouping menu.
func Run(in io.Reader, out io.Writer, preset Selection) (Selection, error) {
	p := &prompter{in: bufio.NewScanner(in), out: out}
	p.in.Split(bufio.ScanWords)

	sel := Selection{Anchors: append([]string(nil), preset.Anchors...), Kind: preset.Kind}
	if len(sel.Anchors) == 0 {
		anchors, err := p.anchors()
		if err != nil {
			return Selection{}, err
		}
		sel.Anchors = anchors
	}
	if !sel.Kind.Valid() {
		k, err := p.kind()
		if err != nil {
			return Selection{}, err
		}
		sel.Kind = k
	}

	return sel, nil
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) next() (string, error) {
	if p.in.Scan() {
		return p.in.Text(), nil
	}
	if err := p.in.Err(); err != nil {
		return "", fmt.Errorf("session: read input: %w", err)
	}

	return "", ErrInputClosed
}

func (p *prompter) anchors() ([]string, error) {
	p.printf("How many exhibit anchor works should be considered?\n")
	var n int
	for {
		p.printf("Number of anchors: ")
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		n, err = strconv.Atoi(tok)
		if err != nil || n <= 0 {
			p.printf("%q is not a positive whole number.\n", tok)
			continue
		}
		if n > MaxAnchors {
			p.printf("At most %d anchors can be considered.\n", MaxAnchors)
			continue
		}
		break
	}

	p.printf("\nWhich works of art should be the exhibit anchors? List the accession number of each work.\n\n")
	var anchors []string
	for i := 1; i <= n; i++ {
		p.printf("%d > ", i)
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		anchors = append(anchors, tok)
	}
	p.printf("\n")

	return anchors, nil
}

func (p *prompter) kind() (similarity.Kind, error) {
	p.printf("How should the works be grouped?\n\n")
	for _, k := range []similarity.Kind{similarity.KindDate, similarity.KindCreator, similarity.KindOrigin} {
		p.printf("[%d] %s\n", int(k), menuLabel(k))
	}
	p.printf("\n")
	for {
		p.printf("Grouping method: ")
		tok, err := p.next()
		if err != nil {
			return 0, err
		}
		if k, err := similarity.ParseKind(tok); err == nil {
			p.printf("\n")
			return k, nil
		}
		p.printf("Please choose 1, 2 or 3.\n")
	}
}

func menuLabel(k similarity.Kind) string {
	switch k {
	case similarity.KindDate:
		return "Time period"
	case similarity.KindCreator:
		return "Artist"
	case similarity.KindOrigin:
		return "Location"
	default:
		return k.String()
	}
}
