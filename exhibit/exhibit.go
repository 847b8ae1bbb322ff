package exhibit

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/exhibit/bfs"
	"github.com/katalvlaran/exhibit/core"
	"github.com/katalvlaran/exhibit/dfs"
	"github.com/katalvlaran/exhibit/dijkstra"
	"github.com/katalvlaran/exhibit/grouper"
	"github.com/katalvlaran/exhibit/item"
	"github.com/katalvlaran/exhibit/prim_kruskal"
	"github.com/katalvlaran/exhibit/similarity"
)

var (
	// ErrNoAnchors is returned when a Request names no anchor at all.
	ErrNoAnchors = errors.New("exhibit: at least one anchor is required")

	// ErrNegativeMaxCost rejects a grouping threshold below zero.
	ErrNegativeMaxCost = errors.New("exhibit: max cost must be non-negative")

	// ErrCyclicTree reports a spanning step that produced a cycle.
	ErrCyclicTree = errors.New("exhibit: spanning tree contains a cycle")
)

// Request describes one planning run.
type Request struct {
	// Kind selects the similarity metric.
	Kind similarity.Kind

	// MaxCost is the grouping threshold: pairs scoring above it get no edge.
	MaxCost float64

	// Anchors are accession numbers; Anchors[0] roots the spanning tree.
	Anchors []string
}

// Path is the shortest route found between two anchors.
type Path struct {
	From  string
	To    string
	Items []item.Item // empty when To is unreachable from From
	Cost  float64
}

// Layout is the result of Plan.
type Layout struct {
	// Tree is the spanning tree over the selected works.
	Tree *core.Graph

	// Root is the anchor the tree was grown from; empty when no anchor exists.
	Root string

	// Items are the selected works in collection order.
	Items []item.Item

	// Route is Tree walked depth-first from Root: a visiting order that keeps
	// related works next to each other.
	Route []item.Item

	// Paths holds one entry per ordered pair of distinct known anchors.
	Paths []Path

	// Unreachable lists known anchors not connected to Root in Tree.
	Unreachable []string

	// Unknown lists anchors absent from the catalogue.
	Unknown []string
}

// Option configures Plan.
type Option func(*planner)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(p *planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMSTMethod selects prim_kruskal.MethodPrim (default) or
// prim_kruskal.MethodKruskal for the final reduction.
func WithMSTMethod(method string) Option {
	return func(p *planner) { p.method = method }
}

type planner struct {
	log    *zap.Logger
	method string
}

// Plan builds an exhibit layout for req over the catalogue items.
func Plan(items []item.Item, req Request, opts ...Option) (*Layout, error) {
	p := &planner{log: zap.NewNop(), method: prim_kruskal.MethodPrim}
	for _, opt := range opts {
		opt(p)
	}

	if len(req.Anchors) == 0 {
		return nil, ErrNoAnchors
	}
	if req.MaxCost < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeMaxCost, req.MaxCost)
	}
	metric, err := similarity.New(req.Kind)
	if err != nil {
		return nil, err
	}
	log := p.log.With(zap.String("metric", metric.Name()), zap.Float64("max_cost", req.MaxCost))

	// 1) Similarity graph over the whole catalogue
	g, err := grouper.Group(req.MaxCost, items, metric)
	if err != nil {
		return nil, fmt.Errorf("exhibit: group catalogue: %w", err)
	}
	log.Debug("grouped catalogue",
		zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	layout := &Layout{}
	known := make([]string, 0, len(req.Anchors))
	seen := make(map[string]bool, len(req.Anchors))
	for _, id := range req.Anchors {
		if seen[id] {
			continue
		}
		seen[id] = true
		if g.HasVertex(id) {
			known = append(known, id)
		} else {
			layout.Unknown = append(layout.Unknown, id)
		}
	}
	if len(layout.Unknown) > 0 {
		log.Warn("anchors not in catalogue", zap.Strings("anchors", layout.Unknown))
	}

	// 2) Shortest paths between every ordered anchor pair
	collected := newCollector()
	for _, a := range known {
		for _, b := range known {
			if a == b {
				continue
			}
			path, cost, err := dijkstra.ShortestPathCost(g, a, b)
			if err != nil {
				return nil, fmt.Errorf("exhibit: path %s→%s: %w", a, b, err)
			}
			layout.Paths = append(layout.Paths, Path{From: a, To: b, Items: path, Cost: cost})
			collected.add(path...)
			log.Debug("anchor path",
				zap.String("from", a), zap.String("to", b),
				zap.Int("hops", len(path)), zap.Float64("cost", cost))
		}
	}

	// 3) Anchors always take part
	for _, id := range known {
		it, _ := g.Item(id)
		collected.add(it)
	}
	layout.Items = collected.items

	// 4) Regroup the selection
	sub, err := grouper.Group(req.MaxCost, layout.Items, metric)
	if err != nil {
		return nil, fmt.Errorf("exhibit: group selection: %w", err)
	}
	log.Debug("grouped selection",
		zap.Int("vertices", sub.VertexCount()), zap.Int("edges", sub.EdgeCount()))

	// 5) Spanning tree
	if len(known) > 0 {
		layout.Root = known[0]
	}
	tree, total, err := prim_kruskal.Compute(sub, prim_kruskal.DefaultOptions(
		prim_kruskal.WithMethod(p.method), prim_kruskal.WithRoot(layout.Root)))
	if err != nil {
		return nil, fmt.Errorf("exhibit: spanning tree: %w", err)
	}
	if cycle, err := dfs.FindCycle(tree); err != nil {
		return nil, fmt.Errorf("exhibit: tree check: %w", err)
	} else if cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCyclicTree, cycle)
	}
	layout.Tree = tree
	if layout.Route, err = dfs.Walk(tree, layout.Root); err != nil {
		return nil, fmt.Errorf("exhibit: route: %w", err)
	}

	// 6) Anchors left in other components
	if layout.Root != "" {
		res, err := bfs.BFS(tree, layout.Root)
		if err != nil {
			return nil, fmt.Errorf("exhibit: reachability: %w", err)
		}
		for _, id := range known {
			if !res.Reached(id) {
				layout.Unreachable = append(layout.Unreachable, id)
				continue
			}
			log.Debug("anchor placed", zap.String("anchor", id), zap.Int("hops", res.Depth[id]))
		}
	}
	if len(layout.Unreachable) > 0 {
		log.Warn("anchors not connected to root",
			zap.String("root", layout.Root), zap.Strings("anchors", layout.Unreachable))
	}

	log.Info("exhibit planned",
		zap.String("root", layout.Root),
		zap.Int("works", tree.VertexCount()),
		zap.Int("links", tree.EdgeCount()),
		zap.Float64("total_weight", total))

	return layout, nil
}

// collector keeps the first occurrence of each item in arrival order.
type collector struct {
	seen  map[string]bool
	items []item.Item
}

func newCollector() *collector { return &collector{seen: make(map[string]bool)} }

func (c *collector) add(items ...item.Item) {
	for _, it := range items {
		if c.seen[it.ID] {
			continue
		}
		c.seen[it.ID] = true
		c.items = append(c.items, it)
	}
}
