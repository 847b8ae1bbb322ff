package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/exhibit/catalog"
	"github.com/katalvlaran/exhibit/config"
	"github.com/katalvlaran/exhibit/exhibit"
	"github.com/katalvlaran/exhibit/prim_kruskal"
	"github.com/katalvlaran/exhibit/render"
	"github.com/katalvlaran/exhibit/session"
)

// Banner is printed first on every run.
const Banner = "Welcome to The M.E.T.: Museum Exhibit Tool!"

// App bundles one run's configuration and I/O.
type App struct {
	in     io.Reader
	outW   io.Writer
	config *config.Config
	logger *zap.Logger
}

// NewApp returns an App reading answers from in and writing to outW.
// A nil logger is replaced by a no-op logger.
func NewApp(in io.Reader, outW io.Writer, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{in: in, outW: outW, config: cfg, logger: logger}
}

// Run executes the full exhibit workflow once.
func (a *App) Run() error {
	fmt.Fprintf(a.outW, "%s\n\n", Banner)

	items, stats, err := catalog.LoadFile(a.config.Dataset, catalog.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.logger.Info("dataset loaded",
		zap.String("path", a.config.Dataset),
		zap.Int("rows", stats.Read),
		zap.Int("loaded", stats.Loaded),
		zap.Int("skipped_date", stats.SkippedDate),
		zap.Int("skipped_id", stats.SkippedID),
		zap.Int("duplicates", stats.Duplicates))
	fmt.Fprintf(a.outW, "Loaded %d works of art from the dataset.\n\n", stats.Loaded)

	preset := session.Selection{Anchors: a.config.Anchors}
	if k, ok, err := a.config.Kind(); err != nil {
		return err
	} else if ok {
		preset.Kind = k
	}
	sel, err := session.Run(a.in, a.outW, preset)
	if err != nil {
		return err
	}

	fmt.Fprint(a.outW, "Selecting the most closely related works... ")
	method := a.config.MST
	if method == "" {
		method = prim_kruskal.MethodPrim
	}
	layout, err := exhibit.Plan(items, exhibit.Request{
		Kind:    sel.Kind,
		MaxCost: a.config.Threshold(sel.Kind),
		Anchors: sel.Anchors,
	}, exhibit.WithLogger(a.logger), exhibit.WithMSTMethod(method))
	if err != nil {
		fmt.Fprintln(a.outW)
		return err
	}
	fmt.Fprint(a.outW, "Done!\n\n")

	a.report(layout)

	fmt.Fprint(a.outW, "Proposed exhibit layout as a GraphViz document:\n\n")
	var opts []render.Option
	if a.config.Weights {
		opts = append(opts, render.WithWeights())
	}

	return render.DOT(a.outW, layout.Tree, opts...)
}

// report lists anchors that could not be placed and the walking order.
func (a *App) report(layout *exhibit.Layout) {
	for _, id := range layout.Unknown {
		fmt.Fprintf(a.outW, "Accession number %s is not in the dataset.\n", id)
	}
	for _, id := range layout.Unreachable {
		fmt.Fprintf(a.outW, "Accession number %s is not related closely enough to %s to be placed.\n", id, layout.Root)
	}
	if len(layout.Unknown)+len(layout.Unreachable) > 0 {
		fmt.Fprintln(a.outW)
	}

	if len(layout.Route) == 0 {
		return
	}
	fmt.Fprintln(a.outW, "Suggested walking order:")
	for i, it := range layout.Route {
		fmt.Fprintf(a.outW, "%3d. %s\n", i+1, render.Describe(it))
	}
	fmt.Fprintln(a.outW)
}
