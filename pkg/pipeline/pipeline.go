// Package pipeline assembles card pie charts.
//
// The pipeline has three stages:
//
//  1. Proportions: deck counts become percentages, labels and wedges
//  2. Assets: every slice's card image is resolved (cache or fetch) and
//     cropped to its artwork
//  3. Render: outlines and labels are drawn, artwork is clipped into its
//     wedge and the chart is encoded as a tightly cropped PNG
//
// Any failure aborts the run; no partial chart is returned.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, ygoprodeck.NewClient(1), logger)
//	opts, err := pipeline.OptionsFromConfig(cfg)
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	err = deck.WriteFile("pie.png", result.PNG)
//
// Assets are resolved one at a time unless [Options.Workers] is above one,
// in which case they are fetched concurrently. Compositing always follows
// slice order, so the output does not depend on the worker count.
package pipeline

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cardpie/pkg/deck"
	perrors "github.com/matzehuels/cardpie/pkg/errors"
	"github.com/matzehuels/cardpie/pkg/render/pie"
	"github.com/matzehuels/cardpie/pkg/render/pie/layout"
	"github.com/matzehuels/cardpie/pkg/render/pie/styles"
)

// Options contains everything needed to draw one chart.
type Options struct {
	Title   string
	Slices  []layout.WeightedSlice // Drawing order
	Style   styles.Style
	Zoom    float64 // Artwork zoom (default deck.DefaultZoom)
	Radius  float64 // Pie radius in pixels (default pie.DefaultRadius)
	Workers int     // Concurrent asset resolves (default 1)

	Logger *log.Logger
}

// OptionsFromConfig builds pipeline options from a loaded configuration.
func OptionsFromConfig(cfg *deck.Config) (Options, error) {
	st, err := cfg.Style()
	if err != nil {
		return Options{}, err
	}
	slices := make([]layout.WeightedSlice, len(cfg.Decks))
	for i, d := range cfg.Decks {
		slices[i] = layout.WeightedSlice{Key: d.Card, Weight: d.Count, Name: d.Name}
	}
	return Options{
		Title:   cfg.Title,
		Slices:  slices,
		Style:   st,
		Zoom:    cfg.ZoomLevel,
		Workers: cfg.Workers,
	}, nil
}

// ValidateAndSetDefaults checks option values and fills unset ones.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Zoom < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "zoom must be positive, got %v", o.Zoom)
	}
	if o.Radius < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "radius must be positive, got %v", o.Radius)
	}
	if o.Workers < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "workers must not be negative, got %d", o.Workers)
	}
	if o.Zoom == 0 {
		o.Zoom = deck.DefaultZoom
	}
	if o.Radius == 0 {
		o.Radius = pie.DefaultRadius
	}
	if o.Workers == 0 {
		o.Workers = deck.DefaultWorkers
	}
	if o.Style.Outline == nil && o.Style.OutlineWidth == 0 {
		o.Style = styles.Default()
	}
	return nil
}

// Result is the outcome of a successful run.
type Result struct {
	PNG    []byte          // Encoded chart
	Slices []layout.Slice  // Proportions, in drawing order
	Wedges []layout.Wedge  // Wedge of each slice
	Center layout.Point    // Pie center in canvas coordinates
	Bounds image.Rectangle // Region of the canvas that was encoded
	Stats  Stats
}

// Stats records timings and cache usage of a run.
type Stats struct {
	ResolveTime time.Duration
	RenderTime  time.Duration
	Cached      int // Assets served without the lookup service
	Fetched     int // Assets downloaded
}
