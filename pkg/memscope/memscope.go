package memscope

import (
	"io"

	"github.com/greenfell/memscope/internal/model"
	"github.com/greenfell/memscope/internal/render"
	"github.com/greenfell/memscope/internal/series"
	"github.com/greenfell/memscope/internal/timeline"
)

// Snapshot holds all scope readings captured at one point in time.
type Snapshot struct {
	Time     float64            // seconds since tracking started
	Readings map[string]float64 // scope name → megabytes
}

// Timeline is the ordered history of snapshots from one log.
type Timeline []Snapshot

// ErrEmptyTimeline is returned by Graph when, after exclusions, no series
// remain to rank.
var ErrEmptyTimeline = series.ErrEmptyTimeline

// Parse reads a mem-scope-track log from r.
func Parse(r io.Reader) (Timeline, error) {
	tl, err := timeline.Parse(r)
	if err != nil {
		return nil, err
	}
	return fromModel(tl), nil
}

// ParseFile parses the log at path, transparently gunzipping files whose
// name ends in ".gz".
func ParseFile(path string) (Timeline, error) {
	tl, err := timeline.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return fromModel(tl), nil
}

// Graph renders the timeline's top scopes by peak memory to a PNG at
// outfile. By default the 15 highest-peaked scopes are drawn on a linear y
// axis; see the With* options.
func Graph(tl Timeline, outfile string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	exclude := make(map[string]struct{}, len(o.exclude))
	for _, name := range o.exclude {
		exclude[name] = struct{}{}
	}

	selected, err := series.Select(toModel(tl), exclude, o.limit)
	if err != nil {
		return err
	}

	scale := render.ScaleLinear
	if o.logScale {
		scale = render.ScaleLogarithmic
	}
	return render.Plot(selected, outfile, scale)
}

func fromModel(tl model.Timeline) Timeline {
	out := make(Timeline, len(tl))
	for i, snap := range tl {
		out[i] = Snapshot(snap)
	}
	return out
}

func toModel(tl Timeline) model.Timeline {
	out := make(model.Timeline, len(tl))
	for i, snap := range tl {
		out[i] = model.Snapshot(snap)
	}
	return out
}
