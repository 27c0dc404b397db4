// Package render draws ranked series as a PNG line chart.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/greenfell/memscope/internal/model"
)

// Scale selects the y-axis plotting mode.
type Scale int

const (
	ScaleLinear Scale = iota
	ScaleLogarithmic
)

func (s Scale) String() string {
	if s == ScaleLogarithmic {
		return "logarithmic"
	}
	return "linear"
}

// Chart geometry: the 6.4in x 4.8in default figure at 300 DPI.
const (
	chartWidth  = 1920
	chartHeight = 1440
	chartDPI    = 300
)

// headroom stretches the y axis above the tallest series.
const headroom = 1.1

// Plot renders the series to a PNG at path. The input must already be
// ranked descending by peak: the first series sets the upper y bound.
// Rendering goes through a buffer, so a failed render leaves no file.
func Plot(series []model.Series, path string, scale Scale) error {
	var buf bytes.Buffer
	if err := Render(series, &buf, scale); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Render draws the chart as PNG bytes to w.
func Render(series []model.Series, w io.Writer, scale Scale) error {
	if len(series) == 0 {
		return fmt.Errorf("render: no series to plot")
	}

	peak := series[0].Peak()
	if peak <= 0 {
		// A log axis bounded by [1, 1.1*peak] would be empty or inverted;
		// a linear [0, 0] range degenerates the same way.
		return fmt.Errorf("render: top series %q has non-positive peak %v, nothing to plot", series[0].Label, peak)
	}

	var yRange chart.Range
	if scale == ScaleLogarithmic {
		yRange = &chart.LogarithmicRange{Min: 1, Max: peak * headroom}
	} else {
		yRange = &chart.ContinuousRange{Min: 0, Max: peak * headroom}
	}

	cs := make([]chart.Series, 0, len(series))
	for _, s := range series {
		xs, ys := padPoints(s.Times, s.Values)
		cs = append(cs, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1.0},
		})
	}

	ch := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		DPI:    chartDPI,
		Background: chart.Style{
			// Wide right margin so the legend sits clear of the plot.
			Padding: chart.Box{Top: 20, Left: 20, Right: 340, Bottom: 20},
		},
		XAxis:  chart.XAxis{Name: "Time (s)"},
		YAxis:  chart.YAxis{Name: "Memory (MB)", Range: yRange},
		Series: cs,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// padPoints duplicates a lone point a millisecond later; go-chart cannot
// draw a series (or size an x range) from a single x value.
func padPoints(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 1e-3}, []float64{ys[0], ys[0]}
}
