// Package plot renders tracked experiment data as HTML charts
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Series is a named sequence of values, such as the episodic returns
// collected by a Tracker
type Series struct {
	Name   string
	Values []float64
}

// Lines writes an HTML page to w containing a line chart of every
// series, indexed by episode. Series of different lengths are allowed;
// the x axis spans the longest series.
func Lines(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return errors.New("lines: no series to plot")
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "shine",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
	)

	numEpisodes := 0
	for _, s := range series {
		if len(s.Values) > numEpisodes {
			numEpisodes = len(s.Values)
		}
	}

	episodes := make([]string, numEpisodes)
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i)
	}
	line.SetXAxis(episodes)

	for _, s := range series {
		items := make([]opts.LineData, 0, len(s.Values))
		for _, v := range s.Values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "lines")
	}
	return nil
}

// MovingAverage returns the average of each window of n consecutive
// values. If n is larger than the number of values, a single average
// is returned.
func MovingAverage(values []float64, n int) []float64 {
	if len(values) == 0 || n <= 1 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	if n > len(values) {
		n = len(values)
	}

	out := make([]float64, 0, len(values)-n+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= n {
			sum -= values[i-n]
		}
		if i >= n-1 {
			out = append(out, sum/float64(n))
		}
	}
	return out
}
