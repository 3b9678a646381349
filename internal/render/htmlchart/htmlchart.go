// internal/render/htmlchart/htmlchart.go
// Package htmlchart draws charts as HTML. Scatter, box, stacked and bar
// charts are standalone go-echarts documents; the chord diagram is an inline
// SVG assembled from arc, ribbon and text primitives.
package htmlchart

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mwiater/fightsongs/internal/render"
)

const (
	defaultWidth  = 900
	defaultHeight = 560

	// noteSymbol is an eighth note drawn as an echarts path symbol.
	noteSymbol = "path://M9,0h3v15.5a4.5,3.5 0 1 1 -3,-3.3zM12,0c2,3 6,4 6,9c0,1 -1,3 -2,4c1,-4 -1,-6 -4,-7z"
)

// Backend implements render.Backend for HTML output.
type Backend struct {
	Width  int
	Height int
}

// New returns a Backend with the given pixel size; non-positive values use
// the defaults.
func New(width, height int) *Backend {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Backend{Width: width, Height: height}
}

func (b *Backend) initOpts(title string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle: title,
		Width:     fmt.Sprintf("%dpx", b.Width),
		Height:    fmt.Sprintf("%dpx", b.Height),
	})
}

func titleOpts(title string) charts.GlobalOpts {
	return charts.WithTitleOpts(opts.Title{
		Title:      title,
		TitleStyle: &opts.TextStyle{FontSize: 22},
	})
}

// Scatter draws one note marker per school with the school name as tooltip.
// Points with a NaN coordinate are skipped.
func (b *Backend) Scatter(w io.Writer, title string, in render.ScatterInput) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		b.initOpts(title),
		titleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item", Formatter: "{b}"}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
		charts.WithXAxisOpts(opts.XAxis{Name: "BPM", Type: "value", Min: in.XRange.Min, Max: in.XRange.Max}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Duration (s)", Type: "value", Min: in.YRange.Min, Max: in.YRange.Max}),
	)

	data := make([]opts.ScatterData, 0, len(in.Points))
	for _, p := range in.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		data = append(data, opts.ScatterData{
			Name:       p.Label,
			Value:      []float64{p.X, p.Y},
			Symbol:     noteSymbol,
			SymbolSize: 18,
		})
	}
	scatter.AddSeries("schools", data, charts.WithItemStyleOpts(opts.ItemStyle{Color: render.PaletteColor(2)}))
	return scatter.Render(w)
}

// DurationByConference draws one box per conference, legend hidden, with
// every song overlaid as a point and outliers in a separate series.
func (b *Backend) DurationByConference(w io.Writer, title string, in render.DurationInput) error {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		b.initOpts(title),
		titleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: in.ShowLegend}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Conference"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Duration (seconds)", Type: "value", Min: in.YRange.Min, Max: in.YRange.Max}),
	)

	labels := make([]string, len(in.Groups))
	data := make([]opts.BoxPlotData, len(in.Groups))
	for i, g := range in.Groups {
		labels[i] = g.Conference
		s := g.Summary
		data[i] = opts.BoxPlotData{
			Name:  g.Conference,
			Value: []float64{s.LowerWhisker, s.Q1, s.Median, s.Q3, s.UpperWhisker},
		}
	}
	box.SetXAxis(labels).AddSeries("duration", data)
	box.Overlap(songPoints(in.Groups))
	return box.Render(w)
}

// songPoints places each finite duration on its conference category.
func songPoints(groups []render.DurationGroup) *charts.Scatter {
	var songs, outliers []opts.ScatterData
	for _, g := range groups {
		remaining := make(map[float64]int, len(g.Summary.Outliers))
		for _, v := range g.Summary.Outliers {
			remaining[v]++
		}
		for _, v := range g.Durations {
			if math.IsNaN(v) {
				continue
			}
			point := opts.ScatterData{Name: g.Conference, Value: []interface{}{g.Conference, v}, SymbolSize: 7}
			if remaining[v] > 0 {
				remaining[v]--
				outliers = append(outliers, point)
				continue
			}
			songs = append(songs, point)
		}
	}

	points := charts.NewScatter()
	points.AddSeries("songs", songs, charts.WithItemStyleOpts(opts.ItemStyle{Color: render.PaletteColor(1)}))
	points.AddSeries("outliers", outliers, charts.WithItemStyleOpts(opts.ItemStyle{Color: render.PaletteColor(0)}))
	return points
}

// Stacked draws one bar series per trope, stacked per school.
func (b *Backend) Stacked(w io.Writer, title string, in render.StackedInput) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		b.initOpts(title),
		titleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45, Interval: "0"}}),
	)
	bar.SetXAxis(in.Schools)
	for i, s := range in.Series {
		data := make([]opts.BarData, len(s.Values))
		for j, v := range s.Values {
			data[j] = opts.BarData{Value: v}
		}
		bar.AddSeries(string(s.Trope), data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "tropes"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: render.PaletteColor(i)}),
		)
	}
	return bar.Render(w)
}

// Bar draws a single series with one palette colour per bar.
func (b *Backend) Bar(w io.Writer, title string, in render.BarInput) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		b.initOpts(title),
		titleOpts(title),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Rotate: 45, Interval: "0"}}),
	)
	data := make([]opts.BarData, len(in.Values))
	for i, v := range in.Values {
		data[i] = opts.BarData{
			Name:      in.Labels[i],
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: render.PaletteColor(i)},
		}
	}
	bar.SetXAxis(in.Labels).AddSeries("average", data)
	return bar.Render(w)
}
