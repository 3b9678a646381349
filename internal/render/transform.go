// internal/render/transform.go
package render

import (
	"math"
	"sort"

	"github.com/mwiater/fightsongs/internal/aggregate"
	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/mwiater/fightsongs/internal/dataset"
	"github.com/mwiater/fightsongs/internal/util"
)

// AxisPadding is added to the largest value when sizing an axis.
const AxisPadding = 10.0

// Range is a closed axis range.
type Range struct {
	Min float64
	Max float64
}

// ScatterPoint is one school's marker.
type ScatterPoint struct {
	X     float64
	Y     float64
	Label string
}

// ScatterInput is what a backend needs to draw the tempo/duration scatter.
type ScatterInput struct {
	Points []ScatterPoint
	XRange Range
	YRange Range
}

// BoxSummary is a five-number summary with 1.5 IQR whiskers.
type BoxSummary struct {
	LowerWhisker float64
	Q1           float64
	Median       float64
	Q3           float64
	UpperWhisker float64
	Outliers     []float64
}

// DurationGroup is one conference's duration distribution.
type DurationGroup struct {
	Conference string
	Durations  []float64
	Summary    BoxSummary
}

// DurationInput is what a backend needs for the duration box plot.
type DurationInput struct {
	Groups     []DurationGroup
	YRange     Range
	ShowLegend bool
}

// StackSeries holds one trope's 0/1 indicator per school.
type StackSeries struct {
	Trope  dataset.Trope
	Values []int
}

// StackedInput is what a backend needs for the stacked trope bars.
type StackedInput struct {
	Schools []string
	Series  []StackSeries
}

// Totals returns the per-school sum across series.
func (s StackedInput) Totals() []int {
	totals := make([]int, len(s.Schools))
	for _, series := range s.Series {
		for i, v := range series.Values {
			if i < len(totals) {
				totals[i] += v
			}
		}
	}
	return totals
}

// BarInput is what a backend needs for a single-series bar chart.
type BarInput struct {
	Labels []string
	Values []float64
}

// ChordInput is what a backend needs for the chord diagram.
type ChordInput struct {
	Tropes []dataset.Trope
	Matrix [][]int
}

// Float returns the matrix as float64 values for layout.
func (c ChordInput) Float() [][]float64 {
	out := make([][]float64, len(c.Matrix))
	for i, row := range c.Matrix {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = float64(v)
		}
	}
	return out
}

// Scatter maps rows to bpm/duration points.
func Scatter(d charts.Descriptor) ScatterInput {
	in := ScatterInput{Points: make([]ScatterPoint, len(d.Rows))}
	xs := make([]float64, len(d.Rows))
	ys := make([]float64, len(d.Rows))
	for i, row := range d.Rows {
		in.Points[i] = ScatterPoint{X: row.BPM, Y: row.SecDuration, Label: row.School}
		xs[i] = row.BPM
		ys[i] = row.SecDuration
	}
	in.XRange = PaddedRange(xs)
	in.YRange = PaddedRange(ys)
	return in
}

// DurationByConference groups durations by conference in first-seen order.
func DurationByConference(d charts.Descriptor) DurationInput {
	groups := aggregate.GroupByConference(d.Rows)
	in := DurationInput{Groups: make([]DurationGroup, 0, len(groups))}
	var all []float64
	for _, g := range groups {
		durations := make([]float64, len(g.Rows))
		for i, row := range g.Rows {
			durations[i] = row.SecDuration
		}
		all = append(all, durations...)
		in.Groups = append(in.Groups, DurationGroup{
			Conference: g.Conference,
			Durations:  durations,
			Summary:    Summarize(durations),
		})
	}
	in.YRange = PaddedRange(all)
	return in
}

// Stacked builds one 0/1 series per trope over the schools in row order.
func Stacked(d charts.Descriptor) StackedInput {
	in := StackedInput{
		Schools: append([]string(nil), d.Schools...),
		Series:  make([]StackSeries, len(d.Tropes)),
	}
	for i, t := range d.Tropes {
		values := make([]int, len(d.Rows))
		for j, row := range d.Rows {
			values[j] = util.BoolToInt(row.Has(t))
		}
		in.Series[i] = StackSeries{Trope: t, Values: values}
	}
	return in
}

// Bar passes the precomputed conference labels and averages through.
func Bar(d charts.Descriptor) BarInput {
	return BarInput{
		Labels: append([]string(nil), d.Labels...),
		Values: append([]float64(nil), d.Values...),
	}
}

// Chord counts, for every trope pair, the rows where both are present. The
// diagonal therefore counts rows with that trope.
func Chord(d charts.Descriptor) ChordInput {
	n := len(d.Tropes)
	matrix := make([][]int, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}
	for _, row := range d.Rows {
		for i, t1 := range d.Tropes {
			if !row.Has(t1) {
				continue
			}
			for j, t2 := range d.Tropes {
				if row.Has(t2) {
					matrix[i][j]++
				}
			}
		}
	}
	return ChordInput{Tropes: append([]dataset.Trope(nil), d.Tropes...), Matrix: matrix}
}

// PaddedRange returns [0, max+AxisPadding]. NaN values are skipped; with no
// finite value the range is [0, AxisPadding].
func PaddedRange(values []float64) Range {
	maxValue := math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if v > maxValue {
			maxValue = v
		}
	}
	if math.IsInf(maxValue, -1) {
		maxValue = 0
	}
	return Range{Min: 0, Max: maxValue + AxisPadding}
}

// Summarize computes linearly interpolated quartiles and 1.5 IQR whiskers.
// NaN values are ignored.
func Summarize(values []float64) BoxSummary {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return BoxSummary{}
	}
	sort.Float64s(sorted)

	s := BoxSummary{
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
	}
	iqr := s.Q3 - s.Q1
	lowFence := s.Q1 - 1.5*iqr
	highFence := s.Q3 + 1.5*iqr
	s.LowerWhisker = s.Q1
	s.UpperWhisker = s.Q3
	for _, v := range sorted {
		if v >= lowFence {
			s.LowerWhisker = math.Min(v, s.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= highFence {
			s.UpperWhisker = math.Max(sorted[i], s.Q3)
			break
		}
	}
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s
}

func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
