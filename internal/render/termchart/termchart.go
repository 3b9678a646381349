// internal/render/termchart/termchart.go
// Package termchart draws charts as styled terminal text for the browse view.
package termchart

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/fightsongs/internal/chord"
	"github.com/mwiater/fightsongs/internal/render"
	"github.com/mwiater/fightsongs/internal/util"
)

const (
	defaultWidth  = 72
	defaultHeight = 18
	maxLabelWidth = 24
	noteGlyph     = "♪"
	blockGlyph    = "█"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Backend implements render.Backend for terminal output. Width and Height
// bound the plotting area in cells.
type Backend struct {
	Width  int
	Height int
}

// New returns a Backend sized to the terminal; non-positive values use the defaults.
func New(width, height int) *Backend {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &Backend{Width: width, Height: height}
}

func swatch(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(render.PaletteColor(i)))
}

func writeTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w)
}

// Scatter plots a note glyph per school on a character grid.
func (b *Backend) Scatter(w io.Writer, title string, in render.ScatterInput) error {
	writeTitle(w, title)

	cols, rows := b.Width, b.Height
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	note := swatch(2).Render(noteGlyph)
	for _, p := range in.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		c := scale(p.X, in.XRange, cols)
		r := rows - 1 - scale(p.Y, in.YRange, rows)
		grid[r][c] = note
	}

	fmt.Fprintln(w, axisStyle.Render(fmt.Sprintf("Duration (s) 0..%.0f", in.YRange.Max)))
	for _, line := range grid {
		fmt.Fprintln(w, axisStyle.Render("│")+strings.Join(line, ""))
	}
	fmt.Fprintln(w, axisStyle.Render("└"+strings.Repeat("─", cols)))
	fmt.Fprintln(w, axisStyle.Render(fmt.Sprintf("BPM 0..%.0f", in.XRange.Max)))
	return nil
}

// DurationByConference prints one box-and-whisker line per conference.
func (b *Backend) DurationByConference(w io.Writer, title string, in render.DurationInput) error {
	writeTitle(w, title)

	conferences := make([]string, len(in.Groups))
	for i, g := range in.Groups {
		conferences[i] = g.Conference
	}
	nameWidth := util.LabelWidth(conferences, maxLabelWidth)
	span := max(b.Width-nameWidth-2, 10)
	for i, g := range in.Groups {
		s := g.Summary
		line := []rune(strings.Repeat(" ", span))
		lo := scale(s.LowerWhisker, in.YRange, span)
		q1 := scale(s.Q1, in.YRange, span)
		med := scale(s.Median, in.YRange, span)
		q3 := scale(s.Q3, in.YRange, span)
		hi := scale(s.UpperWhisker, in.YRange, span)
		for c := lo; c <= hi; c++ {
			line[c] = '─'
		}
		for c := q1; c <= q3; c++ {
			line[c] = '▒'
		}
		line[lo], line[hi], line[med] = '├', '┤', '┃'

		name := labelStyle.Render(util.PadLabel(g.Conference, nameWidth))
		fmt.Fprintf(w, "%s  %s\n", name, swatch(i).Render(string(line)))
	}
	fmt.Fprintln(w, axisStyle.Render(fmt.Sprintf("%*s  0..%.0f seconds", nameWidth, "", in.YRange.Max)))
	return nil
}

// Stacked prints one row per school with a coloured block per present trope.
func (b *Backend) Stacked(w io.Writer, title string, in render.StackedInput) error {
	writeTitle(w, title)

	nameWidth := util.LabelWidth(in.Schools, maxLabelWidth)
	totals := in.Totals()
	for i, school := range in.Schools {
		var bar strings.Builder
		for k, series := range in.Series {
			if i < len(series.Values) && series.Values[i] > 0 {
				bar.WriteString(swatch(k).Render(strings.Repeat(blockGlyph, 2)))
			}
		}
		fmt.Fprintf(w, "%s  %s %d\n", labelStyle.Render(util.PadLabel(school, nameWidth)), bar.String(), totals[i])
	}

	var legend []string
	for k, series := range in.Series {
		legend = append(legend, swatch(k).Render(blockGlyph)+" "+string(series.Trope))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Join(legend, "  "))
	return nil
}

// Bar prints horizontal bars scaled to the largest value.
func (b *Backend) Bar(w io.Writer, title string, in render.BarInput) error {
	writeTitle(w, title)

	nameWidth := util.LabelWidth(in.Labels, maxLabelWidth)
	maxValue := 0.0
	for _, v := range in.Values {
		maxValue = max(maxValue, v)
	}
	span := max(b.Width-nameWidth-8, 10)
	for i, label := range in.Labels {
		if i >= len(in.Values) {
			break
		}
		n := 0
		if maxValue > 0 {
			n = int(math.Round(in.Values[i] / maxValue * float64(span)))
		}
		fmt.Fprintf(w, "%s  %s %.2f\n",
			labelStyle.Render(util.PadLabel(label, nameWidth)),
			swatch(i).Render(strings.Repeat(blockGlyph, n)),
			in.Values[i])
	}
	return nil
}

// Chord lists each trope arc with its angular placement, then the
// co-occurrence matrix the ribbons are drawn from.
func (b *Backend) Chord(w io.Writer, title string, in render.ChordInput) error {
	writeTitle(w, title)

	layout := chord.Compute(in.Float(), chord.DefaultPadAngle)
	nameWidth := 0
	for _, t := range in.Tropes {
		nameWidth = max(nameWidth, len(t))
	}

	for _, g := range layout.Groups {
		if g.Index >= len(in.Tropes) {
			continue
		}
		label := chord.LabelFor(g)
		side := "right"
		if label.Flipped {
			side = "left"
		}
		fmt.Fprintf(w, "%s  %6.1f°–%6.1f°  %-5s  %s\n",
			swatch(g.Index).Render(fmt.Sprintf("%-*s", nameWidth, in.Tropes[g.Index])),
			degrees(g.StartAngle), degrees(g.EndAngle), side,
			axisStyle.Render(fmt.Sprintf("weight %.0f", g.Value)))
	}
	fmt.Fprintln(w)

	var header strings.Builder
	fmt.Fprintf(&header, "%-*s", nameWidth, "")
	for i := range in.Tropes {
		fmt.Fprintf(&header, " %3d", i+1)
	}
	fmt.Fprintln(w, axisStyle.Render(header.String()))
	for i, row := range in.Matrix {
		var line strings.Builder
		for _, v := range row {
			fmt.Fprintf(&line, " %3d", v)
		}
		fmt.Fprintf(w, "%s%s\n", swatch(i).Render(fmt.Sprintf("%-*s", nameWidth, in.Tropes[i])), line.String())
	}
	fmt.Fprintf(w, "%s\n", axisStyle.Render(fmt.Sprintf("%d ribbons", len(layout.Ribbons))))
	return nil
}

// scale maps v in r onto a cell index in [0, cells).
func scale(v float64, r render.Range, cells int) int {
	if cells <= 1 || r.Max <= r.Min || math.IsNaN(v) {
		return 0
	}
	i := int((v - r.Min) / (r.Max - r.Min) * float64(cells-1))
	return min(max(i, 0), cells-1)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
