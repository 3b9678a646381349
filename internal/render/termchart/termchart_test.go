package termchart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mwiater/fightsongs/internal/aggregate"
	"github.com/mwiater/fightsongs/internal/charts"
	"github.com/mwiater/fightsongs/internal/dataset"
	"github.com/mwiater/fightsongs/internal/render"
)

func sampleDescriptors(t *testing.T) []charts.Descriptor {
	t.Helper()
	rows := []dataset.Row{
		{School: "Alpha State", Conference: "Big Ten", BPM: 140, SecDuration: 60, Tropes: map[dataset.Trope]bool{dataset.TropeFight: true, dataset.TropeVictory: true}},
		{School: "Beta Tech", Conference: "SEC", BPM: 80, SecDuration: 45, Tropes: map[dataset.Trope]bool{dataset.TropeFight: true}},
		{School: "Gamma College", BPM: math.NaN(), SecDuration: 30},
	}
	descs, err := charts.Build(rows, aggregate.Build(rows))
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return descs
}

func TestRenderEveryKind(t *testing.T) {
	descs := sampleDescriptors(t)
	b := New(60, 12)
	want := [][]string{
		{"Tempo vs. Duration", noteGlyph, "BPM 0..150"},
		{"Song Duration by Conference", "Big Ten", "Unknown", "0..70 seconds"},
		{"Stacked Tropes by School", "Alpha State", "Gamma College", "spelling"},
		{"Average Trope Count by Conference", "Big Ten", "2.00", "0.00"},
		{"Trope Relationships Chord Chart", "fight", "weight", "ribbons"},
	}
	for i, d := range descs {
		var buf bytes.Buffer
		if err := render.Render(b, &buf, d); err != nil {
			t.Fatalf("%s: render error: %v", d.Kind, err)
		}
		out := buf.String()
		for _, s := range want[i] {
			if !strings.Contains(out, s) {
				t.Fatalf("%s: expected %q in output:\n%s", d.Kind, s, out)
			}
		}
	}
}

func TestScatterSkipsNaNPoints(t *testing.T) {
	in := render.ScatterInput{
		Points: []render.ScatterPoint{{X: math.NaN(), Y: 10, Label: "x"}},
		XRange: render.Range{Max: 10},
		YRange: render.Range{Max: 20},
	}
	var buf bytes.Buffer
	if err := New(20, 5).Scatter(&buf, "t", in); err != nil {
		t.Fatalf("Scatter error: %v", err)
	}
	if strings.Contains(buf.String(), noteGlyph) {
		t.Fatalf("NaN point should not be plotted")
	}
}

func TestScale(t *testing.T) {
	r := render.Range{Min: 0, Max: 100}
	if got := scale(0, r, 11); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := scale(100, r, 11); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := scale(250, r, 11); got != 10 {
		t.Fatalf("expected clamp to 10, got %d", got)
	}
	if got := scale(5, render.Range{}, 11); got != 0 {
		t.Fatalf("expected 0 for empty range, got %d", got)
	}
}

func TestNewDefaults(t *testing.T) {
	b := New(0, 0)
	if b.Width != defaultWidth || b.Height != defaultHeight {
		t.Fatalf("expected defaults, got %dx%d", b.Width, b.Height)
	}
}

func TestBarTruncatesLongLabels(t *testing.T) {
	in := render.BarInput{
		Labels: []string{"Conference With A Very Long Display Name", "SEC"},
		Values: []float64{1.5, 3},
	}
	var buf bytes.Buffer
	if err := New(60, 10).Bar(&buf, "bars", in); err != nil {
		t.Fatalf("Bar error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Display Name") {
		t.Fatalf("expected long label to be truncated:\n%s", out)
	}
	if !strings.Contains(out, "…") || !strings.Contains(out, "3.00") {
		t.Fatalf("unexpected bar output:\n%s", out)
	}
}
