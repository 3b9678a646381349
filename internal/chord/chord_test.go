package chord

import (
	"math"
	"strings"
	"testing"
)

func TestComputeAnglesCoverCircle(t *testing.T) {
	matrix := [][]float64{
		{2, 1, 0},
		{1, 1, 1},
		{0, 1, 3},
	}
	layout := Compute(matrix, DefaultPadAngle)
	if len(layout.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(layout.Groups))
	}

	covered := 0.0
	for _, g := range layout.Groups {
		covered += g.EndAngle - g.StartAngle
	}
	want := 2*math.Pi - DefaultPadAngle*3
	if math.Abs(covered-want) > 1e-9 {
		t.Fatalf("expected arcs to cover %v, got %v", want, covered)
	}

	last := layout.Groups[2]
	if math.Abs(last.EndAngle+DefaultPadAngle-2*math.Pi) > 1e-9 {
		t.Fatalf("expected last arc to close the circle, ends at %v", last.EndAngle)
	}
}

func TestComputeGroupsProportionalToRowSums(t *testing.T) {
	matrix := [][]float64{{3, 1}, {1, 3}}
	layout := Compute(matrix, 0)
	a := layout.Groups[0].EndAngle - layout.Groups[0].StartAngle
	b := layout.Groups[1].EndAngle - layout.Groups[1].StartAngle
	if math.Abs(a-math.Pi) > 1e-9 || math.Abs(b-math.Pi) > 1e-9 {
		t.Fatalf("expected two half circles, got %v and %v", a, b)
	}
	if layout.Groups[0].Value != 4 {
		t.Fatalf("expected group value 4, got %v", layout.Groups[0].Value)
	}
}

func TestComputeRibbons(t *testing.T) {
	matrix := [][]float64{
		{2, 1, 0},
		{1, 1, 0},
		{0, 0, 0},
	}
	layout := Compute(matrix, DefaultPadAngle)
	// (0,0), (0,1) and (1,1) are non-empty; everything touching 2 is skipped.
	if len(layout.Ribbons) != 3 {
		t.Fatalf("expected 3 ribbons, got %d", len(layout.Ribbons))
	}
	for _, r := range layout.Ribbons {
		if r.Source.Value < r.Target.Value {
			t.Fatalf("source should hold the larger value: %+v", r)
		}
		if r.Source.Index == 2 || r.Target.Index == 2 {
			t.Fatalf("unexpected ribbon for empty category: %+v", r)
		}
	}
}

func TestComputeSubgroupsDescending(t *testing.T) {
	matrix := [][]float64{{1, 5, 3}, {5, 0, 0}, {3, 0, 0}}
	layout := Compute(matrix, 0)
	// Group 0 lays out partner 1 (5) first, then 2 (3), then itself (1).
	var first Subgroup
	for _, r := range layout.Ribbons {
		if r.Source.Index == 0 && r.Source.Subindex == 1 {
			first = r.Source
		}
		if r.Target.Index == 0 && r.Target.Subindex == 1 {
			first = r.Target
		}
	}
	if first.StartAngle != 0 {
		t.Fatalf("expected largest subgroup at angle 0, got %+v", first)
	}
}

func TestComputeEmptyMatrix(t *testing.T) {
	if got := Compute(nil, DefaultPadAngle); len(got.Groups) != 0 || len(got.Ribbons) != 0 {
		t.Fatalf("expected empty layout, got %+v", got)
	}
	zero := Compute([][]float64{{0, 0}, {0, 0}}, DefaultPadAngle)
	if len(zero.Ribbons) != 0 {
		t.Fatalf("expected no ribbons for zero matrix")
	}
	if zero.Groups[1].StartAngle != math.Pi {
		t.Fatalf("expected evenly spaced empty groups, got %+v", zero.Groups)
	}
}

func TestLabelFor(t *testing.T) {
	right := LabelFor(Group{StartAngle: 0, EndAngle: math.Pi / 2})
	if right.Flipped || right.Anchor != "start" {
		t.Fatalf("expected start-anchored label, got %+v", right)
	}
	if math.Abs(right.Rotate-(-45)) > 1e-9 {
		t.Fatalf("expected rotation -45, got %v", right.Rotate)
	}
	if strings.Contains(right.Transform(), "rotate(180)") {
		t.Fatalf("unflipped label should not rotate 180: %s", right.Transform())
	}

	left := LabelFor(Group{StartAngle: math.Pi, EndAngle: 1.5 * math.Pi})
	if !left.Flipped || left.Anchor != "end" {
		t.Fatalf("expected flipped end-anchored label, got %+v", left)
	}
	if !strings.HasSuffix(left.Transform(), "rotate(180)") {
		t.Fatalf("flipped label should end with rotate(180): %s", left.Transform())
	}
	if !strings.Contains(left.Transform(), "translate(210.000,0)") {
		t.Fatalf("expected label offset in transform: %s", left.Transform())
	}
}

func TestArcPath(t *testing.T) {
	path := ArcPath(InnerRadius, OuterRadius, 0, math.Pi/2)
	if !strings.HasPrefix(path, "M0.000,-200.000") {
		t.Fatalf("expected arc to start at twelve o'clock, got %s", path)
	}
	if !strings.Contains(path, "A200.000,200.000,0,0,1,200.000,0.000") {
		t.Fatalf("expected outer arc to three o'clock, got %s", path)
	}
	if !strings.HasSuffix(path, "Z") {
		t.Fatalf("expected closed path, got %s", path)
	}
	big := ArcPath(InnerRadius, OuterRadius, 0, 1.5*math.Pi)
	if !strings.Contains(big, ",0,1,1,") {
		t.Fatalf("expected large-arc flag for a 270 degree sweep, got %s", big)
	}
}

func TestRibbonPathSelfLink(t *testing.T) {
	s := Subgroup{StartAngle: 0, EndAngle: 0.5}
	self := RibbonPath(Ribbon{Source: s, Target: s}, RibbonRadius)
	if strings.Count(self, "Q") != 1 {
		t.Fatalf("self ribbon should have a single closing curve, got %s", self)
	}
	other := RibbonPath(Ribbon{Source: s, Target: Subgroup{StartAngle: 2, EndAngle: 2.5}}, RibbonRadius)
	if strings.Count(other, "Q") != 2 {
		t.Fatalf("pair ribbon should have two curves, got %s", other)
	}
}
