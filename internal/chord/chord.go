// internal/chord/chord.go
// Package chord lays out a square co-occurrence matrix as a chord diagram:
// one arc per category around the circle and one ribbon per non-empty pair.
// Angles are radians measured clockwise from twelve o'clock.
package chord

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	// DefaultPadAngle separates neighbouring group arcs.
	DefaultPadAngle = 0.05
	// InnerRadius and OuterRadius bound the group arcs.
	InnerRadius = 180.0
	OuterRadius = 200.0
	// RibbonRadius is where ribbons meet the arcs.
	RibbonRadius = 180.0
	// LabelOffset is the distance of labels from the centre.
	LabelOffset = 210.0
)

// Group is the arc of one category.
type Group struct {
	Index      int
	StartAngle float64
	EndAngle   float64
	Value      float64
}

// MidAngle is the angular midpoint of the arc.
func (g Group) MidAngle() float64 {
	return (g.StartAngle + g.EndAngle) / 2
}

// Subgroup is the slice of a group arc contributed by one partner category.
type Subgroup struct {
	Index      int
	Subindex   int
	StartAngle float64
	EndAngle   float64
	Value      float64
}

// Ribbon joins the subgroup of i toward j with the subgroup of j toward i.
// Source always holds the larger value.
type Ribbon struct {
	Source Subgroup
	Target Subgroup
}

// Layout is the computed geometry.
type Layout struct {
	Groups  []Group
	Ribbons []Ribbon
}

// Compute lays out matrix with the given pad angle. Subgroups within each
// group are ordered by descending value, ties keeping column order.
func Compute(matrix [][]float64, padAngle float64) Layout {
	n := len(matrix)
	if n == 0 {
		return Layout{}
	}

	groupSums := make([]float64, n)
	total := 0.0
	for i := range matrix {
		for j := 0; j < n && j < len(matrix[i]); j++ {
			groupSums[i] += matrix[i][j]
		}
		total += groupSums[i]
	}

	k := 0.0
	if total > 0 {
		k = math.Max(0, 2*math.Pi-padAngle*float64(n)) / total
	}
	dx := padAngle
	if k == 0 {
		dx = 2 * math.Pi / float64(n)
	}

	subgroups := make([]Subgroup, n*n)
	groups := make([]Group, n)
	x := 0.0
	for i := 0; i < n; i++ {
		order := make([]int, n)
		for j := range order {
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool {
			return value(matrix, i, order[a]) > value(matrix, i, order[b])
		})

		x0 := x
		for _, j := range order {
			v := value(matrix, i, j)
			a0 := x
			x += v * k
			subgroups[j*n+i] = Subgroup{Index: i, Subindex: j, StartAngle: a0, EndAngle: x, Value: v}
		}
		groups[i] = Group{Index: i, StartAngle: x0, EndAngle: x, Value: groupSums[i]}
		x += dx
	}

	var ribbons []Ribbon
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			source := subgroups[j*n+i]
			target := subgroups[i*n+j]
			if source.Value == 0 && target.Value == 0 {
				continue
			}
			if source.Value < target.Value {
				source, target = target, source
			}
			ribbons = append(ribbons, Ribbon{Source: source, Target: target})
		}
	}

	return Layout{Groups: groups, Ribbons: ribbons}
}

func value(matrix [][]float64, i, j int) float64 {
	if j >= len(matrix[i]) {
		return 0
	}
	return matrix[i][j]
}

// Label places a category name at its arc's midpoint.
type Label struct {
	Angle float64
	// Rotate is the rotation in degrees applied before translating outward.
	Rotate float64
	// Flipped is true on the left half of the circle, where the text is
	// turned upright and anchored at its end.
	Flipped bool
	Anchor  string
}

// LabelFor returns the label placement for g.
func LabelFor(g Group) Label {
	angle := g.MidAngle()
	flipped := angle > math.Pi
	anchor := "start"
	if flipped {
		anchor = "end"
	}
	return Label{
		Angle:   angle,
		Rotate:  angle*180/math.Pi - 90,
		Flipped: flipped,
		Anchor:  anchor,
	}
}

// Transform renders the label placement as an SVG transform attribute value.
func (l Label) Transform() string {
	t := fmt.Sprintf("rotate(%s) translate(%s,0)", num(l.Rotate), num(LabelOffset))
	if l.Flipped {
		t += " rotate(180)"
	}
	return t
}

// ArcPath returns SVG path data for an annular sector.
func ArcPath(innerRadius, outerRadius, startAngle, endAngle float64) string {
	large := largeArc(startAngle, endAngle)
	ox0, oy0 := point(outerRadius, startAngle)
	ox1, oy1 := point(outerRadius, endAngle)
	ix1, iy1 := point(innerRadius, endAngle)
	ix0, iy0 := point(innerRadius, startAngle)

	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(ox0), num(oy0))
	fmt.Fprintf(&b, "A%s,%s,0,%d,1,%s,%s", num(outerRadius), num(outerRadius), large, num(ox1), num(oy1))
	fmt.Fprintf(&b, "L%s,%s", num(ix1), num(iy1))
	fmt.Fprintf(&b, "A%s,%s,0,%d,0,%s,%s", num(innerRadius), num(innerRadius), large, num(ix0), num(iy0))
	b.WriteString("Z")
	return b.String()
}

// RibbonPath returns SVG path data for a ribbon of the given radius. Both
// ends are arcs on the circle joined by quadratic curves through the centre.
func RibbonPath(r Ribbon, radius float64) string {
	s0, s1 := r.Source.StartAngle, r.Source.EndAngle
	t0, t1 := r.Target.StartAngle, r.Target.EndAngle

	sx0, sy0 := point(radius, s0)
	sx1, sy1 := point(radius, s1)

	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(sx0), num(sy0))
	fmt.Fprintf(&b, "A%s,%s,0,%d,1,%s,%s", num(radius), num(radius), largeArc(s0, s1), num(sx1), num(sy1))
	if s0 != t0 || s1 != t1 {
		tx0, ty0 := point(radius, t0)
		tx1, ty1 := point(radius, t1)
		fmt.Fprintf(&b, "Q0,0,%s,%s", num(tx0), num(ty0))
		fmt.Fprintf(&b, "A%s,%s,0,%d,1,%s,%s", num(radius), num(radius), largeArc(t0, t1), num(tx1), num(ty1))
	}
	fmt.Fprintf(&b, "Q0,0,%s,%s", num(sx0), num(sy0))
	b.WriteString("Z")
	return b.String()
}

func point(radius, angle float64) (float64, float64) {
	return radius * math.Sin(angle), -radius * math.Cos(angle)
}

func largeArc(a0, a1 float64) int {
	if a1-a0 > math.Pi {
		return 1
	}
	return 0
}

func num(v float64) string {
	if math.Abs(v) < 1e-9 {
		v = 0
	}
	return fmt.Sprintf("%.3f", v)
}
