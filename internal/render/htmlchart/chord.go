// internal/render/htmlchart/chord.go
package htmlchart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/mwiater/fightsongs/internal/chord"
	"github.com/mwiater/fightsongs/internal/render"
)

// Chord draws the co-occurrence matrix as an SVG chord diagram centred in
// the container: group arcs, then ribbons, then one label per group.
func (b *Backend) Chord(w io.Writer, title string, in render.ChordInput) error {
	layout := chord.Compute(in.Float(), chord.DefaultPadAngle)

	canvas := svg.New(w)
	canvas.Start(b.Width, b.Height, `role="img"`)
	canvas.Title(title)
	canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", b.Width/2, b.Height/2))

	canvas.Gid("arcs")
	for _, g := range layout.Groups {
		canvas.Path(
			chord.ArcPath(chord.InnerRadius, chord.OuterRadius, g.StartAngle, g.EndAngle),
			fmt.Sprintf(`fill="%s"`, render.PaletteColor(g.Index)),
			`stroke="#000"`,
		)
	}
	canvas.Gend()

	canvas.Gid("ribbons")
	for _, r := range layout.Ribbons {
		canvas.Path(
			chord.RibbonPath(r, chord.RibbonRadius),
			fmt.Sprintf(`fill="%s"`, render.PaletteColor(r.Target.Index)),
			`stroke="#000"`,
			`fill-opacity="0.8"`,
		)
	}
	canvas.Gend()

	canvas.Gid("labels")
	for _, g := range layout.Groups {
		if g.Index >= len(in.Tropes) {
			continue
		}
		label := chord.LabelFor(g)
		canvas.Text(0, 0, string(in.Tropes[g.Index]),
			`dy=".35em"`,
			fmt.Sprintf(`transform="%s"`, label.Transform()),
			fmt.Sprintf(`text-anchor="%s"`, label.Anchor),
		)
	}
	canvas.Gend()

	canvas.Gend()
	canvas.End()
	return nil
}
