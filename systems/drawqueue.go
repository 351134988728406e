package systems

import (
	"image/color"
	"sort"
	"strings"

	"github.com/automoto/glassdialog/dialog"
	"github.com/automoto/glassdialog/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type drawKind int

const (
	drawRect drawKind = iota
	drawText
)

type drawCommand struct {
	kind  drawKind
	layer int

	rect   dialog.Rect
	clr    color.Color
	radius float64

	face  fonts.FontName
	text  string
	x, y  float64
	align dialog.Align
}

// DrawQueue collects layered draw commands and replays them lowest layer
// first. Commands on the same layer keep their submission order.
type DrawQueue struct {
	TextColor color.Color

	cmds []drawCommand
}

// NewDrawQueue returns a queue that draws text in textColor.
func NewDrawQueue(textColor color.Color) *DrawQueue {
	return &DrawQueue{TextColor: textColor}
}

func (q *DrawQueue) FillRect(r dialog.Rect, clr color.Color, radius float64, layer int) {
	q.cmds = append(q.cmds, drawCommand{kind: drawRect, layer: layer, rect: r, clr: clr, radius: radius})
}

func (q *DrawQueue) DrawText(face fonts.FontName, s string, x, y float64, align dialog.Align, layer int) {
	q.cmds = append(q.cmds, drawCommand{kind: drawText, layer: layer, face: face, text: s, x: x, y: y, align: align})
}

// Len returns the number of queued commands.
func (q *DrawQueue) Len() int {
	return len(q.cmds)
}

// Reset drops all queued commands.
func (q *DrawQueue) Reset() {
	q.cmds = q.cmds[:0]
}

func (q *DrawQueue) sort() {
	sort.SliceStable(q.cmds, func(i, j int) bool {
		return q.cmds[i].layer < q.cmds[j].layer
	})
}

// Flush draws all queued commands onto screen and empties the queue.
func (q *DrawQueue) Flush(screen *ebiten.Image) {
	q.sort()
	for i := range q.cmds {
		cmd := &q.cmds[i]
		switch cmd.kind {
		case drawRect:
			fillRect(screen, cmd)
		case drawText:
			q.drawText(screen, cmd)
		}
	}
	q.Reset()
}

func fillRect(screen *ebiten.Image, cmd *drawCommand) {
	r := cmd.rect
	if cmd.radius <= 0 {
		vector.FillRect(
			screen,
			float32(r.X0), float32(r.Y0),
			float32(r.Width()), float32(r.Height()),
			cmd.clr,
			false,
		)
		return
	}

	var cs ebiten.ColorScale
	cs.ScaleWithColor(cmd.clr)
	vector.FillPath(screen, roundedRectPath(r, cmd.radius), &vector.FillOptions{}, &vector.DrawPathOptions{
		AntiAlias:  true,
		ColorScale: cs,
	})
}

// cornerRadius clamps radius so opposite corners of r never overlap.
func cornerRadius(r dialog.Rect, radius float64) float64 {
	return max(min(radius, r.Width()/2, r.Height()/2), 0)
}

// roundedRectPath outlines r with corners of the given radius.
func roundedRectPath(r dialog.Rect, radius float64) *vector.Path {
	rad := float32(cornerRadius(r, radius))
	x0, y0, x1, y1 := float32(r.X0), float32(r.Y0), float32(r.X1), float32(r.Y1)

	var p vector.Path
	p.MoveTo(x0+rad, y0)
	p.LineTo(x1-rad, y0)
	p.ArcTo(x1, y0, x1, y0+rad, rad)
	p.LineTo(x1, y1-rad)
	p.ArcTo(x1, y1, x1-rad, y1, rad)
	p.LineTo(x0+rad, y1)
	p.ArcTo(x0, y1, x0, y1-rad, rad)
	p.LineTo(x0, y0+rad)
	p.ArcTo(x0, y0, x0+rad, y0, rad)
	p.Close()
	return &p
}

// drawText treats (x, y) as the top anchor of the first line. Each line is
// aligned on its own.
func (q *DrawQueue) drawText(screen *ebiten.Image, cmd *drawCommand) {
	face := cmd.face.Get()
	m := fonts.NewMetricsForFace(face)
	baseline := cmd.y + m.Ascent()

	for i, line := range strings.Split(cmd.text, "\n") {
		w, _ := m.Measure(line)
		x := alignedX(cmd.x, w, cmd.align)
		y := baseline + float64(i)*m.LineHeight()
		text.Draw(screen, line, face, int(x), int(y), q.TextColor)
	}
}

func alignedX(x, width float64, align dialog.Align) float64 {
	switch align {
	case dialog.AlignCenter:
		return x - width/2
	case dialog.AlignRight:
		return x - width
	}
	return x
}
