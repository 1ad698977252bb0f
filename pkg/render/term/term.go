// Package term implements [render.Painter] on a braille micro-pixel grid
// for display in a terminal.
//
// Each character cell holds 2x4 dots, so a cols×rows terminal area is a
// (2·cols)×(4·rows) pixel surface.
package term

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/framechart/pkg/geom"
	"github.com/matzehuels/framechart/pkg/render"
	"github.com/matzehuels/framechart/pkg/style"
)

// Painter draws into a braille buffer.
type Painter struct {
	buf *brailleBuf
}

var _ render.Painter = (*Painter)(nil)

// New returns a painter covering cols×rows character cells.
func New(cols, rows int) *Painter {
	return &Painter{buf: newBrailleBuf(max(cols, 0), max(rows, 0))}
}

func (p *Painter) Size() (float64, float64) {
	return float64(p.buf.w * 2), float64(p.buf.h * 4)
}

// Fill clears the grid. Terminal background colour is left to the terminal.
func (p *Painter) Fill(color.RGBA) { p.buf.clear() }

func (p *Painter) Polyline(pts []geom.Coord, s render.Stroke) {
	if len(pts) < 2 || !s.Visible() {
		return
	}
	for i := 1; i < len(pts); i++ {
		x0, y0 := p.micro(pts[i-1])
		x1, y1 := p.micro(pts[i])
		p.buf.drawLineMicro(x0, y0, x1, y1, s.Color)
	}
}

func (p *Painter) Polygon(pts []geom.Coord, fill color.RGBA, s render.Stroke) {
	if len(pts) < 2 {
		return
	}
	if fill.A > 0 {
		p.fillPolygon(pts, fill)
	}
	closed := append(append([]geom.Coord{}, pts...), pts[0])
	p.Polyline(closed, s)
}

func (p *Painter) Circle(center geom.Coord, r float64, fill color.RGBA, s render.Stroke) {
	cx, cy := p.micro(center)
	if fill.A == 0 && !s.Visible() {
		return
	}
	c := fill
	if c.A == 0 {
		c = s.Color
	}
	ir := int(math.Round(r))
	if ir < 1 {
		p.buf.setPixel(cx, cy, c)
		return
	}
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			d := dx*dx + dy*dy
			if d > ir*ir {
				continue
			}
			if fill.A > 0 || d > (ir-1)*(ir-1) {
				p.buf.setPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// Text writes s into character cells. Text rotated by more than 45 degrees
// runs vertically.
func (p *Painter) Text(at geom.Coord, s string, ts render.TextStyle) {
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}
	mx, my := p.micro(at)
	cx, cy := mx/2, my/4
	n := len(runes)
	if math.Abs(math.Sin(ts.Rotate)) > math.Sqrt2/2 {
		cy -= int(math.Round(ts.AlignX * float64(n-1)))
		for i, r := range runes {
			p.buf.setText(cx, cy+i, r, ts.Color)
		}
		return
	}
	cx -= int(math.Round(ts.AlignX * float64(n-1)))
	for i, r := range runes {
		p.buf.setText(cx+i, cy, r, ts.Color)
	}
}

// Lines returns the grid as plain strings, one per row.
func (p *Painter) Lines() []string {
	out := make([]string, p.buf.h)
	for y := range p.buf.h {
		row := make([]rune, p.buf.w)
		for x := range p.buf.w {
			row[x] = p.buf.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Styled returns the grid with each cell coloured through lipgloss.
func (p *Painter) Styled() string {
	var sb strings.Builder
	for y := range p.buf.h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range p.buf.w {
			r := p.buf.cell(x, y)
			c := p.buf.fg[y][x]
			if r == ' ' || c.A == 0 {
				sb.WriteRune(r)
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(style.Hex(c))).Render(string(r)))
		}
	}
	return sb.String()
}

// micro converts y-up surface pixels to y-down micro-pixel indices.
func (p *Painter) micro(c geom.Coord) (int, int) {
	_, h := p.Size()
	return int(math.Floor(c.X)), int(math.Floor(h - c.Y))
}

func (p *Painter) fillPolygon(pts []geom.Coord, c color.RGBA) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, q := range pts {
		minX, maxX = math.Min(minX, q.X), math.Max(maxX, q.X)
		minY, maxY = math.Min(minY, q.Y), math.Max(maxY, q.Y)
	}
	for y := math.Floor(minY); y <= maxY; y++ {
		for x := math.Floor(minX); x <= maxX; x++ {
			if inside(pts, geom.C(x+0.5, y+0.5)) {
				mx, my := p.micro(geom.C(x, y+1))
				p.buf.setPixel(mx, my, c)
			}
		}
	}
}

// inside is the even-odd point-in-polygon test.
func inside(pts []geom.Coord, q geom.Coord) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > q.Y) != (b.Y > q.Y) && q.X < (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}
