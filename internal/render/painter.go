//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"turing-rd/internal/core"
)

// FieldPainter updates a single RGBA image from a concentration field.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
	cm   *Colormap
}

// NewFieldPainter allocates a painter for a grid of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	p := &FieldPainter{w: w, h: h, buf: make([]byte, 4*w*h), cm: NewKindlmann()}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit uploads the field as a heatmap into the painter image and draws it.
func (p *FieldPainter) Blit(dst *ebiten.Image, f *core.Field, scale int) {
	if f.W != p.w || f.H != p.h {
		return
	}
	Heatmap(p.buf, f, p.cm)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *FieldPainter) Size() (int, int) { return p.w, p.h }
