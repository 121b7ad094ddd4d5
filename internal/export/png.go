// Package export writes heatmap snapshots and video recordings of
// concentration fields. It is a frame consumer: it copies whatever it needs
// before encoding and never touches live simulation state afterwards.
package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"turing-rd/internal/core"
)

// fieldGrid adapts a Field to plotter.GridXYZ on a unit-spaced grid.
type fieldGrid struct {
	f *core.Field
}

func (g fieldGrid) Dims() (c, r int)   { return g.f.W, g.f.H }
func (g fieldGrid) Z(c, r int) float64 { return g.f.At(c, r) }
func (g fieldGrid) X(c int) float64    { return float64(c) }
func (g fieldGrid) Y(r int) float64    { return float64(r) }

// WritePNG renders the field as a heatmap plot and saves it to filename.
func WritePNG(f *core.Field, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	pal := moreland.Kindlmann().Palette(255)
	p.Add(plotter.NewHeatMap(fieldGrid{f: f.Clone()}, pal))

	return savePlotPNG(p, 6, 6, filename)
}

// savePlotPNG renders a plot to a PNG file using a raster canvas.
func savePlotPNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create snapshot dir: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(96),
	)
	p.Draw(draw.New(c))

	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	defer bw.Flush()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}
