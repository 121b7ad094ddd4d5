package render

import (
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/palette/moreland"

	"turing-rd/internal/core"
)

// Colormap is a precomputed RGBA lookup table over the normalized range
// [0, 1].
type Colormap struct {
	lut []color.RGBA
}

// NewKindlmann builds a colormap from the Kindlmann luminance palette.
func NewKindlmann() *Colormap {
	return fromColors(moreland.Kindlmann().Palette(256).Colors())
}

// NewSmoothBlueRed builds a diverging blue-to-red colormap.
func NewSmoothBlueRed() *Colormap {
	return fromColors(moreland.SmoothBlueRed().Palette(256).Colors())
}

func fromColors(colors []color.Color) *Colormap {
	cm := &Colormap{lut: make([]color.RGBA, len(colors))}
	for i, c := range colors {
		cm.lut[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return cm
}

// At returns the colormap entry for a normalized value. Values outside
// [0, 1] and non-finite values clamp to the ends; display clamping is a
// renderer policy, the simulation itself never clamps.
func (cm *Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	idx := int(t * float64(len(cm.lut)-1))
	return cm.lut[idx]
}

// FieldRange reports the finite min/max of the field values, falling back to
// [0, 1] when the field is constant or contains no finite values.
func FieldRange(vals []float64) (lo, hi float64) {
	lo, hi = floats.Min(vals), floats.Max(vals)
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range vals {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if lo >= hi || math.IsInf(lo, 0) {
		return 0, 1
	}
	return lo, hi
}

// FillHeatRGBA converts field values into RGBA pixels in buf, normalizing
// over [lo, hi]. buf must hold 4 bytes per value.
func FillHeatRGBA(buf []byte, vals []float64, lo, hi float64, cm *Colormap) {
	span := hi - lo
	if span <= 0 {
		span = 1
	}
	for i, v := range vals {
		c := cm.At((v - lo) / span)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Heatmap renders the field into buf using its own value range.
func Heatmap(buf []byte, f *core.Field, cm *Colormap) {
	vals := f.Values()
	lo, hi := FieldRange(vals)
	FillHeatRGBA(buf, vals, lo, hi, cm)
}
