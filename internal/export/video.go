package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"turing-rd/internal/core"
	"turing-rd/internal/render"
)

// VideoRecorder accumulates heatmap frames into a motion-JPEG AVI file.
type VideoRecorder struct {
	w, h   int
	writer mjpeg.AviWriter
	cm     *render.Colormap
	img    *image.RGBA
	opts   *jpeg.Options
}

// NewVideoRecorder opens an AVI file for a w*h field at the given frame
// rate.
func NewVideoRecorder(path string, w, h int, fps int) (*VideoRecorder, error) {
	if fps <= 0 {
		fps = 30
	}
	writer, err := mjpeg.New(path, int32(w), int32(h), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("cannot open avi %s: %w", path, err)
	}
	return &VideoRecorder{
		w:      w,
		h:      h,
		writer: writer,
		cm:     render.NewKindlmann(),
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		opts:   &jpeg.Options{Quality: 90},
	}, nil
}

// AddFrame encodes the field as one video frame. The field is read
// synchronously; nothing is retained after return.
func (r *VideoRecorder) AddFrame(f *core.Field) error {
	if f.W != r.w || f.H != r.h {
		return fmt.Errorf("frame shape %dx%d does not match recorder %dx%d", f.W, f.H, r.w, r.h)
	}
	render.Heatmap(r.img.Pix, f, r.cm)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, r.img, r.opts); err != nil {
		return fmt.Errorf("cannot encode frame: %w", err)
	}
	if err := r.writer.AddFrame(buf.Bytes()); err != nil {
		return fmt.Errorf("cannot add frame: %w", err)
	}
	return nil
}

// Close finalizes the AVI file.
func (r *VideoRecorder) Close() error {
	return r.writer.Close()
}
