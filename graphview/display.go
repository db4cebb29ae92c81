// Package graphview renders graph.Plot scenes into an RGBA framebuffer and
// shows them in a desktop window.
package graphview

import (
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
)

// imageDisplay adapts an image.RGBA to the displayer surface tinyfont and the
// plot renderer draw on.
type imageDisplay struct {
	img *image.RGBA
}

func newImageDisplay(width, height int) *imageDisplay {
	return &imageDisplay{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	b := d.img.Bounds()
	if int(x) < 0 || int(x) >= b.Dx() || int(y) < 0 || int(y) >= b.Dy() {
		return
	}
	d.img.SetRGBA(int(x), int(y), c)
}

func (d *imageDisplay) Display() error { return nil }

func (d *imageDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	b := d.img.Bounds()
	x0 := clampInt(int(x), 0, b.Dx())
	y0 := clampInt(int(y), 0, b.Dy())
	x1 := clampInt(int(x)+int(width), 0, b.Dx())
	y1 := clampInt(int(y)+int(height), 0, b.Dy())
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	draw.Draw(d.img, image.Rect(x0, y0, x1, y1), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return nil
}

func (d *imageDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
