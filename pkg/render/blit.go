package render

import (
	"tinygo.org/x/drivers"
)

// Blit copies the canvas to a display driver, cropping to whichever of the
// two is smaller, then calls Display.
func (cv *Canvas) Blit(d drivers.Displayer) error {
	dw, dh := d.Size()
	w := min(cv.Width, int(dw))
	h := min(cv.Height, int(dh))

	for y := range h {
		row := cv.Pix[y*cv.Width : y*cv.Width+w]
		for x, p := range row {
			d.SetPixel(int16(x), int16(y), Color(p).ToRGBA())
		}
	}
	return d.Display()
}
