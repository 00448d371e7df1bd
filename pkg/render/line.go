package render

// DrawLine draws a line between two points in geometry coordinates using
// Bresenham's algorithm. Y grows upward: geometry row y is written to
// buffer row Height-y, so y=0 falls just below the canvas.
//
// Both endpoints are plotted. Out-of-bounds pixels are counted in Clipped.
func (cv *Canvas) DrawLine(x0, y0, x1, y1 int, c Color) {
	y0 = cv.Height - y0
	y1 = cv.Height - y1

	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	derror2 := abs(dy) * 2
	error2 := 0
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			cv.SetPixel(y, x, c)
		} else {
			cv.SetPixel(x, y, c)
		}
		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
