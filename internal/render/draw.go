package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"
)

// Low-level raster helpers. Coordinates are pixels; rectangles are drawn
// with inclusive bounds to match how the outlines sit on tile borders.

func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	draw.Draw(img, image.Rect(x1, y1, x2+1, y2+1), image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect draws a rectangle outline of the given stroke width, inset
// into the rectangle.
func strokeRect(img *image.RGBA, x1, y1, x2, y2, width int, c color.Color) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	fillRect(img, x1, y1, x2, y1+width-1, c)
	fillRect(img, x1, y2-width+1, x2, y2, c)
	fillRect(img, x1, y1, x1+width-1, y2, c)
	fillRect(img, x2-width+1, y1, x2, y2, c)
}

// drawLine draws a straight segment with a square brush of the given width.
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, width int, c color.Color) {
	half := width / 2
	stamp := func(x, y int) {
		fillRect(img, x-half, y-half, x-half+width-1, y-half+width-1, c)
	}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	x, y := x1, y1
	for {
		stamp(x, y)
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// drawPolyline joins consecutive points with drawLine.
func drawPolyline(img *image.RGBA, points [][2]float64, width int, c color.Color) {
	for i := 1; i < len(points); i++ {
		drawLine(img,
			int(math.Round(points[i-1][0])), int(math.Round(points[i-1][1])),
			int(math.Round(points[i][0])), int(math.Round(points[i][1])),
			width, c)
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := -ry; y <= ry; y++ {
		fy := float64(y) / float64(ry)
		span := float64(rx) * math.Sqrt(1-fy*fy)
		half := int(math.Round(span))
		fillRect(img, cx-half, cy+y, cx+half, cy+y, c)
	}
}

// fillPolygon rasterizes a simple polygon by even-odd scanline filling.
func fillPolygon(img *image.RGBA, points [][2]float64, c color.Color) {
	if len(points) < 3 {
		return
	}
	minY, maxY := points[0][1], points[0][1]
	for _, p := range points {
		minY = math.Min(minY, p[1])
		maxY = math.Max(maxY, p[1])
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := range points {
			a := points[i]
			b := points[(i+1)%len(points)]
			if (a[1] <= fy && b[1] > fy) || (b[1] <= fy && a[1] > fy) {
				t := (fy - a[1]) / (b[1] - a[1])
				xs = append(xs, a[0]+t*(b[0]-a[0]))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			fillRect(img, int(math.Round(xs[i])), y, int(math.Round(xs[i+1])), y, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
