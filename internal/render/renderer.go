// Package render turns a finished dungeon into a styled map image: parchment
// background, brick-ringed walls, inked floor tiles, and cosmetic weathering
// in the form of pebbles and cracks. Rendering never changes the dungeon.
package render

import (
	"image"
	"math"
	"math/rand"

	"rosecrypt/internal/dungeon"
	"rosecrypt/internal/logging"
)

// Renderer draws one dungeon. Like the generator it is single-use; the
// cosmetic rng is seeded at construction.
type Renderer struct {
	dungeon  *dungeon.Dungeon
	settings Settings
	rng      *rand.Rand
	log      logging.Logger
	img      *image.RGBA
}

// NewRenderer prepares a renderer and its backing image, pre-filled with the
// paper color. A nil logger disables logging.
func NewRenderer(d *dungeon.Dungeon, settings Settings, log logging.Logger) *Renderer {
	if log == nil {
		log = logging.Nop()
	}
	img := image.NewRGBA(image.Rect(0, 0, d.Width*TileSize, d.Height*TileSize))
	fillRect(img, 0, 0, d.Width*TileSize-1, d.Height*TileSize-1, settings.Style.Paper)
	return &Renderer{
		dungeon:  d,
		settings: settings,
		rng:      rand.New(rand.NewSource(settings.seedValue())),
		log:      log,
		img:      img,
	}
}

// Render draws every layer and returns the finished image: brick rings and
// ink lines for walls first, then floor tiles over their inner halves, then
// pebbles, cracks, and doors on top.
func (r *Renderer) Render() *image.RGBA {
	r.log.Infof("drawing %d wall brick rings", len(r.dungeon.Walls))
	for _, wall := range r.dungeon.Walls {
		r.drawWallBlockRing(wall)
	}

	r.log.Infof("drawing %d wall lines", len(r.dungeon.Walls))
	for _, wall := range r.dungeon.Walls {
		r.drawWallSegment(wall)
	}

	r.log.Infof("drawing floor tiles")
	r.drawFloorTiles()

	r.log.Infof("drawing pebbles")
	r.drawPebbles()

	r.log.Infof("drawing cracks")
	r.drawCracks(r.settings.Aging)

	r.log.Infof("drawing %d doors", len(r.dungeon.Doors))
	for _, door := range r.dungeon.Doors {
		r.drawDoor(door)
	}

	return r.img
}

// drawFloorTiles fills every walkable tile with the floor color and inks a
// thin outline along all four tile borders.
func (r *Renderer) drawFloorTiles() {
	style := r.settings.Style
	for y := 0; y < r.dungeon.Height; y++ {
		for x := 0; x < r.dungeon.Width; x++ {
			if !r.dungeon.FloorAt(x, y) {
				continue
			}
			x1 := x * TileSize
			y1 := y * TileSize
			x2 := x1 + TileSize
			y2 := y1 + TileSize

			fillRect(r.img, x1, y1, x2, y2, style.Floor)

			drawLine(r.img, x1, y1, x2, y1, 1, style.Ink)
			drawLine(r.img, x1, y2, x2, y2, 1, style.Ink)
			drawLine(r.img, x1, y1, x1, y2, 1, style.Ink)
			drawLine(r.img, x2, y1, x2, y2, 1, style.Ink)
		}
	}
}

// drawWallBlockRing lays a run of overlapping random-sized bricks along the
// wall to suggest rough stonework.
func (r *Renderer) drawWallBlockRing(wall dungeon.WallSegment) {
	x1, y1, x2, y2 := wall.PixelCoords(TileSize)

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	style := r.settings.Style
	covered := 0.0
	for covered < length {
		w := r.randRange(brickMinWidth, brickMaxWidth)
		h := r.randRange(brickMinHeight, brickMaxHeight)

		t := covered / length
		cx := float64(x1) + dx*t
		cy := float64(y1) + dy*t

		bx1 := int(cx) - w/2
		by1 := int(cy) - h/2
		bx2 := int(cx) + w/2
		by2 := int(cy) + h/2

		fillRect(r.img, bx1, by1, bx2, by2, style.Stone)
		strokeRect(r.img, bx1, by1, bx2, by2, Border, style.Ink)

		// Overlap even the smallest bricks.
		covered += float64(w) * 0.6
	}
}

func (r *Renderer) drawWallSegment(wall dungeon.WallSegment) {
	x1, y1, x2, y2 := wall.PixelCoords(TileSize)
	drawLine(r.img, x1, y1, x2, y2, WallThickness, r.settings.Style.Ink)
}

// drawPebbles scatters small stones on floor tiles picked by the noise
// field, mixing round pebbles and irregular fragments.
func (r *Renderer) drawPebbles() {
	const (
		scale     = 0.9
		threshold = 0.4
	)
	style := r.settings.Style

	for y := 0; y < r.dungeon.Height; y++ {
		for x := 0; x < r.dungeon.Width; x++ {
			if !r.dungeon.FloorAt(x, y) {
				continue
			}
			if valueNoise(float64(x)*scale, float64(y)*scale) <= threshold {
				continue
			}

			x1 := x * TileSize
			y1 := y * TileSize

			count := r.randRange(1, 3)
			for i := 0; i < count; i++ {
				px := x1 + r.randRange(10, TileSize-10)
				py := y1 + r.randRange(10, TileSize-10)
				radius := r.randRange(3, 6)

				if radius > 4 {
					// Irregular outline for the larger stones.
					var points [][2]float64
					for angle := 0; angle < 360; angle += 15 {
						rad := float64(angle) * math.Pi / 180
						rr := float64(radius) + r.rng.Float64()*3 - 1.5
						points = append(points, [2]float64{
							float64(px) + rr*math.Cos(rad),
							float64(py) + rr*math.Sin(rad),
						})
					}
					fillPolygon(r.img, points, style.Ink)
				} else {
					fillEllipse(r.img, px, py, radius, radius, style.Ink)
				}
			}
		}
	}
}

// drawCracks extends jagged lines from wall midpoints onto the adjoining
// floor. The aging level sets the crack and branch probabilities.
func (r *Renderer) drawCracks(aging Aging) {
	crackChance, branchChance := aging.Chances()
	style := r.settings.Style

	for _, wall := range r.dungeon.Walls {
		x1, y1, x2, y2 := wall.PixelCoords(TileSize)
		mx := float64(x1+x2) / 2
		my := float64(y1+y2) / 2

		dx := float64(x2 - x1)
		dy := float64(y2 - y1)
		norm := math.Hypot(dx, dy)
		if norm == 0 {
			continue
		}
		dx /= norm
		dy /= norm
		perpX, perpY := -dy, dx

		// Cracks grow into the floor, so flip the normal when it points
		// into void.
		floorX := int((mx + perpX*2) / TileSize)
		floorY := int((my + perpY*2) / TileSize)
		if !r.dungeon.FloorAt(floorX, floorY) {
			perpX, perpY = -perpX, -perpY
			floorX = int((mx + perpX*2) / TileSize)
			floorY = int((my + perpY*2) / TileSize)
		}
		if !r.dungeon.FloorAt(floorX, floorY) {
			continue
		}

		if r.rng.Float64() >= crackChance {
			continue
		}

		dirAngle := math.Atan2(perpY, perpX)
		points := [][2]float64{{mx + perpX, my + perpY}}
		for i := r.randRange(3, 6); i > 0; i-- {
			last := points[len(points)-1]
			length := float64(r.randRange(5, 15))
			angle := dirAngle + r.rng.Float64() - 0.5
			points = append(points, [2]float64{
				last[0] + math.Cos(angle)*length,
				last[1] + math.Sin(angle)*length,
			})
		}
		drawPolyline(r.img, points, 1, style.Ink)

		if r.rng.Float64() < branchChance {
			base := points[r.randRange(1, len(points)-2)]
			branchAngle := dirAngle + math.Pi/2 + r.rng.Float64() - 0.5
			branchLen := float64(r.randRange(5, 12))
			drawPolyline(r.img, [][2]float64{
				base,
				{base[0] + math.Cos(branchAngle)*branchLen, base[1] + math.Sin(branchAngle)*branchLen},
			}, 1, style.Ink)
		}
	}
}

// drawDoor paints the door slab across its wall gap plus a frame block at
// each end. Degenerate segments fall back to a cross marker.
func (r *Renderer) drawDoor(door dungeon.Door) {
	style := r.settings.Style
	segment := door.AsWall()
	x1, y1, x2, y2 := segment.PixelCoords(TileSize)

	centerX := (x1 + x2) / 2
	centerY := (y1 + y2) / 2
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	doorColor := style.DoorColor(door.Material)
	frameColor := style.FrameColor(door.Material)

	half := TileSize / 2
	frameOffset := FrameSize - Border

	switch {
	case dy > dx:
		r.log.Debugf("drawing vertical %v door at (%d, %d)", door.Material, door.X, door.Y)
		fillRect(r.img, centerX-WallThickness/2, centerY-half, centerX+WallThickness/2, centerY+half, doorColor)
		strokeRect(r.img, centerX-WallThickness/2, centerY-half, centerX+WallThickness/2, centerY+half, Border, style.Ink)

		for _, fy := range []int{centerY - half + frameOffset, centerY + half - frameOffset} {
			fillRect(r.img, centerX-FrameSize, fy-FrameSize, centerX+FrameSize, fy+FrameSize, frameColor)
			strokeRect(r.img, centerX-FrameSize, fy-FrameSize, centerX+FrameSize, fy+FrameSize, Border, style.Ink)
		}

	case dx > dy:
		r.log.Debugf("drawing horizontal %v door at (%d, %d)", door.Material, door.X, door.Y)
		fillRect(r.img, centerX-half, centerY-WallThickness/2, centerX+half, centerY+WallThickness/2, doorColor)
		strokeRect(r.img, centerX-half, centerY-WallThickness/2, centerX+half, centerY+WallThickness/2, Border, style.Ink)

		for _, fx := range []int{centerX - half + frameOffset, centerX + half - frameOffset} {
			fillRect(r.img, fx-FrameSize, centerY-FrameSize, fx+FrameSize, centerY+FrameSize, frameColor)
			strokeRect(r.img, fx-FrameSize, centerY-FrameSize, fx+FrameSize, centerY+FrameSize, Border, style.Ink)
		}

	default:
		r.log.Warnf("could not identify door direction, drawing cross at (%d, %d)", door.X, door.Y)
		drawLine(r.img, centerX-half, centerY-half, centerX+half, centerY+half, 2, doorColor)
		drawLine(r.img, centerX-half, centerY+half, centerX+half, centerY-half, 2, doorColor)
	}
}

// randRange returns a uniform value in [lo, hi], endpoints inclusive.
func (r *Renderer) randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}
