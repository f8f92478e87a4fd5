package render

import "math"

// valueNoise is a small deterministic 2-D value noise in [-1, 1], used to
// decide which floor tiles get pebble scatter. Lattice values come from an
// integer hash, smoothly interpolated between the four surrounding corners.
func valueNoise(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	tx := smoothstep(x - x0)
	ty := smoothstep(y - y0)

	ix, iy := int64(x0), int64(y0)
	v00 := latticeValue(ix, iy)
	v10 := latticeValue(ix+1, iy)
	v01 := latticeValue(ix, iy+1)
	v11 := latticeValue(ix+1, iy+1)

	top := v00 + (v10-v00)*tx
	bottom := v01 + (v11-v01)*tx
	return top + (bottom-top)*ty
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func latticeValue(x, y int64) float64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return float64(h>>11)/float64(1<<53)*2 - 1
}
