package render

import (
	"image/color"
	"testing"

	"rosecrypt/internal/generate"
)

func TestRenderImageDimensions(t *testing.T) {
	tags := generate.TagSet{generate.SmallRooms: true, generate.MediumDensity: true, generate.StraightHalls: true}
	g := generate.NewGenerator(generate.NewSettings("render", tags, 20, 20), nil)
	d, _ := g.Generate()

	img := NewRenderer(d, NewSettings("render", Old), nil).Render()

	bounds := img.Bounds()
	if bounds.Dx() != 20*TileSize || bounds.Dy() != 20*TileSize {
		t.Fatalf("image is %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), 20*TileSize, 20*TileSize)
	}
}

func TestRenderPaperBackgroundInCorner(t *testing.T) {
	tags := generate.TagSet{generate.SmallRooms: true, generate.MediumDensity: true, generate.StraightHalls: true}
	g := generate.NewGenerator(generate.NewSettings("corner", tags, 20, 20), nil)
	d, _ := g.Generate()

	settings := NewSettings("corner", Old)
	img := NewRenderer(d, settings, nil).Render()

	// Rooms keep a one-tile margin, so the very corner pixel stays paper.
	want := color.RGBAModel.Convert(settings.Style.Paper)
	if got := img.At(0, 0); color.RGBAModel.Convert(got) != want {
		t.Errorf("corner pixel = %v, want paper %v", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	tags := generate.TagSet{generate.SmallRooms: true, generate.MediumDensity: true, generate.StraightHalls: true}
	g := generate.NewGenerator(generate.NewSettings("det", tags, 20, 20), nil)
	d, _ := g.Generate()

	a := NewRenderer(d, NewSettings("det", Ancient), nil).Render()
	b := NewRenderer(d, NewSettings("det", Ancient), nil).Render()

	if len(a.Pix) != len(b.Pix) {
		t.Fatal("image sizes differ")
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixels differ at offset %d", i)
		}
	}
}

func TestAgingChances(t *testing.T) {
	crackY, branchY := Young.Chances()
	crackA, branchA := Ancient.Chances()
	if crackY >= crackA || branchY >= branchA {
		t.Error("ancient must crack more than young")
	}
	crackO, _ := Old.Chances()
	if !(crackY < crackO && crackO < crackA) {
		t.Error("crack chance must increase with age")
	}
}

func TestValueNoiseRangeAndStability(t *testing.T) {
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			n := valueNoise(float64(x)*0.9, float64(y)*0.9)
			if n < -1 || n > 1 {
				t.Fatalf("noise(%d,%d) = %v out of range", x, y, n)
			}
			if n != valueNoise(float64(x)*0.9, float64(y)*0.9) {
				t.Fatalf("noise is not stable at (%d,%d)", x, y)
			}
		}
	}
}
