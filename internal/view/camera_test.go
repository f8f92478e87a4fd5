package view

import "testing"

func TestCameraCenter(t *testing.T) {
	c := NewCamera(50, 40, 80, 24)

	sx, sy, visible := c.WorldToScreen(50, 40)
	if !visible {
		t.Fatal("center tile must be visible")
	}
	if sx != 40 || sy != 12 {
		t.Errorf("center tile at (%d, %d), want (40, 12)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(10, 10, 60, 20)
	for wx := 0; wx < 25; wx++ {
		for wy := 0; wy < 25; wy++ {
			sx, sy, _ := c.WorldToScreen(wx, wy)
			gx, gy := c.ScreenToWorld(sx, sy)
			if gx != wx || gy != wy {
				t.Fatalf("round trip of (%d, %d) gave (%d, %d)", wx, wy, gx, gy)
			}
		}
	}
}

func TestCameraVisibility(t *testing.T) {
	c := &Camera{ViewWidth: 10, ViewHeight: 5}

	if _, _, visible := c.WorldToScreen(9, 4); !visible {
		t.Error("tile inside the viewport reported invisible")
	}
	if _, _, visible := c.WorldToScreen(10, 4); visible {
		t.Error("tile past the right edge reported visible")
	}
	if _, _, visible := c.WorldToScreen(0, 5); visible {
		t.Error("tile past the bottom edge reported visible")
	}
	if _, _, visible := c.WorldToScreen(-1, 0); visible {
		t.Error("tile left of the viewport reported visible")
	}
}
