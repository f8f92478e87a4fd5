package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"rosecrypt/internal/generate"
	"rosecrypt/internal/logging"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	return ss
}

func viewerSettings(seed string) generate.Settings {
	tags := generate.TagSet{
		generate.SmallRooms:    true,
		generate.MediumDensity: true,
		generate.StraightHalls: true,
	}
	return generate.NewSettings(seed, tags, 30, 30)
}

func TestViewerGeneratesOnCreation(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	v := New(ss, viewerSettings("viewer"), nil)
	if v.d == nil {
		t.Fatal("viewer has no dungeon")
	}
	if v.report.RoomsPlaced == 0 {
		t.Fatal("viewer dungeon has no rooms")
	}
	if v.camera == nil {
		t.Fatal("viewer has no camera")
	}
}

func TestViewerScrollKeys(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	v := New(ss, viewerSettings("scroll"), nil)
	ox, oy := v.camera.OffsetX, v.camera.OffsetY

	v.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	v.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if v.camera.OffsetX != ox+1 || v.camera.OffsetY != oy+1 {
		t.Errorf("offsets = (%d, %d), want (%d, %d)",
			v.camera.OffsetX, v.camera.OffsetY, ox+1, oy+1)
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone))
	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone))
	if v.camera.OffsetX != ox || v.camera.OffsetY != oy {
		t.Errorf("vi keys did not undo arrow scroll: (%d, %d) != (%d, %d)",
			v.camera.OffsetX, v.camera.OffsetY, ox, oy)
	}
}

func TestViewerRerollChangesVariant(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	v := New(ss, viewerSettings("reroll"), nil)
	first := v.d

	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if v.variant != 1 {
		t.Fatalf("variant = %d after reroll, want 1", v.variant)
	}
	if v.d == first {
		t.Error("reroll did not replace the dungeon")
	}
}

func TestViewerModeToggle(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	v := New(ss, viewerSettings("mode"), nil)
	if v.settings.Tags.Has(generate.MazeHalls) {
		t.Fatal("viewer starts in maze mode")
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if !v.settings.Tags.Has(generate.MazeHalls) || v.settings.Tags.Has(generate.StraightHalls) {
		t.Error("toggle did not switch to maze halls")
	}

	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if !v.settings.Tags.Has(generate.StraightHalls) || v.settings.Tags.Has(generate.MazeHalls) {
		t.Error("toggle did not switch back to straight halls")
	}
}

func TestViewerForwardsLoggerToGeneration(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	var buf bytes.Buffer
	log := logging.New("Viewer", logging.LevelDebug, &buf)
	v := New(ss, viewerSettings("logged"), log)

	if buf.Len() == 0 {
		t.Fatal("generation produced no log output")
	}
	if !strings.Contains(buf.String(), "[Viewer]") {
		t.Errorf("log lines are missing the category: %q", buf.String())
	}

	before := buf.Len()
	v.handleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if buf.Len() == before {
		t.Error("reroll generated without logging")
	}
}

func TestViewerQuitKeys(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()

	v := New(ss, viewerSettings("quit"), nil)
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if v.handleKey(ev) {
			t.Errorf("key %v did not quit", ev.Key())
		}
	}
}
