// Package view renders a dungeon as text in a terminal and lets the user
// scroll around it, reroll the layout, and flip between hallway modes. It
// works against any tcell.Screen, so the same viewer serves both the local
// terminal and SSH sessions.
package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"rosecrypt/internal/dungeon"
	"rosecrypt/internal/generate"
	"rosecrypt/internal/logging"
)

// Viewer owns one screen and the dungeon currently shown on it. Rerolling
// replaces the dungeon but keeps the base seed, so variants stay
// reproducible.
type Viewer struct {
	screen   tcell.Screen
	settings generate.Settings
	log      logging.Logger

	camera  *Camera
	d       *dungeon.Dungeon
	report  generate.Report
	doors   map[[2]int]dungeon.Door
	variant int
}

// New creates a viewer and generates the first dungeon. The screen must
// already be initialized. A nil logger disables logging.
func New(screen tcell.Screen, settings generate.Settings, log logging.Logger) *Viewer {
	if log == nil {
		log = logging.Nop()
	}
	v := &Viewer{screen: screen, settings: settings, log: log}
	v.regenerate()
	return v
}

// regenerate builds a fresh dungeon from the base seed plus the current
// variant counter and recenters the camera on it.
func (v *Viewer) regenerate() {
	s := v.settings
	if v.variant > 0 {
		s.Seed = fmt.Sprintf("%s#%d", v.settings.Seed, v.variant)
	}
	d, report := generate.NewGenerator(s, v.log).Generate()
	v.d = d
	v.report = report

	v.doors = make(map[[2]int]dungeon.Door, len(d.Doors))
	for _, door := range d.Doors {
		v.doors[[2]int{door.X, door.Y}] = door
	}

	w, h := v.screen.Size()
	v.camera = NewCamera(d.Width/2, d.Height/2, w, h-1)
}

// Run drives the event loop until the user quits.
func (v *Viewer) Run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			w, h := v.screen.Size()
			v.camera.ViewWidth = w
			v.camera.ViewHeight = h - 1
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		case nil:
			// Screen was finalized under us.
			return
		}
	}
}

// handleKey processes one key event. It returns false when the viewer
// should exit.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.camera.OffsetY--
	case tcell.KeyDown:
		v.camera.OffsetY++
	case tcell.KeyLeft:
		v.camera.OffsetX--
	case tcell.KeyRight:
		v.camera.OffsetX++
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.camera.OffsetY--
		case 'j':
			v.camera.OffsetY++
		case 'h':
			v.camera.OffsetX--
		case 'l':
			v.camera.OffsetX++
		case 'c':
			v.camera.Center(v.d.Width/2, v.d.Height/2)
		case 'r':
			v.variant++
			v.regenerate()
		case 'm':
			v.toggleHallMode()
			v.regenerate()
		}
	}
	return true
}

// toggleHallMode flips the hallway tag between straight and maze on the base
// settings so the change survives subsequent rerolls.
func (v *Viewer) toggleHallMode() {
	if v.settings.Tags.Has(generate.MazeHalls) {
		v.settings.Tags = generate.Toggle(v.settings.Tags, generate.StraightHalls)
	} else {
		v.settings.Tags = generate.Toggle(v.settings.Tags, generate.MazeHalls)
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()

	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkKhaki)
	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	doorStyle := tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)

	for sy := 0; sy < v.camera.ViewHeight; sy++ {
		for sx := 0; sx < v.camera.ViewWidth; sx++ {
			wx, wy := v.camera.ScreenToWorld(sx, sy)
			switch {
			case v.doorAt(wx, wy):
				v.screen.SetContent(sx, sy, '+', nil, doorStyle)
			case v.d.FloorAt(wx, wy):
				v.screen.SetContent(sx, sy, '.', nil, floorStyle)
			case v.wallAt(wx, wy):
				v.screen.SetContent(sx, sy, '#', nil, wallStyle)
			}
		}
	}

	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) doorAt(x, y int) bool {
	_, ok := v.doors[[2]int{x, y}]
	return ok
}

// wallAt reports whether the void tile at (x, y) borders floor, including
// diagonals so that room corners close up.
func (v *Viewer) wallAt(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if v.d.FloorAt(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// drawStatus writes the one-line status bar on the bottom screen row.
func (v *Viewer) drawStatus() {
	mode := "straight"
	if v.settings.Tags.Has(generate.MazeHalls) {
		mode = "maze"
	}
	health := ""
	if !v.report.FullyConnected {
		health = "  [disconnected]"
	}

	status := fmt.Sprintf(" %s  %dx%d  seed %s  rooms %d  %s halls%s  arrows scroll  r reroll  m mode  q quit",
		v.d.Name, v.d.Width, v.d.Height, v.settings.Seed,
		v.report.RoomsPlaced, mode, health)

	w, h := v.screen.Size()
	status = runewidth.Truncate(status, w, "…")
	style := tcell.StyleDefault.Reverse(true)

	col := 0
	for _, r := range status {
		v.screen.SetContent(col, h-1, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
	for ; col < w; col++ {
		v.screen.SetContent(col, h-1, ' ', nil, style)
	}
}
