// Package export serializes a finished dungeon for external tools. The only
// target today is Foundry VTT: a rendered background image plus a scene JSON
// carrying wall and door geometry in Foundry's schema.
package export

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"rosecrypt/internal/dungeon"
	"rosecrypt/internal/logging"
	"rosecrypt/internal/render"
)

// Settings configures one export. FoundryPadding is the scene padding ratio
// Foundry applies around the map.
type Settings struct {
	Render         render.Settings
	FoundryPadding float64
}

// NewSettings wraps render settings with the default scene padding.
func NewSettings(rs render.Settings) Settings {
	return Settings{Render: rs, FoundryPadding: 0.25}
}

// Exporter writes one dungeon to disk.
type Exporter struct {
	dungeon  *dungeon.Dungeon
	settings Settings
	log      logging.Logger
}

// NewExporter creates an exporter. A nil logger disables logging.
func NewExporter(d *dungeon.Dungeon, settings Settings, log logging.Logger) *Exporter {
	if log == nil {
		log = logging.Nop()
	}
	return &Exporter{dungeon: d, settings: settings, log: log}
}

// foundryWall is one entry of the scene's walls array. Doors are exported
// as short wall segments with the door flag set.
type foundryWall struct {
	C     [4]float64     `json:"c"`
	Door  int            `json:"door"`
	DS    int            `json:"ds"`
	Move  int            `json:"move"`
	Sense int            `json:"sense"`
	Sound int            `json:"sound"`
	Light int            `json:"light"`
	Flags map[string]any `json:"flags"`
}

type foundryBackground struct {
	Src            string  `json:"src"`
	AnchorX        int     `json:"anchorX"`
	AnchorY        int     `json:"anchorY"`
	OffsetX        int     `json:"offsetX"`
	OffsetY        int     `json:"offsetY"`
	Fit            string  `json:"fit"`
	ScaleX         float64 `json:"scaleX"`
	ScaleY         float64 `json:"scaleY"`
	Rotation       float64 `json:"rotation"`
	Tint           string  `json:"tint"`
	AlphaThreshold float64 `json:"alphaThreshold"`
}

type foundryInitial struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Scale float64 `json:"scale"`
}

type foundryGrid struct {
	Type      int     `json:"type"`
	Size      int     `json:"size"`
	Style     string  `json:"style"`
	Thickness int     `json:"thickness"`
	Color     string  `json:"color"`
	Alpha     float64 `json:"alpha"`
	Distance  int     `json:"distance"`
	Units     string  `json:"units"`
}

type foundryFog struct {
	Exploration bool `json:"exploration"`
	Overlay     any  `json:"overlay"`
	Colors      struct {
		Explored   any `json:"explored"`
		Unexplored any `json:"unexplored"`
	} `json:"colors"`
	Reset int `json:"reset"`
}

type foundryGlobalLight struct {
	Enabled    bool    `json:"enabled"`
	Alpha      float64 `json:"alpha"`
	Bright     bool    `json:"bright"`
	Color      any     `json:"color"`
	Coloration int     `json:"coloration"`
	Luminosity float64 `json:"luminosity"`
	Saturation float64 `json:"saturation"`
	Contrast   float64 `json:"contrast"`
	Shadows    float64 `json:"shadows"`
	Darkness   struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"darkness"`
}

type foundryLightBand struct {
	Hue        float64 `json:"hue"`
	Intensity  float64 `json:"intensity"`
	Luminosity float64 `json:"luminosity"`
	Saturation float64 `json:"saturation"`
	Shadows    float64 `json:"shadows"`
}

type foundryEnvironment struct {
	DarknessLevel float64            `json:"darknessLevel"`
	DarknessLock  bool               `json:"darknessLock"`
	GlobalLight   foundryGlobalLight `json:"globalLight"`
	Cycle         bool               `json:"cycle"`
	Base          foundryLightBand   `json:"base"`
	Dark          foundryLightBand   `json:"dark"`
}

// foundryScene is the top-level scene document.
type foundryScene struct {
	Name                string             `json:"name"`
	Navigation          bool               `json:"navigation"`
	NavOrder            int                `json:"navOrder"`
	NavName             string             `json:"navName"`
	Background          foundryBackground  `json:"background"`
	Foreground          any                `json:"foreground"`
	ForegroundElevation int                `json:"foregroundElevation"`
	Thumb               any                `json:"thumb"`
	Width               int                `json:"width"`
	Height              int                `json:"height"`
	Padding             float64            `json:"padding"`
	Initial             foundryInitial     `json:"initial"`
	BackgroundColor     string             `json:"backgroundColor"`
	Grid                foundryGrid        `json:"grid"`
	TokenVision         bool               `json:"tokenVision"`
	Fog                 foundryFog         `json:"fog"`
	Environment         foundryEnvironment `json:"environment"`
	Drawings            []any              `json:"drawings"`
	Tokens              []any              `json:"tokens"`
	Lights              []any              `json:"lights"`
	Notes               []any              `json:"notes"`
	Sounds              []any              `json:"sounds"`
	Regions             []any              `json:"regions"`
	Templates           []any              `json:"templates"`
	Tiles               []any              `json:"tiles"`
	Walls               []foundryWall      `json:"walls"`
	Playlist            any                `json:"playlist"`
	PlaylistSound       any                `json:"playlistSound"`
	Journal             any                `json:"journal"`
	JournalEntryPage    any                `json:"journalEntryPage"`
	Weather             string             `json:"weather"`
	Folder              any                `json:"folder"`
	Flags               map[string]any     `json:"flags"`
}

// offset returns the pixel shift Foundry's padding applies to the map
// origin; wall coordinates must be shifted to match.
func (e *Exporter) offset(gridSize int) (int, int) {
	px := int(e.settings.FoundryPadding * float64(gridSize) * float64(max(e.dungeon.Width, e.dungeon.Height)))
	return px, px
}

// wallsToFoundry converts wall segments to scene entries. A dummy zero-wall
// at the map origin is prepended so Foundry anchors the geometry correctly.
func wallsToFoundry(walls []dungeon.WallSegment, gridSize, ox, oy int) []foundryWall {
	out := make([]foundryWall, 0, len(walls)+1)
	out = append(out, foundryWall{
		C:     [4]float64{float64(ox), float64(oy), float64(ox), float64(oy) + float64(gridSize)*0.1},
		Flags: map[string]any{},
	})
	for _, w := range walls {
		out = append(out, foundryWall{
			C: [4]float64{
				w.X1*float64(gridSize) + float64(ox),
				w.Y1*float64(gridSize) + float64(oy),
				w.X2*float64(gridSize) + float64(ox),
				w.Y2*float64(gridSize) + float64(oy),
			},
			Door:  w.Door,
			DS:    w.State,
			Move:  w.Move,
			Sense: w.Sense,
			Sound: w.Sound,
			Light: w.Light,
			Flags: map[string]any{},
		})
	}
	return out
}

// ExportFoundryScene renders the dungeon image and writes it plus the scene
// JSON into folder, creating it as needed. Returns the written file paths.
func (e *Exporter) ExportFoundryScene(folder string) ([]string, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("creating export folder: %w", err)
	}

	base := strings.ToLower(e.dungeon.Name)
	imagePath := filepath.Join(folder, base+".png")

	img := render.NewRenderer(e.dungeon, e.settings.Render, e.log).Render()
	f, err := os.Create(imagePath)
	if err != nil {
		return nil, fmt.Errorf("creating image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("writing image: %w", err)
	}

	gridSize := render.TileSize
	ox, oy := e.offset(gridSize)

	segments := make([]dungeon.WallSegment, 0, len(e.dungeon.Walls)+len(e.dungeon.Doors))
	segments = append(segments, e.dungeon.Walls...)
	for _, door := range e.dungeon.Doors {
		segments = append(segments, door.AsWall())
	}

	scene := e.buildScene(base+".png", gridSize)
	scene.Walls = wallsToFoundry(segments, gridSize, ox, oy)

	data, err := json.MarshalIndent(scene, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding scene: %w", err)
	}
	jsonPath := filepath.Join(folder, base+"_scene.json")
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing scene: %w", err)
	}

	e.log.Infof("foundry scene exported to %s", jsonPath)
	e.log.Infof("foundry image exported to %s", imagePath)
	return []string{imagePath, jsonPath}, nil
}

func (e *Exporter) buildScene(imageName string, gridSize int) *foundryScene {
	return &foundryScene{
		Name:       e.dungeon.Name,
		Navigation: true,
		NavName:    "Unknown Dungeon",
		Background: foundryBackground{
			Src:    imageName,
			Fit:    "fill",
			ScaleX: 1,
			ScaleY: 1,
			Tint:   "#ffffff",
		},
		ForegroundElevation: 20,
		Width:               e.dungeon.Width * gridSize,
		Height:              e.dungeon.Height * gridSize,
		Padding:             e.settings.FoundryPadding,
		Initial:             foundryInitial{X: 3767, Y: 3086, Scale: 0.3162075235608918},
		BackgroundColor:     "#999999",
		Grid: foundryGrid{
			Type:      1,
			Size:      gridSize,
			Style:     "solidLines",
			Thickness: 1,
			Color:     "#000000",
			Distance:  5,
			Units:     "ft",
		},
		TokenVision: true,
		Fog:         foundryFog{Exploration: true},
		Environment: foundryEnvironment{
			DarknessLevel: 0.35,
			GlobalLight: foundryGlobalLight{
				Alpha:      0.5,
				Coloration: 1,
			},
			Cycle: true,
			Dark: foundryLightBand{
				Hue:        0.7138888888888889,
				Luminosity: -0.25,
			},
		},
		Drawings:  []any{},
		Tokens:    []any{},
		Lights:    []any{},
		Notes:     []any{},
		Sounds:    []any{},
		Regions:   []any{},
		Templates: []any{},
		Tiles:     []any{},
		Weather:   "",
		Flags:     map[string]any{},
	}
}
