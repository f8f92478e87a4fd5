package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"rosecrypt/internal/generate"
	"rosecrypt/internal/render"
)

func exportTestDungeon(t *testing.T) (*Exporter, int, int) {
	t.Helper()
	tags := generate.TagSet{generate.SmallRooms: true, generate.MediumDensity: true, generate.StraightHalls: true}
	g := generate.NewGenerator(generate.NewSettings("export", tags, 15, 15), nil)
	d, report := g.Generate()
	if report.RoomsPlaced == 0 {
		t.Fatal("generation placed no rooms")
	}
	settings := NewSettings(render.NewSettings("export", render.Old))
	return NewExporter(d, settings, nil), len(d.Walls), len(d.Doors)
}

func TestExportWritesSceneAndImage(t *testing.T) {
	exporter, wallCount, doorCount := exportTestDungeon(t)
	folder := t.TempDir()

	paths, err := exporter.ExportFoundryScene(folder)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %v", paths)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(folder, "dungeon_scene.json"))
	if err != nil {
		t.Fatalf("reading scene: %v", err)
	}
	var scene map[string]any
	if err := json.Unmarshal(data, &scene); err != nil {
		t.Fatalf("scene is not valid JSON: %v", err)
	}

	walls, ok := scene["walls"].([]any)
	if !ok {
		t.Fatal("scene has no walls array")
	}
	// Every wall and door plus the anchor wall at the origin.
	if want := wallCount + doorCount + 1; len(walls) != want {
		t.Errorf("scene has %d walls, want %d", len(walls), want)
	}

	if scene["padding"] != 0.25 {
		t.Errorf("padding = %v, want 0.25", scene["padding"])
	}
	if scene["name"] != "Dungeon" {
		t.Errorf("name = %v, want Dungeon", scene["name"])
	}
}

func TestExportWallCoordinatesCarryPaddingOffset(t *testing.T) {
	exporter, _, _ := exportTestDungeon(t)
	folder := t.TempDir()

	if _, err := exporter.ExportFoundryScene(folder); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(folder, "dungeon_scene.json"))
	if err != nil {
		t.Fatalf("reading scene: %v", err)
	}
	var scene struct {
		Walls []struct {
			C [4]float64 `json:"c"`
		} `json:"walls"`
	}
	if err := json.Unmarshal(data, &scene); err != nil {
		t.Fatalf("decoding scene: %v", err)
	}

	// 0.25 * 100px * 15 tiles
	const offset = 375.0
	anchor := scene.Walls[0]
	if anchor.C[0] != offset || anchor.C[1] != offset {
		t.Errorf("anchor wall starts at (%v, %v), want (%v, %v)",
			anchor.C[0], anchor.C[1], offset, offset)
	}
	for _, w := range scene.Walls[1:] {
		for _, c := range w.C {
			if c < offset {
				t.Fatalf("wall coordinate %v is below the padding offset", c)
			}
		}
	}
}
