// rosecrypt generates 2-D tile dungeons and either exports them as Foundry
// VTT scenes (background PNG plus scene JSON) or opens them in an
// interactive terminal viewer.
//
// Examples:
//
//	rosecrypt -seed lost-mine -width 60 -height 60 -out maps
//	rosecrypt -rooms large -halls maze -entrance north -view
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"rosecrypt/internal/export"
	"rosecrypt/internal/generate"
	"rosecrypt/internal/logging"
	"rosecrypt/internal/render"
	"rosecrypt/internal/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	width := flag.Int("width", 80, "Dungeon width in tiles")
	height := flag.Int("height", 80, "Dungeon height in tiles")
	seed := flag.String("seed", "", "Generation seed (random when empty)")
	name := flag.String("name", "Dungeon", "Dungeon name, also used for export file names")
	rooms := flag.String("rooms", "medium", "Room size: small, medium or large")
	density := flag.String("density", "medium", "Room density: sparse, medium or dense")
	halls := flag.String("halls", "straight", "Hallway style: straight or maze")
	entrance := flag.String("entrance", "random", "Entrance: north, south, west, east, stairs or random")
	theme := flag.String("theme", "", "Dungeon theme (default random)")
	aging := flag.String("aging", "old", "Map weathering: young, old or ancient")
	out := flag.String("out", "export", "Folder the Foundry scene is written to")
	openView := flag.Bool("view", false, "Open the interactive viewer instead of exporting")
	logFile := flag.String("log", "", "Also append debug logs to this file")
	verbose := flag.Bool("verbose", false, "Log debug messages to the console")
	flag.Parse()

	if *seed == "" {
		*seed = fmt.Sprintf("%d", time.Now().UnixNano())
	}

	tags, err := buildTags(*seed, *rooms, *density, *halls, *entrance, *theme)
	if err != nil {
		return err
	}
	agingLevel, ok := render.AgingByName()[*aging]
	if !ok {
		return fmt.Errorf("unknown aging level %q", *aging)
	}

	settings := generate.NewSettings(*seed, tags, *width, *height)

	logOut, fileOut, closeLog, err := logWriter(*logFile)
	if err != nil {
		return err
	}
	defer closeLog()
	level := logging.LevelInfo
	if *verbose {
		level = logging.LevelDebug
	}

	if *openView {
		// The screen owns the terminal, so viewer logs go to the file only.
		viewLog := logging.Nop()
		if fileOut != nil {
			viewLog = logging.New("Viewer", level, fileOut)
		}
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing terminal: %w", err)
		}
		defer screen.Fini()
		view.New(screen, settings, viewLog).Run()
		return nil
	}

	genLog := logging.New("Generation", level, logOut)
	d, report := generate.NewGenerator(settings, genLog).Generate()
	d.Name = *name

	genLog.Infof("seed %q placed %d rooms on a %dx%d map", *seed, report.RoomsPlaced, *width, *height)
	if !report.AllLinked {
		genLog.Warnf("hallway placement left gaps, repair pass was used")
	}
	if !report.FullyConnected {
		genLog.Warnf("dungeon is not fully connected")
	}
	if report.HasEntrance {
		genLog.Infof("entrance carved from room %d", report.EntranceRoom)
	}

	exportSettings := export.NewSettings(render.NewSettings(*seed, agingLevel))
	exporter := export.NewExporter(d, exportSettings, logging.New("Exporting", level, logOut))
	paths, err := exporter.ExportFoundryScene(*out)
	if err != nil {
		return fmt.Errorf("exporting scene: %w", err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// buildTags resolves the CLI selections into a tag set. Unset selections
// fall back to seed-independent defaults plus a random entrance and theme.
func buildTags(seed, rooms, density, halls, entrance, theme string) (generate.TagSet, error) {
	rng := rand.New(rand.NewSource(generate.Settings{Seed: seed}.SeedValue()))
	tags := generate.DefaultTags(rng)

	byName := generate.TagsByName()

	roomTag, ok := map[string]generate.Tag{
		"small":  generate.SmallRooms,
		"medium": generate.MediumRooms,
		"large":  generate.LargeRooms,
	}[rooms]
	if !ok {
		return nil, fmt.Errorf("unknown room size %q", rooms)
	}
	tags = generate.Select(tags, roomTag)

	densityTag, ok := map[string]generate.Tag{
		"sparse": generate.Sparse,
		"medium": generate.MediumDensity,
		"dense":  generate.Dense,
	}[density]
	if !ok {
		return nil, fmt.Errorf("unknown density %q", density)
	}
	tags = generate.Select(tags, densityTag)

	hallTag, ok := map[string]generate.Tag{
		"straight": generate.StraightHalls,
		"maze":     generate.MazeHalls,
	}[halls]
	if !ok {
		return nil, fmt.Errorf("unknown hallway style %q", halls)
	}
	tags = generate.Select(tags, hallTag)

	if entrance != "random" {
		entranceTag, ok := map[string]generate.Tag{
			"north":  generate.EntranceNorth,
			"south":  generate.EntranceSouth,
			"west":   generate.EntranceWest,
			"east":   generate.EntranceEast,
			"stairs": generate.Stairs,
		}[entrance]
		if !ok {
			return nil, fmt.Errorf("unknown entrance %q", entrance)
		}
		tags = generate.Select(tags, entranceTag)
	}

	if theme != "" {
		themeTag, ok := byName[theme]
		if !ok || themeTag < generate.AnyTheme || themeTag > generate.Gnoll {
			return nil, fmt.Errorf("unknown theme %q", theme)
		}
		tags = generate.Select(tags, themeTag)
	}

	return tags, nil
}

// logWriter builds the log destinations: the combined console writer plus,
// when a file path is set, the bare file writer for terminal-owning modes.
func logWriter(path string) (io.Writer, io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, nil, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return io.MultiWriter(os.Stderr, f), f, func() { f.Close() }, nil
}
