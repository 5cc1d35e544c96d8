package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/fightstick/internal/application/game"
	"github.com/younwookim/fightstick/internal/application/replay"
	"github.com/younwookim/fightstick/internal/application/scene/training"
	"github.com/younwookim/fightstick/internal/domain/motion"
	"github.com/younwookim/fightstick/internal/domain/notation"
	"github.com/younwookim/fightstick/internal/infrastructure/config"
)

// loadConfig loads input.json and the named move list from the embedded configs
func loadConfig(moveList string) (*config.AppConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll(moveList)
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record session.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded session before going live")
	moveListFlag := flag.String("movelist", "training", "Move list to load from configs/movelists")
	facingFlag := flag.String("facing", "right", "Side the character faces: left or right")
	demoFlag := flag.String("demo", "", "Play a motion in numpad notation on start (e.g., -demo 236a)")
	flag.Parse()

	cfg, err := loadConfig(*moveListFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	facing, err := motion.ParseFacing(*facingFlag)
	if err != nil {
		log.Fatal(err)
	}

	opts := training.Options{
		RecordPath: *recordFlag,
		Facing:     facing,
	}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
	}

	scene, err := training.New(cfg, opts)
	if err != nil {
		log.Fatalf("Failed to create training scene: %v", err)
	}

	if *demoFlag != "" {
		in, err := notation.ParseAll(*demoFlag)
		if err != nil {
			log.Fatalf("Invalid demo: %v", err)
		}
		scene.StartDemo(in)
	}

	g := game.New(scene, cfg.Input.Display.ScreenWidth, cfg.Input.Display.ScreenHeight)

	// Set up ebiten
	display := cfg.Input.Display
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Fightstick Trainer")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	scene.SaveRecording()
}
