package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/sightline/internal/config"
	"chosenoffset.com/sightline/internal/game"
	"chosenoffset.com/sightline/internal/render"
	ebitenrender "chosenoffset.com/sightline/internal/render/ebiten"
	terminalrender "chosenoffset.com/sightline/internal/render/terminal"
)

func main() {
	backend := flag.String("backend", "ebiten", "Render backend: ebiten or terminal")
	configPath := flag.String("config", "sightline.json", "Config file (optional)")
	seed := flag.Int64("seed", 0, "Scene seed (0 = from clock)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed != 0 {
		cfg.Scene.Seed = *seed
	}
	if cfg.Scene.Seed == 0 {
		cfg.Scene.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Scene.Seed))

	var (
		renderer render.Renderer
		input    render.InputManager
		engine   render.Engine
	)

	switch *backend {
	case "ebiten":
		renderer = ebitenrender.NewRenderer()
		input = ebitenrender.NewInputManager()
		engine = ebitenrender.NewEngine()
	case "terminal":
		termInput := terminalrender.NewInputManager()
		renderer = terminalrender.NewRenderer()
		input = termInput
		engine = terminalrender.NewEngine(termInput)
	default:
		log.Fatalf("Unknown backend: %s", *backend)
	}

	g := game.New(cfg, rng, renderer, input)

	log.Printf("Field %dx%d, %d walls, fan of %d rays (seed %d)",
		cfg.Screen.Width, cfg.Screen.Height, len(g.Walls()), len(g.Viewer().Rays), cfg.Scene.Seed)

	engine.SetWindowSize(cfg.Screen.Width*cfg.Screen.Scale, cfg.Screen.Height*cfg.Screen.Scale)
	engine.SetWindowTitle("Sightline - move with WASD, aim with the mouse")

	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
