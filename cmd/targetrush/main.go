package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"chosenoffset.com/targetrush/internal/game"
	ebitenrender "chosenoffset.com/targetrush/internal/render/ebiten"
	"chosenoffset.com/targetrush/internal/simulation"
)

func main() {
	configPath := flag.String("config", "data/simulation.json", "path to simulation config")
	seed := flag.Int64("seed", 0, "random seed for target spawns (0 picks one from the clock)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	cfg, err := simulation.Load(*configPath, os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *seed == 0 {
		if s, ok := simulation.SeedFromEnv(os.Getenv); ok {
			*seed = s
		} else {
			*seed = time.Now().UnixNano()
		}
	}
	log.Printf("Playfield %vx%v, spawn chance %v, seed %d",
		cfg.Playfield.Width, cfg.Playfield.Height, cfg.Spawn.Chance, *seed)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	spawner := simulation.NewSpawner(cfg.Spawn.Chance, rand.New(rand.NewSource(*seed)))
	world := simulation.NewWorld(cfg, spawner)
	manager := game.NewManager(world, renderer, inputMgr)

	// Set up the window
	engine.SetWindowSize(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	engine.SetWindowTitle("Target Rush")
	engine.SetWindowResizable(false)

	log.Println("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
	log.Printf("Bye. Runs lost: %d", manager.Runs)
}
