// Command framegrab plays the game headlessly with the autopilot and writes
// the last frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/joho/godotenv"

	"chosenoffset.com/targetrush/internal/game"
	"chosenoffset.com/targetrush/internal/render/raster"
	"chosenoffset.com/targetrush/internal/simulation"
)

func main() {
	configPath := flag.String("config", "data/simulation.json", "path to simulation config")
	seed := flag.Int64("seed", 1, "random seed for target spawns")
	ticks := flag.Int("ticks", 600, "number of ticks to simulate")
	out := flag.String("out", "frame.png", "output PNG path")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}

	cfg, err := simulation.Load(*configPath, os.Getenv)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	summary, err := run(cfg, *seed, *ticks, *out)
	if err != nil {
		log.Fatal(err)
	}
	log.Println(summary)
}

func run(cfg *simulation.Config, seed int64, ticks int, out string) (string, error) {
	if ticks <= 0 {
		return "", fmt.Errorf("ticks must be positive, got %d", ticks)
	}

	spawner := simulation.NewSpawner(cfg.Spawn.Chance, rand.New(rand.NewSource(seed)))
	world := simulation.NewWorld(cfg, spawner)
	input := simulation.NewInput()
	pilot := game.NewAutopilot()

	best, deaths := 0, 0
	for i := 0; i < ticks; i++ {
		pilot.Drive(world, input)
		res := simulation.Step(world, input)
		if res.Outcome == simulation.GameOver {
			deaths++
			best = max(best, res.FinalScore)
			log.Printf("Game Over at tick %d! Final Score: %d", res.Tick, res.FinalScore)
		}
	}
	best = max(best, world.Score)

	canvas := raster.NewCanvas(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	r := raster.NewRenderer()
	game.DrawFrame(r, canvas, world.Snapshot())
	r.DrawText(canvas, fmt.Sprintf("Score: %d", world.Score), 10, 10, game.ColorText)

	if err := canvas.SavePNG(out); err != nil {
		return "", err
	}
	return fmt.Sprintf("Wrote %s after %d ticks: score %d, best %d, deaths %d",
		out, ticks, world.Score, best, deaths), nil
}
