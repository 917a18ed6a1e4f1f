// Package simulation holds the arcade rules: the entity store, input state,
// target spawner and the per-tick step that ties them together.
// Tunables are loaded from a JSON file so a build can be retuned without recompiling.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Config holds all simulation tunables
type Config struct {
	Playfield PlayfieldConfig `json:"playfield"`
	Player    PlayerConfig    `json:"player"`
	Bullet    BulletConfig    `json:"bullet"`
	Target    TargetConfig    `json:"target"`
	Spawn     SpawnConfig     `json:"spawn"`
	Scoring   ScoringConfig   `json:"scoring"`
	Collision CollisionConfig `json:"collision"`
}

// PlayfieldConfig is the size of the visible area in pixels
type PlayfieldConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlayerConfig defines the player body and gun
type PlayerConfig struct {
	Size          float64 `json:"size"`            // Half-extent of the body
	Speed         float64 `json:"speed"`           // Pixels per tick per held key
	MuzzleOffsetX float64 `json:"muzzle_offset_x"` // Bullet spawn offset along facing
	MuzzleOffsetY float64 `json:"muzzle_offset_y"` // Bullet spawn offset on y (negative is up)
}

// BulletConfig defines projectile size and speed
type BulletConfig struct {
	Size  float64 `json:"size"`
	Speed float64 `json:"speed"`
}

// TargetConfig defines enemy size and pursuit speed
type TargetConfig struct {
	Size  float64 `json:"size"`
	Speed float64 `json:"speed"`
}

// SpawnConfig controls how often targets appear
type SpawnConfig struct {
	Chance float64 `json:"chance"` // Probability of one spawn per tick
}

// ScoringConfig defines points per kill
type ScoringConfig struct {
	KillPoints int `json:"kill_points"`
}

// CollisionConfig scales hit distances. A target touches the player below
// PlayerRadiusFactor*player.size, and a bullet hits a target below
// BulletRadiusFactor*target.size.
type CollisionConfig struct {
	PlayerRadiusFactor float64 `json:"player_radius_factor"`
	BulletRadiusFactor float64 `json:"bullet_radius_factor"`
}

// DefaultConfig returns the reference tuning
func DefaultConfig() *Config {
	return &Config{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player: PlayerConfig{
			Size:          30,
			Speed:         5,
			MuzzleOffsetX: 20,
			MuzzleOffsetY: -5,
		},
		Bullet:  BulletConfig{Size: 3, Speed: 10},
		Target:  TargetConfig{Size: 20, Speed: 2},
		Spawn:   SpawnConfig{Chance: 0.02},
		Scoring: ScoringConfig{KillPoints: 10},
		Collision: CollisionConfig{
			PlayerRadiusFactor: 1.5,
			BulletRadiusFactor: 1.5,
		},
	}
}

// LoadConfig loads simulation config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config %s: %w", path, err)
	}

	return config, nil
}

// Validate rejects tunables the step cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	case c.Player.Size <= 0:
		return fmt.Errorf("player size must be positive, got %v", c.Player.Size)
	case c.Player.Speed < 0:
		return fmt.Errorf("player speed must not be negative, got %v", c.Player.Speed)
	case c.Playfield.Width < 2*c.Player.Size || c.Playfield.Height < 3*c.Player.Size:
		return fmt.Errorf("playfield %vx%v too small for player size %v", c.Playfield.Width, c.Playfield.Height, c.Player.Size)
	case c.Bullet.Size <= 0 || c.Bullet.Speed <= 0:
		return fmt.Errorf("bullet size and speed must be positive")
	case c.Target.Size <= 0 || c.Target.Speed < 0:
		return fmt.Errorf("target size must be positive and speed not negative")
	case c.Spawn.Chance < 0 || c.Spawn.Chance > 1:
		return fmt.Errorf("spawn chance must be within [0,1], got %v", c.Spawn.Chance)
	case c.Scoring.KillPoints <= 0:
		return fmt.Errorf("kill points must be positive, got %d", c.Scoring.KillPoints)
	case c.Collision.PlayerRadiusFactor <= 0 || c.Collision.BulletRadiusFactor <= 0:
		return fmt.Errorf("collision factors must be positive")
	}
	return nil
}

// ApplyEnv overrides tunables from environment variables. Unset or
// unparsable values are left alone. lookup is normally os.Getenv.
func (c *Config) ApplyEnv(lookup func(string) string) {
	if w := envFloat(lookup, "TARGETRUSH_WIDTH"); w > 0 {
		c.Playfield.Width = w
	}
	if h := envFloat(lookup, "TARGETRUSH_HEIGHT"); h > 0 {
		c.Playfield.Height = h
	}
	if v := lookup("TARGETRUSH_SPAWN_CHANCE"); v != "" {
		if chance, err := strconv.ParseFloat(v, 64); err == nil {
			c.Spawn.Chance = chance
		}
	}
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string, lookup func(string) string) (*Config, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(lookup)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config after env overrides: %w", err)
	}
	return config, nil
}

// SeedFromEnv returns TARGETRUSH_SEED if set and valid
func SeedFromEnv(lookup func(string) string) (int64, bool) {
	v := lookup("TARGETRUSH_SEED")
	if v == "" {
		return 0, false
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

func envFloat(lookup func(string) string, key string) float64 {
	v := lookup(key)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
