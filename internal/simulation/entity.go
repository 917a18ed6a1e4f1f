package simulation

import "math"

// Facing is the left/right orientation used when drawing a character.
type Facing int

const (
	FacingRight Facing = 1
	FacingLeft  Facing = -1
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// facingToward returns Right when dx points right, Left otherwise.
func facingToward(dx float64) Facing {
	if dx > 0 {
		return FacingRight
	}
	return FacingLeft
}

// Point is a position in playfield pixels.
type Point struct {
	X, Y float64
}

// Dist returns the euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Player is the single user-controlled character.
type Player struct {
	Pos    Point
	Size   float64 // Half-extent of the body
	Speed  float64
	Facing Facing
}

// Bullet travels in a fixed unit direction until it leaves the playfield
// or hits a target.
type Bullet struct {
	ID     uint64
	Pos    Point
	DX, DY float64 // Unit direction, fixed at creation
	Speed  float64
	Size   float64
}

// Target homes in on the player every tick.
type Target struct {
	ID     uint64
	Pos    Point
	Size   float64
	Speed  float64
	Facing Facing
}
