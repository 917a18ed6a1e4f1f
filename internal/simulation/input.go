package simulation

import "strings"

// Key is one of the four movement keys.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	keyCount
)

var keyNames = map[string]Key{
	"w": KeyUp,
	"s": KeyDown,
	"a": KeyLeft,
	"d": KeyRight,
}

// KeyFromName maps a raw key name to a movement key, ignoring case.
func KeyFromName(name string) (Key, bool) {
	k, ok := keyNames[strings.ToLower(name)]
	return k, ok
}

// Input collects raw key and pointer events between ticks. The step polls it
// once per tick, so event delivery timing never affects simulation timing.
type Input struct {
	held   [keyCount]bool
	clicks []Point
}

// NewInput returns an input state with nothing held.
func NewInput() *Input {
	return &Input{}
}

// KeyDown marks a movement key as held. Unrecognised names are ignored.
func (in *Input) KeyDown(name string) {
	if k, ok := KeyFromName(name); ok {
		in.held[k] = true
	}
}

// KeyUp marks a movement key as released. Unrecognised names are ignored.
func (in *Input) KeyUp(name string) {
	if k, ok := KeyFromName(name); ok {
		in.held[k] = false
	}
}

// Held reports whether k is currently held.
func (in *Input) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return in.held[k]
}

// Release lets go of every key, e.g. when the window loses focus.
func (in *Input) Release() {
	in.held = [keyCount]bool{}
}

// Click queues one fire request toward (x, y).
func (in *Input) Click(x, y float64) {
	in.clicks = append(in.clicks, Point{X: x, Y: y})
}

// Pending returns the number of queued clicks.
func (in *Input) Pending() int {
	return len(in.clicks)
}

// Drain returns and clears the queued clicks in arrival order.
func (in *Input) Drain() []Point {
	if len(in.clicks) == 0 {
		return nil
	}
	out := in.clicks
	in.clicks = nil
	return out
}
