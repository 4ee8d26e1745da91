package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	frameInterval    = time.Second / 60
	entranceDuration = 500 * time.Millisecond
	entranceOffset   = 6 // rows
)

// entrance moves the card from {offset, invisible} to {0, opaque} once.
type entrance struct {
	start    time.Time
	progress float64
	done     bool
}

func (e entrance) advance(at time.Time) entrance {
	if e.done {
		return e
	}
	if e.start.IsZero() {
		e.start = at
	}
	elapsed := at.Sub(e.start)
	if elapsed >= entranceDuration {
		e.progress = 1
		e.done = true
		return e
	}
	if elapsed < 0 {
		elapsed = 0
	}
	e.progress = float64(elapsed) / float64(entranceDuration)
	return e
}

// eased applies an ease-out cubic to the linear progress
func (e entrance) eased() float64 {
	inv := 1 - e.progress
	return 1 - inv*inv*inv
}

func (e entrance) offset() int {
	return int(math.Round(float64(entranceOffset) * (1 - e.eased())))
}

func (e entrance) opacity() float64 {
	return e.eased()
}

var pressSpring = harmonica.NewSpring(harmonica.FPS(60), 10.0, 0.6)

// pulse is a damped spring that starts at 1 on press and settles at 0
type pulse struct {
	pos    float64
	vel    float64
	active bool
	seq    int
}

func (p pulse) press(seq int) pulse {
	return pulse{pos: 1, active: true, seq: seq}
}

func (p pulse) step() pulse {
	p.pos, p.vel = pressSpring.Update(p.pos, p.vel, 0)
	if math.Abs(p.pos) < 0.01 && math.Abs(p.vel) < 0.01 {
		return pulse{seq: p.seq}
	}
	return p
}

// pressed reports whether the button should render in its pressed style
func (p pulse) pressed() bool {
	return p.active && math.Abs(p.pos) > 0.25
}
