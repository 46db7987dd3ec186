package control

import (
	"math"
	"time"
)

// ScrollEngine computes a progressive scroll velocity from the vertical
// hand position.
//
// The frame is split into a central neutral band and two acceleration
// zones. Inside the band the speed is zero; outside it the speed starts at
// the base sensitivity and ramps quadratically to the maximum at the frame
// edge, negative above the band and positive below. The quadratic exponent
// gives fine control near the center and fast response near the extremes.
type ScrollEngine struct {
	cfg     Config
	active  bool
	history []float64
	last    time.Time

	now func() time.Time
}

// NewScrollEngine creates a ScrollEngine with the given configuration.
func NewScrollEngine(cfg Config) *ScrollEngine {
	return &ScrollEngine{
		cfg: cfg,
		now: time.Now,
	}
}

// Activate enters scroll mode. The speed history is cleared so a previous
// scroll session cannot bias the new one. Calling Activate while already
// active is a no-op.
func (e *ScrollEngine) Activate() {
	if e.active {
		return
	}
	e.active = true
	e.history = e.history[:0]
}

// Deactivate leaves scroll mode. The history is kept; it is unused while
// inactive and cleared on the next activation.
func (e *ScrollEngine) Deactivate() {
	e.active = false
}

// Active reports whether scroll mode is engaged.
func (e *ScrollEngine) Active() bool {
	return e.active
}

// Zones returns the neutral band boundaries (top, bottom) and its height
// in pixels.
func (e *ScrollEngine) Zones() (top, bottom, height int) {
	height = int(float64(e.cfg.FrameHeight) * e.cfg.ScrollNeutralRatio)
	top = (e.cfg.FrameHeight - height) / 2
	bottom = (e.cfg.FrameHeight + height) / 2
	return top, bottom, height
}

// Speed returns the signed raw scroll speed for a vertical position.
// Negative means scroll up (hand above the neutral band).
func (e *ScrollEngine) Speed(y int) float64 {
	top, bottom, _ := e.Zones()

	if y >= top && y <= bottom {
		return 0
	}

	base, max := e.cfg.ScrollBase, e.cfg.ScrollMax

	if y < top {
		ramp := float64(top-y) / float64(top)
		return -base - (max-base)*math.Pow(ramp, 2)
	}

	ramp := float64(y-bottom) / float64(e.cfg.FrameHeight-bottom)
	return base + (max-base)*math.Pow(ramp, 2)
}

// Update processes one frame of scroll input. It records the raw speed in
// the bounded history and, if the minimum interval since the last emission
// has elapsed and the smoothed magnitude clears the activation threshold,
// returns the boosted scroll amount (truncated toward zero) with ok=true.
func (e *ScrollEngine) Update(y int) (amount int, ok bool) {
	speed := e.Speed(y)

	e.history = append(e.history, speed)
	if len(e.history) > e.cfg.ScrollHistory {
		e.history = e.history[1:]
	}

	var sum float64
	for _, s := range e.history {
		sum += s
	}
	smoothed := sum / float64(len(e.history))

	now := e.now()
	if now.Sub(e.last) < e.cfg.ScrollInterval {
		return 0, false
	}
	if math.Abs(smoothed) <= e.cfg.ScrollThreshold {
		return 0, false
	}

	e.last = now
	return int(smoothed * e.cfg.ScrollBoost), true
}
