// Package control implements the gesture interpretation and control engine:
// it turns per-frame hand landmarks and finger states into pointer movement,
// clicks, scrolling and drags.
package control

import "time"

// Config holds the tuning parameters of the control engine.
// The defaults are calibrated for a 640x480 camera frame.
type Config struct {
	// FrameWidth and FrameHeight are the camera frame dimensions in pixels.
	FrameWidth  int
	FrameHeight int

	// FrameMargin is the interior margin of the active pointer region.
	// Only the sub-rectangle [margin, dim-margin] maps onto the screen.
	FrameMargin int

	// Smoothing is the cursor low-pass factor K. Each frame the cursor
	// moves 1/K of the way toward the mapped target; larger K means more
	// lag and less jitter. Must be > 1.
	Smoothing float64

	// PinchThreshold is the landmark distance in pixels below which two
	// fingertips count as pinched.
	PinchThreshold float64

	// DragHold is how long a pinch must be held before it becomes a drag.
	DragHold time.Duration

	// ClickCooldown suppresses repeated click commands after one fires.
	ClickCooldown time.Duration

	// ScrollBase and ScrollMax bound the progressive scroll speed: the
	// speed is ScrollBase just outside the neutral zone and ramps
	// quadratically to ScrollMax at the frame edge.
	ScrollBase float64
	ScrollMax  float64

	// ScrollInterval is the minimum time between emitted scroll commands.
	ScrollInterval time.Duration

	// ScrollHistory is the number of raw speed samples averaged before a
	// scroll command is emitted.
	ScrollHistory int

	// ScrollNeutralRatio is the height of the neutral (no scroll) band as
	// a fraction of the frame height.
	ScrollNeutralRatio float64

	// ScrollThreshold is the minimum smoothed speed magnitude required to
	// emit a scroll command.
	ScrollThreshold float64

	// ScrollBoost multiplies the smoothed speed before it is sent to the
	// pointer sink.
	ScrollBoost float64
}

// DefaultConfig returns the reference tuning for a 640x480 camera.
func DefaultConfig() Config {
	return Config{
		FrameWidth:         640,
		FrameHeight:        480,
		FrameMargin:        100,
		Smoothing:          7,
		PinchThreshold:     40,
		DragHold:           300 * time.Millisecond,
		ClickCooldown:      300 * time.Millisecond,
		ScrollBase:         5.0,
		ScrollMax:          20.0,
		ScrollInterval:     20 * time.Millisecond,
		ScrollHistory:      3,
		ScrollNeutralRatio: 1.0 / 5.0,
		ScrollThreshold:    0.5,
		ScrollBoost:        15,
	}
}
