package control

// Mapper linearly maps camera-space coordinates onto the screen.
//
// Only the interior sub-rectangle [margin, dim-margin] of the camera frame
// corresponds to the full screen; coordinates outside it extrapolate
// linearly rather than clamp, which keeps the cursor responsive when the
// fingertip brushes the edge of the active region.
type Mapper struct {
	margin  int
	frameW  int
	frameH  int
	screenW int
	screenH int
}

// NewMapper creates a Mapper for the given camera frame, margin and screen.
func NewMapper(frameW, frameH, margin, screenW, screenH int) Mapper {
	return Mapper{
		margin:  margin,
		frameW:  frameW,
		frameH:  frameH,
		screenW: screenW,
		screenH: screenH,
	}
}

// Map converts a camera-space coordinate to screen-space.
func (m Mapper) Map(x, y int) (float64, float64) {
	sx := float64(x-m.margin) / float64(m.frameW-2*m.margin) * float64(m.screenW)
	sy := float64(y-m.margin) / float64(m.frameH-2*m.margin) * float64(m.screenH)
	return sx, sy
}

// Smoother applies exponential-lag smoothing to a moving 2D point.
//
// Each update moves the stored position 1/K of the way toward the target.
// The time constant is K frames, not wall-clock time: at a steady frame
// rate this is a first-order low-pass filter on cursor motion.
type Smoother struct {
	k     float64
	prevX float64
	prevY float64
}

// NewSmoother creates a Smoother with factor k (> 1).
func NewSmoother(k float64) *Smoother {
	return &Smoother{k: k}
}

// Update advances the smoothed position toward the target and returns it.
func (s *Smoother) Update(targetX, targetY float64) (float64, float64) {
	s.prevX += (targetX - s.prevX) / s.k
	s.prevY += (targetY - s.prevY) / s.k
	return s.prevX, s.prevY
}

// Position returns the current smoothed position without advancing it.
func (s *Smoother) Position() (float64, float64) {
	return s.prevX, s.prevY
}
