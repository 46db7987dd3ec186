package control

import (
	"math"

	"github.com/osamah-s7s/virtualmouse/internal/detector"
)

// PinchDistance returns the Euclidean pixel distance between two landmarks.
//
// If the frame is too short to contain both landmarks it returns 0, which
// callers treat as pinched. This fail-closed sentinel mirrors the behavior
// the gesture timing was tuned against; see DESIGN.md before changing it.
func PinchDistance(frame detector.LandmarkFrame, a, b int) float64 {
	if len(frame) <= a || len(frame) <= b {
		return 0
	}

	dx := float64(frame[b].X - frame[a].X)
	dy := float64(frame[b].Y - frame[a].Y)
	return math.Hypot(dx, dy)
}
