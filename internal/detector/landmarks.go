// Package detector provides hand landmark detection for the virtual mouse.
package detector

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a normalized landmark position as reported by the
// detector, with x and y in [0,1] relative to the frame.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks for one detected hand.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// PixelLandmark is one landmark mapped into pixel coordinates of the
// camera frame.
type PixelLandmark struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// LandmarkFrame is the ordered list of pixel landmarks for one hand in one
// video frame. An empty frame means no hand was detected.
type LandmarkFrame []PixelLandmark

// PixelFrame maps the normalized landmarks into pixel coordinates for a
// camera frame of the given size.
func (h *HandLandmarks) PixelFrame(width, height int) LandmarkFrame {
	frame := make(LandmarkFrame, NumLandmarks)
	for i := 0; i < NumLandmarks; i++ {
		frame[i] = PixelLandmark{
			ID: i,
			X:  int(h.Points[i].X * float64(width)),
			Y:  int(h.Points[i].Y * float64(height)),
		}
	}
	return frame
}
