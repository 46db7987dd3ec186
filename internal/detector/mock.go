package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// baseHand returns a hand with the wrist anchored and every finger curled:
// each tip sits below its PIP joint and the thumb tip is tucked inside the
// IP joint.
func baseHand() HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb tucked across the palm
	landmarks.Points[ThumbCMC] = Point3D{X: 0.54, Y: 0.76, Z: 0.0}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.72, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.68, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.53, Y: 0.66, Z: 0.0}

	// Index curled
	landmarks.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.62, Z: 0.0}
	landmarks.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.58, Z: -0.02}
	landmarks.Points[IndexDIP] = Point3D{X: 0.54, Y: 0.61, Z: -0.03}
	landmarks.Points[IndexTip] = Point3D{X: 0.53, Y: 0.64, Z: -0.02}

	// Middle curled
	landmarks.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.61, Z: 0.0}
	landmarks.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.57, Z: -0.02}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.60, Z: -0.03}
	landmarks.Points[MiddleTip] = Point3D{X: 0.48, Y: 0.63, Z: -0.02}

	// Ring curled
	landmarks.Points[RingMCP] = Point3D{X: 0.45, Y: 0.62, Z: 0.0}
	landmarks.Points[RingPIP] = Point3D{X: 0.45, Y: 0.58, Z: -0.02}
	landmarks.Points[RingDIP] = Point3D{X: 0.44, Y: 0.61, Z: -0.03}
	landmarks.Points[RingTip] = Point3D{X: 0.43, Y: 0.64, Z: -0.02}

	// Pinky curled
	landmarks.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.64, Z: 0.0}
	landmarks.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.60, Z: -0.02}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.63, Z: -0.03}
	landmarks.Points[PinkyTip] = Point3D{X: 0.39, Y: 0.66, Z: -0.02}

	return landmarks
}

// PointingHandLandmarks returns a preset hand with only the index finger
// extended: the cursor-move pose.
func PointingHandLandmarks() HandLandmarks {
	landmarks := baseHand()

	landmarks.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.52, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.43, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	return landmarks
}

// ScrollHandLandmarks returns a preset hand with ring and pinky extended
// and thumb, index and middle down: the scroll-mode pose.
func ScrollHandLandmarks() HandLandmarks {
	landmarks := baseHand()

	landmarks.Points[RingPIP] = Point3D{X: 0.44, Y: 0.52, Z: 0.0}
	landmarks.Points[RingDIP] = Point3D{X: 0.43, Y: 0.43, Z: 0.0}
	landmarks.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	landmarks.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.55, Z: 0.0}
	landmarks.Points[PinkyDIP] = Point3D{X: 0.39, Y: 0.48, Z: 0.0}
	landmarks.Points[PinkyTip] = Point3D{X: 0.38, Y: 0.42, Z: 0.0}

	return landmarks
}

// PinchHandLandmarks returns a preset hand with thumb and index extended
// and their tips nearly touching: the right-click / drag pose.
func PinchHandLandmarks() HandLandmarks {
	landmarks := baseHand()

	landmarks.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.52, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.45, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.58, Y: 0.40, Z: 0.0}

	landmarks.Points[ThumbMCP] = Point3D{X: 0.54, Y: 0.60, Z: 0.0}
	landmarks.Points[ThumbIP] = Point3D{X: 0.56, Y: 0.50, Z: 0.0}
	landmarks.Points[ThumbTip] = Point3D{X: 0.59, Y: 0.41, Z: 0.0}

	return landmarks
}

// ClickHandLandmarks returns a preset hand with index and middle extended
// and their tips nearly touching: the left-click pose.
func ClickHandLandmarks() HandLandmarks {
	landmarks := baseHand()

	landmarks.Points[IndexPIP] = Point3D{X: 0.53, Y: 0.52, Z: 0.0}
	landmarks.Points[IndexDIP] = Point3D{X: 0.53, Y: 0.43, Z: 0.0}
	landmarks.Points[IndexTip] = Point3D{X: 0.52, Y: 0.35, Z: 0.0}

	landmarks.Points[MiddlePIP] = Point3D{X: 0.52, Y: 0.51, Z: 0.0}
	landmarks.Points[MiddleDIP] = Point3D{X: 0.53, Y: 0.42, Z: 0.0}
	landmarks.Points[MiddleTip] = Point3D{X: 0.54, Y: 0.35, Z: 0.0}

	return landmarks
}
