package mouse

import "github.com/go-vgo/robotgo"

// RobotSink injects pointer events via robotgo.
//
// The x coordinate is mirrored (screen width minus x) so cursor motion
// matches the mirrored camera view the user sees of their own hand.
type RobotSink struct {
	screenW int
	screenH int
}

// NewRobotSink creates a RobotSink and caches the screen dimensions.
func NewRobotSink() *RobotSink {
	w, h := robotgo.GetScreenSize()
	return &RobotSink{screenW: w, screenH: h}
}

// Move positions the cursor, mirroring the x axis.
func (s *RobotSink) Move(x, y float64) {
	robotgo.Move(s.screenW-int(x), int(y))
}

// Click performs a left click.
func (s *RobotSink) Click() {
	robotgo.Click("left")
}

// RightClick performs a right click.
func (s *RobotSink) RightClick() {
	robotgo.Click("right")
}

// SetDrag presses or releases the left button.
func (s *RobotSink) SetDrag(active bool) {
	if active {
		robotgo.Toggle("left")
	} else {
		robotgo.Toggle("left", "up")
	}
}

// Scroll scrolls the wheel vertically by the signed amount.
func (s *RobotSink) Scroll(amount int) {
	robotgo.Scroll(0, amount)
}

// ScreenSize returns the cached screen dimensions.
func (s *RobotSink) ScreenSize() (int, int) {
	return s.screenW, s.screenH
}
