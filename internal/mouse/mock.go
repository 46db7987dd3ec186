package mouse

// CommandKind identifies a recorded pointer command.
type CommandKind string

// Recorded command kinds.
const (
	CmdMove       CommandKind = "move"
	CmdClick      CommandKind = "click"
	CmdRightClick CommandKind = "right-click"
	CmdDrag       CommandKind = "drag"
	CmdScroll     CommandKind = "scroll"
)

// Command is one pointer command captured by the mock sink.
type Command struct {
	Kind   CommandKind
	X, Y   float64
	Amount int
	Active bool
}

// MockSink is a test implementation of Sink that records every command.
type MockSink struct {
	Commands []Command
	Width    int
	Height   int
}

// NewMockSink creates a MockSink with the given virtual screen size.
func NewMockSink(width, height int) *MockSink {
	return &MockSink{Width: width, Height: height}
}

// Move records a cursor move.
func (s *MockSink) Move(x, y float64) {
	s.Commands = append(s.Commands, Command{Kind: CmdMove, X: x, Y: y})
}

// Click records a left click.
func (s *MockSink) Click() {
	s.Commands = append(s.Commands, Command{Kind: CmdClick})
}

// RightClick records a right click.
func (s *MockSink) RightClick() {
	s.Commands = append(s.Commands, Command{Kind: CmdRightClick})
}

// SetDrag records a drag press or release.
func (s *MockSink) SetDrag(active bool) {
	s.Commands = append(s.Commands, Command{Kind: CmdDrag, Active: active})
}

// Scroll records a scroll command.
func (s *MockSink) Scroll(amount int) {
	s.Commands = append(s.Commands, Command{Kind: CmdScroll, Amount: amount})
}

// ScreenSize returns the configured virtual screen size.
func (s *MockSink) ScreenSize() (int, int) {
	return s.Width, s.Height
}

// OfKind returns the recorded commands of one kind, in order.
func (s *MockSink) OfKind(kind CommandKind) []Command {
	var out []Command
	for _, c := range s.Commands {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards all recorded commands.
func (s *MockSink) Reset() {
	s.Commands = s.Commands[:0]
}
