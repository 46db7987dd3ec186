package capture

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockCamera is a test implementation of Camera that produces synthetic
// frames without any capture device.
type MockCamera struct {
	mu      sync.Mutex
	open    bool
	fps     int
	width   int
	height  int
	readErr error
	reads   int
}

// NewMockCamera creates a MockCamera producing frames of the given size.
func NewMockCamera(width, height int) *MockCamera {
	return &MockCamera{
		fps:    DefaultFPS,
		width:  width,
		height: height,
	}
}

// SetReadError makes subsequent ReadFrame calls fail with err.
func (m *MockCamera) SetReadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// Reads returns how many frames have been read.
func (m *MockCamera) Reads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reads
}

// Open marks the camera as open.
func (m *MockCamera) Open() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = true
	return nil
}

// Close marks the camera as closed.
func (m *MockCamera) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	return nil
}

// ReadFrame returns a blank frame of the configured size.
// The caller is responsible for closing the returned Mat.
func (m *MockCamera) ReadFrame() (*gocv.Mat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.open {
		return nil, ErrCameraNotOpen
	}
	if m.readErr != nil {
		return nil, m.readErr
	}

	mat := gocv.NewMatWithSize(m.height, m.width, gocv.MatTypeCV8UC3)
	m.reads++
	return &mat, nil
}

// SetFPS records the requested frame rate.
func (m *MockCamera) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fps = fps
}

// FPS returns the recorded frame rate.
func (m *MockCamera) FPS() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps
}

// IsOpen reports whether Open has been called without a matching Close.
func (m *MockCamera) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}
