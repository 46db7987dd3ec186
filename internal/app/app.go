// Package app wires the virtual mouse pipeline together: camera, hand
// detector, gesture control engine and pointer sink.
package app

import (
	"log"
	"sync"

	"github.com/osamah-s7s/virtualmouse/internal/capture"
	"github.com/osamah-s7s/virtualmouse/internal/control"
	"github.com/osamah-s7s/virtualmouse/internal/detector"
	"github.com/osamah-s7s/virtualmouse/internal/mouse"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while the scene is static.
	IdleFPS = 5
	// ActiveFPS is the frame rate while a hand may be moving.
	ActiveFPS = 15
	// IdleTimeoutMs is how long the scene must stay static before the
	// pipeline drops back to the idle rate.
	IdleTimeoutMs = 2000
)

// Config holds the collaborators and tuning for the application.
type Config struct {
	Camera   capture.Camera
	Detector detector.Detector
	Sink     mouse.Sink
	Control  control.Config

	// ActivityThreshold is the changed-pixel percentage above which the
	// scene counts as active. Values <= 0 use 1.0.
	ActivityThreshold float64
}

// App runs the frame loop that turns camera frames into pointer commands.
type App struct {
	config   Config
	camera   capture.Camera
	activity *capture.ActivityGate
	detector detector.Detector
	arbiter  *control.Arbiter

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	threshold := config.ActivityThreshold
	if threshold <= 0 {
		threshold = 1.0
	}

	return &App{
		config:   config,
		camera:   config.Camera,
		activity: capture.NewActivityGate(threshold),
		detector: config.Detector,
		arbiter:  control.NewArbiter(config.Control, config.Sink),
		enabled:  true,
	}
}

// SetEnabled enables or disables gesture control. Disabling releases any
// held drag immediately so the OS button state never leaks.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	a.enabled = enabled
	a.mu.Unlock()

	if !enabled {
		a.arbiter.Release()
	}
}

// IsEnabled returns whether gesture control is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Enabled implements the diagnostics status source.
func (a *App) Enabled() bool {
	return a.IsEnabled()
}

// Mode returns the gesture mode of the most recent frame.
func (a *App) Mode() string {
	return a.arbiter.Mode().String()
}

// Arbiter returns the gesture arbiter.
func (a *App) Arbiter() *control.Arbiter {
	return a.arbiter
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	return a.detector
}

// Start begins the frame pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	a.stopCh = make(chan struct{})
	a.doneCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Gesture pipeline started")
	return nil
}

// Stop halts the pipeline, releases any held drag and closes the camera
// and detector.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh, doneCh := a.stopCh, a.doneCh
	a.stopCh = nil
	a.doneCh = nil
	a.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-doneCh
	}

	// Never leave the OS with the button held down.
	a.arbiter.Release()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.activity.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Gesture pipeline stopped")
}
