package app

import (
	"log"
	"time"

	"github.com/osamah-s7s/virtualmouse/internal/detector"
)

// runPipeline is the frame loop. One full gesture-interpretation pass runs
// per camera frame, in arrival order; all gesture state lives in the
// arbiter and is only touched here.
//
// The loop idles at a low frame rate while the scene is static and
// switches to the active rate when the activity gate trips, dropping back
// after IdleTimeoutMs without motion. Transitions that stop gesture
// processing (idle, disabled) run one empty frame through the arbiter so a
// held drag is always released.
func (a *App) runPipeline() {
	defer close(a.doneCh)

	activeMode := false
	lastActivity := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	stopCh := a.stopCh

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			active, _ := a.activity.Check(frame)

			if active {
				lastActivity = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
				}
			} else if activeMode && time.Since(lastActivity) > IdleTimeoutMs*time.Millisecond {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)

				// The hand is gone as far as the engine is concerned.
				a.arbiter.Process(nil, detector.FingerVector{})
			}

			if !activeMode || a.detector == nil {
				frame.Close()
				continue
			}

			hands, err := a.detector.Detect(frame)
			width, height := frame.Cols(), frame.Rows()
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			if len(hands) == 0 {
				a.arbiter.Process(nil, detector.FingerVector{})
				continue
			}

			// Single-hand control: only the first detected hand drives
			// the pointer.
			lm := hands[0].PixelFrame(width, height)
			a.arbiter.Process(lm, lm.FingersUp())
		}
	}
}
