package control

import (
	"sync"
	"time"

	"github.com/osamah-s7s/virtualmouse/internal/detector"
	"github.com/osamah-s7s/virtualmouse/internal/mouse"
)

// Mode identifies the gesture mode in effect for one frame.
type Mode int

const (
	// ModeIdle means no actionable gesture this frame.
	ModeIdle Mode = iota
	// ModeScroll means ring and pinky are up with thumb, index and middle
	// down; the vertical wrist position drives scrolling.
	ModeScroll
	// ModeMove means the index finger is up and drives the cursor.
	ModeMove
	// ModeClick means a left click fired this frame.
	ModeClick
	// ModeRightClick means a right click fired this frame.
	ModeRightClick
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeScroll:
		return "scroll"
	case ModeMove:
		return "move"
	case ModeClick:
		return "click"
	case ModeRightClick:
		return "right-click"
	default:
		return "idle"
	}
}

// Classify derives the dispatch mode for a frame from the finger vector
// alone. Click modes are not classified here; they are evaluated against
// pinch distances after movement is handled.
func Classify(fingers detector.FingerVector) Mode {
	ring := fingers[detector.FingerRing]
	pinky := fingers[detector.FingerPinky]
	thumb := fingers[detector.FingerThumb]
	index := fingers[detector.FingerIndex]
	middle := fingers[detector.FingerMiddle]

	switch {
	case ring && pinky && !thumb && !index && !middle:
		return ModeScroll
	case index:
		return ModeMove
	default:
		return ModeIdle
	}
}

// Arbiter is the per-frame gesture controller. It selects exactly one of
// scroll, move+drag, click or idle per frame and drives the pointer sink
// accordingly.
type Arbiter struct {
	cfg      Config
	sink     mouse.Sink
	mapper   Mapper
	smoother *Smoother
	drag     *DragMachine
	scroll   *ScrollEngine

	lastLeftClick  time.Time
	lastRightClick time.Time

	mode Mode
	mu   sync.RWMutex

	now func() time.Time
}

// NewArbiter creates an Arbiter driving the given pointer sink.
func NewArbiter(cfg Config, sink mouse.Sink) *Arbiter {
	screenW, screenH := sink.ScreenSize()

	return &Arbiter{
		cfg:      cfg,
		sink:     sink,
		mapper:   NewMapper(cfg.FrameWidth, cfg.FrameHeight, cfg.FrameMargin, screenW, screenH),
		smoother: NewSmoother(cfg.Smoothing),
		drag:     NewDragMachine(cfg.DragHold),
		scroll:   NewScrollEngine(cfg),
		now:      time.Now,
	}
}

// Process interprets one frame. An empty landmark frame means no hand was
// detected; any held drag is released and nothing else is emitted.
func (a *Arbiter) Process(frame detector.LandmarkFrame, fingers detector.FingerVector) {
	if len(frame) == 0 {
		a.releaseDrag()
		a.setMode(ModeIdle)
		return
	}

	mode := Classify(fingers)

	if mode == ModeScroll {
		// Scroll wins over everything; a drag cannot survive it.
		a.releaseDrag()
		a.scroll.Activate()
		if amount, ok := a.scroll.Update(frame[detector.Wrist].Y); ok {
			a.sink.Scroll(amount)
		}
		a.setMode(mode)
		return
	}

	a.scroll.Deactivate()

	if mode == ModeMove {
		a.handleMove(frame, fingers)
	} else {
		a.releaseDrag()
	}

	// Clicks are suppressed while a drag holds the button down.
	if !a.drag.Confirmed() {
		mode = a.handleClicks(frame, fingers, mode)
	}

	a.setMode(mode)
}

// handleMove maps the index fingertip onto the screen, smooths it, moves
// the cursor and evaluates the drag hold on the thumb pinch.
func (a *Arbiter) handleMove(frame detector.LandmarkFrame, fingers detector.FingerVector) {
	tip := frame[detector.IndexTip]
	mx, my := a.mapper.Map(tip.X, tip.Y)
	sx, sy := a.smoother.Update(mx, my)
	a.sink.Move(sx, sy)

	if !fingers[detector.FingerThumb] {
		a.releaseDrag()
		return
	}

	engaged := PinchDistance(frame, detector.ThumbTip, detector.IndexTip) < a.cfg.PinchThreshold
	began, ended := a.drag.Update(engaged)
	if began {
		a.sink.SetDrag(true)
	}
	if ended {
		a.sink.SetDrag(false)
	}
}

// handleClicks evaluates the left- and right-click pinches independently,
// each behind its own non-blocking cool-down timestamp.
func (a *Arbiter) handleClicks(frame detector.LandmarkFrame, fingers detector.FingerVector, mode Mode) Mode {
	now := a.now()

	if fingers[detector.FingerIndex] && fingers[detector.FingerMiddle] &&
		PinchDistance(frame, detector.IndexTip, detector.MiddleTip) < a.cfg.PinchThreshold &&
		now.Sub(a.lastLeftClick) >= a.cfg.ClickCooldown {
		a.sink.Click()
		a.lastLeftClick = now
		mode = ModeClick
	}

	if fingers[detector.FingerThumb] && fingers[detector.FingerIndex] && !fingers[detector.FingerMiddle] &&
		PinchDistance(frame, detector.ThumbTip, detector.IndexTip) < a.cfg.PinchThreshold &&
		now.Sub(a.lastRightClick) >= a.cfg.ClickCooldown {
		a.sink.RightClick()
		a.lastRightClick = now
		mode = ModeRightClick
	}

	return mode
}

// Release forces any held drag to end. It must be called on shutdown so
// the OS is never left with the button held down.
func (a *Arbiter) Release() {
	a.releaseDrag()
	a.setMode(ModeIdle)
}

func (a *Arbiter) releaseDrag() {
	if a.drag.Release() {
		a.sink.SetDrag(false)
	}
}

// Mode returns the gesture mode of the most recent frame.
func (a *Arbiter) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *Arbiter) setMode(m Mode) {
	a.mu.Lock()
	a.mode = m
	a.mu.Unlock()
}
