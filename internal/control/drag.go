package control

import "time"

// DragState is the state of the drag hold machine.
type DragState int

const (
	// DragIdle means no pinch is in progress.
	DragIdle DragState = iota
	// DragPinching means a pinch is engaged but has not been held long
	// enough to confirm a drag.
	DragPinching
	// DragConfirmed means a drag is active and the pointer button is held.
	DragConfirmed
)

// String returns the state name.
func (s DragState) String() string {
	switch s {
	case DragPinching:
		return "pinching"
	case DragConfirmed:
		return "confirmed"
	default:
		return "idle"
	}
}

// DragMachine converts a sustained pinch into a hold-confirmed drag.
//
// A pinch must stay engaged for the hold duration before the drag is
// confirmed; releasing the pinch at any point, or any forced release,
// returns the machine to idle. Begin and end signals are emitted exactly
// once per drag episode.
type DragMachine struct {
	state DragState
	since time.Time
	hold  time.Duration

	now func() time.Time
}

// NewDragMachine creates a DragMachine with the given hold duration.
func NewDragMachine(hold time.Duration) *DragMachine {
	return &DragMachine{
		hold: hold,
		now:  time.Now,
	}
}

// Update advances the machine with the current pinch engagement.
// began is true on the single frame the drag confirms; ended is true on the
// single frame a confirmed drag releases.
func (d *DragMachine) Update(engaged bool) (began, ended bool) {
	if !engaged {
		return false, d.Release()
	}

	switch d.state {
	case DragIdle:
		d.state = DragPinching
		d.since = d.now()
	case DragPinching:
		if d.now().Sub(d.since) >= d.hold {
			d.state = DragConfirmed
			began = true
		}
	}

	return began, false
}

// Release forces the machine to idle. It returns true if a confirmed drag
// was active, in which case the caller must release the pointer button.
// Leaving the pinching state emits nothing: no drag was ever started.
func (d *DragMachine) Release() bool {
	ended := d.state == DragConfirmed
	d.state = DragIdle
	return ended
}

// State returns the current drag state.
func (d *DragMachine) State() DragState {
	return d.state
}

// Confirmed reports whether a drag is currently active.
func (d *DragMachine) Confirmed() bool {
	return d.state == DragConfirmed
}
