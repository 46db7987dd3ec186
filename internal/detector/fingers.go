package detector

// Finger indices into a FingerVector.
const (
	FingerThumb = iota
	FingerIndex
	FingerMiddle
	FingerRing
	FingerPinky
	NumFingers
)

// FingerVector reports which fingers are raised, in the fixed order
// [thumb, index, middle, ring, pinky].
type FingerVector [NumFingers]bool

// Count returns the number of raised fingers.
func (v FingerVector) Count() int {
	n := 0
	for _, up := range v {
		if up {
			n++
		}
	}
	return n
}

// FingersUp derives the raised-finger vector from a landmark frame.
//
// The thumb is considered up when its tip lies outside the IP joint on the
// x axis; the other fingers are up when the tip is above the PIP joint
// (smaller y). Frames with fewer than 21 landmarks yield all fingers down.
func (f LandmarkFrame) FingersUp() FingerVector {
	var v FingerVector
	if len(f) < NumLandmarks {
		return v
	}

	v[FingerThumb] = f[ThumbTip].X > f[ThumbIP].X

	tips := [...]int{IndexTip, MiddleTip, RingTip, PinkyTip}
	for i, tip := range tips {
		v[FingerIndex+i] = f[tip].Y < f[tip-2].Y
	}

	return v
}
