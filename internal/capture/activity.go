package capture

import (
	"image"

	"gocv.io/x/gocv"
)

// Frame-differencing parameters.
const (
	// activityBlurKernel is the Gaussian kernel size used to suppress
	// sensor noise before differencing.
	activityBlurKernel = 21
	// activityDiffThreshold is the per-pixel intensity delta that counts
	// as change.
	activityDiffThreshold = 25
)

// ActivityGate decides whether anything is moving in front of the camera.
// The pipeline uses it to drop to a low frame rate when the scene is
// static, so the detector subprocess is not fed frames with no hand in
// motion.
//
// Not safe for concurrent use; the gate belongs to the pipeline goroutine.
type ActivityGate struct {
	threshold float64
	baseline  gocv.Mat
	primed    bool
}

// NewActivityGate creates a gate that reports activity when more than
// threshold percent of pixels changed between consecutive frames.
func NewActivityGate(threshold float64) *ActivityGate {
	return &ActivityGate{
		threshold: threshold,
		baseline:  gocv.NewMat(),
	}
}

// Check compares the frame against the previous one and reports whether
// the changed-pixel percentage exceeds the threshold, along with the
// percentage itself. The first frame primes the baseline and reports no
// activity.
func (g *ActivityGate) Check(frame *gocv.Mat) (bool, float64) {
	if frame == nil || frame.Empty() {
		return false, 0
	}

	gray := gocv.NewMat()
	defer gray.Close()

	if frame.Channels() > 1 {
		gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)
	} else {
		frame.CopyTo(&gray)
	}

	gocv.GaussianBlur(gray, &gray, image.Point{X: activityBlurKernel, Y: activityBlurKernel}, 0, 0, gocv.BorderDefault)

	if !g.primed {
		gray.CopyTo(&g.baseline)
		g.primed = true
		return false, 0
	}

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(gray, g.baseline, &diff)
	gocv.Threshold(diff, &diff, activityDiffThreshold, 255, gocv.ThresholdBinary)

	changed := gocv.CountNonZero(diff)
	total := diff.Rows() * diff.Cols()
	percent := float64(changed) / float64(total) * 100.0

	gray.CopyTo(&g.baseline)

	return percent > g.threshold, percent
}

// Reset discards the baseline so the next frame primes a fresh one.
func (g *ActivityGate) Reset() {
	if !g.baseline.Empty() {
		g.baseline.Close()
		g.baseline = gocv.NewMat()
	}
	g.primed = false
}

// Close releases the gate's resources.
func (g *ActivityGate) Close() {
	g.Reset()
}
