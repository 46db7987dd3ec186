package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapperActiveRegion(t *testing.T) {
	m := NewMapper(640, 480, 100, 1920, 1080)

	tests := []struct {
		name   string
		x, y   int
		wantX  float64
		wantY  float64
	}{
		{"top-left corner of active region", 100, 100, 0, 0},
		{"bottom-right corner of active region", 540, 380, 1920, 1080},
		{"center", 320, 240, 960, 540},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotX, gotY := m.Map(tt.x, tt.y)
			assert.InDelta(t, tt.wantX, gotX, 0.001)
			assert.InDelta(t, tt.wantY, gotY, 0.001)
		})
	}
}

func TestMapperExtrapolatesOutsideRegion(t *testing.T) {
	m := NewMapper(640, 480, 100, 1920, 1080)

	// Inside the margin the mapped coordinate runs off the screen rather
	// than pinning to the edge.
	gotX, gotY := m.Map(0, 0)
	assert.Less(t, gotX, 0.0)
	assert.Less(t, gotY, 0.0)

	gotX, gotY = m.Map(640, 480)
	assert.Greater(t, gotX, 1920.0)
	assert.Greater(t, gotY, 1080.0)
}

func TestMapperIsLinear(t *testing.T) {
	m := NewMapper(640, 480, 100, 1920, 1080)

	// Equal camera-space steps produce equal screen-space steps.
	x1, _ := m.Map(200, 240)
	x2, _ := m.Map(300, 240)
	x3, _ := m.Map(400, 240)
	assert.InDelta(t, x2-x1, x3-x2, 0.001)
}

func TestSmootherFirstStep(t *testing.T) {
	s := NewSmoother(7)

	// From rest, one update moves exactly 1/K of the way to the target.
	x, y := s.Update(700, 350)
	assert.InDelta(t, 100, x, 0.001)
	assert.InDelta(t, 50, y, 0.001)
}

func TestSmootherConvergesToStationaryTarget(t *testing.T) {
	s := NewSmoother(7)

	var x, y float64
	for i := 0; i < 80; i++ {
		x, y = s.Update(1000, 500)
	}

	require.InDelta(t, 1000, x, 1.0)
	require.InDelta(t, 500, y, 1.0)
}

func TestSmootherApproachIsMonotone(t *testing.T) {
	s := NewSmoother(7)

	prev := 0.0
	for i := 0; i < 20; i++ {
		x, _ := s.Update(1000, 0)
		assert.Greater(t, x, prev)
		assert.LessOrEqual(t, x, 1000.0)
		prev = x
	}
}

func TestSmootherPositionDoesNotAdvance(t *testing.T) {
	s := NewSmoother(7)
	s.Update(700, 700)

	x1, y1 := s.Position()
	x2, y2 := s.Position()
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}
