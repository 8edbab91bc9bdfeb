package lidar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	assert := assert.New(t)
	assert.Nil(Span(0, 1, 0))
	assert.Equal([]float64{-0.25}, Span(-0.25, 0.25, 1))
	assert.Equal([]float64{-1, 0, 1}, Span(-1, 1, 3))

	s := Span(-math.Pi, math.Pi, 360)
	assert.Len(s, 360)
	assert.Equal(-math.Pi, s[0])
	assert.Equal(math.Pi, s[len(s)-1])
	_, err := NewSimulator([]float64{0}, s)
	assert.NoError(err)
}

func TestDegrees(t *testing.T) {
	got := Degrees([]float64{0, 90, -180, 45})
	want := []float64{0, math.Pi / 2, -math.Pi, math.Pi / 4}
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps)
	}
}

func TestBeamProfile(t *testing.T) {
	// Denser beams near the horizon, as on many automotive sensors.
	p := NewBeamProfile(map[float64]float64{15: 15, 0: -25, 10: 0, 5: -5})
	tests := []struct {
		beam float64
		want float64
	}{
		{0, -25},
		{2.5, -15},
		{5, -5},
		{7, -3},
		{10, 0},
		{12, 6},
		{15, 15},
		{-1, -25},
		{40, 15},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, p.AtDegrees(test.beam), eps)
	}

	lats := p.Angles(16)
	require.Len(t, lats, 16)
	assert.InDelta(t, -25*math.Pi/180, lats[0], eps)
	assert.InDelta(t, 15*math.Pi/180, lats[15], eps)
	for i := 1; i < len(lats); i++ {
		assert.Greater(t, lats[i], lats[i-1])
	}
	_, err := NewSimulator(lats, []float64{0})
	assert.NoError(t, err)
}
