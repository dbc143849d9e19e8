package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverage(t *testing.T) {
	assert.Zero(t, Coverage(0, 50))
	assert.Zero(t, Coverage(10, 0))
	assert.InDelta(t, 0.4, Coverage(10, 50), 1e-9)
	assert.Equal(t, CoverageCap, Coverage(50, 50), "full coverage saturates the cap")
}

func TestBonusIsCapped(t *testing.T) {
	assert.InDelta(t, 0.5, Bonus(0.4), 1e-9)
	assert.Equal(t, MatchCap, Bonus(0.85))
	assert.Equal(t, MatchCap, Bonus(MatchCap))
}

func TestAboveFloor(t *testing.T) {
	assert.False(t, AboveFloor(0.29))
	assert.True(t, AboveFloor(MatchFloor))
	assert.True(t, AboveFloor(0.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.2))
	assert.Equal(t, 1.0, Clamp(1.7))
	assert.Equal(t, 0.6, Clamp(0.6))
}
