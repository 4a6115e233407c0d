package level

import (
	"testing"

	"github.com/radrob2/diskwatchdog/internal/config"
	"github.com/stretchr/testify/assert"
)

func thresholds() config.ResolvedThresholds {
	return config.ResolvedThresholds{
		Notice: 170, Warn: 119, Harsh: 68, Pause: 30, Stop: 15, Kill: 5, Resume: 60,
	}
}

func TestClassify_BaseLevels(t *testing.T) {
	rt := thresholds()
	cases := []struct {
		freeGB int
		want   Level
	}{
		{500, OK},
		{170, Notice},
		{119, Warn},
		{68, Harsh},
		{30, Pause},
		{15, Stop},
		{5, Kill},
		{0, Kill},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.freeGB, 0, rt, 0), "freeGB=%d", c.freeGB)
	}
}

func TestClassify_NoEscalationWithoutRate(t *testing.T) {
	rt := thresholds()
	assert.Equal(t, Notice, Classify(169, 0, rt, 10))
}

func TestClassify_EscalatesOneStepWhenProjectedCrossingIsSoon(t *testing.T) {
	rt := thresholds()
	// free=169 (1 GB below notice), next threshold is warn(119). At 100
	// GB/min, (169-119)/100 = 0.5 min < 10 min window -> escalate.
	assert.Equal(t, Warn, Classify(169, 100, rt, 10))
}

func TestClassify_NoEscalationWhenFarFromWindow(t *testing.T) {
	rt := thresholds()
	// (169-119)/1 = 50 min, above the 10 minute window.
	assert.Equal(t, Notice, Classify(169, 1, rt, 10))
}

func TestClassify_OnlyOneStepEvenWithExtremeRate(t *testing.T) {
	rt := thresholds()
	// Starting well above notice; even an enormous rate only escalates
	// the base level by one step, never straight to kill.
	assert.Equal(t, Notice, Classify(500, 100000, rt, 10))
}

func TestClassify_NoEscalationPastKill(t *testing.T) {
	rt := thresholds()
	assert.Equal(t, Kill, Classify(1, 1000, rt, 10))
}

func TestClassify_EscalationDisabledWhenWindowZero(t *testing.T) {
	rt := thresholds()
	assert.Equal(t, Notice, Classify(171, 100, rt, 0))
}

func TestLevelString_And_Parse(t *testing.T) {
	for l := OK; l <= Kill; l++ {
		parsed, ok := Parse(l.String())
		assert.True(t, ok)
		assert.Equal(t, l, parsed)
	}
	_, ok := Parse("bogus")
	assert.False(t, ok)
}
