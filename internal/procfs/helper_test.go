//go:build linux

package procfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltaU64(t *testing.T) {
	t.Run("normal_increase", func(t *testing.T) {
		assert.Equal(t, uint64(10), DeltaU64(110, 100))
	})
	t.Run("no_change", func(t *testing.T) {
		assert.Equal(t, uint64(0), DeltaU64(100, 100))
	})
	t.Run("wrap_or_prev_unset", func(t *testing.T) {
		// now < prev → treated as wrap/reset → 0
		assert.Equal(t, uint64(0), DeltaU64(99, 100))
	})
	t.Run("large_values", func(t *testing.T) {
		const hi = ^uint64(0) - 5
		assert.Equal(t, uint64(5), DeltaU64(hi, hi-5))
	})
}
