package blood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allTypes = []string{"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"}

func TestCanDonate(t *testing.T) {
	t.Run("o negative donates to everyone", func(t *testing.T) {
		for _, recipient := range allTypes {
			assert.True(t, CanDonate("O-", recipient), "O- -> %s", recipient)
		}
	})

	t.Run("ab positive receives from everyone", func(t *testing.T) {
		for _, donor := range allTypes {
			assert.True(t, CanDonate(donor, "AB+"), "%s -> AB+", donor)
		}
	})

	t.Run("same type always compatible", func(t *testing.T) {
		for _, bt := range allTypes {
			assert.True(t, CanDonate(bt, bt), "%s -> %s", bt, bt)
		}
	})

	t.Run("rh positive cannot donate to rh negative", func(t *testing.T) {
		assert.False(t, CanDonate("O+", "O-"))
		assert.False(t, CanDonate("A+", "A-"))
		assert.False(t, CanDonate("B+", "AB-"))
	})

	t.Run("a and b are mutually incompatible", func(t *testing.T) {
		assert.False(t, CanDonate("A+", "B+"))
		assert.False(t, CanDonate("B+", "A+"))
		assert.False(t, CanDonate("A-", "B-"))
	})

	t.Run("ab cannot donate to a b or o", func(t *testing.T) {
		for _, recipient := range []string{"A+", "A-", "B+", "B-", "O+", "O-"} {
			assert.False(t, CanDonate("AB+", recipient))
			assert.False(t, CanDonate("AB-", recipient))
		}
	})

	t.Run("unknown types never match", func(t *testing.T) {
		assert.False(t, CanDonate("C+", "A+"))
		assert.False(t, CanDonate("A+", ""))
		assert.Nil(t, CompatibleDonors("X"))
	})
}
