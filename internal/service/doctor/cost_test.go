package doctor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveCost(t *testing.T) {
	insurers := []string{"Iran Insurance", "Asia Insurance"}

	t.Run("matched insurer covers 80 percent", func(t *testing.T) {
		est := ResolveCost(500_000, insurers, "Iran Insurance", 80)
		assert.True(t, est.Insured)
		assert.Equal(t, int64(400_000), est.Covered)
		assert.Equal(t, int64(100_000), est.YouPay)
		assert.Equal(t, est.Fee, est.Covered+est.YouPay)
	})

	t.Run("coverage floors on odd fees", func(t *testing.T) {
		est := ResolveCost(99, insurers, "Asia Insurance", 80)
		assert.Equal(t, int64(79), est.Covered) // floor(99*80/100)
		assert.Equal(t, int64(20), est.YouPay)
	})

	t.Run("unknown insurer pays full fee", func(t *testing.T) {
		est := ResolveCost(500_000, insurers, "Other Insurance", 80)
		assert.False(t, est.Insured)
		assert.Zero(t, est.Covered)
		assert.Equal(t, int64(500_000), est.YouPay)
	})

	t.Run("empty provider never matches", func(t *testing.T) {
		est := ResolveCost(500_000, insurers, "", 80)
		assert.False(t, est.Insured)
		assert.Equal(t, int64(500_000), est.YouPay)
	})

	t.Run("match is case sensitive and exact", func(t *testing.T) {
		est := ResolveCost(500_000, insurers, "iran insurance", 80)
		assert.False(t, est.Insured)
	})
}

func TestValidDay(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month int
		day   int
		want  bool
	}{
		{"regular day", 2026, 3, 15, true},
		{"feb 30 overflows", 2026, 2, 30, false},
		{"feb 29 non leap", 2026, 2, 29, false},
		{"feb 29 leap", 2028, 2, 29, true},
		{"april 31 overflows", 2026, 4, 31, false},
		{"day zero", 2026, 5, 0, false},
		{"day 32", 2026, 5, 32, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidDay(tc.year, time.Month(tc.month), tc.day, time.UTC)
			assert.Equal(t, tc.want, got)
		})
	}
}
