package doctor

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMonthAvailabilityRejectsInvalidInterval(t *testing.T) {
	// No database access happens before interval validation.
	s := &doctorService{loc: time.UTC}

	cases := []struct {
		name  string
		year  int
		month int
	}{
		{"zero year", 0, 6},
		{"negative year", -1, 6},
		{"month zero", 2026, 0},
		{"month thirteen", 2026, 13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days, err := s.MonthAvailability(context.Background(), uuid.New(), tc.year, time.Month(tc.month))
			assert.Nil(t, days)
			assert.ErrorIs(t, err, ErrInvalidInterval)
		})
	}
}
