package doctor

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	entslot "github.com/auxillium/auxillium_backend/internal/repo/timeslot"
)

// ValidDay reports whether (year, month, day) names a real calendar date.
// time.Date normalizes overflow (Feb 30 becomes Mar 2), so a round trip
// that lands in a different month means the input was invalid.
func ValidDay(year int, month time.Month, day int, loc *time.Location) bool {
	if day < 1 || day > 31 {
		return false
	}
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	return t.Year() == year && t.Month() == month && t.Day() == day
}

// IsDateAvailable reports whether the doctor has at least one open slot
// starting on the given day. Invalid dates report unavailable.
func (s *doctorService) IsDateAvailable(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, day int) (bool, error) {
	if !ValidDay(year, month, day, s.loc) {
		return false, nil
	}
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	ok, err := s.db.TimeSlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.StatusEQ(entslot.StatusAvailable),
			entslot.StartTimeGTE(dayStart),
			entslot.StartTimeLT(dayEnd),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check day availability: %w", err)
	}
	return ok, nil
}

// MonthAvailability returns the set of days in the month with at least one
// open slot. One range query, bucketed per day.
func (s *doctorService) MonthAvailability(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (map[int]bool, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, ErrInvalidInterval
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, s.loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	slots, err := s.db.TimeSlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.StatusEQ(entslot.StatusAvailable),
			entslot.StartTimeGTE(monthStart),
			entslot.StartTimeLT(monthEnd),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("month availability: %w", err)
	}

	days := make(map[int]bool)
	for _, slot := range slots {
		days[slot.StartTime.In(s.loc).Day()] = true
	}
	return days, nil
}

// IsMonthAvailable short-circuits to whether any day in the month is open.
func (s *doctorService) IsMonthAvailable(ctx context.Context, doctorID uuid.UUID, year int, month time.Month) (bool, error) {
	days, err := s.MonthAvailability(ctx, doctorID, year, month)
	if err != nil {
		return false, err
	}
	return len(days) > 0, nil
}

// AvailableTimes returns the day's open slot start times in ascending order.
func (s *doctorService) AvailableTimes(ctx context.Context, doctorID uuid.UUID, year int, month time.Month, day int) ([]time.Time, error) {
	if !ValidDay(year, month, day, s.loc) {
		return nil, nil
	}
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	slots, err := s.db.TimeSlot.Query().
		Where(
			entslot.DoctorID(doctorID),
			entslot.StatusEQ(entslot.StatusAvailable),
			entslot.StartTimeGTE(dayStart),
			entslot.StartTimeLT(dayEnd),
		).
		Order(entslot.ByStartTime(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("available times: %w", err)
	}

	times := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		times = append(times, slot.StartTime.In(s.loc))
	}
	return times, nil
}
