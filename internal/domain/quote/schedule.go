package quote

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrScheduleFormat   = errors.New("schedule must look like \"HH:MM - HH:MM\"")
	ErrScheduleTooShort = errors.New("schedule must last at least 4 hours")
	ErrScheduleTooLong  = errors.New("schedule cannot last more than 8 hours")
	ErrScheduleStarts   = errors.New("schedule cannot start before 13:00")
	ErrScheduleEnds     = errors.New("schedule cannot end after 05:00")
)

const (
	MinScheduleMinutes = 4 * 60
	MaxScheduleMinutes = 8 * 60

	earliestStartMinute = 13 * 60 // 13:00
	latestEndMinute     = 5 * 60  // 05:00 next day
)

// Presets offered by the time picker; both always pass validation.
const (
	DaySchedule   = "15:00 - 20:00"
	NightSchedule = "22:00 - 05:00"
)

// TimeRange is a DJ service window, minutes since midnight. An end at or
// before the start wraps to the next day.
type TimeRange struct {
	start int
	end   int
}

// ParseTimeRange accepts the picker's "HH:MM - HH:MM" format. It only
// parses; call Validate to apply the booking window rules.
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, " - ")
	if len(parts) != 2 {
		return TimeRange{}, ErrScheduleFormat
	}

	start, err := parseMinute(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, ErrScheduleFormat
	}
	end, err := parseMinute(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, ErrScheduleFormat
	}

	return TimeRange{start: start, end: end}, nil
}

func parseMinute(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DurationMinutes is (end - start) mod 24h.
func (tr TimeRange) DurationMinutes() int {
	d := tr.end - tr.start
	if d <= 0 {
		d += 24 * 60
	}
	return d
}

func (tr TimeRange) Wraps() bool {
	return tr.end <= tr.start
}

// Validate applies the booking window: 4-8 hours, starting no earlier
// than 13:00, and when the range wraps past midnight it must end by 05:00.
func (tr TimeRange) Validate() error {
	if tr.start < earliestStartMinute {
		return ErrScheduleStarts
	}
	if tr.Wraps() && tr.end > latestEndMinute {
		return ErrScheduleEnds
	}
	d := tr.DurationMinutes()
	if d < MinScheduleMinutes {
		return ErrScheduleTooShort
	}
	if d > MaxScheduleMinutes {
		return ErrScheduleTooLong
	}
	return nil
}

func (tr TimeRange) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", tr.start/60, tr.start%60, tr.end/60, tr.end%60)
}

// ValidateSchedule is the collaborator contract the wizard guard uses:
// parse then validate in one call.
func ValidateSchedule(s string) error {
	tr, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	return tr.Validate()
}
