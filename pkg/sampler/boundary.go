package sampler

import (
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
)

// boundary is the calendar rule of a single timeframe. start aligns an
// arbitrary instant down to the opening instant of the period containing it,
// step advances an already aligned boundary exactly one period forward.
// Both are pure and operate on the wall clock of the supplied instant,
// no timezone conversion is performed.
type boundary struct {
	start func(time.Time) time.Time
	step  func(time.Time) time.Time
}

func minuteRule(n int) boundary {
	period := time.Duration(n) * time.Minute
	return boundary{
		start: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), (t.Minute()/n)*n, 0, 0, t.Location())
		},
		step: func(b time.Time) time.Time {
			return b.Add(period)
		},
	}
}

func hourRule(n int) boundary {
	period := time.Duration(n) * time.Hour
	return boundary{
		start: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), t.Day(), (t.Hour()/n)*n, 0, 0, 0, t.Location())
		},
		step: func(b time.Time) time.Time {
			return b.Add(period)
		},
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nextDay(b time.Time) time.Time {
	return b.AddDate(0, 0, 1)
}

// Weeks are Monday aligned.
func weekStart(t time.Time) time.Time {
	sinceMonday := (int(t.Weekday()) + 6) % 7
	return dayStart(t).AddDate(0, 0, -sinceMonday)
}

func nextWeek(b time.Time) time.Time {
	return b.AddDate(0, 0, 7)
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// December rolls over to January of the following year, the year field is
// incremented explicitly instead of relying on month normalization.
func nextMonth(b time.Time) time.Time {
	if b.Month() == time.December {
		return time.Date(b.Year()+1, time.January, 1, 0, 0, 0, 0, b.Location())
	}
	return time.Date(b.Year(), b.Month()+1, 1, 0, 0, 0, 0, b.Location())
}

var boundaries = map[common.Timeframe]boundary{
	common.TimeframeM1:  minuteRule(1),
	common.TimeframeM2:  minuteRule(2),
	common.TimeframeM3:  minuteRule(3),
	common.TimeframeM4:  minuteRule(4),
	common.TimeframeM5:  minuteRule(5),
	common.TimeframeM6:  minuteRule(6),
	common.TimeframeM10: minuteRule(10),
	common.TimeframeM12: minuteRule(12),
	common.TimeframeM15: minuteRule(15),
	common.TimeframeM20: minuteRule(20),
	common.TimeframeM30: minuteRule(30),
	common.TimeframeH1:  hourRule(1),
	common.TimeframeH2:  hourRule(2),
	common.TimeframeH3:  hourRule(3),
	common.TimeframeH4:  hourRule(4),
	common.TimeframeH6:  hourRule(6),
	common.TimeframeH8:  hourRule(8),
	common.TimeframeH12: hourRule(12),
	common.TimeframeD1:  {start: dayStart, step: nextDay},
	common.TimeframeW1:  {start: weekStart, step: nextWeek},
	common.TimeframeMN1: {start: monthStart, step: nextMonth},
}

// PeriodStart returns the opening instant of the tf period containing t.
func PeriodStart(tf common.Timeframe, t time.Time) (time.Time, error) {
	b, ok := boundaries[tf]
	if !ok {
		return time.Time{}, ErrUnknownTimeframe
	}
	return b.start(t), nil
}

// NextBoundary returns the first tf boundary strictly after t.
func NextBoundary(tf common.Timeframe, t time.Time) (time.Time, error) {
	b, ok := boundaries[tf]
	if !ok {
		return time.Time{}, ErrUnknownTimeframe
	}
	return b.step(b.start(t)), nil
}
