package bus

import (
	"fmt"
	"log/slog"
	"time"
)

// Statistics summarizes one router run. Ticks and bars are counted at
// dispatch, so a run with gap filling dispatches more bars than periods
// with ticks in them.
type Statistics struct {
	RunTime         time.Duration
	TicksDispatched uint64
	BarsDispatched  uint64
	PostFails       uint64
	DispatchFails   uint64
	TickRate        float64
}

func (s Statistics) Print() {
	slog.Info("router statistics",
		"run_time", fmt.Sprintf("%.2fs", s.RunTime.Seconds()),
		"ticks", s.TicksDispatched,
		"bars", s.BarsDispatched,
		"post_fails", s.PostFails,
		"dispatch_fails", s.DispatchFails,
		"ticks_per_s", fmt.Sprintf("%.2f", s.TickRate))
}
