// Package sampler converts an ordered stream of timestamped prices into
// fixed interval OHLC bars. One Sampler instance owns one timeframe of one
// stream; it holds a single in-progress period and emits completed bars,
// including synthetic empty bars for calendar periods without ticks, as
// soon as a tick at or past the period boundary arrives.
package sampler

import (
	"errors"
	"fmt"
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
)

var (
	ErrUnknownTimeframe = errors.New("unknown timeframe")
	ErrOutOfOrder       = errors.New("tick out of order")
)

// Price is the contract the price type must satisfy. Anything totally
// ordered works, the sampler never does arithmetic on prices.
type Price[P any] interface {
	Gt(P) bool
	Lt(P) bool
}

// Bar is one completed accumulation period covering [OpenTime, CloseTime).
// Empty marks a synthetic bar for a period without ticks, its OHLC is the
// close of the preceding period carried forward flat.
type Bar[P Price[P]] struct {
	Timeframe common.Timeframe
	OpenTime  time.Time
	CloseTime time.Time
	Open      P
	High      P
	Low       P
	Close     P
	Empty     bool
}

type Sampler[P Price[P]] struct {
	timeframe common.Timeframe
	rule      boundary

	acc      Bar[P]
	open     bool
	lastTick time.Time
	seen     bool
}

// New constructs a sampler for the given timeframe.
func New[P Price[P]](tf common.Timeframe) (*Sampler[P], error) {
	rule, ok := boundaries[tf]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTimeframe, tf)
	}
	return &Sampler[P]{timeframe: tf, rule: rule}, nil
}

// FromCode constructs a sampler from a short timeframe code such as
// "M15", "H4", "D1", "W1" or "MN1".
func FromCode[P Price[P]](code string) (*Sampler[P], error) {
	tf, ok := common.ParseTimeframe(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeframe, code)
	}
	return New[P](tf)
}

func (s *Sampler[P]) Timeframe() common.Timeframe {
	return s.timeframe
}

// Observe feeds one tick into the sampler. Timestamps must be
// non-decreasing across calls; a tick dated before the previous one is
// rejected with ErrOutOfOrder and leaves the state untouched.
//
// The first tick ever seeds the initial period and never emits. A tick
// within the open period updates the extrema and close. A tick at or past
// the period boundary closes the period, emits one bar per elapsed
// calendar period (empty ones for periods without ticks) and seeds the
// new period with the triggering tick.
func (s *Sampler[P]) Observe(ts time.Time, price P) (Result[P], error) {
	if s.seen && ts.Before(s.lastTick) {
		return Result[P]{}, fmt.Errorf("%w: %s is before %s",
			ErrOutOfOrder, ts.Format(time.RFC3339Nano), s.lastTick.Format(time.RFC3339Nano))
	}
	s.lastTick = ts
	s.seen = true

	if !s.open {
		s.begin(ts, price)
		return Result[P]{}, nil
	}

	if ts.Before(s.acc.CloseTime) {
		if price.Gt(s.acc.High) {
			s.acc.High = price
		}
		if price.Lt(s.acc.Low) {
			s.acc.Low = price
		}
		s.acc.Close = price
		return Result[P]{}, nil
	}

	closed := s.acc

	var gap []Bar[P]
	nextStart := closed.CloseTime
	nextEnd := s.rule.step(nextStart)
	for !ts.Before(nextEnd) {
		gap = append(gap, Bar[P]{
			Timeframe: s.timeframe,
			OpenTime:  nextStart,
			CloseTime: nextEnd,
			Open:      closed.Close,
			High:      closed.Close,
			Low:       closed.Close,
			Close:     closed.Close,
			Empty:     true,
		})
		nextStart = nextEnd
		nextEnd = s.rule.step(nextEnd)
	}

	s.acc = Bar[P]{
		Timeframe: s.timeframe,
		OpenTime:  nextStart,
		CloseTime: nextEnd,
		Open:      price,
		High:      price,
		Low:       price,
		Close:     price,
	}

	return Result[P]{closed: &closed, gap: gap}, nil
}

// Current returns a snapshot of the in-progress period without closing
// it. It reports false before the first tick.
func (s *Sampler[P]) Current() (Bar[P], bool) {
	return s.acc, s.open
}

func (s *Sampler[P]) begin(ts time.Time, price P) {
	start := s.rule.start(ts)
	s.acc = Bar[P]{
		Timeframe: s.timeframe,
		OpenTime:  start,
		CloseTime: s.rule.step(start),
		Open:      price,
		High:      price,
		Low:       price,
		Close:     price,
	}
	s.open = true
}
