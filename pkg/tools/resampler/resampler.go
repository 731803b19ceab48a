// Package resampler fans one tick stream out to independent per-timeframe
// samplers and posts every completed bar to the event bus.
package resampler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/peter-kozarec/resample/pkg/bus"
	"github.com/peter-kozarec/resample/pkg/common"
	"github.com/peter-kozarec/resample/pkg/sampler"
	"github.com/peter-kozarec/resample/pkg/utility"
	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

const componentName = "resampler"

type PriceMode int

const (
	PriceModeAsk PriceMode = iota
	PriceModeBid
	PriceModeMid
)

type stream struct {
	symbol  string
	sampler *sampler.Sampler[fixed.Point]
}

type Resampler struct {
	router    *bus.Router
	priceMode PriceMode
	streams   []stream
}

func New(router *bus.Router, priceMode PriceMode) *Resampler {
	return &Resampler{
		router:    router,
		priceMode: priceMode,
	}
}

// Add registers one (symbol, timeframe) stream. Registering the same pair
// twice is an error, each stream owns exactly one sampler.
func (r *Resampler) Add(symbol string, tf common.Timeframe) error {
	for _, s := range r.streams {
		if s.symbol == symbol && s.sampler.Timeframe() == tf {
			return fmt.Errorf("stream %s %s already registered", symbol, tf)
		}
	}

	smp, err := sampler.New[fixed.Point](tf)
	if err != nil {
		return err
	}

	r.streams = append(r.streams, stream{symbol: symbol, sampler: smp})
	return nil
}

// AddCode is Add with a short timeframe code such as "M15" or "D1".
func (r *Resampler) AddCode(symbol, code string) error {
	tf, ok := common.ParseTimeframe(code)
	if !ok {
		return fmt.Errorf("%w: %q", sampler.ErrUnknownTimeframe, code)
	}
	return r.Add(symbol, tf)
}

// OnTick feeds the tick into every sampler registered for its symbol and
// posts the resulting bars, closed period first, gap fill after, in
// chronological order. Out-of-order ticks are dropped with a warning, the
// samplers never see them.
func (r *Resampler) OnTick(_ context.Context, tick common.Tick) {
	price := r.getPrice(tick)

	for i := range r.streams {
		s := &r.streams[i]
		if s.symbol != tick.Symbol {
			continue
		}

		res, err := s.sampler.Observe(tick.TimeStamp, price)
		if err != nil {
			slog.Warn("tick dropped", "symbol", s.symbol,
				"timeframe", s.sampler.Timeframe(), "error", err)
			continue
		}

		for _, b := range res.Bars() {
			if err := r.router.Post(bus.BarEvent, r.envelope(s.symbol, b)); err != nil {
				slog.Error("unable to post bar", "error", err)
			}
		}
	}
}

// Current returns the in-progress bar of one stream, false when the
// stream is unknown or has not seen a tick yet.
func (r *Resampler) Current(symbol string, tf common.Timeframe) (common.Bar, bool) {
	for i := range r.streams {
		s := &r.streams[i]
		if s.symbol == symbol && s.sampler.Timeframe() == tf {
			b, ok := s.sampler.Current()
			if !ok {
				return common.Bar{}, false
			}
			return r.envelope(symbol, b), true
		}
	}
	return common.Bar{}, false
}

func (r *Resampler) getPrice(tick common.Tick) fixed.Point {
	switch r.priceMode {
	case PriceModeAsk:
		return tick.Ask
	case PriceModeBid:
		return tick.Bid
	case PriceModeMid:
		return tick.Ask.Add(tick.Bid).DivInt(2)
	default:
		panic("invalid price mode")
	}
}

func (r *Resampler) envelope(symbol string, b sampler.Bar[fixed.Point]) common.Bar {
	return common.Bar{
		Source:      componentName,
		Symbol:      symbol,
		ExecutionId: utility.GetExecutionID(),
		TraceID:     utility.CreateTraceID(),
		Timeframe:   b.Timeframe,
		OpenTime:    b.OpenTime,
		CloseTime:   b.CloseTime,
		Open:        b.Open,
		High:        b.High,
		Low:         b.Low,
		Close:       b.Close,
		Empty:       b.Empty,
	}
}
