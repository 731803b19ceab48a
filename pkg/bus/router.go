package bus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
)

type event struct {
	id   EventId
	data interface{}
}

// Router is a bounded single-consumer event channel with typed handlers.
// Post never blocks, it fails once capacity is reached.
type Router struct {
	events chan event

	OnTick TickEventHandler
	OnBar  BarEventHandler

	runTime       time.Duration
	tickCount     atomic.Uint64
	barCount      atomic.Uint64
	postFails     atomic.Uint64
	dispatchFails atomic.Uint64
}

func NewRouter(eventCapacity int) *Router {
	return &Router{
		events: make(chan event, eventCapacity),
	}
}

func (r *Router) Post(id EventId, data interface{}) error {
	select {
	case r.events <- event{id, data}:
		return nil
	default:
		r.postFails.Add(1)
		return errors.New("event capacity reached")
	}
}

// Exec drains the event channel until ctx is cancelled. The returned
// channel yields the terminal error exactly once.
func (r *Router) Exec(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	go func() {
		start := time.Now()
		defer func() {
			r.runTime += time.Since(start)
		}()

		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev := <-r.events:
				if err := r.dispatch(ctx, ev); err != nil {
					r.dispatchFails.Add(1)
					slog.Warn("dispatch failed", "error", err, "event_id", ev.id)
				}
			}
		}
	}()

	return done
}

// ExecLoop behaves like Exec but invokes doOnceCb whenever the event
// channel is empty, which lets a data source drip feed the router from
// the same goroutine. The callback's first error terminates the loop.
func (r *Router) ExecLoop(ctx context.Context, doOnceCb func() error) <-chan error {
	done := make(chan error, 1)

	go func() {
		start := time.Now()
		defer func() {
			r.runTime += time.Since(start)
		}()

		for {
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case ev := <-r.events:
				if err := r.dispatch(ctx, ev); err != nil {
					r.dispatchFails.Add(1)
					slog.Warn("dispatch failed", "error", err, "event_id", ev.id)
				}
			default:
				if err := doOnceCb(); err != nil {
					done <- err
					return
				}
			}
		}
	}()

	return done
}

func (r *Router) Statistics() Statistics {
	s := Statistics{
		RunTime:         r.runTime,
		TicksDispatched: r.tickCount.Load(),
		BarsDispatched:  r.barCount.Load(),
		PostFails:       r.postFails.Load(),
		DispatchFails:   r.dispatchFails.Load(),
	}
	if seconds := r.runTime.Seconds(); seconds > 0 {
		s.TickRate = float64(s.TicksDispatched) / seconds
	}
	return s
}

func (r *Router) dispatch(ctx context.Context, ev event) error {
	switch ev.id {
	case TickEvent:
		tick, ok := ev.data.(common.Tick)
		if !ok {
			return errors.New("invalid type assertion for tick event")
		}
		r.tickCount.Add(1)
		if r.OnTick != nil {
			r.OnTick(ctx, tick)
		} else {
			slog.Debug("tick handler is nil")
		}
	case BarEvent:
		bar, ok := ev.data.(common.Bar)
		if !ok {
			return errors.New("invalid type assertion for bar event")
		}
		r.barCount.Add(1)
		if r.OnBar != nil {
			r.OnBar(ctx, bar)
		} else {
			slog.Debug("bar handler is nil")
		}
	default:
		return fmt.Errorf("unsupported event id: %v", ev.id)
	}
	return nil
}
