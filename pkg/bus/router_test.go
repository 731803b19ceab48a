package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
)

func TestBusRouter_Post(t *testing.T) {
	r := NewRouter(10)

	err := r.Post(TickEvent, common.Tick{})
	if err != nil {
		t.Errorf("Post failed: %v", err)
	}

	if len(r.events) != 1 {
		t.Errorf("Expected one queued event, got %d", len(r.events))
	}
}

func TestBusRouter_PostCapacityReached(t *testing.T) {
	r := NewRouter(1)

	err := r.Post(TickEvent, common.Tick{})
	if err != nil {
		t.Errorf("First Post failed: %v", err)
	}

	err = r.Post(TickEvent, common.Tick{})
	if err == nil {
		t.Error("Expected error when capacity reached")
	}

	if r.postFails.Load() != 1 {
		t.Errorf("Expected postFails=1, got %d", r.postFails.Load())
	}
}

func TestBusRouter_Exec(t *testing.T) {
	r := NewRouter(10)

	tickHandled := make(chan struct{}, 1)
	r.OnTick = func(ctx context.Context, tick common.Tick) {
		tickHandled <- struct{}{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errChan := r.Exec(ctx)

	if err := r.Post(TickEvent, common.Tick{}); err != nil {
		t.Errorf("Post failed: %v", err)
	}

	select {
	case <-tickHandled:
	case <-time.After(time.Second):
		t.Fatal("Tick handler not called")
	}
	cancel()

	err := <-errChan
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}

	if r.tickCount.Load() != 1 {
		t.Errorf("Expected tickCount=1, got %d", r.tickCount.Load())
	}
}

func TestBusRouter_ExecLoop(t *testing.T) {
	r := NewRouter(10)

	var barHandled bool
	r.OnBar = func(ctx context.Context, bar common.Bar) {
		barHandled = true
	}

	fed := false
	sourceDone := errors.New("source done")
	feed := func() error {
		if fed {
			return sourceDone
		}
		fed = true
		return r.Post(BarEvent, common.Bar{})
	}

	errChan := r.ExecLoop(context.Background(), feed)

	err := <-errChan
	if !errors.Is(err, sourceDone) {
		t.Errorf("Expected source error, got %v", err)
	}

	if !barHandled {
		t.Error("Bar handler not called")
	}
}

func TestBusRouter_Statistics(t *testing.T) {
	r := NewRouter(10)
	r.OnTick = func(ctx context.Context, tick common.Tick) {}
	r.OnBar = func(ctx context.Context, bar common.Bar) {}

	ctx := context.Background()
	_ = r.dispatch(ctx, event{TickEvent, common.Tick{}})
	_ = r.dispatch(ctx, event{TickEvent, common.Tick{}})
	_ = r.dispatch(ctx, event{BarEvent, common.Bar{}})

	s := r.Statistics()
	if s.TicksDispatched != 2 {
		t.Errorf("Expected TicksDispatched=2, got %d", s.TicksDispatched)
	}
	if s.BarsDispatched != 1 {
		t.Errorf("Expected BarsDispatched=1, got %d", s.BarsDispatched)
	}
}

func TestMergeHandlers_InvokesAllInOrder(t *testing.T) {
	var order []int
	merged := MergeHandlers(
		func(ctx context.Context, tick common.Tick) { order = append(order, 1) },
		func(ctx context.Context, tick common.Tick) { order = append(order, 2) },
	)

	merged(context.Background(), common.Tick{})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected handlers to run in registration order, got %v", order)
	}
}

func TestBusRouter_DispatchInvalidPayload(t *testing.T) {
	r := NewRouter(10)
	r.OnTick = func(ctx context.Context, tick common.Tick) {}

	if err := r.dispatch(context.Background(), event{TickEvent, "not a tick"}); err == nil {
		t.Error("Expected type assertion error")
	}
	if err := r.dispatch(context.Background(), event{EventId(99), nil}); err == nil {
		t.Error("Expected unsupported event error")
	}
}
