package middleware

import (
	"context"

	"github.com/peter-kozarec/resample/pkg/bus"
	"github.com/peter-kozarec/resample/pkg/common"
	"go.uber.org/zap"
)

type Telemetry struct {
	logger *zap.Logger

	tickEventCounter int64
	barEventCounter  int64
	emptyBarCounter  int64
}

func NewTelemetry(logger *zap.Logger) *Telemetry {
	return &Telemetry{
		logger: logger,
	}
}

func (t *Telemetry) WithTick(handler bus.TickEventHandler) bus.TickEventHandler {
	return func(ctx context.Context, tick common.Tick) {
		t.tickEventCounter++
		handler(ctx, tick)
	}
}

func (t *Telemetry) WithBar(handler bus.BarEventHandler) bus.BarEventHandler {
	return func(ctx context.Context, bar common.Bar) {
		t.barEventCounter++
		if bar.Empty {
			t.emptyBarCounter++
		}
		handler(ctx, bar)
	}
}

func (t *Telemetry) PrintStatistics() {
	t.logger.Info("event statistics",
		zap.Int64("tick_events", t.tickEventCounter),
		zap.Int64("bar_events", t.barEventCounter),
		zap.Int64("empty_bars", t.emptyBarCounter))
}
