package middleware

import (
	"context"
	"time"

	"github.com/peter-kozarec/resample/pkg/bus"
	"github.com/peter-kozarec/resample/pkg/common"
	"go.uber.org/zap"
)

type Performance struct {
	logger *zap.Logger

	totalTickHandlerDur time.Duration
	totalBarHandlerDur  time.Duration
}

func NewPerformance(logger *zap.Logger) *Performance {
	return &Performance{
		logger: logger,
	}
}

func (p *Performance) WithTick(handler bus.TickEventHandler) bus.TickEventHandler {
	return func(ctx context.Context, tick common.Tick) {
		startTime := time.Now()
		handler(ctx, tick)
		p.totalTickHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) WithBar(handler bus.BarEventHandler) bus.BarEventHandler {
	return func(ctx context.Context, bar common.Bar) {
		startTime := time.Now()
		handler(ctx, bar)
		p.totalBarHandlerDur += time.Since(startTime)
	}
}

func (p *Performance) PrintStatistics() {
	p.logger.Info("handler durations",
		zap.Duration("tick_handlers", p.totalTickHandlerDur),
		zap.Duration("bar_handlers", p.totalBarHandlerDur))
}
