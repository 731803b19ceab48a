package duckdb

import (
	"context"
	"errors"
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
)

const tickSourceComponentName = "datasource.duckdb"

var ErrEof = errors.New("EOF")

// TickSource replays the recorded ticks of one symbol through the pull
// interface the dispatcher expects. LoadTicks runs on its own goroutine
// and hands ticks over a bounded channel, GetNext is single consumer.
type TickSource struct {
	reader *Reader
	symbol string
	from   time.Time
	to     time.Time

	ticks     chan common.Tick
	result    chan error
	ctxCancel context.CancelFunc

	err      error
	finished bool
}

func NewTickSource(dataSourceName, symbol string, from, to time.Time) *TickSource {
	return &TickSource{
		reader: NewReader(dataSourceName),
		symbol: symbol,
		from:   from,
		to:     to,
		ticks:  make(chan common.Tick, 1024),
		result: make(chan error, 1),
	}
}

func (t *TickSource) Open() error {
	if err := t.reader.Connect(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.ctxCancel = cancel

	go func() {
		defer close(t.ticks)
		t.result <- t.reader.LoadTicks(ctx, t.symbol, t.from, t.to, func(tick common.Tick) error {
			tick.Source = tickSourceComponentName
			select {
			case t.ticks <- tick:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return nil
}

func (t *TickSource) Close() {
	if t.ctxCancel != nil {
		t.ctxCancel()
	}
	t.reader.Close()
}

func (t *TickSource) GetNext() (common.Tick, error) {
	tick, ok := <-t.ticks
	if !ok {
		if !t.finished {
			t.finished = true
			t.err = <-t.result
		}
		if t.err != nil {
			return common.Tick{}, t.err
		}
		return common.Tick{}, ErrEof
	}
	return tick, nil
}
