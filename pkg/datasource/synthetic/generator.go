// Package synthetic generates a random walk tick stream, mainly for tests
// and demos that should not depend on recorded data.
package synthetic

import (
	"errors"
	"math/rand"
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

const tickGeneratorComponentName = "datasource.synthetic.generator"

var ErrEof = errors.New("EOF")

// TickGenerator produces geometric-brownian-motion mid prices with a
// fixed half spread at randomized tick intervals.
type TickGenerator struct {
	symbol string
	rng    *rand.Rand

	halfSpread fixed.Point
	sigma      float64
	steps      int64
	t          int64

	avgTickInterval time.Duration
	tickVariability float64
	avgVolume       fixed.Point

	lastTime  time.Time
	lastPrice float64
}

func NewTickGenerator(symbol string, rng *rand.Rand, startTime time.Time, startPrice, spread fixed.Point, sigma float64, steps int64) *TickGenerator {
	price, _ := startPrice.Float64()
	return &TickGenerator{
		symbol:          symbol,
		rng:             rng,
		halfSpread:      spread.DivInt(2),
		sigma:           sigma,
		steps:           steps,
		avgTickInterval: 333 * time.Millisecond,
		tickVariability: 0.3,
		avgVolume:       fixed.FromInt(100, 0),
		lastTime:        startTime,
		lastPrice:       price,
	}
}

func (e *TickGenerator) SetTickParameters(avgInterval time.Duration, intervalVariability float64, avgVolume fixed.Point) {
	e.avgTickInterval = avgInterval
	e.tickVariability = intervalVariability
	e.avgVolume = avgVolume
}

func (e *TickGenerator) GetNext() (common.Tick, error) {
	var tick common.Tick

	if e.t >= e.steps {
		return tick, ErrEof
	}
	e.t++

	jitter := 1 + e.tickVariability*(2*e.rng.Float64()-1)
	e.lastTime = e.lastTime.Add(time.Duration(float64(e.avgTickInterval) * jitter))
	e.lastPrice *= 1 + e.sigma*e.rng.NormFloat64()

	mid := fixed.FromFloat64(e.lastPrice)
	tick.Ask = mid.Add(e.halfSpread)
	tick.Bid = mid.Sub(e.halfSpread)
	tick.AskVolume = e.avgVolume
	tick.BidVolume = e.avgVolume
	tick.Source = tickGeneratorComponentName
	tick.Symbol = e.symbol
	tick.TimeStamp = e.lastTime

	return tick, nil
}
