package historical

import (
	"time"

	"github.com/peter-kozarec/resample/pkg/common"
	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

const tickSourceComponentName = "datasource.historical"

// BinaryTick is the on-disk record layout. T must not be padded, the mmap
// source casts raw bytes.
type BinaryTick struct {
	TimeStamp int64
	Bid       float64
	Ask       float64
	BidVolume float64
	AskVolume float64
}

func (binaryTick BinaryTick) ToModelTick(tick *common.Tick) {
	tick.TimeStamp = time.Unix(0, binaryTick.TimeStamp).UTC()
	tick.Ask = fixed.FromFloat64(binaryTick.Ask)
	tick.Bid = fixed.FromFloat64(binaryTick.Bid)
	tick.AskVolume = fixed.FromFloat64(binaryTick.AskVolume)
	tick.BidVolume = fixed.FromFloat64(binaryTick.BidVolume)
}

// TickSource replays a binary tick file sequentially.
type TickSource struct {
	symbol string
	source *Source[BinaryTick]
	index  int64
	count  int64
}

func NewTickSource(symbol, dataSourceName string) *TickSource {
	return &TickSource{
		symbol: symbol,
		source: NewSource[BinaryTick](dataSourceName),
	}
}

func (t *TickSource) Open() error {
	if err := t.source.Open(); err != nil {
		return err
	}
	count, err := t.source.EntryCount()
	if err != nil {
		t.source.Close()
		return err
	}
	t.count = count
	return nil
}

func (t *TickSource) Close() {
	t.source.Close()
}

func (t *TickSource) GetNext() (common.Tick, error) {
	var tick common.Tick

	if t.index >= t.count {
		return tick, ErrEof
	}

	var raw BinaryTick
	if err := t.source.Read(t.index, &raw); err != nil {
		return tick, err
	}
	t.index++

	raw.ToModelTick(&tick)
	tick.Source = tickSourceComponentName
	tick.Symbol = t.symbol
	return tick, nil
}
