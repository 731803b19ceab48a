// Package live streams ticks from a websocket feed that delivers one JSON
// quote per message.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/peter-kozarec/resample/pkg/common"
	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

const tickSourceComponentName = "datasource.live"

var (
	ErrClosed       = errors.New("feed closed")
	ErrNotConnected = errors.New("feed not connected")
)

type quoteMessage struct {
	Symbol    string    `json:"symbol"`
	TimeStamp time.Time `json:"ts"`
	Ask       float64   `json:"ask"`
	Bid       float64   `json:"bid"`
	AskVolume float64   `json:"ask_volume"`
	BidVolume float64   `json:"bid_volume"`
}

type Source struct {
	url    string
	symbol string
	logger *zap.Logger

	conn      *websocket.Conn
	ticks     chan common.Tick
	ctx       context.Context
	ctxCancel context.CancelFunc
}

func NewSource(url, symbol string, logger *zap.Logger) *Source {
	return &Source{
		url:    url,
		symbol: symbol,
		logger: logger,
		ticks:  make(chan common.Tick, 1024),
	}
}

func (s *Source) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return err
	}

	s.conn = conn
	s.ctx, s.ctxCancel = context.WithCancel(ctx)
	go s.read()
	return nil
}

func (s *Source) Close() {
	if s.ctxCancel != nil {
		s.ctxCancel()
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
}

// GetNext blocks until the feed delivers the next tick for the configured
// symbol. It returns ErrClosed once the connection is gone and
// ErrNotConnected before Connect has succeeded.
func (s *Source) GetNext() (common.Tick, error) {
	if s.ctx == nil {
		return common.Tick{}, ErrNotConnected
	}
	select {
	case tick, ok := <-s.ticks:
		if !ok {
			return common.Tick{}, ErrClosed
		}
		return tick, nil
	case <-s.ctx.Done():
		return common.Tick{}, ErrClosed
	}
}

func (s *Source) read() {
	defer close(s.ticks)

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
			_, message, err := s.conn.ReadMessage()
			if err != nil {
				s.logger.Warn("cannot read data", zap.Error(err))
				return
			}

			var msg quoteMessage
			if err := json.Unmarshal(message, &msg); err != nil {
				s.logger.Warn("unmarshal failed", zap.ByteString("raw", message), zap.Error(err))
				continue
			}
			if msg.Symbol != "" && msg.Symbol != s.symbol {
				continue
			}

			tick := common.Tick{
				Ask:       fixed.FromFloat64(msg.Ask),
				Bid:       fixed.FromFloat64(msg.Bid),
				AskVolume: fixed.FromFloat64(msg.AskVolume),
				BidVolume: fixed.FromFloat64(msg.BidVolume),
				Source:    tickSourceComponentName,
				Symbol:    s.symbol,
				TimeStamp: msg.TimeStamp,
			}

			select {
			case s.ticks <- tick:
			default:
				s.logger.Warn("tick buffer full, dropping quote",
					zap.Time("ts", tick.TimeStamp))
			}
		}
	}
}
