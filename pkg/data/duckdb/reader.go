// Package duckdb reads recorded ticks from and appends resampled bars to a
// DuckDB database.
package duckdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/peter-kozarec/resample/pkg/common"
	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

type Reader struct {
	dataSourceName string
	db             *sql.DB
}

func NewReader(dataSourceName string) *Reader {
	return &Reader{
		dataSourceName: dataSourceName,
	}
}

func (r *Reader) Connect() error {
	db, err := sql.Open("duckdb", r.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	r.db = db
	return nil
}

func (r *Reader) Close() {
	_ = r.db.Close()
}

// LoadTicks streams the recorded ticks of one symbol, ordered by
// timestamp, through the handler.
func (r *Reader) LoadTicks(ctx context.Context, symbol string, from, to time.Time, handler func(tick common.Tick) error) error {

	query := fmt.Sprintf(`SELECT ts, ask, bid, ask_volume, bid_volume FROM %s_ticks WHERE ts BETWEEN ? AND ? ORDER BY ts`, symbol)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return fmt.Errorf("error preparing query: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	for rows.Next() {
		var ts time.Time
		var ask, bid, askVolume, bidVolume float64
		if err := rows.Scan(&ts, &ask, &bid, &askVolume, &bidVolume); err != nil {
			return fmt.Errorf("error scanning row: %w", err)
		}
		tick := common.Tick{
			Ask:       fixed.FromFloat64(ask),
			Bid:       fixed.FromFloat64(bid),
			AskVolume: fixed.FromFloat64(askVolume),
			BidVolume: fixed.FromFloat64(bidVolume),
			Symbol:    symbol,
			TimeStamp: ts,
		}
		if err := handler(tick); err != nil {
			return fmt.Errorf("error processing tick: %w", err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error scanning rows: %w", err)
	}

	return nil
}
