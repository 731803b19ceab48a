package duckdb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/peter-kozarec/resample/pkg/common"
)

const barsSchema = `CREATE TABLE IF NOT EXISTS bars (
	symbol     VARCHAR NOT NULL,
	timeframe  VARCHAR NOT NULL,
	open_time  TIMESTAMP NOT NULL,
	close_time TIMESTAMP NOT NULL,
	open       DECIMAL(18, 6) NOT NULL,
	high       DECIMAL(18, 6) NOT NULL,
	low        DECIMAL(18, 6) NOT NULL,
	close      DECIMAL(18, 6) NOT NULL,
	empty      BOOLEAN NOT NULL
)`

type Writer struct {
	dataSourceName string
	db             *sql.DB
}

func NewWriter(dataSourceName string) *Writer {
	return &Writer{
		dataSourceName: dataSourceName,
	}
}

func (w *Writer) Connect() error {
	db, err := sql.Open("duckdb", w.dataSourceName)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	if _, err := db.Exec(barsSchema); err != nil {
		_ = db.Close()
		return fmt.Errorf("error creating bars table: %w", err)
	}
	w.db = db
	return nil
}

func (w *Writer) Close() {
	_ = w.db.Close()
}

func (w *Writer) WriteBar(ctx context.Context, bar common.Bar) error {
	_, err := w.db.ExecContext(ctx,
		`INSERT INTO bars VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bar.Symbol, bar.Timeframe.String(), bar.OpenTime, bar.CloseTime,
		bar.Open.String(), bar.High.String(), bar.Low.String(), bar.Close.String(),
		bar.Empty)
	if err != nil {
		return fmt.Errorf("error inserting bar: %w", err)
	}
	return nil
}
