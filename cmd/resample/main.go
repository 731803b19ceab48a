package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/peter-kozarec/resample/internal/dbg"
	"github.com/peter-kozarec/resample/pkg/bus"
	"github.com/peter-kozarec/resample/pkg/common"
	"github.com/peter-kozarec/resample/pkg/data/duckdb"
	"github.com/peter-kozarec/resample/pkg/datasource"
	"github.com/peter-kozarec/resample/pkg/datasource/historical"
	"github.com/peter-kozarec/resample/pkg/datasource/live"
	"github.com/peter-kozarec/resample/pkg/middleware"
	"github.com/peter-kozarec/resample/pkg/tools/resampler"
)

type tickSource interface {
	Close()
	GetNext() (common.Tick, error)
}

func main() {
	configPath := flag.String("config", ".", "directory containing resample.yaml")
	verbose := flag.Bool("verbose", false, "debug logging and per-bar output")
	flag.Parse()

	logger := dbg.NewLogger("resample", *verbose)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	priceMode, err := cfg.priceMode()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	src, err := openSource(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("error opening tick source", zap.Error(err))
	}
	defer src.Close()

	router := bus.NewRouter(cfg.RouterEventCapacity)

	rs := resampler.New(router, priceMode)
	for _, code := range cfg.Timeframes {
		if err := rs.AddCode(cfg.Symbol, code); err != nil {
			logger.Fatal("error registering timeframe", zap.String("code", code), zap.Error(err))
		}
	}

	monitorFlags := middleware.MonitorNone
	if *verbose {
		monitorFlags = middleware.MonitorBars
	}
	monitor := middleware.NewMonitor(monitorFlags)
	telemetry := middleware.NewTelemetry(logger)

	barSink := bus.BarEventHandler(middleware.NoopBarHdl)
	if cfg.OutputDatabase != "" {
		writer := duckdb.NewWriter(cfg.OutputDatabase)
		if err := writer.Connect(); err != nil {
			logger.Fatal("error opening output database", zap.Error(err))
		}
		defer writer.Close()

		barSink = func(ctx context.Context, bar common.Bar) {
			if err := writer.WriteBar(ctx, bar); err != nil {
				logger.Error("error writing bar", zap.Error(err))
			}
		}
	}

	router.OnTick = telemetry.WithTick(monitor.WithTick(rs.OnTick))
	router.OnBar = telemetry.WithBar(monitor.WithBar(barSink))

	defer telemetry.PrintStatistics()

	done := router.ExecLoop(ctx, datasource.CreateTickDispatcher(router, src))
	if err := <-done; err != nil && !sourceDrained(err) {
		logger.Error("error during resampling", zap.Error(err))
	}

	router.Statistics().Print()
	logger.Info("done")
}

func openSource(ctx context.Context, cfg *Config, logger *zap.Logger) (tickSource, error) {
	switch {
	case cfg.TickFile != "":
		src := historical.NewTickSource(cfg.Symbol, cfg.TickFile)
		if err := src.Open(); err != nil {
			return nil, err
		}
		return src, nil
	case cfg.InputDatabase != "":
		from, to, err := cfg.timeRange()
		if err != nil {
			return nil, err
		}
		src := duckdb.NewTickSource(cfg.InputDatabase, cfg.Symbol, from, to)
		if err := src.Open(); err != nil {
			return nil, err
		}
		return src, nil
	default:
		src := live.NewSource(cfg.FeedURL, cfg.Symbol, logger)
		if err := src.Connect(ctx); err != nil {
			return nil, err
		}
		return src, nil
	}
}

func sourceDrained(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, historical.ErrEof) ||
		errors.Is(err, duckdb.ErrEof) ||
		errors.Is(err, live.ErrClosed)
}
