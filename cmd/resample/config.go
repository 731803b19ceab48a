package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/peter-kozarec/resample/pkg/tools/resampler"
)

type Config struct {
	Symbol              string   `mapstructure:"symbol"`
	TickFile            string   `mapstructure:"tick_file"`
	InputDatabase       string   `mapstructure:"input_database"`
	FeedURL             string   `mapstructure:"feed_url"`
	StartTime           string   `mapstructure:"start_time"`
	EndTime             string   `mapstructure:"end_time"`
	Timeframes          []string `mapstructure:"timeframes"`
	PriceMode           string   `mapstructure:"price_mode"`
	OutputDatabase      string   `mapstructure:"output_database"`
	RouterEventCapacity int      `mapstructure:"router_event_capacity"`
}

func loadConfig(configPath string) (*Config, error) {
	viper.SetConfigName("resample")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)

	viper.SetDefault("timeframes", []string{"M1", "M15", "H1", "D1"})
	viper.SetDefault("price_mode", "mid")
	viper.SetDefault("output_database", "bars.duckdb")
	viper.SetDefault("router_event_capacity", 1024)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Symbol == "" {
		return nil, fmt.Errorf("symbol must be set")
	}

	sources := 0
	for _, s := range []string{cfg.TickFile, cfg.InputDatabase, cfg.FeedURL} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return nil, fmt.Errorf("exactly one of tick_file, input_database, feed_url must be set")
	}
	return &cfg, nil
}

func (c *Config) priceMode() (resampler.PriceMode, error) {
	switch c.PriceMode {
	case "ask":
		return resampler.PriceModeAsk, nil
	case "bid":
		return resampler.PriceModeBid, nil
	case "mid":
		return resampler.PriceModeMid, nil
	default:
		return 0, fmt.Errorf("unknown price mode %q", c.PriceMode)
	}
}

// timeRange bounds the database replay. Unset limits cover everything.
func (c *Config) timeRange() (time.Time, time.Time, error) {
	from := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2200, time.January, 1, 0, 0, 0, 0, time.UTC)

	var err error
	if c.StartTime != "" {
		if from, err = time.Parse(time.RFC3339, c.StartTime); err != nil {
			return from, to, fmt.Errorf("invalid start_time: %w", err)
		}
	}
	if c.EndTime != "" {
		if to, err = time.Parse(time.RFC3339, c.EndTime); err != nil {
			return from, to, fmt.Errorf("invalid end_time: %w", err)
		}
	}
	if !from.Before(to) {
		return from, to, fmt.Errorf("start_time must be before end_time")
	}
	return from, to, nil
}
