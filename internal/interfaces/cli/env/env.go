// Package env holds the flags shared by every command and the start-up
// sequence that turns them into a loaded configuration.
package env

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/centreconnect/centreconnect/internal/infrastructure/config"
	"github.com/centreconnect/centreconnect/internal/shared/biztime"
	"github.com/centreconnect/centreconnect/internal/shared/format"
	"github.com/centreconnect/centreconnect/internal/shared/logger"
)

// Options are the global flags of the CLI.
type Options struct {
	Env        string
	ConfigPath string
	Verbose    bool
}

// Bind registers the options as persistent flags on cmd.
func (o *Options) Bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.Env, "env", "e", "", "Mode override (debug, release, test)")
	cmd.PersistentFlags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false, "Log at debug level regardless of logger.level")
}

// Init loads the configuration and initializes logging and the business
// timezone from it.
func Init(o *Options) (*config.Config, error) {
	cfg, err := config.Load(o.Env, o.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.App.IsDebug()); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if o.Verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	if err := biztime.Init(cfg.Locale.Timezone); err != nil {
		logger.Error("business timezone unavailable", "timezone", cfg.Locale.Timezone, "error", err)
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Debug("configuration loaded",
		"mode", cfg.App.Mode,
		"locale", cfg.Locale.Tag,
		"currency", cfg.Locale.Currency,
		"timezone", cfg.Locale.Timezone)

	return cfg, nil
}

// FormatterOptions translates the locale and slug sections into formatter
// options. Ages are measured against today's date in the business timezone.
// Later options passed to format.New override these.
func FormatterOptions(cfg *config.Config) ([]format.Option, error) {
	loc, err := time.LoadLocation(cfg.Locale.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Locale.Timezone, err)
	}

	return []format.Option{
		format.WithLocale(cfg.Locale.Tag),
		format.WithCurrency(cfg.Locale.Currency),
		format.WithLocation(loc),
		format.WithClock(today),
		format.WithSlugTrimEdges(cfg.Slug.TrimEdges),
		format.WithLogger(logger.WithComponent("format")),
	}, nil
}

func today() time.Time {
	return biztime.StartOfDay(biztime.Now())
}
