// Package cli wires configuration, logging and the layout for CLI commands.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbtile/internal/application/port"
	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/build"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	"github.com/bnema/dumbtile/internal/infrastructure/metrics"
	"github.com/bnema/dumbtile/internal/logging"
)

// Options override configuration from command-line flags.
type Options struct {
	ConfigDir string
	LogLevel  string
	LogFormat string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Metrics       *metrics.LayoutMetrics

	// Context with logger
	ctx context.Context
}

// NewApp creates a new CLI application with all dependencies.
// Configuration problems are logged and fall back to defaults.
func NewApp(opts Options) (*App, error) {
	mgr, loadErr := loadConfig(opts.ConfigDir)
	cfg := config.DefaultConfig()
	if mgr != nil && loadErr == nil {
		cfg = mgr.Get()
	}

	level := firstNonEmpty(opts.LogLevel, cfg.Logging.Level)
	format := firstNonEmpty(opts.LogFormat, cfg.Logging.Format)
	if format != config.LogFormatJSON {
		format = config.LogFormatConsole
	}
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     format,
		TimeFormat: "15:04:05",
		Output:     os.Stderr,
	})
	ctx := logging.WithContext(context.Background(), logger)

	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("using default configuration")
	} else {
		logger.Debug().Str("config_file", mgr.GetConfigFile()).Msg("configuration loaded")
	}

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		ctx:           ctx,
	}
	if cfg.Metrics.Enabled {
		app.Metrics = metrics.NewLayoutMetrics()
	}
	return app, nil
}

func loadConfig(dir string) (*config.Manager, error) {
	var (
		mgr *config.Manager
		err error
	)
	if dir != "" {
		mgr, err = config.NewManagerWithDir(dir)
	} else {
		mgr, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return mgr, err
	}
	return mgr, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return logging.FromContext(a.Ctx())
}

// NewLayout creates the layout use case from configuration.
func (a *App) NewLayout() *usecase.ManageLayoutUseCase {
	var m port.LayoutMetrics
	if a.Metrics != nil {
		m = a.Metrics
	}
	return usecase.NewManageLayoutUseCase(m, usecase.FallbackSize{
		Width:  a.Config.Layout.FallbackWidth,
		Height: a.Config.Layout.FallbackHeight,
	})
}

// NewLayoutState creates a layout state seeded with the configured ratio hint.
func (a *App) NewLayoutState(layout *usecase.ManageLayoutUseCase) *entity.LayoutState {
	return layout.RecommendMainPaneRatio(a.Ctx(), a.Config.Layout.InitialRatio, entity.NewLayoutState())
}
