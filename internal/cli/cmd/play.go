package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/cli/model"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	"github.com/bnema/dumbtile/internal/logging"
)

const metricsShutdownTimeout = 2 * time.Second

var playScreen string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Try the layout interactively",
	Long: `Open an interactive playground where keys add, remove, focus and swap windows
on a simulated screen, with a live preview of the computed frames.

When metrics are enabled in the configuration, layout counters are served on
metrics.listen_addr under /metrics while the playground runs.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringVar(&playScreen, "screen", "0,0,1920,1080", "simulated screen as X,Y,W,H or WxH")
}

// shortID returns the first group of a random UUID, enough to tell playground windows apart.
func shortID() string {
	id, _, _ := strings.Cut(uuid.NewString(), "-")
	return id
}

func runPlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "play")
	log := logging.FromContext(ctx)

	screen, err := parseScreen(playScreen)
	if err != nil {
		return err
	}

	stopMetrics := serveMetrics(ctx, app)
	defer stopMetrics()

	m := model.NewPlaygroundModel(ctx, app.Theme, model.PlaygroundConfig{
		Layout:        app.NewLayout(),
		Screen:        screen,
		InitialRatio:  app.Config.Layout.InitialRatio,
		NewID:         shortID,
		PreviewWidth:  app.Config.Preview.Width,
		PreviewHeight: app.Config.Preview.Height,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if mgr := app.ConfigManager; mgr != nil {
		mgr.OnConfigChange(func(_ *config.Config) {
			p.Send(model.ConfigReloadedMsg{Path: mgr.GetConfigFile()})
		})
		if err := mgr.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playground: %w", err)
	}
	return nil
}

// serveMetrics starts the metrics endpoint when enabled and returns its shutdown func.
func serveMetrics(ctx context.Context, app *cli.App) func() {
	if app.Metrics == nil {
		return func() {}
	}
	log := logging.FromContext(ctx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", app.Metrics.Handler())
	srv := &http.Server{
		Addr:              app.Config.Metrics.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), metricsShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("metrics server shutdown")
		}
	}
}
