package cmd

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/infrastructure/scenario"
)

type replayOptions struct {
	jobs   int
	frames bool
}

var replayOpts replayOptions

var replayCmd = &cobra.Command{
	Use:   "replay FILE...",
	Short: "Replay scenario files and check their expectations",
	Long: `Run each scenario file against a fresh layout and report expectation mismatches.

Scenarios run concurrently, each with its own host and layout state.
The command fails if any scenario cannot be loaded or has a mismatch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().IntVarP(&replayOpts.jobs, "jobs", "j", runtime.NumCPU(), "scenarios to run at once")
	replayCmd.Flags().BoolVar(&replayOpts.frames, "frames", false, "print the final frames of each scenario")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return replayFiles(app.Ctx(), cmd.OutOrStdout(), app, args, replayOpts)
}

func replayFiles(ctx context.Context, out io.Writer, app *cli.App, paths []string, opts replayOptions) error {
	results := make([]*scenario.Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, path := range paths {
		g.Go(func() error {
			sc, err := scenario.Load(path)
			if err != nil {
				return err
			}
			result, err := scenario.Run(gctx, sc, app.NewLayout())
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	t := app.Theme
	failed := 0
	for i, result := range results {
		if err := result.Err(); err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n%s\n", t.ErrorStyle.Render("FAIL"), paths[i], err)
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", t.SuccessStyle.Render("ok  "), result.Name, t.Subtle.Render(fmt.Sprintf("(%d steps)", len(result.Steps))))

		if opts.frames {
			rows := styles.FrameRows(result.Frames(), result.State.Windows, nil)
			fmt.Fprintln(out, styles.RenderFrameTable(t, rows))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}
