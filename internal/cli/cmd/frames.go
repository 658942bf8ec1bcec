package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/entity"
)

type framesOptions struct {
	screen  string
	windows string
	focus   string
	preview bool
	json    bool
}

var framesOpts framesOptions

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Compute frames for a window list",
	Long: `Build the layout tree for an ordered window list and print each window's frame.

The tree is built as if the windows were added in order; with --focus, each
window after the focused one splits it instead of the last window.

Examples:
  dumbtile frames --screen 0,0,1920,1080 --windows term,editor,browser
  dumbtile frames --screen 1000x800 --windows 1,2,3 --focus 1 --preview`,
	RunE: runFrames,
}

func init() {
	rootCmd.AddCommand(framesCmd)
	flags := framesCmd.Flags()
	flags.StringVar(&framesOpts.screen, "screen", "0,0,1920,1080", "screen rectangle as X,Y,W,H or WxH")
	flags.StringVarP(&framesOpts.windows, "windows", "w", "", "comma-separated window ids in insertion order")
	flags.StringVarP(&framesOpts.focus, "focus", "f", "", "focused window id")
	flags.BoolVarP(&framesOpts.preview, "preview", "p", false, "draw a preview of the frames")
	flags.BoolVar(&framesOpts.json, "json", false, "print frames as JSON")
}

func runFrames(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return writeFrames(app.Ctx(), cmd.OutOrStdout(), app, framesOpts)
}

func writeFrames(ctx context.Context, out io.Writer, app *cli.App, opts framesOptions) error {
	screen, err := parseScreen(opts.screen)
	if err != nil {
		return err
	}
	windows := parseWindows(opts.windows)

	layout := app.NewLayout()
	state := app.NewLayoutState(layout)
	state.LastFocused = entity.WindowID(opts.focus)

	assignment := layout.Assign(ctx, windows, screen, state)

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(assignment.Frames)
	}

	if len(windows) == 0 {
		_, err := fmt.Fprintln(out, app.Theme.Subtle.Render("No windows"))
		return err
	}

	rows := styles.FrameRows(assignment.Frames, state.Windows, assignment.Orphans)
	if _, err := fmt.Fprintln(out, styles.RenderFrameTable(app.Theme, rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, app.Theme.Subtle.Render(state.Root.String())); err != nil {
		return err
	}

	if opts.preview {
		order := styles.OrderedIDs(assignment.Frames, state.Windows)
		preview := styles.NewPreview(assignment.Frames, order, screen, app.Config.Preview.Width, app.Config.Preview.Height)
		if _, err := fmt.Fprintln(out, preview.Render(app.Theme)); err != nil {
			return err
		}
	}
	return nil
}
