package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), renderVersion(styles.NewTheme(), buildInfo))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func renderVersion(t *styles.Theme, info build.Info) string {
	version := info.Version
	if version == "" {
		version = "dev"
	}
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, t.Subtle.Render(fmt.Sprintf("%-8s", label)), t.Normal.Render(value))
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, t.Title.Render("dumbtile"), " ", t.Badge.Render(version)),
		row("commit", info.Commit),
		row("built", info.BuildDate),
		row("go", info.GoVersion),
		row("repo", build.RepoURL()),
	)
}
