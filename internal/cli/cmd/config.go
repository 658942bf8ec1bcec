package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where the configuration lives, print the effective values, or create a default file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, config file and DUMBTILE_* environment variables are merged.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func configManager() (*config.Manager, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	if app.ConfigManager == nil {
		return nil, fmt.Errorf("config manager unavailable")
	}
	return app.ConfigManager, nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	mgr, err := configManager()
	if err != nil {
		return err
	}

	path := mgr.GetConfigFile()
	note := ""
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		note = GetApp().Theme.Subtle.Render(" (not created, run 'dumbtile config init')")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), path+note)
	return err
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	return config.Encode(cmd.OutOrStdout(), app.Config)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	mgr, err := configManager()
	if err != nil {
		return err
	}

	path, err := mgr.CreateDefaultConfig()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration file: %s\n", path)
	return err
}
