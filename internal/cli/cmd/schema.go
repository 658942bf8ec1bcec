package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/infrastructure/scenario"
)

const schemaFilePerm = 0o644

var schemaOutput string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of scenario files",
	Long: `Print the JSON schema describing scenario files, for editor completion
and validation. With --output the schema is written to a file.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "write the schema to this file")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := json.MarshalIndent(scenario.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if schemaOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if err := os.WriteFile(schemaOutput, data, schemaFilePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", schemaOutput)
	return nil
}
