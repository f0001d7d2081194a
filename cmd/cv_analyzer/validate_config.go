package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateConfigCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate the configuration and print the effective settings",
	RunE:  runValidateConfig,
}

var validateConfigPrint bool

func init() {
	validateConfigCmd.Flags().BoolVar(&validateConfigPrint, "print", false, "Print the effective configuration as JSON")

	rootCmd.AddCommand(validateConfigCmd)
}

func runValidateConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Configuration invalid: %v\n", err)
		return err
	}
	if validateConfigPrint {
		effective := *cfg
		if effective.DatabaseURL != "" {
			effective.DatabaseURL = "(set)"
		}
		if err := writeJSON(cmd.OutOrStdout(), "", effective); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")
	return nil
}
