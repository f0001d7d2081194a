package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	internalschemas "github.com/jonathan/cv-analyzer/internal/schemas"
	"github.com/jonathan/cv-analyzer/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against one of the analyzer's schemas",
	Long: fmt.Sprintf(`Validates a JSON file against an embedded schema (%s)
or, when --schema is a path to a file, against that schema.`, strings.Join(schemas.All, ", ")),
	RunE: runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Embedded schema name or path to a schema file (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate (required)")

	for _, name := range []string{"schema", "json"} {
		if err := validateCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	var err error
	if slices.Contains(schemas.All, validateSchema) {
		err = internalschemas.ValidateFile(validateSchema, validateJSON)
	} else {
		err = internalschemas.ValidateJSON(validateSchema, validateJSON)
	}
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %v\n", err)
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Validation passed")
	return nil
}
