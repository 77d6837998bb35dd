package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-scorer/internal/schemas"
	schemafiles "github.com/jonathan/resume-scorer/schemas"
	"github.com/spf13/cobra"
)

var (
	validateKind string
	validateJSON string
)

// schemaForKind maps --kind values to embedded schema names
var schemaForKind = map[string]string{
	"job":    schemafiles.JobRequirements,
	"resume": schemafiles.ResumeContent,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a job or resume JSON file against its schema",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "Document kind: job or resume (required)")
	validateCmd.Flags().StringVar(&validateJSON, "json", "", "Path to the JSON file (required)")

	if err := validateCmd.MarkFlagRequired("kind"); err != nil {
		panic(fmt.Sprintf("failed to mark kind flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	schemaName, ok := schemaForKind[validateKind]
	if !ok {
		return fmt.Errorf("unknown kind %q (want job or resume)", validateKind)
	}

	out := cmd.OutOrStdout()
	err := schemas.ValidateJSON(schemaName, validateJSON)
	if err == nil {
		_, _ = fmt.Fprintf(out, "Validation passed: %s is a valid %s document\n", validateJSON, validateKind)
		return nil
	}

	var verr *schemas.ValidationError
	if errors.As(err, &verr) {
		_, _ = fmt.Fprintln(out, "Validation failed:")
		for _, fe := range verr.Errors {
			_, _ = fmt.Fprintf(out, "  - %s: %s\n", fe.Field, fe.Message)
		}
		return fmt.Errorf("%s has %d schema error(s)", validateJSON, len(verr.Errors))
	}
	return err
}
