package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(env *Env) *cobra.Command {
	var online bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := env.Container.DoctorService
			if svc == nil {
				return errors.New(ErrDoctorServiceUnavailable)
			}

			report, err := svc.Run(cmd.Context(), online)

			// Display report even if there were errors
			env.Renderer(cmd.OutOrStdout()).HealthReport(report)

			if err != nil {
				return fmt.Errorf("diagnostics completed with errors: %w", err)
			}
			if report.HasErrors() {
				return errors.New("diagnostics reported failures")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&online, "online", false, "Also test the saved AI endpoint")
	return cmd
}
