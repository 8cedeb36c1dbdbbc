package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdkit/internal/domain"
)

// NewAICommand manages the stored AI endpoint configuration.
func NewAICommand(env *Env) *cobra.Command {
	aiCmd := &cobra.Command{
		Use:   "ai",
		Short: "Configure the OpenAI-compatible endpoint",
	}
	aiCmd.AddCommand(
		newAISetCommand(env),
		newAIShowCommand(env),
		newAITestCommand(env),
	)
	return aiCmd
}

func newAISetCommand(env *Env) *cobra.Command {
	var key, host, model string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save API key, host and model",
		Long:  "Saves the AI configuration. The host is used as a prefix, so it should end in '/'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := env.Workbench(nil)
			if err != nil {
				return err
			}
			n, err := wb.SaveAIConfig(cmd.Context(), domain.AIConfig{APIKey: key, APIHost: host, ModelName: model})
			return report(env.Renderer(cmd.OutOrStdout()), n, err)
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "API key")
	cmd.Flags().StringVar(&host, "host", "", "API host, e.g. https://api.openai.com/v1/")
	cmd.Flags().StringVar(&model, "model", "", "Model name (default from config)")
	return cmd
}

func newAIShowCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved AI configuration with the key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := env.Workbench(nil)
			if err != nil {
				return err
			}
			if n, err := wb.LoadAIConfig(cmd.Context()); err != nil {
				return &NoticeError{Notice: n, Err: err}
			}
			cfg := wb.AIConfig()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API key:  %s\n", cfg.MaskedKey())
			fmt.Fprintf(out, "API host: %s\n", cfg.APIHost)
			fmt.Fprintf(out, "Model:    %s\n", cfg.ModelName)
			return nil
		},
	}
}

func newAITestCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Check the endpoint by listing its models",
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := env.Workbench(nil)
			if err != nil {
				return err
			}
			if n, err := wb.LoadAIConfig(cmd.Context()); err != nil {
				return &NoticeError{Notice: n, Err: err}
			}
			n, err := wb.TestAIConnection(cmd.Context())
			return report(env.Renderer(cmd.OutOrStdout()), n, err)
		},
	}
}
