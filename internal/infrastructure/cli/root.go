package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdkit/internal/app"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/commands"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// In feeds confirmations and the interactive session; defaults to stdin.
	In io.Reader
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}
	in := opts.In
	if in == nil {
		in = os.Stdin
	}

	clip := NewClipboard()
	container.DoctorService.Clipboard = clip

	env := &commands.Env{
		Container: container,
		Clipboard: clip,
	}

	root := &cobra.Command{
		Use:   "cmdkit",
		Short: "cmdkit - command fragment workbench",
		Long: "cmdkit assembles shell commands from fragments, keeps a list of saved commands " +
			"with CSV export and import, and can ask an OpenAI-compatible model to generate commands.",
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			env.Confirmer = NewPrompter(in, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, env, in)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return container.Close()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewAssembleCommand(env),
		commands.NewSplitCommand(),
		commands.NewCSVCommand(env),
		commands.NewAICommand(env),
		commands.NewGenerateCommand(env),
		commands.NewConfigCommand(container),
		commands.NewDoctorCommand(env),
		commands.NewVersionCommand(),
	)
	return root, nil
}

func runSession(cmd *cobra.Command, env *commands.Env, in io.Reader) error {
	out := cmd.OutOrStdout()
	lines := NewLineReader(in, out, replPrompt)
	renderer := helpers.NewRenderer(out, env.Container.Config.UI.Color)

	session := NewSession(nil, lines, renderer)
	wb, err := env.Workbench(session)
	if err != nil {
		return err
	}
	session.wb = wb
	return session.Run(cmd.Context())
}
