package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
)

// NewGenerateCommand asks the configured model for a command.
func NewGenerateCommand(env *Env) *cobra.Command {
	var (
		copyCmd bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate <prompt>...",
		Short: "Generate a command from a natural-language prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")
			if strings.TrimSpace(prompt) == "" {
				return errors.New(ErrPromptRequired)
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			wb, err := env.Workbench(nil)
			if err != nil {
				return err
			}
			if n, err := wb.LoadAIConfig(ctx); err != nil {
				return &NoticeError{Notice: n, Err: err}
			}

			spinner := newStderrSpinner(cmd)
			spinner.Start()
			n, err := wb.GenerateCommand(ctx, prompt)
			spinner.Stop()
			if err != nil {
				return &NoticeError{Notice: workbench.Notice{Kind: workbench.NoticeError, Text: wb.Output()}, Err: err}
			}

			fmt.Fprintln(cmd.OutOrStdout(), wb.Output())
			r := env.Renderer(cmd.ErrOrStderr())
			r.Notice(n)
			if copyCmd {
				n, err := wb.CopyCommand()
				return report(r, n, err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyCmd, "copy", "c", false, "Copy the generated command to the clipboard")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the request after this long (0 waits indefinitely)")
	return cmd
}

// newStderrSpinner animates only when stderr is a terminal.
func newStderrSpinner(cmd *cobra.Command) interface {
	Start()
	Stop()
} {
	if f, ok := cmd.ErrOrStderr().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return helpers.NewSpinner(f, workbench.MsgGenerating)
	}
	return noSpinner{}
}

type noSpinner struct{}

func (noSpinner) Start() {}

func (noSpinner) Stop() {}
