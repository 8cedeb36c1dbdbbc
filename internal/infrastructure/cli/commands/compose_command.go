package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdkit/internal/domain"
)

// NewAssembleCommand joins fragments the way the editor does.
func NewAssembleCommand(env *Env) *cobra.Command {
	var copyCmd bool

	cmd := &cobra.Command{
		Use:   "assemble <fragment>...",
		Short: "Join fragments into one command",
		Long:  "Trims each fragment, drops empty ones and joins the rest with single spaces.",
		RunE: func(cmd *cobra.Command, args []string) error {
			command := domain.Assemble(args)
			fmt.Fprintln(cmd.OutOrStdout(), command)
			if !copyCmd {
				return nil
			}
			wb, err := env.Workbench(nil)
			if err != nil {
				return err
			}
			wb.Editor().Replace(args)
			n, err := wb.CopyCommand()
			return report(env.Renderer(cmd.ErrOrStderr()), n, err)
		},
	}

	cmd.Flags().BoolVarP(&copyCmd, "copy", "c", false, "Copy the assembled command to the clipboard")
	return cmd
}

// NewSplitCommand prints the fragments a command loads into, one per line.
func NewSplitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split <command>",
		Short: "Split a command into editor fragments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, frag := range domain.SplitCommand(strings.Join(args, " ")) {
				fmt.Fprintln(cmd.OutOrStdout(), frag)
			}
			return nil
		},
	}
}
