package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cmdkit/internal/ports"
)

// NewCSVCommand groups one-shot operations on a command CSV file. Each one
// loads the file, applies a single change and writes it back.
func NewCSVCommand(env *Env) *cobra.Command {
	var file string

	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Manage saved commands in a CSV file",
	}
	csvCmd.PersistentFlags().StringVarP(&file, "file", "f", DefaultCSVFlag, "Command CSV file")

	csvCmd.AddCommand(
		newCSVListCommand(env, &file),
		newCSVAddCommand(env, &file),
		newCSVDeleteCommand(env, &file),
		newCSVShowCommand(env, &file),
	)
	return csvCmd
}

func newCSVListCommand(env *Env, file *string) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := helpers.LoadLibrary(env.Container.Files, *file)
			if err != nil {
				return err
			}
			r := env.Renderer(cmd.OutOrStdout())
			if search == "" {
				r.Commands(store.List())
				return nil
			}
			matches := store.Search(search)
			if len(matches) == 0 {
				r.Line(MsgNoMatches)
			}
			for _, m := range matches {
				r.Command(m.Index, m.Record)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show commands whose name, command or note contains this text")
	return cmd
}

func newCSVAddCommand(env *Env, file *string) *cobra.Command {
	var name, note string

	cmd := &cobra.Command{
		Use:   "add <fragment>...",
		Short: "Assemble fragments and append them as a saved command",
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := openLibrary(env, nil, *file)
			if err != nil {
				return err
			}
			wb.Editor().Replace(args)
			wb.SetName(name)
			wb.SetNote(note)
			r := env.Renderer(cmd.OutOrStdout())
			n, err := wb.SaveCommand()
			if err := report(r, n, err); err != nil {
				return err
			}
			_, err = wb.ExportCSV(*file)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Command name")
	cmd.Flags().StringVar(&note, "note", "", "Optional note")
	return cmd
}

func newCSVDeleteCommand(env *Env, file *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the saved command at index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			confirmer := env.Confirmer
			if yes {
				confirmer = nil
			}
			wb, err := openLibrary(env, confirmer, *file)
			if err != nil {
				return err
			}
			n, err := wb.DeleteCommand(index)
			if err != nil {
				return &NoticeError{Notice: n, Err: err}
			}
			env.Renderer(cmd.OutOrStdout()).Notice(n)
			if n.Kind != workbench.NoticeSuccess {
				return nil
			}
			_, err = wb.ExportCSV(*file)
			return err
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func newCSVShowCommand(env *Env, file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Show the fragments, name and note an edit would load",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			store, err := helpers.LoadLibrary(env.Container.Files, *file)
			if err != nil {
				return err
			}
			state, err := store.Edit(index)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name: %s\n", state.Name)
			fmt.Fprintf(out, "Note: %s\n", state.Note)
			r := env.Renderer(out)
			r.Fragments(state.Fragments, domain.Assemble(state.Fragments))
			return nil
		},
	}
}

// openLibrary builds a controller whose store holds the contents of file. A
// file that does not exist yet starts an empty list.
func openLibrary(env *Env, confirmer ports.Confirmer, file string) (*workbench.Controller, error) {
	wb, err := env.Workbench(confirmer)
	if err != nil {
		return nil, err
	}
	if n, err := wb.ImportCSV(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &NoticeError{Notice: n, Err: err}
	}
	return wb, nil
}
