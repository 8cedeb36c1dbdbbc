package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/doeshing/cmdkit/internal/app"
	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Env is what every subcommand needs besides its flags.
type Env struct {
	Container *app.Container
	Clipboard ports.Clipboard
	Confirmer ports.Confirmer
}

// Renderer builds a renderer honoring ui.color.
func (e *Env) Renderer(out io.Writer) *helpers.Renderer {
	return helpers.NewRenderer(out, e.Container.Config.UI.Color)
}

// Workbench builds a fresh controller with the saved AI configuration loaded.
func (e *Env) Workbench(confirmer ports.Confirmer) (*workbench.Controller, error) {
	return e.Container.NewWorkbench(e.Clipboard, confirmer)
}

// NoticeError carries a failed action's notice as the command error.
type NoticeError struct {
	Notice workbench.Notice
	Err    error
}

func (e *NoticeError) Error() string {
	if e.Notice.Text != "" {
		return e.Notice.Text
	}
	return e.Err.Error()
}

func (e *NoticeError) Unwrap() error {
	return e.Err
}

// report renders a successful notice or turns a failed one into an error.
func report(r *helpers.Renderer, n workbench.Notice, err error) error {
	if err != nil {
		return &NoticeError{Notice: n, Err: err}
	}
	r.Notice(n)
	return nil
}

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%s: %q", ErrIndexNotNumber, arg)
	}
	return i, nil
}
