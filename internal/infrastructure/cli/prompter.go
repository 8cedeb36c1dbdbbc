package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Prompter implements ports.Confirmer using stdin/stdout.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

// NewPrompter constructs a prompter referencing stdio.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// AssumeYes makes every confirmation succeed without reading input.
func (p *Prompter) AssumeYes(yes bool) {
	p.assumeYes = yes
}

// Confirm asks question and defaults to no.
func (p *Prompter) Confirm(question string) (bool, error) {
	if p.assumeYes {
		return true, nil
	}
	return helpers.PromptForYesNo(p.out, p.in, question, false), nil
}

var _ ports.Confirmer = (*Prompter)(nil)
