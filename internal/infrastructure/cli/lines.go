package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LineReader yields one input line at a time. io.EOF ends the session.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

// NewLineReader uses terminal line editing when in is a TTY and plain
// buffered reads otherwise.
func NewLineReader(in io.Reader, out io.Writer, prompt string) LineReader {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		rw := struct {
			io.Reader
			io.Writer
		}{f, out}
		return &terminalLines{fd: int(f.Fd()), t: term.NewTerminal(rw, prompt)}
	}
	return &bufferedLines{in: bufio.NewReader(in), out: out, prompt: prompt}
}

// terminalLines switches the terminal to raw mode only while a line is read,
// so output between reads behaves normally.
type terminalLines struct {
	fd int
	t  *term.Terminal
}

func (l *terminalLines) ReadLine() (string, error) {
	oldState, err := term.MakeRaw(l.fd)
	if err != nil {
		return "", err
	}
	if width, height, err := term.GetSize(l.fd); err == nil {
		l.t.SetSize(width, height)
	}
	line, err := l.t.ReadLine()
	if restoreErr := term.Restore(l.fd, oldState); err == nil {
		err = restoreErr
	}
	return line, err
}

func (l *terminalLines) SetPrompt(prompt string) {
	l.t.SetPrompt(prompt)
}

type bufferedLines struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func (l *bufferedLines) ReadLine() (string, error) {
	fmt.Fprint(l.out, l.prompt)
	line, err := l.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return trimNewline(line), nil
}

func (l *bufferedLines) SetPrompt(prompt string) {
	l.prompt = prompt
}

func trimNewline(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
