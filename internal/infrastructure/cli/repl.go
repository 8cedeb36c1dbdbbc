package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
)

const replPrompt = "cmdkit> "

var errQuit = errors.New("quit")

// Session is the interactive workbench: one controller driven by typed
// commands. It replaces the page of inputs and buttons with a line protocol.
type Session struct {
	wb    *workbench.Controller
	r     *helpers.Renderer
	lines LineReader
}

// NewSession binds a controller to a line source and renderer.
func NewSession(wb *workbench.Controller, lines LineReader, r *helpers.Renderer) *Session {
	return &Session{wb: wb, r: r, lines: lines}
}

// Confirm asks through the session's own input so deletes work in raw mode.
func (s *Session) Confirm(question string) (bool, error) {
	s.lines.SetPrompt(question + " [y/N]: ")
	defer s.lines.SetPrompt(replPrompt)
	line, err := s.lines.ReadLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Run reads commands until quit or end of input.
func (s *Session) Run(ctx context.Context) error {
	if n, err := s.wb.LoadAIConfig(ctx); err != nil {
		s.r.Notice(n)
	}
	s.r.Line(`cmdkit interactive session. Type "help" for commands.`)

	for {
		line, err := s.lines.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := s.Exec(ctx, line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}

// Exec runs one command line. Action failures are rendered, not returned;
// only quit and context cancellation stop the loop.
func (s *Session) Exec(ctx context.Context, line string) error {
	verb, rest := splitVerb(line)
	if verb == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch verb {
	case "help", "?":
		s.help()
	case "quit", "exit":
		return errQuit
	case "show":
		s.show()
	case "add":
		s.wb.Editor().Add(rest)
		s.show()
	case "insert":
		s.withIndexText(rest, func(i int, text string) error { return s.wb.Editor().InsertAfter(i, text) })
	case "set":
		s.withIndexText(rest, func(i int, text string) error {
			_, err := s.wb.SetFragment(i, text)
			return err
		})
	case "rm":
		s.withIndexText(rest, func(i int, _ string) error { return s.wb.Editor().Remove(i) })
	case "clear":
		s.wb.Editor().Clear()
		s.show()
	case "load":
		s.wb.Editor().Load(rest)
		s.show()
	case "name":
		s.wb.SetName(rest)
	case "note":
		s.wb.SetNote(rest)
	case "copy":
		s.notice(s.wb.CopyCommand())
	case "save":
		s.notice(s.wb.SaveCommand())
	case "list":
		s.r.Commands(s.wb.Store().List())
	case "edit":
		if i, ok := s.index(rest); ok {
			s.notice(s.wb.EditCommand(i))
			s.show()
		}
	case "copyat":
		if i, ok := s.index(rest); ok {
			s.notice(s.wb.CopySaved(i))
		}
	case "delete":
		if i, ok := s.index(rest); ok {
			s.notice(s.wb.DeleteCommand(i))
		}
	case "export":
		s.notice(s.wb.ExportCSV(pathOrDefault(rest)))
	case "import":
		s.notice(s.wb.ImportCSV(pathOrDefault(rest)))
	case "aiconfig":
		s.aiConfig(ctx, rest)
	case "aitest":
		s.notice(s.wb.TestAIConnection(ctx))
	case "gen":
		n, _ := s.wb.GenerateCommand(ctx, rest)
		s.r.Line(s.wb.Output())
		s.r.Notice(n)
		if n.Kind == workbench.NoticeSuccess {
			s.show()
		}
	case "output":
		s.r.Line(s.wb.Output())
	default:
		s.r.Notice(workbench.Notice{Kind: workbench.NoticeError, Text: fmt.Sprintf("Unknown command %q. Type \"help\".", verb)})
	}
	return nil
}

func (s *Session) notice(n workbench.Notice, _ error) {
	s.r.Notice(n)
}

func (s *Session) show() {
	if name := s.wb.Name(); name != "" {
		s.r.Line("Name: " + name)
	}
	if note := s.wb.Note(); note != "" {
		s.r.Line("Note: " + note)
	}
	s.r.Fragments(s.wb.Editor().Fragments(), s.wb.Command())
}

func (s *Session) aiConfig(ctx context.Context, rest string) {
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		s.r.Notice(workbench.Notice{Kind: workbench.NoticeError, Text: "usage: aiconfig <key> <host> [model]"})
		return
	}
	cfg := domain.AIConfig{APIKey: fields[0], APIHost: fields[1]}
	if len(fields) > 2 {
		cfg.ModelName = fields[2]
	}
	s.notice(s.wb.SaveAIConfig(ctx, cfg))
}

// withIndexText parses "<i> [text]" and shows the editor after a successful edit.
func (s *Session) withIndexText(rest string, apply func(int, string) error) {
	head, text := splitVerb(rest)
	i, ok := s.index(head)
	if !ok {
		return
	}
	if err := apply(i, text); err != nil {
		s.r.Notice(workbench.Notice{Kind: workbench.NoticeError, Text: workbench.MsgInvalidFragmentSlot})
		return
	}
	s.show()
}

func (s *Session) index(arg string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || i < 0 {
		s.r.Notice(workbench.Notice{Kind: workbench.NoticeError, Text: fmt.Sprintf("expected a position, got %q", arg)})
		return 0, false
	}
	return i, true
}

func (s *Session) help() {
	s.r.Line(strings.TrimSpace(replHelp))
}

// splitVerb separates the first word from the remainder, keeping the
// remainder's inner spacing.
func splitVerb(line string) (string, string) {
	line = strings.TrimLeft(line, " \t")
	verb, rest, _ := strings.Cut(line, " ")
	return strings.TrimSpace(verb), rest
}

func pathOrDefault(arg string) string {
	if path := strings.TrimSpace(arg); path != "" {
		return path
	}
	return domain.DefaultCSVFileName
}

const replHelp = `
Editor
  show                     show fragments and the assembled command
  add [text]               append a fragment
  insert <i> [text]        insert a fragment after position i
  set <i> [text]           replace fragment i
  rm <i>                   remove fragment i
  clear                    remove all fragments
  load <command>           split a command into fragments
  name <text>              set the name
  note <text>              set the note
  copy                     copy the assembled command

Saved commands
  save                     save name, command and note
  list                     list saved commands
  edit <i>                 load saved command i into the editor
  copyat <i>               copy saved command i
  delete <i>               delete saved command i
  export [path]            write all saved commands as CSV
  import [path]            replace saved commands from CSV

AI
  aiconfig <key> <host> [model]
  aitest                   test the endpoint
  gen <prompt>             generate a command into the editor
  output                   show the last generation result

  help, quit
`
