package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/domain"
)

// Renderer prints notices, fragment slots and saved commands.
type Renderer struct {
	out   io.Writer
	color bool

	success lipgloss.Style
	info    lipgloss.Style
	failure lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	index   lipgloss.Style
}

// NewRenderer builds a renderer for out. With color off every style is a
// pass-through.
func NewRenderer(out io.Writer, color bool) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:     out,
		color:   color,
		success: r.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		info:    r.NewStyle().Foreground(lipgloss.Color("#888888")),
		failure: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888")),
		index:   r.NewStyle().Foreground(lipgloss.Color("#FFA500")),
	}
}

// Writer returns the destination.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return style.Render(text)
}

// Notice prints a one-line notice. Empty notices print nothing.
func (r *Renderer) Notice(n workbench.Notice) {
	if n.Text == "" {
		return
	}
	switch n.Kind {
	case workbench.NoticeSuccess:
		fmt.Fprintln(r.out, r.paint(r.success, n.Text))
	case workbench.NoticeError:
		fmt.Fprintln(r.out, r.paint(r.failure, n.Text))
	default:
		fmt.Fprintln(r.out, r.paint(r.info, n.Text))
	}
}

// Line prints plain text.
func (r *Renderer) Line(text string) {
	fmt.Fprintln(r.out, text)
}

// Fragments prints the editor slots followed by the assembled command.
func (r *Renderer) Fragments(fragments []string, assembled string) {
	for i, frag := range fragments {
		if frag == "" {
			frag = r.paint(r.muted, "(empty)")
		}
		fmt.Fprintf(r.out, "%s %s\n", r.paint(r.index, fmt.Sprintf("[%d]", i)), frag)
	}
	fmt.Fprintf(r.out, "%s %s\n", r.paint(r.title, "Command:"), assembled)
}

// Commands prints saved commands in list order.
func (r *Renderer) Commands(records []domain.SavedCommand) {
	if len(records) == 0 {
		fmt.Fprintln(r.out, r.paint(r.muted, "No saved commands."))
		return
	}
	for i, rec := range records {
		r.Command(i, rec)
	}
}

// Command prints one saved command with its position.
func (r *Renderer) Command(i int, rec domain.SavedCommand) {
	fmt.Fprintf(r.out, "%s %s\n", r.paint(r.index, fmt.Sprintf("[%d]", i)), r.paint(r.title, rec.Name))
	fmt.Fprintf(r.out, "    %s\n", rec.Command)
	if rec.HasNote() {
		fmt.Fprintf(r.out, "    %s\n", r.paint(r.muted, rec.Note))
	}
}

// HealthReport prints doctor results.
func (r *Renderer) HealthReport(report domain.HealthReport) {
	for _, check := range report.Checks {
		status := "[" + strings.ToUpper(string(check.Status)) + "]"
		switch check.Status {
		case domain.HealthOK:
			status = r.paint(r.success, status)
		case domain.HealthError:
			status = r.paint(r.failure, status)
		default:
			status = r.paint(r.index, status)
		}
		fmt.Fprintf(r.out, "%s %s - %s\n", status, check.Name, check.Details)
	}
}
