package editor

import (
	"github.com/doeshing/cmdkit/internal/domain"
)

// Editor holds the ordered fragments a command is assembled from.
type Editor struct {
	fragments []string
}

// New returns an editor with a single empty fragment.
func New() *Editor {
	return &Editor{fragments: []string{""}}
}

// Len returns the number of fragments, empty ones included.
func (e *Editor) Len() int {
	return len(e.fragments)
}

// Fragments returns a copy of the current fragments.
func (e *Editor) Fragments() []string {
	out := make([]string, len(e.fragments))
	copy(out, e.fragments)
	return out
}

// Add appends a fragment.
func (e *Editor) Add(text string) {
	e.fragments = append(e.fragments, text)
}

// InsertAfter places a new fragment directly after index.
func (e *Editor) InsertAfter(index int, text string) error {
	if err := e.check(index); err != nil {
		return err
	}
	e.fragments = append(e.fragments, "")
	copy(e.fragments[index+2:], e.fragments[index+1:])
	e.fragments[index+1] = text
	return nil
}

// Set replaces the fragment at index.
func (e *Editor) Set(index int, text string) error {
	if err := e.check(index); err != nil {
		return err
	}
	e.fragments[index] = text
	return nil
}

// Remove drops the fragment at index.
func (e *Editor) Remove(index int) error {
	if err := e.check(index); err != nil {
		return err
	}
	e.fragments = append(e.fragments[:index], e.fragments[index+1:]...)
	return nil
}

// Clear resets the editor to a single empty fragment.
func (e *Editor) Clear() {
	e.fragments = []string{""}
}

// Assemble joins the non-empty fragments with single spaces.
func (e *Editor) Assemble() string {
	return domain.Assemble(e.fragments)
}

// Load replaces every fragment with the space-separated tokens of command.
func (e *Editor) Load(command string) {
	e.fragments = domain.SplitCommand(command)
}

func (e *Editor) check(index int) error {
	if index < 0 || index >= len(e.fragments) {
		return domain.IndexError(index, len(e.fragments))
	}
	return nil
}

// Replace swaps in a copy of fragments. An empty list leaves one empty slot.
func (e *Editor) Replace(fragments []string) {
	if len(fragments) == 0 {
		e.Clear()
		return
	}
	e.fragments = make([]string, len(fragments))
	copy(e.fragments, fragments)
}
