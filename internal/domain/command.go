// Package domain defines the core entities of cmdkit: command fragments, saved
// commands, the AI endpoint configuration and the error taxonomy shared by the
// application and infrastructure layers.
package domain

import "strings"

// Assemble trims each fragment, drops the empty ones and joins the rest with a
// single space.
func Assemble(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		parts = append(parts, fragment)
	}
	return strings.Join(parts, FragmentSeparator)
}

// SplitCommand splits a command on single spaces. Consecutive spaces yield
// empty fragments and a fragment that contained a space comes back as two.
func SplitCommand(command string) []string {
	return strings.Split(command, FragmentSeparator)
}

// EditorState is what the fragment editor shows after loading a saved command.
type EditorState struct {
	Fragments []string
	Name      string
	Note      string
}
