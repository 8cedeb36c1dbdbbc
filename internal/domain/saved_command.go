package domain

import "strings"

// SavedCommand is one named entry of the saved-command list. Its identity is
// its position in the list.
type SavedCommand struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Note    string `json:"note"`
}

// NewSavedCommand trims all fields and validates the result.
func NewSavedCommand(name, command, note string) (SavedCommand, error) {
	record := SavedCommand{
		Name:    strings.TrimSpace(name),
		Command: strings.TrimSpace(command),
		Note:    strings.TrimSpace(note),
	}
	if err := record.Validate(); err != nil {
		return SavedCommand{}, err
	}
	return record, nil
}

// Validate requires a name and a command.
func (c SavedCommand) Validate() error {
	if strings.TrimSpace(c.Command) == "" {
		return &ValidationError{Field: "command", Message: "command is required"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	return nil
}

// HasNote reports whether the record carries a note.
func (c SavedCommand) HasNote() bool {
	return c.Note != ""
}

// Matches reports whether term occurs in any field, ignoring case.
func (c SavedCommand) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{c.Name, c.Command, c.Note} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
