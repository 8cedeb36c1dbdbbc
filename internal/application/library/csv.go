package library

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/doeshing/cmdkit/internal/domain"
)

// EncodeCSV writes one `"name","command","note"` line per record. Fields are
// not escaped, so embedded quotes and commas do not survive a re-import.
func EncodeCSV(records []domain.SavedCommand) string {
	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, `"`+rec.Name+`","`+rec.Command+`","`+rec.Note+`"`)
	}
	return strings.Join(lines, "\n")
}

// DecodeCSV reverses EncodeCSV. Blank lines are skipped, each line is split on
// every comma and each cell loses at most one leading and one trailing quote
// before being trimmed. Missing cells decode as empty strings and cells past
// the third are ignored.
func DecodeCSV(text string) ([]domain.SavedCommand, error) {
	records := []domain.SavedCommand{}
	for i, row := range strings.Split(text, "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		if !utf8.ValidString(row) {
			return nil, &domain.ParseError{Line: i + 1, Err: errors.New("invalid UTF-8")}
		}
		cells := strings.Split(row, ",")
		for j, cell := range cells {
			cells[j] = strings.TrimSpace(unquote(cell))
		}
		records = append(records, domain.SavedCommand{
			Name:    cellAt(cells, 0),
			Command: cellAt(cells, 1),
			Note:    cellAt(cells, 2),
		})
	}
	return records, nil
}

func unquote(cell string) string {
	cell = strings.TrimPrefix(cell, `"`)
	return strings.TrimSuffix(cell, `"`)
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
