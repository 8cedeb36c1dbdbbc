package library_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cmdkit/internal/application/library"
	"github.com/doeshing/cmdkit/internal/domain"
)

func TestSaveAppendsOneRecord(t *testing.T) {
	store := library.NewStore()

	rec, err := store.Save("list", "ls -la", "")
	require.NoError(t, err)
	assert.Equal(t, domain.SavedCommand{Name: "list", Command: "ls -la"}, rec)
	assert.Equal(t, 1, store.Len())
}

func TestSaveRejectsEmptyFieldsWithoutStateChange(t *testing.T) {
	store := library.NewStore()
	_, err := store.Save("keep", "pwd", "")
	require.NoError(t, err)

	cases := []struct{ name, command string }{
		{"", "ls"},
		{"   ", "ls"},
		{"list", ""},
		{"list", " \t "},
	}
	for _, c := range cases {
		_, err := store.Save(c.name, c.command, "note")
		assert.ErrorIs(t, err, domain.ErrValidation, "save(%q, %q)", c.name, c.command)
	}
	assert.Equal(t, []domain.SavedCommand{{Name: "keep", Command: "pwd"}}, store.List())
}

func TestDeleteShiftsLaterRecords(t *testing.T) {
	store := library.NewStore()
	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := store.Save(name, "echo "+name, "")
		require.NoError(t, err)
	}

	require.NoError(t, store.Delete(1))

	got := store.List()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
	assert.Equal(t, "d", got[2].Name)
}

func TestDeleteOutOfRange(t *testing.T) {
	store := library.NewStore()
	_, err := store.Save("a", "a", "")
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete(1), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, store.Delete(-1), domain.ErrIndexOutOfRange)
	assert.Equal(t, 1, store.Len())
}

func TestEditProjectsIntoEditorState(t *testing.T) {
	store := library.NewStore()
	_, err := store.Save("list", "ls -la", "long listing")
	require.NoError(t, err)

	state, err := store.Edit(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "-la"}, state.Fragments)
	assert.Equal(t, "list", state.Name)
	assert.Equal(t, "long listing", state.Note)
}

func TestEditThenSaveAppendsDuplicate(t *testing.T) {
	store := library.NewStore()
	_, err := store.Save("list", "ls -la", "")
	require.NoError(t, err)

	state, err := store.Edit(0)
	require.NoError(t, err)
	_, err = store.Save(state.Name, domain.Assemble(append(state.Fragments, "-h")), state.Note)
	require.NoError(t, err)

	got := store.List()
	require.Len(t, got, 2)
	assert.Equal(t, "ls -la", got[0].Command)
	assert.Equal(t, "ls -la -h", got[1].Command)
}

func TestExportSingleRecord(t *testing.T) {
	store := library.NewStore()
	_, err := store.Save("list", "ls -la", "")
	require.NoError(t, err)

	assert.Equal(t, `"list","ls -la",""`, store.ExportCSV())
}

func TestExportJoinsRecordsWithNewline(t *testing.T) {
	store := library.NewStore()
	_, _ = store.Save("a", "echo a", "first")
	_, _ = store.Save("b", "echo b", "")

	assert.Equal(t, "\"a\",\"echo a\",\"first\"\n\"b\",\"echo b\",\"\"", store.ExportCSV())
	assert.Equal(t, "", library.NewStore().ExportCSV())
}

func TestImportReplacesStore(t *testing.T) {
	store := library.NewStore()
	_, _ = store.Save("old", "old", "")

	require.NoError(t, store.ImportCSV(`"list","ls -la",""`))
	assert.Equal(t, []domain.SavedCommand{{Name: "list", Command: "ls -la", Note: ""}}, store.List())
}

func TestImportSkipsBlankLinesAndToleratesShortRows(t *testing.T) {
	store := library.NewStore()
	text := "\n\"a\",\"echo a\",\"n\"\n   \n\"b\",\"echo b\"\n"

	require.NoError(t, store.ImportCSV(text))
	assert.Equal(t, []domain.SavedCommand{
		{Name: "a", Command: "echo a", Note: "n"},
		{Name: "b", Command: "echo b", Note: ""},
	}, store.List())
}

func TestImportInvalidUTF8KeepsStore(t *testing.T) {
	store := library.NewStore()
	_, _ = store.Save("keep", "pwd", "")

	err := store.ImportCSV("\"a\",\"b\xff\",\"\"")
	var perr *domain.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, 1, store.Len())
}

func TestRoundTripWithoutSpecialCharacters(t *testing.T) {
	records := []domain.SavedCommand{
		{Name: "list", Command: "ls -la", Note: ""},
		{Name: "grep logs", Command: "grep -rn error /var/log", Note: "needs sudo"},
	}

	decoded, err := library.DecodeCSV(library.EncodeCSV(records))
	require.NoError(t, err)
	assert.Equal(t, records, decoded)
}

func TestRoundTripIsLossyForCommasAndQuotes(t *testing.T) {
	records := []domain.SavedCommand{
		{Name: "awk", Command: "awk -F, '{print $1}'", Note: ""},
		{Name: "printf", Command: `printf "%s,%s" a b`, Note: "pairs"},
		{Name: "say", Command: `echo "hi"`, Note: ""},
	}

	decoded, err := library.DecodeCSV(library.EncodeCSV(records))
	require.NoError(t, err)
	require.Len(t, decoded, 3)

	// The comma splits the command cell; the tail lands in the note.
	assert.Equal(t, "awk -F", decoded[0].Command)
	assert.Equal(t, "'{print $1}'", decoded[0].Note)
	assert.NotEqual(t, records[0], decoded[0])

	// Quotes next to the split point are eaten as cell delimiters.
	assert.Equal(t, `printf "%s`, decoded[1].Command)
	assert.Equal(t, `%s" a b`, decoded[1].Note)

	// Stripping is positional, so quotes without commas come back intact.
	assert.Equal(t, records[2], decoded[2])
}

func TestSearch(t *testing.T) {
	store := library.NewStore()
	_, _ = store.Save("disk", "df -h", "")
	_, _ = store.Save("list", "ls", "directory listing")
	_, _ = store.Save("usage", "du -sh", "per directory")

	matches := store.Search("directory")
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Index)
	assert.Equal(t, 2, matches[1].Index)
	assert.Len(t, store.Search(""), 3)
}

func TestListReturnsCopy(t *testing.T) {
	store := library.NewStore()
	_, _ = store.Save("a", "a", "")
	list := store.List()
	list[0].Name = "mutated"
	rec, err := store.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "a", rec.Name)
}
