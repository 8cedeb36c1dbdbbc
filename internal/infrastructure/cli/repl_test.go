package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/infrastructure/ai"
	"github.com/doeshing/cmdkit/internal/infrastructure/cli/helpers"
	"github.com/doeshing/cmdkit/internal/infrastructure/csvfile"
	"github.com/doeshing/cmdkit/internal/infrastructure/kvstore"
	"github.com/doeshing/cmdkit/internal/pkg/logger"
)

// runScript feeds script to a fresh session and returns everything it printed.
func runScript(t *testing.T, script string) (string, *workbench.Controller) {
	t.Helper()
	kv, err := kvstore.NewSQLiteStore(filepath.Join(t.TempDir(), "storage.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	generator, err := ai.NewClient(ai.Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	lines := NewLineReader(strings.NewReader(script), &out, replPrompt)
	session := NewSession(nil, lines, helpers.NewRenderer(&out, false))
	wb, err := workbench.New(workbench.Deps{
		AIConfigs: kvstore.NewAIConfigRepository(kv),
		Generator: generator,
		Confirmer: session,
		Files:     csvfile.New(),
		Logger:    logger.New(false),
	})
	require.NoError(t, err)
	session.wb = wb

	require.NoError(t, session.Run(context.Background()))
	return out.String(), wb
}

func TestSessionComposeSaveExportImportEdit(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "commands.csv")
	script := strings.Join([]string{
		"set 0 ls",
		"add -la",
		"name list",
		"note all files",
		"save",
		"export " + csvPath,
		"clear",
		"import " + csvPath,
		"list",
		"edit 0",
		"quit",
	}, "\n") + "\n"

	out, wb := runScript(t, script)

	assert.Contains(t, out, "Command: ls -la")
	assert.Contains(t, out, workbench.MsgCommandSaved)
	assert.Contains(t, out, "Exported 1 commands to "+csvPath)
	assert.Contains(t, out, "Imported 1 commands")
	assert.Contains(t, out, workbench.MsgCommandLoaded)
	assert.Equal(t, []string{"ls", "-la"}, wb.Editor().Fragments())
	assert.Equal(t, "list", wb.Name())
	assert.Equal(t, "all files", wb.Note())

	raw, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, `"list","ls -la","all files"`, string(raw))
}

func TestSessionDeleteAsksOnSameInput(t *testing.T) {
	script := "load echo hi\nname greet\nsave\nsave\ndelete 0\nn\ndelete 0\ny\n"

	out, wb := runScript(t, script)

	assert.Contains(t, out, "Delete this command? [y/N]: ")
	assert.Contains(t, out, workbench.MsgDeleteCancelled)
	assert.Contains(t, out, workbench.MsgCommandDeleted)
	assert.Equal(t, 1, wb.Store().Len())
}

func TestSessionReportsBadInputAndContinues(t *testing.T) {
	script := "rm 7\nedit x\nbogus\nsave\ngen\nadd pwd\n"

	out, wb := runScript(t, script)

	assert.Contains(t, out, workbench.MsgInvalidFragmentSlot)
	assert.Contains(t, out, `expected a position, got "x"`)
	assert.Contains(t, out, `Unknown command "bogus"`)
	assert.Contains(t, out, workbench.MsgNameAndCommand)
	assert.Contains(t, out, workbench.MsgEnterPrompt)
	assert.Equal(t, "pwd", wb.Command())
}

func TestSessionAIConfigNeedsKeyAndHost(t *testing.T) {
	out, wb := runScript(t, "aitest\naiconfig onlykey\naiconfig sk-abc https://api.example.com/v1/\n")

	assert.Contains(t, out, workbench.MsgFillAIConfig)
	assert.Contains(t, out, "usage: aiconfig")
	assert.Contains(t, out, workbench.MsgConfigSaved)
	assert.Equal(t, "gpt-3.5-turbo", wb.AIConfig().ModelName)
}

func TestSessionImportOfMissingFileKeepsList(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "typo.csv")
	out, wb := runScript(t, "load ls -la\nname list\nsave\nimport "+missing+"\n")

	assert.Contains(t, out, workbench.MsgImportFailed)
	assert.Equal(t, 1, wb.Store().Len())
}

func TestSplitVerbKeepsInnerSpacing(t *testing.T) {
	verb, rest := splitVerb("  load ls  -la")
	assert.Equal(t, "load", verb)
	assert.Equal(t, "ls  -la", rest)

	verb, rest = splitVerb("clear")
	assert.Equal(t, "clear", verb)
	assert.Equal(t, "", rest)
}
