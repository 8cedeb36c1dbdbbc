// Package workbench owns the state of one editing session: the fragment
// editor, the saved-command list and the AI configuration. UI handlers call
// into a single Controller instead of sharing globals.
package workbench

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/cmdkit/internal/application/editor"
	"github.com/doeshing/cmdkit/internal/application/library"
	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Deps are the adapters the controller talks to. Clipboard and Confirmer may
// be nil; copying then fails and deletes proceed without asking.
type Deps struct {
	AIConfigs ports.AIConfigRepository
	Generator ports.CommandGenerator
	Clipboard ports.Clipboard
	Confirmer ports.Confirmer
	Files     ports.CSVFiles
	Logger    ports.Logger
	// DefaultModel replaces a blank model name when the AI configuration is saved.
	DefaultModel string
}

// Controller is not safe for concurrent use; one UI loop owns it.
type Controller struct {
	deps   Deps
	editor *editor.Editor
	store  *library.Store

	aiConfig domain.AIConfig
	name     string
	note     string
	output   string
}

// New builds a controller with an empty editor and store.
func New(deps Deps) (*Controller, error) {
	if deps.AIConfigs == nil || deps.Generator == nil || deps.Files == nil || deps.Logger == nil {
		return nil, errors.New("workbench.Controller dependencies not satisfied")
	}
	return &Controller{
		deps:     deps,
		editor:   editor.New(),
		store:    library.NewStore(),
		aiConfig: domain.DefaultAIConfig(),
	}, nil
}

// Editor exposes the fragment editor.
func (c *Controller) Editor() *editor.Editor { return c.editor }

// Store exposes the saved-command list.
func (c *Controller) Store() *library.Store { return c.store }

// AIConfig returns the active AI configuration.
func (c *Controller) AIConfig() domain.AIConfig { return c.aiConfig }

// Name returns the name field.
func (c *Controller) Name() string { return c.name }

// Note returns the note field.
func (c *Controller) Note() string { return c.note }

// SetName sets the name field.
func (c *Controller) SetName(name string) { c.name = name }

// SetNote sets the note field.
func (c *Controller) SetNote(note string) { c.note = note }

// Output returns the text of the AI output display.
func (c *Controller) Output() string { return c.output }

// Command is the currently assembled command.
func (c *Controller) Command() string { return c.editor.Assemble() }

// CopyCommand copies the assembled command to the clipboard.
func (c *Controller) CopyCommand() (Notice, error) {
	return c.copy(c.editor.Assemble())
}

// CopySaved copies the stored command at index.
func (c *Controller) CopySaved(index int) (Notice, error) {
	rec, err := c.store.Get(index)
	if err != nil {
		return failure(MsgNoSuchCommand), err
	}
	return c.copy(rec.Command)
}

func (c *Controller) copy(text string) (Notice, error) {
	if text == "" {
		return info(MsgNothingToCopy), nil
	}
	if c.deps.Clipboard == nil || !c.deps.Clipboard.Enabled() {
		err := errors.New(MsgClipboardDisabled)
		return failure(MsgCopyFailed + err.Error()), err
	}
	if err := c.deps.Clipboard.Copy(text); err != nil {
		c.deps.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
		return failure(MsgCopyFailed + err.Error()), err
	}
	return success(MsgCommandCopied), nil
}

// SaveCommand appends {name, assembled command, note} to the store. Saving
// after EditCommand creates a second record; the edited one stays.
func (c *Controller) SaveCommand() (Notice, error) {
	rec, err := c.store.Save(c.name, c.editor.Assemble(), c.note)
	if err != nil {
		return failure(MsgNameAndCommand), err
	}
	c.deps.Logger.Debug("command saved", map[string]interface{}{
		"name":  rec.Name,
		"index": c.store.Len() - 1,
	})
	return success(MsgCommandSaved), nil
}

// DeleteCommand removes the record at index once the user confirms.
func (c *Controller) DeleteCommand(index int) (Notice, error) {
	if _, err := c.store.Get(index); err != nil {
		return failure(MsgNoSuchCommand), err
	}
	if c.deps.Confirmer != nil {
		ok, err := c.deps.Confirmer.Confirm(MsgDeleteQuestion)
		if err != nil {
			return failure(MsgDeleteCancelled), err
		}
		if !ok {
			return info(MsgDeleteCancelled), nil
		}
	}
	if err := c.store.Delete(index); err != nil {
		return failure(MsgNoSuchCommand), err
	}
	return success(MsgCommandDeleted), nil
}

// EditCommand loads the record at index into the editor, name and note.
func (c *Controller) EditCommand(index int) (Notice, error) {
	state, err := c.store.Edit(index)
	if err != nil {
		return failure(MsgNoSuchCommand), err
	}
	c.editor.Replace(state.Fragments)
	c.name = state.Name
	c.note = state.Note
	return success(MsgCommandLoaded), nil
}

// ExportCSV writes the whole store to path.
func (c *Controller) ExportCSV(path string) (Notice, error) {
	if err := c.deps.Files.Write(path, c.store.ExportCSV()); err != nil {
		c.deps.Logger.Error("export failed", err, map[string]interface{}{"path": path})
		return failure(MsgExportFailed + err.Error()), err
	}
	return success(fmt.Sprintf("Exported %d commands to %s", c.store.Len(), path)), nil
}

// ImportCSV replaces the store with the records in path. A failed read,
// including a missing file, leaves the store unchanged.
func (c *Controller) ImportCSV(path string) (Notice, error) {
	text, err := c.deps.Files.Read(path)
	if err != nil {
		c.deps.Logger.Error("import failed", err, map[string]interface{}{"path": path})
		return failure(MsgImportFailed + err.Error()), err
	}
	if err := c.store.ImportCSV(text); err != nil {
		return failure(MsgImportFailed + err.Error()), err
	}
	return success("Imported " + strconv.Itoa(c.store.Len()) + " commands"), nil
}

// LoadAIConfig restores the saved AI configuration. Without one the defaults
// stay in place.
func (c *Controller) LoadAIConfig(ctx context.Context) (Notice, error) {
	cfg, ok, err := c.deps.AIConfigs.Load(ctx)
	if err != nil {
		c.deps.Logger.Warn("ai config unreadable", map[string]interface{}{"error": err.Error()})
		return failure(MsgConfigLoadFailed + err.Error()), err
	}
	if ok {
		c.aiConfig = cfg
	}
	return Notice{}, nil
}

// SaveAIConfig normalizes and persists cfg, then makes it active.
func (c *Controller) SaveAIConfig(ctx context.Context, cfg domain.AIConfig) (Notice, error) {
	if cfg.ModelName == "" && c.deps.DefaultModel != "" {
		cfg.ModelName = c.deps.DefaultModel
	}
	cfg = cfg.Normalize()
	if err := c.deps.AIConfigs.Save(ctx, cfg); err != nil {
		return failure(MsgConfigSaveFailed + err.Error()), err
	}
	c.aiConfig = cfg
	return success(MsgConfigSaved), nil
}

// TestAIConnection checks the endpoint. Missing key or host fails before any
// request is made.
func (c *Controller) TestAIConnection(ctx context.Context) (Notice, error) {
	if err := c.aiConfig.Validate(); err != nil {
		return failure(MsgFillAIConfig), err
	}
	err := c.deps.Generator.TestConnection(ctx, c.aiConfig)
	if err == nil {
		return success(MsgConnectionOK), nil
	}
	var netErr *domain.NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode != 0 {
		return failure(MsgConnectionFailed + strconv.Itoa(netErr.StatusCode)), err
	}
	return failure(MsgConnectionError + err.Error()), err
}

// GenerateCommand asks the model for a command and loads the reply into the
// editor. The output display shows the reply or the failure.
func (c *Controller) GenerateCommand(ctx context.Context, prompt string) (Notice, error) {
	if strings.TrimSpace(prompt) == "" {
		return failure(MsgEnterPrompt), &domain.ValidationError{Field: "prompt", Message: "prompt is required"}
	}
	c.output = MsgGenerating

	reply, err := c.deps.Generator.Generate(ctx, c.aiConfig, prompt)
	if err != nil {
		var netErr *domain.NetworkError
		if errors.As(err, &netErr) && netErr.StatusCode != 0 {
			c.output = MsgGenerateError + remoteMessage(netErr)
		} else {
			c.output = MsgRequestFailed + err.Error()
		}
		return failure(c.output), err
	}

	c.output = reply
	c.editor.Load(reply)
	return success(MsgCommandLoaded), nil
}

// SetFragment edits one editor slot.
func (c *Controller) SetFragment(index int, text string) (Notice, error) {
	if err := c.editor.Set(index, text); err != nil {
		return failure(MsgInvalidFragmentSlot), err
	}
	return Notice{}, nil
}

func remoteMessage(err *domain.NetworkError) string {
	if err.Message != "" {
		return err.Message
	}
	return "status " + strconv.Itoa(err.StatusCode)
}
