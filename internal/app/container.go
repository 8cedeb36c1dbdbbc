package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	configapp "github.com/doeshing/cmdkit/internal/application/config"
	"github.com/doeshing/cmdkit/internal/application/doctor"
	"github.com/doeshing/cmdkit/internal/application/workbench"
	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/infrastructure/ai"
	"github.com/doeshing/cmdkit/internal/infrastructure/config"
	"github.com/doeshing/cmdkit/internal/infrastructure/csvfile"
	"github.com/doeshing/cmdkit/internal/infrastructure/kvstore"
	"github.com/doeshing/cmdkit/internal/pkg/logger"
	"github.com/doeshing/cmdkit/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         *logger.ZapLogger
	KeyValueStore  *kvstore.SQLiteStore
	AIConfigs      ports.AIConfigRepository
	Generator      ports.CommandGenerator
	Files          ports.CSVFiles
	DoctorService  *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := configapp.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration invalid (%s): %w", cfgLoader.Path(), err)
	}

	log := logger.New(verbose)

	kv, err := kvstore.NewSQLiteStore(cfg.Storage.Path)
	if err != nil {
		return nil, err
	}

	generator, err := newGenerator(cfg, log, verbose)
	if err != nil {
		kv.Close()
		return nil, err
	}

	aiConfigs := kvstore.NewAIConfigRepository(kv)

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		KeyValueStore:  kv,
		AIConfigs:      aiConfigs,
		Generator:      generator,
	}

	log.Debug("container ready", map[string]interface{}{
		"config":  cfgLoader.Path(),
		"storage": cfg.Storage.Path,
	})

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		KeyValueStore:  kv,
		AIConfigs:      aiConfigs,
		Generator:      generator,
		Files:          csvfile.New(),
		DoctorService:  doctorService,
	}, nil
}

// newGenerator builds the chat-completion client from the ai settings.
func newGenerator(cfg domain.Config, log *logger.ZapLogger, verbose bool) (*ai.Client, error) {
	timeout, err := cfg.GetTimeout()
	if err != nil {
		return nil, err
	}
	opts := ai.Options{
		HTTPClient:      &http.Client{Timeout: timeout},
		PromptTemplate:  cfg.GetPromptTemplate(),
		StripCodeFences: cfg.AI.StripCodeFences,
		Logger:          log,
	}
	if verbose {
		opts.DebugLog = zap.NewStdLog(log.Zap().Named("http"))
	}
	return ai.NewClient(opts)
}

// NewWorkbench builds a controller sharing the container's adapters. The
// clipboard and confirmer belong to the UI and are passed in.
func (c *Container) NewWorkbench(clip ports.Clipboard, confirmer ports.Confirmer) (*workbench.Controller, error) {
	if !c.Config.IsClipboardEnabled() {
		clip = nil
	}
	return workbench.New(workbench.Deps{
		AIConfigs:    c.AIConfigs,
		Generator:    c.Generator,
		Clipboard:    clip,
		Confirmer:    confirmer,
		Files:        c.Files,
		Logger:       c.Logger,
		DefaultModel: c.Config.GetDefaultModel(),
	})
}

// Close releases the storage handle and flushes logs.
func (c *Container) Close() error {
	var err error
	if c.KeyValueStore != nil {
		err = c.KeyValueStore.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	return err
}
