package kvstore

import (
	"context"
	"encoding/json"

	"github.com/doeshing/cmdkit/internal/domain"
	"github.com/doeshing/cmdkit/internal/ports"
)

// AIConfigRepository stores the AIConfig as JSON under domain.AIConfigKey.
type AIConfigRepository struct {
	kv ports.KeyValueStore
}

// NewAIConfigRepository wraps a key-value store.
func NewAIConfigRepository(kv ports.KeyValueStore) *AIConfigRepository {
	return &AIConfigRepository{kv: kv}
}

// Load implements ports.AIConfigRepository.
func (r *AIConfigRepository) Load(ctx context.Context) (domain.AIConfig, bool, error) {
	raw, ok, err := r.kv.Get(ctx, domain.AIConfigKey)
	if err != nil || !ok {
		return domain.AIConfig{}, false, err
	}
	var cfg domain.AIConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return domain.AIConfig{}, false, &domain.ParseError{Err: err}
	}
	return cfg, true, nil
}

// Save implements ports.AIConfigRepository.
func (r *AIConfigRepository) Save(ctx context.Context, cfg domain.AIConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, domain.AIConfigKey, string(raw))
}

var _ ports.AIConfigRepository = (*AIConfigRepository)(nil)
