package repository

import (
	"context"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
)

// SettingsRepository defines the interface for key-value settings access
type SettingsRepository interface {
	GetAll(ctx context.Context) ([]entity.Setting, error)
	Get(ctx context.Context, key string) (*entity.Setting, error)
	// Upsert creates or updates the setting for the key
	Upsert(ctx context.Context, key, value string) error
	UpsertBatch(ctx context.Context, values map[string]string) error
}
