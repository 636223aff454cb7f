package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	domainRepo "github.com/danuwijaya/tokopos-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetAll(ctx context.Context) ([]entity.Setting, error) {
	var settings []entity.Setting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingsRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	var setting entity.Setting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &setting, err
}

func (r *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entity.Setting{Key: key, Value: value}).Error
}

func (r *settingsRepository) UpsertBatch(ctx context.Context, values map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&entity.Setting{Key: key, Value: value}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
