package service

import (
	"context"
	"strconv"

	"github.com/danuwijaya/tokopos-api/internal/domain/entity"
	"github.com/danuwijaya/tokopos-api/internal/domain/repository"
)

// POSConfig holds the point-of-sale settings parsed from the settings store.
type POSConfig struct {
	StoreName          string
	CurrencyCode       string
	CurrencySymbol     string
	TaxEnabled         bool
	TaxRate            float64
	LoyaltyPointValue  float64
	LoyaltyMinPurchase float64
	LoyaltyMinRedeem   int
	LowStockThreshold  int
	ReceiptHeader      string
	ReceiptFooter      string
}

// DefaultPOSConfig returns the configuration used when a setting is missing.
func DefaultPOSConfig() POSConfig {
	return POSConfig{
		StoreName:          "TokoPOS",
		CurrencyCode:       "IDR",
		CurrencySymbol:     "Rp",
		TaxEnabled:         true,
		TaxRate:            11,
		LoyaltyPointValue:  100,
		LoyaltyMinPurchase: 10000,
		LoyaltyMinRedeem:   10,
		LowStockThreshold:  10,
	}
}

// SettingsService handles application settings operations
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetAll returns all settings as a key-value map
func (s *SettingsService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	return result, nil
}

// Update upserts the given settings
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	return s.settingsRepo.UpsertBatch(ctx, values)
}

// GetPOSConfig loads and parses the point-of-sale configuration.
// Missing or malformed values fall back to defaults.
func (s *SettingsService) GetPOSConfig(ctx context.Context) (POSConfig, error) {
	values, err := s.GetAll(ctx)
	if err != nil {
		return POSConfig{}, err
	}

	cfg := DefaultPOSConfig()
	if v, ok := values[entity.SettingStoreName]; ok && v != "" {
		cfg.StoreName = v
	}
	if v, ok := values[entity.SettingCurrencyCode]; ok && v != "" {
		cfg.CurrencyCode = v
	}
	if v, ok := values[entity.SettingCurrencySymbol]; ok && v != "" {
		cfg.CurrencySymbol = v
	}
	if v, ok := values[entity.SettingTaxEnabled]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.TaxEnabled = parsed
		}
	}
	if v, ok := values[entity.SettingTaxRate]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			cfg.TaxRate = parsed
		}
	}
	if v, ok := values[entity.SettingLoyaltyPointValue]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			cfg.LoyaltyPointValue = parsed
		}
	}
	if v, ok := values[entity.SettingLoyaltyMinPurchase]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			cfg.LoyaltyMinPurchase = parsed
		}
	}
	if v, ok := values[entity.SettingLoyaltyMinRedeem]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			cfg.LoyaltyMinRedeem = parsed
		}
	}
	if v, ok := values[entity.SettingLowStockThreshold]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.LowStockThreshold = parsed
		}
	}
	cfg.ReceiptHeader = values[entity.SettingReceiptHeader]
	cfg.ReceiptFooter = values[entity.SettingReceiptFooter]

	return cfg, nil
}
