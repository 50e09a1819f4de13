package services

import (
	"errors"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/pkg/response"
	"gorm.io/gorm"
)

type SystemConfigService struct {
	db *gorm.DB
}

func NewSystemConfigService(db *gorm.DB) *SystemConfigService {
	return &SystemConfigService{db: db}
}

// Get returns the raw value for a key, or empty string when unset.
func (s *SystemConfigService) Get(key string) string {
	var cfg models.SystemConfig
	if err := s.db.Where("config_key = ?", key).First(&cfg).Error; err != nil {
		return ""
	}
	return cfg.Value
}

// GetWithDefault returns the value for a key, falling back when unset or
// empty.
func (s *SystemConfigService) GetWithDefault(key, fallback string) string {
	value := s.Get(key)
	if value == "" {
		return fallback
	}
	return value
}

// Set writes a value, creating the row when needed.
func (s *SystemConfigService) Set(key, value string) error {
	var cfg models.SystemConfig
	err := s.db.Where("config_key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&models.SystemConfig{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&cfg).Update("value", value).Error
}

// ListGroup returns all settings in a config group.
func (s *SystemConfigService) ListGroup(group string) ([]models.SystemConfig, error) {
	var configs []models.SystemConfig
	if err := s.db.Where("config_group = ?", group).Order("config_key").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

type UpdateConfigRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// UpdateExisting sets a value only for keys that were seeded, so arbitrary
// keys cannot be injected through the API.
func (s *SystemConfigService) UpdateExisting(req *UpdateConfigRequest) error {
	var cfg models.SystemConfig
	if err := s.db.Where("config_key = ?", req.Key).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("unknown config key: " + req.Key)
		}
		return err
	}
	return s.db.Model(&cfg).Update("value", req.Value).Error
}
