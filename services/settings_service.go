package services

import (
	"academyProject/models"
	"errors"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultFeesDTO представляет базовые платы по ступеням обучения
type DefaultFeesDTO struct {
	Elementary int64 `json:"elementary" validate:"gte=0"`
	Middle     int64 `json:"middle" validate:"gte=0"`
	High       int64 `json:"high" validate:"gte=0"`
}

// SettingsService предоставляет методы для работы с настройками академии
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService создает новый экземпляр SettingsService
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetDefaultFees возвращает базовые платы по ступеням.
// Отсутствующий ключ трактуется как нулевая плата
func (s *SettingsService) GetDefaultFees() (*DefaultFeesDTO, error) {
	var settings []models.AcademySetting
	if err := s.db.Where("key IN ?", []string{
		models.SettingFeeElementary,
		models.SettingFeeMiddle,
		models.SettingFeeHigh,
	}).Find(&settings).Error; err != nil {
		return nil, errors.New("ошибка при получении настроек")
	}

	fees := &DefaultFeesDTO{}
	for _, setting := range settings {
		switch setting.Key {
		case models.SettingFeeElementary:
			fees.Elementary = parseFee(setting.Value)
		case models.SettingFeeMiddle:
			fees.Middle = parseFee(setting.Value)
		case models.SettingFeeHigh:
			fees.High = parseFee(setting.Value)
		}
	}

	return fees, nil
}

// UpdateDefaultFees сохраняет базовые платы по ступеням
func (s *SettingsService) UpdateDefaultFees(dto DefaultFeesDTO) error {
	pairs := map[string]int64{
		models.SettingFeeElementary: dto.Elementary,
		models.SettingFeeMiddle:     dto.Middle,
		models.SettingFeeHigh:       dto.High,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for key, value := range pairs {
			setting := models.AcademySetting{
				Key:   key,
				Value: strconv.FormatInt(value, 10),
			}
			// Обновляем значение существующего ключа
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&setting).Error
			if err != nil {
				return errors.New("ошибка при сохранении настройки " + key)
			}
		}
		return nil
	})
}

// parseFee разбирает сумму из строкового значения настройки
func parseFee(value string) int64 {
	fee, err := strconv.ParseInt(value, 10, 64)
	if err != nil || fee < 0 {
		return 0
	}
	return fee
}
