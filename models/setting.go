package models

import "time"

// Ключи настроек академии
const (
	SettingFeeElementary = "fee_elementary" // Базовая плата для начальной школы
	SettingFeeMiddle     = "fee_middle"     // Базовая плата для средней школы
	SettingFeeHigh       = "fee_high"       // Базовая плата для старшей школы
)

// AcademySetting представляет настройку академии в виде пары ключ-значение.
// Базовые платы по ступеням применяются только при создании записей,
// калькулятор задолженности их не читает
type AcademySetting struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Key       string    `gorm:"column:key;unique;not null;size:50"`
	Value     string    `gorm:"column:value;not null;size:200"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP"`
}

// TableName возвращает имя таблицы для модели AcademySetting
func (AcademySetting) TableName() string {
	return "academy_settings"
}
