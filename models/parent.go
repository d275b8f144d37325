package models

import "time"

// Parent представляет родителя ученика — получателя напоминаний об оплате
type Parent struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null;size:50"`
	PhoneNumber string    `gorm:"column:phone_number;size:20"`
	Email       string    `gorm:"column:email;size:100"`
	CreatedAt   time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP"`
}

// TableName возвращает имя таблицы для модели Parent
func (Parent) TableName() string {
	return "parents"
}
