package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// StudentStatus представляет статус ученика
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "ACTIVE"    // Учится
	StudentStatusWithdrawn StudentStatus = "WITHDRAWN" // Отчислен
)

// Student представляет ученика академии
type Student struct {
	ID         uint    `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"column:name;not null;size:50;index"`
	SchoolName string  `gorm:"column:school_name;size:100"`
	Grade      string  `gorm:"column:grade;not null;size:10"` // Например "초6", "중2", "고1"
	ParentID   *uint   `gorm:"column:parent_id"`
	Parent     *Parent `gorm:"foreignKey:ParentID"`

	// Условия оплаты: фиксированная месячная плата (0 — не назначена)
	// и номинальный день оплаты в месяце
	TuitionFee     int64         `gorm:"column:tuition_fee;not null;default:0"`
	PaymentDay     int           `gorm:"column:payment_day;not null;default:1"`
	EnrollmentDate *time.Time    `gorm:"column:enrollment_date;type:date"`
	Status         StudentStatus `gorm:"type:varchar(20);not null;default:'ACTIVE'"`

	CreatedAt time.Time `gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"column:updated_at;default:CURRENT_TIMESTAMP"`
}

// TableName возвращает имя таблицы для модели Student
func (Student) TableName() string {
	return "students"
}

// BeforeCreate хук для валидации перед созданием
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if len(s.Name) < 1 || len(s.Name) > 50 {
		return errors.New("name must be between 1 and 50 characters")
	}
	if s.TuitionFee < 0 {
		return errors.New("tuition fee must not be negative")
	}
	if s.PaymentDay < 1 || s.PaymentDay > 31 {
		return errors.New("payment day must be between 1 and 31")
	}
	return nil
}
