package models

import (
	"gorm.io/gorm"
	"time"
)

// ExamScore представляет результат ученика на одном экзамене
type ExamScore struct {
	gorm.Model
	StudentID uint      `gorm:"not null;index"`
	Student   Student   `gorm:"foreignKey:StudentID"`
	Category  string    `gorm:"size:20;not null"` // Вид экзамена, например "내신" или "모의고사"
	ExamName  string    `gorm:"size:100;not null"`
	Score     int       `gorm:"not null"` // Баллы от 0 до 100
	ExamDate  time.Time `gorm:"type:date;not null"`
}

// TableName возвращает имя таблицы для модели ExamScore
func (ExamScore) TableName() string {
	return "exam_scores"
}
