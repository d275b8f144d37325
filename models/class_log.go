package models

import (
	"gorm.io/gorm"
	"time"
)

// ClassLog представляет журнал одного занятия класса
type ClassLog struct {
	gorm.Model
	ClassID     uint                `gorm:"not null;index"`
	Class       Class               `gorm:"foreignKey:ClassID"`
	ClassDate   time.Time           `gorm:"type:date;not null;index"` // Дата занятия
	TeacherNote string              `gorm:"size:500"`
	Evaluations []StudentEvaluation `gorm:"foreignKey:ClassLogID"`
}

// TableName возвращает имя таблицы для модели ClassLog
func (ClassLog) TableName() string {
	return "class_logs"
}
