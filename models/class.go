package models

import (
	"gorm.io/gorm"
)

// TimeSlot представляет одно занятие в недельном расписании класса
type TimeSlot struct {
	Day   string `json:"day"`   // День недели: "월".."일"
	Start string `json:"start"` // Время начала, "18:00"
	End   string `json:"end"`   // Время окончания, "20:00"
}

// Class представляет учебный класс академии
type Class struct {
	gorm.Model
	Name           string     `gorm:"column:name;not null;size:50"`
	TargetGrade    string     `gorm:"column:target_grade;size:10"` // Целевая ступень, например "중1"
	WeeklySchedule []TimeSlot `gorm:"column:weekly_schedule;serializer:json;type:jsonb"`

	Enrollments []ClassEnrollment `gorm:"foreignKey:ClassID"`
}

// TableName возвращает имя таблицы для модели Class
func (Class) TableName() string {
	return "classes"
}

// ClassEnrollment представляет зачисление ученика в класс.
// Пара (класс, ученик) уникальна
type ClassEnrollment struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	ClassID   uint    `gorm:"not null;index;uniqueIndex:idx_class_enrollments_class_student"`
	StudentID uint    `gorm:"not null;index;uniqueIndex:idx_class_enrollments_class_student"`
	Student   Student `gorm:"foreignKey:StudentID"`
}

// TableName возвращает имя таблицы для модели ClassEnrollment
func (ClassEnrollment) TableName() string {
	return "class_enrollments"
}
