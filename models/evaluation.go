package models

import "gorm.io/gorm"

// AttendanceStatus представляет статус посещения занятия
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT" // Присутствовал
	AttendanceAbsent  AttendanceStatus = "ABSENT"  // Отсутствовал
	AttendanceLate    AttendanceStatus = "LATE"    // Опоздал
)

// HomeworkStatus представляет статус выполнения домашнего задания
type HomeworkStatus string

const (
	HomeworkComplete   HomeworkStatus = "COMPLETE"
	HomeworkPartial    HomeworkStatus = "PARTIAL"
	HomeworkIncomplete HomeworkStatus = "INCOMPLETE"
)

// StudentEvaluation представляет оценку ученика за одно занятие
type StudentEvaluation struct {
	gorm.Model
	ClassLogID         uint             `gorm:"not null;index"`
	StudentID          uint             `gorm:"not null;index"`
	Student            Student          `gorm:"foreignKey:StudentID"`
	AttendanceStatus   AttendanceStatus `gorm:"type:varchar(20);not null;default:'PRESENT'"`
	HomeworkStatus     HomeworkStatus   `gorm:"type:varchar(20);not null;default:'COMPLETE'"`
	UnderstandingScore int              `gorm:"not null;default:3"` // Оценка понимания от 1 до 5
	AttitudeScore      int              `gorm:"not null;default:3"` // Оценка отношения от 1 до 5
	TeacherNote        string           `gorm:"size:500"`
}

// TableName возвращает имя таблицы для модели StudentEvaluation
func (StudentEvaluation) TableName() string {
	return "student_evaluations"
}
