package services

import (
	"academyProject/models"
	"errors"
	"time"

	"gorm.io/gorm"
)

// EvaluationEntryDTO представляет оценку одного ученика за занятие
type EvaluationEntryDTO struct {
	StudentID          uint   `json:"student_id" validate:"required"`
	AttendanceStatus   string `json:"attendance_status" validate:"required,oneof=PRESENT ABSENT LATE"`
	HomeworkStatus     string `json:"homework_status" validate:"required,oneof=COMPLETE PARTIAL INCOMPLETE"`
	UnderstandingScore int    `json:"understanding_score" validate:"gte=1,lte=5"`
	AttitudeScore      int    `json:"attitude_score" validate:"gte=1,lte=5"`
	TeacherNote        string `json:"teacher_note" validate:"max=500"`
}

// CreateClassLogDTO представляет данные журнала занятия с оценками
type CreateClassLogDTO struct {
	ClassID     uint                 `json:"class_id" validate:"required"`
	ClassDate   string               `json:"class_date" validate:"required,datetime=2006-01-02"`
	TeacherNote string               `json:"teacher_note" validate:"max=500"`
	Evaluations []EvaluationEntryDTO `json:"evaluations" validate:"required,min=1,dive"`
}

// EvaluationService предоставляет методы для работы с журналом занятий
type EvaluationService struct {
	db *gorm.DB
}

// NewEvaluationService создает новый экземпляр EvaluationService
func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{db: db}
}

// CreateClassLog создает журнал занятия вместе с оценками учеников
func (s *EvaluationService) CreateClassLog(dto CreateClassLogDTO) (*models.ClassLog, error) {
	classDate, err := time.Parse("2006-01-02", dto.ClassDate)
	if err != nil {
		return nil, errors.New("неверный формат даты занятия")
	}

	classLog := &models.ClassLog{
		ClassID:     dto.ClassID,
		ClassDate:   classDate,
		TeacherNote: dto.TeacherNote,
	}

	for _, entry := range dto.Evaluations {
		classLog.Evaluations = append(classLog.Evaluations, models.StudentEvaluation{
			StudentID:          entry.StudentID,
			AttendanceStatus:   models.AttendanceStatus(entry.AttendanceStatus),
			HomeworkStatus:     models.HomeworkStatus(entry.HomeworkStatus),
			UnderstandingScore: entry.UnderstandingScore,
			AttitudeScore:      entry.AttitudeScore,
			TeacherNote:        entry.TeacherNote,
		})
	}

	if err := s.db.Create(classLog).Error; err != nil {
		return nil, errors.New("ошибка при сохранении журнала занятия")
	}

	return classLog, nil
}

// ListStudentEvaluations возвращает историю оценок ученика
func (s *EvaluationService) ListStudentEvaluations(studentID uint) ([]models.StudentEvaluation, error) {
	var evaluations []models.StudentEvaluation
	err := s.db.Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&evaluations).Error
	if err != nil {
		return nil, errors.New("ошибка при получении оценок ученика")
	}
	return evaluations, nil
}
