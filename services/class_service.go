package services

import (
	"academyProject/models"
	"errors"

	"gorm.io/gorm"
)

// TimeSlotDTO представляет одно занятие в недельном расписании
type TimeSlotDTO struct {
	Day   string `json:"day" validate:"required,oneof=월 화 수 목 금 토 일"`
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

// CreateClassDTO представляет данные для создания класса
type CreateClassDTO struct {
	Name           string        `json:"name" validate:"required,min=1,max=50"`
	TargetGrade    string        `json:"target_grade" validate:"max=10"`
	WeeklySchedule []TimeSlotDTO `json:"weekly_schedule" validate:"dive"`
}

// UpdateClassDTO представляет данные для обновления класса
type UpdateClassDTO struct {
	Name           string        `json:"name" validate:"omitempty,min=1,max=50"`
	TargetGrade    string        `json:"target_grade" validate:"max=10"`
	WeeklySchedule []TimeSlotDTO `json:"weekly_schedule" validate:"dive"`
}

// AssignStudentsDTO представляет новый состав класса
type AssignStudentsDTO struct {
	StudentIDs []uint `json:"student_ids" validate:"required"`
}

// ClassService предоставляет методы для работы с классами
type ClassService struct {
	db *gorm.DB
}

// NewClassService создает новый экземпляр ClassService
func NewClassService(db *gorm.DB) *ClassService {
	return &ClassService{db: db}
}

// Create создает учебный класс
func (s *ClassService) Create(dto CreateClassDTO) (*models.Class, error) {
	class := &models.Class{
		Name:           dto.Name,
		TargetGrade:    dto.TargetGrade,
		WeeklySchedule: toTimeSlots(dto.WeeklySchedule),
	}

	if err := s.db.Create(class).Error; err != nil {
		return nil, errors.New("ошибка при создании класса")
	}

	return class, nil
}

// GetByID возвращает класс с составом учеников
func (s *ClassService) GetByID(id uint) (*models.Class, error) {
	var class models.Class
	err := s.db.Preload("Enrollments.Student").First(&class, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("класс не найден")
		}
		return nil, errors.New("ошибка при получении класса")
	}
	return &class, nil
}

// List возвращает все классы с их зачислениями
func (s *ClassService) List() ([]models.Class, error) {
	var classes []models.Class
	if err := s.db.Preload("Enrollments").Order("id").Find(&classes).Error; err != nil {
		return nil, errors.New("ошибка при получении списка классов")
	}
	return classes, nil
}

// Update обновляет название, ступень и расписание класса
func (s *ClassService) Update(id uint, dto UpdateClassDTO) (*models.Class, error) {
	class, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != "" {
		class.Name = dto.Name
	}
	if dto.TargetGrade != "" {
		class.TargetGrade = dto.TargetGrade
	}
	if dto.WeeklySchedule != nil {
		class.WeeklySchedule = toTimeSlots(dto.WeeklySchedule)
	}

	if err := s.db.Save(class).Error; err != nil {
		return nil, errors.New("ошибка при обновлении класса")
	}

	return class, nil
}

// Delete удаляет класс вместе с зачислениями
func (s *ClassService) Delete(id uint) error {
	class, err := s.GetByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", class.ID).Delete(&models.ClassEnrollment{}).Error; err != nil {
			return errors.New("ошибка при удалении зачислений класса")
		}
		if err := tx.Delete(class).Error; err != nil {
			return errors.New("ошибка при удалении класса")
		}
		return nil
	})
}

// AssignStudents заменяет состав класса: старые зачисления удаляются,
// новый список сохраняется целиком
func (s *ClassService) AssignStudents(id uint, dto AssignStudentsDTO) (*models.Class, error) {
	class, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	rows := enrollmentRows(class.ID, dto.StudentIDs)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_id = ?", class.ID).Delete(&models.ClassEnrollment{}).Error; err != nil {
			return errors.New("ошибка при очистке состава класса")
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.Create(&rows).Error; err != nil {
			return errors.New("ошибка при сохранении состава класса")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(class.ID)
}

// enrollmentRows строит строки зачислений, отбрасывая повторы учеников
func enrollmentRows(classID uint, studentIDs []uint) []models.ClassEnrollment {
	seen := make(map[uint]bool, len(studentIDs))
	rows := make([]models.ClassEnrollment, 0, len(studentIDs))
	for _, studentID := range studentIDs {
		if studentID == 0 || seen[studentID] {
			continue
		}
		seen[studentID] = true
		rows = append(rows, models.ClassEnrollment{
			ClassID:   classID,
			StudentID: studentID,
		})
	}
	return rows
}

// toTimeSlots конвертирует DTO расписания в модель
func toTimeSlots(slots []TimeSlotDTO) []models.TimeSlot {
	out := make([]models.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		out = append(out, models.TimeSlot{
			Day:   slot.Day,
			Start: slot.Start,
			End:   slot.End,
		})
	}
	return out
}
