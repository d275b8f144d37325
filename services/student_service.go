package services

import (
	"academyProject/models"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ParentDTO представляет данные родителя при создании ученика
type ParentDTO struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
}

// CreateStudentDTO представляет данные для создания ученика
type CreateStudentDTO struct {
	Name           string     `json:"name" validate:"required,min=1,max=50"`
	SchoolName     string     `json:"school_name" validate:"max=100"`
	Grade          string     `json:"grade" validate:"required,max=10"`
	TuitionFee     int64      `json:"tuition_fee" validate:"gte=0"`
	PaymentDay     int        `json:"payment_day" validate:"omitempty,gte=1,lte=31"`
	EnrollmentDate string     `json:"enrollment_date" validate:"omitempty,datetime=2006-01-02"`
	Parent         *ParentDTO `json:"parent"`
}

// UpdateStudentDTO представляет данные для обновления ученика
type UpdateStudentDTO struct {
	Name       string `json:"name" validate:"omitempty,min=1,max=50"`
	SchoolName string `json:"school_name" validate:"max=100"`
	Grade      string `json:"grade" validate:"omitempty,max=10"`
}

// UpdateBillingTermsDTO представляет данные для изменения условий оплаты
type UpdateBillingTermsDTO struct {
	TuitionFee *int64 `json:"tuition_fee" validate:"omitempty,gte=0"`
	PaymentDay *int   `json:"payment_day" validate:"omitempty,gte=1,lte=31"`
}

// AddExamScoreDTO представляет данные для записи результата экзамена
type AddExamScoreDTO struct {
	Category string `json:"category" validate:"required,max=20"`
	ExamName string `json:"exam_name" validate:"required,max=100"`
	Score    int    `json:"score" validate:"gte=0,lte=100"`
	ExamDate string `json:"exam_date" validate:"omitempty,datetime=2006-01-02"`
}

// StudentService предоставляет методы для работы с учениками
type StudentService struct {
	db *gorm.DB
}

// NewStudentService создает новый экземпляр StudentService
func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{db: db}
}

// Create создает ученика вместе с родителем.
// Если плата не указана, подставляется базовая плата ступени из настроек
func (s *StudentService) Create(dto CreateStudentDTO) (*models.Student, error) {
	student := &models.Student{
		Name:       dto.Name,
		SchoolName: dto.SchoolName,
		Grade:      dto.Grade,
		TuitionFee: dto.TuitionFee,
		PaymentDay: dto.PaymentDay,
		Status:     models.StudentStatusActive,
	}

	if student.PaymentDay == 0 {
		student.PaymentDay = 1
	}

	if dto.EnrollmentDate != "" {
		enrolled, err := time.Parse("2006-01-02", dto.EnrollmentDate)
		if err != nil {
			return nil, errors.New("неверный формат даты зачисления")
		}
		student.EnrollmentDate = &enrolled
	}

	// Базовая плата ступени подставляется только здесь, при создании
	// записи: калькулятор задолженности настроек не читает
	if student.TuitionFee == 0 {
		student.TuitionFee = s.defaultFeeForGrade(dto.Grade)
	}

	// Создаем родителя и ученика в одной транзакции
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if dto.Parent != nil {
			parent := &models.Parent{
				Name:        dto.Parent.Name,
				PhoneNumber: dto.Parent.PhoneNumber,
				Email:       dto.Parent.Email,
			}
			if err := tx.Create(parent).Error; err != nil {
				return errors.New("ошибка при создании родителя")
			}
			student.ParentID = &parent.ID
		}

		if err := tx.Create(student).Error; err != nil {
			return errors.New("ошибка при создании ученика")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(student.ID)
}

// GetByID возвращает ученика с данными родителя
func (s *StudentService) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.Preload("Parent").First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("ученик не найден")
		}
		return nil, errors.New("ошибка при получении ученика")
	}
	return &student, nil
}

// List возвращает учеников, отфильтрованных по подстроке имени
func (s *StudentService) List(search string) ([]models.Student, error) {
	var students []models.Student
	query := s.db.Preload("Parent").Order("name")
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Find(&students).Error; err != nil {
		return nil, errors.New("ошибка при получении списка учеников")
	}
	return students, nil
}

// Update обновляет основные данные ученика
func (s *StudentService) Update(id uint, dto UpdateStudentDTO) (*models.Student, error) {
	student, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != "" {
		student.Name = dto.Name
	}
	if dto.SchoolName != "" {
		student.SchoolName = dto.SchoolName
	}
	if dto.Grade != "" {
		student.Grade = dto.Grade
	}

	if err := s.db.Save(student).Error; err != nil {
		return nil, errors.New("ошибка при обновлении ученика")
	}

	return student, nil
}

// UpdateBillingTerms изменяет месячную плату и день оплаты ученика.
// Новая плата применяется задним числом ко всем неоплаченным месяцам
func (s *StudentService) UpdateBillingTerms(id uint, dto UpdateBillingTermsDTO) (*models.Student, error) {
	student, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if dto.TuitionFee != nil {
		student.TuitionFee = *dto.TuitionFee
		if student.TuitionFee == 0 {
			student.TuitionFee = s.defaultFeeForGrade(student.Grade)
		}
	}
	if dto.PaymentDay != nil {
		student.PaymentDay = *dto.PaymentDay
	}

	if err := s.db.Save(student).Error; err != nil {
		return nil, errors.New("ошибка при обновлении условий оплаты")
	}

	return student, nil
}

// Withdraw помечает ученика отчисленным, не трогая его журнал оплат
func (s *StudentService) Withdraw(id uint) error {
	student, err := s.GetByID(id)
	if err != nil {
		return err
	}

	student.Status = models.StudentStatusWithdrawn
	if err := s.db.Save(student).Error; err != nil {
		return errors.New("ошибка при отчислении ученика")
	}

	return nil
}

// AddExamScore записывает результат экзамена ученика.
// Дата по умолчанию — сегодняшняя
func (s *StudentService) AddExamScore(studentID uint, dto AddExamScoreDTO) (*models.ExamScore, error) {
	student, err := s.GetByID(studentID)
	if err != nil {
		return nil, err
	}

	examDate := time.Now()
	if dto.ExamDate != "" {
		parsed, err := time.Parse("2006-01-02", dto.ExamDate)
		if err != nil {
			return nil, errors.New("неверный формат даты экзамена")
		}
		examDate = parsed
	}

	score := &models.ExamScore{
		StudentID: student.ID,
		Category:  dto.Category,
		ExamName:  dto.ExamName,
		Score:     dto.Score,
		ExamDate:  examDate,
	}

	if err := s.db.Create(score).Error; err != nil {
		return nil, errors.New("ошибка при сохранении результата экзамена")
	}

	return score, nil
}

// ListExamScores возвращает историю экзаменов ученика от ранних к поздним
func (s *StudentService) ListExamScores(studentID uint) ([]models.ExamScore, error) {
	var scores []models.ExamScore
	err := s.db.Where("student_id = ?", studentID).
		Order("exam_date").
		Find(&scores).Error
	if err != nil {
		return nil, errors.New("ошибка при получении результатов экзаменов")
	}
	return scores, nil
}

// DeleteExamScore удаляет запись о результате экзамена
func (s *StudentService) DeleteExamScore(id uint) error {
	var score models.ExamScore
	if err := s.db.First(&score, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("результат экзамена не найден")
		}
		return errors.New("ошибка при получении результата экзамена")
	}

	if err := s.db.Delete(&score).Error; err != nil {
		return errors.New("ошибка при удалении результата экзамена")
	}

	return nil
}

// defaultFeeForGrade возвращает базовую плату ступени по названию класса.
// Классы записываются как "초1".."고3": 초 — начальная школа,
// 중 — средняя, 고 — старшая
func (s *StudentService) defaultFeeForGrade(grade string) int64 {
	var key string
	switch {
	case strings.Contains(grade, "초"):
		key = models.SettingFeeElementary
	case strings.Contains(grade, "중"):
		key = models.SettingFeeMiddle
	case strings.Contains(grade, "고"):
		key = models.SettingFeeHigh
	default:
		return 0
	}

	var setting models.AcademySetting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return 0
	}

	return parseFee(setting.Value)
}
