package services

import (
	"academyProject/billing"
	"academyProject/models"
	"academyProject/utils"
	"errors"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"
)

// ArrearsSchedulerService периодически обходит список учеников,
// пересчитывает накопленную задолженность и рассылает напоминания
type ArrearsSchedulerService struct {
	db       *gorm.DB
	email    *EmailService
	interval time.Duration

	mu sync.Mutex
	// Чтобы не заваливать родителей письмами, на каждого ученика
	// отправляется не больше одного напоминания за расчетный период
	notified map[uint]billing.Period
}

// NewArrearsSchedulerService создает новый экземпляр ArrearsSchedulerService
func NewArrearsSchedulerService(db *gorm.DB, email *EmailService, interval time.Duration) *ArrearsSchedulerService {
	return &ArrearsSchedulerService{
		db:       db,
		email:    email,
		interval: interval,
		notified: make(map[uint]billing.Period),
	}
}

// Start запускает планировщик обхода задолженностей
func (s *ArrearsSchedulerService) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				if err := s.sweepArrears(time.Now()); err != nil {
					log.Printf("Ошибка при обходе задолженностей: %v", err)
				}
			}
		}
	}()
}

// sweepArrears пересчитывает задолженность всех действующих учеников
// и отправляет напоминания тем, у кого она появилась
func (s *ArrearsSchedulerService) sweepArrears(now time.Time) error {
	// Получаем действующих учеников с данными родителей
	var students []models.Student
	if err := s.db.Where("status = ?", models.StudentStatusActive).
		Preload("Parent").
		Find(&students).Error; err != nil {
		return errors.New("ошибка при получении списка учеников")
	}

	// Получаем полный журнал оплат
	var payments []models.Payment
	if err := s.db.Find(&payments).Error; err != nil {
		return errors.New("ошибка при получении журнала оплат")
	}

	ledgers := make(map[uint][]billing.PaymentRecord)
	for _, p := range payments {
		ledgers[p.StudentID] = append(ledgers[p.StudentID], billing.PaymentRecord{
			Date:   p.PaymentDate,
			Amount: p.Amount,
		})
	}

	period := billing.PeriodOf(now)
	var inArrears int
	var totalArrears int64

	for _, student := range students {
		arrears := billing.ComputeArrears(billing.StudentTerms{
			EnrollmentDate: student.EnrollmentDate,
			TuitionFee:     student.TuitionFee,
			PaymentDay:     student.PaymentDay,
		}, ledgers[student.ID], period, now)

		if arrears == 0 {
			continue
		}
		utils.LogDebug("Задолженность ученика %d на %v: %d", student.ID, period, arrears)

		inArrears++
		totalArrears += arrears

		if !s.markNotified(student.ID, period) {
			continue
		}

		if student.Parent == nil || student.Parent.Email == "" {
			utils.LogInfo("У ученика %d задолженность %d, но контакт родителя не указан", student.ID, arrears)
			continue
		}

		if err := s.email.SendArrearsReminder(student.Parent.Email, student.Parent.Name, student.Name, arrears); err != nil {
			utils.GetMetrics().RecordReminder(err)
			utils.LogError("Не удалось отправить напоминание для ученика %d: %v", student.ID, err)
			continue
		}
		utils.GetMetrics().RecordReminder(nil)
	}

	utils.GetMetrics().RecordSweep(len(students), inArrears, totalArrears)
	utils.LogInfo("Обход задолженностей завершен: учеников %d, должников %d, всего %d",
		len(students), inArrears, totalArrears)

	return nil
}

// markNotified отмечает отправку напоминания за период и возвращает true,
// если напоминание в этом периоде еще не отправлялось
func (s *ArrearsSchedulerService) markNotified(studentID uint, period billing.Period) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, ok := s.notified[studentID]; ok && last == period {
		return false
	}
	s.notified[studentID] = period
	return true
}
