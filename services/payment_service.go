package services

import (
	"academyProject/billing"
	"academyProject/models"
	"academyProject/utils"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrMonthAlreadySettled возвращается при попытке повторной оплаты месяца
	ErrMonthAlreadySettled = errors.New("за этот месяц уже есть оплата")
	// ErrNoArrears возвращается, когда напоминать не о чем
	ErrNoArrears = errors.New("у ученика нет задолженности")
	// ErrNoParentContact возвращается, когда напоминание некому отправить
	ErrNoParentContact = errors.New("у ученика не указан email родителя")
)

// RecordPaymentDTO представляет данные для регистрации оплаты
type RecordPaymentDTO struct {
	StudentID   uint   `json:"student_id" validate:"required"`
	Amount      int64  `json:"amount" validate:"gte=0"`
	PaymentDate string `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Method      string `json:"method" validate:"omitempty,oneof=CARD CASH TRANSFER"`
	Memo        string `json:"memo" validate:"max=200"`
}

// StudentBillingRow представляет строку ученика в месячной сводке оплат
type StudentBillingRow struct {
	StudentID   uint       `json:"student_id"`
	Name        string     `json:"name"`
	SchoolName  string     `json:"school_name"`
	Grade       string     `json:"grade"`
	TuitionFee  int64      `json:"tuition_fee"`
	PaymentDay  int        `json:"payment_day"`
	IsPaid      bool       `json:"is_paid"`
	PaidDate    *time.Time `json:"paid_date,omitempty"`
	TotalUnpaid int64      `json:"total_unpaid"`
}

// MonthlySummaryDTO представляет месячную сводку оплат по всем ученикам
type MonthlySummaryDTO struct {
	Year           int                 `json:"year"`
	Month          int                 `json:"month"`
	CollectedTotal int64               `json:"collected_total"` // Собрано за просматриваемый месяц
	UnpaidCount    int                 `json:"unpaid_count"`    // Не оплативших просматриваемый месяц
	Rows           []StudentBillingRow `json:"rows"`
}

// PaymentService предоставляет методы для работы с оплатами обучения
type PaymentService struct {
	db    *gorm.DB
	email *EmailService
}

// NewPaymentService создает новый экземпляр PaymentService
func NewPaymentService(db *gorm.DB, email *EmailService) *PaymentService {
	return &PaymentService{
		db:    db,
		email: email,
	}
}

// MonthlySummary собирает сводку оплат за месяц (year, month):
// статус оплаты каждого ученика за этот месяц и накопленную задолженность
func (s *PaymentService) MonthlySummary(year, month int, now time.Time) (*MonthlySummaryDTO, error) {
	start := time.Now()

	// Получаем действующих учеников
	var students []models.Student
	if err := s.db.Where("status = ?", models.StudentStatusActive).
		Order("name").
		Find(&students).Error; err != nil {
		return nil, errors.New("ошибка при получении списка учеников")
	}

	// Получаем полный журнал оплат
	var payments []models.Payment
	if err := s.db.Find(&payments).Error; err != nil {
		return nil, errors.New("ошибка при получении журнала оплат")
	}

	asOf := billing.Period{Year: year, Month: time.Month(month)}
	summary := buildMonthlySummary(students, payments, asOf, now)
	utils.LogOperation("monthly_summary", start, nil)

	return summary, nil
}

// buildMonthlySummary собирает сводку из уже загруженных данных.
// Функция не обращается к базе, расчеты выполняет пакет billing
func buildMonthlySummary(students []models.Student, payments []models.Payment, asOf billing.Period, now time.Time) *MonthlySummaryDTO {
	// Группируем журнал оплат по ученикам
	ledgers := make(map[uint][]models.Payment)
	for _, p := range payments {
		ledgers[p.StudentID] = append(ledgers[p.StudentID], p)
	}

	summary := &MonthlySummaryDTO{
		Year:  asOf.Year,
		Month: int(asOf.Month),
		Rows:  make([]StudentBillingRow, 0, len(students)),
	}

	for _, student := range students {
		ledger := ledgers[student.ID]
		records := toPaymentRecords(ledger)

		row := StudentBillingRow{
			StudentID:  student.ID,
			Name:       student.Name,
			SchoolName: student.SchoolName,
			Grade:      student.Grade,
			TuitionFee: student.TuitionFee,
			PaymentDay: student.PaymentDay,
			IsPaid:     billing.IsSettledForMonth(records, asOf),
			TotalUnpaid: billing.ComputeArrears(billing.StudentTerms{
				EnrollmentDate: student.EnrollmentDate,
				TuitionFee:     student.TuitionFee,
				PaymentDay:     student.PaymentDay,
			}, records, asOf, now),
		}

		// Дата оплаты просматриваемого месяца для отображения в строке
		if row.IsPaid {
			for i := range ledger {
				if asOf.Contains(ledger[i].PaymentDate) {
					row.PaidDate = &ledger[i].PaymentDate
					break
				}
			}
		}

		summary.Rows = append(summary.Rows, row)

		if row.IsPaid {
			summary.CollectedTotal += student.TuitionFee
		} else {
			summary.UnpaidCount++
		}
	}

	return summary
}

// toPaymentRecords конвертирует модели оплат в записи для калькулятора
func toPaymentRecords(payments []models.Payment) []billing.PaymentRecord {
	records := make([]billing.PaymentRecord, 0, len(payments))
	for _, p := range payments {
		records = append(records, billing.PaymentRecord{
			Date:   p.PaymentDate,
			Amount: p.Amount,
		})
	}
	return records
}

// RecordPayment регистрирует оплату за месяц, в который попадает дата оплаты
func (s *PaymentService) RecordPayment(dto RecordPaymentDTO) (*models.Payment, error) {
	// Получаем ученика
	var student models.Student
	if err := s.db.Preload("Parent").First(&student, dto.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("ученик не найден")
		}
		return nil, errors.New("ошибка при получении ученика")
	}

	// Дата оплаты: из запроса или сегодняшняя
	paymentDate := time.Now()
	if dto.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", dto.PaymentDate)
		if err != nil {
			return nil, errors.New("неверный формат даты оплаты")
		}
		paymentDate = parsed
	}

	// Месяц закрывается одной записью: повторная оплата отклоняется
	period := billing.PeriodOf(paymentDate)
	var count int64
	if err := s.db.Model(&models.Payment{}).
		Where("student_id = ? AND payment_date >= ? AND payment_date < ?",
			student.ID, period.Start(), period.Next().Start()).
		Count(&count).Error; err != nil {
		return nil, errors.New("ошибка при проверке оплат за месяц")
	}
	if count > 0 {
		return nil, ErrMonthAlreadySettled
	}

	// Сумма по умолчанию — текущая плата ученика
	amount := dto.Amount
	if amount == 0 {
		amount = student.TuitionFee
	}

	method := models.PaymentMethod(dto.Method)
	if method == "" {
		method = models.PaymentMethodCard
	}

	payment := &models.Payment{
		StudentID:   student.ID,
		PaymentDate: paymentDate,
		Amount:      amount,
		Method:      method,
		Memo:        dto.Memo,
	}

	if err := s.db.Create(payment).Error; err != nil {
		utils.GetMetrics().RecordPaymentOperation("create", err)
		return nil, errors.New("ошибка при сохранении оплаты")
	}
	utils.GetMetrics().RecordPaymentOperation("create", nil)

	// Подтверждение оплаты — вспомогательное действие, его сбой не
	// откатывает запись
	if student.Parent != nil && student.Parent.Email != "" {
		if err := s.email.SendPaymentReceipt(student.Parent.Email, student.Name, amount, paymentDate); err != nil {
			utils.LogError("Не удалось отправить подтверждение оплаты для ученика %d: %v", student.ID, err)
		}
	}

	return payment, nil
}

// DeletePayment удаляет ошибочную запись об оплате
func (s *PaymentService) DeletePayment(id uint) error {
	var payment models.Payment
	if err := s.db.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("оплата не найдена")
		}
		return errors.New("ошибка при получении оплаты")
	}

	if err := s.db.Delete(&payment).Error; err != nil {
		utils.GetMetrics().RecordPaymentOperation("delete", err)
		return errors.New("ошибка при удалении оплаты")
	}
	utils.GetMetrics().RecordPaymentOperation("delete", nil)

	return nil
}

// SendArrearsReminder отправляет родителю ученика напоминание о текущей
// накопленной задолженности и возвращает ее размер
func (s *PaymentService) SendArrearsReminder(studentID uint, now time.Time) (int64, error) {
	var student models.Student
	if err := s.db.Preload("Parent").First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.New("ученик не найден")
		}
		return 0, errors.New("ошибка при получении ученика")
	}

	var payments []models.Payment
	if err := s.db.Where("student_id = ?", student.ID).Find(&payments).Error; err != nil {
		return 0, errors.New("ошибка при получении журнала оплат")
	}

	arrears := billing.ComputeArrears(billing.StudentTerms{
		EnrollmentDate: student.EnrollmentDate,
		TuitionFee:     student.TuitionFee,
		PaymentDay:     student.PaymentDay,
	}, toPaymentRecords(payments), billing.PeriodOf(now), now)

	if arrears == 0 {
		return 0, ErrNoArrears
	}
	if student.Parent == nil || student.Parent.Email == "" {
		return arrears, ErrNoParentContact
	}

	if err := s.email.SendArrearsReminder(student.Parent.Email, student.Parent.Name, student.Name, arrears); err != nil {
		utils.GetMetrics().RecordReminder(err)
		return arrears, errors.New("ошибка при отправке напоминания")
	}
	utils.GetMetrics().RecordReminder(nil)

	return arrears, nil
}
