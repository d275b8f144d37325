package services

import (
	"academyProject/config"
	"fmt"
	"gopkg.in/gomail.v2"
	"strconv"
	"time"
)

// EmailService предоставляет методы для отправки email
type EmailService struct {
	dialer *gomail.Dialer
	from   string
	config *config.Config
}

// NewEmailService создает новый экземпляр EmailService
func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
	)

	return &EmailService{
		dialer: dialer,
		from:   cfg.SMTP.From,
		config: cfg,
	}
}

// SendEmail отправляет email
func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("ошибка отправки email: %v", err)
	}

	return nil
}

// SendArrearsReminder отправляет родителю напоминание о задолженности
func (s *EmailService) SendArrearsReminder(to, parentName, studentName string, totalUnpaid int64) error {
	subject := "[Ban's Math] 미납 수강료 안내"
	body := arrearsReminderBody(parentName, studentName, totalUnpaid)
	return s.SendEmail(to, subject, body)
}

// SendPaymentReceipt отправляет подтверждение принятой оплаты
func (s *EmailService) SendPaymentReceipt(to, studentName string, amount int64, paymentDate time.Time) error {
	subject := "[Ban's Math] 수강료 납부 확인"
	body := fmt.Sprintf(`
		<h2>수강료 납부 확인</h2>
		<p>학생: %s</p>
		<p>납부 금액: %s원</p>
		<p>납부일: %s</p>
		<p>감사합니다.</p>
	`, studentName, FormatWon(amount), paymentDate.Format("2006-01-02"))

	return s.SendEmail(to, subject, body)
}

// arrearsReminderBody формирует текст напоминания о задолженности.
// Текст повторяет SMS-сообщение, которое академия отправляла вручную
func arrearsReminderBody(parentName, studentName string, totalUnpaid int64) string {
	return fmt.Sprintf(`
		<h2>미납 수강료 안내</h2>
		<p>%s 학부모님, %s 학생의 현재 총 미납 수강료는 %s원입니다.</p>
		<p>확인 부탁드립니다.</p>
		<p>- Ban's Math</p>
	`, parentName, studentName, FormatWon(totalUnpaid))
}

// FormatWon форматирует сумму в вонах с разделителями тысяч
func FormatWon(amount int64) string {
	str := strconv.FormatInt(amount, 10)
	negative := false
	if amount < 0 {
		negative = true
		str = str[1:]
	}

	// Вставляем запятую каждые три цифры справа
	var out []byte
	for i, digit := range []byte(str) {
		if i > 0 && (len(str)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, digit)
	}

	if negative {
		return "-" + string(out)
	}
	return string(out)
}
