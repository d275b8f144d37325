package billing

import (
	"time"
)

// Period представляет расчетный период — один календарный месяц,
// за который начисляется фиксированная плата за обучение
type Period struct {
	Year  int
	Month time.Month
}

// PeriodOf возвращает расчетный период, в который попадает дата
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Next возвращает следующий расчетный период
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// After проверяет, что период p наступает позже периода q
func (p Period) After(q Period) bool {
	if p.Year != q.Year {
		return p.Year > q.Year
	}
	return p.Month > q.Month
}

// Start возвращает первый день периода (полночь UTC)
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay возвращает номер последнего календарного дня периода
func (p Period) LastDay() int {
	// Нулевой день следующего месяца — это последний день текущего
	return time.Date(p.Year, p.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Contains проверяет, попадает ли дата в расчетный период
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// StudentTerms представляет условия оплаты ученика.
// EnrollmentDate может отсутствовать — в этом случае периоды
// не строятся и задолженность всегда равна нулю
type StudentTerms struct {
	EnrollmentDate *time.Time
	TuitionFee     int64
	PaymentDay     int
}

// PaymentRecord представляет одну запись из журнала оплат ученика.
// Сумма не сверяется с платой за обучение: само наличие записи
// в календарном месяце помечает месяц оплаченным
type PaymentRecord struct {
	Date   time.Time
	Amount int64
}

// clampPaymentDay приводит день оплаты к диапазону [1, 31].
// Неустановленное значение (0) трактуется как 1-е число
func clampPaymentDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > 31 {
		return 31
	}
	return day
}

// DueDate возвращает срок оплаты периода: день paymentDay,
// прижатый к последнему дню месяца (полночь UTC).
// Например, 31-е число в феврале превращается в 28-е или 29-е
func DueDate(p Period, paymentDay int) time.Time {
	day := clampPaymentDay(paymentDay)
	if last := p.LastDay(); day > last {
		day = last
	}
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

// IsSettledForMonth проверяет, оплачен ли расчетный период:
// достаточно хотя бы одной записи об оплате в этом календарном месяце
func IsSettledForMonth(payments []PaymentRecord, p Period) bool {
	for _, payment := range payments {
		if p.Contains(payment.Date) {
			return true
		}
	}
	return false
}

// ComputeArrears считает накопленную задолженность ученика:
// сумму платы за все наступившие и неоплаченные расчетные периоды
// от месяца зачисления до периода asOf включительно.
//
// Период учитывается только после наступления срока оплаты
// относительно today; периоды с будущим сроком пропускаются.
// Функция чистая: текущую дату передает вызывающая сторона
func ComputeArrears(terms StudentTerms, payments []PaymentRecord, asOf Period, today time.Time) int64 {
	// Без даты зачисления периоды не строятся — обязательств нет
	if terms.EnrollmentDate == nil || terms.EnrollmentDate.IsZero() {
		return 0
	}

	// Приводим "сегодня" к полуночи UTC, чтобы сравнение со сроками
	// оплаты не зависело от времени суток и часового пояса
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	var sum int64
	cursor := PeriodOf(*terms.EnrollmentDate)

	for !cursor.After(asOf) {
		// Срок оплаты еще не наступил — период не считается
		if DueDate(cursor, terms.PaymentDay).After(today) {
			cursor = cursor.Next()
			continue
		}

		// Период наступил и не оплачен — добавляем плату
		if !IsSettledForMonth(payments, cursor) {
			sum += terms.TuitionFee
		}

		cursor = cursor.Next()
	}

	return sum
}
