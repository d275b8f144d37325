package services

import (
	"academyProject/billing"
	"academyProject/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func enrolledAt(year int, month time.Month, d int) *time.Time {
	t := day(year, month, d)
	return &t
}

func TestBuildMonthlySummary(t *testing.T) {
	students := []models.Student{
		{
			ID:             1,
			Name:           "김민준",
			SchoolName:     "서울초등학교",
			Grade:          "초6",
			TuitionFee:     300000,
			PaymentDay:     15,
			EnrollmentDate: enrolledAt(2024, time.January, 10),
		},
		{
			ID:             2,
			Name:           "이서연",
			SchoolName:     "서울중학교",
			Grade:          "중2",
			TuitionFee:     350000,
			PaymentDay:     10,
			EnrollmentDate: enrolledAt(2024, time.February, 1),
		},
	}
	payments := []models.Payment{
		{StudentID: 1, PaymentDate: day(2024, time.March, 5), Amount: 300000},
		{StudentID: 2, PaymentDate: day(2024, time.February, 9), Amount: 350000},
	}

	asOf := billing.Period{Year: 2024, Month: time.March}
	summary := buildMonthlySummary(students, payments, asOf, day(2024, time.March, 20))

	require.Len(t, summary.Rows, 2)
	assert.Equal(t, 2024, summary.Year)
	assert.Equal(t, 3, summary.Month)

	// Первый ученик оплатил март, но пропустил январь и февраль
	first := summary.Rows[0]
	assert.Equal(t, uint(1), first.StudentID)
	assert.True(t, first.IsPaid)
	require.NotNil(t, first.PaidDate)
	assert.Equal(t, day(2024, time.March, 5), *first.PaidDate)
	assert.Equal(t, int64(600000), first.TotalUnpaid)

	// Второй ученик оплатил февраль, но не март
	second := summary.Rows[1]
	assert.Equal(t, uint(2), second.StudentID)
	assert.False(t, second.IsPaid)
	assert.Nil(t, second.PaidDate)
	assert.Equal(t, int64(350000), second.TotalUnpaid)

	// Собрано за март — плата оплативших, неплательщик один
	assert.Equal(t, int64(300000), summary.CollectedTotal)
	assert.Equal(t, 1, summary.UnpaidCount)
}

func TestBuildMonthlySummaryEmptyRoster(t *testing.T) {
	asOf := billing.Period{Year: 2024, Month: time.March}
	summary := buildMonthlySummary(nil, nil, asOf, day(2024, time.March, 20))

	assert.Empty(t, summary.Rows)
	assert.Zero(t, summary.CollectedTotal)
	assert.Zero(t, summary.UnpaidCount)
}

// Ученик без даты зачисления попадает в сводку с нулевой задолженностью
func TestBuildMonthlySummaryNoEnrollmentDate(t *testing.T) {
	students := []models.Student{
		{ID: 3, Name: "박지훈", Grade: "고1", TuitionFee: 400000, PaymentDay: 1},
	}

	asOf := billing.Period{Year: 2024, Month: time.June}
	summary := buildMonthlySummary(students, nil, asOf, day(2024, time.June, 20))

	require.Len(t, summary.Rows, 1)
	assert.False(t, summary.Rows[0].IsPaid)
	assert.Zero(t, summary.Rows[0].TotalUnpaid)
}

func TestFormatWon(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{900, "900"},
		{300000, "300,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatWon(tt.amount))
	}
}

func TestArrearsReminderBody(t *testing.T) {
	body := arrearsReminderBody("김영희", "김민준", 600000)

	assert.Contains(t, body, "김영희 학부모님")
	assert.Contains(t, body, "김민준 학생")
	assert.Contains(t, body, "600,000원")
}

// На каждого ученика отправляется не больше одного напоминания за период
func TestSchedulerMarkNotified(t *testing.T) {
	scheduler := NewArrearsSchedulerService(nil, nil, time.Hour)

	march := billing.Period{Year: 2024, Month: time.March}
	april := billing.Period{Year: 2024, Month: time.April}

	assert.True(t, scheduler.markNotified(1, march))
	assert.False(t, scheduler.markNotified(1, march))

	// Другой ученик и другой период отмечаются независимо
	assert.True(t, scheduler.markNotified(2, march))
	assert.True(t, scheduler.markNotified(1, april))
}
