package billing

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func TestPeriodNext(t *testing.T) {
	tests := []struct {
		name string
		in   Period
		want Period
	}{
		{"обычный месяц", Period{2024, time.March}, Period{2024, time.April}},
		{"переход через год", Period{2024, time.December}, Period{2025, time.January}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Next(); got != tt.want {
				t.Errorf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeriodLastDay(t *testing.T) {
	tests := []struct {
		name string
		in   Period
		want int
	}{
		{"январь", Period{2024, time.January}, 31},
		{"апрель", Period{2024, time.April}, 30},
		{"февраль високосного года", Period{2024, time.February}, 29},
		{"февраль обычного года", Period{2023, time.February}, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.LastDay(); got != tt.want {
				t.Errorf("LastDay() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDueDateClamping(t *testing.T) {
	tests := []struct {
		name       string
		period     Period
		paymentDay int
		want       time.Time
	}{
		{"день в пределах месяца", Period{2024, time.March}, 15, date(2024, time.March, 15)},
		{"31-е в 30-дневном месяце", Period{2024, time.April}, 31, date(2024, time.April, 30)},
		{"31-е в феврале високосного года", Period{2024, time.February}, 31, date(2024, time.February, 29)},
		{"31-е в феврале обычного года", Period{2023, time.February}, 31, date(2023, time.February, 28)},
		{"неустановленный день — 1-е число", Period{2024, time.March}, 0, date(2024, time.March, 1)},
		{"день больше 31 прижимается к границе", Period{2024, time.January}, 45, date(2024, time.January, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DueDate(tt.period, tt.paymentDay); !got.Equal(tt.want) {
				t.Errorf("DueDate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSettledForMonth(t *testing.T) {
	payments := []PaymentRecord{
		{Date: date(2024, time.January, 5), Amount: 300000},
		{Date: date(2024, time.March, 20), Amount: 150000},
	}

	if !IsSettledForMonth(payments, Period{2024, time.January}) {
		t.Error("январь должен быть оплачен")
	}
	if IsSettledForMonth(payments, Period{2024, time.February}) {
		t.Error("февраль не должен быть оплачен")
	}
	// Сумма не сверяется с платой: частичная оплата закрывает месяц
	if !IsSettledForMonth(payments, Period{2024, time.March}) {
		t.Error("март должен быть оплачен независимо от суммы")
	}
	if IsSettledForMonth(nil, Period{2024, time.January}) {
		t.Error("пустой журнал не закрывает ни один месяц")
	}
}

func TestIsSettledForMonthIdempotent(t *testing.T) {
	one := []PaymentRecord{{Date: date(2024, time.February, 12), Amount: 300000}}
	two := append(one, PaymentRecord{Date: date(2024, time.February, 25), Amount: 300000})

	if IsSettledForMonth(one, Period{2024, time.February}) != IsSettledForMonth(two, Period{2024, time.February}) {
		t.Error("вторая оплата в том же месяце не должна менять статус")
	}
}

func TestComputeArrears(t *testing.T) {
	tests := []struct {
		name     string
		terms    StudentTerms
		payments []PaymentRecord
		asOf     Period
		today    time.Time
		want     int64
	}{
		{
			name:  "три наступивших неоплаченных месяца",
			terms: StudentTerms{EnrollmentDate: datePtr(2024, time.January, 10), TuitionFee: 300000, PaymentDay: 15},
			asOf:  Period{2024, time.March},
			today: date(2024, time.March, 20),
			want:  900000,
		},
		{
			name:     "оплаченный месяц исключается",
			terms:    StudentTerms{EnrollmentDate: datePtr(2024, time.January, 10), TuitionFee: 300000, PaymentDay: 15},
			payments: []PaymentRecord{{Date: date(2024, time.February, 12), Amount: 300000}},
			asOf:     Period{2024, time.March},
			today:    date(2024, time.March, 20),
			want:     600000,
		},
		{
			name:  "срок первого месяца еще не наступил",
			terms: StudentTerms{EnrollmentDate: datePtr(2024, time.January, 10), TuitionFee: 300000, PaymentDay: 15},
			asOf:  Period{2024, time.January},
			today: date(2024, time.January, 12),
			want:  0,
		},
		{
			name:  "срок 31-го в феврале наступает ровно 29-го",
			terms: StudentTerms{EnrollmentDate: datePtr(2024, time.February, 1), TuitionFee: 300000, PaymentDay: 31},
			asOf:  Period{2024, time.February},
			today: date(2024, time.February, 29),
			want:  300000,
		},
		{
			name:  "за день до прижатого срока долга еще нет",
			terms: StudentTerms{EnrollmentDate: datePtr(2024, time.February, 1), TuitionFee: 300000, PaymentDay: 31},
			asOf:  Period{2024, time.February},
			today: date(2024, time.February, 28),
			want:  0,
		},
		{
			name:  "без даты зачисления обязательств нет",
			terms: StudentTerms{EnrollmentDate: nil, TuitionFee: 300000, PaymentDay: 15},
			asOf:  Period{2024, time.December},
			today: date(2024, time.December, 31),
			want:  0,
		},
		{
			name:  "нулевая плата дает нулевую задолженность",
			terms: StudentTerms{EnrollmentDate: datePtr(2023, time.March, 1), TuitionFee: 0, PaymentDay: 1},
			asOf:  Period{2024, time.March},
			today: date(2024, time.March, 20),
			want:  0,
		},
		{
			name:  "окно просмотра раньше месяца зачисления",
			terms: StudentTerms{EnrollmentDate: datePtr(2024, time.June, 1), TuitionFee: 300000, PaymentDay: 1},
			asOf:  Period{2024, time.March},
			today: date(2024, time.December, 31),
			want:  0,
		},
		{
			name:  "переход через границу года",
			terms: StudentTerms{EnrollmentDate: datePtr(2023, time.November, 5), TuitionFee: 200000, PaymentDay: 10},
			asOf:  Period{2024, time.February},
			today: date(2024, time.February, 15),
			want:  800000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeArrears(tt.terms, tt.payments, tt.asOf, tt.today)
			if got != tt.want {
				t.Errorf("ComputeArrears() = %d, want %d", got, tt.want)
			}
		})
	}
}

// Время суток и часовой пояс "сегодня" не должны влиять на результат
func TestComputeArrearsIgnoresTimeOfDay(t *testing.T) {
	terms := StudentTerms{EnrollmentDate: datePtr(2024, time.January, 10), TuitionFee: 300000, PaymentDay: 15}
	asOf := Period{2024, time.January}

	loc := time.FixedZone("KST", 9*60*60)
	morning := time.Date(2024, time.January, 15, 0, 30, 0, 0, loc)
	evening := time.Date(2024, time.January, 15, 23, 30, 0, 0, loc)

	if got := ComputeArrears(terms, nil, asOf, morning); got != 300000 {
		t.Errorf("утром 15-го долг = %d, want 300000", got)
	}
	if got := ComputeArrears(terms, nil, asOf, evening); got != 300000 {
		t.Errorf("вечером 15-го долг = %d, want 300000", got)
	}
}

// Без новых оплат задолженность со временем только растет
func TestComputeArrearsMonotonic(t *testing.T) {
	terms := StudentTerms{EnrollmentDate: datePtr(2024, time.January, 10), TuitionFee: 300000, PaymentDay: 15}
	payments := []PaymentRecord{{Date: date(2024, time.January, 14), Amount: 300000}}

	var prev int64
	for day := date(2024, time.January, 1); day.Before(date(2024, time.July, 1)); day = day.AddDate(0, 0, 1) {
		got := ComputeArrears(terms, payments, PeriodOf(day), day)
		if got < prev {
			t.Fatalf("задолженность уменьшилась с %d до %d на дату %v", prev, got, day)
		}
		prev = got
	}
}

// Известное упрощение: текущая плата применяется задним числом ко всем
// прошлым месяцам, история изменений платы не ведется
func TestComputeArrearsFlatFeeAppliedRetroactively(t *testing.T) {
	terms := StudentTerms{EnrollmentDate: datePtr(2024, time.January, 1), TuitionFee: 350000, PaymentDay: 1}

	got := ComputeArrears(terms, nil, Period{2024, time.March}, date(2024, time.March, 15))
	if got != 3*350000 {
		t.Errorf("ComputeArrears() = %d, want %d", got, 3*350000)
	}
}
