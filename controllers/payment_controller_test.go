package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func newTestPaymentController() *PaymentController {
	// Сервис не задается: тесты проверяют разбор и валидацию запроса,
	// до обращения к сервису дело не доходит
	return &PaymentController{validator: validator.New()}
}

func TestRecordPaymentInvalidBody(t *testing.T) {
	controller := newTestPaymentController()

	req, err := http.NewRequest("POST", "/api/payments", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	controller.RecordPayment(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusBadRequest)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	controller := newTestPaymentController()

	tests := []struct {
		name string
		body string
	}{
		{"нет ученика", `{"amount": 300000}`},
		{"отрицательная сумма", `{"student_id": 1, "amount": -100}`},
		{"неверный способ оплаты", `{"student_id": 1, "method": "BITCOIN"}`},
		{"неверный формат даты", `{"student_id": 1, "payment_date": "12.03.2024"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/payments", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}

			rr := httptest.NewRecorder()
			controller.RecordPayment(rr, req)

			if status := rr.Code; status != http.StatusBadRequest {
				t.Errorf("handler returned wrong status code: got %v want %v",
					status, http.StatusBadRequest)
			}
		})
	}
}

func TestGetMonthlySummaryInvalidMonth(t *testing.T) {
	controller := newTestPaymentController()

	tests := []struct {
		name  string
		query string
	}{
		{"нечисловой месяц", "?year=2024&month=march"},
		{"месяц вне диапазона", "?year=2024&month=13"},
		{"нечисловой год", "?year=abc&month=3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("GET", "/api/payments/summary"+tt.query, nil)
			if err != nil {
				t.Fatal(err)
			}

			rr := httptest.NewRecorder()
			controller.GetMonthlySummary(rr, req)

			if status := rr.Code; status != http.StatusBadRequest {
				t.Errorf("handler returned wrong status code: got %v want %v",
					status, http.StatusBadRequest)
			}
		})
	}
}
