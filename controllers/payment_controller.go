package controllers

import (
	"academyProject/database"
	"academyProject/services"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// PaymentController обрабатывает запросы, связанные с оплатами обучения
type PaymentController struct {
	paymentService *services.PaymentService
	validator      *validator.Validate
}

// NewPaymentController создает новый экземпляр PaymentController
func NewPaymentController(db *database.Database, email *services.EmailService) *PaymentController {
	return &PaymentController{
		paymentService: services.NewPaymentService(db.GetDB(), email),
		validator:      validator.New(),
	}
}

// GetMonthlySummary обрабатывает запрос месячной сводки оплат.
// Просматриваемый месяц задается параметрами year и month,
// по умолчанию берется текущий
func (c *PaymentController) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	// Разбираем параметры просматриваемого месяца
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}
		year = parsed
	}
	if v := r.URL.Query().Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			http.Error(w, "Invalid month", http.StatusBadRequest)
			return
		}
		month = parsed
	}

	// Собираем сводку
	summary, err := c.paymentService.MonthlySummary(year, month, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}

// RecordPayment обрабатывает запрос на регистрацию оплаты
func (c *PaymentController) RecordPayment(w http.ResponseWriter, r *http.Request) {
	// Создаем DTO для запроса
	var dto services.RecordPaymentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validateRequest(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Регистрируем оплату
	payment, err := c.paymentService.RecordPayment(dto)
	if err != nil {
		if errors.Is(err, services.ErrMonthAlreadySettled) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(payment)
}

// DeletePayment обрабатывает запрос на удаление записи об оплате
func (c *PaymentController) DeletePayment(w http.ResponseWriter, r *http.Request) {
	// Получаем ID оплаты из URL
	vars := mux.Vars(r)
	paymentID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		http.Error(w, "Invalid payment ID", http.StatusBadRequest)
		return
	}

	// Удаляем оплату
	if err := c.paymentService.DeletePayment(uint(paymentID)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SendReminder обрабатывает запрос на отправку напоминания о задолженности
func (c *PaymentController) SendReminder(w http.ResponseWriter, r *http.Request) {
	// Получаем ID ученика из URL
	vars := mux.Vars(r)
	studentID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	// Отправляем напоминание
	arrears, err := c.paymentService.SendArrearsReminder(uint(studentID), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoArrears):
			http.Error(w, err.Error(), http.StatusConflict)
		case errors.Is(err, services.ErrNoParentContact):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]int64{"total_unpaid": arrears})
}

// validateRequest валидирует DTO и возвращает ошибки валидации
func (c *PaymentController) validateRequest(dto interface{}) error {
	if err := c.validator.Struct(dto); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				errorMessages = append(errorMessages, "поле "+e.Field()+" обязательно")
			case "gte":
				errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть не меньше "+e.Param())
			case "lte":
				errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть не больше "+e.Param())
			case "oneof":
				errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть одним из: "+e.Param())
			case "datetime":
				errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть датой в формате "+e.Param())
			default:
				errorMessages = append(errorMessages, "поле "+e.Field()+" заполнено неверно")
			}
		}
		return errors.New(strings.Join(errorMessages, "; "))
	}
	return nil
}
