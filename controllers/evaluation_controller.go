package controllers

import (
	"academyProject/database"
	"academyProject/services"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// EvaluationController обрабатывает запросы, связанные с журналом занятий
type EvaluationController struct {
	evaluationService *services.EvaluationService
	validator         *validator.Validate
}

// NewEvaluationController создает новый экземпляр EvaluationController
func NewEvaluationController(db *database.Database) *EvaluationController {
	return &EvaluationController{
		evaluationService: services.NewEvaluationService(db.GetDB()),
		validator:         validator.New(),
	}
}

// CreateClassLog обрабатывает запрос на создание журнала занятия
func (c *EvaluationController) CreateClassLog(w http.ResponseWriter, r *http.Request) {
	// Создаем DTO для запроса
	var dto services.CreateClassLogDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Создаем журнал занятия
	classLog, err := c.evaluationService.CreateClassLog(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(classLog)
}

// GetStudentEvaluations обрабатывает запрос истории оценок ученика
func (c *EvaluationController) GetStudentEvaluations(w http.ResponseWriter, r *http.Request) {
	// Получаем ID ученика из URL
	vars := mux.Vars(r)
	studentID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return
	}

	evaluations, err := c.evaluationService.ListStudentEvaluations(uint(studentID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(evaluations)
}
