package controllers

import (
	"academyProject/database"
	"academyProject/services"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// StudentController обрабатывает запросы, связанные с учениками
type StudentController struct {
	studentService *services.StudentService
	validator      *validator.Validate
}

// NewStudentController создает новый экземпляр StudentController
func NewStudentController(db *database.Database) *StudentController {
	return &StudentController{
		studentService: services.NewStudentService(db.GetDB()),
		validator:      validator.New(),
	}
}

// CreateStudent обрабатывает запрос на создание ученика
func (c *StudentController) CreateStudent(w http.ResponseWriter, r *http.Request) {
	// Создаем DTO для запроса
	var dto services.CreateStudentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Создаем ученика
	student, err := c.studentService.Create(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(student)
}

// GetStudents обрабатывает запрос на получение списка учеников
func (c *StudentController) GetStudents(w http.ResponseWriter, r *http.Request) {
	// Фильтр по подстроке имени
	search := r.URL.Query().Get("search")

	students, err := c.studentService.List(search)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(students)
}

// GetStudent обрабатывает запрос на получение информации об ученике
func (c *StudentController) GetStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := c.studentID(w, r)
	if !ok {
		return
	}

	student, err := c.studentService.GetByID(studentID)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(student)
}

// UpdateStudent обрабатывает запрос на обновление данных ученика
func (c *StudentController) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := c.studentID(w, r)
	if !ok {
		return
	}

	// Создаем DTO для запроса
	var dto services.UpdateStudentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Обновляем ученика
	student, err := c.studentService.Update(studentID, dto)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(student)
}

// UpdateBillingTerms обрабатывает запрос на изменение условий оплаты
func (c *StudentController) UpdateBillingTerms(w http.ResponseWriter, r *http.Request) {
	studentID, ok := c.studentID(w, r)
	if !ok {
		return
	}

	// Создаем DTO для запроса
	var dto services.UpdateBillingTermsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Обновляем условия оплаты
	student, err := c.studentService.UpdateBillingTerms(studentID, dto)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(student)
}

// WithdrawStudent обрабатывает запрос на отчисление ученика
func (c *StudentController) WithdrawStudent(w http.ResponseWriter, r *http.Request) {
	studentID, ok := c.studentID(w, r)
	if !ok {
		return
	}

	if err := c.studentService.Withdraw(studentID); err != nil {
		c.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetExamScores обрабатывает запрос на получение оценок ученика
func (c *StudentController) GetExamScores(w http.ResponseWriter, r *http.Request) {
	studentID, ok := c.studentID(w, r)
	if !ok {
		return
	}

	scores, err := c.studentService.ListExamScores(studentID)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(scores)
}

// AddExamScore обрабатывает запрос на добавление оценки ученика
func (c *StudentController) AddExamScore(w http.ResponseWriter, r *http.Request) {
	studentID, ok := c.studentID(w, r)
	if !ok {
		return
	}

	// Создаем DTO для запроса
	var dto services.AddExamScoreDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Добавляем оценку
	score, err := c.studentService.AddExamScore(studentID, dto)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(score)
}

// DeleteExamScore обрабатывает запрос на удаление оценки
func (c *StudentController) DeleteExamScore(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		http.Error(w, "Invalid exam score ID", http.StatusBadRequest)
		return
	}

	if err := c.studentService.DeleteExamScore(uint(id)); err != nil {
		c.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// studentID извлекает ID ученика из URL
func (c *StudentController) studentID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		http.Error(w, "Invalid student ID", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// writeServiceError переводит ошибку сервиса в HTTP-статус
func (c *StudentController) writeServiceError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "не найден") {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// formatValidationError формирует сообщение об ошибках валидации
func formatValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var errorMessages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errorMessages = append(errorMessages, "поле "+e.Field()+" обязательно")
		case "min":
			errorMessages = append(errorMessages, "поле "+e.Field()+" короче "+e.Param())
		case "max":
			errorMessages = append(errorMessages, "поле "+e.Field()+" длиннее "+e.Param())
		case "gte":
			errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть не меньше "+e.Param())
		case "lte":
			errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть не больше "+e.Param())
		case "datetime":
			errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть датой в формате "+e.Param())
		case "email":
			errorMessages = append(errorMessages, "поле "+e.Field()+" должно быть адресом почты")
		default:
			errorMessages = append(errorMessages, "поле "+e.Field()+" заполнено неверно")
		}
	}
	return strings.Join(errorMessages, "; ")
}
