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

// ClassController обрабатывает запросы, связанные с классами
type ClassController struct {
	classService *services.ClassService
	validator    *validator.Validate
}

// NewClassController создает новый экземпляр ClassController
func NewClassController(db *database.Database) *ClassController {
	return &ClassController{
		classService: services.NewClassService(db.GetDB()),
		validator:    validator.New(),
	}
}

// CreateClass обрабатывает запрос на создание класса
func (c *ClassController) CreateClass(w http.ResponseWriter, r *http.Request) {
	// Создаем DTO для запроса
	var dto services.CreateClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Создаем класс
	class, err := c.classService.Create(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(class)
}

// GetClasses обрабатывает запрос на получение списка классов
func (c *ClassController) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := c.classService.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(classes)
}

// UpdateClass обрабатывает запрос на обновление класса
func (c *ClassController) UpdateClass(w http.ResponseWriter, r *http.Request) {
	classID, ok := c.classID(w, r)
	if !ok {
		return
	}

	// Создаем DTO для запроса
	var dto services.UpdateClassDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Обновляем класс
	class, err := c.classService.Update(classID, dto)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(class)
}

// DeleteClass обрабатывает запрос на удаление класса
func (c *ClassController) DeleteClass(w http.ResponseWriter, r *http.Request) {
	classID, ok := c.classID(w, r)
	if !ok {
		return
	}

	if err := c.classService.Delete(classID); err != nil {
		c.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetRoster обрабатывает запрос состава класса
func (c *ClassController) GetRoster(w http.ResponseWriter, r *http.Request) {
	classID, ok := c.classID(w, r)
	if !ok {
		return
	}

	class, err := c.classService.GetByID(classID)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(class)
}

// AssignStudents обрабатывает запрос на замену состава класса
func (c *ClassController) AssignStudents(w http.ResponseWriter, r *http.Request) {
	classID, ok := c.classID(w, r)
	if !ok {
		return
	}

	// Создаем DTO для запроса
	var dto services.AssignStudentsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Заменяем состав класса
	class, err := c.classService.AssignStudents(classID, dto)
	if err != nil {
		c.writeServiceError(w, err)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(class)
}

// classID извлекает ID класса из URL
func (c *ClassController) classID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		http.Error(w, "Invalid class ID", http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

// writeServiceError переводит ошибку сервиса в HTTP-статус
func (c *ClassController) writeServiceError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "не найден") {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
