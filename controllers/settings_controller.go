package controllers

import (
	"academyProject/database"
	"academyProject/services"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// SettingsController обрабатывает запросы, связанные с настройками академии
type SettingsController struct {
	settingsService *services.SettingsService
	validator       *validator.Validate
}

// NewSettingsController создает новый экземпляр SettingsController
func NewSettingsController(db *database.Database) *SettingsController {
	return &SettingsController{
		settingsService: services.NewSettingsService(db.GetDB()),
		validator:       validator.New(),
	}
}

// GetDefaultFees обрабатывает запрос базовых плат по ступеням
func (c *SettingsController) GetDefaultFees(w http.ResponseWriter, r *http.Request) {
	fees, err := c.settingsService.GetDefaultFees()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(fees)
}

// UpdateDefaultFees обрабатывает запрос на изменение базовых плат
func (c *SettingsController) UpdateDefaultFees(w http.ResponseWriter, r *http.Request) {
	// Создаем DTO для запроса
	var dto services.DefaultFeesDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидируем DTO
	if err := c.validator.Struct(dto); err != nil {
		http.Error(w, formatValidationError(err), http.StatusBadRequest)
		return
	}

	// Сохраняем настройки
	if err := c.settingsService.UpdateDefaultFees(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Отправляем ответ
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(dto)
}
