package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

func newTestClassController() *ClassController {
	// Сервис не задается: тесты проверяют разбор и валидацию запроса,
	// до обращения к сервису дело не доходит
	return &ClassController{validator: validator.New()}
}

func TestCreateClassInvalidBody(t *testing.T) {
	controller := newTestClassController()

	req, err := http.NewRequest("POST", "/api/classes", strings.NewReader("{not json"))
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	controller.CreateClass(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusBadRequest)
	}
}

func TestCreateClassValidation(t *testing.T) {
	controller := newTestClassController()

	tests := []struct {
		name string
		body string
	}{
		{"нет названия", `{"target_grade": "중"}`},
		{"неверный день недели", `{"name": "수학 A반", "weekly_schedule": [{"day": "Monday", "start": "16:00", "end": "17:30"}]}`},
		{"неверный формат времени", `{"name": "수학 A반", "weekly_schedule": [{"day": "월", "start": "4pm", "end": "17:30"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/classes", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}

			rr := httptest.NewRecorder()
			controller.CreateClass(rr, req)

			if status := rr.Code; status != http.StatusBadRequest {
				t.Errorf("handler returned wrong status code: got %v want %v",
					status, http.StatusBadRequest)
			}
		})
	}
}

func TestAssignStudentsValidation(t *testing.T) {
	controller := newTestClassController()

	req, err := http.NewRequest("PUT", "/api/classes/1/students", strings.NewReader(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "1"})

	rr := httptest.NewRecorder()
	controller.AssignStudents(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusBadRequest)
	}
}

func TestAssignStudentsInvalidClassID(t *testing.T) {
	controller := newTestClassController()

	req, err := http.NewRequest("PUT", "/api/classes/abc/students", strings.NewReader(`{"student_ids": [1]}`))
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})

	rr := httptest.NewRecorder()
	controller.AssignStudents(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusBadRequest)
	}
}
