package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

func newTestStudentController() *StudentController {
	return &StudentController{validator: validator.New()}
}

func TestAddExamScoreValidation(t *testing.T) {
	controller := newTestStudentController()

	tests := []struct {
		name string
		body string
	}{
		{"нет категории", `{"exam_name": "3월 모의고사", "score": 92}`},
		{"нет названия экзамена", `{"category": "모의고사", "score": 92}`},
		{"балл выше ста", `{"category": "내신", "exam_name": "중간고사", "score": 120}`},
		{"отрицательный балл", `{"category": "내신", "exam_name": "중간고사", "score": -5}`},
		{"неверный формат даты", `{"category": "내신", "exam_name": "중간고사", "score": 88, "exam_date": "12.03.2024"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/students/1/exams", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			req = mux.SetURLVars(req, map[string]string{"id": "1"})

			rr := httptest.NewRecorder()
			controller.AddExamScore(rr, req)

			if status := rr.Code; status != http.StatusBadRequest {
				t.Errorf("handler returned wrong status code: got %v want %v",
					status, http.StatusBadRequest)
			}
		})
	}
}

func TestDeleteExamScoreInvalidID(t *testing.T) {
	controller := newTestStudentController()

	req, err := http.NewRequest("DELETE", "/api/exams/abc", nil)
	if err != nil {
		t.Fatal(err)
	}
	req = mux.SetURLVars(req, map[string]string{"id": "abc"})

	rr := httptest.NewRecorder()
	controller.DeleteExamScore(rr, req)

	if status := rr.Code; status != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v",
			status, http.StatusBadRequest)
	}
}
