package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func newTestEvaluationController() *EvaluationController {
	return &EvaluationController{validator: validator.New()}
}

func TestCreateClassLogValidation(t *testing.T) {
	controller := newTestEvaluationController()

	tests := []struct {
		name string
		body string
	}{
		{"нет класса", `{"class_date": "2024-03-12", "evaluations": [{"student_id": 1, "attendance_status": "PRESENT", "homework_status": "COMPLETE", "understanding_score": 4, "attitude_score": 5}]}`},
		{"нет даты занятия", `{"class_id": 1, "evaluations": [{"student_id": 1, "attendance_status": "PRESENT", "homework_status": "COMPLETE", "understanding_score": 4, "attitude_score": 5}]}`},
		{"нет оценок", `{"class_id": 1, "class_date": "2024-03-12", "evaluations": []}`},
		{"неверный статус посещения", `{"class_id": 1, "class_date": "2024-03-12", "evaluations": [{"student_id": 1, "attendance_status": "SLEEPING", "homework_status": "COMPLETE", "understanding_score": 4, "attitude_score": 5}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest("POST", "/api/evaluations", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}

			rr := httptest.NewRecorder()
			controller.CreateClassLog(rr, req)

			if status := rr.Code; status != http.StatusBadRequest {
				t.Errorf("handler returned wrong status code: got %v want %v",
					status, http.StatusBadRequest)
			}
		})
	}
}
