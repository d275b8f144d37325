package services

import (
	"testing"

	"academyProject/models"

	"github.com/stretchr/testify/assert"
)

func TestEnrollmentRows(t *testing.T) {
	rows := enrollmentRows(3, []uint{5, 7, 5, 0, 9})

	assert.Equal(t, []models.ClassEnrollment{
		{ClassID: 3, StudentID: 5},
		{ClassID: 3, StudentID: 7},
		{ClassID: 3, StudentID: 9},
	}, rows, "повторы и нулевые ID должны отбрасываться")
}

func TestEnrollmentRowsEmpty(t *testing.T) {
	assert.Empty(t, enrollmentRows(3, nil))
	assert.Empty(t, enrollmentRows(3, []uint{0, 0}))
}

func TestToTimeSlots(t *testing.T) {
	slots := toTimeSlots([]TimeSlotDTO{
		{Day: "월", Start: "16:00", End: "17:30"},
		{Day: "목", Start: "16:00", End: "17:30"},
	})

	assert.Equal(t, []models.TimeSlot{
		{Day: "월", Start: "16:00", End: "17:30"},
		{Day: "목", Start: "16:00", End: "17:30"},
	}, slots)
}
