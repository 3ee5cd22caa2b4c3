package dto

import "github.com/skillmarket/skillmarket-api/internal/models"

// CourseCreateRequest describes the payload for creating a course.
// Instructor identity, timestamps and the published flag are stamped
// server-side.
type CourseCreateRequest struct {
	Title            string          `json:"title" validate:"required,min=3,max=255"`
	Description      string          `json:"description" validate:"required,min=10"`
	Price            float64         `json:"price" validate:"gte=0"`
	Category         string          `json:"category" validate:"omitempty,max=128"`
	Level            string          `json:"level" validate:"omitempty,max=64"`
	Duration         string          `json:"duration" validate:"omitempty,max=64"`
	Lessons          []models.Lesson `json:"lessons" validate:"omitempty,dive"`
	Topics           []string        `json:"topics"`
	Requirements     []string        `json:"requirements"`
	LearningOutcomes []string        `json:"learningOutcomes"`
}

// CourseUpdateRequest describes the patch payload for updating a course.
// Nil fields keep the stored value.
type CourseUpdateRequest struct {
	Title            *string          `json:"title" validate:"omitempty,min=3,max=255"`
	Description      *string          `json:"description" validate:"omitempty,min=10"`
	Price            *float64         `json:"price" validate:"omitempty,gte=0"`
	Category         *string          `json:"category" validate:"omitempty,max=128"`
	Level            *string          `json:"level" validate:"omitempty,max=64"`
	Duration         *string          `json:"duration" validate:"omitempty,max=64"`
	Lessons          *[]models.Lesson `json:"lessons" validate:"omitempty,dive"`
	Topics           *[]string        `json:"topics"`
	Requirements     *[]string        `json:"requirements"`
	LearningOutcomes *[]string        `json:"learningOutcomes"`
	Published        *bool            `json:"published"`
}
