package dto

import "github.com/skillmarket/skillmarket-api/internal/models"

// EnrollRequest describes the payload for enrolling in a course.
type EnrollRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}

// ProgressUpdateRequest describes the payload for recording lesson completion
// or overwriting overall progress. Both fields are optional; the server does
// not clamp or enforce monotonic progress.
type ProgressUpdateRequest struct {
	LessonID string   `json:"lessonId" validate:"omitempty,max=255"`
	Progress *float64 `json:"progress"`
}

// EnrollmentWithCourse joins an enrollment with its course record for listing.
type EnrollmentWithCourse struct {
	models.Enrollment
	Course models.Course `json:"course"`
}
