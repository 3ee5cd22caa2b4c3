package models

import "time"

// Enrollment tracks a user's progress through a course. At most one exists
// per (user, course) pair.
type Enrollment struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	CourseID         string    `json:"courseId"`
	Progress         float64   `json:"progress"`
	CompletedLessons []string  `json:"completedLessons"`
	EnrolledAt       time.Time `json:"enrolledAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// HasCompletedLesson reports whether lessonID is already recorded as completed.
func (e Enrollment) HasCompletedLesson(lessonID string) bool {
	for _, id := range e.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
