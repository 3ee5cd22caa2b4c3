package models

import "time"

// DefaultPassingScore applies when an exam does not specify one.
const DefaultPassingScore = 70

// Question is a single multiple-choice exam question. CorrectAnswer is the
// index into Options.
type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Exam is a graded assessment attached to a course.
type Exam struct {
	ID           string     `json:"id"`
	CourseID     string     `json:"courseId"`
	Title        string     `json:"title,omitempty"`
	Questions    []Question `json:"questions"`
	PassingScore float64    `json:"passingScore"`
	CreatedBy    string     `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Submission is a graded exam attempt.
type Submission struct {
	ID          string    `json:"id"`
	ExamID      string    `json:"examId"`
	UserID      string    `json:"userId"`
	Answers     []int     `json:"answers"`
	Score       float64   `json:"score"`
	Passed      bool      `json:"passed"`
	SubmittedAt time.Time `json:"submittedAt"`
}
