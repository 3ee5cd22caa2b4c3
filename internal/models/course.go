package models

import "time"

// Lesson is a single unit of course content.
type Lesson struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`
}

// Course is a marketplace course. New courses start unpublished.
type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"`
	Category         string    `json:"category"`
	Level            string    `json:"level"`
	Duration         string    `json:"duration"`
	Lessons          []Lesson  `json:"lessons"`
	Topics           []string  `json:"topics"`
	Requirements     []string  `json:"requirements"`
	LearningOutcomes []string  `json:"learningOutcomes"`
	InstructorID     string    `json:"instructorId"`
	InstructorName   string    `json:"instructorName"`
	Published        bool      `json:"published"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
