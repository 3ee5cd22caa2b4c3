package models

import "time"

// LiveClass is a scheduled live session for a course.
type LiveClass struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	DiscordLink    string    `json:"discordLink"`
	CourseID       string    `json:"courseId"`
	InstructorID   string    `json:"instructorId"`
	InstructorName string    `json:"instructorName"`
	CreatedAt      time.Time `json:"createdAt"`
}
