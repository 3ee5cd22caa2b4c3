package models

import "time"

// Reply is a nested response to a comment.
type Reply struct {
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Comment is a discussion entry attached to a course lesson.
type Comment struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	LessonID  string    `json:"lessonId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Content   string    `json:"content"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"createdAt"`
}
