package dto

// CommentCreateRequest describes the payload for commenting on a lesson.
type CommentCreateRequest struct {
	CourseID string `json:"courseId" validate:"required"`
	LessonID string `json:"lessonId" validate:"required"`
	Content  string `json:"content" validate:"required,min=1,max=4000"`
}
