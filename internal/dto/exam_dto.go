package dto

// QuestionPayload describes a single multiple-choice question in an exam
// creation request.
type QuestionPayload struct {
	Text          string   `json:"text" validate:"required,min=1"`
	Options       []string `json:"options" validate:"required,min=2,dive,required"`
	CorrectAnswer int      `json:"correctAnswer" validate:"gte=0"`
}

// ExamCreateRequest describes the payload for creating an exam.
type ExamCreateRequest struct {
	CourseID     string            `json:"courseId" validate:"required"`
	Title        string            `json:"title" validate:"omitempty,max=255"`
	Questions    []QuestionPayload `json:"questions" validate:"required,min=1,dive"`
	PassingScore float64           `json:"passingScore" validate:"omitempty,gte=0,lte=100"`
}

// ExamSubmitRequest describes the payload for submitting exam answers.
// Answers are option indexes aligned with the exam's question order.
type ExamSubmitRequest struct {
	Answers []int `json:"answers" validate:"required"`
}
