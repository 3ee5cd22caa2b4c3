package dto

// MessageSendRequest describes the payload for sending a direct message.
type MessageSendRequest struct {
	RecipientID string `json:"recipientId" validate:"required"`
	CourseID    string `json:"courseId" validate:"omitempty"`
	Content     string `json:"content" validate:"required,min=1,max=4000"`
}
