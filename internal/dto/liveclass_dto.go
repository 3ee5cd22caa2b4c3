package dto

// LiveClassCreateRequest describes the payload for scheduling a live class.
type LiveClassCreateRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"omitempty"`
	DiscordLink string `json:"discordLink" validate:"omitempty,url"`
	CourseID    string `json:"courseId" validate:"required"`
}
