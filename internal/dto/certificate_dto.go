package dto

// CertificateGenerateRequest describes the payload for issuing a completion
// certificate.
type CertificateGenerateRequest struct {
	CourseID string `json:"courseId" validate:"required"`
}
