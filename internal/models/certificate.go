package models

import "time"

// Certificate records course completion. Course title and instructor name are
// denormalized snapshots taken at issuance and never updated afterwards.
type Certificate struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	UserName          string    `json:"userName"`
	CourseID          string    `json:"courseId"`
	CourseTitle       string    `json:"courseTitle"`
	InstructorName    string    `json:"instructorName"`
	CertificateNumber string    `json:"certificateNumber"`
	IssuedAt          time.Time `json:"issuedAt"`
}
