package dto

// PlatformStats aggregates marketplace-wide counts for the admin dashboard.
type PlatformStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalCourses      int `json:"totalCourses"`
	TotalEnrollments  int `json:"totalEnrollments"`
	TotalCertificates int `json:"totalCertificates"`
	Instructors       int `json:"instructors"`
	Students          int `json:"students"`
}
