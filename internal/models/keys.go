package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record key prefixes. Every entity lives in the shared key space under its
// own prefix; side-lists reuse the user/course/lesson prefixes.
const (
	UserPrefix        = "user:"
	CoursePrefix      = "course:"
	EnrollmentPrefix  = "enrollment:"
	CertificatePrefix = "certificate:"
)

func newRecordID(kind string, now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s:%d:%s", kind, now.UnixMilli(), suffix)
}

// NewUserID mints a user record key.
func NewUserID(now time.Time) string { return newRecordID("user", now) }

// NewCourseID mints a course record key.
func NewCourseID(now time.Time) string { return newRecordID("course", now) }

// NewCommentID mints a comment record key.
func NewCommentID(now time.Time) string { return newRecordID("comment", now) }

// NewMessageID mints a message record key.
func NewMessageID(now time.Time) string { return newRecordID("message", now) }

// NewExamID mints an exam record key.
func NewExamID(now time.Time) string { return newRecordID("exam", now) }

// NewCertificateID mints a certificate record key.
func NewCertificateID(now time.Time) string { return newRecordID("certificate", now) }

// NewLiveClassID mints a live class record key.
func NewLiveClassID(now time.Time) string { return newRecordID("liveclass", now) }

// EnrollmentID derives the enrollment key for a user/course pair. The key
// collision is the uniqueness guard for double enrollment.
func EnrollmentID(userID, courseID string) string {
	return fmt.Sprintf("enrollment:%s:%s", userID, courseID)
}

// NewSubmissionID mints an exam submission key.
func NewSubmissionID(userID, examID string, now time.Time) string {
	return fmt.Sprintf("submission:%s:%s:%d", userID, examID, now.UnixMilli())
}

// NewTokenID mints an opaque bearer token string, stored as its own key.
func NewTokenID(userID string, now time.Time) string {
	return fmt.Sprintf("token:%s:%d", userID, now.UnixMilli())
}

// InstructorCoursesKey indexes the course IDs created by an instructor.
func InstructorCoursesKey(instructorID string) string {
	return fmt.Sprintf("instructor:%s:courses", instructorID)
}

// UserEnrollmentsKey indexes the course IDs a user is enrolled in.
func UserEnrollmentsKey(userID string) string {
	return fmt.Sprintf("user:%s:enrollments", userID)
}

// LessonCommentsKey indexes the comment IDs attached to a lesson.
func LessonCommentsKey(lessonID string) string {
	return fmt.Sprintf("lesson:%s:comments", lessonID)
}

// UserMessagesKey indexes a user's inbox message IDs.
func UserMessagesKey(userID string) string {
	return fmt.Sprintf("user:%s:messages", userID)
}

// CourseExamsKey indexes the exam IDs attached to a course.
func CourseExamsKey(courseID string) string {
	return fmt.Sprintf("course:%s:exams", courseID)
}

// UserSubmissionsKey indexes a user's exam submission IDs.
func UserSubmissionsKey(userID string) string {
	return fmt.Sprintf("user:%s:submissions", userID)
}

// UserCertificatesKey indexes a user's certificate IDs.
func UserCertificatesKey(userID string) string {
	return fmt.Sprintf("user:%s:certificates", userID)
}

// CourseLiveClassesKey indexes the live class IDs attached to a course.
func CourseLiveClassesKey(courseID string) string {
	return fmt.Sprintf("course:%s:liveclasses", courseID)
}
