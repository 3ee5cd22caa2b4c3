package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillmarket/skillmarket-api/internal/dto"
)

func newCertificateFixture(t *testing.T) (*CertificateService, *CourseService, *EnrollmentService) {
	t.Helper()

	records, _ := newTestRecords(t)
	validate := newTestValidator()

	return NewCertificateService(records, validate, testLogger()),
		NewCourseService(records, validate, testLogger()),
		NewEnrollmentService(records, validate, testLogger())
}

func TestGenerateRequiresFullProgress(t *testing.T) {
	certificates, courses, enrollments := newCertificateFixture(t)
	ctx := context.Background()
	student := testStudent()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Certifiable Course",
		Description: "Finish it for a certificate.",
	})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	almost := 99.0
	_, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{Progress: &almost})
	require.NoError(t, err)

	_, err = certificates.Generate(ctx, student, dto.CertificateGenerateRequest{CourseID: course.ID})
	require.ErrorIs(t, err, ErrCourseNotCompleted)

	done := 100.0
	_, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{Progress: &done})
	require.NoError(t, err)

	certificate, err := certificates.Generate(ctx, student, dto.CertificateGenerateRequest{CourseID: course.ID})
	require.NoError(t, err)
	require.Equal(t, "Certifiable Course", certificate.CourseTitle)
	require.Equal(t, testInstructor().Name, certificate.InstructorName)
	require.Equal(t, student.Name, certificate.UserName)
	require.True(t, strings.HasPrefix(certificate.CertificateNumber, "CERT-"))
}

func TestGenerateCertificateNumberFromClock(t *testing.T) {
	certificates, courses, enrollments := newCertificateFixture(t)
	ctx := context.Background()
	student := testStudent()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Clocked Course",
		Description: "Number derives from issue time.",
	})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	done := 100.0
	_, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{Progress: &done})
	require.NoError(t, err)

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	certificates.now = fixedClock(issuedAt)

	certificate, err := certificates.Generate(ctx, student, dto.CertificateGenerateRequest{CourseID: course.ID})
	require.NoError(t, err)
	require.Equal(t, "CERT-1748779200000", certificate.CertificateNumber)
	require.Equal(t, issuedAt, certificate.IssuedAt)
}

func TestGenerateMissingCourseOrEnrollment(t *testing.T) {
	certificates, courses, _ := newCertificateFixture(t)
	ctx := context.Background()
	student := testStudent()

	_, err := certificates.Generate(ctx, student, dto.CertificateGenerateRequest{CourseID: "course:0:none"})
	require.ErrorIs(t, err, ErrCourseNotFound)

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Unjoined Course",
		Description: "Student never enrolled here.",
	})
	require.NoError(t, err)

	_, err = certificates.Generate(ctx, student, dto.CertificateGenerateRequest{CourseID: course.ID})
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestListMineReturnsIssuedCertificates(t *testing.T) {
	certificates, courses, enrollments := newCertificateFixture(t)
	ctx := context.Background()
	student := testStudent()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Listed Course",
		Description: "Its certificate shows up in the list.",
	})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	done := 100.0
	_, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{Progress: &done})
	require.NoError(t, err)

	issued, err := certificates.Generate(ctx, student, dto.CertificateGenerateRequest{CourseID: course.ID})
	require.NoError(t, err)

	mine, err := certificates.ListMine(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, issued.ID, mine[0].ID)

	other, err := certificates.ListMine(ctx, "user:9:other")
	require.NoError(t, err)
	require.Empty(t, other)
}
