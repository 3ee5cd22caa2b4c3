package service

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

func newEnrollmentFixture(t *testing.T) (*EnrollmentService, *CourseService, *store.RedisStore, *miniredis.Miniredis) {
	t.Helper()

	records, mini := newTestRecords(t)
	validate := newTestValidator()

	return NewEnrollmentService(records, validate, testLogger()),
		NewCourseService(records, validate, testLogger()),
		records,
		mini
}

func testStudent() models.PublicUser {
	return models.PublicUser{ID: "user:5:stud", Name: "Sam", Role: models.RoleStudent}
}

func TestEnrollCreatesEnrollment(t *testing.T) {
	enrollments, courses, _, _ := newEnrollmentFixture(t)
	ctx := context.Background()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Enrollable Course",
		Description: "A course students can join.",
	})
	require.NoError(t, err)

	enrollment, err := enrollments.Enroll(ctx, testStudent(), dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)
	require.Equal(t, models.EnrollmentID("user:5:stud", course.ID), enrollment.ID)
	require.Zero(t, enrollment.Progress)
	require.NotNil(t, enrollment.CompletedLessons)
	require.Empty(t, enrollment.CompletedLessons)
}

func TestEnrollRejectsDuplicate(t *testing.T) {
	enrollments, courses, records, _ := newEnrollmentFixture(t)
	ctx := context.Background()
	student := testStudent()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Popular Course",
		Description: "Everyone wants in twice.",
	})
	require.NoError(t, err)

	first, err := enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	progress := 42.0
	_, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{Progress: &progress})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.ErrorIs(t, err, ErrAlreadyEnrolled)

	// The original enrollment survives the rejected retry.
	var stored models.Enrollment
	require.NoError(t, store.GetJSON(ctx, records, first.ID, &stored))
	require.Equal(t, 42.0, stored.Progress)
}

func TestListMineJoinsCourse(t *testing.T) {
	enrollments, courses, _, _ := newEnrollmentFixture(t)
	ctx := context.Background()
	student := testStudent()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Joined Course",
		Description: "Returned with the enrollment.",
	})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	mine, err := enrollments.ListMine(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, course.ID, mine[0].CourseID)
	require.Equal(t, "Joined Course", mine[0].Course.Title)
}

func TestListMineDropsDanglingEntries(t *testing.T) {
	enrollments, courses, _, mini := newEnrollmentFixture(t)
	ctx := context.Background()
	student := testStudent()

	doomed, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Deleted Course",
		Description: "Will vanish from the store.",
	})
	require.NoError(t, err)

	kept, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Surviving Course",
		Description: "Stays in the store.",
	})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: doomed.ID})
	require.NoError(t, err)
	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: kept.ID})
	require.NoError(t, err)

	// Course deleted out of band; its index entry now dangles.
	mini.Del(doomed.ID)

	mine, err := enrollments.ListMine(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, kept.ID, mine[0].CourseID)
}

func TestUpdateProgressRecordsLessonsOnce(t *testing.T) {
	enrollments, courses, _, _ := newEnrollmentFixture(t)
	ctx := context.Background()
	student := testStudent()

	course, err := courses.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Progress Course",
		Description: "Tracks lesson completion.",
	})
	require.NoError(t, err)

	_, err = enrollments.Enroll(ctx, student, dto.EnrollRequest{CourseID: course.ID})
	require.NoError(t, err)

	updated, err := enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{LessonID: "lesson-1"})
	require.NoError(t, err)
	require.Equal(t, []string{"lesson-1"}, updated.CompletedLessons)

	// Repeating the same lesson does not duplicate it.
	updated, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{LessonID: "lesson-1"})
	require.NoError(t, err)
	require.Equal(t, []string{"lesson-1"}, updated.CompletedLessons)

	progress := 50.0
	updated, err = enrollments.UpdateProgress(ctx, student.ID, course.ID, dto.ProgressUpdateRequest{LessonID: "lesson-2", Progress: &progress})
	require.NoError(t, err)
	require.Equal(t, []string{"lesson-1", "lesson-2"}, updated.CompletedLessons)
	require.Equal(t, 50.0, updated.Progress)
}

func TestUpdateProgressMissingEnrollment(t *testing.T) {
	enrollments, _, _, _ := newEnrollmentFixture(t)

	progress := 10.0
	_, err := enrollments.UpdateProgress(context.Background(), "user:5:stud", "course:0:none", dto.ProgressUpdateRequest{Progress: &progress})
	require.ErrorIs(t, err, ErrEnrollmentNotFound)
}
