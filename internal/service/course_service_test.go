package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

func newCourseFixture(t *testing.T) (*CourseService, *store.RedisStore) {
	t.Helper()

	records, _ := newTestRecords(t)
	return NewCourseService(records, newTestValidator(), testLogger()), records
}

func testInstructor() models.PublicUser {
	return models.PublicUser{ID: "user:1:inst", Name: "Grace", Role: models.RoleInstructor}
}

func TestCourseCreateStartsUnpublished(t *testing.T) {
	svc, _ := newCourseFixture(t)

	course, err := svc.Create(context.Background(), testInstructor(), dto.CourseCreateRequest{
		Title:       "Intro to Go",
		Description: "A practical introduction to Go.",
		Price:       49.99,
	})
	require.NoError(t, err)
	require.False(t, course.Published)
	require.Equal(t, "user:1:inst", course.InstructorID)
	require.Equal(t, "Grace", course.InstructorName)
	require.NotNil(t, course.Lessons)
}

func TestCourseListPublishedFiltersDrafts(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()
	instructor := testInstructor()

	draft, err := svc.Create(ctx, instructor, dto.CourseCreateRequest{
		Title:       "Draft Course",
		Description: "Still being written.",
	})
	require.NoError(t, err)

	live, err := svc.Create(ctx, instructor, dto.CourseCreateRequest{
		Title:       "Live Course",
		Description: "Ready for students.",
	})
	require.NoError(t, err)

	published := true
	_, err = svc.Update(ctx, instructor, live.ID, dto.CourseUpdateRequest{Published: &published})
	require.NoError(t, err)

	courses, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, live.ID, courses[0].ID)
	require.NotEqual(t, draft.ID, courses[0].ID)
}

func TestCourseListForInstructor(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()
	instructor := testInstructor()
	other := models.PublicUser{ID: "user:2:other", Name: "Other", Role: models.RoleInstructor}

	_, err := svc.Create(ctx, instructor, dto.CourseCreateRequest{Title: "Course One", Description: "First course here."})
	require.NoError(t, err)
	_, err = svc.Create(ctx, instructor, dto.CourseCreateRequest{Title: "Course Two", Description: "Second course here."})
	require.NoError(t, err)
	_, err = svc.Create(ctx, other, dto.CourseCreateRequest{Title: "Not Mine", Description: "Someone else's course."})
	require.NoError(t, err)

	mine, err := svc.ListForInstructor(ctx, instructor.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
}

func TestCourseUpdateMergesPatch(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()
	instructor := testInstructor()

	created, err := svc.Create(ctx, instructor, dto.CourseCreateRequest{
		Title:       "Original Title",
		Description: "Original description text.",
		Price:       10,
	})
	require.NoError(t, err)

	svc.now = fixedClock(created.CreatedAt.Add(time.Hour))

	newTitle := "Updated Title"
	newPrice := 25.0
	updated, err := svc.Update(ctx, instructor, created.ID, dto.CourseUpdateRequest{
		Title: &newTitle,
		Price: &newPrice,
	})
	require.NoError(t, err)
	require.Equal(t, "Updated Title", updated.Title)
	require.Equal(t, 25.0, updated.Price)
	require.Equal(t, "Original description text.", updated.Description)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestCourseUpdateRejectsNonOwner(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Protected Course",
		Description: "Only the owner edits this.",
	})
	require.NoError(t, err)

	intruder := models.PublicUser{ID: "user:9:intruder", Role: models.RoleInstructor}
	newTitle := "Hijacked"
	_, err = svc.Update(ctx, intruder, created.ID, dto.CourseUpdateRequest{Title: &newTitle})
	require.ErrorIs(t, err, ErrNotCourseOwner)
}

func TestCourseUpdateMissingCourse(t *testing.T) {
	svc, _ := newCourseFixture(t)

	newTitle := "Whatever Title"
	_, err := svc.Update(context.Background(), testInstructor(), "course:0:none", dto.CourseUpdateRequest{Title: &newTitle})
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseListSkipsIndexRecordsUnderCoursePrefix(t *testing.T) {
	svc, records := newCourseFixture(t)
	ctx := context.Background()

	course, err := svc.Create(ctx, testInstructor(), dto.CourseCreateRequest{
		Title:       "Indexed Course",
		Description: "Has an exam index next to it.",
	})
	require.NoError(t, err)

	published := true
	_, err = svc.Update(ctx, testInstructor(), course.ID, dto.CourseUpdateRequest{Published: &published})
	require.NoError(t, err)

	// Exam indexes live under the course prefix and must not surface as courses.
	require.NoError(t, records.Set(ctx, models.CourseExamsKey(course.ID), []byte(`["exam:1:abc"]`)))

	courses, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 1)
}
