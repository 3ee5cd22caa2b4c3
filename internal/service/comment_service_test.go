package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillmarket/skillmarket-api/internal/dto"
)

func TestCommentAddSanitizesContent(t *testing.T) {
	records, _ := newTestRecords(t)
	svc := NewCommentService(records, newTestValidator(), testLogger())
	ctx := context.Background()

	comment, err := svc.Add(ctx, testStudent(), dto.CommentCreateRequest{
		CourseID: "course:1:abc",
		LessonID: "lesson-1",
		Content:  `Great lesson!<script>alert("xss")</script><br><b>thanks</b>`,
	})
	require.NoError(t, err)
	require.NotContains(t, comment.Content, "<script>")
	require.Contains(t, comment.Content, "Great lesson!")
	require.Contains(t, comment.Content, "<br")
	require.Contains(t, comment.Content, "<b>thanks</b>")
	require.NotNil(t, comment.Replies)
	require.Equal(t, testStudent().Name, comment.UserName)
}

func TestCommentListForLesson(t *testing.T) {
	records, _ := newTestRecords(t)
	svc := NewCommentService(records, newTestValidator(), testLogger())
	ctx := context.Background()

	for _, content := range []string{"first", "second"} {
		_, err := svc.Add(ctx, testStudent(), dto.CommentCreateRequest{
			CourseID: "course:1:abc",
			LessonID: "lesson-1",
			Content:  content,
		})
		require.NoError(t, err)
	}

	_, err := svc.Add(ctx, testStudent(), dto.CommentCreateRequest{
		CourseID: "course:1:abc",
		LessonID: "lesson-2",
		Content:  "elsewhere",
	})
	require.NoError(t, err)

	comments, err := svc.ListForLesson(ctx, "lesson-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
}

func TestCommentListDropsDanglingEntries(t *testing.T) {
	records, mini := newTestRecords(t)
	svc := NewCommentService(records, newTestValidator(), testLogger())
	ctx := context.Background()

	var ids []string
	for _, content := range []string{"one", "two", "three"} {
		comment, err := svc.Add(ctx, testStudent(), dto.CommentCreateRequest{
			CourseID: "course:1:abc",
			LessonID: "lesson-1",
			Content:  content,
		})
		require.NoError(t, err)
		ids = append(ids, comment.ID)
	}

	// Comment deleted out of band; its index entry dangles.
	mini.Del(ids[1])

	comments, err := svc.ListForLesson(ctx, "lesson-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
}

func TestCommentAddRejectsInvalidPayload(t *testing.T) {
	records, _ := newTestRecords(t)
	svc := NewCommentService(records, newTestValidator(), testLogger())

	_, err := svc.Add(context.Background(), testStudent(), dto.CommentCreateRequest{
		CourseID: "course:1:abc",
		LessonID: "",
		Content:  "missing lesson",
	})
	require.Error(t, err)
}
