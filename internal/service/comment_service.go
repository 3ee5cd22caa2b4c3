package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

// CommentService manages lesson discussion threads.
type CommentService struct {
	records   store.Store
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCommentService builds the comment service.
func NewCommentService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *CommentService {
	sanitizer := bluemonday.UGCPolicy()
	sanitizer.AllowElements("br")

	return &CommentService{
		records:   records,
		validator: validate,
		sanitizer: sanitizer,
		logger:    logger.With().Str("component", "comment_service").Logger(),
		now:       time.Now,
	}
}

// Add creates a comment on a lesson and indexes it under the lesson's thread.
func (s *CommentService) Add(ctx context.Context, author models.PublicUser, req dto.CommentCreateRequest) (models.Comment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Comment{}, err
	}

	now := s.now()
	comment := models.Comment{
		ID:        models.NewCommentID(now),
		CourseID:  req.CourseID,
		LessonID:  req.LessonID,
		UserID:    author.ID,
		UserName:  author.Name,
		Content:   s.sanitizer.Sanitize(req.Content),
		Replies:   []models.Reply{},
		CreatedAt: now,
	}

	if err := store.SetJSON(ctx, s.records, comment.ID, comment); err != nil {
		return models.Comment{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.LessonCommentsKey(req.LessonID), comment.ID); err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// ListForLesson resolves a lesson's comment index via multi-get. Index entries
// whose comment record is absent are silently dropped.
func (s *CommentService) ListForLesson(ctx context.Context, lessonID string) ([]models.Comment, error) {
	ids, err := store.GetList(ctx, s.records, models.LessonCommentsKey(lessonID))
	if err != nil {
		return nil, err
	}

	values, err := s.records.MGet(ctx, ids)
	if err != nil {
		return nil, err
	}

	comments := make([]models.Comment, 0, len(values))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var comment models.Comment
		if err := json.Unmarshal(raw, &comment); err != nil {
			continue
		}
		comments = append(comments, comment)
	}

	return comments, nil
}
