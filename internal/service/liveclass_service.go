package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

// LiveClassService manages scheduled live sessions for courses.
type LiveClassService struct {
	records   store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLiveClassService builds the live class service.
func NewLiveClassService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *LiveClassService {
	return &LiveClassService{
		records:   records,
		validator: validate,
		logger:    logger.With().Str("component", "liveclass_service").Logger(),
		now:       time.Now,
	}
}

// Create schedules a live class and indexes it under its course.
func (s *LiveClassService) Create(ctx context.Context, instructor models.PublicUser, req dto.LiveClassCreateRequest) (models.LiveClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.LiveClass{}, err
	}

	now := s.now()
	liveClass := models.LiveClass{
		ID:             models.NewLiveClassID(now),
		Title:          req.Title,
		Date:           req.Date,
		Time:           req.Time,
		DiscordLink:    req.DiscordLink,
		CourseID:       req.CourseID,
		InstructorID:   instructor.ID,
		InstructorName: instructor.Name,
		CreatedAt:      now,
	}

	if err := store.SetJSON(ctx, s.records, liveClass.ID, liveClass); err != nil {
		return models.LiveClass{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.CourseLiveClassesKey(req.CourseID), liveClass.ID); err != nil {
		return models.LiveClass{}, err
	}

	return liveClass, nil
}

// ListForCourse resolves a course's live class index via multi-get, dropping
// entries whose record is absent.
func (s *LiveClassService) ListForCourse(ctx context.Context, courseID string) ([]models.LiveClass, error) {
	ids, err := store.GetList(ctx, s.records, models.CourseLiveClassesKey(courseID))
	if err != nil {
		return nil, err
	}

	values, err := s.records.MGet(ctx, ids)
	if err != nil {
		return nil, err
	}

	liveClasses := make([]models.LiveClass, 0, len(values))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var liveClass models.LiveClass
		if err := json.Unmarshal(raw, &liveClass); err != nil {
			continue
		}
		liveClasses = append(liveClasses, liveClass)
	}

	return liveClasses, nil
}
