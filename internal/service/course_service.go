package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

var (
	// ErrCourseNotFound indicates the referenced course does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrNotCourseOwner indicates the caller does not own the course.
	ErrNotCourseOwner = errors.New("not authorized to edit this course")
)

// CourseService manages the course catalog.
type CourseService struct {
	records   store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewCourseService builds the course service.
func NewCourseService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *CourseService {
	return &CourseService{
		records:   records,
		validator: validate,
		logger:    logger.With().Str("component", "course_service").Logger(),
		now:       time.Now,
	}
}

// Create stores a new course for the instructor and indexes it. Courses start
// unpublished regardless of the request payload.
func (s *CourseService) Create(ctx context.Context, instructor models.PublicUser, req dto.CourseCreateRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, err
	}

	now := s.now()
	course := models.Course{
		ID:               models.NewCourseID(now),
		Title:            req.Title,
		Description:      req.Description,
		Price:            req.Price,
		Category:         req.Category,
		Level:            req.Level,
		Duration:         req.Duration,
		Lessons:          req.Lessons,
		Topics:           req.Topics,
		Requirements:     req.Requirements,
		LearningOutcomes: req.LearningOutcomes,
		InstructorID:     instructor.ID,
		InstructorName:   instructor.Name,
		Published:        false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if course.Lessons == nil {
		course.Lessons = []models.Lesson{}
	}

	if err := store.SetJSON(ctx, s.records, course.ID, course); err != nil {
		return models.Course{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.InstructorCoursesKey(instructor.ID), course.ID); err != nil {
		return models.Course{}, err
	}

	s.logger.Info().Str("course_id", course.ID).Str("instructor_id", instructor.ID).Msg("course created")

	return course, nil
}

// ListPublished returns every published course in the catalog.
func (s *CourseService) ListPublished(ctx context.Context) ([]models.Course, error) {
	values, err := s.records.GetByPrefix(ctx, models.CoursePrefix)
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(values))
	for _, course := range decodeCourseRecords(values) {
		if course.Published {
			courses = append(courses, course)
		}
	}

	return courses, nil
}

// ListForInstructor resolves the instructor's course index via multi-get.
// Order is unspecified.
func (s *CourseService) ListForInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	ids, err := store.GetList(ctx, s.records, models.InstructorCoursesKey(instructorID))
	if err != nil {
		return nil, err
	}

	values, err := s.records.MGet(ctx, ids)
	if err != nil {
		return nil, err
	}

	return decodeCourseRecords(values), nil
}

// Update merges the patch over the stored course. Only the owning instructor
// may update; nil patch fields keep their stored value.
func (s *CourseService) Update(ctx context.Context, caller models.PublicUser, courseID string, req dto.CourseUpdateRequest) (models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Course{}, err
	}

	var course models.Course
	if err := store.GetJSON(ctx, s.records, courseID, &course); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Course{}, ErrCourseNotFound
		}
		return models.Course{}, err
	}

	if course.InstructorID != caller.ID {
		return models.Course{}, ErrNotCourseOwner
	}

	applyCoursePatch(&course, req)
	course.UpdatedAt = s.now()

	if err := store.SetJSON(ctx, s.records, course.ID, course); err != nil {
		return models.Course{}, err
	}

	return course, nil
}

func applyCoursePatch(course *models.Course, req dto.CourseUpdateRequest) {
	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Lessons != nil {
		course.Lessons = *req.Lessons
	}
	if req.Topics != nil {
		course.Topics = *req.Topics
	}
	if req.Requirements != nil {
		course.Requirements = *req.Requirements
	}
	if req.LearningOutcomes != nil {
		course.LearningOutcomes = *req.LearningOutcomes
	}
	if req.Published != nil {
		course.Published = *req.Published
	}
}

// decodeCourseRecords filters raw values down to course records, skipping the
// index side-lists that share the course prefix and any absent entries.
func decodeCourseRecords(values [][]byte) []models.Course {
	courses := make([]models.Course, 0, len(values))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var course models.Course
		if err := json.Unmarshal(raw, &course); err != nil {
			continue
		}
		if course.ID == "" {
			continue
		}
		courses = append(courses, course)
	}

	return courses
}
