package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

var (
	// ErrAlreadyEnrolled indicates an enrollment already exists for the pair.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")
	// ErrEnrollmentNotFound indicates no enrollment exists for the pair.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

// EnrollmentService manages course enrollments and progress tracking.
type EnrollmentService struct {
	records   store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewEnrollmentService builds the enrollment service.
func NewEnrollmentService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		records:   records,
		validator: validate,
		logger:    logger.With().Str("component", "enrollment_service").Logger(),
		now:       time.Now,
	}
}

// Enroll creates an enrollment for the user. The enrollment key collides for
// repeat calls, which is the duplicate guard.
func (s *EnrollmentService) Enroll(ctx context.Context, user models.PublicUser, req dto.EnrollRequest) (models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Enrollment{}, err
	}

	id := models.EnrollmentID(user.ID, req.CourseID)

	if _, err := s.records.Get(ctx, id); err == nil {
		return models.Enrollment{}, ErrAlreadyEnrolled
	} else if !errors.Is(err, store.ErrNotFound) {
		return models.Enrollment{}, err
	}

	now := s.now()
	enrollment := models.Enrollment{
		ID:               id,
		UserID:           user.ID,
		CourseID:         req.CourseID,
		Progress:         0,
		CompletedLessons: []string{},
		EnrolledAt:       now,
		UpdatedAt:        now,
	}

	if err := store.SetJSON(ctx, s.records, id, enrollment); err != nil {
		return models.Enrollment{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.UserEnrollmentsKey(user.ID), req.CourseID); err != nil {
		return models.Enrollment{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("course_id", req.CourseID).Msg("enrolled")

	return enrollment, nil
}

// ListMine resolves the user's enrollment index, joining each enrollment with
// its course. Pairs with a missing enrollment or course are silently dropped.
func (s *EnrollmentService) ListMine(ctx context.Context, userID string) ([]dto.EnrollmentWithCourse, error) {
	courseIDs, err := store.GetList(ctx, s.records, models.UserEnrollmentsKey(userID))
	if err != nil {
		return nil, err
	}

	enrollments := make([]dto.EnrollmentWithCourse, 0, len(courseIDs))
	for _, courseID := range courseIDs {
		var enrollment models.Enrollment
		if err := store.GetJSON(ctx, s.records, models.EnrollmentID(userID, courseID), &enrollment); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}

		var course models.Course
		if err := store.GetJSON(ctx, s.records, courseID, &course); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}

		enrollments = append(enrollments, dto.EnrollmentWithCourse{Enrollment: enrollment, Course: course})
	}

	return enrollments, nil
}

// UpdateProgress records lesson completion and/or overwrites the stored
// progress value. Progress is trusted as supplied; no clamping is applied.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, userID, courseID string, req dto.ProgressUpdateRequest) (models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Enrollment{}, err
	}

	id := models.EnrollmentID(userID, courseID)

	var enrollment models.Enrollment
	if err := store.GetJSON(ctx, s.records, id, &enrollment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Enrollment{}, ErrEnrollmentNotFound
		}
		return models.Enrollment{}, err
	}

	if req.LessonID != "" && !enrollment.HasCompletedLesson(req.LessonID) {
		enrollment.CompletedLessons = append(enrollment.CompletedLessons, req.LessonID)
	}

	if req.Progress != nil {
		enrollment.Progress = *req.Progress
	}

	enrollment.UpdatedAt = s.now()

	if err := store.SetJSON(ctx, s.records, id, enrollment); err != nil {
		return models.Enrollment{}, err
	}

	return enrollment, nil
}
