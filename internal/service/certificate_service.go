package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

// ErrCourseNotCompleted indicates the enrollment has not reached full progress.
var ErrCourseNotCompleted = errors.New("course not completed")

// CertificateService issues completion certificates.
type CertificateService struct {
	records   store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewCertificateService builds the certificate service.
func NewCertificateService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *CertificateService {
	return &CertificateService{
		records:   records,
		validator: validate,
		logger:    logger.With().Str("component", "certificate_service").Logger(),
		tracer:    otel.Tracer("github.com/skillmarket/skillmarket-api/internal/service/certificate"),
		now:       time.Now,
	}
}

// Generate issues a certificate for a completed course. Issuance is gated
// strictly on enrollment progress of 100; the certificate snapshots the
// course title and instructor name as of issuance.
func (s *CertificateService) Generate(ctx context.Context, user models.PublicUser, req dto.CertificateGenerateRequest) (models.Certificate, error) {
	ctx, span := s.tracer.Start(ctx, "certificate.generate", trace.WithAttributes(
		attribute.String("course.id", req.CourseID),
		attribute.String("user.id", user.ID),
	))
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return models.Certificate{}, err
	}

	var course models.Course
	if err := store.GetJSON(ctx, s.records, req.CourseID, &course); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Certificate{}, ErrCourseNotFound
		}
		return models.Certificate{}, err
	}

	var enrollment models.Enrollment
	if err := store.GetJSON(ctx, s.records, models.EnrollmentID(user.ID, req.CourseID), &enrollment); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Certificate{}, ErrEnrollmentNotFound
		}
		return models.Certificate{}, err
	}

	if enrollment.Progress < 100 {
		return models.Certificate{}, ErrCourseNotCompleted
	}

	now := s.now()
	certificate := models.Certificate{
		ID:                models.NewCertificateID(now),
		UserID:            user.ID,
		UserName:          user.Name,
		CourseID:          req.CourseID,
		CourseTitle:       course.Title,
		InstructorName:    course.InstructorName,
		CertificateNumber: fmt.Sprintf("CERT-%d", now.UnixMilli()),
		IssuedAt:          now,
	}

	if err := store.SetJSON(ctx, s.records, certificate.ID, certificate); err != nil {
		return models.Certificate{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.UserCertificatesKey(user.ID), certificate.ID); err != nil {
		return models.Certificate{}, err
	}

	s.logger.Info().Str("certificate_id", certificate.ID).Str("user_id", user.ID).Str("course_id", req.CourseID).Msg("certificate issued")

	return certificate, nil
}

// ListMine resolves the user's certificate index via multi-get, dropping
// entries whose certificate record is absent.
func (s *CertificateService) ListMine(ctx context.Context, userID string) ([]models.Certificate, error) {
	ids, err := store.GetList(ctx, s.records, models.UserCertificatesKey(userID))
	if err != nil {
		return nil, err
	}

	values, err := s.records.MGet(ctx, ids)
	if err != nil {
		return nil, err
	}

	certificates := make([]models.Certificate, 0, len(values))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var certificate models.Certificate
		if err := json.Unmarshal(raw, &certificate); err != nil {
			continue
		}
		certificates = append(certificates, certificate)
	}

	return certificates, nil
}
