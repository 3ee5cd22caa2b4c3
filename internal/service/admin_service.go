package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skillmarket/skillmarket-api/internal/dto"
	"github.com/skillmarket/skillmarket-api/internal/models"
	"github.com/skillmarket/skillmarket-api/internal/store"
)

// AdminService aggregates marketplace-wide views for administrators. Role
// enforcement happens at the routing layer; the caller's role is re-resolved
// from the store on every request by token validation.
type AdminService struct {
	records store.Store
	logger  zerolog.Logger
}

// NewAdminService builds the admin aggregation service.
func NewAdminService(records store.Store, logger zerolog.Logger) *AdminService {
	return &AdminService{
		records: records,
		logger:  logger.With().Str("component", "admin_service").Logger(),
	}
}

// ListUsers returns every account profile. Records under the user prefix that
// are not accounts (index side-lists) are filtered out.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	values, err := s.records.GetByPrefix(ctx, models.UserPrefix)
	if err != nil {
		return nil, err
	}

	users := decodeUserRecords(values)
	profiles := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Public())
	}

	return profiles, nil
}

// ListCourses returns every course, published or not.
func (s *AdminService) ListCourses(ctx context.Context) ([]models.Course, error) {
	values, err := s.records.GetByPrefix(ctx, models.CoursePrefix)
	if err != nil {
		return nil, err
	}

	return decodeCourseRecords(values), nil
}

// Stats computes marketplace-wide aggregate counts.
func (s *AdminService) Stats(ctx context.Context) (dto.PlatformStats, error) {
	userValues, err := s.records.GetByPrefix(ctx, models.UserPrefix)
	if err != nil {
		return dto.PlatformStats{}, err
	}

	courses, err := s.ListCourses(ctx)
	if err != nil {
		return dto.PlatformStats{}, err
	}

	enrollments, err := s.records.GetByPrefix(ctx, models.EnrollmentPrefix)
	if err != nil {
		return dto.PlatformStats{}, err
	}

	certificates, err := s.records.GetByPrefix(ctx, models.CertificatePrefix)
	if err != nil {
		return dto.PlatformStats{}, err
	}

	users := decodeUserRecords(userValues)
	stats := dto.PlatformStats{
		TotalUsers:        len(users),
		TotalCourses:      len(courses),
		TotalEnrollments:  len(enrollments),
		TotalCertificates: len(certificates),
	}

	for _, user := range users {
		switch user.Role {
		case models.RoleInstructor:
			stats.Instructors++
		case models.RoleStudent:
			stats.Students++
		}
	}

	return stats, nil
}
