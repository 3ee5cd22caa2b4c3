package service

import (
	"context"
	"encoding/json"
	"errors"
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

// ErrExamNotFound indicates the referenced exam does not exist.
var ErrExamNotFound = errors.New("exam not found")

// ExamService manages exams and graded submissions.
type ExamService struct {
	records   store.Store
	validator *validator.Validate
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewExamService builds the exam service.
func NewExamService(records store.Store, validate *validator.Validate, logger zerolog.Logger) *ExamService {
	return &ExamService{
		records:   records,
		validator: validate,
		logger:    logger.With().Str("component", "exam_service").Logger(),
		tracer:    otel.Tracer("github.com/skillmarket/skillmarket-api/internal/service/exam"),
		now:       time.Now,
	}
}

// Create stores a new exam and indexes it under its course.
func (s *ExamService) Create(ctx context.Context, creator models.PublicUser, req dto.ExamCreateRequest) (models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Exam{}, err
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, q := range req.Questions {
		questions = append(questions, models.Question{
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	now := s.now()
	exam := models.Exam{
		ID:           models.NewExamID(now),
		CourseID:     req.CourseID,
		Title:        req.Title,
		Questions:    questions,
		PassingScore: req.PassingScore,
		CreatedBy:    creator.ID,
		CreatedAt:    now,
	}

	if err := store.SetJSON(ctx, s.records, exam.ID, exam); err != nil {
		return models.Exam{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.CourseExamsKey(req.CourseID), exam.ID); err != nil {
		return models.Exam{}, err
	}

	s.logger.Info().Str("exam_id", exam.ID).Str("course_id", exam.CourseID).Msg("exam created")

	return exam, nil
}

// ListForCourse resolves a course's exam index via multi-get, dropping
// entries whose exam record is absent.
func (s *ExamService) ListForCourse(ctx context.Context, courseID string) ([]models.Exam, error) {
	ids, err := store.GetList(ctx, s.records, models.CourseExamsKey(courseID))
	if err != nil {
		return nil, err
	}

	values, err := s.records.MGet(ctx, ids)
	if err != nil {
		return nil, err
	}

	exams := make([]models.Exam, 0, len(values))
	for _, raw := range values {
		if raw == nil {
			continue
		}
		var exam models.Exam
		if err := json.Unmarshal(raw, &exam); err != nil {
			continue
		}
		exams = append(exams, exam)
	}

	return exams, nil
}

// Submit grades the supplied answers against the exam and persists the
// attempt. Answers are compared pairwise in question order; a missing answer
// counts as incorrect.
func (s *ExamService) Submit(ctx context.Context, user models.PublicUser, examID string, req dto.ExamSubmitRequest) (models.Submission, error) {
	ctx, span := s.tracer.Start(ctx, "exam.submit", trace.WithAttributes(
		attribute.String("exam.id", examID),
		attribute.String("user.id", user.ID),
	))
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return models.Submission{}, err
	}

	var exam models.Exam
	if err := store.GetJSON(ctx, s.records, examID, &exam); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Submission{}, ErrExamNotFound
		}
		return models.Submission{}, err
	}

	score := gradeAnswers(exam.Questions, req.Answers)

	passingScore := exam.PassingScore
	if passingScore == 0 {
		passingScore = models.DefaultPassingScore
	}
	passed := score >= passingScore

	now := s.now()
	submission := models.Submission{
		ID:          models.NewSubmissionID(user.ID, examID, now),
		ExamID:      examID,
		UserID:      user.ID,
		Answers:     req.Answers,
		Score:       score,
		Passed:      passed,
		SubmittedAt: now,
	}

	if err := store.SetJSON(ctx, s.records, submission.ID, submission); err != nil {
		return models.Submission{}, err
	}

	if err := store.AppendToList(ctx, s.records, models.UserSubmissionsKey(user.ID), submission.ID); err != nil {
		return models.Submission{}, err
	}

	span.SetAttributes(
		attribute.Float64("exam.score", score),
		attribute.Bool("exam.passed", passed),
	)
	s.logger.Info().Str("exam_id", examID).Str("user_id", user.ID).Float64("score", score).Bool("passed", passed).Msg("exam submitted")

	return submission, nil
}

func gradeAnswers(questions []models.Question, answers []int) float64 {
	if len(questions) == 0 {
		return 0
	}

	correct := 0
	for i, question := range questions {
		if i < len(answers) && answers[i] == question.CorrectAnswer {
			correct++
		}
	}

	return float64(correct) / float64(len(questions)) * 100
}
