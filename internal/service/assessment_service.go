package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"psymetric/internal/domain"
	"psymetric/internal/email"
	"psymetric/internal/itembank"
	"psymetric/internal/repository"
	"psymetric/internal/scoring"
)

// AssessmentService orchestrates the scoring engine: it rate-limits
// submissions, runs the requested scorers, assembles and persists the
// report, and notifies the user. The engine itself stays pure; everything
// with a side effect lives here.
type AssessmentService struct {
	logger   *zap.Logger
	engine   *scoring.Engine
	reports  repository.ReportRepository
	limiter  SubmissionRateLimiter
	notifier email.Sender
}

var ErrRateLimited = errors.New("rate limited")

func NewAssessmentService(
	logger *zap.Logger,
	engine *scoring.Engine,
	reports repository.ReportRepository,
	limiter SubmissionRateLimiter,
	notifier email.Sender,
) *AssessmentService {
	return &AssessmentService{
		logger:   logger,
		engine:   engine,
		reports:  reports,
		limiter:  limiter,
		notifier: notifier,
	}
}

// ReportInput carries the response sets for whichever instruments the user
// completed. Nil sets are simply skipped; the resulting report's completion
// flags record what was scored.
type ReportInput struct {
	Trait  domain.ResponseSet
	Type   domain.ResponseSet
	Style  domain.ResponseSet
	Policy scoring.MissingPolicy
}

// ScoreInstrument scores a single instrument without persisting anything.
// The returned value is one of *TraitScoreResult, *TypeCode or *StyleProfile.
func (s *AssessmentService) ScoreInstrument(userID string, instrument domain.Instrument, responses domain.ResponseSet, policy scoring.MissingPolicy) (any, error) {
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return nil, ErrRateLimited
	}

	switch instrument {
	case domain.InstrumentTrait:
		return s.engine.ScoreTrait(responses, policy)
	case domain.InstrumentType:
		return s.engine.ScoreType(responses)
	case domain.InstrumentStyle:
		return s.engine.ScoreStyle(responses, policy)
	default:
		return nil, fmt.Errorf("%w: %q", itembank.ErrUnknownInstrument, instrument)
	}
}

// CreateReport scores every provided instrument, assembles the report,
// persists it and sends a best-effort notification.
func (s *AssessmentService) CreateReport(ctx context.Context, user domain.User, input ReportInput) (domain.PersonalityReport, error) {
	if s.limiter != nil && !s.limiter.Allow(user.ID) {
		return domain.PersonalityReport{}, ErrRateLimited
	}

	var (
		trait    *domain.TraitScoreResult
		typeCode *domain.TypeCode
		style    *domain.StyleProfile
		err      error
	)
	if input.Trait != nil {
		trait, err = s.engine.ScoreTrait(input.Trait, input.Policy)
		if err != nil {
			return domain.PersonalityReport{}, fmt.Errorf("score trait: %w", err)
		}
	}
	if input.Type != nil {
		typeCode, err = s.engine.ScoreType(input.Type)
		if err != nil {
			return domain.PersonalityReport{}, fmt.Errorf("score type: %w", err)
		}
	}
	if input.Style != nil {
		style, err = s.engine.ScoreStyle(input.Style, input.Policy)
		if err != nil {
			return domain.PersonalityReport{}, fmt.Errorf("score style: %w", err)
		}
	}

	report := s.engine.Assemble(trait, typeCode, style)
	report.ID = uuid.NewString()
	report.UserID = user.ID
	report.CreatedAt = time.Now().UTC()

	if err := s.reports.Create(ctx, report, traitVector(trait)); err != nil {
		return domain.PersonalityReport{}, fmt.Errorf("persist report: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("report created",
			zap.String("report_id", report.ID),
			zap.String("user_id", user.ID),
			zap.Bool("trait", report.Completed.Trait),
			zap.Bool("type", report.Completed.Type),
			zap.Bool("style", report.Completed.Style),
		)
	}

	if s.notifier != nil && user.Email != "" {
		if err := s.notifier.SendReportReady(ctx, user.Email, report); err != nil && s.logger != nil {
			s.logger.Warn("report notification failed", zap.Error(err), zap.String("report_id", report.ID))
		}
	}

	return report, nil
}

func (s *AssessmentService) GetReport(ctx context.Context, id string) (domain.PersonalityReport, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *AssessmentService) ListReports(ctx context.Context, userID string) ([]domain.PersonalityReport, error) {
	return s.reports.ListByUser(ctx, userID)
}

func (s *AssessmentService) FindSimilar(ctx context.Context, reportID string, k int) ([]repository.SimilarReport, error) {
	return s.reports.FindSimilar(ctx, reportID, k)
}

// traitVector flattens trait percentiles into a fixed-order vector so that
// nearest-neighbor queries compare like with like. Nil when the trait
// instrument was not completed.
func traitVector(trait *domain.TraitScoreResult) *pgvector.Vector {
	if trait == nil {
		return nil
	}
	dims, err := itembank.Dimensions(domain.InstrumentTrait)
	if err != nil {
		return nil
	}
	values := make([]float32, len(dims))
	for i, dim := range dims {
		values[i] = float32(trait.Percentiles[dim])
	}
	vec := pgvector.NewVector(values)
	return &vec
}
