package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/repository"
	"github.com/diagnostico-tools/diagnostico_backend/internal/scoring"
)

// Custom errors for diagnostic service
var (
	ErrResultNotFound     = models.ErrResultNotFound
	ErrEmptyQuestionnaire = errors.New("questionnaire has no pillars")
)

// DiagnosticService handles submission scoring and result access
// #INTEGRATION_POINT: Used by diagnostic handler for submit/report flows
type DiagnosticService interface {
	// Submit scores an answer set against the current questionnaire and
	// persists the immutable result
	Submit(ctx context.Context, req SubmitDiagnosticRequest) (*models.DiagnosticResult, error)

	// GetResult retrieves a stored result by ID
	GetResult(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticResult, error)

	// ListResults lists stored results with pagination, newest first
	ListResults(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.DiagnosticResult], error)

	// DeleteResult removes a stored result
	DeleteResult(ctx context.Context, id primitive.ObjectID) error

	// GetReport assembles the full report for a stored result
	GetReport(ctx context.Context, id primitive.ObjectID) (*DiagnosticReport, error)
}

// SubmitDiagnosticRequest represents a completed questionnaire submission.
// Answers are keyed by question ID ("<pillar>.<question>"); unknown keys and
// out-of-vocabulary values are ignored by the scorer, never rejected.
type SubmitDiagnosticRequest struct {
	CompanyData models.CompanyData            `json:"company_data" binding:"required"`
	Answers     map[string]models.AnswerValue `json:"answers" binding:"required"`
}

// DiagnosticReport combines a stored result with its derived presentation
// figures. Band and rankings are recomputed from the stored scores, so the
// report never drifts from the result it describes.
type DiagnosticReport struct {
	Result        *models.DiagnosticResult `json:"result"`
	MaturityBand  scoring.MaturityBand     `json:"maturity_band"`
	RankedPillars []models.PillarScore     `json:"ranked_pillars"`
	BestPillar    *models.PillarScore      `json:"best_pillar,omitempty"`
	WorstPillar   *models.PillarScore      `json:"worst_pillar,omitempty"`
}

// diagnosticService implements DiagnosticService
type diagnosticService struct {
	pillarRepo repository.PillarRepository
	resultRepo repository.ResultRepository
}

// NewDiagnosticService creates a new diagnostic service
func NewDiagnosticService(pillarRepo repository.PillarRepository, resultRepo repository.ResultRepository) DiagnosticService {
	return &diagnosticService{
		pillarRepo: pillarRepo,
		resultRepo: resultRepo,
	}
}

// Submit scores an answer set and persists the result
// #BUSINESS_RULE: The result snapshots answers, per-pillar scores and names at
// scoring time; later questionnaire edits never change stored results
func (s *diagnosticService) Submit(ctx context.Context, req SubmitDiagnosticRequest) (*models.DiagnosticResult, error) {
	pillars, err := s.pillarRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load questionnaire: %w", err)
	}
	if len(pillars) == 0 {
		return nil, ErrEmptyQuestionnaire
	}

	summary := scoring.Score(req.Answers, pillars)

	result := &models.DiagnosticResult{
		CompanyData:      req.CompanyData,
		Answers:          req.Answers,
		PillarScores:     summary.PillarScores,
		TotalScore:       summary.TotalScore,
		MaxPossibleScore: summary.MaxPossibleScore,
		PercentageScore:  summary.PercentageScore,
	}
	result.BeforeCreate()

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	return result, nil
}

// GetResult retrieves a stored result by ID
func (s *diagnosticService) GetResult(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticResult, error) {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	return result, nil
}

// ListResults lists stored results with pagination
func (s *diagnosticService) ListResults(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.DiagnosticResult], error) {
	return s.resultRepo.List(ctx, opts)
}

// DeleteResult removes a stored result
func (s *diagnosticService) DeleteResult(ctx context.Context, id primitive.ObjectID) error {
	if err := s.resultRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrResultNotFound) {
			return ErrResultNotFound
		}
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}

// GetReport assembles the full report for a stored result
func (s *diagnosticService) GetReport(ctx context.Context, id primitive.ObjectID) (*DiagnosticReport, error) {
	result, err := s.GetResult(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &DiagnosticReport{
		Result:        result,
		MaturityBand:  scoring.BandForScore(result.TotalScore),
		RankedPillars: scoring.RankPillars(result.PillarScores),
	}

	if best, ok := scoring.BestPillar(result.PillarScores); ok {
		report.BestPillar = &best
	}
	if worst, ok := scoring.WorstPillar(result.PillarScores); ok {
		report.WorstPillar = &worst
	}

	return report, nil
}
