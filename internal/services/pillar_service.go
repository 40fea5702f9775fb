package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/repository"
)

// Custom errors for pillar service, aliased so the shared error classifiers
// in models recognize them
var (
	ErrPillarNotFound   = models.ErrPillarNotFound
	ErrQuestionNotFound = models.ErrQuestionNotFound
)

// PillarService handles questionnaire maintenance
// #INTEGRATION_POINT: Used by pillar handler for CRUD operations
type PillarService interface {
	// ListPillars returns the full questionnaire in pillar order
	ListPillars(ctx context.Context) ([]models.Pillar, error)

	// GetPillar retrieves a pillar by its public ordinal
	GetPillar(ctx context.Context, ordinal int) (*models.Pillar, error)

	// AddPillar appends a new empty pillar to the questionnaire
	AddPillar(ctx context.Context, req CreatePillarRequest) (*models.Pillar, error)

	// RenamePillar changes a pillar's display name
	RenamePillar(ctx context.Context, ordinal int, req UpdatePillarRequest) (*models.Pillar, error)

	// RemovePillar deletes a pillar and all its questions
	RemovePillar(ctx context.Context, ordinal int) error

	// AddQuestion appends a question to a pillar
	AddQuestion(ctx context.Context, pillarOrdinal int, req CreateQuestionRequest) (*models.Question, error)

	// UpdateQuestion updates a question in place
	UpdateQuestion(ctx context.Context, pillarOrdinal, questionOrder int, req UpdateQuestionRequest) (*models.Question, error)

	// RemoveQuestion deletes a question from a pillar
	RemoveQuestion(ctx context.Context, pillarOrdinal, questionOrder int) error
}

// CreatePillarRequest represents the request to create a pillar
type CreatePillarRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdatePillarRequest represents the request to rename a pillar
type UpdatePillarRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateQuestionRequest represents the request to add a question
type CreateQuestionRequest struct {
	Text           string                `json:"text" binding:"required"`
	Points         float64               `json:"points" binding:"required"`
	PositiveAnswer models.AnswerValue    `json:"positive_answer" binding:"required"`
	AnswerType     models.AnswerType     `json:"answer_type" binding:"required"`
	Credits        []models.AnswerCredit `json:"credits,omitempty"`
}

// UpdateQuestionRequest represents the request to update a question
type UpdateQuestionRequest struct {
	Text           *string               `json:"text,omitempty"`
	Points         *float64              `json:"points,omitempty"`
	PositiveAnswer *models.AnswerValue   `json:"positive_answer,omitempty"`
	AnswerType     *models.AnswerType    `json:"answer_type,omitempty"`
	Credits        []models.AnswerCredit `json:"credits,omitempty"`
}

// pillarService implements PillarService
type pillarService struct {
	pillarRepo repository.PillarRepository
}

// NewPillarService creates a new pillar service
func NewPillarService(pillarRepo repository.PillarRepository) PillarService {
	return &pillarService{pillarRepo: pillarRepo}
}

// ListPillars returns the full questionnaire in pillar order
func (s *pillarService) ListPillars(ctx context.Context) ([]models.Pillar, error) {
	pillars, err := s.pillarRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pillars: %w", err)
	}
	return pillars, nil
}

// GetPillar retrieves a pillar by its public ordinal
func (s *pillarService) GetPillar(ctx context.Context, ordinal int) (*models.Pillar, error) {
	pillar, err := s.pillarRepo.GetByOrdinal(ctx, ordinal)
	if err != nil {
		if errors.Is(err, models.ErrPillarNotFound) {
			return nil, ErrPillarNotFound
		}
		return nil, fmt.Errorf("failed to get pillar: %w", err)
	}
	return pillar, nil
}

// AddPillar appends a new empty pillar to the questionnaire
// #BUSINESS_RULE: The new pillar takes the next free ordinal; ordinals of
// deleted pillars are never reused, so historical question IDs stay unique
func (s *pillarService) AddPillar(ctx context.Context, req CreatePillarRequest) (*models.Pillar, error) {
	highest, err := s.pillarRepo.HighestOrdinal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine next ordinal: %w", err)
	}

	pillar := &models.Pillar{
		Ordinal: highest + 1,
		Name:    req.Name,
	}
	pillar.BeforeCreate()

	if err := pillar.Validate(); err != nil {
		return nil, err
	}

	if err := s.pillarRepo.Create(ctx, pillar); err != nil {
		return nil, fmt.Errorf("failed to create pillar: %w", err)
	}

	return pillar, nil
}

// RenamePillar changes a pillar's display name
// #BUSINESS_RULE: Renames do not touch stored results; historical results
// carry the name copied at scoring time
func (s *pillarService) RenamePillar(ctx context.Context, ordinal int, req UpdatePillarRequest) (*models.Pillar, error) {
	pillar, err := s.GetPillar(ctx, ordinal)
	if err != nil {
		return nil, err
	}

	pillar.Name = req.Name
	pillar.BeforeUpdate()

	if err := pillar.Validate(); err != nil {
		return nil, err
	}

	if err := s.pillarRepo.Update(ctx, pillar); err != nil {
		return nil, fmt.Errorf("failed to update pillar: %w", err)
	}

	return pillar, nil
}

// RemovePillar deletes a pillar and all its questions
func (s *pillarService) RemovePillar(ctx context.Context, ordinal int) error {
	if err := s.pillarRepo.Delete(ctx, ordinal); err != nil {
		if errors.Is(err, models.ErrPillarNotFound) {
			return ErrPillarNotFound
		}
		return fmt.Errorf("failed to delete pillar: %w", err)
	}
	return nil
}

// AddQuestion appends a question to a pillar
func (s *pillarService) AddQuestion(ctx context.Context, pillarOrdinal int, req CreateQuestionRequest) (*models.Question, error) {
	pillar, err := s.GetPillar(ctx, pillarOrdinal)
	if err != nil {
		return nil, err
	}

	question := models.Question{
		Order:          pillar.NextQuestionOrder(),
		Text:           req.Text,
		Points:         req.Points,
		PositiveAnswer: req.PositiveAnswer,
		AnswerType:     req.AnswerType,
		Credits:        req.Credits,
	}

	if err := question.Validate(); err != nil {
		return nil, err
	}

	pillar.Questions = append(pillar.Questions, question)
	pillar.BeforeUpdate()

	if err := s.pillarRepo.Update(ctx, pillar); err != nil {
		return nil, fmt.Errorf("failed to add question: %w", err)
	}

	return &pillar.Questions[len(pillar.Questions)-1], nil
}

// UpdateQuestion updates a question in place
// #BUSINESS_RULE: The question keeps its ordinal across edits so stored
// answer keys in historical results still resolve to it
func (s *pillarService) UpdateQuestion(ctx context.Context, pillarOrdinal, questionOrder int, req UpdateQuestionRequest) (*models.Question, error) {
	pillar, err := s.GetPillar(ctx, pillarOrdinal)
	if err != nil {
		return nil, err
	}

	question := pillar.GetQuestion(models.QuestionID(pillarOrdinal, questionOrder))
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	// Update fields if provided
	if req.Text != nil {
		question.Text = *req.Text
	}
	if req.Points != nil {
		question.Points = *req.Points
	}
	if req.PositiveAnswer != nil {
		question.PositiveAnswer = *req.PositiveAnswer
	}
	if req.AnswerType != nil {
		question.AnswerType = *req.AnswerType
	}
	if req.Credits != nil {
		question.Credits = req.Credits
	}

	if err := question.Validate(); err != nil {
		return nil, err
	}

	pillar.BeforeUpdate()

	if err := s.pillarRepo.Update(ctx, pillar); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	return question, nil
}

// RemoveQuestion deletes a question from a pillar
func (s *pillarService) RemoveQuestion(ctx context.Context, pillarOrdinal, questionOrder int) error {
	pillar, err := s.GetPillar(ctx, pillarOrdinal)
	if err != nil {
		return err
	}

	found := false
	kept := make([]models.Question, 0, len(pillar.Questions))
	for _, q := range pillar.Questions {
		if q.Order == questionOrder {
			found = true
			continue
		}
		kept = append(kept, q)
	}
	if !found {
		return ErrQuestionNotFound
	}

	pillar.Questions = kept
	pillar.BeforeUpdate()

	if err := s.pillarRepo.Update(ctx, pillar); err != nil {
		return fmt.Errorf("failed to remove question: %w", err)
	}

	return nil
}
