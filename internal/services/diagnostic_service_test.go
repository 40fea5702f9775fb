package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
	"github.com/diagnostico-tools/diagnostico_backend/internal/repository"
)

// fakePillarRepo serves a fixed questionnaire
type fakePillarRepo struct {
	pillars []models.Pillar
}

func (f *fakePillarRepo) Create(ctx context.Context, pillar *models.Pillar) error { return nil }
func (f *fakePillarRepo) GetByOrdinal(ctx context.Context, ordinal int) (*models.Pillar, error) {
	for i := range f.pillars {
		if f.pillars[i].Ordinal == ordinal {
			return &f.pillars[i], nil
		}
	}
	return nil, models.ErrPillarNotFound
}
func (f *fakePillarRepo) ListAll(ctx context.Context) ([]models.Pillar, error) {
	return f.pillars, nil
}
func (f *fakePillarRepo) Update(ctx context.Context, pillar *models.Pillar) error { return nil }
func (f *fakePillarRepo) Delete(ctx context.Context, ordinal int) error           { return nil }
func (f *fakePillarRepo) HighestOrdinal(ctx context.Context) (int, error) {
	highest := 0
	for _, p := range f.pillars {
		if p.Ordinal > highest {
			highest = p.Ordinal
		}
	}
	return highest, nil
}
func (f *fakePillarRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.pillars)), nil
}

// fakeResultRepo stores results in memory
type fakeResultRepo struct {
	results map[primitive.ObjectID]*models.DiagnosticResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[primitive.ObjectID]*models.DiagnosticResult)}
}

func (f *fakeResultRepo) Create(ctx context.Context, result *models.DiagnosticResult) error {
	f.results[result.ID] = result
	return nil
}
func (f *fakeResultRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DiagnosticResult, error) {
	result, ok := f.results[id]
	if !ok {
		return nil, models.ErrResultNotFound
	}
	return result, nil
}
func (f *fakeResultRepo) List(ctx context.Context, opts repository.PaginationOptions) (*repository.PaginatedResult[models.DiagnosticResult], error) {
	items := make([]models.DiagnosticResult, 0, len(f.results))
	for _, r := range f.results {
		items = append(items, *r)
	}
	return &repository.PaginatedResult[models.DiagnosticResult]{
		Items:      items,
		TotalCount: int64(len(items)),
		Page:       opts.Page,
		Limit:      opts.Limit,
		TotalPages: 1,
	}, nil
}
func (f *fakeResultRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.results[id]; !ok {
		return models.ErrResultNotFound
	}
	delete(f.results, id)
	return nil
}
func (f *fakeResultRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.results)), nil
}

func testQuestionnaire() []models.Pillar {
	return []models.Pillar{
		{
			Ordinal: 1,
			Name:    "Estratégia",
			Questions: []models.Question{
				{Order: 1, Text: "Possui planejamento?", Points: 10, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
				{Order: 2, Text: "Possui metas?", Points: 10, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
			},
		},
		{
			Ordinal: 2,
			Name:    "Finanças",
			Questions: []models.Question{
				{Order: 1, Text: "Possui dívidas em atraso?", Points: 10, PositiveAnswer: models.AnswerNo, AnswerType: models.AnswerTypeBinary},
			},
		},
	}
}

func TestDiagnosticService_Submit(t *testing.T) {
	pillarRepo := &fakePillarRepo{pillars: testQuestionnaire()}
	resultRepo := newFakeResultRepo()
	svc := NewDiagnosticService(pillarRepo, resultRepo)

	result, err := svc.Submit(context.Background(), SubmitDiagnosticRequest{
		CompanyData: models.CompanyData{CompanyName: "Padaria Central"},
		Answers: map[string]models.AnswerValue{
			"1.1": models.AnswerYes,
			"1.2": models.AnswerPartial,
			"2.1": models.AnswerNo,
		},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if result.TotalScore != 25 {
		t.Errorf("TotalScore = %v, want 25", result.TotalScore)
	}
	if result.MaxPossibleScore != 30 {
		t.Errorf("MaxPossibleScore = %v, want 30", result.MaxPossibleScore)
	}
	if len(result.PillarScores) != 2 {
		t.Fatalf("PillarScores count = %d, want 2", len(result.PillarScores))
	}
	if result.PillarScores[1].PillarName != "Finanças" {
		t.Errorf("PillarName = %q, want Finanças", result.PillarScores[1].PillarName)
	}
	if result.ID.IsZero() {
		t.Error("Expected result ID to be assigned")
	}
	if result.Date.IsZero() {
		t.Error("Expected result date to be set")
	}

	// The stored snapshot must be retrievable unchanged
	stored, err := svc.GetResult(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("GetResult() error = %v", err)
	}
	if stored.TotalScore != result.TotalScore {
		t.Errorf("Stored TotalScore = %v, want %v", stored.TotalScore, result.TotalScore)
	}
	if len(stored.Answers) != 3 {
		t.Errorf("Stored answer count = %d, want 3", len(stored.Answers))
	}
}

func TestDiagnosticService_Submit_EmptyQuestionnaire(t *testing.T) {
	svc := NewDiagnosticService(&fakePillarRepo{}, newFakeResultRepo())

	_, err := svc.Submit(context.Background(), SubmitDiagnosticRequest{
		Answers: map[string]models.AnswerValue{"1.1": models.AnswerYes},
	})
	if !errors.Is(err, ErrEmptyQuestionnaire) {
		t.Errorf("Submit() error = %v, want ErrEmptyQuestionnaire", err)
	}
}

func TestDiagnosticService_GetReport(t *testing.T) {
	pillarRepo := &fakePillarRepo{pillars: testQuestionnaire()}
	resultRepo := newFakeResultRepo()
	svc := NewDiagnosticService(pillarRepo, resultRepo)

	result, err := svc.Submit(context.Background(), SubmitDiagnosticRequest{
		Answers: map[string]models.AnswerValue{
			"1.1": models.AnswerYes,
			"1.2": models.AnswerYes,
			"2.1": models.AnswerYes,
		},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	report, err := svc.GetReport(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("GetReport() error = %v", err)
	}

	if report.MaturityBand.Name != "Inicial" {
		t.Errorf("MaturityBand.Name = %q, want Inicial", report.MaturityBand.Name)
	}
	if report.BestPillar == nil || report.BestPillar.PillarName != "Estratégia" {
		t.Errorf("BestPillar = %+v, want Estratégia", report.BestPillar)
	}
	if report.WorstPillar == nil || report.WorstPillar.PillarName != "Finanças" {
		t.Errorf("WorstPillar = %+v, want Finanças", report.WorstPillar)
	}
	if len(report.RankedPillars) != 2 {
		t.Errorf("RankedPillars count = %d, want 2", len(report.RankedPillars))
	}
}

func TestDiagnosticService_GetReport_NotFound(t *testing.T) {
	svc := NewDiagnosticService(&fakePillarRepo{}, newFakeResultRepo())

	_, err := svc.GetReport(context.Background(), primitive.NewObjectID())
	if !errors.Is(err, ErrResultNotFound) {
		t.Errorf("GetReport() error = %v, want ErrResultNotFound", err)
	}
}

func TestDiagnosticService_DeleteResult(t *testing.T) {
	pillarRepo := &fakePillarRepo{pillars: testQuestionnaire()}
	resultRepo := newFakeResultRepo()
	svc := NewDiagnosticService(pillarRepo, resultRepo)

	result, err := svc.Submit(context.Background(), SubmitDiagnosticRequest{
		Answers: map[string]models.AnswerValue{"1.1": models.AnswerYes},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if err := svc.DeleteResult(context.Background(), result.ID); err != nil {
		t.Fatalf("DeleteResult() error = %v", err)
	}

	if _, err := svc.GetResult(context.Background(), result.ID); !errors.Is(err, ErrResultNotFound) {
		t.Errorf("GetResult() after delete error = %v, want ErrResultNotFound", err)
	}
}
