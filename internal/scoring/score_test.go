package scoring

import (
	"math"
	"testing"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// singlePillar returns the two-question pillar used across scenarios:
// Q1.1 worth 10 (BINARY), Q1.2 worth 20 (TERNARY), both positive on SIM.
func singlePillar() models.Pillar {
	return models.Pillar{
		Ordinal: 1,
		Name:    "Estratégia",
		Questions: []models.Question{
			{Order: 1, Text: "Possui planejamento estratégico?", Points: 10, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
			{Order: 2, Text: "Revisa metas periodicamente?", Points: 20, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
		},
	}
}

func TestScore_PartialCredit(t *testing.T) {
	answers := map[string]models.AnswerValue{
		"1.1": models.AnswerYes,
		"1.2": models.AnswerPartial,
	}

	summary := Score(answers, []models.Pillar{singlePillar()})

	if len(summary.PillarScores) != 1 {
		t.Fatalf("Expected 1 pillar score, got %d", len(summary.PillarScores))
	}

	ps := summary.PillarScores[0]
	if ps.Score != 20 {
		t.Errorf("Expected pillar score 20, got %v", ps.Score)
	}
	if ps.MaxPossibleScore != 30 {
		t.Errorf("Expected pillar max 30, got %v", ps.MaxPossibleScore)
	}
	if !almostEqual(ps.PercentageScore, 200.0/3.0) {
		t.Errorf("Expected pillar percentage ~66.67, got %v", ps.PercentageScore)
	}
	if summary.TotalScore != 20 || summary.MaxPossibleScore != 30 {
		t.Errorf("Expected totals 20/30, got %v/%v", summary.TotalScore, summary.MaxPossibleScore)
	}
}

func TestScore_NothingAnswered(t *testing.T) {
	summary := Score(map[string]models.AnswerValue{}, []models.Pillar{singlePillar()})

	ps := summary.PillarScores[0]
	if ps.Score != 0 {
		t.Errorf("Expected pillar score 0, got %v", ps.Score)
	}
	if ps.MaxPossibleScore != 30 {
		t.Errorf("Expected pillar max 30, got %v", ps.MaxPossibleScore)
	}
	if ps.PercentageScore != 0 {
		t.Errorf("Expected pillar percentage 0, got %v", ps.PercentageScore)
	}
}

func TestScore_NegativePositiveAnswer(t *testing.T) {
	// Pillar B: one question whose positive answer is NÃO
	pillarB := models.Pillar{
		Ordinal: 2,
		Name:    "Finanças",
		Questions: []models.Question{
			{Order: 1, Text: "Possui dívidas em atraso?", Points: 50, PositiveAnswer: models.AnswerNo, AnswerType: models.AnswerTypeBinary},
		},
	}

	answers := map[string]models.AnswerValue{
		"1.1": models.AnswerYes,
		"1.2": models.AnswerPartial,
		"2.1": models.AnswerNo,
	}

	summary := Score(answers, []models.Pillar{singlePillar(), pillarB})

	if summary.TotalScore != 70 {
		t.Errorf("Expected total score 70, got %v", summary.TotalScore)
	}
	if summary.MaxPossibleScore != 80 {
		t.Errorf("Expected max score 80, got %v", summary.MaxPossibleScore)
	}
	if !almostEqual(summary.PercentageScore, 87.5) {
		t.Errorf("Expected percentage 87.5, got %v", summary.PercentageScore)
	}

	// Exactly 70 points still sits in the Em Desenvolvimento band
	if band := BandForScore(summary.TotalScore); band.Level != LevelEmDesenvolvimento {
		t.Errorf("Expected band EM_DESENVOLVIMENTO at 70 points, got %s", band.Level)
	}
}

func TestScore_EmptyQuestionnaire(t *testing.T) {
	summary := Score(map[string]models.AnswerValue{"1.1": models.AnswerYes}, nil)

	if summary.TotalScore != 0 || summary.MaxPossibleScore != 0 {
		t.Errorf("Expected zero totals, got %v/%v", summary.TotalScore, summary.MaxPossibleScore)
	}
	if summary.PercentageScore != 0 {
		t.Errorf("Expected percentage sentinel 0, got %v", summary.PercentageScore)
	}
	if math.IsNaN(summary.PercentageScore) {
		t.Error("Percentage must never be NaN")
	}
	if len(summary.PillarScores) != 0 {
		t.Errorf("Expected no pillar scores, got %d", len(summary.PillarScores))
	}
}

func TestScore_ZeroMaxPillarSentinel(t *testing.T) {
	empty := models.Pillar{Ordinal: 1, Name: "Vazio", Questions: []models.Question{}}

	summary := Score(map[string]models.AnswerValue{}, []models.Pillar{empty})

	ps := summary.PillarScores[0]
	if ps.MaxPossibleScore != 0 {
		t.Errorf("Expected max 0, got %v", ps.MaxPossibleScore)
	}
	if math.IsNaN(ps.PercentageScore) || ps.PercentageScore != 0 {
		t.Errorf("Expected defined percentage sentinel 0, got %v", ps.PercentageScore)
	}
}

func TestScore_PartialCreditIgnoresAnswerType(t *testing.T) {
	// PARCIALMENTE on a BINARY question still earns half points: the engine
	// does not type-check respondent answers against the declared type
	pillar := models.Pillar{
		Ordinal: 1,
		Name:    "Operações",
		Questions: []models.Question{
			{Order: 1, Text: "Processos documentados?", Points: 10, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
		},
	}

	summary := Score(map[string]models.AnswerValue{"1.1": models.AnswerPartial}, []models.Pillar{pillar})

	if summary.TotalScore != 5 {
		t.Errorf("Expected half credit 5, got %v", summary.TotalScore)
	}
}

func TestScore_MalformedAnswersScoreZero(t *testing.T) {
	answers := map[string]models.AnswerValue{
		"1.1": "TALVEZ",
		"1.2": "",
	}

	summary := Score(answers, []models.Pillar{singlePillar()})

	if summary.TotalScore != 0 {
		t.Errorf("Expected malformed answers to score 0, got %v", summary.TotalScore)
	}
}

func TestScore_QuestionOrderIndependentWithinPillar(t *testing.T) {
	pillar := singlePillar()
	reversed := singlePillar()
	reversed.Questions[0], reversed.Questions[1] = reversed.Questions[1], reversed.Questions[0]

	answers := map[string]models.AnswerValue{
		"1.1": models.AnswerYes,
		"1.2": models.AnswerPartial,
	}

	a := Score(answers, []models.Pillar{pillar})
	b := Score(answers, []models.Pillar{reversed})

	if a.PillarScores[0].Score != b.PillarScores[0].Score {
		t.Errorf("Question order changed pillar score: %v vs %v", a.PillarScores[0].Score, b.PillarScores[0].Score)
	}
	if a.PillarScores[0].MaxPossibleScore != b.PillarScores[0].MaxPossibleScore {
		t.Errorf("Question order changed pillar max: %v vs %v", a.PillarScores[0].MaxPossibleScore, b.PillarScores[0].MaxPossibleScore)
	}
}

func TestScore_PillarOrderPreserved(t *testing.T) {
	pillars := []models.Pillar{
		{Ordinal: 3, Name: "Pessoas"},
		{Ordinal: 1, Name: "Estratégia"},
		{Ordinal: 2, Name: "Finanças"},
	}

	summary := Score(nil, pillars)

	for i, p := range pillars {
		if summary.PillarScores[i].PillarID != p.Ordinal {
			t.Errorf("Pillar score %d: expected pillar %d, got %d", i, p.Ordinal, summary.PillarScores[i].PillarID)
		}
		if summary.PillarScores[i].PillarName != p.Name {
			t.Errorf("Pillar score %d: expected name %q, got %q", i, p.Name, summary.PillarScores[i].PillarName)
		}
	}
}

func TestScore_SumConsistencyAndBounds(t *testing.T) {
	pillars := []models.Pillar{
		singlePillar(),
		{
			Ordinal: 2,
			Name:    "Finanças",
			Questions: []models.Question{
				{Order: 1, Text: "Separa contas PF/PJ?", Points: 15, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeBinary},
				{Order: 2, Text: "Possui reserva de caixa?", Points: 25, PositiveAnswer: models.AnswerYes, AnswerType: models.AnswerTypeTernary},
			},
		},
	}
	answers := map[string]models.AnswerValue{
		"1.1": models.AnswerNo,
		"1.2": models.AnswerYes,
		"2.1": models.AnswerYes,
		"2.2": models.AnswerPartial,
	}

	summary := Score(answers, pillars)

	var sumScore, sumMax float64
	for _, ps := range summary.PillarScores {
		if ps.Score < 0 || ps.Score > ps.MaxPossibleScore {
			t.Errorf("Pillar %d score %v out of bounds [0, %v]", ps.PillarID, ps.Score, ps.MaxPossibleScore)
		}
		sumScore += ps.Score
		sumMax += ps.MaxPossibleScore
	}

	if !almostEqual(summary.TotalScore, sumScore) {
		t.Errorf("Total %v does not equal pillar sum %v", summary.TotalScore, sumScore)
	}
	if !almostEqual(summary.MaxPossibleScore, sumMax) {
		t.Errorf("Max %v does not equal pillar max sum %v", summary.MaxPossibleScore, sumMax)
	}
}

func TestScore_Idempotent(t *testing.T) {
	pillars := []models.Pillar{singlePillar()}
	answers := map[string]models.AnswerValue{"1.1": models.AnswerYes, "1.2": models.AnswerPartial}

	a := Score(answers, pillars)
	b := Score(answers, pillars)

	if a.TotalScore != b.TotalScore || a.MaxPossibleScore != b.MaxPossibleScore || a.PercentageScore != b.PercentageScore {
		t.Errorf("Repeated scoring diverged: %+v vs %+v", a, b)
	}
	for i := range a.PillarScores {
		if a.PillarScores[i] != b.PillarScores[i] {
			t.Errorf("Pillar score %d diverged: %+v vs %+v", i, a.PillarScores[i], b.PillarScores[i])
		}
	}
}

func TestScore_ExplicitCreditTable(t *testing.T) {
	pillar := models.Pillar{
		Ordinal: 1,
		Name:    "Marketing",
		Questions: []models.Question{
			{
				Order:          1,
				Text:           "Investe em marketing digital?",
				Points:         40,
				PositiveAnswer: models.AnswerYes,
				AnswerType:     models.AnswerTypeTernary,
				Credits: []models.AnswerCredit{
					{Answer: models.AnswerYes, Fraction: 1},
					{Answer: models.AnswerPartial, Fraction: 0.25},
				},
			},
		},
	}

	summary := Score(map[string]models.AnswerValue{"1.1": models.AnswerPartial}, []models.Pillar{pillar})

	if summary.TotalScore != 10 {
		t.Errorf("Expected explicit table to award 10, got %v", summary.TotalScore)
	}
}
