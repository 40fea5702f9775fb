package models

import "testing"

func testPillar() Pillar {
	return Pillar{
		Ordinal: 2,
		Name:    "Finanças",
		Questions: []Question{
			{Order: 1, Text: "Separa contas PF/PJ?", Points: 10, PositiveAnswer: AnswerYes, AnswerType: AnswerTypeBinary},
			{Order: 2, Text: "Possui reserva de caixa?", Points: 15.5, PositiveAnswer: AnswerYes, AnswerType: AnswerTypeTernary},
		},
	}
}

func TestPillarMaxScore(t *testing.T) {
	p := testPillar()
	if got := p.MaxScore(); got != 25.5 {
		t.Errorf("MaxScore() = %v, want 25.5", got)
	}

	p.Questions = nil
	if got := p.MaxScore(); got != 0 {
		t.Errorf("MaxScore() on empty pillar = %v, want 0", got)
	}
}

func TestPillarGetQuestion(t *testing.T) {
	p := testPillar()

	q := p.GetQuestion("2.2")
	if q == nil {
		t.Fatal("Expected question 2.2 to be found")
	}
	if q.Points != 15.5 {
		t.Errorf("Expected points 15.5, got %v", q.Points)
	}

	if p.GetQuestion("2.9") != nil {
		t.Error("Expected question 2.9 to be absent")
	}
	if p.GetQuestion("1.1") != nil {
		t.Error("Question lookup must be scoped to the pillar ordinal")
	}
}

func TestPillarNextQuestionOrder(t *testing.T) {
	p := testPillar()
	if got := p.NextQuestionOrder(); got != 3 {
		t.Errorf("NextQuestionOrder() = %d, want 3", got)
	}

	empty := Pillar{Ordinal: 1, Name: "Estratégia"}
	if got := empty.NextQuestionOrder(); got != 1 {
		t.Errorf("NextQuestionOrder() on empty pillar = %d, want 1", got)
	}
}

func TestPillarValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *Pillar)
		expected error
	}{
		{"valid pillar", func(p *Pillar) {}, nil},
		{"empty name", func(p *Pillar) { p.Name = "" }, ErrEmptyPillarName},
		{"zero ordinal", func(p *Pillar) { p.Ordinal = 0 }, ErrInvalidInput},
		{"duplicate question order", func(p *Pillar) { p.Questions[1].Order = 1 }, ErrDuplicateQuestionID},
		{"invalid question", func(p *Pillar) { p.Questions[0].Points = 0 }, ErrInvalidQuestionPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPillar()
			tt.mutate(&p)
			if err := p.Validate(); err != tt.expected {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestPillarBeforeCreate(t *testing.T) {
	p := Pillar{Ordinal: 1, Name: "Estratégia"}
	p.BeforeCreate()

	if p.ID.IsZero() {
		t.Error("Expected ID to be assigned")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("Expected audit timestamps to be set")
	}
	if p.Questions == nil {
		t.Error("Expected questions to default to an empty slice")
	}
}
