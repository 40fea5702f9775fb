package models

import "testing"

func TestQuestionValidate(t *testing.T) {
	valid := Question{
		Order:          1,
		Text:           "Possui controle de fluxo de caixa?",
		Points:         10,
		PositiveAnswer: AnswerYes,
		AnswerType:     AnswerTypeBinary,
	}

	tests := []struct {
		name     string
		mutate   func(q *Question)
		expected error
	}{
		{"valid question", func(q *Question) {}, nil},
		{"empty text", func(q *Question) { q.Text = "" }, ErrInvalidInput},
		{"zero points", func(q *Question) { q.Points = 0 }, ErrInvalidQuestionPoints},
		{"negative points", func(q *Question) { q.Points = -5 }, ErrInvalidQuestionPoints},
		{"unknown answer type", func(q *Question) { q.AnswerType = "QUATERNARY" }, ErrInvalidAnswerType},
		{"partial positive on binary", func(q *Question) { q.PositiveAnswer = AnswerPartial }, ErrInvalidPositiveAnswer},
		{"bad credit fraction", func(q *Question) {
			q.Credits = []AnswerCredit{{Answer: AnswerYes, Fraction: 1.5}}
		}, ErrInvalidCreditTable},
		{"bad credit answer", func(q *Question) {
			q.Credits = []AnswerCredit{{Answer: "TALVEZ", Fraction: 0.5}}
		}, ErrInvalidCreditTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			if err := q.Validate(); err != tt.expected {
				t.Errorf("Validate() = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestQuestionValidate_TernaryAllowsPartialPositive(t *testing.T) {
	q := Question{
		Order:          1,
		Text:           "Possui metas documentadas?",
		Points:         10,
		PositiveAnswer: AnswerPartial,
		AnswerType:     AnswerTypeTernary,
	}
	if err := q.Validate(); err != nil {
		t.Errorf("Expected ternary question to allow PARCIALMENTE as positive answer, got %v", err)
	}
}

func TestAwardedPoints_DefaultTable(t *testing.T) {
	q := Question{
		Order:          2,
		Text:           "Revisa preços regularmente?",
		Points:         20,
		PositiveAnswer: AnswerNo,
		AnswerType:     AnswerTypeTernary,
	}

	tests := []struct {
		name     string
		answer   AnswerValue
		expected float64
	}{
		{"positive answer", AnswerNo, 20},
		{"partial answer", AnswerPartial, 10},
		{"negation", AnswerYes, 0},
		{"unanswered", "", 0},
		{"out of vocabulary", "TALVEZ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.AwardedPoints(tt.answer); got != tt.expected {
				t.Errorf("AwardedPoints(%q) = %v, want %v", tt.answer, got, tt.expected)
			}
		})
	}
}

func TestAwardedPoints_ExplicitTableWins(t *testing.T) {
	q := Question{
		Order:          1,
		Text:           "Tem presença digital?",
		Points:         8,
		PositiveAnswer: AnswerYes,
		AnswerType:     AnswerTypeTernary,
		Credits: []AnswerCredit{
			{Answer: AnswerYes, Fraction: 1},
			{Answer: AnswerPartial, Fraction: 0.75},
		},
	}

	if got := q.AwardedPoints(AnswerPartial); got != 6 {
		t.Errorf("AwardedPoints(PARCIALMENTE) = %v, want 6", got)
	}
	// NÃO is not in the explicit table and therefore scores zero
	if got := q.AwardedPoints(AnswerNo); got != 0 {
		t.Errorf("AwardedPoints(NÃO) = %v, want 0", got)
	}
}

func TestQuestionID(t *testing.T) {
	if got := QuestionID(3, 7); got != "3.7" {
		t.Errorf("QuestionID(3, 7) = %q, want \"3.7\"", got)
	}
}

func TestAnswerTypeVocabulary(t *testing.T) {
	if AnswerTypeBinary.Allows(AnswerPartial) {
		t.Error("BINARY must not allow PARCIALMENTE")
	}
	if !AnswerTypeTernary.Allows(AnswerPartial) {
		t.Error("TERNARY must allow PARCIALMENTE")
	}
	if !AnswerTypeBinary.Allows(AnswerNo) {
		t.Error("BINARY must allow NÃO")
	}
}
