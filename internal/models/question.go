package models

import "fmt"

// AnswerValue is one of the fixed answer vocabulary values
// #DATA_ASSUMPTION: Vocabulary is fixed pt-BR per the diagnostic questionnaire
type AnswerValue string

const (
	AnswerYes     AnswerValue = "SIM"
	AnswerNo      AnswerValue = "NÃO"
	AnswerPartial AnswerValue = "PARCIALMENTE"
)

// IsValid checks if the AnswerValue is a member of the full vocabulary
func (a AnswerValue) IsValid() bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerPartial:
		return true
	}
	return false
}

// AnswerType represents the answer vocabulary shape of a question
type AnswerType string

const (
	AnswerTypeBinary  AnswerType = "BINARY"
	AnswerTypeTernary AnswerType = "TERNARY"
)

// IsValid checks if the AnswerType is a valid value
func (at AnswerType) IsValid() bool {
	return at == AnswerTypeBinary || at == AnswerTypeTernary
}

// Vocabulary returns the answer values a respondent may choose for this type
func (at AnswerType) Vocabulary() []AnswerValue {
	if at == AnswerTypeTernary {
		return []AnswerValue{AnswerYes, AnswerNo, AnswerPartial}
	}
	return []AnswerValue{AnswerYes, AnswerNo}
}

// Allows reports whether the answer value belongs to this type's vocabulary
func (at AnswerType) Allows(a AnswerValue) bool {
	for _, v := range at.Vocabulary() {
		if v == a {
			return true
		}
	}
	return false
}

// AnswerCredit maps an answer value to the fraction of a question's points it earns.
// #IMPLEMENTATION_DECISION: Explicit credit table instead of a hardcoded
// full/half/zero branch, so the award rule is a plain lookup
type AnswerCredit struct {
	Answer   AnswerValue `bson:"answer" json:"answer"`
	Fraction float64     `bson:"fraction" json:"fraction"`
}

// Question represents a single assessable statement inside a pillar
// #CARDINALITY_ASSUMPTION: Pillar 1:N Questions - questions embedded as they are never queried independently
type Question struct {
	// Order is the 1-based ordinal inside the owning pillar; it composes the
	// public question ID "<pillarOrdinal>.<questionOrdinal>"
	Order int `bson:"order" json:"order"`

	Text string `bson:"text" json:"text"`

	// Points is the weight this question contributes to its pillar's maximum
	Points float64 `bson:"points" json:"points"`

	PositiveAnswer AnswerValue `bson:"positive_answer" json:"positive_answer"`
	AnswerType     AnswerType  `bson:"answer_type" json:"answer_type"`

	// Credits optionally overrides the default award table
	Credits []AnswerCredit `bson:"credits,omitempty" json:"credits,omitempty"`
}

// QuestionID composes the public question identifier for a pillar ordinal
func QuestionID(pillarOrdinal, questionOrdinal int) string {
	return fmt.Sprintf("%d.%d", pillarOrdinal, questionOrdinal)
}

// Validate checks the structural invariants of a question
func (q *Question) Validate() error {
	if q.Text == "" {
		return ErrInvalidInput
	}
	if q.Points <= 0 {
		return ErrInvalidQuestionPoints
	}
	if !q.AnswerType.IsValid() {
		return ErrInvalidAnswerType
	}
	if !q.AnswerType.Allows(q.PositiveAnswer) {
		return ErrInvalidPositiveAnswer
	}
	for _, c := range q.Credits {
		if !c.Answer.IsValid() || c.Fraction < 0 || c.Fraction > 1 {
			return ErrInvalidCreditTable
		}
	}
	return nil
}

// CreditTable returns the ordered award table for this question. When no
// explicit table is configured the legacy rule applies: the positive answer
// earns full points and the partial answer earns half, whatever the declared
// answer type (the engine never type-checks respondent answers).
func (q *Question) CreditTable() []AnswerCredit {
	if len(q.Credits) > 0 {
		return q.Credits
	}
	return []AnswerCredit{
		{Answer: q.PositiveAnswer, Fraction: 1},
		{Answer: AnswerPartial, Fraction: 0.5},
	}
}

// AwardedPoints returns the points the given answer earns on this question.
// Unknown or empty answers earn zero; the first matching table entry wins.
func (q *Question) AwardedPoints(answer AnswerValue) float64 {
	for _, c := range q.CreditTable() {
		if c.Answer == answer {
			return q.Points * c.Fraction
		}
	}
	return 0
}
