package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pillar represents a named, ordered group of questions covering one
// dimension of the maturity assessment
// #DATA_ASSUMPTION: Ordinal is the public pillar ID used in question IDs and
// historical results; the Mongo ObjectID is internal only
type Pillar struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	// Ordinal is the 1-based position of the pillar, stable once assigned
	Ordinal int    `bson:"ordinal" json:"id"`
	Name    string `bson:"name" json:"name"`

	// Questions in display/scoring order; order does not affect the sum
	Questions []Question `bson:"questions" json:"questions"`

	// Audit fields
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CollectionName returns the MongoDB collection name for pillars
func (Pillar) CollectionName() string {
	return "pillars"
}

// BeforeCreate sets default values before inserting a new pillar
func (p *Pillar) BeforeCreate() {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	if p.Questions == nil {
		p.Questions = []Question{}
	}
}

// BeforeUpdate sets the UpdatedAt timestamp
func (p *Pillar) BeforeUpdate() {
	p.UpdatedAt = time.Now().UTC()
}

// MaxScore returns the pillar's maximum possible score, always recomputed
// from the question weights and never cached
func (p *Pillar) MaxScore() float64 {
	var max float64
	for _, q := range p.Questions {
		max += q.Points
	}
	return max
}

// QuestionCount returns the number of questions in the pillar
func (p *Pillar) QuestionCount() int {
	return len(p.Questions)
}

// GetQuestion returns the question with the given public ID, or nil
func (p *Pillar) GetQuestion(questionID string) *Question {
	for i := range p.Questions {
		if QuestionID(p.Ordinal, p.Questions[i].Order) == questionID {
			return &p.Questions[i]
		}
	}
	return nil
}

// NextQuestionOrder returns the ordinal for a question appended to this pillar
func (p *Pillar) NextQuestionOrder() int {
	highest := 0
	for _, q := range p.Questions {
		if q.Order > highest {
			highest = q.Order
		}
	}
	return highest + 1
}

// Validate checks the structural invariants of the pillar and its questions
func (p *Pillar) Validate() error {
	if p.Name == "" {
		return ErrEmptyPillarName
	}
	if p.Ordinal < 1 {
		return ErrInvalidInput
	}
	seen := make(map[int]bool, len(p.Questions))
	for i := range p.Questions {
		if err := p.Questions[i].Validate(); err != nil {
			return err
		}
		if seen[p.Questions[i].Order] {
			return ErrDuplicateQuestionID
		}
		seen[p.Questions[i].Order] = true
	}
	return nil
}
