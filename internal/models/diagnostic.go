package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompanyData is the free-form respondent record carried through to the
// result; the scoring engine never interprets it
type CompanyData struct {
	ContactName    string  `bson:"contact_name" json:"contact_name"`
	CompanyName    string  `bson:"company_name" json:"company_name"`
	CompanyCNPJ    string  `bson:"company_cnpj" json:"company_cnpj"`
	HasPartners    bool    `bson:"has_partners" json:"has_partners"`
	EmployeeCount  int     `bson:"employee_count" json:"employee_count"`
	Revenue        float64 `bson:"revenue" json:"revenue"`
	Segment        string  `bson:"segment" json:"segment"`
	TimeInBusiness string  `bson:"time_in_business" json:"time_in_business"`
	Location       string  `bson:"location" json:"location"`
	LegalForm      string  `bson:"legal_form" json:"legal_form"`
}

// PillarScore is the per-pillar figure of a scoring run. Pillar ID and name
// are copied at scoring time so later questionnaire edits never alter
// historical results.
type PillarScore struct {
	PillarID         int     `bson:"pillar_id" json:"pillar_id"`
	PillarName       string  `bson:"pillar_name" json:"pillar_name"`
	Score            float64 `bson:"score" json:"score"`
	MaxPossibleScore float64 `bson:"max_possible_score" json:"max_possible_score"`
	PercentageScore  float64 `bson:"percentage_score" json:"percentage_score"`
}

// DiagnosticResult is the immutable scored snapshot of one completed
// questionnaire submission
// #DATA_ASSUMPTION: Results are never updated in place; corrections require a
// new submission. Deleted only by explicit admin action.
type DiagnosticResult struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Date        time.Time   `bson:"date" json:"date"`
	CompanyData CompanyData `bson:"company_data" json:"company_data"`

	// Answers is the exact answer set used to compute this result, keyed by
	// question ID, kept for audit and recompute
	Answers map[string]AnswerValue `bson:"answers" json:"answers"`

	// PillarScores in the questionnaire's pillar order at scoring time
	PillarScores []PillarScore `bson:"pillar_scores" json:"pillar_scores"`

	TotalScore       float64 `bson:"total_score" json:"total_score"`
	MaxPossibleScore float64 `bson:"max_possible_score" json:"max_possible_score"`
	PercentageScore  float64 `bson:"percentage_score" json:"percentage_score"`
}

// CollectionName returns the MongoDB collection name for diagnostic results
func (DiagnosticResult) CollectionName() string {
	return "diagnostic_results"
}

// BeforeCreate sets default values before inserting a new result
func (r *DiagnosticResult) BeforeCreate() {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
	}
	if r.Date.IsZero() {
		r.Date = time.Now().UTC()
	}
	if r.Answers == nil {
		r.Answers = map[string]AnswerValue{}
	}
	if r.PillarScores == nil {
		r.PillarScores = []PillarScore{}
	}
}

// AnswerCount returns the number of answered questions
func (r *DiagnosticResult) AnswerCount() int {
	return len(r.Answers)
}
