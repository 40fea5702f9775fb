// Package scoring implements the pure maturity scoring engine: it converts an
// answer set plus the weighted pillar hierarchy into per-pillar and overall
// scores. No I/O, no shared state; concurrent calls are safe by construction.
package scoring

import (
	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// Summary is the deterministic output of one scoring run
type Summary struct {
	PillarScores     []models.PillarScore `json:"pillar_scores"`
	TotalScore       float64              `json:"total_score"`
	MaxPossibleScore float64              `json:"max_possible_score"`
	PercentageScore  float64              `json:"percentage_score"`
}

// Score computes per-pillar and overall scores for the given answer set
// against the pillars in questionnaire order. Missing answers score zero but
// still count toward the maximum; answer values outside the vocabulary are
// deliberately treated as unanswered rather than rejected.
// #IMPLEMENTATION_DECISION: Zero-max pillars (and questionnaires) report a
// percentage of 0 instead of an undefined ratio
func Score(answers map[string]models.AnswerValue, pillars []models.Pillar) Summary {
	summary := Summary{
		PillarScores: make([]models.PillarScore, 0, len(pillars)),
	}

	for _, pillar := range pillars {
		var pillarScore, pillarMax float64

		for _, question := range pillar.Questions {
			pillarMax += question.Points
			answer := answers[models.QuestionID(pillar.Ordinal, question.Order)]
			pillarScore += question.AwardedPoints(answer)
		}

		summary.PillarScores = append(summary.PillarScores, models.PillarScore{
			PillarID:         pillar.Ordinal,
			PillarName:       pillar.Name,
			Score:            pillarScore,
			MaxPossibleScore: pillarMax,
			PercentageScore:  percentage(pillarScore, pillarMax),
		})

		summary.TotalScore += pillarScore
		summary.MaxPossibleScore += pillarMax
	}

	summary.PercentageScore = percentage(summary.TotalScore, summary.MaxPossibleScore)
	return summary
}

// percentage returns score/max*100 with the zero-max sentinel of 0
func percentage(score, max float64) float64 {
	if max == 0 {
		return 0
	}
	return score / max * 100
}
