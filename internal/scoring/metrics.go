package scoring

import (
	"sort"

	"github.com/diagnostico-tools/diagnostico_backend/internal/models"
)

// RankPillars returns the pillar scores sorted descending by score. The sort
// is stable, so tied pillars keep their questionnaire order.
func RankPillars(scores []models.PillarScore) []models.PillarScore {
	ranked := make([]models.PillarScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// BestPillar returns the highest-scoring pillar, or false for an empty input
func BestPillar(scores []models.PillarScore) (models.PillarScore, bool) {
	if len(scores) == 0 {
		return models.PillarScore{}, false
	}
	ranked := RankPillars(scores)
	return ranked[0], true
}

// WorstPillar returns the lowest-scoring pillar, or false for an empty input
func WorstPillar(scores []models.PillarScore) (models.PillarScore, bool) {
	if len(scores) == 0 {
		return models.PillarScore{}, false
	}
	ranked := RankPillars(scores)
	return ranked[len(ranked)-1], true
}
