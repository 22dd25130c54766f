package logic

import (
	"fmt"
	"sort"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

const (
	DefaultDraftOverall = 85
	MinDraftOverall     = 80
	MaxDraftOverall     = 99
)

// draftEligible reports whether a non-senior can declare: a true or redshirt
// junior, or a redshirt sophomore.
func draftEligible(p *models.Player) bool {
	return p.Class == models.Junior || (p.Class == models.Sophomore && p.RedShirt)
}

// DraftCandidates lists draft eligible non-seniors rated at least minOverall,
// best first.
func DraftCandidates(s *models.Snapshot, minOverall int) ([]models.DraftCandidate, error) {
	if minOverall < MinDraftOverall || minOverall > MaxDraftOverall {
		return nil, fmt.Errorf("min overall %d outside %d..%d", minOverall, MinDraftOverall, MaxDraftOverall)
	}

	candidates := []models.DraftCandidate{}
	for _, p := range s.Players() {
		if !draftEligible(&p) || p.OverallStart == nil || *p.OverallStart < minOverall {
			continue
		}
		candidates = append(candidates, models.DraftCandidate{
			Name:         p.Name,
			Position:     p.Position,
			Class:        p.Class,
			RedShirt:     p.RedShirt,
			DevTrait:     p.DevTrait,
			OverallStart: *p.OverallStart,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].OverallStart != candidates[j].OverallStart {
			return candidates[i].OverallStart > candidates[j].OverallStart
		}
		return candidates[i].Name < candidates[j].Name
	})
	return candidates, nil
}
