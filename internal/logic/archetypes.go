package logic

import (
	"sort"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// Archetypes counts archetypes per position for one side of the ball. A
// non-empty secondaryGroup further restricts the result, e.g. "DB".
func Archetypes(s *models.Snapshot, side models.Side, secondaryGroup string) []models.ArchetypeCount {
	type key struct{ position, archetype string }
	counts := make(map[key]*models.ArchetypeCount)

	for _, p := range s.Players() {
		if p.Side != side {
			continue
		}
		k := key{p.Position, p.Archetype}
		c, ok := counts[k]
		if !ok {
			// The first observed secondary group wins.
			c = &models.ArchetypeCount{Position: p.Position, Archetype: p.Archetype, SecondaryGroup: p.SecondaryGroup}
			counts[k] = c
		}
		c.Count++
	}

	out := make([]models.ArchetypeCount, 0, len(counts))
	for _, c := range counts {
		if secondaryGroup != "" && c.SecondaryGroup != secondaryGroup {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Archetype < out[j].Archetype
	})
	return out
}
