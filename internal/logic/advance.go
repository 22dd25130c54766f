package logic

import "github.com/cfbdynasty/roster-stats/internal/models"

var nextClass = map[models.Class]models.Class{
	models.Freshman:  models.Sophomore,
	models.Sophomore: models.Junior,
	models.Junior:    models.Senior,
}

// AdvanceSeason graduates seniors and promotes everyone else one class.
// Players with an unrecognised class are carried over unchanged.
func AdvanceSeason(s *models.Snapshot, nextSeason string) *models.Snapshot {
	players := s.Players()
	kept := players[:0]
	for _, p := range players {
		if p.Class == models.Senior {
			continue
		}
		if c, ok := nextClass[p.Class]; ok {
			p.Class = c
		}
		kept = append(kept, p)
	}
	return models.NewSnapshot(s.University, nextSeason, kept)
}
