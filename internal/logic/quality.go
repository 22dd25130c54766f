package logic

import (
	"math"
	"sort"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// YoungPlayerQuality averages the starting overall of freshmen and sophomores
// (redshirts included) per position group. Unrated players count toward
// Count but not the average.
func YoungPlayerQuality(s *models.Snapshot) []models.GroupQuality {
	type acc struct {
		sum, rated, count int
	}
	byGroup := make(map[string]*acc)

	for _, p := range s.Players() {
		if p.Class != models.Freshman && p.Class != models.Sophomore {
			continue
		}
		a, ok := byGroup[p.Group]
		if !ok {
			a = &acc{}
			byGroup[p.Group] = a
		}
		a.count++
		if p.OverallStart != nil {
			a.sum += *p.OverallStart
			a.rated++
		}
	}

	out := make([]models.GroupQuality, 0, len(byGroup))
	for g, a := range byGroup {
		q := models.GroupQuality{Group: g, Count: a.count}
		if a.rated > 0 {
			avg := math.Round(float64(a.sum)/float64(a.rated)*10) / 10
			q.AvgOverallStart = &avg
		}
		out = append(out, q)
	}

	sort.Slice(out, func(i, j int) bool {
		ai, aj := out[i].AvgOverallStart, out[j].AvgOverallStart
		switch {
		case ai == nil && aj != nil:
			return true
		case ai != nil && aj == nil:
			return false
		case ai != nil && aj != nil && *ai != *aj:
			return *ai < *aj
		}
		if out[i].Count != out[j].Count {
			return out[i].Count < out[j].Count
		}
		return out[i].Group < out[j].Group
	})
	return out
}
