package logic

import (
	"fmt"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// GroupKeyFor returns the presentation order for the grouping attributes the
// roster views support.
func GroupKeyFor(attribute string) (GroupKey, error) {
	switch attribute {
	case "position":
		return GroupKey{Attribute: attribute, Order: models.PositionOrder}, nil
	case "group":
		return GroupKey{Attribute: attribute, Order: models.GroupOrder}, nil
	case "secondary_group", "archetype":
		return ByAttribute(attribute), nil
	case "class":
		return GroupKey{Attribute: attribute, Order: models.ClassDomain.Values}, nil
	case "team":
		return GroupKey{Attribute: attribute, Order: models.SideDomain.Values}, nil
	}
	return GroupKey{}, fmt.Errorf("%w: cannot group roster views by %q", ErrUnknownAttribute, attribute)
}

// DevTraits counts every dev trait per group value.
func DevTraits(s *models.Snapshot, group GroupKey) (*models.CountTable, error) {
	return CompleteCounts(s.Players(), group, models.DevTraitDomain)
}

// StarElite is DevTraits restricted to star and elite players.
func StarElite(s *models.Snapshot, group GroupKey) (*models.CountTable, error) {
	table, err := DevTraits(s, group)
	if err != nil {
		return nil, err
	}
	return FilterCategories(table, models.DevTraitDomain.Attribute, models.StarElite...)
}

// DevPipeline counts dev traits per group per class.
func DevPipeline(s *models.Snapshot, group GroupKey) (*models.CountTable, error) {
	return CompleteCounts(s.Players(), group, models.ClassDomain, models.DevTraitDomain)
}

// ClassDistribution counts red shirts within each class, in class order.
func ClassDistribution(s *models.Snapshot) (*models.CountTable, error) {
	group := GroupKey{Attribute: "class", Order: models.ClassDomain.Values}
	return CompleteCounts(s.Players(), group, models.RedShirtDomain)
}

// PositionGroupMatrix counts players per group and position. Positions never
// seen in the snapshot are left out of the domain.
func PositionGroupMatrix(s *models.Snapshot) (*models.CountTable, error) {
	players := s.Players()
	seen := make(map[string]struct{})
	for _, p := range players {
		if p.Position != "" {
			seen[p.Position] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return &models.CountTable{Keys: []string{"group", "position"}, Rows: []models.CountRow{}}, nil
	}
	positions := models.NewDomain("position", orderGroups(seen, models.PositionOrder)...)
	return CompleteCounts(players, GroupKey{Attribute: "group", Order: models.GroupOrder}, positions)
}
