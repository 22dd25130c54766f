package logic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// GroupKey names the grouping attribute of a dense table and how its
// observed values are ordered.
type GroupKey struct {
	Attribute string
	// Order lists group values in presentation order. Observed values missing
	// from Order follow it lexicographically. Nil means lexicographic.
	Order []string
}

// ByAttribute groups lexicographically on attribute.
func ByAttribute(attribute string) GroupKey {
	return GroupKey{Attribute: attribute}
}

// CompleteCounts builds a count table over every combination of the observed
// groups and each category domain, filling unobserved combinations with zero.
//
// Rows whose category value is null or outside its domain are not counted.
// Rows are ordered by group, then by each domain in turn.
func CompleteCounts(players []models.Player, group GroupKey, categories ...models.Domain) (*models.CountTable, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: at least one category domain is required", models.ErrInvalidDomain)
	}

	groupOf, groupName, err := lookupAttribute(group.Attribute)
	if err != nil {
		return nil, err
	}

	keys := []string{groupName}
	accessors := make([]accessor, len(categories))
	for i, d := range categories {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		fn, name, err := lookupAttribute(d.Attribute)
		if err != nil {
			return nil, err
		}
		if name == groupName {
			return nil, fmt.Errorf("%w: %q is both group and category", models.ErrInvalidDomain, name)
		}
		accessors[i] = fn
		keys = append(keys, name)
	}

	observed := make(map[string]int)
	seenGroups := make(map[string]struct{})
	values := make([]string, len(categories)+1)

rows:
	for i := range players {
		p := &players[i]
		g, ok := groupOf(p)
		if !ok {
			continue
		}
		seenGroups[g] = struct{}{}
		values[0] = g
		for j, fn := range accessors {
			v, ok := fn(p)
			if !ok || !categories[j].Contains(v) {
				continue rows
			}
			values[j+1] = v
		}
		observed[tupleKey(values)]++
	}

	groups := orderGroups(seenGroups, group.Order)

	size := len(groups)
	for _, d := range categories {
		size *= len(d.Values)
	}
	table := &models.CountTable{Keys: keys, Rows: make([]models.CountRow, 0, size)}

	ranks := make([]int, len(categories))
	for _, g := range groups {
		values[0] = g
		for {
			for j, r := range ranks {
				values[j+1] = categories[j].Values[r]
			}
			table.Rows = append(table.Rows, models.CountRow{
				Group:  g,
				Values: append([]string(nil), values[1:]...),
				Ranks:  append([]int(nil), ranks...),
				Count:  observed[tupleKey(values)],
			})
			if !advance(ranks, categories) {
				break
			}
		}
	}

	return table, nil
}

// advance steps ranks like an odometer, last domain fastest. It returns false
// after the final combination and leaves ranks reset to zero.
func advance(ranks []int, categories []models.Domain) bool {
	for j := len(ranks) - 1; j >= 0; j-- {
		ranks[j]++
		if ranks[j] < len(categories[j].Values) {
			return true
		}
		ranks[j] = 0
	}
	return false
}

func orderGroups(seen map[string]struct{}, order []string) []string {
	groups := make([]string, 0, len(seen))
	listed := make(map[string]struct{}, len(order))
	for _, g := range order {
		if _, ok := seen[g]; !ok {
			continue
		}
		if _, dup := listed[g]; dup {
			continue
		}
		listed[g] = struct{}{}
		groups = append(groups, g)
	}

	var rest []string
	for g := range seen {
		if _, ok := listed[g]; !ok {
			rest = append(rest, g)
		}
	}
	sort.Strings(rest)
	return append(groups, rest...)
}

func tupleKey(values []string) string {
	return strings.Join(values, "\x1f")
}

// FilterCategories keeps rows whose value for attribute is one of keep.
// Row order and zero counts are preserved.
func FilterCategories(table *models.CountTable, attribute string, keep ...string) (*models.CountTable, error) {
	if canonical, ok := attributeAliases[attribute]; ok {
		attribute = canonical
	}
	idx := table.CategoryIndex(attribute)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q is not a category of this table", ErrUnknownAttribute, attribute)
	}

	allowed := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		allowed[k] = struct{}{}
	}

	out := table.Clone()
	rows := out.Rows[:0]
	for _, r := range out.Rows {
		if _, ok := allowed[r.Values[idx]]; ok {
			rows = append(rows, r)
		}
	}
	out.Rows = rows
	return out, nil
}

// SortByRank returns a copy of table ordered by group appearance and then by
// category ranks. CompleteCounts output is already in this order.
func SortByRank(table *models.CountTable) *models.CountTable {
	out := table.Clone()
	groupPos := make(map[string]int)
	for _, g := range out.Groups() {
		groupPos[g] = len(groupPos)
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := out.Rows[i], out.Rows[j]
		if groupPos[a.Group] != groupPos[b.Group] {
			return groupPos[a.Group] < groupPos[b.Group]
		}
		for k := range a.Ranks {
			if a.Ranks[k] != b.Ranks[k] {
				return a.Ranks[k] < b.Ranks[k]
			}
		}
		return false
	})
	return out
}
