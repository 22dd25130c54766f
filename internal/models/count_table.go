package models

// CountRow is one (group, category values...) tuple of a dense table.
// Ranks[i] is the index of Values[i] in the i-th category domain.
type CountRow struct {
	Group  string   `json:"group"`
	Values []string `json:"values"`
	Ranks  []int    `json:"ranks"`
	Count  int      `json:"count"`
}

// CountTable is an aggregated count table that is dense over the cross
// product of observed groups and every category domain.
type CountTable struct {
	// Keys holds the group attribute followed by each category attribute.
	Keys []string   `json:"keys"`
	Rows []CountRow `json:"rows"`
}

// GroupAttribute is the name of the grouping column.
func (t *CountTable) GroupAttribute() string {
	if len(t.Keys) == 0 {
		return ""
	}
	return t.Keys[0]
}

// CategoryIndex returns the position of attribute within CountRow.Values, or -1.
func (t *CountTable) CategoryIndex(attribute string) int {
	for i, k := range t.Keys[1:] {
		if k == attribute {
			return i
		}
	}
	return -1
}

// Total sums every count in the table.
func (t *CountTable) Total() int {
	total := 0
	for _, r := range t.Rows {
		total += r.Count
	}
	return total
}

// Groups returns the distinct groups in table order.
func (t *CountTable) Groups() []string {
	var groups []string
	seen := make(map[string]struct{})
	for _, r := range t.Rows {
		if _, ok := seen[r.Group]; ok {
			continue
		}
		seen[r.Group] = struct{}{}
		groups = append(groups, r.Group)
	}
	return groups
}

// Clone returns a deep copy so consumers never share rows with the producer.
func (t *CountTable) Clone() *CountTable {
	out := &CountTable{
		Keys: append([]string(nil), t.Keys...),
		Rows: make([]CountRow, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = CountRow{
			Group:  r.Group,
			Values: append([]string(nil), r.Values...),
			Ranks:  append([]int(nil), r.Ranks...),
			Count:  r.Count,
		}
	}
	return out
}
