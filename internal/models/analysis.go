package models

// DraftCandidate is a non-senior who could leave for the draft.
type DraftCandidate struct {
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Class        Class    `json:"class"`
	RedShirt     bool     `json:"red_shirt"`
	DevTrait     DevTrait `json:"dev_trait,omitempty"`
	OverallStart int      `json:"overall_start"`
}

// GroupQuality summarizes freshmen and sophomores in one position group.
type GroupQuality struct {
	Group string `json:"group"`
	// AvgOverallStart is nil when no player in the group has a rating.
	AvgOverallStart *float64 `json:"avg_overall_start"`
	Count           int      `json:"count"`
}

// ArchetypeCount is the number of players at a position with one archetype.
type ArchetypeCount struct {
	Position       string `json:"position"`
	Archetype      string `json:"archetype"`
	SecondaryGroup string `json:"secondary_group"`
	Count          int    `json:"count"`
}

// University is a registry entry describing a dynasty roster workbook.
type University struct {
	Key     string   `json:"key" yaml:"key"`
	Name    string   `json:"name" yaml:"name"`
	Seasons []string `json:"seasons" yaml:"seasons"`
	// Palette holds four chart colours, darkest first.
	Palette []string `json:"palette" yaml:"palette"`
}
