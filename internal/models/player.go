package models

// Class standing of a player. Ordered FR < SO < JR < SR.
type Class string

const (
	Freshman  Class = "FR"
	Sophomore Class = "SO"
	Junior    Class = "JR"
	Senior    Class = "SR"
)

// Side of the ball a position plays on.
type Side string

const (
	Offense      Side = "OFF"
	Defense      Side = "DEF"
	SpecialTeams Side = "ST"
)

// DevTrait is the player development trait. An empty value means the trait
// is unknown for the season, not "normal".
type DevTrait string

const (
	DevNormal DevTrait = "normal"
	DevImpact DevTrait = "impact"
	DevStar   DevTrait = "star"
	DevElite  DevTrait = "elite"
)

// Player is one roster row for a season snapshot.
type Player struct {
	Name           string   `json:"name"`
	Class          Class    `json:"class"`
	RedShirt       bool     `json:"red_shirt"`
	Position       string   `json:"position"`
	Group          string   `json:"group"`
	SecondaryGroup string   `json:"secondary_group"`
	Side           Side     `json:"team"`
	Archetype      string   `json:"archetype"`
	DevTrait       DevTrait `json:"dev_trait,omitempty"`
	OverallStart   *int     `json:"overall_start,omitempty"`
	OverallEnd     *int     `json:"overall_end,omitempty"`
}

// Snapshot is an immutable season roster for one university.
type Snapshot struct {
	University string
	Season     string
	players    []Player
}

// NewSnapshot copies players so later changes to the caller's slice are not
// visible through the snapshot.
func NewSnapshot(university, season string, players []Player) *Snapshot {
	cp := make([]Player, len(players))
	copy(cp, players)
	return &Snapshot{University: university, Season: season, players: cp}
}

// Players returns a copy of the roster rows.
func (s *Snapshot) Players() []Player {
	cp := make([]Player, len(s.players))
	copy(cp, s.players)
	return cp
}

// Len returns the number of roster rows.
func (s *Snapshot) Len() int { return len(s.players) }

// Overall is a convenience for building rating pointers.
func Overall(v int) *int { return &v }
