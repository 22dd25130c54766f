package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

func TestDraftCandidates(t *testing.T) {
	snap := models.NewSnapshot("stanford", "2028", []models.Player{
		{Name: "Junior", Class: models.Junior, Position: "QB", OverallStart: models.Overall(88)},
		{Name: "RS Soph", Class: models.Sophomore, RedShirt: true, Position: "WR", OverallStart: models.Overall(91)},
		{Name: "True Soph", Class: models.Sophomore, Position: "TE", OverallStart: models.Overall(95)},
		{Name: "Senior", Class: models.Senior, Position: "CB", OverallStart: models.Overall(97)},
		{Name: "Low Junior", Class: models.Junior, Position: "HB", OverallStart: models.Overall(84)},
		{Name: "Unrated", Class: models.Junior, Position: "K"},
		{Name: "Another Junior", Class: models.Junior, RedShirt: true, Position: "LT", OverallStart: models.Overall(88)},
	})

	tests := []struct {
		name       string
		minOverall int
		want       []string
		wantErr    bool
	}{
		{"Default threshold", DefaultDraftOverall, []string{"RS Soph", "Another Junior", "Junior"}, false},
		{"Lowest threshold", MinDraftOverall, []string{"RS Soph", "Another Junior", "Junior", "Low Junior"}, false},
		{"Nobody qualifies", MaxDraftOverall, []string{}, false},
		{"Below range", 79, nil, true},
		{"Above range", 100, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DraftCandidates(snap, tt.minOverall)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DraftCandidates() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			names := []string{}
			for _, c := range got {
				names = append(names, c.Name)
			}
			if diff := cmp.Diff(tt.want, names); diff != "" {
				t.Errorf("DraftCandidates() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYoungPlayerQuality(t *testing.T) {
	snap := models.NewSnapshot("stanford", "2028", []models.Player{
		{Class: models.Freshman, Group: "QB", OverallStart: models.Overall(70)},
		{Class: models.Sophomore, Group: "QB", OverallStart: models.Overall(75)},
		{Class: models.Freshman, Group: "DB", OverallStart: models.Overall(60)},
		{Class: models.Freshman, Group: "DB"},
		{Class: models.Freshman, Group: "K"},
		{Class: models.Junior, Group: "QB", OverallStart: models.Overall(99)},
		{Class: models.Sophomore, Group: "OL", OverallStart: models.Overall(60)},
	})

	avg := func(v float64) *float64 { return &v }
	want := []models.GroupQuality{
		{Group: "K", AvgOverallStart: nil, Count: 1},
		{Group: "OL", AvgOverallStart: avg(60), Count: 1},
		{Group: "DB", AvgOverallStart: avg(60), Count: 2},
		{Group: "QB", AvgOverallStart: avg(72.5), Count: 2},
	}

	got := YoungPlayerQuality(snap)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YoungPlayerQuality() mismatch (-want +got):\n%s", diff)
	}
}

func TestYoungPlayerQuality_Rounding(t *testing.T) {
	snap := models.NewSnapshot("stanford", "2028", []models.Player{
		{Class: models.Freshman, Group: "WR", OverallStart: models.Overall(70)},
		{Class: models.Freshman, Group: "WR", OverallStart: models.Overall(71)},
		{Class: models.Freshman, Group: "WR", OverallStart: models.Overall(71)},
	})
	got := YoungPlayerQuality(snap)
	if len(got) != 1 || got[0].AvgOverallStart == nil || *got[0].AvgOverallStart != 70.7 {
		t.Errorf("YoungPlayerQuality() = %+v, want WR avg 70.7", got)
	}
}

func TestArchetypes(t *testing.T) {
	snap := models.NewSnapshot("fresno_state", "2027", []models.Player{
		{Position: "CB", Archetype: "Zone", SecondaryGroup: "DB", Side: models.Defense},
		{Position: "CB", Archetype: "Zone", SecondaryGroup: "DB", Side: models.Defense},
		{Position: "CB", Archetype: "Man to Man", SecondaryGroup: "DB", Side: models.Defense},
		{Position: "FS", Archetype: "Hybrid", SecondaryGroup: "DB", Side: models.Defense},
		{Position: "MIKE", Archetype: "Run Stopper", SecondaryGroup: "LB", Side: models.Defense},
		{Position: "QB", Archetype: "Field General", Side: models.Offense},
	})

	tests := []struct {
		name           string
		side           models.Side
		secondaryGroup string
		want           []models.ArchetypeCount
	}{
		{
			name:           "Defensive backs",
			side:           models.Defense,
			secondaryGroup: "DB",
			want: []models.ArchetypeCount{
				{Position: "CB", Archetype: "Man to Man", SecondaryGroup: "DB", Count: 1},
				{Position: "CB", Archetype: "Zone", SecondaryGroup: "DB", Count: 2},
				{Position: "FS", Archetype: "Hybrid", SecondaryGroup: "DB", Count: 1},
			},
		},
		{
			name: "Offense",
			side: models.Offense,
			want: []models.ArchetypeCount{
				{Position: "QB", Archetype: "Field General", Count: 1},
			},
		},
		{
			name: "Special teams",
			side: models.SpecialTeams,
			want: []models.ArchetypeCount{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Archetypes(snap, tt.side, tt.secondaryGroup)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Archetypes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdvanceSeason(t *testing.T) {
	snap := models.NewSnapshot("san_diego_state", "2027", []models.Player{
		{Name: "Fresh", Class: models.Freshman, RedShirt: true, DevTrait: models.DevStar},
		{Name: "Soph", Class: models.Sophomore},
		{Name: "Jun", Class: models.Junior},
		{Name: "Sen", Class: models.Senior},
	})

	next := AdvanceSeason(snap, "2028")

	if next.Season != "2028" || next.University != "san_diego_state" {
		t.Errorf("AdvanceSeason() = %s/%s, want san_diego_state/2028", next.University, next.Season)
	}
	want := []models.Player{
		{Name: "Fresh", Class: models.Sophomore, RedShirt: true, DevTrait: models.DevStar},
		{Name: "Soph", Class: models.Junior},
		{Name: "Jun", Class: models.Senior},
	}
	if diff := cmp.Diff(want, next.Players()); diff != "" {
		t.Errorf("AdvanceSeason() mismatch (-want +got):\n%s", diff)
	}
	if snap.Len() != 4 || snap.Players()[0].Class != models.Freshman {
		t.Error("AdvanceSeason() modified the source snapshot")
	}
}
