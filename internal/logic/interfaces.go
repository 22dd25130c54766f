package logic

import (
	"context"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// RosterSource loads one season sheet of a university roster workbook.
type RosterSource interface {
	Load(ctx context.Context, university, season string) (*models.Snapshot, error)
}

// TableCache stores derived count tables. A miss returns (nil, false, nil).
type TableCache interface {
	GetTable(ctx context.Context, key string) (*models.CountTable, bool, error)
	SetTable(ctx context.Context, key string, table *models.CountTable) error
}

// RosterService answers roster analysis questions for a university season.
type RosterService interface {
	Snapshot(ctx context.Context, university, season string) (*models.Snapshot, error)
	Table(ctx context.Context, req TableRequest) (*models.CountTable, error)
	DraftCandidates(ctx context.Context, university, season string, minOverall int) ([]models.DraftCandidate, error)
	YoungPlayerQuality(ctx context.Context, university, season string) ([]models.GroupQuality, error)
	Archetypes(ctx context.Context, university, season string, side models.Side, secondaryGroup string) ([]models.ArchetypeCount, error)
	Compare(ctx context.Context, universities []string, req TableRequest) (map[string]*models.CountTable, error)
}
