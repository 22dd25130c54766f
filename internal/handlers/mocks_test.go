package handlers

import (
	"context"
	"sort"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
)

type MockRosterService struct {
	SnapshotFunc           func(ctx context.Context, university, season string) (*models.Snapshot, error)
	TableFunc              func(ctx context.Context, req logic.TableRequest) (*models.CountTable, error)
	DraftCandidatesFunc    func(ctx context.Context, university, season string, minOverall int) ([]models.DraftCandidate, error)
	YoungPlayerQualityFunc func(ctx context.Context, university, season string) ([]models.GroupQuality, error)
	ArchetypesFunc         func(ctx context.Context, university, season string, side models.Side, secondaryGroup string) ([]models.ArchetypeCount, error)
	CompareFunc            func(ctx context.Context, universities []string, req logic.TableRequest) (map[string]*models.CountTable, error)
}

func (m *MockRosterService) Snapshot(ctx context.Context, university, season string) (*models.Snapshot, error) {
	if m.SnapshotFunc != nil {
		return m.SnapshotFunc(ctx, university, season)
	}
	return models.NewSnapshot(university, season, nil), nil
}

func (m *MockRosterService) Table(ctx context.Context, req logic.TableRequest) (*models.CountTable, error) {
	if m.TableFunc != nil {
		return m.TableFunc(ctx, req)
	}
	return &models.CountTable{}, nil
}

func (m *MockRosterService) DraftCandidates(ctx context.Context, university, season string, minOverall int) ([]models.DraftCandidate, error) {
	if m.DraftCandidatesFunc != nil {
		return m.DraftCandidatesFunc(ctx, university, season, minOverall)
	}
	return []models.DraftCandidate{}, nil
}

func (m *MockRosterService) YoungPlayerQuality(ctx context.Context, university, season string) ([]models.GroupQuality, error) {
	if m.YoungPlayerQualityFunc != nil {
		return m.YoungPlayerQualityFunc(ctx, university, season)
	}
	return []models.GroupQuality{}, nil
}

func (m *MockRosterService) Archetypes(ctx context.Context, university, season string, side models.Side, secondaryGroup string) ([]models.ArchetypeCount, error) {
	if m.ArchetypesFunc != nil {
		return m.ArchetypesFunc(ctx, university, season, side, secondaryGroup)
	}
	return []models.ArchetypeCount{}, nil
}

func (m *MockRosterService) Compare(ctx context.Context, universities []string, req logic.TableRequest) (map[string]*models.CountTable, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, universities, req)
	}
	return map[string]*models.CountTable{}, nil
}

type mockRegistry map[string]models.University

func (m mockRegistry) University(key string) (models.University, bool) {
	u, ok := m[key]
	return u, ok
}

func (m mockRegistry) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(ctx context.Context) error { return m.err }
