package logic

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// View names a dense table the service can build.
type View string

const (
	ViewDevTraits      View = "dev-traits"
	ViewStarElite      View = "star-elite"
	ViewPipeline       View = "pipeline"
	ViewClasses        View = "classes"
	ViewPositionGroups View = "position-groups"
)

// Views lists every supported view.
var Views = []View{ViewDevTraits, ViewStarElite, ViewPipeline, ViewClasses, ViewPositionGroups}

// TableRequest selects a view of one university season. By is the grouping
// attribute for the dev trait views and is ignored by the others.
type TableRequest struct {
	University string
	Season     string
	View       View
	By         string
}

func (r TableRequest) cacheKey() string {
	return fmt.Sprintf("roster:%s:%s:%s:%s", r.University, r.Season, r.View, r.By)
}

var (
	tablesBuilt = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_tables_built_total",
		Help: "Total number of count tables computed from a snapshot",
	}, []string{"view"})

	tableCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_table_cache_hits_total",
		Help: "Total number of count tables served from cache",
	})

	tableBuildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "roster_table_build_duration_seconds",
		Help:    "Duration of loading a snapshot and building a count table",
		Buckets: prometheus.DefBuckets,
	})
)

type rosterService struct {
	source RosterSource
	cache  TableCache
	logger *zap.SugaredLogger
}

// NewRosterService wires a roster source with an optional table cache.
func NewRosterService(source RosterSource, cache TableCache, logger *zap.Logger) RosterService {
	return &rosterService{source: source, cache: cache, logger: logger.Sugar()}
}

func (s *rosterService) Snapshot(ctx context.Context, university, season string) (*models.Snapshot, error) {
	snap, err := s.source.Load(ctx, university, season)
	if err != nil {
		return nil, fmt.Errorf("load %s %s: %w", university, season, err)
	}
	return snap, nil
}

func (s *rosterService) Table(ctx context.Context, req TableRequest) (*models.CountTable, error) {
	if req.View != ViewDevTraits && req.View != ViewStarElite && req.View != ViewPipeline {
		req.By = ""
	} else if req.By == "" {
		req.By = "position"
	}
	key := req.cacheKey()

	if s.cache != nil {
		table, ok, err := s.cache.GetTable(ctx, key)
		if err != nil {
			s.logger.Warnw("Table cache read failed", "key", key, "error", err)
		} else if ok {
			tableCacheHits.Inc()
			return table, nil
		}
	}

	start := time.Now()
	snap, err := s.Snapshot(ctx, req.University, req.Season)
	if err != nil {
		return nil, err
	}
	table, err := BuildTable(snap, req.View, req.By)
	if err != nil {
		return nil, err
	}
	tableBuildDuration.Observe(time.Since(start).Seconds())
	tablesBuilt.WithLabelValues(string(req.View)).Inc()

	if s.cache != nil {
		if err := s.cache.SetTable(ctx, key, table); err != nil {
			s.logger.Warnw("Table cache write failed", "key", key, "error", err)
		}
	}
	return table, nil
}

// BuildTable computes view over a snapshot.
func BuildTable(snap *models.Snapshot, view View, by string) (*models.CountTable, error) {
	switch view {
	case ViewClasses:
		return ClassDistribution(snap)
	case ViewPositionGroups:
		return PositionGroupMatrix(snap)
	case ViewDevTraits, ViewStarElite, ViewPipeline:
	default:
		return nil, fmt.Errorf("unknown view %q", view)
	}

	group, err := GroupKeyFor(by)
	if err != nil {
		return nil, err
	}
	switch view {
	case ViewStarElite:
		return StarElite(snap, group)
	case ViewPipeline:
		return DevPipeline(snap, group)
	default:
		return DevTraits(snap, group)
	}
}

func (s *rosterService) DraftCandidates(ctx context.Context, university, season string, minOverall int) ([]models.DraftCandidate, error) {
	snap, err := s.Snapshot(ctx, university, season)
	if err != nil {
		return nil, err
	}
	return DraftCandidates(snap, minOverall)
}

func (s *rosterService) YoungPlayerQuality(ctx context.Context, university, season string) ([]models.GroupQuality, error) {
	snap, err := s.Snapshot(ctx, university, season)
	if err != nil {
		return nil, err
	}
	return YoungPlayerQuality(snap), nil
}

func (s *rosterService) Archetypes(ctx context.Context, university, season string, side models.Side, secondaryGroup string) ([]models.ArchetypeCount, error) {
	snap, err := s.Snapshot(ctx, university, season)
	if err != nil {
		return nil, err
	}
	return Archetypes(snap, side, secondaryGroup), nil
}

// Compare builds the same view for several universities. Workbooks are
// fetched concurrently; each table is still computed on its own snapshot.
func (s *rosterService) Compare(ctx context.Context, universities []string, req TableRequest) (map[string]*models.CountTable, error) {
	tables := make([]*models.CountTable, len(universities))

	g, ctx := errgroup.WithContext(ctx)
	for i, u := range universities {
		g.Go(func() error {
			r := req
			r.University = u
			table, err := s.Table(ctx, r)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*models.CountTable, len(universities))
	for i, u := range universities {
		out[u] = tables[i]
	}
	s.logger.Infow("Compared rosters", "universities", universities, "season", req.Season, "view", req.View)
	return out, nil
}
