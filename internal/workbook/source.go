package workbook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// ErrUnknownUniversity is returned for universities missing from the registry.
var ErrUnknownUniversity = errors.New("unknown university")

// Registry resolves university keys.
type Registry interface {
	University(key string) (models.University, bool)
}

// FileName is the workbook name for a university key.
func FileName(university string) string {
	return "roster_" + university + ".xlsx"
}

// LocalSource reads workbooks from <DataDir>/datasets.
type LocalSource struct {
	DataDir  string
	Registry Registry
	Logger   *zap.SugaredLogger
}

// Path returns the workbook path for a university.
func (s *LocalSource) Path(university string) string {
	return filepath.Join(s.DataDir, "datasets", FileName(university))
}

func (s *LocalSource) Load(ctx context.Context, university, season string) (*models.Snapshot, error) {
	if err := checkUniversity(s.Registry, university); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.Path(university)
	snap, err := Open(path, university, season)
	if err != nil {
		return nil, err
	}
	s.Logger.Infow("Loaded roster", "university", university, "season", season, "players", snap.Len(), "path", path)
	return snap, nil
}

// RemoteSource fetches workbooks over HTTP. URLTemplate contains a single
// {university} placeholder, e.g.
// https://raw.githubusercontent.com/<user>/<repo>/main/data/datasets/roster_{university}.xlsx
type RemoteSource struct {
	URLTemplate string
	Client      *http.Client
	Registry    Registry
	Logger      *zap.SugaredLogger
}

// NewRemoteSource builds a RemoteSource with a bounded HTTP client.
func NewRemoteSource(urlTemplate string, timeout time.Duration, registry Registry, logger *zap.Logger) *RemoteSource {
	return &RemoteSource{
		URLTemplate: urlTemplate,
		Client:      &http.Client{Timeout: timeout},
		Registry:    registry,
		Logger:      logger.Sugar(),
	}
}

func (s *RemoteSource) URL(university string) string {
	return strings.ReplaceAll(s.URLTemplate, "{university}", university)
}

func (s *RemoteSource) Load(ctx context.Context, university, season string) (*models.Snapshot, error) {
	if err := checkUniversity(s.Registry, university); err != nil {
		return nil, err
	}

	url := s.URL(university)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	snap, err := Read(resp.Body, university, season)
	if err != nil {
		return nil, err
	}
	s.Logger.Infow("Fetched roster", "university", university, "season", season, "players", snap.Len(), "url", url)
	return snap, nil
}

func checkUniversity(r Registry, university string) error {
	if r == nil {
		return nil
	}
	if _, ok := r.University(university); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUniversity, university)
	}
	return nil
}
