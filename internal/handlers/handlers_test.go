package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
	"github.com/cfbdynasty/roster-stats/internal/workbook"
)

func newTestHandler(svc *MockRosterService, cache Pinger) http.Handler {
	h := New(Config{
		Roster: svc,
		Registry: mockRegistry{
			"stanford":     {Key: "stanford", Name: "Stanford"},
			"fresno_state": {Key: "fresno_state", Name: "Fresno State"},
		},
		Cache:          cache,
		AllowedOrigins: []string{"http://localhost:3000"},
		Logger:         zap.NewNop(),
	})
	return h.Routes()
}

func serve(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthAndReady(t *testing.T) {
	tests := []struct {
		name       string
		cache      Pinger
		target     string
		wantStatus int
	}{
		{"Health", nil, "/health", http.StatusOK},
		{"Ready without cache", nil, "/ready", http.StatusOK},
		{"Ready with cache", mockPinger{}, "/ready", http.StatusOK},
		{"Ready with cache down", mockPinger{err: errors.New("dial tcp: refused")}, "/ready", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, newTestHandler(&MockRosterService{}, tt.cache), tt.target)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	handler := newTestHandler(&MockRosterService{}, nil)

	rr := serve(t, handler, "/health")
	if _, err := uuid.Parse(rr.Header().Get(RequestIDHeader)); err != nil {
		t.Errorf("assigned request id %q is not a uuid", rr.Header().Get(RequestIDHeader))
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, id)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != id {
		t.Errorf("request id = %q, want echoed %q", got, id)
	}
}

func TestListUniversities(t *testing.T) {
	rr := serve(t, newTestHandler(&MockRosterService{}, nil), "/api/v1/universities")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got []models.University
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Key != "fresno_state" || got[1].Key != "stanford" {
		t.Errorf("universities = %+v", got)
	}
}

func TestGetTable(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantReq    logic.TableRequest
	}{
		{
			name:       "Dev traits by group",
			target:     "/api/v1/rosters/stanford/2027/dev-traits?by=group",
			wantStatus: http.StatusOK,
			wantReq:    logic.TableRequest{University: "stanford", Season: "2027", View: logic.ViewDevTraits, By: "group"},
		},
		{
			name:       "Classes",
			target:     "/api/v1/rosters/stanford/2029/classes",
			wantStatus: http.StatusOK,
			wantReq:    logic.TableRequest{University: "stanford", Season: "2029", View: logic.ViewClasses},
		},
		{
			name:       "Invalid grouping",
			target:     "/api/v1/rosters/stanford/2027/star-elite?by=height",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown university",
			target:     "/api/v1/rosters/oregon/2027/pipeline",
			err:        fmt.Errorf("load: %w", workbook.ErrUnknownUniversity),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Missing sheet",
			target:     "/api/v1/rosters/stanford/2031/pipeline",
			err:        workbook.ErrSheetNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Bad workbook value",
			target:     "/api/v1/rosters/stanford/2027/pipeline",
			err:        workbook.ErrInvalidValue,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "Unexpected failure",
			target:     "/api/v1/rosters/stanford/2027/position-groups",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Unknown view",
			target:     "/api/v1/rosters/stanford/2027/heatmap",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq logic.TableRequest
			svc := &MockRosterService{
				TableFunc: func(ctx context.Context, req logic.TableRequest) (*models.CountTable, error) {
					gotReq = req
					if tt.err != nil {
						return nil, tt.err
					}
					return &models.CountTable{
						Keys: []string{"position", "dev_trait"},
						Rows: []models.CountRow{{Group: "QB", Values: []string{"star"}, Ranks: []int{2}, Count: 1}},
					}, nil
				},
			}

			rr := serve(t, newTestHandler(svc, nil), tt.target)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if gotReq != tt.wantReq {
				t.Errorf("request = %+v, want %+v", gotReq, tt.wantReq)
			}
			var table models.CountTable
			if err := json.Unmarshal(rr.Body.Bytes(), &table); err != nil {
				t.Fatal(err)
			}
			if table.Total() != 1 {
				t.Errorf("Total() = %d, want 1", table.Total())
			}
		})
	}
}

func TestGetDraftCandidates(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantMin    int
	}{
		{"Default threshold", "", http.StatusOK, logic.DefaultDraftOverall},
		{"Explicit threshold", "?min_overall=90", http.StatusOK, 90},
		{"Below range", "?min_overall=70", http.StatusBadRequest, 0},
		{"Not a number", "?min_overall=high", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotMin := 0
			svc := &MockRosterService{
				DraftCandidatesFunc: func(ctx context.Context, university, season string, minOverall int) ([]models.DraftCandidate, error) {
					gotMin = minOverall
					return []models.DraftCandidate{{Name: "Jay Hart", Class: models.Junior, OverallStart: 91}}, nil
				},
			}
			rr := serve(t, newTestHandler(svc, nil), "/api/v1/rosters/stanford/2027/draft"+tt.query)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if gotMin != tt.wantMin {
				t.Errorf("minOverall = %d, want %d", gotMin, tt.wantMin)
			}
		})
	}
}

func TestGetYoungPlayerQuality(t *testing.T) {
	avg := 72.5
	svc := &MockRosterService{
		YoungPlayerQualityFunc: func(ctx context.Context, university, season string) ([]models.GroupQuality, error) {
			return []models.GroupQuality{{Group: "QB", AvgOverallStart: &avg, Count: 2}}, nil
		},
	}
	rr := serve(t, newTestHandler(svc, nil), "/api/v1/rosters/stanford/2027/young-quality")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got []models.GroupQuality
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].AvgOverallStart == nil || *got[0].AvgOverallStart != 72.5 {
		t.Errorf("quality = %+v", got)
	}
}

func TestGetArchetypes(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantSide   models.Side
		wantGroup  string
	}{
		{"Defensive backs", "?side=def&secondary_group=DB", http.StatusOK, models.Defense, "DB"},
		{"Offense", "?side=OFF", http.StatusOK, models.Offense, ""},
		{"Missing side", "", http.StatusBadRequest, "", ""},
		{"Bad side", "?side=both", http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSide models.Side
			var gotGroup string
			svc := &MockRosterService{
				ArchetypesFunc: func(ctx context.Context, university, season string, side models.Side, secondaryGroup string) ([]models.ArchetypeCount, error) {
					gotSide, gotGroup = side, secondaryGroup
					return nil, nil
				},
			}
			rr := serve(t, newTestHandler(svc, nil), "/api/v1/rosters/fresno_state/2028/archetypes"+tt.query)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if gotSide != tt.wantSide || gotGroup != tt.wantGroup {
				t.Errorf("got side %q group %q, want %q %q", gotSide, gotGroup, tt.wantSide, tt.wantGroup)
			}
		})
	}
}

func TestCompareTables(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{"Two universities", "/api/v1/compare/2027/star-elite?universities=stanford,fresno_state&by=group", nil, http.StatusOK},
		{"Single university", "/api/v1/compare/2027/star-elite?universities=stanford", nil, http.StatusBadRequest},
		{"Unknown view", "/api/v1/compare/2027/heatmap?universities=stanford,fresno_state", nil, http.StatusNotFound},
		{"Invalid domain", "/api/v1/compare/2027/dev-traits?universities=stanford,fresno_state", models.ErrInvalidDomain, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockRosterService{
				CompareFunc: func(ctx context.Context, universities []string, req logic.TableRequest) (map[string]*models.CountTable, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					out := map[string]*models.CountTable{}
					for _, u := range universities {
						out[u] = &models.CountTable{Keys: []string{req.By, "dev_trait"}}
					}
					return out, nil
				},
			}
			rr := serve(t, newTestHandler(svc, nil), tt.target)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d, body %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				var got map[string]models.CountTable
				if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
					t.Fatal(err)
				}
				if len(got) != 2 || got["stanford"].Keys[0] != "group" {
					t.Errorf("compare = %+v", got)
				}
			}
		})
	}
}
