package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cfbdynasty/roster-stats/internal/logic"
	"github.com/cfbdynasty/roster-stats/internal/models"
)

type tableQuery struct {
	By string `validate:"omitempty,oneof=position group secondary_group archetype class team"`
}

type draftQuery struct {
	MinOverall int `validate:"min=80,max=99"`
}

type archetypeQuery struct {
	Side           string `validate:"required,oneof=OFF DEF ST"`
	SecondaryGroup string `validate:"omitempty,alphanum,max=16"`
}

type compareQuery struct {
	Universities []string `validate:"min=2,max=8,dive,required"`
	By           string   `validate:"omitempty,oneof=position group secondary_group archetype class team"`
}

// ListUniversities returns the registry
// @Summary List universities
// @Tags Rosters
// @Produce json
// @Success 200 {array} models.University
// @Router /universities [get]
func (h *Handler) ListUniversities(w http.ResponseWriter, r *http.Request) {
	keys := h.registry.Keys()
	out := make([]models.University, 0, len(keys))
	for _, k := range keys {
		u, _ := h.registry.University(k)
		out = append(out, u)
	}
	h.jsonResponse(w, http.StatusOK, out)
}

// GetTable returns a dense count table for one roster view
// @Summary Dense roster count table
// @Tags Rosters
// @Produce json
// @Param university path string true "University key"
// @Param season path string true "Season sheet"
// @Param by query string false "Grouping attribute" default(position)
// @Success 200 {object} models.CountTable
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /rosters/{university}/{season}/{view} [get]
func (h *Handler) GetTable(view logic.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := tableQuery{By: r.URL.Query().Get("by")}
		if err := h.validator.Struct(q); err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid grouping attribute")
			return
		}

		table, err := h.roster.Table(r.Context(), logic.TableRequest{
			University: chi.URLParam(r, "university"),
			Season:     chi.URLParam(r, "season"),
			View:       view,
			By:         q.By,
		})
		if err != nil {
			h.failure(w, r, "Failed to build roster table", err)
			return
		}
		h.jsonResponse(w, http.StatusOK, table)
	}
}

// GetDraftCandidates lists draft eligible non-seniors
// @Summary Possible non-senior drafted players
// @Tags Rosters
// @Produce json
// @Param min_overall query int false "Minimum starting overall" default(85)
// @Success 200 {array} models.DraftCandidate
// @Router /rosters/{university}/{season}/draft [get]
func (h *Handler) GetDraftCandidates(w http.ResponseWriter, r *http.Request) {
	q := draftQuery{MinOverall: logic.DefaultDraftOverall}
	if v := r.URL.Query().Get("min_overall"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "min_overall must be an integer")
			return
		}
		q.MinOverall = n
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "min_overall must be between 80 and 99")
		return
	}

	candidates, err := h.roster.DraftCandidates(r.Context(), chi.URLParam(r, "university"), chi.URLParam(r, "season"), q.MinOverall)
	if err != nil {
		h.failure(w, r, "Failed to list draft candidates", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, candidates)
}

// GetYoungPlayerQuality averages freshman and sophomore ratings per group
// @Summary Young player quality
// @Tags Rosters
// @Produce json
// @Success 200 {array} models.GroupQuality
// @Router /rosters/{university}/{season}/young-quality [get]
func (h *Handler) GetYoungPlayerQuality(w http.ResponseWriter, r *http.Request) {
	quality, err := h.roster.YoungPlayerQuality(r.Context(), chi.URLParam(r, "university"), chi.URLParam(r, "season"))
	if err != nil {
		h.failure(w, r, "Failed to compute young player quality", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, quality)
}

// GetArchetypes counts archetypes per position for a side of the ball
// @Summary Archetypes per position
// @Tags Rosters
// @Produce json
// @Param side query string true "OFF, DEF or ST"
// @Param secondary_group query string false "Secondary group filter, e.g. DB"
// @Success 200 {array} models.ArchetypeCount
// @Router /rosters/{university}/{season}/archetypes [get]
func (h *Handler) GetArchetypes(w http.ResponseWriter, r *http.Request) {
	q := archetypeQuery{
		Side:           strings.ToUpper(r.URL.Query().Get("side")),
		SecondaryGroup: r.URL.Query().Get("secondary_group"),
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "side must be OFF, DEF or ST")
		return
	}

	counts, err := h.roster.Archetypes(r.Context(), chi.URLParam(r, "university"), chi.URLParam(r, "season"), models.Side(q.Side), q.SecondaryGroup)
	if err != nil {
		h.failure(w, r, "Failed to count archetypes", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, counts)
}

// CompareTables builds one view for several universities
// @Summary Compare rosters
// @Tags Rosters
// @Produce json
// @Param universities query string true "Comma separated university keys"
// @Success 200 {object} map[string]models.CountTable
// @Router /compare/{season}/{view} [get]
func (h *Handler) CompareTables(w http.ResponseWriter, r *http.Request) {
	view := logic.View(chi.URLParam(r, "view"))
	if !knownView(view) {
		h.errorResponse(w, http.StatusNotFound, "Unknown view")
		return
	}

	var q compareQuery
	for _, u := range strings.Split(r.URL.Query().Get("universities"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			q.Universities = append(q.Universities, u)
		}
	}
	q.By = r.URL.Query().Get("by")
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Provide between 2 and 8 universities")
		return
	}

	tables, err := h.roster.Compare(r.Context(), q.Universities, logic.TableRequest{
		Season: chi.URLParam(r, "season"),
		View:   view,
		By:     q.By,
	})
	if err != nil {
		h.failure(w, r, "Failed to compare rosters", err)
		return
	}
	h.jsonResponse(w, http.StatusOK, tables)
}

func knownView(v logic.View) bool {
	for _, known := range logic.Views {
		if v == known {
			return true
		}
	}
	return false
}
