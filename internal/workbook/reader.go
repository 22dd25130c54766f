// Package workbook reads and writes roster workbooks. A workbook holds one
// sheet per season, named by the season year, with a header row naming the
// roster columns.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

var (
	ErrSheetNotFound = errors.New("season sheet not found")
	ErrMissingColumn = errors.New("missing roster column")
	ErrInvalidValue  = errors.New("invalid roster value")
)

// columnAliases folds header spellings used by older roster exports.
var columnAliases = map[string]string{
	"redshirt":  "red_shirt",
	"overall":   "overall_start",
	"side":      "team",
	"dev":       "dev_trait",
	"pos":       "position",
	"player":    "name",
	"secondary": "secondary_group",
}

var requiredColumns = []string{"class", "position", "group", "team"}

// Open parses the season sheet of the workbook at path.
func Open(path, university, season string) (*models.Snapshot, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return readSheet(f, university, season)
}

// Read parses the season sheet of a workbook streamed from r.
func Read(r io.Reader, university, season string) (*models.Snapshot, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	defer f.Close()
	return readSheet(f, university, season)
}

func readSheet(f *excelize.File, university, season string) (*models.Snapshot, error) {
	if idx, err := f.GetSheetIndex(season); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q (sheets: %s)", ErrSheetNotFound, season, strings.Join(f.GetSheetList(), ", "))
	}
	rows, err := f.GetRows(season)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", season, err)
	}
	players, err := ParseRows(rows)
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", season, err)
	}
	return models.NewSnapshot(university, season, players), nil
}

// ParseRows converts a header row plus data rows into roster rows. Blank
// rows are skipped.
func ParseRows(rows [][]string) ([]models.Player, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty sheet", ErrMissingColumn)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(h))
		if alias, ok := columnAliases[name]; ok {
			name = alias
		}
		if _, dup := cols[name]; !dup && name != "" {
			cols[name] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}

	players := make([]models.Player, 0, len(rows)-1)
	for n, row := range rows[1:] {
		if blank(row) {
			continue
		}
		p, err := parsePlayer(cols, row)
		if err != nil {
			// Row 1 is the header.
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		players = append(players, p)
	}
	return players, nil
}

func parsePlayer(cols map[string]int, row []string) (models.Player, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	p := models.Player{
		Name:           get("name"),
		Class:          models.Class(strings.ToUpper(get("class"))),
		Position:       get("position"),
		Group:          get("group"),
		SecondaryGroup: get("secondary_group"),
		Side:           models.Side(strings.ToUpper(get("team"))),
		Archetype:      get("archetype"),
		DevTrait:       models.DevTrait(strings.ToLower(nullable(get("dev_trait")))),
	}
	if p.Name == "" {
		p.Name = strings.TrimSpace(get("first_name") + " " + get("last_name"))
	}

	if !models.ClassDomain.Contains(string(p.Class)) {
		return p, fmt.Errorf("%w: class %q", ErrInvalidValue, p.Class)
	}
	if !models.SideDomain.Contains(string(p.Side)) {
		return p, fmt.Errorf("%w: team %q", ErrInvalidValue, p.Side)
	}
	if p.DevTrait != "" && !models.DevTraitDomain.Contains(string(p.DevTrait)) {
		return p, fmt.Errorf("%w: dev_trait %q", ErrInvalidValue, p.DevTrait)
	}

	var err error
	if p.RedShirt, err = parseBool(get("red_shirt")); err != nil {
		return p, err
	}
	if p.OverallStart, err = parseOverall(get("overall_start")); err != nil {
		return p, err
	}
	if p.OverallEnd, err = parseOverall(get("overall_end")); err != nil {
		return p, err
	}
	return p, nil
}

// nullable maps spreadsheet missing-value markers to "".
func nullable(s string) string {
	switch strings.ToUpper(s) {
	case "#N/A", "N/A", "NA", "NULL", "NONE", "-":
		return ""
	}
	return s
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(nullable(s)) {
	case "", "false", "f", "no", "n", "0":
		return false, nil
	case "true", "t", "yes", "y", "1":
		return true, nil
	}
	return false, fmt.Errorf("%w: red_shirt %q", ErrInvalidValue, s)
}

func parseOverall(s string) (*int, error) {
	s = nullable(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Some exports store ratings as floats, e.g. "87.0".
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return nil, fmt.Errorf("%w: overall %q", ErrInvalidValue, s)
		}
		n = int(f)
	}
	if n < 0 || n > 99 {
		return nil, fmt.Errorf("%w: overall %d outside 0..99", ErrInvalidValue, n)
	}
	return &n, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
