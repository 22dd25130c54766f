package workbook

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// ErrOutputExists is returned instead of overwriting an existing season sheet.
var ErrOutputExists = errors.New("season sheet already exists")

// Header is the column order written for each season sheet.
var Header = []string{
	"name", "class", "red_shirt", "position", "group", "secondary_group",
	"team", "archetype", "dev_trait", "overall_start", "overall_end",
}

// WriteSheet adds snap as a new sheet named after its season. The workbook is
// created when path does not exist.
func WriteSheet(path string, snap *models.Snapshot) error {
	f, err := openOrCreate(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(snap.Season); err == nil && idx >= 0 {
		return fmt.Errorf("%w: %q in %s", ErrOutputExists, snap.Season, path)
	}
	idx, err := f.NewSheet(snap.Season)
	if err != nil {
		return fmt.Errorf("create sheet %q: %w", snap.Season, err)
	}

	if err := writeRow(f, snap.Season, 1, toCells(Header)); err != nil {
		return err
	}
	for i, p := range snap.Players() {
		if err := writeRow(f, snap.Season, i+2, playerCells(p)); err != nil {
			return err
		}
	}

	// New workbooks start with a default sheet that carries no roster.
	if def := "Sheet1"; def != snap.Season {
		if i, err := f.GetSheetIndex(def); err == nil && i >= 0 {
			if rows, _ := f.GetRows(def); len(rows) == 0 {
				_ = f.DeleteSheet(def)
			}
		}
	}
	if idx, err = f.GetSheetIndex(snap.Season); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func openOrCreate(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return excelize.NewFile(), nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d: %w", row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

func playerCells(p models.Player) []interface{} {
	overall := func(v *int) interface{} {
		if v == nil {
			return ""
		}
		return *v
	}
	return []interface{}{
		p.Name,
		string(p.Class),
		strconv.FormatBool(p.RedShirt),
		p.Position,
		p.Group,
		p.SecondaryGroup,
		string(p.Side),
		p.Archetype,
		string(p.DevTrait),
		overall(p.OverallStart),
		overall(p.OverallEnd),
	}
}
