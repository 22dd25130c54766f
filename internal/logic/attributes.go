package logic

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// ErrUnknownAttribute is returned when a grouping or category attribute is
// not part of the roster row schema.
var ErrUnknownAttribute = errors.New("unknown attribute")

// accessor extracts an attribute value. ok is false when the value is null.
type accessor func(p *models.Player) (value string, ok bool)

func present(s string) (string, bool) { return s, s != "" }

// rowAttributes maps workbook column names to row accessors.
var rowAttributes = map[string]accessor{
	"position":        func(p *models.Player) (string, bool) { return present(p.Position) },
	"group":           func(p *models.Player) (string, bool) { return present(p.Group) },
	"secondary_group": func(p *models.Player) (string, bool) { return present(p.SecondaryGroup) },
	"team":            func(p *models.Player) (string, bool) { return present(string(p.Side)) },
	"archetype":       func(p *models.Player) (string, bool) { return present(p.Archetype) },
	"class":           func(p *models.Player) (string, bool) { return present(string(p.Class)) },
	"dev_trait":       func(p *models.Player) (string, bool) { return present(string(p.DevTrait)) },
	"red_shirt":       func(p *models.Player) (string, bool) { return strconv.FormatBool(p.RedShirt), true },
}

// attributeAliases accepts spellings that drifted between roster versions.
var attributeAliases = map[string]string{
	"redshirt": "red_shirt",
	"side":     "team",
}

func lookupAttribute(name string) (accessor, string, error) {
	if canonical, ok := attributeAliases[name]; ok {
		name = canonical
	}
	fn, ok := rowAttributes[name]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
	}
	return fn, name, nil
}

// Attributes lists the attribute names usable as grouping or category keys.
func Attributes() []string {
	names := make([]string, 0, len(rowAttributes))
	for name := range rowAttributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
