package models

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDomain is returned for empty or duplicated category domains.
var ErrInvalidDomain = errors.New("invalid domain")

// Domain is the ordered list of legal values of one categorical attribute.
// The order drives chart stacking and table sorting.
type Domain struct {
	Attribute string   `json:"attribute"`
	Values    []string `json:"values"`
}

func NewDomain(attribute string, values ...string) Domain {
	return Domain{Attribute: attribute, Values: values}
}

// Validate checks the domain is non-empty and duplicate free.
func (d Domain) Validate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%w: %q has no values", ErrInvalidDomain, d.Attribute)
	}
	seen := make(map[string]struct{}, len(d.Values))
	for _, v := range d.Values {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%w: %q repeats value %q", ErrInvalidDomain, d.Attribute, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}

// Rank returns the index of v in the domain, or -1.
func (d Domain) Rank(v string) int {
	for i, dv := range d.Values {
		if dv == v {
			return i
		}
	}
	return -1
}

// Contains reports whether v is a legal value.
func (d Domain) Contains(v string) bool { return d.Rank(v) >= 0 }

// Canonical domains. Callers pass these explicitly.
var (
	ClassDomain    = NewDomain("class", string(Freshman), string(Sophomore), string(Junior), string(Senior))
	DevTraitDomain = NewDomain("dev_trait", string(DevNormal), string(DevImpact), string(DevStar), string(DevElite))
	SideDomain     = NewDomain("team", string(Offense), string(Defense), string(SpecialTeams))
	// Red shirted players stack first.
	RedShirtDomain = NewDomain("red_shirt", strconv.FormatBool(true), strconv.FormatBool(false))
)

// StarElite are the dev traits kept by the star/elite views.
var StarElite = []string{string(DevStar), string(DevElite)}
