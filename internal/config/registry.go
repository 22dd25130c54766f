package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cfbdynasty/roster-stats/internal/models"
)

// Registry lists the dynasty universities with roster workbooks.
type Registry struct {
	Universities []models.University `yaml:"universities"`
}

// DefaultRegistry is used when no registry file is configured.
func DefaultRegistry() *Registry {
	seasons := []string{"2027", "2028", "2029", "2030"}
	return &Registry{Universities: []models.University{
		{Key: "fresno_state", Name: "Fresno State", Seasons: seasons,
			Palette: []string{"#1e40af", "#3b82f6", "#93c5fd", "#dbeafe"}},
		{Key: "san_diego_state", Name: "San Diego State", Seasons: seasons,
			Palette: []string{"#09090b", "#52525b", "#a1a1aa", "#e4e4e7"}},
		{Key: "stanford", Name: "Stanford", Seasons: seasons,
			Palette: []string{"#991b1b", "#ef4444", "#fca5a5", "#fee2e2"}},
	}}
}

// LoadRegistry reads a YAML registry, or returns the default for an empty path.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return ParseRegistry(data)
}

// ParseRegistry decodes and validates registry YAML.
func ParseRegistry(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if len(r.Universities) == 0 {
		return nil, fmt.Errorf("registry lists no universities")
	}
	seen := make(map[string]struct{}, len(r.Universities))
	for i, u := range r.Universities {
		if u.Key == "" {
			return nil, fmt.Errorf("university %d has no key", i)
		}
		if _, dup := seen[u.Key]; dup {
			return nil, fmt.Errorf("duplicate university key %q", u.Key)
		}
		seen[u.Key] = struct{}{}
		if len(u.Palette) != 0 && len(u.Palette) != 4 {
			return nil, fmt.Errorf("university %q palette needs 4 colours, got %d", u.Key, len(u.Palette))
		}
		if u.Name == "" {
			r.Universities[i].Name = u.Key
		}
	}
	return &r, nil
}

// University looks up a registry entry by key.
func (r *Registry) University(key string) (models.University, bool) {
	for _, u := range r.Universities {
		if u.Key == key {
			return u, true
		}
	}
	return models.University{}, false
}

// Keys returns the university keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.Universities))
	for _, u := range r.Universities {
		keys = append(keys, u.Key)
	}
	sort.Strings(keys)
	return keys
}
