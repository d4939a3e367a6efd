package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileTable is the YAML shape of a user-supplied taxonomy override.
type fileTable struct {
	Categories []Category `yaml:"categories"`
}

// LoadFile reads a taxonomy override from a YAML file. A missing file is
// not an error: the built-in table is returned so a fresh install works
// without any setup.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading taxonomy file: %w", err)
	}

	var ft fileTable
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	t := &Table{categories: ft.Categories}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("invalid taxonomy in %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) validate() error {
	if len(t.categories) == 0 {
		return fmt.Errorf("no categories defined")
	}
	seen := make(map[string]struct{}, len(t.categories))
	for _, c := range t.categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("category with empty name")
		}
		if name == Other {
			return fmt.Errorf("category name %q is reserved", Other)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate category %q", name)
		}
		seen[name] = struct{}{}
		if c.Tracked && c.Target <= 0 {
			return fmt.Errorf("category %q: tracked categories need a positive target", name)
		}
	}
	return nil
}
