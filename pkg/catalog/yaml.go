package catalog

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// fileDocument — формат YAML-файла каталога.
type fileDocument struct {
	Skills   map[string][]string `yaml:"skills"`
	Sections map[string][]string `yaml:"sections"`
}

// Parse decodes and validates a YAML catalog. A document without a sections
// block keeps the built-in heading aliases.
func Parse(data []byte) (Catalog, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("%w: decode yaml: %v", ErrInvalid, err)
	}
	c := Catalog{Skills: doc.Skills, Sections: doc.Sections}
	if c.Sections == nil {
		c.Sections = defaultSections()
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// FileSource loads the catalog from a YAML file.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) (Catalog, error) {
	if err := ctx.Err(); err != nil {
		return Catalog{}, err
	}
	return LoadFile(s.Path)
}

// Marshal renders a catalog in the same YAML layout Parse accepts.
func Marshal(c Catalog) ([]byte, error) {
	return yaml.Marshal(fileDocument{Skills: c.Skills, Sections: c.Sections})
}
