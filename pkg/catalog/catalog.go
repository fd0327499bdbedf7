// Package catalog holds the skill dictionary and section heading aliases the
// analyzer works with. A Catalog is loaded once at start and never mutated.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// ErrInvalid wraps every validation failure of a catalog.
var ErrInvalid = errors.New("invalid catalog")

// Catalog is the static reference data of an analysis run.
type Catalog struct {
	Skills   nlp.Dictionary    `json:"skills" yaml:"skills"`
	Sections resume.AliasTable `json:"sections" yaml:"sections"`
}

// Source loads a catalog from some backing store.
type Source interface {
	Load(ctx context.Context) (Catalog, error)
}

// Kind names a catalog source in configuration.
type Kind string

const (
	KindBuiltin  Kind = "builtin"
	KindFile     Kind = "file"
	KindPostgres Kind = "postgres"
)

// Validate checks that the catalog can drive an analysis.
func (c Catalog) Validate() error {
	if len(c.Skills) == 0 {
		return fmt.Errorf("%w: no skills", ErrInvalid)
	}
	for name, keywords := range c.Skills {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: empty skill name", ErrInvalid)
		}
		if len(keywords) == 0 {
			return fmt.Errorf("%w: skill %q has no keywords", ErrInvalid, name)
		}
	}
	for section, aliases := range c.Sections {
		if !resume.IsCanonicalSection(section) {
			return fmt.Errorf("%w: unknown section %q", ErrInvalid, section)
		}
		if section == resume.SectionOther && len(aliases) > 0 {
			return fmt.Errorf("%w: section %q cannot have aliases", ErrInvalid, section)
		}
	}
	return nil
}

// Clone returns a deep copy, so callers may hand out catalogs without sharing slices.
func (c Catalog) Clone() Catalog {
	out := Catalog{
		Skills:   make(nlp.Dictionary, len(c.Skills)),
		Sections: make(resume.AliasTable, len(c.Sections)),
	}
	for k, v := range c.Skills {
		out.Skills[k] = append([]string(nil), v...)
	}
	for k, v := range c.Sections {
		out.Sections[k] = append([]string(nil), v...)
	}
	return out
}

// builtinSource serves Default.
type builtinSource struct{}

// Builtin returns a Source that always yields Default().
func Builtin() Source { return builtinSource{} }

func (builtinSource) Load(context.Context) (Catalog, error) { return Default(), nil }
