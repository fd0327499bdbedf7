package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// CatalogRepository хранит словарь навыков и алиасы секций.
// Схема создаётся миграциями storage/postgres.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// row — одна запись ключевого слова или алиаса.
type row struct {
	owner    string
	value    string
	position int
}

// Load implements catalog.Source.
func (r *CatalogRepository) Load(ctx context.Context) (catalog.Catalog, error) {
	keywords, err := r.collect(ctx, `
SELECT s.name, COALESCE(k.keyword, ''), COALESCE(k.position, 0)
FROM skills s
LEFT JOIN skill_keywords k ON k.skill = s.name`)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load skills: %w", err)
	}
	aliases, err := r.collect(ctx, `SELECT section, alias, position FROM section_aliases`)
	if err != nil {
		return catalog.Catalog{}, fmt.Errorf("load section aliases: %w", err)
	}
	return assembleCatalog(keywords, aliases)
}

func (r *CatalogRepository) collect(ctx context.Context, query string) ([]row, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(rr pgx.CollectableRow) (row, error) {
		var out row
		err := rr.Scan(&out.owner, &out.value, &out.position)
		return out, err
	})
}

// Seed replaces the stored catalog with c in a single transaction.
func (r *CatalogRepository) Seed(ctx context.Context, c catalog.Catalog) error {
	if err := c.Validate(); err != nil {
		return err
	}
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM section_aliases`)
	batch.Queue(`DELETE FROM skill_keywords`)
	batch.Queue(`DELETE FROM skills`)
	for _, name := range c.Skills.Names() {
		batch.Queue(`INSERT INTO skills (name) VALUES ($1)`, name)
		for i, kw := range uniqueValues(c.Skills[name]) {
			batch.Queue(`INSERT INTO skill_keywords (skill, keyword, position) VALUES ($1, $2, $3)`, name, kw, i)
		}
	}
	for _, section := range resume.SectionOrder {
		for i, alias := range uniqueValues(c.Sections[section]) {
			batch.Queue(`INSERT INTO section_aliases (section, alias, position) VALUES ($1, $2, $3)`, section, alias, i)
		}
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	return tx.Commit(ctx)
}

// assembleCatalog restores keyword and alias order from the position column.
// Skills without keywords are rejected by validation.
func assembleCatalog(keywords, aliases []row) (catalog.Catalog, error) {
	c := catalog.Catalog{
		Skills:   group(keywords),
		Sections: resume.AliasTable(group(aliases)),
	}
	if err := c.Validate(); err != nil {
		return catalog.Catalog{}, err
	}
	return c, nil
}

func group(rows []row) nlp.Dictionary {
	sorted := append([]row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].owner != sorted[j].owner {
			return sorted[i].owner < sorted[j].owner
		}
		return sorted[i].position < sorted[j].position
	})
	out := make(nlp.Dictionary)
	for _, r := range sorted {
		if _, ok := out[r.owner]; !ok {
			out[r.owner] = []string{}
		}
		if r.value != "" {
			out[r.owner] = append(out[r.owner], r.value)
		}
	}
	return out
}

// uniqueValues drops repeated entries; the primary keys forbid duplicates.
func uniqueValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
