package analysis

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Категории рекомендаций в порядке показа.
const (
	CategoryTechnical = "Technical Skill Gaps"
	CategorySoft      = "Soft Skills & Professional Traits"
	CategoryContent   = "Resume Content & Structure"
	CategoryATS       = "ATS Optimization"
)

// CategoryOrder is the display order of suggestion categories.
var CategoryOrder = []string{CategoryTechnical, CategorySoft, CategoryContent, CategoryATS}

// Result — итог анализа одного резюме.
type Result struct {
	Score                  float64           `json:"score"`
	ResumeSkills           []string          `json:"resumeSkills"`
	RequiredSkills         []string          `json:"requiredSkills"`
	RequiredSource         string            `json:"requiredSource"`
	MatchedSkills          []string          `json:"matchedSkills"`
	MissingSkills          []string          `json:"missingSkills"`
	Suggestions            []string          `json:"suggestions"`
	CategorizedSuggestions Categorized       `json:"categorizedSuggestions"`
	Sections               map[string]string `json:"sections"`
	SectionOrder           []string          `json:"sectionOrder"`
}

// Categorized maps every category to its suggestions; all four keys are always present.
type Categorized map[string][]string

// MarshalJSON keeps CategoryOrder in the encoded object.
func (c Categorized) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	written := 0
	write := func(key string, items []string) error {
		if items == nil {
			items = []string{}
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(items)
		if err != nil {
			return err
		}
		if written > 0 {
			buf.WriteByte(',')
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		written++
		return nil
	}
	for _, key := range CategoryOrder {
		if items, ok := c[key]; ok {
			if err := write(key, items); err != nil {
				return nil, err
			}
		}
	}
	// посторонние ключи идут следом по алфавиту
	var extra []string
	for key := range c {
		if !isCategory(key) {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		if err := write(key, c[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func isCategory(key string) bool {
	for _, c := range CategoryOrder {
		if c == key {
			return true
		}
	}
	return false
}
