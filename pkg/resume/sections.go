package resume

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

// Canonical section names.
const (
	SectionSummary        = "Summary"
	SectionObjective      = "Objective"
	SectionEducation      = "Education"
	SectionExperience     = "Experience"
	SectionProjects       = "Projects"
	SectionSkills         = "Skills"
	SectionCertifications = "Certifications"
	SectionAchievements   = "Achievements"
	SectionOther          = "Other"
)

// SectionOrder is the display order; it is also the precedence used when two
// sections share a heading alias.
var SectionOrder = []string{
	SectionSummary,
	SectionObjective,
	SectionEducation,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionCertifications,
	SectionAchievements,
	SectionOther,
}

// IsCanonicalSection reports whether name is one of SectionOrder.
func IsCanonicalSection(name string) bool {
	for _, s := range SectionOrder {
		if s == name {
			return true
		}
	}
	return false
}

// AliasTable maps a canonical section name to heading variants.
type AliasTable map[string][]string

// Sections is the display grouping of a resume.
type Sections struct {
	// Bodies holds the trimmed body text per section; empty sections are absent.
	Bodies map[string]string
	// Order lists the keys of Bodies in SectionOrder.
	Order []string
}

// Has reports whether the section was found with non-empty body.
func (s Sections) Has(name string) bool {
	_, ok := s.Bodies[name]
	return ok
}

// Classifier splits resume text into sections by heading lines.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	headings map[string]string // lowercased alias -> canonical section
}

// NewClassifier indexes the alias table. Names outside SectionOrder are ignored.
func NewClassifier(aliases AliasTable) *Classifier {
	headings := make(map[string]string)
	for _, section := range SectionOrder {
		for _, alias := range aliases[section] {
			key := nlp.Lower(alias)
			if _, taken := headings[key]; taken {
				continue
			}
			headings[key] = section
		}
	}
	return &Classifier{headings: headings}
}

// DetectHeading returns the canonical section a line announces, if any.
// Trailing ':' and '-' are ignored, so "Work Experience:" and "SKILLS --" both match.
func (c *Classifier) DetectHeading(line string) (string, bool) {
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return "", false
	}
	cleaned := strings.TrimRight(stripped, ":-")
	cleaned = nlp.Lower(strings.TrimSpace(cleaned))
	section, ok := c.headings[cleaned]
	return section, ok
}

// Split groups lines under the most recent heading. Lines before the first
// heading land in Other; heading lines and blank lines are not body text.
func (c *Classifier) Split(text string) Sections {
	collected := make(map[string][]string)
	current := SectionOther

	for _, line := range splitLines(text) {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if strings.TrimSpace(line) == "" {
			continue
		}
		if section, ok := c.DetectHeading(line); ok {
			current = section
			continue
		}
		collected[current] = append(collected[current], line)
	}

	out := Sections{Bodies: make(map[string]string), Order: []string{}}
	for _, section := range SectionOrder {
		body := strings.TrimSpace(strings.Join(collected[section], "\n"))
		if body == "" {
			continue
		}
		out.Bodies[section] = body
		out.Order = append(out.Order, section)
	}
	return out
}

// splitLines breaks text on every line boundary a document may carry: \n, \r\n,
// \r, vertical tab, form feed, file/group/record separators, NEL, and the
// Unicode line and paragraph separators. A trailing boundary yields no empty line.
func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, text[start:i])
		i += size
		if r == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
