package vacancy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

var dict = nlp.Dictionary{
	"Python": {"python"},
	"Java":   {"java"},
	"SQL":    {"sql", "postgresql"},
}

func TestRequiredSkills(t *testing.T) {
	cases := []struct {
		name   string
		jd     string
		mode   nlp.MatchMode
		want   []string
		source Source
	}{
		{"empty", "", nlp.MatchSubstring, []string{"Java", "Python", "SQL"}, SourceDictionary},
		{"whitespace", " \n\t", nlp.MatchSubstring, []string{"Java", "Python", "SQL"}, SourceDictionary},
		{"no known skills", "Looking for a barista", nlp.MatchSubstring, []string{"Java", "Python", "SQL"}, SourceDictionary},
		{"from jd", "Looking for Python, Java developer", nlp.MatchSubstring, []string{"Java", "Python"}, SourceJobDescription},
		{"substring", "JavaScript + PostgreSQL", nlp.MatchSubstring, []string{"Java", "SQL"}, SourceJobDescription},
		{"word mode", "JavaScript + PostgreSQL", nlp.MatchWord, []string{"SQL"}, SourceJobDescription},
		{"word mode fallback", "JavaScript", nlp.MatchWord, []string{"Java", "Python", "SQL"}, SourceDictionary},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RequiredSkills(dict, tc.jd, tc.mode)
			assert.Equal(t, tc.want, got.Skills.Sorted())
			assert.Equal(t, tc.source, got.Source)
		})
	}
}
