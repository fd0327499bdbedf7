package analysis

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(catalog.Default(), nlp.MatchSubstring)
}

func TestAnalyzeWithJobDescription(t *testing.T) {
	res := newAnalyzer().Analyze(
		"Skilled in Python and SQL. Built projects using Git.",
		"Looking for Python, Java developer",
	)

	assert.Equal(t, []string{"Java", "Python"}, res.RequiredSkills)
	assert.Equal(t, "jobDescription", res.RequiredSource)
	assert.Equal(t, []string{"Python", "SQL", "Version Control / Git"}, res.ResumeSkills)
	assert.Equal(t, []string{"Python"}, res.MatchedSkills)
	assert.Equal(t, []string{"Java"}, res.MissingSkills)
	assert.Equal(t, 50.0, res.Score)

	assert.Equal(t, []string{
		"You are missing important technical skills required for this role: Java. Add these in your Projects, Experience, or Skills section.",
	}, res.CategorizedSuggestions[CategoryTechnical])
	assert.Equal(t, []string{msgCommunication, msgProblemSolving}, res.CategorizedSuggestions[CategorySoft])
	assert.Equal(t, []string{msgShortResume, msgAddProjects}, res.CategorizedSuggestions[CategoryContent])
	assert.Equal(t, []string{msgExactKeywords}, res.CategorizedSuggestions[CategoryATS])

	assert.Equal(t, []string{resume.SectionOther}, res.SectionOrder)
	assert.Equal(t, "Skilled in Python and SQL. Built projects using Git.", res.Sections[resume.SectionOther])
}

func TestAnalyzeEmptyJobDescriptionUsesDictionary(t *testing.T) {
	res := newAnalyzer().Analyze("javascript", "")

	assert.Len(t, res.RequiredSkills, 16)
	assert.Equal(t, "dictionary", res.RequiredSource)
	// "javascript" содержит и "java"
	assert.Equal(t, []string{"Java", "JavaScript"}, res.MatchedSkills)
	assert.Equal(t, 12.5, res.Score)
	assert.Len(t, res.MissingSkills, 14)

	single := newAnalyzer().Analyze("Node js developer", "")
	assert.Equal(t, []string{"JavaScript"}, single.MatchedSkills)
	assert.Equal(t, 6.25, single.Score)
}

func TestAnalyzeJobDescriptionWithoutKnownSkills(t *testing.T) {
	res := newAnalyzer().Analyze("python", "We need a friendly barista")
	assert.Len(t, res.RequiredSkills, 16)
	assert.Equal(t, "dictionary", res.RequiredSource)
}

func TestAnalyzeEmptyResume(t *testing.T) {
	res := newAnalyzer().Analyze("", "")

	assert.Equal(t, 0.0, res.Score)
	require.NotNil(t, res.ResumeSkills)
	require.NotNil(t, res.MatchedSkills)
	require.NotNil(t, res.SectionOrder)
	assert.Empty(t, res.ResumeSkills)
	assert.Empty(t, res.MatchedSkills)
	assert.Len(t, res.MissingSkills, 16)
	assert.Empty(t, res.Sections)
	assert.Equal(t, []string{msgShortResume, msgAddProjects}, res.CategorizedSuggestions[CategoryContent])
	assert.Equal(t, []string{msgMentionGit, msgExactKeywords}, res.CategorizedSuggestions[CategoryATS])
}

func TestAnalyzeLongCompleteResume(t *testing.T) {
	text := "Projects\n" + strings.Repeat("built compiler with teamwork and problem solving on git\n", 30)
	res := newAnalyzer().Analyze(text, "")

	assert.Empty(t, res.CategorizedSuggestions[CategorySoft])
	assert.Empty(t, res.CategorizedSuggestions[CategoryContent])
	assert.Equal(t, []string{msgExactKeywords}, res.CategorizedSuggestions[CategoryATS])
	assert.Contains(t, res.SectionOrder, resume.SectionProjects)
	assert.NotEmpty(t, res.CategorizedSuggestions[CategoryTechnical])
}

func TestAnalyzeInvariants(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"Skills\nPython, C++, SQL, Git, pandas", "Need python and deep learning"},
		{"HTML CSS javascript react os internals", "Frontend: javascript, css"},
		{"Experience\nTeamwork, presentation, analytical skills", "nothing known here"},
	}
	a := newAnalyzer()
	for _, in := range inputs {
		res := a.Analyze(in[0], in[1])

		union := nlp.NewSkillSet(res.MatchedSkills...)
		for _, s := range res.MissingSkills {
			assert.False(t, union.Has(s), "matched and missing overlap on %s", s)
			union[s] = struct{}{}
		}
		assert.Equal(t, res.RequiredSkills, union.Sorted())

		assert.GreaterOrEqual(t, res.Score, 0.0)
		assert.LessOrEqual(t, res.Score, 100.0)
		assert.Equal(t, len(res.MatchedSkills) == 0, res.Score == 0)

		for _, key := range CategoryOrder {
			assert.Contains(t, res.CategorizedSuggestions, key)
		}
		assert.Equal(t, res.CategorizedSuggestions.Flatten(), res.Suggestions)

		assert.Equal(t, res, a.Analyze(in[0], in[1]), "analysis must be deterministic")
	}
}

func TestAnalyzeConcurrent(t *testing.T) {
	a := newAnalyzer()
	want := a.Analyze("Python and SQL\nProjects\nGit", "python")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, a.Analyze("Python and SQL\nProjects\nGit", "python"))
		}()
	}
	wg.Wait()
}

func TestAnalyzeWordMode(t *testing.T) {
	a := NewAnalyzer(catalog.Default(), nlp.MatchWord)
	res := a.Analyze("javascript", "")
	assert.Equal(t, []string{"JavaScript"}, res.MatchedSkills)
	assert.Equal(t, 6.25, res.Score)
}

func TestScore(t *testing.T) {
	cases := []struct {
		matched, required int
		want              float64
	}{
		{0, 0, 0},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 8, 12.5},
		{1, 16, 6.25},
		{7, 6, 100},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Score(tc.matched, tc.required), "%d/%d", tc.matched, tc.required)
	}
}

func TestResultJSON(t *testing.T) {
	res := newAnalyzer().Analyze("", "")
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{
		"score", "resumeSkills", "requiredSkills", "matchedSkills", "missingSkills",
		"suggestions", "categorizedSuggestions", "sections", "sectionOrder",
	} {
		assert.Contains(t, decoded, key)
	}
	assert.JSONEq(t, `[]`, string(decoded["matchedSkills"]))
	assert.JSONEq(t, `{}`, string(decoded["sections"]))

	// порядок категорий сохраняется
	cats := string(decoded["categorizedSuggestions"])
	last := -1
	for _, key := range CategoryOrder {
		encoded, err := json.Marshal(key)
		require.NoError(t, err)
		idx := strings.Index(cats, string(encoded))
		require.GreaterOrEqual(t, idx, 0, key)
		assert.Greater(t, idx, last)
		last = idx
	}
	assert.Contains(t, cats, `"Technical Skill Gaps":[`)
}
