package resume_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

func newClassifier() *resume.Classifier {
	return resume.NewClassifier(catalog.Default().Sections)
}

func TestDetectHeading(t *testing.T) {
	c := newClassifier()
	cases := []struct {
		line    string
		want    string
		heading bool
	}{
		{"Education", resume.SectionEducation, true},
		{"  WORK EXPERIENCE:  ", resume.SectionExperience, true},
		{"Skills --", resume.SectionSkills, true},
		{"Technical Skills:-:", resume.SectionSkills, true},
		{"About Me", resume.SectionSummary, true},
		{"Relevant Courses", resume.SectionCertifications, true},
		{"Honors", resume.SectionAchievements, true},
		{"Skills and tools", "", false},
		{"Other", "", false},
		{"", "", false},
		{"   ", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			got, ok := c.DetectHeading(tc.line)
			assert.Equal(t, tc.heading, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitBasic(t *testing.T) {
	text := "Jane Doe\njane@example.com\n\nSummary:\nBackend engineer.\n\nSKILLS\nGo, SQL\nDocker\n\nProjects -\nParser in Go\n"
	got := newClassifier().Split(text)

	assert.Equal(t, []string{resume.SectionSummary, resume.SectionProjects, resume.SectionSkills, resume.SectionOther}, got.Order)
	assert.Equal(t, "Jane Doe\njane@example.com", got.Bodies[resume.SectionOther])
	assert.Equal(t, "Backend engineer.", got.Bodies[resume.SectionSummary])
	assert.Equal(t, "Go, SQL\nDocker", got.Bodies[resume.SectionSkills])
	assert.Equal(t, "Parser in Go", got.Bodies[resume.SectionProjects])
}

func TestSplitEmptyHeadingOmitted(t *testing.T) {
	got := newClassifier().Split("Education\n\nExperience\nAcme Corp")
	assert.False(t, got.Has(resume.SectionEducation))
	assert.True(t, got.Has(resume.SectionExperience))
	assert.Equal(t, []string{resume.SectionExperience}, got.Order)
}

func TestSplitRepeatedHeadingAppends(t *testing.T) {
	got := newClassifier().Split("Skills\nGo\nEducation\nMSU\nSkills\nSQL")
	assert.Equal(t, "Go\nSQL", got.Bodies[resume.SectionSkills])
}

func TestSplitLineEndings(t *testing.T) {
	got := newClassifier().Split("Projects\r\nCompiler   \r\nskills\rGit\u2028Docker\v")
	assert.Equal(t, "Compiler", got.Bodies[resume.SectionProjects])
	assert.Equal(t, "Git\nDocker", got.Bodies[resume.SectionSkills])
}

func TestSplitKeepsIndentation(t *testing.T) {
	got := newClassifier().Split("Experience\n  - Acme\n    - built things")
	assert.Equal(t, "- Acme\n    - built things", got.Bodies[resume.SectionExperience])
}

func TestSplitEmptyText(t *testing.T) {
	got := newClassifier().Split("")
	require.NotNil(t, got.Order)
	assert.Empty(t, got.Order)
	assert.Empty(t, got.Bodies)
}

func TestSplitNoLineLost(t *testing.T) {
	text := "intro\nSummary\nfirst\nsecond\nEducation\nthird\nunrelated heading?\nfourth"
	c := newClassifier()
	got := c.Split(text)

	for _, section := range got.Order {
		assert.True(t, resume.IsCanonicalSection(section))
	}

	var body []string
	for _, section := range got.Order {
		body = append(body, strings.Split(got.Bodies[section], "\n")...)
	}
	for _, line := range strings.Split(text, "\n") {
		if _, heading := c.DetectHeading(line); heading {
			continue
		}
		assert.Contains(t, body, line)
	}
}

func TestClassifierAliasPrecedence(t *testing.T) {
	c := resume.NewClassifier(resume.AliasTable{
		resume.SectionSkills:  {"toolbox"},
		resume.SectionSummary: {"Toolbox", "intro"},
		"Hobbies":             {"hobbies"},
	})

	section, ok := c.DetectHeading("TOOLBOX")
	require.True(t, ok)
	assert.Equal(t, resume.SectionSummary, section)

	_, ok = c.DetectHeading("hobbies")
	assert.False(t, ok)
}
