package analysis

import (
	"math"
	"strconv"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
	"github.com/artem13815/resume-analyzer/pkg/vacancy"
)

// UseCase — анализ текста резюме относительно (необязательной) вакансии.
type UseCase interface {
	Analyze(resumeText, jobDescription string) Result
}

// Analyzer держит неизменяемый каталог и режим поиска навыков.
// Безопасен для параллельного использования.
type Analyzer struct {
	skills     nlp.Dictionary
	classifier *resume.Classifier
	mode       nlp.MatchMode
}

// NewAnalyzer builds an analyzer over a private copy of the catalog.
func NewAnalyzer(c catalog.Catalog, mode nlp.MatchMode) *Analyzer {
	c = c.Clone()
	return &Analyzer{
		skills:     c.Skills,
		classifier: resume.NewClassifier(c.Sections),
		mode:       mode,
	}
}

// Analyze never fails: empty input yields an empty skill set and a zero score.
func (a *Analyzer) Analyze(resumeText, jobDescription string) Result {
	sections := a.classifier.Split(resumeText)

	resumeSkills := nlp.ExtractSkills(a.skills, resumeText, a.mode)
	req := vacancy.RequiredSkills(a.skills, jobDescription, a.mode)

	matched := resumeSkills.Intersect(req.Skills)
	missing := req.Skills.Difference(resumeSkills)

	missingSorted := missing.Sorted()
	categorized := buildSuggestions(suggestionInput{
		resumeSkills: resumeSkills,
		missing:      missingSorted,
		wordCount:    nlp.WordCount(resumeText),
		sections:     sections,
	})

	return Result{
		Score:                  Score(len(matched), len(req.Skills)),
		ResumeSkills:           resumeSkills.Sorted(),
		RequiredSkills:         req.Skills.Sorted(),
		RequiredSource:         string(req.Source),
		MatchedSkills:          matched.Sorted(),
		MissingSkills:          missingSorted,
		Suggestions:            categorized.Flatten(),
		CategorizedSuggestions: categorized,
		Sections:               sections.Bodies,
		SectionOrder:           sections.Order,
	}
}

// Score — процент совпадения, округлённый до двух знаков и зажатый в [0, 100].
// Пустой список требований даёт 0.
func Score(matched, required int) float64 {
	if required <= 0 {
		return 0
	}
	raw := float64(matched) / float64(required) * 100
	return math.Max(0, math.Min(100, round2(raw)))
}

// round2 rounds the exact binary value to two decimals, ties to even.
func round2(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 2, 64), 64)
	if err != nil {
		return x
	}
	return v
}
