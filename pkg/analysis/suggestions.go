package analysis

import (
	"strings"

	"github.com/artem13815/resume-analyzer/pkg/catalog"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// ShortResumeWords — резюме короче этого числа слов считается коротким.
const ShortResumeWords = 200

const (
	msgMissingSkillsPrefix = "You are missing important technical skills required for this role: "
	msgMissingSkillsSuffix = ". Add these in your Projects, Experience, or Skills section."
	msgCommunication       = "Add communication or teamwork examples in Experience or Projects."
	msgProblemSolving      = "Highlight strong problem-solving achievements or coding challenges solved."
	msgShortResume         = "Your resume looks short. Add more details to projects, responsibilities, and measurable achievements."
	msgAddProjects         = "Add at least 2–3 technical projects (with technologies and outcomes) to strengthen your resume."
	msgMentionGit          = "Mention Git/GitHub in skills and list repositories to improve ATS visibility."
	msgExactKeywords       = "Include exact keywords from the job description (skills, tools, role titles) to improve ATS matching."
)

// suggestionInput — всё, на чём основаны рекомендации.
type suggestionInput struct {
	resumeSkills nlp.SkillSet
	missing      []string // sorted
	wordCount    int
	sections     resume.Sections
}

// buildSuggestions evaluates the four categories independently.
func buildSuggestions(in suggestionInput) Categorized {
	tech := []string{}
	if len(in.missing) > 0 {
		tech = append(tech, msgMissingSkillsPrefix+strings.Join(in.missing, ", ")+msgMissingSkillsSuffix)
	}

	soft := []string{}
	if !in.resumeSkills.Has(catalog.SkillCommunication) {
		soft = append(soft, msgCommunication)
	}
	if !in.resumeSkills.Has(catalog.SkillProblemSolving) {
		soft = append(soft, msgProblemSolving)
	}

	content := []string{}
	if in.wordCount < ShortResumeWords {
		content = append(content, msgShortResume)
	}
	if !in.sections.Has(resume.SectionProjects) {
		content = append(content, msgAddProjects)
	}

	ats := []string{}
	if !in.resumeSkills.Has(catalog.SkillVersionControl) {
		ats = append(ats, msgMentionGit)
	}
	ats = append(ats, msgExactKeywords)

	return Categorized{
		CategoryTechnical: tech,
		CategorySoft:      soft,
		CategoryContent:   content,
		CategoryATS:       ats,
	}
}

// Flatten concatenates suggestions in CategoryOrder.
func (c Categorized) Flatten() []string {
	out := []string{}
	for _, key := range CategoryOrder {
		out = append(out, c[key]...)
	}
	return out
}
