package vacancy

import "github.com/artem13815/resume-analyzer/pkg/nlp"

// Source говорит, откуда взят список требуемых навыков.
type Source string

const (
	// SourceJobDescription — навыки найдены в тексте вакансии.
	SourceJobDescription Source = "jobDescription"
	// SourceDictionary — вакансия пустая или без известных навыков, требуются все навыки словаря.
	SourceDictionary Source = "dictionary"
)

// Requirements — требуемые навыки вакансии.
type Requirements struct {
	Skills nlp.SkillSet
	Source Source
}
