package vacancy

import (
	"strings"

	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

// RequiredSkills определяет навыки, которые ожидаются от кандидата.
// Непустая вакансия с известными навыками даёт их; иначе — весь словарь.
func RequiredSkills(dict nlp.Dictionary, jobDescription string, mode nlp.MatchMode) Requirements {
	if strings.TrimSpace(jobDescription) != "" {
		if found := nlp.ExtractSkills(dict, jobDescription, mode); len(found) > 0 {
			return Requirements{Skills: found, Source: SourceJobDescription}
		}
	}
	return Requirements{Skills: dict.Set(), Source: SourceDictionary}
}
