package catalog

import (
	"github.com/artem13815/resume-analyzer/pkg/nlp"
	"github.com/artem13815/resume-analyzer/pkg/resume"
)

// Skill names referenced by the suggestion rules.
const (
	SkillCommunication  = "Communication Skills"
	SkillProblemSolving = "Problem Solving"
	SkillVersionControl = "Version Control / Git"
)

func defaultSkills() nlp.Dictionary {
	return nlp.Dictionary{
		"Python":                      {"python"},
		"Java":                        {"java"},
		"C++":                         {"c++", "cpp", "c ++"},
		"JavaScript":                  {"javascript", "js"},
		"HTML/CSS":                    {"html", "css", "html5", "css3"},
		"SQL":                         {"sql", "mysql", "postgresql", "oracle database", "sqlite"},
		"Data Structures":             {"data structures", "linked list", "stack", "queue", "tree", "graph"},
		"Algorithms":                  {"algorithm", "time complexity", "sorting", "searching"},
		"Object Oriented Programming": {"oop", "object oriented", "object-oriented", "inheritance", "polymorphism"},
		"Machine Learning":            {"machine learning", "ml", "supervised learning", "unsupervised learning"},
		"Deep Learning":               {"deep learning", "neural network", "cnn", "rnn"},
		"Data Analysis":               {"data analysis", "pandas", "numpy", "data cleaning"},
		SkillVersionControl:           {"git", "github", "gitlab", "bitbucket"},
		"Operating Systems":           {"operating system", "os", "process management", "deadlock"},
		SkillCommunication:            {"communication skills", "presentation", "teamwork", "collaboration"},
		SkillProblemSolving:           {"problem solving", "analytical skills"},
	}
}

func defaultSections() resume.AliasTable {
	return resume.AliasTable{
		resume.SectionSummary:        {"summary", "professional summary", "profile", "about me"},
		resume.SectionObjective:      {"objective", "career objective", "career summary"},
		resume.SectionEducation:      {"education", "academic background", "educational background", "academics", "qualifications"},
		resume.SectionExperience:     {"experience", "work experience", "professional experience", "employment history", "work history", "internship experience"},
		resume.SectionProjects:       {"projects", "academic projects", "personal projects", "major projects", "minor projects"},
		resume.SectionSkills:         {"skills", "technical skills", "key skills", "core competencies"},
		resume.SectionCertifications: {"certifications", "certification", "licenses", "courses", "relevant courses"},
		resume.SectionAchievements:   {"achievements", "accomplishments", "awards", "honors"},
	}
}

// Default returns a fresh copy of the built-in catalog.
func Default() Catalog {
	return Catalog{Skills: defaultSkills(), Sections: defaultSections()}
}
