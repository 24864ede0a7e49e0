package usecase

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

type CoverLetterInput struct {
	JobTitle   string
	Company    string
	Skills     []string
	Experience string
	Name       string
}

var coverLetterTmpl = template.Must(template.New("cover_letter").Parse(`Dear Hiring Manager at {{.Company}},

I am writing to express my strong interest in the {{.JobTitle}} position at {{.Company}}. With {{.Experience}} of hands-on industry experience specializing in {{.SkillsList}}, I am excited by the opportunity to contribute to your team.

In my previous roles, I have successfully built and scaled production-grade systems using {{.PrimarySkill}}, delivering measurable improvements in performance, reliability, and user experience. I am particularly drawn to {{.Company}} because of its reputation for technical excellence, fast-paced innovation culture, and the meaningful impact its products create for millions of users.

Key highlights I would bring to this role:
• Deep expertise in {{.SkillsList}}
• Track record of delivering scalable solutions in agile environments
• Strong collaboration with cross-functional teams and stakeholders
• Passion for writing clean, well-tested, maintainable code

I am confident that my background aligns strongly with what you're looking for, and I would welcome the chance to discuss how I can contribute to {{.Company}}'s engineering goals.

Thank you for your time and consideration.

Warm regards,
{{.Name}}`))

type CoverLetters struct{}

func NewCoverLettersUsecase() *CoverLetters {
	return &CoverLetters{}
}

func (u *CoverLetters) Generate(in CoverLetterInput) (string, error) {
	name := in.Name
	if name == "" {
		name = "Applicant"
	}

	skills := in.Skills
	if len(skills) > 4 {
		skills = skills[:4]
	}
	primary := "software development"
	if len(in.Skills) > 0 {
		primary = in.Skills[0]
	}

	data := struct {
		JobTitle     string
		Company      string
		Experience   string
		SkillsList   string
		PrimarySkill string
		Name         string
	}{
		JobTitle:     in.JobTitle,
		Company:      in.Company,
		Experience:   in.Experience,
		SkillsList:   strings.Join(skills, ", "),
		PrimarySkill: primary,
		Name:         name,
	}

	var sb strings.Builder
	if err := coverLetterTmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "rendering cover letter")
	}
	return sb.String(), nil
}
