package profiles

import (
	_ "embed"
	"strings"
)

//go:embed templates/resume_prompt.txt
var resumePromptTemplate string

// BuildPrompt renders the generation prompt for a profile. Optional fields
// that were left blank are substituted with "Not provided" so the model is
// told explicitly rather than left to guess.
func BuildPrompt(p Profile, style Style, industry Industry) string {
	replacer := strings.NewReplacer(
		"{{NAME}}", strings.TrimSpace(p.Name),
		"{{JOB_TITLE}}", strings.TrimSpace(p.JobTitle),
		"{{EMAIL}}", strings.TrimSpace(p.Email),
		"{{PHONE}}", orNotProvided(p.Phone),
		"{{LINKEDIN}}", orNotProvided(p.LinkedIn),
		"{{GITHUB}}", orNotProvided(p.GitHub),
		"{{SUMMARY}}", strings.TrimSpace(p.Summary),
		"{{SKILLS}}", strings.TrimSpace(p.Skills),
		"{{EXPERIENCE}}", strings.TrimSpace(p.Experience),
		"{{PROJECTS}}", orNotProvided(p.Projects),
		"{{EDUCATION}}", strings.TrimSpace(p.Education),
		"{{STYLE}}", string(style),
		"{{INDUSTRY}}", string(industry),
	)
	return strings.TrimSpace(replacer.Replace(resumePromptTemplate))
}

func orNotProvided(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "Not provided"
	}
	return trimmed
}
