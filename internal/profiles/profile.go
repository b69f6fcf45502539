package profiles

import (
	"errors"
	"strings"
)

// Profile holds the user-supplied resume fields for one generation request.
// It lives only for the duration of the request and is never persisted.
type Profile struct {
	Name       string `json:"name"`
	JobTitle   string `json:"jobTitle"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	LinkedIn   string `json:"linkedin"`
	GitHub     string `json:"github"`
	Summary    string `json:"summary"`
	Skills     string `json:"skills"`
	Experience string `json:"experience"`
	Projects   string `json:"projects"`
	Education  string `json:"education"`
}

// Style defines the supported resume writing styles.
type Style string

const (
	StyleProfessional Style = "professional"
	StyleATS          Style = "ats"
	StyleCreative     Style = "creative"
)

// Industry defines the supported industry focus choices.
type Industry string

const (
	IndustryGeneral   Industry = "General"
	IndustrySoftware  Industry = "Software"
	IndustryAIML      Industry = "AI/ML"
	IndustryFinance   Industry = "Finance"
	IndustryMarketing Industry = "Marketing"
	IndustryDesign    Industry = "Design"
	IndustryOther     Industry = "Other"
)

// ParseStyle normalizes and validates a style string. Empty defaults to professional.
func ParseStyle(raw string) (Style, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch normalized {
	case "":
		return StyleProfessional, nil
	case string(StyleProfessional):
		return StyleProfessional, nil
	case string(StyleATS):
		return StyleATS, nil
	case string(StyleCreative):
		return StyleCreative, nil
	default:
		return "", errors.New("resume style is invalid")
	}
}

// ParseIndustry normalizes and validates an industry string. Empty defaults to General.
func ParseIndustry(raw string) (Industry, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return IndustryGeneral, nil
	}
	for _, candidate := range []Industry{
		IndustryGeneral,
		IndustrySoftware,
		IndustryAIML,
		IndustryFinance,
		IndustryMarketing,
		IndustryDesign,
		IndustryOther,
	} {
		if strings.EqualFold(normalized, string(candidate)) {
			return candidate, nil
		}
	}
	return "", errors.New("industry focus is invalid")
}

// mandatoryFields lists the form fields that must be filled before generation.
var mandatoryFields = []struct {
	key   string
	value func(Profile) string
}{
	{"name", func(p Profile) string { return p.Name }},
	{"job_title", func(p Profile) string { return p.JobTitle }},
	{"email", func(p Profile) string { return p.Email }},
	{"summary", func(p Profile) string { return p.Summary }},
	{"skills", func(p Profile) string { return p.Skills }},
	{"experience", func(p Profile) string { return p.Experience }},
	{"education", func(p Profile) string { return p.Education }},
}

// MissingFields returns all mandatory fields that are blank, in form order.
func (p Profile) MissingFields() []string {
	var missing []string
	for _, field := range mandatoryFields {
		if strings.TrimSpace(field.value(p)) == "" {
			missing = append(missing, field.key)
		}
	}
	return missing
}
