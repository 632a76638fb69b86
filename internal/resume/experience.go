package resume

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/workhive/workhive-backend/internal/model"
)

// experiencePatterns are tried in priority order; the first pattern that
// matches anywhere in the text wins and the rest are skipped, even if they
// would also match.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*(?:of\s*)?experience`),
	regexp.MustCompile(`(?i)experience:\s*(\d+)\s*(?:years?|yrs?)`),
	regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)\s*in\s*(?:the\s*)?field`),
	regexp.MustCompile(`(?i)worked\s*(?:for\s*)?(\d+)\s*(?:years?|yrs?)`),
}

// RecognizeExperience infers total years of experience and a coarse level
// bucket from extracted text. Resumes stating several figures get the
// maximum among the winning pattern's matches.
func RecognizeExperience(text string) model.ExperienceSummary {
	summary := model.ExperienceSummary{
		TotalYears: 0,
		Level:      model.LevelEntry,
		Evidence:   []string{},
	}

	for _, re := range experiencePatterns {
		matches := re.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		years := 0
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > years {
				years = n
			}
		}

		summary.TotalYears = years
		summary.Level = LevelForYears(years)
		summary.Evidence = append(summary.Evidence, fmt.Sprintf("Found %d years of experience", years))
		break
	}

	return summary
}

// LevelForYears buckets total years into an experience level. Boundaries
// must stay exact: downstream match scoring compares levels for equality.
func LevelForYears(years int) string {
	switch {
	case years >= 10:
		return model.LevelExpert
	case years >= 6:
		return model.LevelSenior
	case years >= 3:
		return model.LevelMid
	default:
		return model.LevelEntry
	}
}
