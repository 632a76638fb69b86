// Package matching computes seeker/job match scores. Scoring is a pure
// weighted additive model over location, skills, experience level and job
// type; scores are recomputed on demand and never stored durably.
package matching

import (
	"strings"

	"github.com/workhive/workhive-backend/internal/model"
)

const (
	locationWeight   = 30
	skillsWeight     = 40
	experienceWeight = 20
	jobTypeWeight    = 10

	// notchPoints is awarded when seeker and job are one seniority level
	// apart instead of an exact match.
	notchPoints = 15
)

// Breakdown holds the points awarded per signal.
type Breakdown struct {
	Location   int `json:"location"`
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	JobType    int `json:"job_type"`
}

// Total sums the signals and caps at 100. The cap is unreachable with the
// current weights; kept as a guard on the invariant.
func (b Breakdown) Total() int {
	total := b.Location + b.Skills + b.Experience + b.JobType
	if total > 100 {
		total = 100
	}
	return total
}

// Score returns an integer in [0,100]. Missing or empty fields on either
// side contribute 0 for their signal only; the computation never fails.
func Score(seeker *model.SeekerProfile, job *model.Job) int {
	return ScoreBreakdown(seeker, job).Total()
}

// ScoreBreakdown computes the per-signal points for Score.
func ScoreBreakdown(seeker *model.SeekerProfile, job *model.Job) Breakdown {
	var b Breakdown

	// Location: full points when the preferred location appears in the job
	// location. The equality branch is subsumed by the substring check.
	if seeker.PreferredLocation != "" && job.Location != "" {
		pref := strings.ToLower(seeker.PreferredLocation)
		loc := strings.ToLower(job.Location)
		if strings.Contains(loc, pref) {
			b.Location = locationWeight
		} else if pref == loc {
			b.Location = locationWeight
		}
	}

	// Skills: partial credit proportional to the share of the job's skill
	// requirements the seeker covers, truncated to an integer.
	if len(seeker.ExtractedSkills) > 0 && len(job.ExtractedSkills) > 0 {
		jobSkills := lowerSet(job.ExtractedSkills)
		if len(jobSkills) > 0 {
			seekerSkills := lowerSet(seeker.ExtractedSkills)
			overlap := 0
			for skill := range jobSkills {
				if _, ok := seekerSkills[skill]; ok {
					overlap++
				}
			}
			b.Skills = skillsWeight * overlap / len(jobSkills)
		}
	}

	// Experience level: exact match or one notch apart on the ordinal
	// ladder (entry=0, mid=1, senior=2, expert=3).
	if seeker.ExperienceLevel != "" && job.ExperienceRequired != "" {
		if seeker.ExperienceLevel == job.ExperienceRequired {
			b.Experience = experienceWeight
		} else {
			so := model.ExperienceLevelOrdinal(seeker.ExperienceLevel)
			jo := model.ExperienceLevelOrdinal(job.ExperienceRequired)
			if so >= 0 && jo >= 0 && abs(so-jo) == 1 {
				b.Experience = notchPoints
			}
		}
	}

	if seeker.PreferredJobType != "" && job.JobType != "" && seeker.PreferredJobType == job.JobType {
		b.JobType = jobTypeWeight
	}

	return b
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
