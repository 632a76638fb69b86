package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workhive/workhive-backend/internal/model"
)

func seekerWith(mod func(*model.SeekerProfile)) *model.SeekerProfile {
	s := &model.SeekerProfile{}
	if mod != nil {
		mod(s)
	}
	return s
}

func jobWith(mod func(*model.Job)) *model.Job {
	j := &model.Job{}
	if mod != nil {
		mod(j)
	}
	return j
}

func TestScoreNoSignals(t *testing.T) {
	seeker := seekerWith(func(s *model.SeekerProfile) {
		s.PreferredLocation = "Berlin"
		s.ExperienceLevel = model.LevelEntry
		s.PreferredJobType = model.JobTypeContract
	})
	job := jobWith(func(j *model.Job) {
		j.Location = "Tokyo"
		j.ExperienceRequired = model.LevelExpert
		j.JobType = model.JobTypeFullTime
		j.ExtractedSkills = model.StringList{"python"}
	})

	assert.Equal(t, 0, Score(seeker, job))
}

func TestScoreAllSignals(t *testing.T) {
	seeker := seekerWith(func(s *model.SeekerProfile) {
		s.PreferredLocation = "San Francisco"
		s.ExtractedSkills = model.StringList{"Python", "React", "Sql"}
		s.ExperienceLevel = model.LevelSenior
		s.PreferredJobType = model.JobTypeFullTime
	})
	job := jobWith(func(j *model.Job) {
		j.Location = "San Francisco Bay Area"
		j.ExtractedSkills = model.StringList{"python", "react", "sql"}
		j.ExperienceRequired = model.LevelSenior
		j.JobType = model.JobTypeFullTime
	})

	assert.Equal(t, 100, Score(seeker, job))
}

func TestScoreSkillPartialCredit(t *testing.T) {
	seeker := seekerWith(func(s *model.SeekerProfile) {
		s.ExtractedSkills = model.StringList{"Python"}
	})
	job := jobWith(func(j *model.Job) {
		j.ExtractedSkills = model.StringList{"python", "react", "sql"}
	})

	// floor(40 * 1/3) = 13
	assert.Equal(t, 13, Score(seeker, job))
	assert.Equal(t, 13, ScoreBreakdown(seeker, job).Skills)
}

func TestScoreSkillMatchIsCaseInsensitive(t *testing.T) {
	seeker := seekerWith(func(s *model.SeekerProfile) {
		s.ExtractedSkills = model.StringList{"PYTHON", "React"}
	})
	job := jobWith(func(j *model.Job) {
		j.ExtractedSkills = model.StringList{"python", "react"}
	})

	assert.Equal(t, 40, ScoreBreakdown(seeker, job).Skills)
}

func TestScoreExperienceNotch(t *testing.T) {
	tests := []struct {
		seeker string
		job    string
		points int
	}{
		{model.LevelSenior, model.LevelSenior, 20},
		{model.LevelMid, model.LevelSenior, 15},
		{model.LevelExpert, model.LevelSenior, 15},
		{model.LevelEntry, model.LevelSenior, 0},
		{model.LevelEntry, model.LevelExpert, 0},
		{"", model.LevelSenior, 0},
		{"unknown", model.LevelSenior, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_vs_%s", tt.seeker, tt.job), func(t *testing.T) {
			seeker := seekerWith(func(s *model.SeekerProfile) { s.ExperienceLevel = tt.seeker })
			job := jobWith(func(j *model.Job) { j.ExperienceRequired = tt.job })
			assert.Equal(t, tt.points, ScoreBreakdown(seeker, job).Experience)
		})
	}
}

func TestScoreLocationSubstring(t *testing.T) {
	seeker := seekerWith(func(s *model.SeekerProfile) { s.PreferredLocation = "remote" })
	job := jobWith(func(j *model.Job) { j.Location = "Remote (EU timezones)" })
	assert.Equal(t, 30, ScoreBreakdown(seeker, job).Location)

	// Equality also awards the full 30.
	job.Location = "Remote"
	assert.Equal(t, 30, ScoreBreakdown(seeker, job).Location)
}

func TestScoreMissingFieldsContributeZero(t *testing.T) {
	// Empty seeker vs fully specified job: every signal degrades to 0
	// without failing.
	job := jobWith(func(j *model.Job) {
		j.Location = "London"
		j.ExtractedSkills = model.StringList{"go"}
		j.ExperienceRequired = model.LevelMid
		j.JobType = model.JobTypePartTime
	})
	assert.Equal(t, 0, Score(seekerWith(nil), job))

	// And the reverse: job with nothing set.
	seeker := seekerWith(func(s *model.SeekerProfile) {
		s.PreferredLocation = "London"
		s.ExtractedSkills = model.StringList{"go"}
		s.ExperienceLevel = model.LevelMid
		s.PreferredJobType = model.JobTypePartTime
	})
	assert.Equal(t, 0, Score(seeker, jobWith(nil)))
}

func TestBreakdownTotalCap(t *testing.T) {
	b := Breakdown{Location: 40, Skills: 40, Experience: 20, JobType: 10}
	assert.Equal(t, 100, b.Total())
}
