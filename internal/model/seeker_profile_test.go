package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullProfile() *SeekerProfile {
	return &SeekerProfile{
		FirstName:            "Ada",
		LastName:             "Lovelace",
		Title:                "Backend Engineer",
		CurrentLocation:      "London",
		ExperienceLevel:      LevelSenior,
		TotalExperienceYears: 7,
		Availability:         "immediate",
	}
}

func TestCompletionAllFields(t *testing.T) {
	p := fullProfile()
	assert.InDelta(t, 100, p.CompletionPercent(), 0.01)
	assert.True(t, p.IsComplete())
}

func TestCompletionSixOfSeven(t *testing.T) {
	p := fullProfile()
	p.Availability = ""
	// 6/7 ≈ 85.7% clears the 80% bar.
	assert.True(t, p.IsComplete())
}

func TestCompletionFiveOfSeven(t *testing.T) {
	p := fullProfile()
	p.Availability = ""
	p.Title = ""
	// 5/7 ≈ 71.4% does not.
	assert.False(t, p.IsComplete())
}

func TestCompletionZeroYearsCountsAsMissing(t *testing.T) {
	p := fullProfile()
	p.TotalExperienceYears = 0
	assert.True(t, p.IsComplete())

	p.FirstName = ""
	assert.False(t, p.IsComplete())
}

func TestCompletionEmptyProfile(t *testing.T) {
	p := &SeekerProfile{}
	assert.InDelta(t, 0, p.CompletionPercent(), 0.01)
	assert.False(t, p.IsComplete())
}

func TestExperienceLevelOrdinal(t *testing.T) {
	assert.Equal(t, 0, ExperienceLevelOrdinal(LevelEntry))
	assert.Equal(t, 1, ExperienceLevelOrdinal(LevelMid))
	assert.Equal(t, 2, ExperienceLevelOrdinal(LevelSenior))
	assert.Equal(t, 3, ExperienceLevelOrdinal(LevelExpert))
	assert.Equal(t, -1, ExperienceLevelOrdinal(""))
	assert.Equal(t, -1, ExperienceLevelOrdinal("principal"))
}
