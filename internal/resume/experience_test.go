package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workhive/workhive-backend/internal/model"
)

func TestRecognizeExperienceFirstPatternWins(t *testing.T) {
	// Both the "years of experience" and "worked for N years" patterns
	// match, but only the first pattern in priority order counts.
	got := RecognizeExperience("i have 5 years of experience and worked for 10 years")

	assert.Equal(t, 5, got.TotalYears)
	assert.Equal(t, model.LevelMid, got.Level)
	assert.Equal(t, []string{"Found 5 years of experience"}, got.Evidence)
}

func TestRecognizeExperienceMaxWithinWinningPattern(t *testing.T) {
	got := RecognizeExperience("3 years of experience in backend. 7 years of experience overall.")
	assert.Equal(t, 7, got.TotalYears)
	assert.Equal(t, model.LevelSenior, got.Level)
}

func TestRecognizeExperienceLowerPriorityPatterns(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		years int
	}{
		{"colon form", "experience: 4 years", 4},
		{"in the field", "12 years in the field", 12},
		{"worked for", "worked for 8 years", 8},
		{"yrs abbreviation", "6 yrs experience", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecognizeExperience(tt.text)
			assert.Equal(t, tt.years, got.TotalYears)
		})
	}
}

func TestRecognizeExperienceNoMatch(t *testing.T) {
	got := RecognizeExperience("enthusiastic graduate seeking opportunities")

	assert.Equal(t, 0, got.TotalYears)
	assert.Equal(t, model.LevelEntry, got.Level)
	assert.Empty(t, got.Evidence)
}

func TestLevelForYearsBoundaries(t *testing.T) {
	tests := []struct {
		years int
		level string
	}{
		{0, model.LevelEntry},
		{2, model.LevelEntry},
		{3, model.LevelMid},
		{5, model.LevelMid},
		{6, model.LevelSenior},
		{9, model.LevelSenior},
		{10, model.LevelExpert},
		{25, model.LevelExpert},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, LevelForYears(tt.years), "years=%d", tt.years)
	}
}
