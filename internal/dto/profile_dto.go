package dto

// ProfileUpdateRequest carries a partial profile update; nil fields are
// left untouched.
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Title     *string `json:"title"`
	Bio       *string `json:"bio"`

	PortfolioURL *string `json:"portfolio_url"`
	LinkedinURL  *string `json:"linkedin_url"`
	GithubURL    *string `json:"github_url"`

	ExperienceLevel      *string `json:"experience_level"`
	TotalExperienceYears *int    `json:"total_experience_years"`

	CurrentLocation   *string `json:"current_location"`
	PreferredLocation *string `json:"preferred_location"`
	PreferredJobType  *string `json:"preferred_job_type"`
	WillingToRelocate *bool   `json:"willing_to_relocate"`

	ExpectedSalaryMin *int64  `json:"expected_salary_min"`
	ExpectedSalaryMax *int64  `json:"expected_salary_max"`
	SalaryCurrency    *string `json:"salary_currency"`

	Availability *string `json:"availability"`
}

type UserSkillInput struct {
	SkillName         string `json:"skill_name"`
	ProficiencyLevel  string `json:"proficiency_level"`
	YearsOfExperience int    `json:"years_of_experience"`
}
