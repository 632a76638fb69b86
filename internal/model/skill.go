package model

import (
	"time"

	"github.com/google/uuid"
)

type SkillCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
}

type Skill struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string         `gorm:"type:varchar(100);uniqueIndex" json:"name"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid" json:"category_id"`
	Category    *SkillCategory `gorm:"foreignKey:CategoryID" json:"-"`
	Aliases     StringList     `gorm:"type:jsonb" json:"aliases"`
	IsTechnical bool           `gorm:"default:true" json:"is_technical"`
}

const (
	ProficiencyBeginner     = "beginner"
	ProficiencyIntermediate = "intermediate"
	ProficiencyAdvanced     = "advanced"
	ProficiencyExpert       = "expert"
)

type UserSkill struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;index:idx_user_skill,unique" json:"user_id"`
	User    User      `gorm:"foreignKey:UserID" json:"-"`
	SkillID uuid.UUID `gorm:"type:uuid;index:idx_user_skill,unique" json:"skill_id"`
	Skill   Skill     `gorm:"foreignKey:SkillID" json:"skill"`

	ProficiencyLevel  string    `gorm:"type:varchar(20)" json:"proficiency_level"`
	YearsOfExperience int       `gorm:"default:0" json:"years_of_experience"`
	IsVerified        bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
