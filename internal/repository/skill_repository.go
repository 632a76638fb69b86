package repository

import (
	"github.com/google/uuid"
	"github.com/workhive/workhive-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db}
}

func (r *SkillRepository) FindOrCreateByName(name string) (*model.Skill, error) {
	var skill model.Skill
	err := r.db.Where(model.Skill{Name: name}).FirstOrCreate(&skill).Error
	return &skill, err
}

// UpsertUserSkill inserts or updates the (user, skill) row.
func (r *SkillRepository) UpsertUserSkill(us *model.UserSkill) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"proficiency_level", "years_of_experience", "updated_at"}),
	}).Create(us).Error
}

func (r *SkillRepository) FindUserSkills(userID uuid.UUID) ([]model.UserSkill, error) {
	var skills []model.UserSkill
	err := r.db.Preload("Skill").Where("user_id = ?", userID).Find(&skills).Error
	return skills, err
}
