package repository

import (
	"github.com/workhive/workhive-backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

// GetOrCreateByFirebaseUID returns the local user keyed by the identity
// provider's subject id, creating it from defaults on first sight.
func (r *UserRepository) GetOrCreateByFirebaseUID(uid string, defaults model.User) (*model.User, error) {
	var user model.User
	defaults.FirebaseUID = uid
	err := r.db.Where(model.User{FirebaseUID: uid}).Attrs(defaults).FirstOrCreate(&user).Error
	return &user, err
}

func (r *UserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, "id = ?", id).Error
	return &user, err
}

func (r *UserRepository) Save(user *model.User) error {
	return r.db.Save(user).Error
}
