package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeEmployer  = "employer"
	UserTypeAdmin     = "admin"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FirebaseUID       string    `gorm:"type:varchar(128);uniqueIndex" json:"-"`
	Email             string    `gorm:"type:varchar(255);index" json:"email"`
	FirstName         string    `gorm:"type:varchar(50)" json:"first_name"`
	LastName          string    `gorm:"type:varchar(50)" json:"last_name"`
	UserType          string    `gorm:"type:varchar(20);default:job_seeker" json:"user_type"`
	Phone             string    `gorm:"type:varchar(15)" json:"phone"`
	IsProfileComplete bool      `gorm:"default:false" json:"is_profile_complete"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
