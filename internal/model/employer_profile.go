package model

import (
	"time"

	"github.com/google/uuid"
)

type EmployerProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`

	CompanyName        string `gorm:"type:varchar(200)" json:"company_name"`
	CompanyDescription string `gorm:"type:text" json:"company_description"`
	CompanyWebsite     string `gorm:"type:varchar(255)" json:"company_website"`

	// startup, small, medium, large, enterprise
	CompanySize string `gorm:"type:varchar(20)" json:"company_size"`
	Industry    string `gorm:"type:varchar(100)" json:"industry"`
	Location    string `gorm:"type:varchar(100)" json:"location"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
