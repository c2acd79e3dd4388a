package dbmodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
)

type AdminUser struct {
	BaseModel
	IsActive    bool
	Role        models.UserRole `gorm:"type:varchar(50)"`
	Password    string          `gorm:"type:varchar(128)"`
	FirstName   string          `gorm:"type:varchar(150)"`
	LastName    string          `gorm:"type:varchar(150)"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string          `gorm:"type:varchar(20)"`
	LastLogin   time.Time
}

func (u AdminUser) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if !u.Role.IsKnown() {
		return errors.New("unknown role")
	}
	return nil
}

func (u AdminUser) IsSystem() bool {
	return u.Role == models.UserRoleSystem
}

func (u AdminUser) GetFullName() string {
	return u.LastName + " " + u.FirstName
}
