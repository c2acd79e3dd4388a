package adminpanelapimodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type User struct {
	Email       string          `json:"email"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	PhoneNumber string          `json:"phone_number"`
	Password    string          `json:"password,omitempty"`
	Role        models.UserRole `json:"role"`
}

func (u User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}
	if !u.Role.IsKnown() {
		return errors.New("unknown role")
	}
	return nil
}

type UserView struct {
	User
	ID        string     `json:"id"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func UserConvert(rec dbmodels.AdminUser) UserView {
	return UserView{
		User: User{
			Email:       rec.Email,
			FirstName:   rec.FirstName,
			LastName:    rec.LastName,
			PhoneNumber: rec.PhoneNumber,
			Role:        rec.Role,
		},
		ID:        rec.ID,
		IsActive:  rec.IsActive,
		LastLogin: &rec.LastLogin,
	}
}

type UserUpdate struct {
	Email       *string          `json:"email"`
	FirstName   *string          `json:"first_name"`
	LastName    *string          `json:"last_name"`
	PhoneNumber *string          `json:"phone_number"`
	Password    *string          `json:"password"`
	Role        *models.UserRole `json:"role"`
	IsActive    *bool            `json:"is_active"`
}
