package dbmodels

import "github.com/pkg/errors"

// WorkerAccount is the portal login identity. It is created before the
// worker profile in bulk creation and compensating-deleted when the profile
// write fails, so no identity row is left without a worker.
type WorkerAccount struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex"`
	Password string `gorm:"type:varchar(128)"`
	IsActive bool
}

func (a WorkerAccount) Validate() error {
	if a.Email == "" {
		return errors.New("email is required")
	}
	if a.Password == "" {
		return errors.New("password is required")
	}
	return nil
}
