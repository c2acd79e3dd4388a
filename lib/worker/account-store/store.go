package workeraccountstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkerAccount) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.WorkerAccount, error)
	FindByEmail(email string) (*dbmodels.WorkerAccount, error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkerAccount) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	existed, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("an account with this email already exists")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.WorkerAccount{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.WorkerAccount, error) {
	rec := dbmodels.WorkerAccount{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByEmail(email string) (*dbmodels.WorkerAccount, error) {
	rec := dbmodels.WorkerAccount{}
	err := i.db.
		Where("email = ?", email).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Delete removes the login identity. Used as the compensating step of bulk
// creation, so failed rows do not leave orphaned identities behind.
func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.WorkerAccount{}).
		Error
}
