package adminuserstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AdminUser) (userID string, err error)
	GetByID(userID string) (*dbmodels.AdminUser, error)
	FindByEmail(email string) (*dbmodels.AdminUser, error)
	Update(userID string, updMap map[string]interface{}) error
	Delete(userID string) error
	List() ([]dbmodels.AdminUser, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AdminUser) (userID string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
	existed, err := i.FindByEmail(rec.Email)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.New("a user with this email already exists")
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(userID string) (*dbmodels.AdminUser, error) {
	rec := dbmodels.AdminUser{}
	err := i.db.
		Where("id = ?", userID).
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

func (i impl) FindByEmail(email string) (*dbmodels.AdminUser, error) {
	rec := dbmodels.AdminUser{}
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

func (i impl) Update(userID string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	email, ok := updMap["Email"]
	if ok {
		existed, err := i.FindByEmail(email.(string))
		if err != nil {
			return err
		}
		if existed != nil && existed.ID != userID {
			return errors.New("a user with this email already exists")
		}
	}
	err := i.db.
		Model(&dbmodels.AdminUser{}).
		Where("id = ?", userID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) Delete(userID string) error {
	rec := dbmodels.AdminUser{}
	err := i.db.
		Where("id = ?", userID).
		Delete(&rec).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List() ([]dbmodels.AdminUser, error) {
	list := []dbmodels.AdminUser{}
	err := i.db.
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
