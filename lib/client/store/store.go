package clientstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Client) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Client, error)
	Delete(id string) error
	List(search string) ([]dbmodels.Client, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Client) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
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
	tx := i.db.
		Model(&dbmodels.Client{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.Client, error) {
	rec := dbmodels.Client{}
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

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Client{}).
		Error
}

func (i impl) List(search string) ([]dbmodels.Client, error) {
	list := []dbmodels.Client{}
	tx := i.db.Model(&dbmodels.Client{})
	if search != "" {
		searchValue := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(company_name) like ? or LOWER(contact_person) like ?", searchValue, searchValue)
	}
	err := tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
