package contracttemplatestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.ContractTemplate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.ContractTemplate, error)
	Delete(id string) error
	List(kind models.ContractKind) ([]dbmodels.ContractTemplate, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ContractTemplate) (id string, err error) {
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
		Model(&dbmodels.ContractTemplate{}).
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

func (i impl) GetByID(id string) (*dbmodels.ContractTemplate, error) {
	rec := dbmodels.ContractTemplate{}
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
		Delete(&dbmodels.ContractTemplate{}).
		Error
}

func (i impl) List(kind models.ContractKind) ([]dbmodels.ContractTemplate, error) {
	list := []dbmodels.ContractTemplate{}
	tx := i.db.Model(&dbmodels.ContractTemplate{})
	if kind != "" {
		tx = tx.Where("kind = ?", kind)
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
