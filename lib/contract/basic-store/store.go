package basiccontractstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.WorkerBasicContract) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.WorkerBasicContract, error)
	FindByWorkerAndTemplate(workerID, templateID string, status models.ContractStatus) (*dbmodels.WorkerBasicContract, error)
	ListByWorker(workerID string) ([]dbmodels.WorkerBasicContract, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.WorkerBasicContract) (id string, err error) {
	err = i.db.Omit(clause.Associations).
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
		Model(&dbmodels.WorkerBasicContract{}).
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

func (i impl) GetByID(id string) (*dbmodels.WorkerBasicContract, error) {
	rec := dbmodels.WorkerBasicContract{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
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

func (i impl) FindByWorkerAndTemplate(workerID, templateID string, status models.ContractStatus) (*dbmodels.WorkerBasicContract, error) {
	rec := dbmodels.WorkerBasicContract{}
	err := i.db.
		Where("worker_id = ? and template_id = ? and status = ?", workerID, templateID, status).
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

func (i impl) ListByWorker(workerID string) ([]dbmodels.WorkerBasicContract, error) {
	list := []dbmodels.WorkerBasicContract{}
	err := i.db.
		Model(&dbmodels.WorkerBasicContract{}).
		Where("worker_id = ?", workerID).
		Preload("Template").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
