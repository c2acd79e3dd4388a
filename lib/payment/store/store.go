package paymentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.PaymentNotice) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.PaymentNotice, error)
	FindByWorkerAndMonth(workerID, month string) (*dbmodels.PaymentNotice, error)
	ListByMonth(month string) ([]dbmodels.PaymentNotice, error)
	ListByWorker(workerID string) ([]dbmodels.PaymentNotice, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.PaymentNotice) (id string, err error) {
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
		Model(&dbmodels.PaymentNotice{}).
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

func (i impl) GetByID(id string) (*dbmodels.PaymentNotice, error) {
	rec := dbmodels.PaymentNotice{}
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

func (i impl) FindByWorkerAndMonth(workerID, month string) (*dbmodels.PaymentNotice, error) {
	rec := dbmodels.PaymentNotice{}
	err := i.db.
		Where("worker_id = ? and month = ?", workerID, month).
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

func (i impl) ListByMonth(month string) ([]dbmodels.PaymentNotice, error) {
	list := []dbmodels.PaymentNotice{}
	err := i.db.
		Model(&dbmodels.PaymentNotice{}).
		Where("month = ?", month).
		Preload("Worker").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByWorker(workerID string) ([]dbmodels.PaymentNotice, error) {
	list := []dbmodels.PaymentNotice{}
	err := i.db.
		Model(&dbmodels.PaymentNotice{}).
		Where("worker_id = ?", workerID).
		Order("month desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
