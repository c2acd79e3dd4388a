package individualcontractstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobIndividualContract) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.JobIndividualContract, error)
	ListByWorker(workerID string) ([]dbmodels.JobIndividualContract, error)
	ListByJob(jobID string) ([]dbmodels.JobIndividualContract, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobIndividualContract) (id string, err error) {
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
		Model(&dbmodels.JobIndividualContract{}).
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

func (i impl) GetByID(id string) (*dbmodels.JobIndividualContract, error) {
	rec := dbmodels.JobIndividualContract{}
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

func (i impl) ListByWorker(workerID string) ([]dbmodels.JobIndividualContract, error) {
	list := []dbmodels.JobIndividualContract{}
	err := i.db.
		Model(&dbmodels.JobIndividualContract{}).
		Where("worker_id = ?", workerID).
		Preload("Job").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByJob(jobID string) ([]dbmodels.JobIndividualContract, error) {
	list := []dbmodels.JobIndividualContract{}
	err := i.db.
		Model(&dbmodels.JobIndividualContract{}).
		Where("job_id = ?", jobID).
		Preload("Worker").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
