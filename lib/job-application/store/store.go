package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.JobApplication) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.JobApplication, error)
	IsExist(jobID, workerID string) (found bool, err error)
	ListByJob(jobID string, statuses []models.ApplicationStatus) ([]dbmodels.JobApplication, error)
	ListByWorker(workerID string) ([]dbmodels.JobApplication, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.JobApplication) (id string, err error) {
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
		Model(&dbmodels.JobApplication{}).
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

func (i impl) GetByID(id string) (*dbmodels.JobApplication, error) {
	rec := dbmodels.JobApplication{}
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

func (i impl) IsExist(jobID, workerID string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.JobApplication{}).
		Select("count(*) > 0").
		Where("job_id = ? and worker_id = ?", jobID, workerID).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) ListByJob(jobID string, statuses []models.ApplicationStatus) ([]dbmodels.JobApplication, error) {
	list := []dbmodels.JobApplication{}
	tx := i.db.
		Model(&dbmodels.JobApplication{}).
		Where("job_id = ?", jobID)
	if len(statuses) > 0 {
		tx = tx.Where("status in ?", statuses)
	}
	err := tx.
		Preload("Worker").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByWorker(workerID string) ([]dbmodels.JobApplication, error) {
	list := []dbmodels.JobApplication{}
	err := i.db.
		Model(&dbmodels.JobApplication{}).
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
