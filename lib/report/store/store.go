package reportstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Report) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Report, error)
	FindByApplication(applicationID string) (*dbmodels.Report, error)
	HasApproved(applicationID string) (found bool, err error)
	ListByApplication(applicationID string) ([]dbmodels.Report, error)
	ListByStatus(status models.ReportStatus) ([]dbmodels.Report, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Report) (id string, err error) {
	if err = rec.Validate(); err != nil {
		return "", err
	}
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
		Model(&dbmodels.Report{}).
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

func (i impl) GetByID(id string) (*dbmodels.Report, error) {
	rec := dbmodels.Report{}
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

// FindByApplication returns the latest report of the current submission
// cycle, or nil when none was filed yet.
func (i impl) FindByApplication(applicationID string) (*dbmodels.Report, error) {
	rec := dbmodels.Report{}
	err := i.db.
		Where("application_id = ?", applicationID).
		Order("created_at desc").
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

func (i impl) HasApproved(applicationID string) (found bool, err error) {
	var exists bool
	err = i.db.Model(&dbmodels.Report{}).
		Select("count(*) > 0").
		Where("application_id = ? and status = ?", applicationID, models.ReportStatusApproved).
		Find(&exists).
		Error
	return exists, err
}

func (i impl) ListByApplication(applicationID string) ([]dbmodels.Report, error) {
	list := []dbmodels.Report{}
	err := i.db.
		Model(&dbmodels.Report{}).
		Where("application_id = ?", applicationID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListByStatus(status models.ReportStatus) ([]dbmodels.Report, error) {
	list := []dbmodels.Report{}
	err := i.db.
		Model(&dbmodels.Report{}).
		Where("status = ?", status).
		Preload("Application").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
