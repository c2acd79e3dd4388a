package workerstore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Worker) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Worker, error)
	FindByEmail(email string) (*dbmodels.Worker, error)
	FindByCode(workerCode string) (*dbmodels.Worker, error)
	FindByAccountID(accountID string) (*dbmodels.Worker, error)
	List(filter dbmodels.WorkerFilter) ([]dbmodels.Worker, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Worker) (id string, err error) {
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
		Model(&dbmodels.Worker{}).
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

func (i impl) GetByID(id string) (*dbmodels.Worker, error) {
	rec := dbmodels.Worker{}
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

func (i impl) FindByEmail(email string) (*dbmodels.Worker, error) {
	rec := dbmodels.Worker{}
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

func (i impl) FindByCode(workerCode string) (*dbmodels.Worker, error) {
	rec := dbmodels.Worker{}
	err := i.db.
		Where("worker_code = ?", workerCode).
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

func (i impl) FindByAccountID(accountID string) (*dbmodels.Worker, error) {
	rec := dbmodels.Worker{}
	err := i.db.
		Where("account_id = ?", accountID).
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

func (i impl) List(filter dbmodels.WorkerFilter) ([]dbmodels.Worker, error) {
	list := []dbmodels.Worker{}
	tx := i.db.Model(&dbmodels.Worker{})
	i.addFilter(tx, filter)
	err := tx.
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) addFilter(tx *gorm.DB, filter dbmodels.WorkerFilter) {
	if filter.Search != "" {
		searchValue := "%" + strings.ToLower(filter.Search) + "%"
		tx.Where("LOWER(CONCAT(last_name,' ',first_name)) like ? or LOWER(email) like ? or phone like ? or worker_code like ?",
			searchValue, searchValue, searchValue, searchValue)
	}
	if filter.Tag != "" {
		tx.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.IsVerified != nil {
		tx.Where("is_verified = ?", *filter.IsVerified)
	}
}
