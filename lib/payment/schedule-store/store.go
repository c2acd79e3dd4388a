package paymentschedulestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Upsert(month string, payDate time.Time) (id string, err error)
	FindByMonth(month string) (*dbmodels.PaymentSchedule, error)
	List() ([]dbmodels.PaymentSchedule, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert keeps one schedule row per month.
func (i impl) Upsert(month string, payDate time.Time) (id string, err error) {
	existed, err := i.FindByMonth(month)
	if err != nil {
		return "", err
	}
	if existed != nil {
		err = i.db.
			Model(&dbmodels.PaymentSchedule{}).
			Where("id = ?", existed.ID).
			Update("pay_date", payDate).
			Error
		if err != nil {
			return "", err
		}
		return existed.ID, nil
	}
	rec := dbmodels.PaymentSchedule{
		Month:   month,
		PayDate: payDate,
	}
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindByMonth(month string) (*dbmodels.PaymentSchedule, error) {
	rec := dbmodels.PaymentSchedule{}
	err := i.db.
		Where("month = ?", month).
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

func (i impl) List() ([]dbmodels.PaymentSchedule, error) {
	list := []dbmodels.PaymentSchedule{}
	err := i.db.
		Order("month desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
