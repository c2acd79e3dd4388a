package dbmodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
)

// PaymentNotice is the monthly statement for a worker. One row per
// (worker, month); regeneration updates the draft row in place.
type PaymentNotice struct {
	BaseModel
	WorkerID string  `gorm:"type:varchar(36);index:idx_worker_month,unique"`
	Worker   *Worker `gorm:"foreignKey:WorkerID"`
	Month    string  `gorm:"type:varchar(7);index:idx_worker_month,unique"` // YYYY-MM
	Status   models.PaymentNoticeStatus `gorm:"type:varchar(50);index"`
	TotalAmount int
	TaxAmount   int
	Details     string `gorm:"type:jsonb"` // itemized job breakdown
	IssuedAt    time.Time
	ApprovedAt  time.Time
	ApproveIP   string `gorm:"type:varchar(50)"`
	ApproveUA   string `gorm:"type:varchar(512)"`
	PaidAt      time.Time
}

// IsAllowStatusChange validates the linear DRAFT -> ISSUED -> APPROVED -> PAID flow.
func (n PaymentNotice) IsAllowStatusChange(newStatus models.PaymentNoticeStatus) (bool, error) {
	if !newStatus.IsKnown() {
		return false, errors.New("unknown status")
	}
	if n.Status == newStatus {
		return false, nil
	}
	allowed := map[models.PaymentNoticeStatus]models.PaymentNoticeStatus{
		models.PaymentNoticeStatusDraft:    models.PaymentNoticeStatusIssued,
		models.PaymentNoticeStatusIssued:   models.PaymentNoticeStatusApproved,
		models.PaymentNoticeStatusApproved: models.PaymentNoticeStatusPaid,
	}
	if next, ok := allowed[n.Status]; !ok || next != newStatus {
		return false, errors.Errorf("status change %s -> %s is not allowed", n.Status, newStatus)
	}
	return true, nil
}

type PaymentSchedule struct {
	BaseModel
	Month   string    `gorm:"type:varchar(7);uniqueIndex"` // YYYY-MM
	PayDate time.Time
}
