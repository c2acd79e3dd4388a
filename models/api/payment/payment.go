package paymentapimodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/lib/utils/helpers"
	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type DetailItem struct {
	JobTitle string `json:"job_title"`
	Amount   int    `json:"amount"`
}

type GenerateRequest struct {
	WorkerID string       `json:"worker_id"`
	Month    string       `json:"month"` // YYYY-MM
	Details  []DetailItem `json:"details"`
}

func (r GenerateRequest) Validate() error {
	if r.WorkerID == "" {
		return errors.New("worker is required")
	}
	if !helpers.IsMonthKey(r.Month) {
		return errors.New("month must be in YYYY-MM format")
	}
	if len(r.Details) == 0 {
		return errors.New("details are required")
	}
	return nil
}

type StatusRequest struct {
	Status models.PaymentNoticeStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsKnown() {
		return errors.New("unknown status")
	}
	return nil
}

type ScheduleRequest struct {
	Month   string `json:"month"`    // YYYY-MM
	PayDate string `json:"pay_date"` // YYYY-MM-DD
}

func (r ScheduleRequest) Validate() error {
	if !helpers.IsMonthKey(r.Month) {
		return errors.New("month must be in YYYY-MM format")
	}
	if _, err := helpers.ParseDate(r.PayDate); err != nil {
		return errors.New("pay date must be in YYYY-MM-DD format")
	}
	return nil
}

type NoticeView struct {
	ID          string                     `json:"id"`
	WorkerID    string                     `json:"worker_id"`
	WorkerName  string                     `json:"worker_name,omitempty"`
	Month       string                     `json:"month"`
	Status      models.PaymentNoticeStatus `json:"status"`
	StatusName  string                     `json:"status_name"`
	TotalAmount int                        `json:"total_amount"`
	TaxAmount   int                        `json:"tax_amount"`
	Details     string                     `json:"details"`
	IssuedAt    *time.Time                 `json:"issued_at,omitempty"`
	ApprovedAt  *time.Time                 `json:"approved_at,omitempty"`
	PaidAt      *time.Time                 `json:"paid_at,omitempty"`
	Notified    bool                       `json:"notified"` // push message delivery outcome, where applicable
}

func NoticeConvert(rec dbmodels.PaymentNotice) NoticeView {
	view := NoticeView{
		ID:          rec.ID,
		WorkerID:    rec.WorkerID,
		Month:       rec.Month,
		Status:      rec.Status,
		StatusName:  rec.Status.ToHuman(),
		TotalAmount: rec.TotalAmount,
		TaxAmount:   rec.TaxAmount,
		Details:     rec.Details,
	}
	if rec.Worker != nil {
		view.WorkerName = rec.Worker.GetFullName()
	}
	if !rec.IssuedAt.IsZero() {
		view.IssuedAt = &rec.IssuedAt
	}
	if !rec.ApprovedAt.IsZero() {
		view.ApprovedAt = &rec.ApprovedAt
	}
	if !rec.PaidAt.IsZero() {
		view.PaidAt = &rec.PaidAt
	}
	return view
}

type ScheduleView struct {
	ID      string    `json:"id"`
	Month   string    `json:"month"`
	PayDate time.Time `json:"pay_date"`
}

func ScheduleConvert(rec dbmodels.PaymentSchedule) ScheduleView {
	return ScheduleView{
		ID:      rec.ID,
		Month:   rec.Month,
		PayDate: rec.PayDate,
	}
}
