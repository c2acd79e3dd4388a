package jobapimodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type Job struct {
	ClientID         string `json:"client_id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	StartAt          *time.Time `json:"start_at"`
	EndAt            *time.Time `json:"end_at"`
	IsFlexible       bool       `json:"is_flexible"`
	PeriodStart      *time.Time `json:"period_start"`
	PeriodEnd        *time.Time `json:"period_end"`
	BillingAmount    int        `json:"billing_amount"`
	RewardAmount     int        `json:"reward_amount"`
	ReportTemplateID string     `json:"report_template_id"`
	ContractTmplID   string     `json:"contract_template_id"`
}

func (j Job) Validate() error {
	if j.Title == "" {
		return errors.New("title is required")
	}
	if j.ClientID == "" {
		return errors.New("client is required")
	}
	return nil
}

type JobView struct {
	Job
	ID          string           `json:"id"`
	Status      models.JobStatus `json:"status"`
	StatusName  string           `json:"status_name"`
	ClientName  string           `json:"client_name,omitempty"`
}

type StatusRequest struct {
	Status models.JobStatus `json:"status"`
}

func (r StatusRequest) Validate() error {
	if !r.Status.IsKnown() {
		return errors.New("unknown status")
	}
	return nil
}

func JobConvert(rec dbmodels.Job) JobView {
	view := JobView{
		Job: Job{
			ClientID:         rec.ClientID,
			Title:            rec.Title,
			Description:      rec.Description,
			IsFlexible:       rec.IsFlexible,
			BillingAmount:    rec.BillingAmount,
			RewardAmount:     rec.RewardAmount,
			ReportTemplateID: rec.ReportTemplateID,
			ContractTmplID:   rec.ContractTmplID,
		},
		ID:         rec.ID,
		Status:     rec.Status,
		StatusName: rec.Status.ToHuman(),
	}
	if !rec.StartAt.IsZero() {
		view.StartAt = &rec.StartAt
	}
	if !rec.EndAt.IsZero() {
		view.EndAt = &rec.EndAt
	}
	if !rec.PeriodStart.IsZero() {
		view.PeriodStart = &rec.PeriodStart
	}
	if !rec.PeriodEnd.IsZero() {
		view.PeriodEnd = &rec.PeriodEnd
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.CompanyName
	}
	return view
}

type ApplicationView struct {
	ID               string                   `json:"id"`
	JobID            string                   `json:"job_id"`
	JobTitle         string                   `json:"job_title,omitempty"`
	WorkerID         string                   `json:"worker_id"`
	WorkerName       string                   `json:"worker_name,omitempty"`
	Status           models.ApplicationStatus `json:"status"`
	StatusName       string                   `json:"status_name"`
	ScheduledStartAt *time.Time               `json:"scheduled_start_at,omitempty"`
	ScheduledEndAt   *time.Time               `json:"scheduled_end_at,omitempty"`
	ActualStartAt    *time.Time               `json:"actual_start_at,omitempty"`
	ActualEndAt      *time.Time               `json:"actual_end_at,omitempty"`
}

func ApplicationConvert(rec dbmodels.JobApplication) ApplicationView {
	view := ApplicationView{
		ID:         rec.ID,
		JobID:      rec.JobID,
		WorkerID:   rec.WorkerID,
		Status:     rec.Status,
		StatusName: rec.Status.ToHuman(),
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
	}
	if rec.Worker != nil {
		view.WorkerName = rec.Worker.GetFullName()
	}
	if !rec.ScheduledStartAt.IsZero() {
		view.ScheduledStartAt = &rec.ScheduledStartAt
	}
	if !rec.ScheduledEndAt.IsZero() {
		view.ScheduledEndAt = &rec.ScheduledEndAt
	}
	if !rec.ActualStartAt.IsZero() {
		view.ActualStartAt = &rec.ActualStartAt
	}
	if !rec.ActualEndAt.IsZero() {
		view.ActualEndAt = &rec.ActualEndAt
	}
	return view
}

type WorkTimeRequest struct {
	ScheduledStartAt *time.Time `json:"scheduled_start_at"`
	ScheduledEndAt   *time.Time `json:"scheduled_end_at"`
	ActualStartAt    *time.Time `json:"actual_start_at"`
	ActualEndAt      *time.Time `json:"actual_end_at"`
}

type ApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status"`
}

func (r ApplicationStatusRequest) Validate() error {
	if !r.Status.IsKnown() {
		return errors.New("unknown status")
	}
	return nil
}
