package contractapimodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type Template struct {
	Title    string              `json:"title"`
	Body     string              `json:"body"`
	Kind     models.ContractKind `json:"kind"`
	IsActive bool                `json:"is_active"`
}

func (t Template) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.Body == "" {
		return errors.New("body is required")
	}
	return nil
}

type TemplateView struct {
	Template
	ID string `json:"id"`
}

func TemplateConvert(rec dbmodels.ContractTemplate) TemplateView {
	return TemplateView{
		Template: Template{
			Title:    rec.Title,
			Body:     rec.Body,
			Kind:     rec.Kind,
			IsActive: rec.IsActive,
		},
		ID: rec.ID,
	}
}

type IssueRequest struct {
	JobID      string `json:"job_id"`
	WorkerID   string `json:"worker_id"`
	TemplateID string `json:"template_id"`
}

func (r IssueRequest) Validate() error {
	if r.JobID == "" || r.WorkerID == "" || r.TemplateID == "" {
		return errors.New("job, worker and template are required")
	}
	return nil
}

type SignRequest struct {
	Consent bool `json:"consent"`
}

type BasicSignRequest struct {
	TemplateID string `json:"template_id"`
	Consent    bool   `json:"consent"`
}

func (r BasicSignRequest) Validate() error {
	if r.TemplateID == "" {
		return errors.New("template is required")
	}
	return nil
}

type IndividualView struct {
	ID             string                `json:"id"`
	JobID          string                `json:"job_id"`
	JobTitle       string                `json:"job_title,omitempty"`
	WorkerID       string                `json:"worker_id"`
	WorkerName     string                `json:"worker_name,omitempty"`
	Status         models.ContractStatus `json:"status"`
	Content        string                `json:"content"`
	SignedAt       *time.Time            `json:"signed_at,omitempty"`
	PartyASignedAt *time.Time            `json:"party_a_signed_at,omitempty"`
	PartyASigner   string                `json:"party_a_signer,omitempty"`
	Notified       bool                  `json:"notified"` // push message delivery outcome, where applicable
}

func IndividualConvert(rec dbmodels.JobIndividualContract) IndividualView {
	view := IndividualView{
		ID:           rec.ID,
		JobID:        rec.JobID,
		WorkerID:     rec.WorkerID,
		Status:       rec.Status,
		Content:      rec.ContentSnapshot,
		PartyASigner: rec.PartyASigner,
	}
	if rec.Job != nil {
		view.JobTitle = rec.Job.Title
	}
	if rec.Worker != nil {
		view.WorkerName = rec.Worker.GetFullName()
	}
	if !rec.SignedAt.IsZero() {
		view.SignedAt = &rec.SignedAt
	}
	if !rec.PartyASignedAt.IsZero() {
		view.PartyASignedAt = &rec.PartyASignedAt
	}
	return view
}

type BasicView struct {
	ID         string                `json:"id"`
	WorkerID   string                `json:"worker_id"`
	TemplateID string                `json:"template_id"`
	Status     models.ContractStatus `json:"status"`
	Content    string                `json:"content"`
	SignedAt   *time.Time            `json:"signed_at,omitempty"`
}

func BasicConvert(rec dbmodels.WorkerBasicContract) BasicView {
	view := BasicView{
		ID:         rec.ID,
		WorkerID:   rec.WorkerID,
		TemplateID: rec.TemplateID,
		Status:     rec.Status,
		Content:    rec.ContentSnapshot,
	}
	if !rec.SignedAt.IsZero() {
		view.SignedAt = &rec.SignedAt
	}
	return view
}
