package reportapimodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type SubmitRequest struct {
	ApplicationID string            `json:"application_id"`
	Content       string            `json:"content"`
	FieldValues   map[string]string `json:"field_values"`
}

func (r SubmitRequest) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application is required")
	}
	if r.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

type RejectRequest struct {
	Feedback string `json:"feedback"`
}

func (r RejectRequest) Validate() error {
	if r.Feedback == "" {
		return errors.New("feedback is required")
	}
	return nil
}

type ReportView struct {
	ID            string              `json:"id"`
	ApplicationID string              `json:"application_id"`
	JobTitle      string              `json:"job_title,omitempty"`
	WorkerName    string              `json:"worker_name,omitempty"`
	Status        models.ReportStatus `json:"status"`
	Content       string              `json:"content"`
	PhotoKeys     []string            `json:"photo_keys"`
	FieldValues   string              `json:"field_values,omitempty"`
	Feedback      string              `json:"feedback,omitempty"`
	SubmittedAt   time.Time           `json:"submitted_at"`
	JobCompleted  bool                `json:"job_completed,omitempty"` // set when an approval completed the parent job
}

func ReportConvert(rec dbmodels.Report) ReportView {
	view := ReportView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		Status:        rec.Status,
		Content:       rec.Content,
		PhotoKeys:     rec.PhotoKeys,
		FieldValues:   rec.FieldValues,
		Feedback:      rec.Feedback,
		SubmittedAt:   rec.UpdatedAt,
	}
	if rec.Application != nil {
		if rec.Application.Job != nil {
			view.JobTitle = rec.Application.Job.Title
		}
		if rec.Application.Worker != nil {
			view.WorkerName = rec.Application.Worker.GetFullName()
		}
	}
	return view
}

type TemplateView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Fields      string `json:"fields"`
}

func TemplateConvert(rec dbmodels.ReportTemplate) TemplateView {
	return TemplateView{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Fields:      rec.Fields,
	}
}
