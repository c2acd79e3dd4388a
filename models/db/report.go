package dbmodels

import (
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"gig-works-backend/models"
)

type Report struct {
	BaseModel
	ApplicationID string          `gorm:"type:varchar(36);index"`
	Application   *JobApplication `gorm:"foreignKey:ApplicationID"`
	TemplateID    string          `gorm:"type:varchar(36)"`
	Template      *ReportTemplate `gorm:"foreignKey:TemplateID"`
	Status        models.ReportStatus `gorm:"type:varchar(50);index"`
	Content       string
	PhotoKeys     pq.StringArray `gorm:"type:text[]"` // object keys in file storage
	FieldValues   string         `gorm:"type:jsonb"`  // custom field values keyed by field code
	Feedback      string         // staff feedback, filled on rejection
}

func (r Report) Validate() error {
	if r.ApplicationID == "" {
		return errors.New("application is required")
	}
	if r.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

// BlocksResubmission reports whether this report prevents filing another one
// for the same application. A rejected report is resubmittable in place.
func (r Report) BlocksResubmission() bool {
	return r.Status == models.ReportStatusSubmitted || r.Status == models.ReportStatusApproved
}

type ReportTemplate struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Description string
	Fields      string `gorm:"type:jsonb"` // custom field definitions
}
