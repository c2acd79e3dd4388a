package dbmodels

import (
	"time"

	"github.com/pkg/errors"

	"gig-works-backend/models"
)

type Job struct {
	BaseModel
	ClientID         string  `gorm:"type:varchar(36);index"`
	Client           *Client `gorm:"foreignKey:ClientID"`
	Title            string  `gorm:"type:varchar(255)"`
	Description      string
	Status           models.JobStatus `gorm:"type:varchar(50);index"`
	StartAt          time.Time
	EndAt            time.Time
	IsFlexible       bool // flexible period instead of a fixed start/end window
	PeriodStart      time.Time
	PeriodEnd        time.Time
	BillingAmount    int
	RewardAmount     int
	ReportTemplateID string            `gorm:"type:varchar(36)"`
	ReportTemplate   *ReportTemplate   `gorm:"foreignKey:ReportTemplateID"`
	ContractTmplID   string            `gorm:"type:varchar(36)"`
	ContractTmpl     *ContractTemplate `gorm:"foreignKey:ContractTmplID"`
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

type JobFilter struct {
	ClientID string           `json:"client_id"`
	Status   models.JobStatus `json:"status"`
	Search   string           `json:"search"`
}
