package dbmodels

import (
	"time"

	"gig-works-backend/models"
)

// WorkerBasicContract is the standing agreement signed once per worker and
// template. ContentSnapshot is copied from the template at signing time, so
// later template edits never alter a signed contract.
type WorkerBasicContract struct {
	BaseModel
	WorkerID   string            `gorm:"type:varchar(36);index:idx_worker_template"`
	Worker     *Worker           `gorm:"foreignKey:WorkerID"`
	TemplateID string            `gorm:"type:varchar(36);index:idx_worker_template"`
	Template   *ContractTemplate `gorm:"foreignKey:TemplateID"`
	Status     models.ContractStatus `gorm:"type:varchar(50);index"`
	ContentSnapshot string
	SignedAt        time.Time
	SignIP          string `gorm:"type:varchar(50)"`
	SignUserAgent   string `gorm:"type:varchar(512)"`
	ConsentGiven    bool
}

// JobIndividualContract is the per-job agreement. The worker signature and
// the staff counter-signature (party A) are stamped independently; the
// counter-signature never changes Status.
type JobIndividualContract struct {
	BaseModel
	JobID      string            `gorm:"type:varchar(36);index"`
	Job        *Job              `gorm:"foreignKey:JobID"`
	WorkerID   string            `gorm:"type:varchar(36);index"`
	Worker     *Worker           `gorm:"foreignKey:WorkerID"`
	TemplateID string            `gorm:"type:varchar(36)"`
	Template   *ContractTemplate `gorm:"foreignKey:TemplateID"`
	Status     models.ContractStatus `gorm:"type:varchar(50);index"`
	ContentSnapshot string
	SignedAt        time.Time
	SignIP          string `gorm:"type:varchar(50)"`
	SignUserAgent   string `gorm:"type:varchar(512)"`
	ConsentGiven    bool
	PartyASignedAt  time.Time
	PartyASigner    string `gorm:"type:varchar(255)"`
	PartyASignIP    string `gorm:"type:varchar(50)"`
	PartyASignUA    string `gorm:"type:varchar(512)"`
}

func (c JobIndividualContract) IsSignable() bool {
	return c.Status == models.ContractStatusPending
}

// SignMeta carries the request metadata stamped on a signature. It is passed
// explicitly so signing never reaches into ambient request state.
type SignMeta struct {
	IP        string
	UserAgent string
	Consent   bool
}
