package dbmodels

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Worker struct {
	BaseModel
	AccountID   string         `gorm:"type:varchar(36);index"`
	Account     *WorkerAccount `gorm:"foreignKey:AccountID"`
	WorkerCode  string         `gorm:"type:varchar(20);uniqueIndex"` // human-facing identifier printed on documents
	LastName    string         `gorm:"type:varchar(150)"`
	FirstName   string         `gorm:"type:varchar(150)"`
	LastKana    string         `gorm:"type:varchar(150)"`
	FirstKana   string         `gorm:"type:varchar(150)"`
	Email       string         `gorm:"type:varchar(255);index"`
	Phone       string         `gorm:"type:varchar(20)"`
	Address     string
	BirthDate   time.Time
	IsVerified  bool
	Tags        pq.StringArray `gorm:"type:text[]"`
	LineUserID  string         `gorm:"type:varchar(255)"` // linked messaging identity, empty when not linked
	BankName    string         `gorm:"type:varchar(255)"`
	BankBranch  string         `gorm:"type:varchar(255)"`
	AccountType string         `gorm:"type:varchar(20)"`
	AccountNo   string         `gorm:"type:varchar(20)"`
	HolderName  string         `gorm:"type:varchar(255)"`
}

func (w Worker) Validate() error {
	if w.Email == "" {
		return errors.New("email is required")
	}
	if w.LastName == "" && w.FirstName == "" {
		return errors.New("name is required")
	}
	return nil
}

func (w Worker) GetFullName() string {
	return w.LastName + " " + w.FirstName
}

// HasMessagingIdentity reports whether push messages can be delivered.
func (w Worker) HasMessagingIdentity() bool {
	return w.LineUserID != ""
}

// NewWorkerCode issues a human-facing worker identifier.
func NewWorkerCode() string {
	return "W-" + strings.ToUpper(uuid.NewString()[:8])
}

type WorkerFilter struct {
	Search     string `json:"search"`
	Tag        string `json:"tag"`
	IsVerified *bool  `json:"is_verified"`
}
