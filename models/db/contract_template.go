package dbmodels

import (
	"github.com/pkg/errors"

	"gig-works-backend/models"
)

type ContractTemplate struct {
	BaseModel
	Title    string              `gorm:"type:varchar(255)"`
	Body     string              // contract text; copied into contracts at issue/sign time
	Kind     models.ContractKind `gorm:"type:varchar(20);index"`
	IsActive bool
}

func (t ContractTemplate) Validate() error {
	if t.Title == "" {
		return errors.New("title is required")
	}
	if t.Body == "" {
		return errors.New("body is required")
	}
	if t.Kind != models.ContractKindBasic && t.Kind != models.ContractKindIndividual {
		return errors.New("unknown contract kind")
	}
	return nil
}
