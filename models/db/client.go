package dbmodels

import "github.com/pkg/errors"

type Client struct {
	BaseModel
	CompanyName   string `gorm:"type:varchar(255)"`
	ContactPerson string `gorm:"type:varchar(255)"`
	Email         string `gorm:"type:varchar(255)"`
	Phone         string `gorm:"type:varchar(20)"`
	Address       string
	Notes         string
}

func (c Client) Validate() error {
	if c.CompanyName == "" {
		return errors.New("company name is required")
	}
	return nil
}
