package clientapimodels

import (
	"github.com/pkg/errors"

	dbmodels "gig-works-backend/models/db"
)

type Client struct {
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

func (c Client) Validate() error {
	if c.CompanyName == "" {
		return errors.New("company name is required")
	}
	return nil
}

type ClientView struct {
	Client
	ID string `json:"id"`
}

func ClientConvert(rec dbmodels.Client) ClientView {
	return ClientView{
		Client: Client{
			CompanyName:   rec.CompanyName,
			ContactPerson: rec.ContactPerson,
			Email:         rec.Email,
			Phone:         rec.Phone,
			Address:       rec.Address,
			Notes:         rec.Notes,
		},
		ID: rec.ID,
	}
}
