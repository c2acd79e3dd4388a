package workerapimodels

import (
	"time"

	"github.com/pkg/errors"

	dbmodels "gig-works-backend/models/db"
)

type BankAccount struct {
	BankName    string `json:"bank_name"`
	BankBranch  string `json:"bank_branch"`
	AccountType string `json:"account_type"`
	AccountNo   string `json:"account_no"`
	HolderName  string `json:"holder_name"`
}

type Worker struct {
	LastName   string      `json:"last_name"`
	FirstName  string      `json:"first_name"`
	LastKana   string      `json:"last_kana"`
	FirstKana  string      `json:"first_kana"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	BirthDate  string      `json:"birth_date"` // YYYY-MM-DD
	LineUserID string      `json:"line_user_id"`
	Bank       BankAccount `json:"bank"`
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

type WorkerUpdate struct {
	LastName   *string `json:"last_name"`
	FirstName  *string `json:"first_name"`
	LastKana   *string `json:"last_kana"`
	FirstKana  *string `json:"first_kana"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	LineUserID *string `json:"line_user_id"`
	IsVerified *bool   `json:"is_verified"`
}

type WorkerView struct {
	ID         string      `json:"id"`
	WorkerCode string      `json:"worker_code"`
	LastName   string      `json:"last_name"`
	FirstName  string      `json:"first_name"`
	LastKana   string      `json:"last_kana"`
	FirstKana  string      `json:"first_kana"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	Address    string      `json:"address"`
	BirthDate  *time.Time  `json:"birth_date,omitempty"`
	IsVerified bool        `json:"is_verified"`
	Tags       []string    `json:"tags"`
	HasLine    bool        `json:"has_line"`
	Bank       BankAccount `json:"bank"`
}

func WorkerConvert(rec dbmodels.Worker) WorkerView {
	view := WorkerView{
		ID:         rec.ID,
		WorkerCode: rec.WorkerCode,
		LastName:   rec.LastName,
		FirstName:  rec.FirstName,
		LastKana:   rec.LastKana,
		FirstKana:  rec.FirstKana,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Address:    rec.Address,
		IsVerified: rec.IsVerified,
		Tags:       rec.Tags,
		HasLine:    rec.HasMessagingIdentity(),
		Bank: BankAccount{
			BankName:    rec.BankName,
			BankBranch:  rec.BankBranch,
			AccountType: rec.AccountType,
			AccountNo:   rec.AccountNo,
			HolderName:  rec.HolderName,
		},
	}
	if !rec.BirthDate.IsZero() {
		view.BirthDate = &rec.BirthDate
	}
	return view
}
