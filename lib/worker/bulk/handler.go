package workerbulkhandler

import (
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	"gig-works-backend/lib/smtp"
	authutils "gig-works-backend/lib/utils/auth-utils"
	workeraccountstore "gig-works-backend/lib/worker/account-store"
	workerstore "gig-works-backend/lib/worker/store"
	"gig-works-backend/models"
	workerapimodels "gig-works-backend/models/api/worker"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	ImportWorkersCSV(records [][]string) (workerapimodels.BulkResult, error)
	BulkCreateWorkers(request workerapimodels.BulkCreateRequest) workerapimodels.BulkResult
	BulkUpdateBankAccounts(request workerapimodels.BankUpdateRequest) workerapimodels.BulkResult
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		workerStore:  workerstore.NewInstance(db.DB),
		accountStore: workeraccountstore.NewInstance(db.DB),
	}
}

type impl struct {
	workerStore  workerstore.Provider
	accountStore workeraccountstore.Provider
}

// csvColumns maps CSV header names onto updatable worker columns. Headers
// outside the map are ignored, email only identifies the row.
var csvColumns = map[string]string{
	"last_name":    "LastName",
	"first_name":   "FirstName",
	"last_kana":    "LastKana",
	"first_kana":   "FirstKana",
	"phone":        "Phone",
	"address":      "Address",
	"line_user_id": "LineUserID",
	"bank_name":    "BankName",
	"bank_branch":  "BankBranch",
	"account_type": "AccountType",
	"account_no":   "AccountNo",
	"holder_name":  "HolderName",
}

const emailColumn = "email"

// ImportWorkersCSV updates existing workers from CSV records, the first
// record being the header. The import never creates workers: rows with an
// unknown email are counted as skipped. An empty cell clears the column.
func (i impl) ImportWorkersCSV(records [][]string) (workerapimodels.BulkResult, error) {
	result := workerapimodels.BulkResult{
		Errors: []workerapimodels.RowError{},
	}
	if len(records) == 0 {
		return result, fmt.Errorf("the file has no header row")
	}
	header := records[0]
	emailIdx := -1
	for idx, name := range header {
		if name == emailColumn {
			emailIdx = idx
		}
	}
	if emailIdx == -1 {
		return result, fmt.Errorf("the header has no %v column", emailColumn)
	}
	for rowNum, record := range records[1:] {
		if len(record) != len(header) {
			result.Errors = append(result.Errors, workerapimodels.RowError{
				Row:     rowNum + 1,
				Message: "wrong number of columns",
			})
			continue
		}
		email := record[emailIdx]
		rowErr := i.importRow(header, record, email)
		switch {
		case rowErr == nil:
			result.SuccessCount++
		case rowErr == errRowSkipped:
			result.SkippedCount++
		default:
			result.Errors = append(result.Errors, workerapimodels.RowError{
				Row:     rowNum + 1,
				Key:     email,
				Message: rowErr.Error(),
			})
		}
	}
	log.
		WithField("success", result.SuccessCount).
		WithField("skipped", result.SkippedCount).
		WithField("failed", len(result.Errors)).
		Info("worker csv import done")
	return result, nil
}

var errRowSkipped = fmt.Errorf("row skipped")

func (i impl) importRow(header, record []string, email string) error {
	if email == "" {
		return fmt.Errorf("email cell is empty")
	}
	worker, err := i.workerStore.FindByEmail(email)
	if err != nil {
		return err
	}
	if worker == nil {
		return errRowSkipped
	}
	updMap := map[string]interface{}{}
	for idx, name := range header {
		column, allowed := csvColumns[name]
		if !allowed {
			continue
		}
		if record[idx] == "" {
			updMap[column] = nil
			continue
		}
		updMap[column] = record[idx]
	}
	return i.workerStore.Update(worker.ID, updMap)
}

// BulkCreateWorkers creates a login account and a worker profile per row.
// A profile failure compensating-deletes the freshly created account, so a
// failed row leaves nothing behind.
func (i impl) BulkCreateWorkers(request workerapimodels.BulkCreateRequest) workerapimodels.BulkResult {
	result := workerapimodels.BulkResult{
		Errors: []workerapimodels.RowError{},
	}
	for rowNum, row := range request.Rows {
		err := i.createWorker(row)
		if err != nil {
			result.Errors = append(result.Errors, workerapimodels.RowError{
				Row:     rowNum + 1,
				Key:     row.Email,
				Message: err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}
	return result
}

func (i impl) createWorker(row workerapimodels.BulkCreateRow) error {
	logger := log.WithField("email", row.Email)
	password := uuid.NewString()
	accountID, err := i.accountStore.Create(dbmodels.WorkerAccount{
		Email:    row.Email,
		Password: authutils.GetMD5Hash(password),
		IsActive: true,
	})
	if err != nil {
		return err
	}
	_, err = i.workerStore.Create(dbmodels.Worker{
		AccountID:  accountID,
		WorkerCode: dbmodels.NewWorkerCode(),
		Email:      row.Email,
		LastName:   row.LastName,
		FirstName:  row.FirstName,
		Phone:      row.Phone,
	})
	if err != nil {
		if delErr := i.accountStore.Delete(accountID); delErr != nil {
			logger.WithError(delErr).Error("failed to roll back the worker account")
		}
		return err
	}
	mailErr := smtp.Instance.SendEMail(row.Email, "Your worker account",
		fmt.Sprintf("An account has been created for you.\nLogin: %v\nTemporary password: %v\nPlease sign in and change the password.", row.Email, password))
	if mailErr != nil {
		logger.WithError(mailErr).Error("failed to send the invitation mail")
	}
	return nil
}

// BulkUpdateBankAccounts updates bank sub-records, resolving each row by the
// explicit worker id or by the human-facing worker code.
func (i impl) BulkUpdateBankAccounts(request workerapimodels.BankUpdateRequest) workerapimodels.BulkResult {
	result := workerapimodels.BulkResult{
		Errors: []workerapimodels.RowError{},
	}
	for rowNum, row := range request.Rows {
		err := i.updateBankRow(row)
		if err != nil {
			result.Errors = append(result.Errors, workerapimodels.RowError{
				Row:     rowNum + 1,
				Key:     row.GetKey(),
				Message: err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}
	return result
}

func (i impl) updateBankRow(row workerapimodels.BankUpdateRow) error {
	var worker *dbmodels.Worker
	var err error
	switch {
	case row.WorkerID != "":
		worker, err = i.workerStore.GetByID(row.WorkerID)
	case row.WorkerCode != "":
		worker, err = i.workerStore.FindByCode(row.WorkerCode)
	default:
		return fmt.Errorf("the row has no worker id and no worker code")
	}
	if err != nil {
		return err
	}
	if worker == nil {
		return models.ErrWorkerNotFound
	}
	return i.workerStore.Update(worker.ID, map[string]interface{}{
		"BankName":    row.BankName,
		"BankBranch":  row.BankBranch,
		"AccountType": row.AccountType,
		"AccountNo":   row.AccountNo,
		"HolderName":  row.HolderName,
	})
}
