package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	ExportPaymentRegister(month string, list []dbmodels.PaymentNotice) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var registerHeaders = []string{"Worker code", "Worker name", "Bank", "Branch", "Account type", "Account no", "Holder", "Total", "Tax", "Status"}

// ExportPaymentRegister builds the bank transfer register of a month's
// notices, one row per notice with the worker's bank sub-record.
func (i impl) ExportPaymentRegister(month string, list []dbmodels.PaymentNotice) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the xlsx header")
	}
	if len(list) != 0 {
		row, err = writeRegisterData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write the xlsx data table")
		}
	}
	f.SetSheetName(sheet, month)
	return f.WriteToBuffer()
}

func writeRegisterData(f *excelize.File, sheet string, list []dbmodels.PaymentNotice, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Worker code"
		col := 1
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.WorkerCode); err != nil {
				return row, err
			}
		}

		// "Worker name"
		col++
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.GetFullName()); err != nil {
				return row, err
			}
		}

		// "Bank"
		col++
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.BankName); err != nil {
				return row, err
			}
		}

		// "Branch"
		col++
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.BankBranch); err != nil {
				return row, err
			}
		}

		// "Account type"
		col++
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.AccountType); err != nil {
				return row, err
			}
		}

		// "Account no"
		col++
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.AccountNo); err != nil {
				return row, err
			}
		}

		// "Holder"
		col++
		if item.Worker != nil {
			if err := writeColumn(f, sheet, col, row, item.Worker.HolderName); err != nil {
				return row, err
			}
		}

		// "Total"
		col++
		if err := writeColumn(f, sheet, col, row, item.TotalAmount); err != nil {
			return row, err
		}

		// "Tax"
		col++
		if err := writeColumn(f, sheet, col, row, item.TaxAmount); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}
	}
	return row, nil
}
