package pdfexport

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "gig-works-backend/models/db"
)

// GenerateContract renders the stored content snapshot with the signature
// audit block appended. The snapshot is rendered as-is: the document must
// match what the worker saw at signing time.
func GenerateContract(rec dbmodels.JobIndividualContract) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateContract panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "", 12)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	title := "Individual work contract"
	if rec.Job != nil {
		title = fmt.Sprintf("Individual work contract - %v", rec.Job.Title)
	}
	pdf.SetFont("Arial", "B", 16)
	pdf.MultiCell(0, 8, title, "", "C", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	_, lineHt := pdf.GetFontSize()
	html := pdf.HTMLBasicNew()
	html.Write(lineHt, strings.ReplaceAll(rec.ContentSnapshot, "\n", "<br>"))

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.MultiCell(0, 6, "Signatures", "", "L", false)
	pdf.SetFont("Arial", "", 10)
	if !rec.SignedAt.IsZero() {
		signer := ""
		if rec.Worker != nil {
			signer = rec.Worker.GetFullName()
		}
		pdf.MultiCell(0, 5,
			fmt.Sprintf("Party B: %v, signed at %v (IP %v)", signer, rec.SignedAt.Format("2006-01-02 15:04"), rec.SignIP),
			"", "L", false)
	}
	if !rec.PartyASignedAt.IsZero() {
		pdf.MultiCell(0, 5,
			fmt.Sprintf("Party A: %v, signed at %v", rec.PartyASigner, rec.PartyASignedAt.Format("2006-01-02 15:04")),
			"", "L", false)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render the contract pdf")
	}
	return buf.Bytes(), nil
}
