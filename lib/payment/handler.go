package paymenthandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	xlsexport "gig-works-backend/lib/export/xls"
	linepush "gig-works-backend/lib/line-push"
	paymentschedulestore "gig-works-backend/lib/payment/schedule-store"
	paymentstore "gig-works-backend/lib/payment/store"
	workerstore "gig-works-backend/lib/worker/store"
	"gig-works-backend/models"
	paymentapimodels "gig-works-backend/models/api/payment"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Generate(request paymentapimodels.GenerateRequest) (paymentapimodels.NoticeView, error)
	SetStatus(noticeID string, status models.PaymentNoticeStatus, meta dbmodels.SignMeta) (notified bool, err error)
	WorkerApprove(callerWorkerID, noticeID string, meta dbmodels.SignMeta) error
	GetByID(id string) (paymentapimodels.NoticeView, error)
	ListByMonth(month string) ([]paymentapimodels.NoticeView, error)
	ListByWorker(workerID string) ([]paymentapimodels.NoticeView, error)
	UpsertSchedule(request paymentapimodels.ScheduleRequest) (id string, err error)
	ListSchedules() ([]paymentapimodels.ScheduleView, error)
	ExportRegister(month string) (fileName string, file *bytes.Buffer, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         paymentstore.NewInstance(db.DB),
		scheduleStore: paymentschedulestore.NewInstance(db.DB),
		workerStore:   workerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store         paymentstore.Provider
	scheduleStore paymentschedulestore.Provider
	workerStore   workerstore.Provider
}

// CalcTax computes the withholding from the detail total. Amounts are kept
// in whole units, the rounding point matches the issued paper documents.
func CalcTax(total int) int {
	return int(math.Round(float64(total)*1.1)) - total
}

// Generate builds the monthly notice for a worker. One notice per worker and
// month: an existing draft is regenerated in place, an already issued notice
// is immutable.
func (i impl) Generate(request paymentapimodels.GenerateRequest) (paymentapimodels.NoticeView, error) {
	logger := log.
		WithField("worker_id", request.WorkerID).
		WithField("month", request.Month)
	worker, err := i.workerStore.GetByID(request.WorkerID)
	if err != nil {
		return paymentapimodels.NoticeView{}, err
	}
	if worker == nil {
		return paymentapimodels.NoticeView{}, models.ErrWorkerNotFound
	}
	total := 0
	for _, item := range request.Details {
		total += item.Amount
	}
	tax := CalcTax(total)
	details, err := json.Marshal(request.Details)
	if err != nil {
		return paymentapimodels.NoticeView{}, errors.Wrap(err, "failed to encode the notice details")
	}
	existed, err := i.store.FindByWorkerAndMonth(request.WorkerID, request.Month)
	if err != nil {
		return paymentapimodels.NoticeView{}, err
	}
	noticeID := ""
	if existed != nil {
		if existed.Status != models.PaymentNoticeStatusDraft {
			return paymentapimodels.NoticeView{}, errors.Errorf("the notice for %v is already %v", request.Month, existed.Status.ToHuman())
		}
		err = i.store.Update(existed.ID, map[string]interface{}{
			"TotalAmount": total,
			"TaxAmount":   tax,
			"Details":     string(details),
		})
		if err != nil {
			logger.WithError(err).Error("failed to regenerate the payment notice")
			return paymentapimodels.NoticeView{}, err
		}
		noticeID = existed.ID
		logger.WithField("notice_id", noticeID).Info("payment notice regenerated")
	} else {
		noticeID, err = i.store.Create(dbmodels.PaymentNotice{
			WorkerID:    request.WorkerID,
			Month:       request.Month,
			Status:      models.PaymentNoticeStatusDraft,
			TotalAmount: total,
			TaxAmount:   tax,
			Details:     string(details),
		})
		if err != nil {
			logger.WithError(err).Error("failed to generate the payment notice")
			return paymentapimodels.NoticeView{}, err
		}
		logger.WithField("notice_id", noticeID).Info("payment notice generated")
	}
	return i.GetByID(noticeID)
}

// SetStatus moves a notice along the draft-issued-approved-paid flow.
// Issuing and paying push a message to the worker, delivery is best effort.
func (i impl) SetStatus(noticeID string, status models.PaymentNoticeStatus, meta dbmodels.SignMeta) (notified bool, err error) {
	logger := log.
		WithField("notice_id", noticeID).
		WithField("status", status)
	rec, err := i.store.GetByID(noticeID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, models.ErrNotFound
	}
	allowed, err := rec.IsAllowStatusChange(status)
	if err != nil {
		return false, err
	}
	if !allowed {
		return false, nil
	}
	updMap := map[string]interface{}{"Status": status}
	switch status {
	case models.PaymentNoticeStatusIssued:
		updMap["IssuedAt"] = time.Now()
	case models.PaymentNoticeStatusApproved:
		updMap["ApprovedAt"] = time.Now()
		updMap["ApproveIP"] = meta.IP
		updMap["ApproveUA"] = meta.UserAgent
	case models.PaymentNoticeStatusPaid:
		updMap["PaidAt"] = time.Now()
	}
	err = i.store.Update(noticeID, updMap)
	if err != nil {
		logger.WithError(err).Error("failed to set the notice status")
		return false, err
	}
	logger.Info("notice status changed")

	switch status {
	case models.PaymentNoticeStatusIssued:
		return i.notifyWorker(rec,
			fmt.Sprintf("Your payment notice for %v has been issued (total %v). Please review and approve it in the worker portal.", rec.Month, rec.TotalAmount)), nil
	case models.PaymentNoticeStatusPaid:
		text := fmt.Sprintf("The payment for %v (total %v) has been transferred.", rec.Month, rec.TotalAmount)
		schedule, scheduleErr := i.scheduleStore.FindByMonth(rec.Month)
		if scheduleErr != nil {
			logger.WithError(scheduleErr).Error("failed to look up the payment schedule")
		} else if schedule != nil {
			text = fmt.Sprintf("The payment for %v (total %v) has been transferred, scheduled arrival %v.",
				rec.Month, rec.TotalAmount, schedule.PayDate.Format("2006-01-02"))
		}
		return i.notifyWorker(rec, text), nil
	}
	return false, nil
}

func (i impl) notifyWorker(rec *dbmodels.PaymentNotice, text string) (notified bool) {
	logger := log.WithField("notice_id", rec.ID)
	if rec.Worker == nil || !rec.Worker.HasMessagingIdentity() {
		logger.Info("notice message not pushed, the worker has no linked messaging identity")
		return false
	}
	err := linepush.Instance.Send(rec.Worker.LineUserID, text)
	if err != nil {
		logger.WithError(err).Error("failed to push the notice message")
		return false
	}
	return true
}

// WorkerApprove is the portal-side confirmation. The notice must belong to
// the caller and be issued.
func (i impl) WorkerApprove(callerWorkerID, noticeID string, meta dbmodels.SignMeta) error {
	logger := log.
		WithField("notice_id", noticeID).
		WithField("worker_id", callerWorkerID)
	rec, err := i.store.GetByID(noticeID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if rec.WorkerID != callerWorkerID {
		return models.ErrUnauthorized
	}
	allowed, err := rec.IsAllowStatusChange(models.PaymentNoticeStatusApproved)
	if err != nil {
		return err
	}
	if !allowed {
		return nil
	}
	err = i.store.Update(noticeID, map[string]interface{}{
		"Status":     models.PaymentNoticeStatusApproved,
		"ApprovedAt": time.Now(),
		"ApproveIP":  meta.IP,
		"ApproveUA":  meta.UserAgent,
	})
	if err != nil {
		logger.WithError(err).Error("failed to approve the notice")
		return err
	}
	logger.Info("notice approved by the worker")
	return nil
}

func (i impl) GetByID(id string) (paymentapimodels.NoticeView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return paymentapimodels.NoticeView{}, err
	}
	if rec == nil {
		return paymentapimodels.NoticeView{}, models.ErrNotFound
	}
	return paymentapimodels.NoticeConvert(*rec), nil
}

func (i impl) ListByMonth(month string) ([]paymentapimodels.NoticeView, error) {
	list, err := i.store.ListByMonth(month)
	if err != nil {
		return nil, err
	}
	result := make([]paymentapimodels.NoticeView, 0, len(list))
	for _, rec := range list {
		result = append(result, paymentapimodels.NoticeConvert(rec))
	}
	return result, nil
}

func (i impl) ListByWorker(workerID string) ([]paymentapimodels.NoticeView, error) {
	list, err := i.store.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	result := make([]paymentapimodels.NoticeView, 0, len(list))
	for _, rec := range list {
		result = append(result, paymentapimodels.NoticeConvert(rec))
	}
	return result, nil
}

func (i impl) UpsertSchedule(request paymentapimodels.ScheduleRequest) (id string, err error) {
	payDate, err := time.Parse("2006-01-02", request.PayDate)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse the pay date")
	}
	id, err = i.scheduleStore.Upsert(request.Month, payDate)
	if err != nil {
		log.WithField("month", request.Month).WithError(err).Error("failed to upsert the payment schedule")
		return "", err
	}
	return id, nil
}

func (i impl) ListSchedules() ([]paymentapimodels.ScheduleView, error) {
	list, err := i.scheduleStore.List()
	if err != nil {
		return nil, err
	}
	result := make([]paymentapimodels.ScheduleView, 0, len(list))
	for _, rec := range list {
		result = append(result, paymentapimodels.ScheduleConvert(rec))
	}
	return result, nil
}

func (i impl) ExportRegister(month string) (fileName string, file *bytes.Buffer, err error) {
	list, err := i.store.ListByMonth(month)
	if err != nil {
		return "", nil, err
	}
	file, err = xlsexport.Instance.ExportPaymentRegister(month, list)
	if err != nil {
		log.WithField("month", month).WithError(err).Error("failed to export the payment register")
		return "", nil, err
	}
	return fmt.Sprintf("payment_register_%v.xlsx", month), file, nil
}
