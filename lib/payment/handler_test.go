package paymenthandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	linepush "gig-works-backend/lib/line-push"
	"gig-works-backend/models"
	paymentapimodels "gig-works-backend/models/api/payment"
	dbmodels "gig-works-backend/models/db"
)

type fakeNoticeStore struct {
	seq     int
	notices map[string]*dbmodels.PaymentNotice
}

func newFakeNoticeStore() *fakeNoticeStore {
	return &fakeNoticeStore{notices: map[string]*dbmodels.PaymentNotice{}}
}

func (f *fakeNoticeStore) Create(rec dbmodels.PaymentNotice) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("notice-%d", f.seq)
	f.notices[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeNoticeStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.notices[id]
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(models.PaymentNoticeStatus)
		case "TotalAmount":
			rec.TotalAmount = value.(int)
		case "TaxAmount":
			rec.TaxAmount = value.(int)
		case "Details":
			rec.Details = value.(string)
		case "IssuedAt":
			rec.IssuedAt = value.(time.Time)
		case "ApprovedAt":
			rec.ApprovedAt = value.(time.Time)
		case "ApproveIP":
			rec.ApproveIP = value.(string)
		case "ApproveUA":
			rec.ApproveUA = value.(string)
		case "PaidAt":
			rec.PaidAt = value.(time.Time)
		}
	}
	return nil
}

func (f *fakeNoticeStore) GetByID(id string) (*dbmodels.PaymentNotice, error) {
	return f.notices[id], nil
}

func (f *fakeNoticeStore) FindByWorkerAndMonth(workerID, month string) (*dbmodels.PaymentNotice, error) {
	for _, rec := range f.notices {
		if rec.WorkerID == workerID && rec.Month == month {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeNoticeStore) ListByMonth(month string) ([]dbmodels.PaymentNotice, error) {
	list := []dbmodels.PaymentNotice{}
	for _, rec := range f.notices {
		if rec.Month == month {
			list = append(list, *rec)
		}
	}
	return list, nil
}

func (f *fakeNoticeStore) ListByWorker(workerID string) ([]dbmodels.PaymentNotice, error) {
	list := []dbmodels.PaymentNotice{}
	for _, rec := range f.notices {
		if rec.WorkerID == workerID {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeScheduleStore struct {
	schedules map[string]*dbmodels.PaymentSchedule
}

func (f *fakeScheduleStore) Upsert(month string, payDate time.Time) (string, error) {
	f.schedules[month] = &dbmodels.PaymentSchedule{Month: month, PayDate: payDate}
	return "schedule-1", nil
}

func (f *fakeScheduleStore) FindByMonth(month string) (*dbmodels.PaymentSchedule, error) {
	return f.schedules[month], nil
}

func (f *fakeScheduleStore) List() ([]dbmodels.PaymentSchedule, error) {
	list := []dbmodels.PaymentSchedule{}
	for _, rec := range f.schedules {
		list = append(list, *rec)
	}
	return list, nil
}

type fakeWorkerStore struct {
	workers map[string]*dbmodels.Worker
}

func (f *fakeWorkerStore) Create(rec dbmodels.Worker) (string, error) { return rec.ID, nil }
func (f *fakeWorkerStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeWorkerStore) GetByID(id string) (*dbmodels.Worker, error) { return f.workers[id], nil }
func (f *fakeWorkerStore) FindByEmail(email string) (*dbmodels.Worker, error) {
	return nil, nil
}
func (f *fakeWorkerStore) FindByCode(workerCode string) (*dbmodels.Worker, error) {
	return nil, nil
}
func (f *fakeWorkerStore) FindByAccountID(accountID string) (*dbmodels.Worker, error) {
	return nil, nil
}
func (f *fakeWorkerStore) List(filter dbmodels.WorkerFilter) ([]dbmodels.Worker, error) {
	return nil, nil
}

type fakePush struct {
	sent []string
}

func (f *fakePush) Send(lineUserID, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func newTestHandler() (impl, *fakeNoticeStore, *fakeScheduleStore, *fakePush) {
	noticeStore := newFakeNoticeStore()
	scheduleStore := &fakeScheduleStore{schedules: map[string]*dbmodels.PaymentSchedule{}}
	push := &fakePush{}
	linepush.Instance = push
	handler := impl{
		store:         noticeStore,
		scheduleStore: scheduleStore,
		workerStore: &fakeWorkerStore{workers: map[string]*dbmodels.Worker{
			"worker-1": {
				BaseModel:  dbmodels.BaseModel{ID: "worker-1"},
				LastName:   "Sato",
				FirstName:  "Ken",
				LineUserID: "U-line-1",
			},
		}},
	}
	return handler, noticeStore, scheduleStore, push
}

func TestCalcTax(t *testing.T) {
	t.Run(`whole amounts check`, func(t *testing.T) {
		require.Equal(t, 1000, CalcTax(10000))
		require.Equal(t, 0, CalcTax(0))
	})

	t.Run(`rounding check`, func(t *testing.T) {
		// 333 * 1.1 = 366.3, rounds down
		require.Equal(t, 33, CalcTax(333))
		// 335 * 1.1 = 368.5, rounds up
		require.Equal(t, 34, CalcTax(335))
	})
}

func TestGenerate(t *testing.T) {
	request := paymentapimodels.GenerateRequest{
		WorkerID: "worker-1",
		Month:    "2026-08",
		Details: []paymentapimodels.DetailItem{
			{JobTitle: "Warehouse shift", Amount: 12000},
			{JobTitle: "Delivery run", Amount: 8000},
		},
	}

	t.Run(`new draft check`, func(t *testing.T) {
		handler, noticeStore, _, _ := newTestHandler()
		view, err := handler.Generate(request)
		require.Nil(t, err)
		require.Equal(t, models.PaymentNoticeStatusDraft, view.Status)
		require.Equal(t, 20000, view.TotalAmount)
		require.Equal(t, CalcTax(20000), view.TaxAmount)
		require.Equal(t, 1, len(noticeStore.notices))
	})

	t.Run(`draft regenerated in place check`, func(t *testing.T) {
		handler, noticeStore, _, _ := newTestHandler()
		first, err := handler.Generate(request)
		require.Nil(t, err)

		changed := request
		changed.Details = []paymentapimodels.DetailItem{{JobTitle: "Warehouse shift", Amount: 5000}}
		second, err := handler.Generate(changed)
		require.Nil(t, err)
		require.Equal(t, first.ID, second.ID)
		require.Equal(t, 5000, second.TotalAmount)
		require.Equal(t, 1, len(noticeStore.notices))
	})

	t.Run(`issued notice is immutable check`, func(t *testing.T) {
		handler, _, _, _ := newTestHandler()
		view, err := handler.Generate(request)
		require.Nil(t, err)
		_, err = handler.SetStatus(view.ID, models.PaymentNoticeStatusIssued, dbmodels.SignMeta{})
		require.Nil(t, err)

		_, err = handler.Generate(request)
		require.NotNil(t, err)
	})

	t.Run(`unknown worker check`, func(t *testing.T) {
		handler, _, _, _ := newTestHandler()
		missing := request
		missing.WorkerID = "worker-404"
		_, err := handler.Generate(missing)
		require.ErrorIs(t, err, models.ErrWorkerNotFound)
	})
}

func TestSetStatus(t *testing.T) {
	worker := &dbmodels.Worker{
		BaseModel:  dbmodels.BaseModel{ID: "worker-1"},
		LastName:   "Sato",
		FirstName:  "Ken",
		LineUserID: "U-line-1",
	}

	seed := func(noticeStore *fakeNoticeStore, status models.PaymentNoticeStatus, withLine bool) string {
		rec := dbmodels.PaymentNotice{
			WorkerID:    "worker-1",
			Month:       "2026-08",
			Status:      status,
			TotalAmount: 20000,
			TaxAmount:   2000,
			Worker:      worker,
		}
		if !withLine {
			noLine := *worker
			noLine.LineUserID = ""
			rec.Worker = &noLine
		}
		id, _ := noticeStore.Create(rec)
		return id
	}

	t.Run(`issue pushes a message check`, func(t *testing.T) {
		handler, noticeStore, _, push := newTestHandler()
		id := seed(noticeStore, models.PaymentNoticeStatusDraft, true)

		notified, err := handler.SetStatus(id, models.PaymentNoticeStatusIssued, dbmodels.SignMeta{})
		require.Nil(t, err)
		require.True(t, notified)
		require.Equal(t, 1, len(push.sent))
		require.Contains(t, push.sent[0], "2026-08")
		require.False(t, noticeStore.notices[id].IssuedAt.IsZero())
	})

	t.Run(`no messaging identity check`, func(t *testing.T) {
		handler, noticeStore, _, push := newTestHandler()
		id := seed(noticeStore, models.PaymentNoticeStatusDraft, false)

		notified, err := handler.SetStatus(id, models.PaymentNoticeStatusIssued, dbmodels.SignMeta{})
		require.Nil(t, err)
		require.False(t, notified)
		require.Equal(t, 0, len(push.sent))
		// the status change is still committed
		require.Equal(t, models.PaymentNoticeStatusIssued, noticeStore.notices[id].Status)
	})

	t.Run(`paid message carries the schedule date check`, func(t *testing.T) {
		handler, noticeStore, scheduleStore, push := newTestHandler()
		id := seed(noticeStore, models.PaymentNoticeStatusApproved, true)
		payDate, _ := time.Parse("2006-01-02", "2026-09-15")
		_, err := scheduleStore.Upsert("2026-08", payDate)
		require.Nil(t, err)

		notified, err := handler.SetStatus(id, models.PaymentNoticeStatusPaid, dbmodels.SignMeta{})
		require.Nil(t, err)
		require.True(t, notified)
		require.Contains(t, push.sent[0], "2026-09-15")
	})

	t.Run(`paid message without a schedule check`, func(t *testing.T) {
		handler, noticeStore, _, push := newTestHandler()
		id := seed(noticeStore, models.PaymentNoticeStatusApproved, true)

		notified, err := handler.SetStatus(id, models.PaymentNoticeStatusPaid, dbmodels.SignMeta{})
		require.Nil(t, err)
		require.True(t, notified)
		require.Contains(t, push.sent[0], "has been transferred.")
	})

	t.Run(`skipping a step is rejected check`, func(t *testing.T) {
		handler, noticeStore, _, _ := newTestHandler()
		id := seed(noticeStore, models.PaymentNoticeStatusDraft, true)

		_, err := handler.SetStatus(id, models.PaymentNoticeStatusPaid, dbmodels.SignMeta{})
		require.NotNil(t, err)
		require.Equal(t, models.PaymentNoticeStatusDraft, noticeStore.notices[id].Status)
	})

	t.Run(`unknown notice check`, func(t *testing.T) {
		handler, _, _, _ := newTestHandler()
		_, err := handler.SetStatus("notice-404", models.PaymentNoticeStatusIssued, dbmodels.SignMeta{})
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestWorkerApprove(t *testing.T) {
	t.Run(`approve own notice check`, func(t *testing.T) {
		handler, noticeStore, _, _ := newTestHandler()
		id, _ := noticeStore.Create(dbmodels.PaymentNotice{
			WorkerID: "worker-1",
			Month:    "2026-08",
			Status:   models.PaymentNoticeStatusIssued,
		})

		err := handler.WorkerApprove("worker-1", id, dbmodels.SignMeta{IP: "10.0.0.1", UserAgent: "portal"})
		require.Nil(t, err)
		require.Equal(t, models.PaymentNoticeStatusApproved, noticeStore.notices[id].Status)
		require.Equal(t, "10.0.0.1", noticeStore.notices[id].ApproveIP)
	})

	t.Run(`foreign notice check`, func(t *testing.T) {
		handler, noticeStore, _, _ := newTestHandler()
		id, _ := noticeStore.Create(dbmodels.PaymentNotice{
			WorkerID: "worker-1",
			Month:    "2026-08",
			Status:   models.PaymentNoticeStatusIssued,
		})

		err := handler.WorkerApprove("worker-2", id, dbmodels.SignMeta{})
		require.ErrorIs(t, err, models.ErrUnauthorized)
		require.Equal(t, models.PaymentNoticeStatusIssued, noticeStore.notices[id].Status)
	})
}
