package contracthandler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gig-works-backend/config"
	linepush "gig-works-backend/lib/line-push"
	teamnotify "gig-works-backend/lib/team-notify"
	"gig-works-backend/models"
	contractapimodels "gig-works-backend/models/api/contract"
	dbmodels "gig-works-backend/models/db"
)

type fakeTemplateStore struct {
	seq       int
	templates map[string]*dbmodels.ContractTemplate
}

func (f *fakeTemplateStore) Create(rec dbmodels.ContractTemplate) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("template-%d", f.seq)
	f.templates[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeTemplateStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeTemplateStore) GetByID(id string) (*dbmodels.ContractTemplate, error) {
	return f.templates[id], nil
}

func (f *fakeTemplateStore) Delete(id string) error { return nil }

func (f *fakeTemplateStore) List(kind models.ContractKind) ([]dbmodels.ContractTemplate, error) {
	return nil, nil
}

type fakeBasicStore struct {
	seq       int
	contracts map[string]*dbmodels.WorkerBasicContract
}

func (f *fakeBasicStore) Create(rec dbmodels.WorkerBasicContract) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("basic-%d", f.seq)
	f.contracts[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeBasicStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.contracts[id]
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(models.ContractStatus)
		case "SignedAt":
			rec.SignedAt = value.(time.Time)
		case "SignIP":
			rec.SignIP = value.(string)
		case "SignUserAgent":
			rec.SignUserAgent = value.(string)
		case "ConsentGiven":
			rec.ConsentGiven = value.(bool)
		}
	}
	return nil
}

func (f *fakeBasicStore) GetByID(id string) (*dbmodels.WorkerBasicContract, error) {
	return f.contracts[id], nil
}

func (f *fakeBasicStore) FindByWorkerAndTemplate(workerID, templateID string, status models.ContractStatus) (*dbmodels.WorkerBasicContract, error) {
	for _, rec := range f.contracts {
		if rec.WorkerID == workerID && rec.TemplateID == templateID && rec.Status == status {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeBasicStore) ListByWorker(workerID string) ([]dbmodels.WorkerBasicContract, error) {
	return nil, nil
}

type fakeIndividualStore struct {
	seq       int
	contracts map[string]*dbmodels.JobIndividualContract
}

func (f *fakeIndividualStore) Create(rec dbmodels.JobIndividualContract) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("contract-%d", f.seq)
	f.contracts[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeIndividualStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.contracts[id]
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(models.ContractStatus)
		case "SignedAt":
			rec.SignedAt = value.(time.Time)
		case "SignIP":
			rec.SignIP = value.(string)
		case "SignUserAgent":
			rec.SignUserAgent = value.(string)
		case "ConsentGiven":
			rec.ConsentGiven = value.(bool)
		case "PartyASignedAt":
			rec.PartyASignedAt = value.(time.Time)
		case "PartyASigner":
			rec.PartyASigner = value.(string)
		case "PartyASignIP":
			rec.PartyASignIP = value.(string)
		case "PartyASignUA":
			rec.PartyASignUA = value.(string)
		}
	}
	return nil
}

func (f *fakeIndividualStore) GetByID(id string) (*dbmodels.JobIndividualContract, error) {
	return f.contracts[id], nil
}

func (f *fakeIndividualStore) ListByWorker(workerID string) ([]dbmodels.JobIndividualContract, error) {
	return nil, nil
}

func (f *fakeIndividualStore) ListByJob(jobID string) ([]dbmodels.JobIndividualContract, error) {
	return nil, nil
}

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error)               { return rec.ID, nil }
func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error)              { return f.jobs[id], nil }
func (f *fakeJobStore) Delete(id string) error                                { return nil }
func (f *fakeJobStore) List(filter dbmodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}

type fakeWorkerStore struct {
	workers map[string]*dbmodels.Worker
}

func (f *fakeWorkerStore) Create(rec dbmodels.Worker) (string, error)               { return rec.ID, nil }
func (f *fakeWorkerStore) Update(id string, updMap map[string]interface{}) error    { return nil }
func (f *fakeWorkerStore) GetByID(id string) (*dbmodels.Worker, error)              { return f.workers[id], nil }
func (f *fakeWorkerStore) FindByEmail(email string) (*dbmodels.Worker, error)       { return nil, nil }
func (f *fakeWorkerStore) FindByCode(workerCode string) (*dbmodels.Worker, error)   { return nil, nil }
func (f *fakeWorkerStore) FindByAccountID(accountID string) (*dbmodels.Worker, error) {
	return nil, nil
}
func (f *fakeWorkerStore) List(filter dbmodels.WorkerFilter) ([]dbmodels.Worker, error) {
	return nil, nil
}

type fakePush struct {
	sent []string
	fail bool
}

func (f *fakePush) Send(lineUserID, text string) error {
	if f.fail {
		return fmt.Errorf("push api unavailable")
	}
	f.sent = append(f.sent, text)
	return nil
}

type fakeTeamNotify struct{}

func (f *fakeTeamNotify) Send(text string) error { return nil }

func newTestHandler() (impl, *fakeTemplateStore, *fakeBasicStore, *fakeIndividualStore, *fakePush) {
	templateStore := &fakeTemplateStore{templates: map[string]*dbmodels.ContractTemplate{}}
	basicStore := &fakeBasicStore{contracts: map[string]*dbmodels.WorkerBasicContract{}}
	individualStore := &fakeIndividualStore{contracts: map[string]*dbmodels.JobIndividualContract{}}
	push := &fakePush{}
	linepush.Instance = push
	teamnotify.Instance = &fakeTeamNotify{}
	if config.Conf == nil {
		config.Conf = &config.Configuration{}
	}
	handler := impl{
		templateStore:   templateStore,
		basicStore:      basicStore,
		individualStore: individualStore,
		jobStore: &fakeJobStore{jobs: map[string]*dbmodels.Job{
			"job-1": {BaseModel: dbmodels.BaseModel{ID: "job-1"}, Title: "Night shift"},
		}},
		workerStore: &fakeWorkerStore{workers: map[string]*dbmodels.Worker{
			"worker-1": {
				BaseModel:  dbmodels.BaseModel{ID: "worker-1"},
				LastName:   "Sato",
				FirstName:  "Ken",
				LineUserID: "U-line-1",
			},
			"worker-2": {
				BaseModel: dbmodels.BaseModel{ID: "worker-2"},
				LastName:  "Tanaka",
				FirstName: "Yui",
			},
		}},
	}
	return handler, templateStore, basicStore, individualStore, push
}

func TestDuplicateTemplate(t *testing.T) {
	t.Run(`copy is an inactive draft check`, func(t *testing.T) {
		handler, templateStore, _, _, _ := newTestHandler()
		id, err := templateStore.Create(dbmodels.ContractTemplate{
			Title:    "Standard terms",
			Body:     "terms body",
			Kind:     models.ContractKindIndividual,
			IsActive: true,
		})
		require.Nil(t, err)

		newID, err := handler.DuplicateTemplate(id)
		require.Nil(t, err)
		require.NotEqual(t, id, newID)

		copied := templateStore.templates[newID]
		require.Equal(t, "Standard terms (copy)", copied.Title)
		require.Equal(t, "terms body", copied.Body)
		require.False(t, copied.IsActive)
	})

	t.Run(`unknown template check`, func(t *testing.T) {
		handler, _, _, _, _ := newTestHandler()
		_, err := handler.DuplicateTemplate("template-404")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestIssueIndividual(t *testing.T) {
	newRequest := func(templateStore *fakeTemplateStore, workerID string) contractapimodels.IssueRequest {
		templateID, _ := templateStore.Create(dbmodels.ContractTemplate{
			Title: "Per-job terms",
			Body:  "contract body",
			Kind:  models.ContractKindIndividual,
		})
		return contractapimodels.IssueRequest{
			JobID:      "job-1",
			WorkerID:   workerID,
			TemplateID: templateID,
		}
	}

	t.Run(`snapshot and push check`, func(t *testing.T) {
		handler, templateStore, _, individualStore, push := newTestHandler()

		view, err := handler.IssueIndividual(newRequest(templateStore, "worker-1"))
		require.Nil(t, err)
		require.Equal(t, models.ContractStatusPending, view.Status)
		require.True(t, view.Notified)
		require.Equal(t, 1, len(push.sent))
		require.Contains(t, push.sent[0], "Night shift")
		require.Equal(t, "contract body", individualStore.contracts[view.ID].ContentSnapshot)
	})

	t.Run(`no messaging identity check`, func(t *testing.T) {
		handler, templateStore, _, individualStore, push := newTestHandler()

		view, err := handler.IssueIndividual(newRequest(templateStore, "worker-2"))
		require.Nil(t, err)
		require.False(t, view.Notified)
		require.Equal(t, 0, len(push.sent))
		// the contract is still issued
		require.NotNil(t, individualStore.contracts[view.ID])
	})

	t.Run(`push failure is not an error check`, func(t *testing.T) {
		handler, templateStore, _, _, push := newTestHandler()
		push.fail = true

		view, err := handler.IssueIndividual(newRequest(templateStore, "worker-1"))
		require.Nil(t, err)
		require.False(t, view.Notified)
	})

	t.Run(`unknown job check`, func(t *testing.T) {
		handler, templateStore, _, _, _ := newTestHandler()
		request := newRequest(templateStore, "worker-1")
		request.JobID = "job-404"
		_, err := handler.IssueIndividual(request)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSignIndividual(t *testing.T) {
	seed := func(individualStore *fakeIndividualStore, status models.ContractStatus) string {
		id, _ := individualStore.Create(dbmodels.JobIndividualContract{
			JobID:    "job-1",
			WorkerID: "worker-1",
			Status:   status,
		})
		return id
	}
	meta := dbmodels.SignMeta{IP: "10.0.0.1", UserAgent: "portal", Consent: true}

	t.Run(`pending contract check`, func(t *testing.T) {
		handler, _, _, individualStore, _ := newTestHandler()
		id := seed(individualStore, models.ContractStatusPending)

		err := handler.SignIndividual("worker-1", id, meta)
		require.Nil(t, err)

		rec := individualStore.contracts[id]
		require.Equal(t, models.ContractStatusSigned, rec.Status)
		require.Equal(t, "10.0.0.1", rec.SignIP)
		require.True(t, rec.ConsentGiven)
		require.False(t, rec.SignedAt.IsZero())
	})

	t.Run(`already signed check`, func(t *testing.T) {
		handler, _, _, individualStore, _ := newTestHandler()
		id := seed(individualStore, models.ContractStatusSigned)

		err := handler.SignIndividual("worker-1", id, meta)
		require.ErrorIs(t, err, models.ErrAlreadySigned)
	})

	t.Run(`foreign contract check`, func(t *testing.T) {
		handler, _, _, individualStore, _ := newTestHandler()
		id := seed(individualStore, models.ContractStatusPending)

		err := handler.SignIndividual("worker-2", id, meta)
		require.ErrorIs(t, err, models.ErrUnauthorized)
		require.Equal(t, models.ContractStatusPending, individualStore.contracts[id].Status)
	})
}

func TestCounterSign(t *testing.T) {
	t.Run(`status untouched check`, func(t *testing.T) {
		handler, _, _, individualStore, _ := newTestHandler()
		id, _ := individualStore.Create(dbmodels.JobIndividualContract{
			JobID:    "job-1",
			WorkerID: "worker-1",
			Status:   models.ContractStatusSigned,
		})

		err := handler.CounterSign("Back Office Staff", id, dbmodels.SignMeta{IP: "10.0.0.2"})
		require.Nil(t, err)

		rec := individualStore.contracts[id]
		require.Equal(t, models.ContractStatusSigned, rec.Status)
		require.Equal(t, "Back Office Staff", rec.PartyASigner)
		require.False(t, rec.PartyASignedAt.IsZero())
	})
}

func TestSignBasic(t *testing.T) {
	meta := dbmodels.SignMeta{IP: "10.0.0.1", UserAgent: "portal", Consent: true}

	t.Run(`fresh signing inserts a snapshot check`, func(t *testing.T) {
		handler, templateStore, basicStore, _, _ := newTestHandler()
		templateID, _ := templateStore.Create(dbmodels.ContractTemplate{
			Title: "Standing agreement",
			Body:  "standing terms",
			Kind:  models.ContractKindBasic,
		})

		id, err := handler.SignBasic("worker-1", templateID, meta)
		require.Nil(t, err)

		rec := basicStore.contracts[id]
		require.Equal(t, models.ContractStatusSigned, rec.Status)
		require.Equal(t, "standing terms", rec.ContentSnapshot)
		require.True(t, rec.ConsentGiven)
	})

	t.Run(`repeat signing is rejected check`, func(t *testing.T) {
		handler, templateStore, _, _, _ := newTestHandler()
		templateID, _ := templateStore.Create(dbmodels.ContractTemplate{
			Title: "Standing agreement",
			Body:  "standing terms",
			Kind:  models.ContractKindBasic,
		})

		_, err := handler.SignBasic("worker-1", templateID, meta)
		require.Nil(t, err)
		_, err = handler.SignBasic("worker-1", templateID, meta)
		require.ErrorIs(t, err, models.ErrAlreadySigned)
	})

	t.Run(`pending row converted in place check`, func(t *testing.T) {
		handler, _, basicStore, _, _ := newTestHandler()
		pendingID, _ := basicStore.Create(dbmodels.WorkerBasicContract{
			WorkerID:   "worker-1",
			TemplateID: "template-1",
			Status:     models.ContractStatusPending,
		})

		id, err := handler.SignBasic("worker-1", "template-1", meta)
		require.Nil(t, err)
		require.Equal(t, pendingID, id)
		require.Equal(t, models.ContractStatusSigned, basicStore.contracts[id].Status)
	})

	t.Run(`unknown template check`, func(t *testing.T) {
		handler, _, _, _, _ := newTestHandler()
		_, err := handler.SignBasic("worker-1", "template-404", meta)
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
