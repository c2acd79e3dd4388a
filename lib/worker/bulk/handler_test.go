package workerbulkhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gig-works-backend/lib/smtp"
	"gig-works-backend/models"
	workerapimodels "gig-works-backend/models/api/worker"
	dbmodels "gig-works-backend/models/db"
)

type fakeWorkerStore struct {
	seq        int
	workers    map[string]*dbmodels.Worker
	updates    map[string]map[string]interface{}
	failEmails map[string]bool // emails whose profile creation fails
}

func newFakeWorkerStore() *fakeWorkerStore {
	return &fakeWorkerStore{
		workers:    map[string]*dbmodels.Worker{},
		updates:    map[string]map[string]interface{}{},
		failEmails: map[string]bool{},
	}
}

func (f *fakeWorkerStore) Create(rec dbmodels.Worker) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	if f.failEmails[rec.Email] {
		return "", fmt.Errorf("insert failed")
	}
	f.seq++
	rec.ID = fmt.Sprintf("worker-%d", f.seq)
	f.workers[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeWorkerStore) Update(id string, updMap map[string]interface{}) error {
	if _, ok := f.workers[id]; !ok {
		return fmt.Errorf("record not found")
	}
	merged := f.updates[id]
	if merged == nil {
		merged = map[string]interface{}{}
	}
	for key, value := range updMap {
		merged[key] = value
	}
	f.updates[id] = merged
	return nil
}

func (f *fakeWorkerStore) GetByID(id string) (*dbmodels.Worker, error) {
	return f.workers[id], nil
}

func (f *fakeWorkerStore) FindByEmail(email string) (*dbmodels.Worker, error) {
	for _, rec := range f.workers {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerStore) FindByCode(workerCode string) (*dbmodels.Worker, error) {
	for _, rec := range f.workers {
		if rec.WorkerCode == workerCode {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerStore) FindByAccountID(accountID string) (*dbmodels.Worker, error) {
	return nil, nil
}

func (f *fakeWorkerStore) List(filter dbmodels.WorkerFilter) ([]dbmodels.Worker, error) {
	return nil, nil
}

type fakeAccountStore struct {
	seq      int
	accounts map[string]*dbmodels.WorkerAccount
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: map[string]*dbmodels.WorkerAccount{}}
}

func (f *fakeAccountStore) Create(rec dbmodels.WorkerAccount) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("account-%d", f.seq)
	f.accounts[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAccountStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeAccountStore) GetByID(id string) (*dbmodels.WorkerAccount, error) {
	return f.accounts[id], nil
}

func (f *fakeAccountStore) FindByEmail(email string) (*dbmodels.WorkerAccount, error) {
	return nil, nil
}

func (f *fakeAccountStore) Delete(id string) error {
	delete(f.accounts, id)
	return nil
}

type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) SendEMail(to, subject, message string) error {
	f.sent = append(f.sent, to)
	return nil
}

func newTestHandler() (impl, *fakeWorkerStore, *fakeAccountStore, *fakeMailer) {
	workerStore := newFakeWorkerStore()
	accountStore := newFakeAccountStore()
	mailer := &fakeMailer{}
	smtp.Instance = mailer
	handler := impl{
		workerStore:  workerStore,
		accountStore: accountStore,
	}
	return handler, workerStore, accountStore, mailer
}

func seedWorker(workerStore *fakeWorkerStore, email, code string) string {
	id, _ := workerStore.Create(dbmodels.Worker{
		WorkerCode: code,
		Email:      email,
		LastName:   "Sato",
	})
	return id
}

func TestImportWorkersCSV(t *testing.T) {
	t.Run(`update by email check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		id := seedWorker(workerStore, "sato@example.com", "W-1")

		result, err := handler.ImportWorkersCSV([][]string{
			{"email", "phone", "bank_name"},
			{"sato@example.com", "090-0000-0000", "Mizuho"},
		})
		require.Nil(t, err)
		require.Equal(t, 1, result.SuccessCount)
		require.Equal(t, 0, result.SkippedCount)
		require.Equal(t, 0, len(result.Errors))
		require.Equal(t, "090-0000-0000", workerStore.updates[id]["Phone"])
		require.Equal(t, "Mizuho", workerStore.updates[id]["BankName"])
	})

	t.Run(`unknown email is skipped check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		seedWorker(workerStore, "sato@example.com", "W-1")

		result, err := handler.ImportWorkersCSV([][]string{
			{"email", "phone"},
			{"sato@example.com", "090-0000-0000"},
			{"nobody@example.com", "090-1111-1111"},
		})
		require.Nil(t, err)
		require.Equal(t, 1, result.SuccessCount)
		require.Equal(t, 1, result.SkippedCount)
		require.Equal(t, 0, len(result.Errors))
	})

	t.Run(`empty cell clears the column check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		id := seedWorker(workerStore, "sato@example.com", "W-1")

		result, err := handler.ImportWorkersCSV([][]string{
			{"email", "phone"},
			{"sato@example.com", ""},
		})
		require.Nil(t, err)
		require.Equal(t, 1, result.SuccessCount)
		value, present := workerStore.updates[id]["Phone"]
		require.True(t, present)
		require.Nil(t, value)
	})

	t.Run(`unknown header is ignored check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		id := seedWorker(workerStore, "sato@example.com", "W-1")

		result, err := handler.ImportWorkersCSV([][]string{
			{"email", "favourite_color", "phone"},
			{"sato@example.com", "blue", "090-0000-0000"},
		})
		require.Nil(t, err)
		require.Equal(t, 1, result.SuccessCount)
		_, present := workerStore.updates[id]["favourite_color"]
		require.False(t, present)
		_, present = workerStore.updates[id]["FavouriteColor"]
		require.False(t, present)
	})

	t.Run(`ragged row is reported check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		seedWorker(workerStore, "sato@example.com", "W-1")

		result, err := handler.ImportWorkersCSV([][]string{
			{"email", "phone"},
			{"sato@example.com"},
			{"sato@example.com", "090-0000-0000"},
		})
		require.Nil(t, err)
		require.Equal(t, 1, result.SuccessCount)
		require.Equal(t, 1, len(result.Errors))
		require.Equal(t, 1, result.Errors[0].Row)
	})

	t.Run(`missing email column check`, func(t *testing.T) {
		handler, _, _, _ := newTestHandler()
		_, err := handler.ImportWorkersCSV([][]string{
			{"phone", "bank_name"},
			{"090-0000-0000", "Mizuho"},
		})
		require.NotNil(t, err)
	})

	t.Run(`empty file check`, func(t *testing.T) {
		handler, _, _, _ := newTestHandler()
		_, err := handler.ImportWorkersCSV([][]string{})
		require.NotNil(t, err)
	})
}

func TestBulkCreateWorkers(t *testing.T) {
	t.Run(`accounts and invitations check`, func(t *testing.T) {
		handler, workerStore, accountStore, mailer := newTestHandler()

		result := handler.BulkCreateWorkers(workerapimodels.BulkCreateRequest{
			Rows: []workerapimodels.BulkCreateRow{
				{Email: "sato@example.com", LastName: "Sato"},
				{Email: "tanaka@example.com", LastName: "Tanaka"},
			},
		})
		require.Equal(t, 2, result.SuccessCount)
		require.Equal(t, 0, len(result.Errors))
		require.Equal(t, 2, len(workerStore.workers))
		require.Equal(t, 2, len(accountStore.accounts))
		require.Equal(t, []string{"sato@example.com", "tanaka@example.com"}, mailer.sent)
	})

	t.Run(`partial failure keeps the batch going check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		workerStore.failEmails["tanaka@example.com"] = true

		result := handler.BulkCreateWorkers(workerapimodels.BulkCreateRequest{
			Rows: []workerapimodels.BulkCreateRow{
				{Email: "sato@example.com", LastName: "Sato"},
				{Email: "tanaka@example.com", LastName: "Tanaka"},
				{Email: "suzuki@example.com", LastName: "Suzuki"},
			},
		})
		require.Equal(t, 2, result.SuccessCount)
		require.Equal(t, 1, len(result.Errors))
		require.Equal(t, 2, result.Errors[0].Row)
		require.Equal(t, "tanaka@example.com", result.Errors[0].Key)
	})

	t.Run(`profile failure rolls back the account check`, func(t *testing.T) {
		handler, workerStore, accountStore, mailer := newTestHandler()
		workerStore.failEmails["tanaka@example.com"] = true

		result := handler.BulkCreateWorkers(workerapimodels.BulkCreateRequest{
			Rows: []workerapimodels.BulkCreateRow{
				{Email: "tanaka@example.com", LastName: "Tanaka"},
			},
		})
		require.Equal(t, 0, result.SuccessCount)
		require.Equal(t, 0, len(accountStore.accounts))
		require.Equal(t, 0, len(mailer.sent))
	})
}

func TestBulkUpdateBankAccounts(t *testing.T) {
	t.Run(`resolve by id and by code check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		byID := seedWorker(workerStore, "sato@example.com", "W-1")
		byCode := seedWorker(workerStore, "tanaka@example.com", "W-2")

		result := handler.BulkUpdateBankAccounts(workerapimodels.BankUpdateRequest{
			Rows: []workerapimodels.BankUpdateRow{
				{WorkerID: byID, BankName: "Mizuho", AccountNo: "1111111"},
				{WorkerCode: "W-2", BankName: "MUFG", AccountNo: "2222222"},
			},
		})
		require.Equal(t, 2, result.SuccessCount)
		require.Equal(t, 0, len(result.Errors))
		require.Equal(t, "Mizuho", workerStore.updates[byID]["BankName"])
		require.Equal(t, "MUFG", workerStore.updates[byCode]["BankName"])
	})

	t.Run(`unresolved rows are reported check`, func(t *testing.T) {
		handler, workerStore, _, _ := newTestHandler()
		seedWorker(workerStore, "sato@example.com", "W-1")

		result := handler.BulkUpdateBankAccounts(workerapimodels.BankUpdateRequest{
			Rows: []workerapimodels.BankUpdateRow{
				{WorkerCode: "W-1", BankName: "Mizuho"},
				{WorkerCode: "W-404", BankName: "MUFG"},
				{BankName: "SMBC"},
			},
		})
		require.Equal(t, 1, result.SuccessCount)
		require.Equal(t, 2, len(result.Errors))
		require.Equal(t, "W-404", result.Errors[0].Key)
		require.Equal(t, models.ErrWorkerNotFound.Error(), result.Errors[0].Message)
		require.Equal(t, "", result.Errors[1].Key)
	})
}
