package applicationhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type fakeApplicationStore struct {
	seq          int
	applications map[string]*dbmodels.JobApplication
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{applications: map[string]*dbmodels.JobApplication{}}
}

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("app-%d", f.seq)
	f.applications[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.applications[id]
	if status, ok := updMap["Status"]; ok {
		rec.Status = status.(models.ApplicationStatus)
	}
	return nil
}

func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return f.applications[id], nil
}

func (f *fakeApplicationStore) IsExist(jobID, workerID string) (bool, error) {
	for _, rec := range f.applications {
		if rec.JobID == jobID && rec.WorkerID == workerID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) ListByJob(jobID string, statuses []models.ApplicationStatus) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

func (f *fakeApplicationStore) ListByWorker(workerID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}
func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) { return f.jobs[id], nil }
func (f *fakeJobStore) Delete(id string) error                   { return nil }
func (f *fakeJobStore) List(filter dbmodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}

func newTestHandler() (impl, *fakeApplicationStore) {
	applicationStore := newFakeApplicationStore()
	handler := impl{
		store: applicationStore,
		jobStore: &fakeJobStore{jobs: map[string]*dbmodels.Job{
			"job-1": {BaseModel: dbmodels.BaseModel{ID: "job-1"}, Status: models.JobStatusOpen},
		}},
	}
	return handler, applicationStore
}

func TestCreate(t *testing.T) {
	t.Run(`assign check`, func(t *testing.T) {
		handler, applicationStore := newTestHandler()
		id, err := handler.Assign("job-1", "worker-1")
		require.Nil(t, err)
		require.Equal(t, models.ApplicationStatusAssigned, applicationStore.applications[id].Status)
	})

	t.Run(`apply check`, func(t *testing.T) {
		handler, applicationStore := newTestHandler()
		id, err := handler.Apply("job-1", "worker-1")
		require.Nil(t, err)
		require.Equal(t, models.ApplicationStatusApplied, applicationStore.applications[id].Status)
	})

	t.Run(`duplicate application check`, func(t *testing.T) {
		handler, applicationStore := newTestHandler()
		_, err := handler.Apply("job-1", "worker-1")
		require.Nil(t, err)

		// neither a second application nor a staff assignment may duplicate the pair
		_, err = handler.Apply("job-1", "worker-1")
		require.ErrorIs(t, err, models.ErrDuplicateApplication)
		_, err = handler.Assign("job-1", "worker-1")
		require.ErrorIs(t, err, models.ErrDuplicateApplication)
		require.Equal(t, 1, len(applicationStore.applications))
	})

	t.Run(`unknown job check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Apply("job-404", "worker-1")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestApplicationSetStatus(t *testing.T) {
	t.Run(`any known status check`, func(t *testing.T) {
		handler, applicationStore := newTestHandler()
		id, err := handler.Apply("job-1", "worker-1")
		require.Nil(t, err)

		require.Nil(t, handler.SetStatus(id, models.ApplicationStatusAssigned))
		require.Nil(t, handler.SetStatus(id, models.ApplicationStatusCancelled))
		require.Nil(t, handler.SetStatus(id, models.ApplicationStatusApplied))
		require.Equal(t, models.ApplicationStatusApplied, applicationStore.applications[id].Status)
	})

	t.Run(`unknown status check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		id, err := handler.Apply("job-1", "worker-1")
		require.Nil(t, err)

		err = handler.SetStatus(id, models.ApplicationStatus("BROKEN"))
		require.ErrorIs(t, err, models.ErrUnknownStatus)
	})
}
