package jobhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
}

func (f *fakeJobStore) Create(rec dbmodels.Job) (string, error) { return rec.ID, nil }
func (f *fakeJobStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.jobs[id]
	if !ok {
		return nil
	}
	if status, ok := updMap["Status"]; ok {
		rec.Status = status.(models.JobStatus)
	}
	return nil
}
func (f *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) { return f.jobs[id], nil }
func (f *fakeJobStore) Delete(id string) error                   { return nil }
func (f *fakeJobStore) List(filter dbmodels.JobFilter) ([]dbmodels.Job, error) {
	return nil, nil
}

type fakeApplicationStore struct {
	applications []dbmodels.JobApplication
}

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	return rec.ID, nil
}
func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return nil, nil
}
func (f *fakeApplicationStore) IsExist(jobID, workerID string) (bool, error) { return false, nil }
func (f *fakeApplicationStore) ListByJob(jobID string, statuses []models.ApplicationStatus) ([]dbmodels.JobApplication, error) {
	list := []dbmodels.JobApplication{}
	for _, rec := range f.applications {
		if rec.JobID != jobID {
			continue
		}
		for _, status := range statuses {
			if rec.Status == status {
				list = append(list, rec)
				break
			}
		}
	}
	return list, nil
}
func (f *fakeApplicationStore) ListByWorker(workerID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

type fakeReportStore struct {
	approved map[string]bool // by application ID
}

func (f *fakeReportStore) Create(rec dbmodels.Report) (string, error)              { return rec.ID, nil }
func (f *fakeReportStore) Update(id string, updMap map[string]interface{}) error   { return nil }
func (f *fakeReportStore) GetByID(id string) (*dbmodels.Report, error)             { return nil, nil }
func (f *fakeReportStore) FindByApplication(id string) (*dbmodels.Report, error)   { return nil, nil }
func (f *fakeReportStore) HasApproved(applicationID string) (bool, error)          { return f.approved[applicationID], nil }
func (f *fakeReportStore) ListByApplication(id string) ([]dbmodels.Report, error)  { return nil, nil }
func (f *fakeReportStore) ListByStatus(s models.ReportStatus) ([]dbmodels.Report, error) {
	return nil, nil
}

func application(id, jobID string, status models.ApplicationStatus) dbmodels.JobApplication {
	return dbmodels.JobApplication{
		BaseModel: dbmodels.BaseModel{ID: id},
		JobID:     jobID,
		Status:    status,
	}
}

func TestSetStatus(t *testing.T) {
	jobStore := &fakeJobStore{jobs: map[string]*dbmodels.Job{
		"job-1": {BaseModel: dbmodels.BaseModel{ID: "job-1"}, Status: models.JobStatusOpen},
	}}
	handler := impl{store: jobStore}

	t.Run(`any known status check`, func(t *testing.T) {
		require.Nil(t, handler.SetStatus("job-1", models.JobStatusCancelled))
		require.Equal(t, models.JobStatusCancelled, jobStore.jobs["job-1"].Status)

		// moving back is allowed
		require.Nil(t, handler.SetStatus("job-1", models.JobStatusOpen))
		require.Equal(t, models.JobStatusOpen, jobStore.jobs["job-1"].Status)
	})

	t.Run(`unknown status check`, func(t *testing.T) {
		err := handler.SetStatus("job-1", models.JobStatus("BROKEN"))
		require.ErrorIs(t, err, models.ErrUnknownStatus)
		require.Equal(t, models.JobStatusOpen, jobStore.jobs["job-1"].Status)
	})
}

func TestCompleteIfAllReported(t *testing.T) {
	newHandler := func(applications []dbmodels.JobApplication, approved map[string]bool) (impl, *fakeJobStore) {
		jobStore := &fakeJobStore{jobs: map[string]*dbmodels.Job{
			"job-1": {BaseModel: dbmodels.BaseModel{ID: "job-1"}, Status: models.JobStatusInProgress},
		}}
		handler := impl{
			store:            jobStore,
			applicationStore: &fakeApplicationStore{applications: applications},
			reportStore:      &fakeReportStore{approved: approved},
		}
		return handler, jobStore
	}

	t.Run(`all approved check`, func(t *testing.T) {
		handler, jobStore := newHandler([]dbmodels.JobApplication{
			application("app-1", "job-1", models.ApplicationStatusAssigned),
			application("app-2", "job-1", models.ApplicationStatusConfirmed),
		}, map[string]bool{"app-1": true, "app-2": true})

		completed, err := handler.CompleteIfAllReported("job-1")
		require.Nil(t, err)
		require.True(t, completed)
		require.Equal(t, models.JobStatusCompleted, jobStore.jobs["job-1"].Status)
	})

	t.Run(`partially approved check`, func(t *testing.T) {
		handler, jobStore := newHandler([]dbmodels.JobApplication{
			application("app-1", "job-1", models.ApplicationStatusAssigned),
			application("app-2", "job-1", models.ApplicationStatusAssigned),
			application("app-3", "job-1", models.ApplicationStatusConfirmed),
		}, map[string]bool{"app-1": true, "app-3": true})

		completed, err := handler.CompleteIfAllReported("job-1")
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, models.JobStatusInProgress, jobStore.jobs["job-1"].Status)
	})

	t.Run(`no assigned applications check`, func(t *testing.T) {
		handler, jobStore := newHandler([]dbmodels.JobApplication{
			application("app-1", "job-1", models.ApplicationStatusApplied),
			application("app-2", "job-1", models.ApplicationStatusCancelled),
		}, map[string]bool{"app-1": true, "app-2": true})

		completed, err := handler.CompleteIfAllReported("job-1")
		require.Nil(t, err)
		require.False(t, completed)
		require.Equal(t, models.JobStatusInProgress, jobStore.jobs["job-1"].Status)
	})

	t.Run(`foreign applications are ignored check`, func(t *testing.T) {
		handler, jobStore := newHandler([]dbmodels.JobApplication{
			application("app-1", "job-1", models.ApplicationStatusAssigned),
			application("app-9", "job-2", models.ApplicationStatusAssigned),
		}, map[string]bool{"app-1": true})

		completed, err := handler.CompleteIfAllReported("job-1")
		require.Nil(t, err)
		require.True(t, completed)
		require.Equal(t, models.JobStatusCompleted, jobStore.jobs["job-1"].Status)
	})
}
