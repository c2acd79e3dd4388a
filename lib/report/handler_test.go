package reporthandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	filestorage "gig-works-backend/lib/file-storage"
	jobhandler "gig-works-backend/lib/job"
	"gig-works-backend/models"
	jobapimodels "gig-works-backend/models/api/job"
	reportapimodels "gig-works-backend/models/api/report"
	dbmodels "gig-works-backend/models/db"
)

type fakeReportStore struct {
	seq     int
	reports map[string]*dbmodels.Report
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: map[string]*dbmodels.Report{}}
}

func (f *fakeReportStore) Create(rec dbmodels.Report) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}
	f.seq++
	rec.ID = fmt.Sprintf("report-%d", f.seq)
	f.reports[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeReportStore) Update(id string, updMap map[string]interface{}) error {
	rec := f.reports[id]
	for key, value := range updMap {
		switch key {
		case "Status":
			rec.Status = value.(models.ReportStatus)
		case "Content":
			rec.Content = value.(string)
		case "FieldValues":
			rec.FieldValues = value.(string)
		case "Feedback":
			rec.Feedback = value.(string)
		case "PhotoKeys":
			rec.PhotoKeys = value.(pq.StringArray)
		}
	}
	return nil
}

func (f *fakeReportStore) GetByID(id string) (*dbmodels.Report, error) {
	return f.reports[id], nil
}

func (f *fakeReportStore) FindByApplication(applicationID string) (*dbmodels.Report, error) {
	for _, rec := range f.reports {
		if rec.ApplicationID == applicationID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeReportStore) HasApproved(applicationID string) (bool, error) {
	for _, rec := range f.reports {
		if rec.ApplicationID == applicationID && rec.Status == models.ReportStatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReportStore) ListByApplication(applicationID string) ([]dbmodels.Report, error) {
	return nil, nil
}

func (f *fakeReportStore) ListByStatus(status models.ReportStatus) ([]dbmodels.Report, error) {
	list := []dbmodels.Report{}
	for _, rec := range f.reports {
		if rec.Status == status {
			list = append(list, *rec)
		}
	}
	return list, nil
}

type fakeApplicationStore struct {
	applications map[string]*dbmodels.JobApplication
}

func (f *fakeApplicationStore) Create(rec dbmodels.JobApplication) (string, error) {
	return rec.ID, nil
}
func (f *fakeApplicationStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeApplicationStore) GetByID(id string) (*dbmodels.JobApplication, error) {
	return f.applications[id], nil
}
func (f *fakeApplicationStore) IsExist(jobID, workerID string) (bool, error) { return false, nil }
func (f *fakeApplicationStore) ListByJob(jobID string, statuses []models.ApplicationStatus) ([]dbmodels.JobApplication, error) {
	return nil, nil
}
func (f *fakeApplicationStore) ListByWorker(workerID string) ([]dbmodels.JobApplication, error) {
	return nil, nil
}

type fakeJobProvider struct {
	completed      bool
	evaluatedJobID string
}

func (f *fakeJobProvider) Create(request jobapimodels.Job) (string, error) { return "", nil }
func (f *fakeJobProvider) Update(id string, request jobapimodels.Job) error {
	return nil
}
func (f *fakeJobProvider) GetByID(id string) (jobapimodels.JobView, error) {
	return jobapimodels.JobView{}, nil
}
func (f *fakeJobProvider) Delete(id string) error { return nil }
func (f *fakeJobProvider) List(filter dbmodels.JobFilter) ([]jobapimodels.JobView, error) {
	return nil, nil
}
func (f *fakeJobProvider) SetStatus(id string, status models.JobStatus) error { return nil }
func (f *fakeJobProvider) CompleteIfAllReported(jobID string) (bool, error) {
	f.evaluatedJobID = jobID
	return f.completed, nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) UploadReportPhoto(ctx context.Context, reportID, fileName string, file []byte) (string, error) {
	key := "reports/" + reportID + "/" + fileName
	f.objects[key] = file
	return key, nil
}

func (f *fakeStorage) GetReportPhoto(ctx context.Context, objectKey string) ([]byte, error) {
	return f.objects[objectKey], nil
}

func seedApplication(store *fakeApplicationStore, id, workerID string, status models.ApplicationStatus) {
	store.applications[id] = &dbmodels.JobApplication{
		BaseModel: dbmodels.BaseModel{ID: id},
		JobID:     "job-1",
		WorkerID:  workerID,
		Status:    status,
		Job: &dbmodels.Job{
			BaseModel:        dbmodels.BaseModel{ID: "job-1"},
			ReportTemplateID: "template-1",
		},
	}
}

func newTestHandler() (impl, *fakeReportStore, *fakeApplicationStore) {
	reportStore := newFakeReportStore()
	applicationStore := &fakeApplicationStore{applications: map[string]*dbmodels.JobApplication{}}
	handler := impl{
		store:            reportStore,
		applicationStore: applicationStore,
	}
	return handler, reportStore, applicationStore
}

func TestSubmit(t *testing.T) {
	request := reportapimodels.SubmitRequest{
		ApplicationID: "app-1",
		Content:       "Shift finished, shelves restocked",
		FieldValues:   map[string]string{"hours": "8"},
	}

	t.Run(`first submission check`, func(t *testing.T) {
		handler, reportStore, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusAssigned)

		id, err := handler.Submit("worker-1", request)
		require.Nil(t, err)
		rec := reportStore.reports[id]
		require.Equal(t, models.ReportStatusSubmitted, rec.Status)
		require.Equal(t, "template-1", rec.TemplateID)
		require.Contains(t, rec.FieldValues, `"hours":"8"`)
	})

	t.Run(`foreign application check`, func(t *testing.T) {
		handler, _, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusAssigned)

		_, err := handler.Submit("worker-2", request)
		require.ErrorIs(t, err, models.ErrNotAssigned)
	})

	t.Run(`not workable application check`, func(t *testing.T) {
		handler, _, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusApplied)

		_, err := handler.Submit("worker-1", request)
		require.ErrorIs(t, err, models.ErrNotAssigned)
	})

	t.Run(`pending report blocks resubmission check`, func(t *testing.T) {
		handler, _, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusAssigned)

		_, err := handler.Submit("worker-1", request)
		require.Nil(t, err)
		_, err = handler.Submit("worker-1", request)
		require.ErrorIs(t, err, models.ErrAlreadySubmitted)
	})

	t.Run(`rejected report is resubmitted in place check`, func(t *testing.T) {
		handler, reportStore, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusAssigned)

		firstID, err := handler.Submit("worker-1", request)
		require.Nil(t, err)
		err = handler.Reject(firstID, "photos are missing")
		require.Nil(t, err)

		fixed := request
		fixed.Content = "Shift finished, photos attached"
		secondID, err := handler.Submit("worker-1", fixed)
		require.Nil(t, err)
		require.Equal(t, firstID, secondID)

		rec := reportStore.reports[firstID]
		require.Equal(t, models.ReportStatusSubmitted, rec.Status)
		require.Equal(t, "Shift finished, photos attached", rec.Content)
		require.Equal(t, "", rec.Feedback)
	})
}

func TestReject(t *testing.T) {
	t.Run(`feedback is recorded check`, func(t *testing.T) {
		handler, reportStore, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusAssigned)
		id, err := handler.Submit("worker-1", reportapimodels.SubmitRequest{
			ApplicationID: "app-1",
			Content:       "done",
		})
		require.Nil(t, err)

		err = handler.Reject(id, "too short")
		require.Nil(t, err)
		require.Equal(t, models.ReportStatusRejected, reportStore.reports[id].Status)
		require.Equal(t, "too short", reportStore.reports[id].Feedback)
	})
}

func TestUploadPhoto(t *testing.T) {
	newStorage := func() *fakeStorage {
		storage := &fakeStorage{objects: map[string][]byte{}}
		filestorage.Instance = storage
		return storage
	}

	seedReport := func(reportStore *fakeReportStore, workerID string) string {
		id, _ := reportStore.Create(dbmodels.Report{
			ApplicationID: "app-1",
			Status:        models.ReportStatusSubmitted,
			Content:       "done",
		})
		reportStore.reports[id].Application = &dbmodels.JobApplication{
			BaseModel: dbmodels.BaseModel{ID: "app-1"},
			WorkerID:  workerID,
		}
		return id
	}

	t.Run(`own report check`, func(t *testing.T) {
		handler, reportStore, _ := newTestHandler()
		storage := newStorage()
		id := seedReport(reportStore, "worker-1")

		key, err := handler.UploadPhoto(context.Background(), "worker-1", id, "shelf.jpg", []byte{1, 2, 3})
		require.Nil(t, err)
		require.Equal(t, []byte{1, 2, 3}, storage.objects[key])
		require.Equal(t, []string{key}, []string(reportStore.reports[id].PhotoKeys))
	})

	t.Run(`foreign report check`, func(t *testing.T) {
		handler, reportStore, _ := newTestHandler()
		newStorage()
		id := seedReport(reportStore, "worker-1")

		_, err := handler.UploadPhoto(context.Background(), "worker-2", id, "shelf.jpg", []byte{1})
		require.ErrorIs(t, err, models.ErrUnauthorized)
	})
}

func TestApprove(t *testing.T) {
	t.Run(`job re-evaluated check`, func(t *testing.T) {
		handler, reportStore, applicationStore := newTestHandler()
		seedApplication(applicationStore, "app-1", "worker-1", models.ApplicationStatusAssigned)
		id, err := handler.Submit("worker-1", reportapimodels.SubmitRequest{
			ApplicationID: "app-1",
			Content:       "done",
		})
		require.Nil(t, err)
		reportStore.reports[id].Application = applicationStore.applications["app-1"]

		jobFake := &fakeJobProvider{completed: true}
		jobhandler.Instance = jobFake

		jobCompleted, err := handler.Approve(id)
		require.Nil(t, err)
		require.True(t, jobCompleted)
		require.Equal(t, "job-1", jobFake.evaluatedJobID)
		require.Equal(t, models.ReportStatusApproved, reportStore.reports[id].Status)
	})

	t.Run(`unknown report check`, func(t *testing.T) {
		handler, _, _ := newTestHandler()
		_, err := handler.Approve("report-404")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
