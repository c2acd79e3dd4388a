package applicationhandler

import (
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	applicationstore "gig-works-backend/lib/job-application/store"
	jobstore "gig-works-backend/lib/job/store"
	"gig-works-backend/models"
	jobapimodels "gig-works-backend/models/api/job"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Assign(jobID, workerID string) (id string, err error)
	Apply(jobID, workerID string) (id string, err error)
	GetByID(id string) (jobapimodels.ApplicationView, error)
	SetStatus(id string, status models.ApplicationStatus) error
	SetWorkTime(id string, request jobapimodels.WorkTimeRequest) error
	ListByJob(jobID string) ([]jobapimodels.ApplicationView, error)
	ListByWorker(workerID string) ([]jobapimodels.ApplicationView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    applicationstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    applicationstore.Provider
	jobStore jobstore.Provider
}

// Assign links a worker to a job on the back-office side. One application
// per job and worker pair, repeated assignment is rejected.
func (i impl) Assign(jobID, workerID string) (id string, err error) {
	return i.create(jobID, workerID, models.ApplicationStatusAssigned)
}

// Apply files the worker's own application from the portal.
func (i impl) Apply(jobID, workerID string) (id string, err error) {
	return i.create(jobID, workerID, models.ApplicationStatusApplied)
}

func (i impl) create(jobID, workerID string, status models.ApplicationStatus) (id string, err error) {
	logger := log.
		WithField("job_id", jobID).
		WithField("worker_id", workerID)
	job, err := i.jobStore.GetByID(jobID)
	if err != nil {
		return "", err
	}
	if job == nil {
		return "", models.ErrNotFound
	}
	found, err := i.store.IsExist(jobID, workerID)
	if err != nil {
		logger.WithError(err).Error("failed to check an existing application")
		return "", err
	}
	if found {
		return "", models.ErrDuplicateApplication
	}
	id, err = i.store.Create(dbmodels.JobApplication{
		JobID:    jobID,
		WorkerID: workerID,
		Status:   status,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create an application")
		return "", err
	}
	logger.
		WithField("application_id", id).
		WithField("status", status).
		Info("application created")
	return id, nil
}

func (i impl) GetByID(id string) (jobapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return jobapimodels.ApplicationView{}, models.ErrNotFound
	}
	return jobapimodels.ApplicationConvert(*rec), nil
}

// SetStatus moves an application to any known status, the back office is
// trusted to correct mistakes in either direction.
func (i impl) SetStatus(id string, status models.ApplicationStatus) error {
	if !status.IsKnown() {
		return models.ErrUnknownStatus
	}
	err := i.store.Update(id, map[string]interface{}{"Status": status})
	if err != nil {
		log.
			WithField("application_id", id).
			WithField("status", status).
			WithError(err).
			Error("failed to set the application status")
		return err
	}
	return nil
}

func (i impl) SetWorkTime(id string, request jobapimodels.WorkTimeRequest) error {
	updMap := map[string]interface{}{}
	if request.ScheduledStartAt != nil {
		updMap["ScheduledStartAt"] = *request.ScheduledStartAt
	}
	if request.ScheduledEndAt != nil {
		updMap["ScheduledEndAt"] = *request.ScheduledEndAt
	}
	if request.ActualStartAt != nil {
		updMap["ActualStartAt"] = *request.ActualStartAt
	}
	if request.ActualEndAt != nil {
		updMap["ActualEndAt"] = *request.ActualEndAt
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithField("application_id", id).WithError(err).Error("failed to stamp work time")
		return err
	}
	return nil
}

func (i impl) ListByJob(jobID string) ([]jobapimodels.ApplicationView, error) {
	list, err := i.store.ListByJob(jobID, nil)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.ApplicationConvert(rec))
	}
	return result, nil
}

func (i impl) ListByWorker(workerID string) ([]jobapimodels.ApplicationView, error) {
	list, err := i.store.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.ApplicationView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.ApplicationConvert(rec))
	}
	return result, nil
}
