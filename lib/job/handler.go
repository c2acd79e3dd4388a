package jobhandler

import (
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	applicationstore "gig-works-backend/lib/job-application/store"
	jobstore "gig-works-backend/lib/job/store"
	reportstore "gig-works-backend/lib/report/store"
	"gig-works-backend/models"
	jobapimodels "gig-works-backend/models/api/job"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(request jobapimodels.Job) (id string, err error)
	Update(id string, request jobapimodels.Job) error
	GetByID(id string) (jobapimodels.JobView, error)
	Delete(id string) error
	List(filter dbmodels.JobFilter) ([]jobapimodels.JobView, error)
	SetStatus(id string, status models.JobStatus) error
	CompleteIfAllReported(jobID string) (completed bool, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            jobstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		reportStore:      reportstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            jobstore.Provider
	applicationStore applicationstore.Provider
	reportStore      reportstore.Provider
}

func (i impl) Create(request jobapimodels.Job) (id string, err error) {
	rec := recordFromRequest(request)
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create a job")
		return "", err
	}
	log.WithField("job_id", id).Info("job created")
	return id, nil
}

func (i impl) Update(id string, request jobapimodels.Job) error {
	updMap := map[string]interface{}{
		"ClientID":         request.ClientID,
		"Title":            request.Title,
		"Description":      request.Description,
		"IsFlexible":       request.IsFlexible,
		"BillingAmount":    request.BillingAmount,
		"RewardAmount":     request.RewardAmount,
		"ReportTemplateID": request.ReportTemplateID,
		"ContractTmplID":   request.ContractTmplID,
	}
	if request.StartAt != nil {
		updMap["StartAt"] = *request.StartAt
	}
	if request.EndAt != nil {
		updMap["EndAt"] = *request.EndAt
	}
	if request.PeriodStart != nil {
		updMap["PeriodStart"] = *request.PeriodStart
	}
	if request.PeriodEnd != nil {
		updMap["PeriodEnd"] = *request.PeriodEnd
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("failed to update a job")
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, models.ErrNotFound
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(filter dbmodels.JobFilter) ([]jobapimodels.JobView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(list))
	for _, rec := range list {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, nil
}

// SetStatus moves a job to any known status. Transitions are not restricted,
// the back office is trusted to correct mistakes in either direction.
func (i impl) SetStatus(id string, status models.JobStatus) error {
	if !status.IsKnown() {
		return models.ErrUnknownStatus
	}
	err := i.store.Update(id, map[string]interface{}{"Status": status})
	if err != nil {
		log.
			WithField("job_id", id).
			WithField("status", status).
			WithError(err).
			Error("failed to set the job status")
		return err
	}
	return nil
}

// CompleteIfAllReported moves the job to COMPLETED when every assigned or
// confirmed application has an approved report. A job without such
// applications is left untouched.
func (i impl) CompleteIfAllReported(jobID string) (completed bool, err error) {
	applications, err := i.applicationStore.ListByJob(jobID, []models.ApplicationStatus{
		models.ApplicationStatusAssigned,
		models.ApplicationStatusConfirmed,
	})
	if err != nil {
		return false, err
	}
	if len(applications) == 0 {
		return false, nil
	}
	for _, application := range applications {
		hasApproved, err := i.reportStore.HasApproved(application.ID)
		if err != nil {
			return false, err
		}
		if !hasApproved {
			return false, nil
		}
	}
	err = i.store.Update(jobID, map[string]interface{}{"Status": models.JobStatusCompleted})
	if err != nil {
		return false, err
	}
	log.WithField("job_id", jobID).Info("all reports approved, job completed")
	return true, nil
}

func recordFromRequest(request jobapimodels.Job) dbmodels.Job {
	rec := dbmodels.Job{
		ClientID:         request.ClientID,
		Title:            request.Title,
		Description:      request.Description,
		IsFlexible:       request.IsFlexible,
		BillingAmount:    request.BillingAmount,
		RewardAmount:     request.RewardAmount,
		ReportTemplateID: request.ReportTemplateID,
		ContractTmplID:   request.ContractTmplID,
	}
	if request.StartAt != nil {
		rec.StartAt = *request.StartAt
	}
	if request.EndAt != nil {
		rec.EndAt = *request.EndAt
	}
	if request.PeriodStart != nil {
		rec.PeriodStart = *request.PeriodStart
	}
	if request.PeriodEnd != nil {
		rec.PeriodEnd = *request.PeriodEnd
	}
	return rec
}
