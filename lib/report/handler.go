package reporthandler

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	filestorage "gig-works-backend/lib/file-storage"
	jobhandler "gig-works-backend/lib/job"
	applicationstore "gig-works-backend/lib/job-application/store"
	reportstore "gig-works-backend/lib/report/store"
	reporttemplatestore "gig-works-backend/lib/report/template-store"
	"gig-works-backend/models"
	reportapimodels "gig-works-backend/models/api/report"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Submit(callerWorkerID string, request reportapimodels.SubmitRequest) (id string, err error)
	Approve(reportID string) (jobCompleted bool, err error)
	Reject(reportID, feedback string) error
	GetByID(id string) (reportapimodels.ReportView, error)
	ListByApplication(applicationID string) ([]reportapimodels.ReportView, error)
	ListSubmitted() ([]reportapimodels.ReportView, error)
	UploadPhoto(ctx context.Context, callerWorkerID, reportID, fileName string, file []byte) (objectKey string, err error)
	GetPhoto(ctx context.Context, objectKey string) ([]byte, error)

	CreateTemplate(title, description, fields string) (id string, err error)
	UpdateTemplate(id, title, description, fields string) error
	GetTemplate(id string) (reportapimodels.TemplateView, error)
	DeleteTemplate(id string) error
	ListTemplates() ([]reportapimodels.TemplateView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            reportstore.NewInstance(db.DB),
		templateStore:    reporttemplatestore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            reportstore.Provider
	templateStore    reporttemplatestore.Provider
	applicationStore applicationstore.Provider
}

// Submit files a work report for the caller's application. A submitted or
// approved report blocks another submission; a rejected one is resubmitted
// in place, keeping the rejection history out of the way of the reviewer.
func (i impl) Submit(callerWorkerID string, request reportapimodels.SubmitRequest) (id string, err error) {
	logger := log.
		WithField("application_id", request.ApplicationID).
		WithField("worker_id", callerWorkerID)
	application, err := i.applicationStore.GetByID(request.ApplicationID)
	if err != nil {
		return "", err
	}
	if application == nil || application.WorkerID != callerWorkerID {
		return "", models.ErrNotAssigned
	}
	if !application.CanSubmitReport() {
		return "", models.ErrNotAssigned
	}
	fieldValues, err := encodeFieldValues(request.FieldValues)
	if err != nil {
		return "", err
	}
	latest, err := i.store.FindByApplication(request.ApplicationID)
	if err != nil {
		return "", err
	}
	if latest != nil {
		if latest.BlocksResubmission() {
			return "", models.ErrAlreadySubmitted
		}
		err = i.store.Update(latest.ID, map[string]interface{}{
			"Status":      models.ReportStatusSubmitted,
			"Content":     request.Content,
			"FieldValues": fieldValues,
			"Feedback":    "",
		})
		if err != nil {
			logger.WithError(err).Error("failed to resubmit the report")
			return "", err
		}
		logger.WithField("report_id", latest.ID).Info("report resubmitted")
		return latest.ID, nil
	}
	templateID := ""
	if application.Job != nil {
		templateID = application.Job.ReportTemplateID
	}
	id, err = i.store.Create(dbmodels.Report{
		ApplicationID: request.ApplicationID,
		TemplateID:    templateID,
		Status:        models.ReportStatusSubmitted,
		Content:       request.Content,
		FieldValues:   fieldValues,
	})
	if err != nil {
		logger.WithError(err).Error("failed to submit the report")
		return "", err
	}
	logger.WithField("report_id", id).Info("report submitted")
	return id, nil
}

// Approve accepts the report and re-evaluates the parent job: when every
// assigned or confirmed application has an approved report the job is
// completed in the same call.
func (i impl) Approve(reportID string) (jobCompleted bool, err error) {
	logger := log.WithField("report_id", reportID)
	rec, err := i.store.GetByID(reportID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, models.ErrNotFound
	}
	err = i.store.Update(reportID, map[string]interface{}{"Status": models.ReportStatusApproved})
	if err != nil {
		logger.WithError(err).Error("failed to approve the report")
		return false, err
	}
	logger.Info("report approved")
	if rec.Application == nil {
		return false, nil
	}
	jobCompleted, err = jobhandler.Instance.CompleteIfAllReported(rec.Application.JobID)
	if err != nil {
		logger.
			WithField("job_id", rec.Application.JobID).
			WithError(err).
			Error("failed to re-evaluate the job completion")
		return false, err
	}
	return jobCompleted, nil
}

func (i impl) Reject(reportID, feedback string) error {
	logger := log.WithField("report_id", reportID)
	err := i.store.Update(reportID, map[string]interface{}{
		"Status":   models.ReportStatusRejected,
		"Feedback": feedback,
	})
	if err != nil {
		logger.WithError(err).Error("failed to reject the report")
		return err
	}
	logger.Info("report rejected")
	return nil
}

func (i impl) GetByID(id string) (reportapimodels.ReportView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return reportapimodels.ReportView{}, err
	}
	if rec == nil {
		return reportapimodels.ReportView{}, models.ErrNotFound
	}
	return reportapimodels.ReportConvert(*rec), nil
}

func (i impl) ListByApplication(applicationID string) ([]reportapimodels.ReportView, error) {
	list, err := i.store.ListByApplication(applicationID)
	if err != nil {
		return nil, err
	}
	result := make([]reportapimodels.ReportView, 0, len(list))
	for _, rec := range list {
		result = append(result, reportapimodels.ReportConvert(rec))
	}
	return result, nil
}

// ListSubmitted returns the review queue, oldest first.
func (i impl) ListSubmitted() ([]reportapimodels.ReportView, error) {
	list, err := i.store.ListByStatus(models.ReportStatusSubmitted)
	if err != nil {
		return nil, err
	}
	result := make([]reportapimodels.ReportView, 0, len(list))
	for _, rec := range list {
		result = append(result, reportapimodels.ReportConvert(rec))
	}
	return result, nil
}

// UploadPhoto attaches a photo to the caller's own report and records the
// object key on the row.
func (i impl) UploadPhoto(ctx context.Context, callerWorkerID, reportID, fileName string, file []byte) (objectKey string, err error) {
	rec, err := i.store.GetByID(reportID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", models.ErrNotFound
	}
	if rec.Application == nil || rec.Application.WorkerID != callerWorkerID {
		return "", models.ErrUnauthorized
	}
	objectKey, err = filestorage.Instance.UploadReportPhoto(ctx, reportID, fileName, file)
	if err != nil {
		return "", err
	}
	photoKeys := append(rec.PhotoKeys, objectKey)
	err = i.store.Update(reportID, map[string]interface{}{"PhotoKeys": photoKeys})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (i impl) GetPhoto(ctx context.Context, objectKey string) ([]byte, error) {
	return filestorage.Instance.GetReportPhoto(ctx, objectKey)
}

func (i impl) CreateTemplate(title, description, fields string) (id string, err error) {
	id, err = i.templateStore.Create(dbmodels.ReportTemplate{
		Title:       title,
		Description: description,
		Fields:      fields,
	})
	if err != nil {
		log.WithError(err).Error("failed to create a report template")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateTemplate(id, title, description, fields string) error {
	err := i.templateStore.Update(id, map[string]interface{}{
		"Title":       title,
		"Description": description,
		"Fields":      fields,
	})
	if err != nil {
		log.WithField("template_id", id).WithError(err).Error("failed to update a report template")
		return err
	}
	return nil
}

func (i impl) GetTemplate(id string) (reportapimodels.TemplateView, error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return reportapimodels.TemplateView{}, err
	}
	if rec == nil {
		return reportapimodels.TemplateView{}, models.ErrNotFound
	}
	return reportapimodels.TemplateConvert(*rec), nil
}

func (i impl) DeleteTemplate(id string) error {
	return i.templateStore.Delete(id)
}

func (i impl) ListTemplates() ([]reportapimodels.TemplateView, error) {
	list, err := i.templateStore.List()
	if err != nil {
		return nil, err
	}
	result := make([]reportapimodels.TemplateView, 0, len(list))
	for _, rec := range list {
		result = append(result, reportapimodels.TemplateConvert(rec))
	}
	return result, nil
}

func encodeFieldValues(values map[string]string) (string, error) {
	if len(values) == 0 {
		return "", nil
	}
	body, err := json.Marshal(values)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode the field values")
	}
	return string(body), nil
}
