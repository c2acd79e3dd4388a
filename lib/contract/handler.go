package contracthandler

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"gig-works-backend/config"
	"gig-works-backend/db"
	basiccontractstore "gig-works-backend/lib/contract/basic-store"
	individualcontractstore "gig-works-backend/lib/contract/individual-store"
	contracttemplatestore "gig-works-backend/lib/contract/template-store"
	pdfexport "gig-works-backend/lib/export/pdf"
	jobstore "gig-works-backend/lib/job/store"
	linepush "gig-works-backend/lib/line-push"
	teamnotify "gig-works-backend/lib/team-notify"
	workerstore "gig-works-backend/lib/worker/store"
	"gig-works-backend/models"
	contractapimodels "gig-works-backend/models/api/contract"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	CreateTemplate(request contractapimodels.Template) (id string, err error)
	UpdateTemplate(id string, request contractapimodels.Template) error
	GetTemplate(id string) (contractapimodels.TemplateView, error)
	DeleteTemplate(id string) error
	ListTemplates(kind models.ContractKind) ([]contractapimodels.TemplateView, error)
	DuplicateTemplate(id string) (newID string, err error)

	IssueIndividual(request contractapimodels.IssueRequest) (contractapimodels.IndividualView, error)
	SignIndividual(callerWorkerID, contractID string, meta dbmodels.SignMeta) error
	CounterSign(staffName, contractID string, meta dbmodels.SignMeta) error
	GetIndividual(id string) (contractapimodels.IndividualView, error)
	ListIndividualByWorker(workerID string) ([]contractapimodels.IndividualView, error)
	ListIndividualByJob(jobID string) ([]contractapimodels.IndividualView, error)
	ExportPDF(contractID string) (fileName string, pdfFile []byte, err error)

	SignBasic(workerID, templateID string, meta dbmodels.SignMeta) (id string, err error)
	ListBasicByWorker(workerID string) ([]contractapimodels.BasicView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		templateStore:   contracttemplatestore.NewInstance(db.DB),
		basicStore:      basiccontractstore.NewInstance(db.DB),
		individualStore: individualcontractstore.NewInstance(db.DB),
		jobStore:        jobstore.NewInstance(db.DB),
		workerStore:     workerstore.NewInstance(db.DB),
	}
}

type impl struct {
	templateStore   contracttemplatestore.Provider
	basicStore      basiccontractstore.Provider
	individualStore individualcontractstore.Provider
	jobStore        jobstore.Provider
	workerStore     workerstore.Provider
}

func (i impl) CreateTemplate(request contractapimodels.Template) (id string, err error) {
	id, err = i.templateStore.Create(dbmodels.ContractTemplate{
		Title:    request.Title,
		Body:     request.Body,
		Kind:     request.Kind,
		IsActive: request.IsActive,
	})
	if err != nil {
		log.WithError(err).Error("failed to create a contract template")
		return "", err
	}
	return id, nil
}

func (i impl) UpdateTemplate(id string, request contractapimodels.Template) error {
	err := i.templateStore.Update(id, map[string]interface{}{
		"Title":    request.Title,
		"Body":     request.Body,
		"Kind":     request.Kind,
		"IsActive": request.IsActive,
	})
	if err != nil {
		log.WithField("template_id", id).WithError(err).Error("failed to update a contract template")
		return err
	}
	return nil
}

func (i impl) GetTemplate(id string) (contractapimodels.TemplateView, error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return contractapimodels.TemplateView{}, err
	}
	if rec == nil {
		return contractapimodels.TemplateView{}, models.ErrNotFound
	}
	return contractapimodels.TemplateConvert(*rec), nil
}

func (i impl) DeleteTemplate(id string) error {
	return i.templateStore.Delete(id)
}

func (i impl) ListTemplates(kind models.ContractKind) ([]contractapimodels.TemplateView, error) {
	list, err := i.templateStore.List(kind)
	if err != nil {
		return nil, err
	}
	result := make([]contractapimodels.TemplateView, 0, len(list))
	for _, rec := range list {
		result = append(result, contractapimodels.TemplateConvert(rec))
	}
	return result, nil
}

// DuplicateTemplate copies a template into a new inactive draft, so an
// in-use template can be revised without touching issued contracts.
func (i impl) DuplicateTemplate(id string) (newID string, err error) {
	rec, err := i.templateStore.GetByID(id)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", models.ErrNotFound
	}
	newID, err = i.templateStore.Create(dbmodels.ContractTemplate{
		Title:    rec.Title + " (copy)",
		Body:     rec.Body,
		Kind:     rec.Kind,
		IsActive: false,
	})
	if err != nil {
		log.WithField("template_id", id).WithError(err).Error("failed to duplicate a contract template")
		return "", err
	}
	return newID, nil
}

// IssueIndividual snapshots the template body into a pending contract and
// pushes a signing request to the worker. Delivery is best effort: a worker
// without a linked messaging identity gets notified=false, never an error.
func (i impl) IssueIndividual(request contractapimodels.IssueRequest) (contractapimodels.IndividualView, error) {
	logger := log.
		WithField("job_id", request.JobID).
		WithField("worker_id", request.WorkerID)
	job, err := i.jobStore.GetByID(request.JobID)
	if err != nil {
		return contractapimodels.IndividualView{}, err
	}
	if job == nil {
		return contractapimodels.IndividualView{}, models.ErrNotFound
	}
	worker, err := i.workerStore.GetByID(request.WorkerID)
	if err != nil {
		return contractapimodels.IndividualView{}, err
	}
	if worker == nil {
		return contractapimodels.IndividualView{}, models.ErrNotFound
	}
	template, err := i.templateStore.GetByID(request.TemplateID)
	if err != nil {
		return contractapimodels.IndividualView{}, err
	}
	if template == nil {
		return contractapimodels.IndividualView{}, models.ErrNotFound
	}
	rec := dbmodels.JobIndividualContract{
		JobID:           request.JobID,
		WorkerID:        request.WorkerID,
		TemplateID:      request.TemplateID,
		Status:          models.ContractStatusPending,
		ContentSnapshot: template.Body,
	}
	id, err := i.individualStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to issue an individual contract")
		return contractapimodels.IndividualView{}, err
	}
	logger.WithField("contract_id", id).Info("individual contract issued")

	view := contractapimodels.IndividualView{
		ID:         id,
		JobID:      request.JobID,
		JobTitle:   job.Title,
		WorkerID:   request.WorkerID,
		WorkerName: worker.GetFullName(),
		Status:     models.ContractStatusPending,
		Content:    template.Body,
	}
	if !worker.HasMessagingIdentity() {
		logger.Info("signing request not pushed, the worker has no linked messaging identity")
		return view, nil
	}
	pushErr := linepush.Instance.Send(worker.LineUserID,
		fmt.Sprintf("A contract for \"%v\" is waiting for your signature. Please open the worker portal to review and sign it.", job.Title))
	if pushErr != nil {
		logger.WithError(pushErr).Error("failed to push the signing request")
		return view, nil
	}
	view.Notified = true
	return view, nil
}

// SignIndividual stamps the worker signature. The contract must belong to
// the caller and still be pending.
func (i impl) SignIndividual(callerWorkerID, contractID string, meta dbmodels.SignMeta) error {
	logger := log.
		WithField("contract_id", contractID).
		WithField("worker_id", callerWorkerID)
	rec, err := i.individualStore.GetByID(contractID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	if rec.WorkerID != callerWorkerID {
		return models.ErrUnauthorized
	}
	if !rec.IsSignable() {
		return models.ErrAlreadySigned
	}
	err = i.individualStore.Update(contractID, map[string]interface{}{
		"Status":        models.ContractStatusSigned,
		"SignedAt":      time.Now(),
		"SignIP":        meta.IP,
		"SignUserAgent": meta.UserAgent,
		"ConsentGiven":  meta.Consent,
	})
	if err != nil {
		logger.WithError(err).Error("failed to sign the contract")
		return err
	}
	logger.Info("individual contract signed")

	workerName := callerWorkerID
	if rec.Worker != nil {
		workerName = rec.Worker.GetFullName()
	}
	jobTitle := rec.JobID
	if rec.Job != nil {
		jobTitle = rec.Job.Title
	}
	text := fmt.Sprintf("%v signed the contract for \"%v\". Review: %v/contracts/%v",
		workerName, jobTitle, config.Conf.App.AdminUrl, contractID)
	go func() {
		notifyErr := teamnotify.Instance.Send(text)
		if notifyErr != nil {
			logger.WithError(notifyErr).Error("failed to notify the team about the signing")
		}
	}()
	return nil
}

// CounterSign stamps the staff-side (party A) signature fields. The contract
// status is left untouched, counter-signing is an audit record only.
func (i impl) CounterSign(staffName, contractID string, meta dbmodels.SignMeta) error {
	logger := log.WithField("contract_id", contractID)
	rec, err := i.individualStore.GetByID(contractID)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	err = i.individualStore.Update(contractID, map[string]interface{}{
		"PartyASignedAt": time.Now(),
		"PartyASigner":   staffName,
		"PartyASignIP":   meta.IP,
		"PartyASignUA":   meta.UserAgent,
	})
	if err != nil {
		logger.WithError(err).Error("failed to counter-sign the contract")
		return err
	}
	logger.WithField("signer", staffName).Info("individual contract counter-signed")
	return nil
}

func (i impl) GetIndividual(id string) (contractapimodels.IndividualView, error) {
	rec, err := i.individualStore.GetByID(id)
	if err != nil {
		return contractapimodels.IndividualView{}, err
	}
	if rec == nil {
		return contractapimodels.IndividualView{}, models.ErrNotFound
	}
	return contractapimodels.IndividualConvert(*rec), nil
}

func (i impl) ListIndividualByWorker(workerID string) ([]contractapimodels.IndividualView, error) {
	list, err := i.individualStore.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	result := make([]contractapimodels.IndividualView, 0, len(list))
	for _, rec := range list {
		result = append(result, contractapimodels.IndividualConvert(rec))
	}
	return result, nil
}

func (i impl) ListIndividualByJob(jobID string) ([]contractapimodels.IndividualView, error) {
	list, err := i.individualStore.ListByJob(jobID)
	if err != nil {
		return nil, err
	}
	result := make([]contractapimodels.IndividualView, 0, len(list))
	for _, rec := range list {
		result = append(result, contractapimodels.IndividualConvert(rec))
	}
	return result, nil
}

func (i impl) ExportPDF(contractID string) (fileName string, pdfFile []byte, err error) {
	rec, err := i.individualStore.GetByID(contractID)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, models.ErrNotFound
	}
	pdfFile, err = pdfexport.GenerateContract(*rec)
	if err != nil {
		log.WithField("contract_id", contractID).WithError(err).Error("failed to export the contract pdf")
		return "", nil, err
	}
	return fmt.Sprintf("contract_%v.pdf", contractID), pdfFile, nil
}

// SignBasic files the standing agreement. Signing is idempotent per worker
// and template: a signed row rejects a repeat, a pending row is converted in
// place, otherwise a new signed row is inserted with the template snapshot.
func (i impl) SignBasic(workerID, templateID string, meta dbmodels.SignMeta) (id string, err error) {
	logger := log.
		WithField("worker_id", workerID).
		WithField("template_id", templateID)
	signed, err := i.basicStore.FindByWorkerAndTemplate(workerID, templateID, models.ContractStatusSigned)
	if err != nil {
		return "", err
	}
	if signed != nil {
		return "", models.ErrAlreadySigned
	}
	pending, err := i.basicStore.FindByWorkerAndTemplate(workerID, templateID, models.ContractStatusPending)
	if err != nil {
		return "", err
	}
	if pending != nil {
		err = i.basicStore.Update(pending.ID, map[string]interface{}{
			"Status":        models.ContractStatusSigned,
			"SignedAt":      time.Now(),
			"SignIP":        meta.IP,
			"SignUserAgent": meta.UserAgent,
			"ConsentGiven":  meta.Consent,
		})
		if err != nil {
			logger.WithError(err).Error("failed to sign the basic contract")
			return "", err
		}
		logger.Info("basic contract signed")
		return pending.ID, nil
	}
	template, err := i.templateStore.GetByID(templateID)
	if err != nil {
		return "", err
	}
	if template == nil {
		return "", models.ErrNotFound
	}
	id, err = i.basicStore.Create(dbmodels.WorkerBasicContract{
		WorkerID:        workerID,
		TemplateID:      templateID,
		Status:          models.ContractStatusSigned,
		ContentSnapshot: template.Body,
		SignedAt:        time.Now(),
		SignIP:          meta.IP,
		SignUserAgent:   meta.UserAgent,
		ConsentGiven:    meta.Consent,
	})
	if err != nil {
		logger.WithError(err).Error("failed to sign the basic contract")
		return "", err
	}
	logger.Info("basic contract signed")
	return id, nil
}

func (i impl) ListBasicByWorker(workerID string) ([]contractapimodels.BasicView, error) {
	list, err := i.basicStore.ListByWorker(workerID)
	if err != nil {
		return nil, err
	}
	result := make([]contractapimodels.BasicView, 0, len(list))
	for _, rec := range list {
		result = append(result, contractapimodels.BasicConvert(rec))
	}
	return result, nil
}
