package workerhandler

import (
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	workerstore "gig-works-backend/lib/worker/store"
	"gig-works-backend/lib/utils/helpers"
	"gig-works-backend/models"
	workerapimodels "gig-works-backend/models/api/worker"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(request workerapimodels.Worker) (id string, err error)
	Update(id string, request workerapimodels.WorkerUpdate) error
	UpdateBank(id string, request workerapimodels.BankAccount) error
	GetByID(id string) (workerapimodels.WorkerView, error)
	List(filter dbmodels.WorkerFilter) ([]workerapimodels.WorkerView, error)
	AddTag(id, tag string) error
	DelTag(id, tag string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: workerstore.NewInstance(db.DB),
	}
}

type impl struct {
	store workerstore.Provider
}

func (i impl) Create(request workerapimodels.Worker) (id string, err error) {
	rec := dbmodels.Worker{
		WorkerCode:  dbmodels.NewWorkerCode(),
		LastName:    request.LastName,
		FirstName:   request.FirstName,
		LastKana:    request.LastKana,
		FirstKana:   request.FirstKana,
		Email:       request.Email,
		Phone:       request.Phone,
		Address:     request.Address,
		LineUserID:  request.LineUserID,
		BankName:    request.Bank.BankName,
		BankBranch:  request.Bank.BankBranch,
		AccountType: request.Bank.AccountType,
		AccountNo:   request.Bank.AccountNo,
		HolderName:  request.Bank.HolderName,
	}
	if request.BirthDate != "" {
		birthDate, err := helpers.ParseDate(request.BirthDate)
		if err == nil {
			rec.BirthDate = birthDate
		}
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create a worker")
		return "", err
	}
	log.WithField("worker_id", id).Info("worker created")
	return id, nil
}

func (i impl) Update(id string, request workerapimodels.WorkerUpdate) error {
	updMap := map[string]interface{}{}
	if request.LastName != nil {
		updMap["LastName"] = *request.LastName
	}
	if request.FirstName != nil {
		updMap["FirstName"] = *request.FirstName
	}
	if request.LastKana != nil {
		updMap["LastKana"] = *request.LastKana
	}
	if request.FirstKana != nil {
		updMap["FirstKana"] = *request.FirstKana
	}
	if request.Phone != nil {
		updMap["Phone"] = *request.Phone
	}
	if request.Address != nil {
		updMap["Address"] = *request.Address
	}
	if request.LineUserID != nil {
		updMap["LineUserID"] = *request.LineUserID
	}
	if request.IsVerified != nil {
		updMap["IsVerified"] = *request.IsVerified
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithField("worker_id", id).WithError(err).Error("failed to update a worker")
		return err
	}
	return nil
}

func (i impl) UpdateBank(id string, request workerapimodels.BankAccount) error {
	updMap := map[string]interface{}{
		"BankName":    request.BankName,
		"BankBranch":  request.BankBranch,
		"AccountType": request.AccountType,
		"AccountNo":   request.AccountNo,
		"HolderName":  request.HolderName,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithField("worker_id", id).WithError(err).Error("failed to update a worker bank account")
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (workerapimodels.WorkerView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return workerapimodels.WorkerView{}, err
	}
	if rec == nil {
		return workerapimodels.WorkerView{}, models.ErrNotFound
	}
	return workerapimodels.WorkerConvert(*rec), nil
}

func (i impl) List(filter dbmodels.WorkerFilter) ([]workerapimodels.WorkerView, error) {
	list, err := i.store.List(filter)
	if err != nil {
		return nil, err
	}
	result := make([]workerapimodels.WorkerView, 0, len(list))
	for _, rec := range list {
		result = append(result, workerapimodels.WorkerConvert(rec))
	}
	return result, nil
}

func (i impl) AddTag(id, tag string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	for _, existed := range rec.Tags {
		if existed == tag {
			return nil
		}
	}
	tags := append(rec.Tags, tag)
	return i.store.Update(id, map[string]interface{}{"Tags": tags})
}

func (i impl) DelTag(id, tag string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return models.ErrNotFound
	}
	tags := make([]string, 0, len(rec.Tags))
	for _, existed := range rec.Tags {
		if existed != tag {
			tags = append(tags, existed)
		}
	}
	return i.store.Update(id, map[string]interface{}{"Tags": tags})
}
