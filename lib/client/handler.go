package clienthandler

import (
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	clientstore "gig-works-backend/lib/client/store"
	"gig-works-backend/models"
	clientapimodels "gig-works-backend/models/api/client"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Create(request clientapimodels.Client) (id string, err error)
	Update(id string, request clientapimodels.Client) error
	GetByID(id string) (clientapimodels.ClientView, error)
	Delete(id string) error
	List(search string) ([]clientapimodels.ClientView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store clientstore.Provider
}

func (i impl) Create(request clientapimodels.Client) (id string, err error) {
	rec := dbmodels.Client{
		CompanyName:   request.CompanyName,
		ContactPerson: request.ContactPerson,
		Email:         request.Email,
		Phone:         request.Phone,
		Address:       request.Address,
		Notes:         request.Notes,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to create a client")
		return "", err
	}
	return id, nil
}

func (i impl) Update(id string, request clientapimodels.Client) error {
	updMap := map[string]interface{}{
		"CompanyName":   request.CompanyName,
		"ContactPerson": request.ContactPerson,
		"Email":         request.Email,
		"Phone":         request.Phone,
		"Address":       request.Address,
		"Notes":         request.Notes,
	}
	err := i.store.Update(id, updMap)
	if err != nil {
		log.WithField("client_id", id).WithError(err).Error("failed to update a client")
		return err
	}
	return nil
}

func (i impl) GetByID(id string) (clientapimodels.ClientView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return clientapimodels.ClientView{}, err
	}
	if rec == nil {
		return clientapimodels.ClientView{}, models.ErrNotFound
	}
	return clientapimodels.ClientConvert(*rec), nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}

func (i impl) List(search string) ([]clientapimodels.ClientView, error) {
	list, err := i.store.List(search)
	if err != nil {
		return nil, err
	}
	result := make([]clientapimodels.ClientView, 0, len(list))
	for _, rec := range list {
		result = append(result, clientapimodels.ClientConvert(rec))
	}
	return result, nil
}
