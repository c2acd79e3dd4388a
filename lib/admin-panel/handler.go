package adminpanelhandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	adminuserstore "gig-works-backend/lib/admin-panel/store"
	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/models"
	adminpanelapimodels "gig-works-backend/models/api/admin-panel"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	CreateUser(request adminpanelapimodels.User) error
	UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error
	DeleteUser(callerID, userID string) error
	GetUser(userID string) (adminpanelapimodels.UserView, error)
	List() ([]adminpanelapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: adminuserstore.NewInstance(db.DB),
	}
}

type impl struct {
	store adminuserstore.Provider
}

func (i impl) CreateUser(request adminpanelapimodels.User) error {
	rec := dbmodels.AdminUser{
		IsActive:    true,
		Role:        request.Role,
		Password:    authutils.GetMD5Hash(request.Password),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
	}
	userID, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create an admin user")
		return err
	}
	log.
		WithField("user_id", userID).
		WithField("email", rec.Email).
		Info("admin user created")
	return nil
}

func (i impl) UpdateUser(userID string, request adminpanelapimodels.UserUpdate) error {
	logger := log.WithField("user_id", userID)
	updMap := map[string]interface{}{}
	if request.Role != nil {
		updMap["Role"] = *request.Role
	}
	if request.FirstName != nil {
		updMap["FirstName"] = *request.FirstName
	}
	if request.LastName != nil {
		updMap["LastName"] = *request.LastName
	}
	if request.Password != nil {
		updMap["Password"] = authutils.GetMD5Hash(*request.Password)
	}
	if request.Email != nil {
		updMap["Email"] = *request.Email
	}
	if request.PhoneNumber != nil {
		updMap["PhoneNumber"] = *request.PhoneNumber
	}
	if request.IsActive != nil {
		updMap["IsActive"] = *request.IsActive
	}
	err := i.store.Update(userID, updMap)
	if err != nil {
		logger.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to update an admin user")
		return err
	}
	logger.Info("admin user updated")
	return nil
}

// DeleteUser removes a staff record. The caller is never allowed to delete
// its own record; the check runs before any store call.
func (i impl) DeleteUser(callerID, userID string) error {
	logger := log.WithField("user_id", userID)
	if callerID == userID {
		return models.ErrSelfDelete
	}
	err := i.store.Delete(userID)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to delete an admin user")
		return err
	}
	logger.Info("admin user deleted")
	return nil
}

func (i impl) GetUser(userID string) (adminpanelapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to get an admin user")
		return adminpanelapimodels.UserView{}, err
	}
	if rec == nil {
		return adminpanelapimodels.UserView{}, models.ErrNotFound
	}
	return adminpanelapimodels.UserConvert(*rec), nil
}

func (i impl) List() ([]adminpanelapimodels.UserView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]adminpanelapimodels.UserView, 0, len(list))
	for _, rec := range list {
		result = append(result, adminpanelapimodels.UserConvert(rec))
	}
	return result, nil
}
