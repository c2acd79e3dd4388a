package workerauthhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	authutils "gig-works-backend/lib/utils/auth-utils"
	workeraccountstore "gig-works-backend/lib/worker/account-store"
	workerstore "gig-works-backend/lib/worker/store"
	authapimodels "gig-works-backend/models/api/auth"
	dbmodels "gig-works-backend/models/db"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Register(request authapimodels.RegisterRequest) (workerID string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		accountStore: workeraccountstore.NewInstance(db.DB),
		workerStore:  workerstore.NewInstance(db.DB),
	}
}

type impl struct {
	accountStore workeraccountstore.Provider
	workerStore  workerstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	account, err := i.accountStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to find an account by email")
		return authapimodels.JWTResponse{}, err
	}
	if account == nil {
		logger.Debug("no account with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if !account.IsActive {
		return authapimodels.JWTResponse{}, errors.New("the account is deactivated")
	}
	if authutils.GetMD5Hash(password) != account.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	worker, err := i.workerStore.FindByAccountID(account.ID)
	if err != nil {
		logger.WithError(err).Error("failed to find the worker profile")
		return authapimodels.JWTResponse{}, err
	}
	if worker == nil {
		return authapimodels.JWTResponse{}, errors.New("no worker profile for this account")
	}
	tokenString, err := authutils.GetWorkerToken(worker.ID, worker.GetFullName())
	if err != nil {
		logger.WithError(err).Error("failed to issue a JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}

// Register creates the login account and the worker profile. The account is
// compensating-deleted when the profile write fails.
func (i impl) Register(request authapimodels.RegisterRequest) (workerID string, err error) {
	logger := log.WithField("email", request.Email)
	accountID, err := i.accountStore.Create(dbmodels.WorkerAccount{
		Email:    request.Email,
		Password: authutils.GetMD5Hash(request.Password),
		IsActive: true,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create a worker account")
		return "", err
	}
	workerID, err = i.workerStore.Create(dbmodels.Worker{
		AccountID:  accountID,
		WorkerCode: dbmodels.NewWorkerCode(),
		Email:      request.Email,
		LastName:   request.LastName,
		FirstName:  request.FirstName,
		Phone:      request.Phone,
	})
	if err != nil {
		logger.WithError(err).Error("failed to create a worker profile")
		if delErr := i.accountStore.Delete(accountID); delErr != nil {
			logger.WithError(delErr).Error("failed to roll back the worker account")
		}
		return "", err
	}
	logger.WithField("worker_id", workerID).Info("worker registered")
	return workerID, nil
}
