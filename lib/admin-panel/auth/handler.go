package adminauthhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	adminuserstore "gig-works-backend/lib/admin-panel/store"
	authutils "gig-works-backend/lib/utils/auth-utils"
	authapimodels "gig-works-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
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

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to find a user by email")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("no user with this email")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	if !user.IsActive {
		logger.Debug("the user is deactivated")
		return authapimodels.JWTResponse{}, errors.New("the account is deactivated")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid email or password")
	}
	tokenString, err := authutils.GetStaffToken(user.ID, user.GetFullName(), user.Role)
	if err != nil {
		logger.WithError(err).Error("failed to issue a JWT")
		return authapimodels.JWTResponse{}, err
	}
	err = i.store.Update(user.ID, map[string]interface{}{"LastLogin": time.Now()})
	if err != nil {
		logger.
			WithError(err).
			Error("failed to stamp the last login")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}
