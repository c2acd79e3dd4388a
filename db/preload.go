package db

import (
	log "github.com/sirupsen/logrus"

	adminuserstore "gig-works-backend/lib/admin-panel/store"
	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/models"
	dbmodels "gig-works-backend/models/db"
)

func InitPreload() {
	seedSystemAdmin()
}

// seedSystemAdmin creates the initial SYSTEM account when the registry is
// empty, so the back office is reachable on a fresh database.
func seedSystemAdmin() {
	store := adminuserstore.NewInstance(DB)
	list, err := store.List()
	if err != nil {
		log.WithError(err).Error("failed to check admin users for seeding")
		return
	}
	if len(list) > 0 {
		return
	}
	rec := dbmodels.AdminUser{
		IsActive:  true,
		Role:      models.UserRoleSystem,
		Password:  authutils.GetMD5Hash("admin"),
		FirstName: "System",
		LastName:  "Administrator",
		Email:     "admin@localhost",
	}
	id, err := store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to seed the system admin user")
		return
	}
	log.WithField("user_id", id).Info("seeded the system admin user")
}
