package adminpanelhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/models"
	adminpanelapimodels "gig-works-backend/models/api/admin-panel"
	dbmodels "gig-works-backend/models/db"
)

type fakeAdminUserStore struct {
	seq   int
	users map[string]*dbmodels.AdminUser
}

func newFakeAdminUserStore() *fakeAdminUserStore {
	return &fakeAdminUserStore{users: map[string]*dbmodels.AdminUser{}}
}

func (f *fakeAdminUserStore) Create(rec dbmodels.AdminUser) (string, error) {
	f.seq++
	rec.ID = fmt.Sprintf("user-%d", f.seq)
	f.users[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeAdminUserStore) GetByID(userID string) (*dbmodels.AdminUser, error) {
	return f.users[userID], nil
}

func (f *fakeAdminUserStore) FindByEmail(email string) (*dbmodels.AdminUser, error) {
	for _, rec := range f.users {
		if rec.Email == email {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminUserStore) Update(userID string, updMap map[string]interface{}) error {
	rec := f.users[userID]
	for key, value := range updMap {
		switch key {
		case "Role":
			rec.Role = value.(models.UserRole)
		case "FirstName":
			rec.FirstName = value.(string)
		case "LastName":
			rec.LastName = value.(string)
		case "Password":
			rec.Password = value.(string)
		case "Email":
			rec.Email = value.(string)
		case "PhoneNumber":
			rec.PhoneNumber = value.(string)
		case "IsActive":
			rec.IsActive = value.(bool)
		}
	}
	return nil
}

func (f *fakeAdminUserStore) Delete(userID string) error {
	delete(f.users, userID)
	return nil
}

func (f *fakeAdminUserStore) List() ([]dbmodels.AdminUser, error) {
	list := []dbmodels.AdminUser{}
	for _, rec := range f.users {
		list = append(list, *rec)
	}
	return list, nil
}

func TestAdminUsers(t *testing.T) {
	newTestHandler := func() (impl, *fakeAdminUserStore) {
		store := newFakeAdminUserStore()
		return impl{store: store}, store
	}

	t.Run(`create hashes the password check`, func(t *testing.T) {
		handler, store := newTestHandler()
		err := handler.CreateUser(adminpanelapimodels.User{
			Role:     models.UserRoleUser,
			Email:    "staff@example.com",
			Password: "plain-secret",
		})
		require.Nil(t, err)

		rec, err := store.FindByEmail("staff@example.com")
		require.Nil(t, err)
		require.True(t, rec.IsActive)
		require.Equal(t, authutils.GetMD5Hash("plain-secret"), rec.Password)
		require.NotEqual(t, "plain-secret", rec.Password)
	})

	t.Run(`partial update check`, func(t *testing.T) {
		handler, store := newTestHandler()
		id, _ := store.Create(dbmodels.AdminUser{
			IsActive:  true,
			Role:      models.UserRoleUser,
			Email:     "staff@example.com",
			FirstName: "Ken",
		})

		role := models.UserRoleAdmin
		err := handler.UpdateUser(id, adminpanelapimodels.UserUpdate{Role: &role})
		require.Nil(t, err)

		rec := store.users[id]
		require.Equal(t, models.UserRoleAdmin, rec.Role)
		// untouched fields keep their values
		require.Equal(t, "Ken", rec.FirstName)
		require.Equal(t, "staff@example.com", rec.Email)
	})

	t.Run(`self delete is rejected check`, func(t *testing.T) {
		handler, store := newTestHandler()
		id, _ := store.Create(dbmodels.AdminUser{Email: "staff@example.com"})

		err := handler.DeleteUser(id, id)
		require.ErrorIs(t, err, models.ErrSelfDelete)
		require.NotNil(t, store.users[id])
	})

	t.Run(`delete another user check`, func(t *testing.T) {
		handler, store := newTestHandler()
		caller, _ := store.Create(dbmodels.AdminUser{Email: "admin@example.com"})
		target, _ := store.Create(dbmodels.AdminUser{Email: "staff@example.com"})

		err := handler.DeleteUser(caller, target)
		require.Nil(t, err)
		require.Nil(t, store.users[target])
	})

	t.Run(`unknown user check`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.GetUser("user-404")
		require.ErrorIs(t, err, models.ErrNotFound)
	})
}
