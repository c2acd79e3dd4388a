package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/db"
	adminuserstore "gig-works-backend/lib/admin-panel/store"
	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/models"
	apimodels "gig-works-backend/models/api"
)

// StaffRequired gates the back office. The token must carry the staff portal
// claim and the subject must still be an active row of the staff registry: a
// valid token alone is not enough once the user was deactivated or removed.
func StaffRequired() fiber.Handler {
	store := adminuserstore.NewInstance(db.DB)
	return func(ctx *fiber.Ctx) (err error) {
		claims := authutils.GetClaims(ctx)
		if claims["portal"] != models.TokenKindStaff {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		userID, _ := claims["sub"].(string)
		user, err := store.GetByID(userID)
		if err != nil {
			log.WithField("user_id", userID).WithError(err).Error("failed to check the staff registry")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("failed to check access"))
		}
		if user == nil || !user.IsActive {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}

// AdminRole restricts staff-management endpoints to administrators.
func AdminRole() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		claims := authutils.GetClaims(ctx)
		role, _ := claims["role"].(string)
		if role != string(models.UserRoleAdmin) && role != string(models.UserRoleSystem) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}
