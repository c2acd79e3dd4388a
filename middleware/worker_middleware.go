package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/models"
	apimodels "gig-works-backend/models/api"
)

// WorkerRequired gates the worker portal, the token must carry the worker
// portal claim.
func WorkerRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		claims := authutils.GetClaims(ctx)
		if claims["portal"] != models.TokenKindWorker {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not available"))
		}
		return ctx.Next()
	}
}
