package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/models"
	apimodels "gig-works-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse the request")
		return errors.New("failed to read data from the request")
	}
	return nil
}

// SendError maps business-rule errors to their status codes; anything else
// is a store or integration failure and surfaces as 500.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrUnauthorized):
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrDuplicateApplication),
		errors.Is(err, models.ErrAlreadySigned),
		errors.Is(err, models.ErrAlreadySubmitted):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, models.ErrNotAssigned),
		errors.Is(err, models.ErrWorkerNotFound),
		errors.Is(err, models.ErrSelfDelete),
		errors.Is(err, models.ErrUnknownStatus):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
}
