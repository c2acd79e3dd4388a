package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/client"
	"gig-works-backend/middleware"
	apimodels "gig-works-backend/models/api"
	clientapimodels "gig-works-backend/models/api/client"
)

type clientApiController struct {
	controllers.BaseAPIController
}

func InitClientApiRouters(app *fiber.App) {
	controller := clientApiController{}
	client := fiber.New()
	app.Mount("/client", client)
	client.Use(middleware.AuthorizationRequired())
	client.Use(middleware.StaffRequired())
	client.Post("create", controller.create)
	client.Get("get/:id", controller.get)
	client.Put("update/:id", controller.update)
	client.Delete("delete/:id", controller.delete)
	client.Get("list", controller.list)
}

// @Summary Create a client company
// @Tags Back office. Clients
// @Description Create a client company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.Client	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/client/create [post]
func (c *clientApiController) create(ctx *fiber.Ctx) error {
	var payload clientapimodels.Client
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := handler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get a client company
// @Tags Back office. Clients
// @Description Get a client company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "client ID"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/client/get/{id} [get]
func (c *clientApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("client ID is not specified"))
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a client company
// @Tags Back office. Clients
// @Description Update a client company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "client ID"
// @Param	body body	 clientapimodels.Client	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/client/update/{id} [put]
func (c *clientApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("client ID is not specified"))
	}
	var payload clientapimodels.Client
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a client company
// @Tags Back office. Clients
// @Description Delete a client company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "client ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/client/delete/{id} [delete]
func (c *clientApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("client ID is not specified"))
	}
	err := handler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List client companies
// @Tags Back office. Clients
// @Description List client companies, optionally filtered by a search string
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search          	query   string  	false   "search by company or contact"
// @Success 200 {object} apimodels.Response{data=[]clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/client/list [get]
func (c *clientApiController) list(ctx *fiber.Ctx) error {
	list, err := handler.Instance.List(ctx.Query("search"))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
