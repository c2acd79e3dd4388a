package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/admin-panel"
	adminauthhandler "gig-works-backend/lib/admin-panel/auth"
	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/middleware"
	apimodels "gig-works-backend/models/api"
	adminpanelapimodels "gig-works-backend/models/api/admin-panel"
	authapimodels "gig-works-backend/models/api/auth"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Post("login", controller.login)

	// staff user management, administrators only
	user := fiber.New()
	app.Mount("/user", user)
	user.Use(middleware.AuthorizationRequired())
	user.Use(middleware.StaffRequired())
	user.Use(middleware.AdminRole())
	user.Get("get/:userID", controller.userGet)
	user.Post("create", controller.userCreate)
	user.Put("update/:userID", controller.userUpdate)
	user.Delete("delete/:userID", controller.userDelete)
	user.Post("list", controller.userList)
}

// @Summary Staff authentication
// @Tags Back office
// @Description Staff authentication
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/login [post]
func (a *adminApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := adminauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Create a staff user
// @Tags Back office. Staff users
// @Description Create a staff user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminpanelapimodels.User	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/user/create [post]
func (a *adminApiController) userCreate(ctx *fiber.Ctx) error {
	var payload adminpanelapimodels.User
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.CreateUser(payload)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update a staff user
// @Tags Back office. Staff users
// @Description Update a staff user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userID          		path    string  				    	true         "user ID"
// @Param	body body	 adminpanelapimodels.UserUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/user/update/{userID} [put]
func (a *adminApiController) userUpdate(ctx *fiber.Ctx) error {
	value := ctx.Params("userID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user ID is not specified"))
	}
	var payload adminpanelapimodels.UserUpdate
	if err := a.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err := handler.Instance.UpdateUser(value, payload)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a staff user
// @Tags Back office. Staff users
// @Description Delete a staff user. Deleting the caller's own record is rejected
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userID          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/user/delete/{userID} [delete]
func (a *adminApiController) userDelete(ctx *fiber.Ctx) error {
	value := ctx.Params("userID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user ID is not specified"))
	}
	err := handler.Instance.DeleteUser(authutils.GetUserID(ctx), value)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get a staff user
// @Tags Back office. Staff users
// @Description Get a staff user
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   userID          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response{data=adminpanelapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/user/get/{userID} [get]
func (a *adminApiController) userGet(ctx *fiber.Ctx) error {
	value := ctx.Params("userID")
	if value == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("user ID is not specified"))
	}

	user, err := handler.Instance.GetUser(value)
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(user))
}

// @Summary List staff users
// @Tags Back office. Staff users
// @Description List staff users
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminpanelapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/user/list [post]
func (a *adminApiController) userList(ctx *fiber.Ctx) error {
	users, err := handler.Instance.List()
	if err != nil {
		return a.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(users))
}
