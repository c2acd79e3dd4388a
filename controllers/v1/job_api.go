package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/job"
	applicationhandler "gig-works-backend/lib/job-application"
	"gig-works-backend/middleware"
	"gig-works-backend/models"
	apimodels "gig-works-backend/models/api"
	jobapimodels "gig-works-backend/models/api/job"
	dbmodels "gig-works-backend/models/db"
)

type jobApiController struct {
	controllers.BaseAPIController
}

func InitJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	job := fiber.New()
	app.Mount("/job", job)
	job.Use(middleware.AuthorizationRequired())
	job.Use(middleware.StaffRequired())
	job.Post("create", controller.create)
	job.Get("get/:id", controller.get)
	job.Put("update/:id", controller.update)
	job.Delete("delete/:id", controller.delete)
	job.Get("list", controller.list)
	job.Put("status/:id", controller.setStatus)
	job.Get(":id/applications", controller.applicationList)
	job.Post(":id/assign/:workerID", controller.assign)

	application := fiber.New()
	app.Mount("/application", application)
	application.Use(middleware.AuthorizationRequired())
	application.Use(middleware.StaffRequired())
	application.Put("status/:id", controller.applicationStatus)
	application.Put("work-time/:id", controller.applicationWorkTime)
}

// @Summary Create a job
// @Tags Back office. Jobs
// @Description Create a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.Job	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/create [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.Job
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

// @Summary Get a job
// @Tags Back office. Jobs
// @Description Get a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/get/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a job
// @Tags Back office. Jobs
// @Description Update a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Param	body body	 jobapimodels.Job	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/update/{id} [put]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	var payload jobapimodels.Job
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a job
// @Tags Back office. Jobs
// @Description Delete a job posting
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/delete/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	err := handler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List jobs
// @Tags Back office. Jobs
// @Description List jobs filtered by client, status and title search
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   client_id          	query   string  	false   "client filter"
// @Param   status          	query   string  	false   "status filter"
// @Param   search          	query   string  	false   "title search"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/list [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	filter := dbmodels.JobFilter{
		ClientID: ctx.Query("client_id"),
		Status:   models.JobStatus(ctx.Query("status")),
		Search:   ctx.Query("search"),
	}
	list, err := handler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Set the job status
// @Tags Back office. Jobs
// @Description Move the job to any known status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Param	body body	 jobapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/status/{id} [put]
func (c *jobApiController) setStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	var payload jobapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.SetStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List job applications
// @Tags Back office. Applications
// @Description List the applications of a job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/{id}/applications [get]
func (c *jobApiController) applicationList(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	list, err := applicationhandler.Instance.ListByJob(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Assign a worker to a job
// @Tags Back office. Applications
// @Description Create an assigned application for the worker. One application per job and worker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Param   workerID       		path    string  	true    "worker ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/job/{id}/assign/{workerID} [post]
func (c *jobApiController) assign(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	workerID := ctx.Params("workerID")
	if id == "" || workerID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID and worker ID are required"))
	}
	applicationID, err := applicationhandler.Instance.Assign(id, workerID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationID))
}

// @Summary Set the application status
// @Tags Back office. Applications
// @Description Move the application to any known status
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "application ID"
// @Param	body body	 jobapimodels.ApplicationStatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/application/status/{id} [put]
func (c *jobApiController) applicationStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("application ID is not specified"))
	}
	var payload jobapimodels.ApplicationStatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicationhandler.Instance.SetStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Stamp work time
// @Tags Back office. Applications
// @Description Set the scheduled and actual work window of an application
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "application ID"
// @Param	body body	 jobapimodels.WorkTimeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/application/work-time/{id} [put]
func (c *jobApiController) applicationWorkTime(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("application ID is not specified"))
	}
	var payload jobapimodels.WorkTimeRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := applicationhandler.Instance.SetWorkTime(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
