package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/report"
	"gig-works-backend/middleware"
	apimodels "gig-works-backend/models/api"
	reportapimodels "gig-works-backend/models/api/report"
)

type reportApiController struct {
	controllers.BaseAPIController
}

type reportTemplateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Fields      string `json:"fields"`
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	report := fiber.New()
	app.Mount("/report", report)
	report.Use(middleware.AuthorizationRequired())
	report.Use(middleware.StaffRequired())
	report.Get("queue", controller.queue)
	report.Get("get/:id", controller.get)
	report.Get("list/application/:applicationID", controller.listByApplication)
	report.Post("approve/:id", controller.approve)
	report.Post("reject/:id", controller.reject)
	report.Get("photo", controller.photo)
	report.Post("template/create", controller.templateCreate)
	report.Get("template/get/:id", controller.templateGet)
	report.Put("template/update/:id", controller.templateUpdate)
	report.Delete("template/delete/:id", controller.templateDelete)
	report.Get("template/list", controller.templateList)
}

// @Summary Report review queue
// @Tags Back office. Reports
// @Description List submitted reports waiting for review, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.ReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/queue [get]
func (c *reportApiController) queue(ctx *fiber.Ctx) error {
	list, err := handler.Instance.ListSubmitted()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get a report
// @Tags Back office. Reports
// @Description Get a work report
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "report ID"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/get/{id} [get]
func (c *reportApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("report ID is not specified"))
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List reports of an application
// @Tags Back office. Reports
// @Description List the reports filed for an application, latest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   applicationID       path    string  	true    "application ID"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.ReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/list/application/{applicationID} [get]
func (c *reportApiController) listByApplication(ctx *fiber.Ctx) error {
	applicationID := ctx.Params("applicationID")
	if applicationID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("application ID is not specified"))
	}
	list, err := handler.Instance.ListByApplication(applicationID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Approve a report
// @Tags Back office. Reports
// @Description Approve the report. When every assigned application of the job has an approved report the job is completed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "report ID"
// @Success 200 {object} apimodels.Response{data=reportapimodels.ReportView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/approve/{id} [post]
func (c *reportApiController) approve(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("report ID is not specified"))
	}
	jobCompleted, err := handler.Instance.Approve(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	view.JobCompleted = jobCompleted
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Reject a report
// @Tags Back office. Reports
// @Description Reject the report with feedback, the worker can resubmit
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "report ID"
// @Param	body body	 reportapimodels.RejectRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/reject/{id} [post]
func (c *reportApiController) reject(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("report ID is not specified"))
	}
	var payload reportapimodels.RejectRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.Reject(id, payload.Feedback)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download a report photo
// @Tags Back office. Reports
// @Description Download a report photo by its object key
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   key          		query   string  	true    "object key"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/photo [get]
func (c *reportApiController) photo(ctx *fiber.Ctx) error {
	key := ctx.Query("key")
	if key == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("object key is not specified"))
	}
	body, err := handler.Instance.GetPhoto(ctx.Context(), key)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Create a report template
// @Tags Back office. Reports
// @Description Create a report template with custom field definitions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportTemplateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/template/create [post]
func (c *reportApiController) templateCreate(ctx *fiber.Ctx) error {
	var payload reportTemplateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.Title == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("title is required"))
	}
	id, err := handler.Instance.CreateTemplate(payload.Title, payload.Description, payload.Fields)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get a report template
// @Tags Back office. Reports
// @Description Get a report template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Success 200 {object} apimodels.Response{data=reportapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/template/get/{id} [get]
func (c *reportApiController) templateGet(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("template ID is not specified"))
	}
	view, err := handler.Instance.GetTemplate(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a report template
// @Tags Back office. Reports
// @Description Update a report template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Param	body body	 reportTemplateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/template/update/{id} [put]
func (c *reportApiController) templateUpdate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("template ID is not specified"))
	}
	var payload reportTemplateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.UpdateTemplate(id, payload.Title, payload.Description, payload.Fields)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a report template
// @Tags Back office. Reports
// @Description Delete a report template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/template/delete/{id} [delete]
func (c *reportApiController) templateDelete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("template ID is not specified"))
	}
	err := handler.Instance.DeleteTemplate(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List report templates
// @Tags Back office. Reports
// @Description List report templates
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/report/template/list [get]
func (c *reportApiController) templateList(ctx *fiber.Ctx) error {
	list, err := handler.Instance.ListTemplates()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
