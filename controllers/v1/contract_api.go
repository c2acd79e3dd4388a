package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/contract"
	authutils "gig-works-backend/lib/utils/auth-utils"
	"gig-works-backend/middleware"
	"gig-works-backend/models"
	apimodels "gig-works-backend/models/api"
	contractapimodels "gig-works-backend/models/api/contract"
	dbmodels "gig-works-backend/models/db"
)

type contractApiController struct {
	controllers.BaseAPIController
}

func InitContractApiRouters(app *fiber.App) {
	controller := contractApiController{}
	contract := fiber.New()
	app.Mount("/contract", contract)
	contract.Use(middleware.AuthorizationRequired())
	contract.Use(middleware.StaffRequired())
	contract.Post("template/create", controller.templateCreate)
	contract.Get("template/get/:id", controller.templateGet)
	contract.Put("template/update/:id", controller.templateUpdate)
	contract.Delete("template/delete/:id", controller.templateDelete)
	contract.Get("template/list", controller.templateList)
	contract.Post("template/duplicate/:id", controller.templateDuplicate)
	contract.Post("issue", controller.issue)
	contract.Get("get/:id", controller.get)
	contract.Get("list/job/:jobID", controller.listByJob)
	contract.Get("list/worker/:workerID", controller.listByWorker)
	contract.Post("counter-sign/:id", controller.counterSign)
	contract.Get("pdf/:id", controller.exportPDF)
}

// @Summary Create a contract template
// @Tags Back office. Contracts
// @Description Create a contract template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 contractapimodels.Template	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/template/create [post]
func (c *contractApiController) templateCreate(ctx *fiber.Ctx) error {
	var payload contractapimodels.Template
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := handler.Instance.CreateTemplate(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get a contract template
// @Tags Back office. Contracts
// @Description Get a contract template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Success 200 {object} apimodels.Response{data=contractapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/template/get/{id} [get]
func (c *contractApiController) templateGet(ctx *fiber.Ctx) error {
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

// @Summary Update a contract template
// @Tags Back office. Contracts
// @Description Update a contract template. Issued contracts keep their snapshot
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Param	body body	 contractapimodels.Template	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/template/update/{id} [put]
func (c *contractApiController) templateUpdate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("template ID is not specified"))
	}
	var payload contractapimodels.Template
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.UpdateTemplate(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete a contract template
// @Tags Back office. Contracts
// @Description Delete a contract template
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/template/delete/{id} [delete]
func (c *contractApiController) templateDelete(ctx *fiber.Ctx) error {
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

// @Summary List contract templates
// @Tags Back office. Contracts
// @Description List contract templates, optionally filtered by kind
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   kind          		query   string  	false   "BASIC or INDIVIDUAL"
// @Success 200 {object} apimodels.Response{data=[]contractapimodels.TemplateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/template/list [get]
func (c *contractApiController) templateList(ctx *fiber.Ctx) error {
	list, err := handler.Instance.ListTemplates(models.ContractKind(ctx.Query("kind")))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Duplicate a contract template
// @Tags Back office. Contracts
// @Description Copy a template into a new inactive draft
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "template ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/template/duplicate/{id} [post]
func (c *contractApiController) templateDuplicate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("template ID is not specified"))
	}
	newID, err := handler.Instance.DuplicateTemplate(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(newID))
}

// @Summary Issue an individual contract
// @Tags Back office. Contracts
// @Description Snapshot the template into a pending contract and push a signing request to the worker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 contractapimodels.IssueRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=contractapimodels.IndividualView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/issue [post]
func (c *contractApiController) issue(ctx *fiber.Ctx) error {
	var payload contractapimodels.IssueRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.IssueIndividual(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get an individual contract
// @Tags Back office. Contracts
// @Description Get an individual contract with its snapshot and audit fields
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "contract ID"
// @Success 200 {object} apimodels.Response{data=contractapimodels.IndividualView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/get/{id} [get]
func (c *contractApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("contract ID is not specified"))
	}
	view, err := handler.Instance.GetIndividual(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List contracts of a job
// @Tags Back office. Contracts
// @Description List the individual contracts of a job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   jobID          		path    string  	true    "job ID"
// @Success 200 {object} apimodels.Response{data=[]contractapimodels.IndividualView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/list/job/{jobID} [get]
func (c *contractApiController) listByJob(ctx *fiber.Ctx) error {
	jobID := ctx.Params("jobID")
	if jobID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	list, err := handler.Instance.ListIndividualByJob(jobID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List contracts of a worker
// @Tags Back office. Contracts
// @Description List the individual contracts of a worker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   workerID          	path    string  	true    "worker ID"
// @Success 200 {object} apimodels.Response{data=[]contractapimodels.IndividualView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/list/worker/{workerID} [get]
func (c *contractApiController) listByWorker(ctx *fiber.Ctx) error {
	workerID := ctx.Params("workerID")
	if workerID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID is not specified"))
	}
	list, err := handler.Instance.ListIndividualByWorker(workerID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Counter-sign a contract
// @Tags Back office. Contracts
// @Description Stamp the staff-side signature fields, the contract status is left untouched
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "contract ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/counter-sign/{id} [post]
func (c *contractApiController) counterSign(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("contract ID is not specified"))
	}
	meta := dbmodels.SignMeta{
		IP:        ctx.IP(),
		UserAgent: string(ctx.Request().Header.UserAgent()),
	}
	err := handler.Instance.CounterSign(authutils.GetUserName(ctx), id, meta)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Export a contract as PDF
// @Tags Back office. Contracts
// @Description Render the contract snapshot and audit block as a PDF file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "contract ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/contract/pdf/{id} [get]
func (c *contractApiController) exportPDF(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("contract ID is not specified"))
	}
	fileName, pdfFile, err := handler.Instance.ExportPDF(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}
