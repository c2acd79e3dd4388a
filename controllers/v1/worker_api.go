package apiv1

import (
	"encoding/csv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/worker"
	bulkhandler "gig-works-backend/lib/worker/bulk"
	"gig-works-backend/middleware"
	apimodels "gig-works-backend/models/api"
	workerapimodels "gig-works-backend/models/api/worker"
	dbmodels "gig-works-backend/models/db"
)

type workerApiController struct {
	controllers.BaseAPIController
}

func InitWorkerApiRouters(app *fiber.App) {
	controller := workerApiController{}
	worker := fiber.New()
	app.Mount("/worker", worker)
	worker.Use(middleware.AuthorizationRequired())
	worker.Use(middleware.StaffRequired())
	worker.Post("create", controller.create)
	worker.Get("get/:id", controller.get)
	worker.Put("update/:id", controller.update)
	worker.Put("update/:id/bank", controller.updateBank)
	worker.Get("list", controller.list)
	worker.Post(":id/tag/:tag", controller.addTag)
	worker.Delete(":id/tag/:tag", controller.delTag)
	worker.Post("bulk/import-csv", controller.importCSV)
	worker.Post("bulk/create", controller.bulkCreate)
	worker.Post("bulk/bank", controller.bulkBank)
}

// @Summary Create a worker
// @Tags Back office. Workers
// @Description Create a worker profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workerapimodels.Worker	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/create [post]
func (c *workerApiController) create(ctx *fiber.Ctx) error {
	var payload workerapimodels.Worker
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

// @Summary Get a worker
// @Tags Back office. Workers
// @Description Get a worker profile with contact and bank data
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "worker ID"
// @Success 200 {object} apimodels.Response{data=workerapimodels.WorkerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/get/{id} [get]
func (c *workerApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID is not specified"))
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a worker
// @Tags Back office. Workers
// @Description Partial worker update, absent fields are left untouched
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "worker ID"
// @Param	body body	 workerapimodels.WorkerUpdate	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/update/{id} [put]
func (c *workerApiController) update(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID is not specified"))
	}
	var payload workerapimodels.WorkerUpdate
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update a worker's bank account
// @Tags Back office. Workers
// @Description Replace the worker's bank sub-record
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "worker ID"
// @Param	body body	 workerapimodels.BankAccount	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/update/{id}/bank [put]
func (c *workerApiController) updateBank(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID is not specified"))
	}
	var payload workerapimodels.BankAccount
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := handler.Instance.UpdateBank(id, payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Worker directory
// @Tags Back office. Workers
// @Description List workers filtered by search, tag and verification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search          	query   string  	false   "search by name, email, phone or code"
// @Param   tag             	query   string  	false   "tag filter"
// @Param   verified        	query   bool    	false   "verification filter"
// @Success 200 {object} apimodels.Response{data=[]workerapimodels.WorkerView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/list [get]
func (c *workerApiController) list(ctx *fiber.Ctx) error {
	filter := dbmodels.WorkerFilter{
		Search: ctx.Query("search"),
		Tag:    ctx.Query("tag"),
	}
	if ctx.Query("verified") != "" {
		verified := ctx.QueryBool("verified")
		filter.IsVerified = &verified
	}
	list, err := handler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Add a worker tag
// @Tags Back office. Workers
// @Description Add a tag to the worker, repeated adds are ignored
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "worker ID"
// @Param   tag          		path    string  	true    "tag"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/{id}/tag/{tag} [post]
func (c *workerApiController) addTag(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	tag := ctx.Params("tag")
	if id == "" || tag == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID and tag are required"))
	}
	err := handler.Instance.AddTag(id, tag)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove a worker tag
// @Tags Back office. Workers
// @Description Remove a tag from the worker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "worker ID"
// @Param   tag          		path    string  	true    "tag"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/{id}/tag/{tag} [delete]
func (c *workerApiController) delTag(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	tag := ctx.Params("tag")
	if id == "" || tag == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID and tag are required"))
	}
	err := handler.Instance.DelTag(id, tag)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Import workers from CSV
// @Tags Back office. Workers. Bulk
// @Description Update existing workers from a CSV file, matched by email. Unmatched rows are skipped
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   file				formData	file	true	"csv file with a header row"
// @Success 200 {object} apimodels.Response{data=workerapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/bulk/import-csv [post]
func (c *workerApiController) importCSV(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("csv file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("failed to open the uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read the uploaded file"))
	}
	defer file.Close()
	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to parse the csv file"))
	}
	result, err := bulkhandler.Instance.ImportWorkersCSV(records)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Bulk create workers
// @Tags Back office. Workers. Bulk
// @Description Create accounts and worker profiles in one batch. Failed rows are listed, the rest are committed
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workerapimodels.BulkCreateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=workerapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/bulk/create [post]
func (c *workerApiController) bulkCreate(ctx *fiber.Ctx) error {
	var payload workerapimodels.BulkCreateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if len(payload.Rows) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("rows are required"))
	}
	result := bulkhandler.Instance.BulkCreateWorkers(payload)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Bulk update bank accounts
// @Tags Back office. Workers. Bulk
// @Description Update bank sub-records in one batch, rows resolved by worker ID or worker code
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workerapimodels.BankUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=workerapimodels.BulkResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/worker/bulk/bank [post]
func (c *workerApiController) bulkBank(ctx *fiber.Ctx) error {
	var payload workerapimodels.BankUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if len(payload.Rows) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("rows are required"))
	}
	result := bulkhandler.Instance.BulkUpdateBankAccounts(payload)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
