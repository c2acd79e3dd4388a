package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"gig-works-backend/controllers"
	handler "gig-works-backend/lib/payment"
	"gig-works-backend/lib/utils/helpers"
	"gig-works-backend/middleware"
	apimodels "gig-works-backend/models/api"
	paymentapimodels "gig-works-backend/models/api/payment"
	dbmodels "gig-works-backend/models/db"
)

type paymentApiController struct {
	controllers.BaseAPIController
}

func InitPaymentApiRouters(app *fiber.App) {
	controller := paymentApiController{}
	payment := fiber.New()
	app.Mount("/payment", payment)
	payment.Use(middleware.AuthorizationRequired())
	payment.Use(middleware.StaffRequired())
	payment.Post("generate", controller.generate)
	payment.Get("get/:id", controller.get)
	payment.Get("list/month/:month", controller.listByMonth)
	payment.Get("list/worker/:workerID", controller.listByWorker)
	payment.Put("status/:id", controller.setStatus)
	payment.Post("schedule", controller.upsertSchedule)
	payment.Get("schedule/list", controller.scheduleList)
	payment.Get("register/:month", controller.exportRegister)
}

// @Summary Generate a payment notice
// @Tags Back office. Payments
// @Description Generate the monthly notice for a worker. An existing draft for the month is regenerated in place
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 paymentapimodels.GenerateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=paymentapimodels.NoticeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/generate [post]
func (c *paymentApiController) generate(ctx *fiber.Ctx) error {
	var payload paymentapimodels.GenerateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := handler.Instance.Generate(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get a payment notice
// @Tags Back office. Payments
// @Description Get a payment notice
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "notice ID"
// @Success 200 {object} apimodels.Response{data=paymentapimodels.NoticeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/get/{id} [get]
func (c *paymentApiController) get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("notice ID is not specified"))
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary List notices of a month
// @Tags Back office. Payments
// @Description List the payment notices of a month
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month          		path    string  	true    "month (YYYY-MM)"
// @Success 200 {object} apimodels.Response{data=[]paymentapimodels.NoticeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/list/month/{month} [get]
func (c *paymentApiController) listByMonth(ctx *fiber.Ctx) error {
	month := ctx.Params("month")
	if !helpers.IsMonthKey(month) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("month must be in YYYY-MM format"))
	}
	list, err := handler.Instance.ListByMonth(month)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List notices of a worker
// @Tags Back office. Payments
// @Description List the payment notices of a worker, latest month first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   workerID          	path    string  	true    "worker ID"
// @Success 200 {object} apimodels.Response{data=[]paymentapimodels.NoticeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/list/worker/{workerID} [get]
func (c *paymentApiController) listByWorker(ctx *fiber.Ctx) error {
	workerID := ctx.Params("workerID")
	if workerID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("worker ID is not specified"))
	}
	list, err := handler.Instance.ListByWorker(workerID)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Set the notice status
// @Tags Back office. Payments
// @Description Move the notice along the draft-issued-approved-paid flow. Issuing and paying push a message to the worker
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "notice ID"
// @Param	body body	 paymentapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=paymentapimodels.NoticeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/status/{id} [put]
func (c *paymentApiController) setStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("notice ID is not specified"))
	}
	var payload paymentapimodels.StatusRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	meta := dbmodels.SignMeta{
		IP:        ctx.IP(),
		UserAgent: string(ctx.Request().Header.UserAgent()),
	}
	notified, err := handler.Instance.SetStatus(id, payload.Status, meta)
	if err != nil {
		return c.SendError(ctx, err)
	}
	view, err := handler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, err)
	}
	view.Notified = notified
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Upsert the payment schedule
// @Tags Back office. Payments
// @Description Set the pay date of a month, one schedule row per month
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 paymentapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/schedule [post]
func (c *paymentApiController) upsertSchedule(ctx *fiber.Ctx) error {
	var payload paymentapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := handler.Instance.UpsertSchedule(payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List payment schedules
// @Tags Back office. Payments
// @Description List payment schedules, latest month first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]paymentapimodels.ScheduleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/schedule/list [get]
func (c *paymentApiController) scheduleList(ctx *fiber.Ctx) error {
	list, err := handler.Instance.ListSchedules()
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export the payment register
// @Tags Back office. Payments
// @Description Export the bank transfer register of a month as XLSX
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   month          		path    string  	true    "month (YYYY-MM)"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/bo/payment/register/{month} [get]
func (c *paymentApiController) exportRegister(ctx *fiber.Ctx) error {
	month := ctx.Params("month")
	if !helpers.IsMonthKey(month) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("month must be in YYYY-MM format"))
	}
	fileName, file, err := handler.Instance.ExportRegister(month)
	if err != nil {
		return c.SendError(ctx, err)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Status(fiber.StatusOK).Send(file.Bytes())
}
