package portalapi

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/controllers"
	contracthandler "gig-works-backend/lib/contract"
	jobhandler "gig-works-backend/lib/job"
	applicationhandler "gig-works-backend/lib/job-application"
	paymenthandler "gig-works-backend/lib/payment"
	reporthandler "gig-works-backend/lib/report"
	authutils "gig-works-backend/lib/utils/auth-utils"
	workerhandler "gig-works-backend/lib/worker"
	workerauthhandler "gig-works-backend/lib/worker-auth"
	"gig-works-backend/middleware"
	"gig-works-backend/models"
	apimodels "gig-works-backend/models/api"
	authapimodels "gig-works-backend/models/api/auth"
	contractapimodels "gig-works-backend/models/api/contract"
	reportapimodels "gig-works-backend/models/api/report"
	dbmodels "gig-works-backend/models/db"
)

type portalApiController struct {
	controllers.BaseAPIController
}

// InitPortalApiRouters wires the worker portal. Registration, login and the
// open-job listing are public, everything else requires a worker token.
func InitPortalApiRouters(app *fiber.App) {
	controller := portalApiController{}
	app.Post("register", controller.register)
	app.Post("login", controller.login)
	app.Get("job/list", controller.openJobs)

	secured := fiber.New()
	app.Mount("/my", secured)
	secured.Use(middleware.AuthorizationRequired())
	secured.Use(middleware.WorkerRequired())
	secured.Get("profile", controller.profile)
	secured.Post("job/:id/apply", controller.apply)
	secured.Get("application/list", controller.applications)
	secured.Get("contract/list", controller.contracts)
	secured.Post("contract/sign/:id", controller.signContract)
	secured.Get("contract/basic/list", controller.basicContracts)
	secured.Post("contract/basic/sign", controller.signBasic)
	secured.Post("report/submit", controller.submitReport)
	secured.Post("report/:id/photo", controller.uploadPhoto)
	secured.Get("payment/list", controller.payments)
	secured.Post("payment/approve/:id", controller.approvePayment)
}

// @Summary Worker registration
// @Tags Worker portal
// @Description Create a login account and a worker profile
// @Param	body				body		authapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/register [post]
func (c *portalApiController) register(ctx *fiber.Ctx) error {
	var payload authapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	workerID, err := workerauthhandler.Instance.Register(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(workerID))
}

// @Summary Worker authentication
// @Tags Worker portal
// @Description Worker authentication
// @Param	body				body		authapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/login [post]
func (c *portalApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := workerauthhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return ctx.SendStatus(fiber.StatusUnauthorized)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Open jobs
// @Tags Worker portal
// @Description List jobs open for applications
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.JobView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/job/list [get]
func (c *portalApiController) openJobs(ctx *fiber.Ctx) error {
	list, err := jobhandler.Instance.List(dbmodels.JobFilter{Status: models.JobStatusOpen})
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Own profile
// @Tags Worker portal
// @Description Get the caller's worker profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=workerapimodels.WorkerView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/profile [get]
func (c *portalApiController) profile(ctx *fiber.Ctx) error {
	view, err := workerhandler.Instance.GetByID(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Apply for a job
// @Tags Worker portal
// @Description File an application for an open job. One application per job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "job ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/job/{id}/apply [post]
func (c *portalApiController) apply(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("job ID is not specified"))
	}
	applicationID, err := applicationhandler.Instance.Apply(id, authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(applicationID))
}

// @Summary Own applications
// @Tags Worker portal
// @Description List the caller's applications, latest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]jobapimodels.ApplicationView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/application/list [get]
func (c *portalApiController) applications(ctx *fiber.Ctx) error {
	list, err := applicationhandler.Instance.ListByWorker(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Own individual contracts
// @Tags Worker portal
// @Description List the caller's individual contracts
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]contractapimodels.IndividualView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/contract/list [get]
func (c *portalApiController) contracts(ctx *fiber.Ctx) error {
	list, err := contracthandler.Instance.ListIndividualByWorker(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Sign an individual contract
// @Tags Worker portal
// @Description Sign a pending contract that was issued to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "contract ID"
// @Param	body body	 contractapimodels.SignRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/contract/sign/{id} [post]
func (c *portalApiController) signContract(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("contract ID is not specified"))
	}
	var payload contractapimodels.SignRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !payload.Consent {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("consent is required"))
	}
	meta := dbmodels.SignMeta{
		IP:        ctx.IP(),
		UserAgent: string(ctx.Request().Header.UserAgent()),
		Consent:   payload.Consent,
	}
	err := contracthandler.Instance.SignIndividual(authutils.GetUserID(ctx), id, meta)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Own basic contracts
// @Tags Worker portal
// @Description List the caller's standing agreements
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]contractapimodels.BasicView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/contract/basic/list [get]
func (c *portalApiController) basicContracts(ctx *fiber.Ctx) error {
	list, err := contracthandler.Instance.ListBasicByWorker(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Sign a basic contract
// @Tags Worker portal
// @Description Sign the standing agreement once per template. A repeated signing is rejected
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 contractapimodels.BasicSignRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/contract/basic/sign [post]
func (c *portalApiController) signBasic(ctx *fiber.Ctx) error {
	var payload contractapimodels.BasicSignRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !payload.Consent {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("consent is required"))
	}
	meta := dbmodels.SignMeta{
		IP:        ctx.IP(),
		UserAgent: string(ctx.Request().Header.UserAgent()),
		Consent:   payload.Consent,
	}
	id, err := contracthandler.Instance.SignBasic(authutils.GetUserID(ctx), payload.TemplateID, meta)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Submit a work report
// @Tags Worker portal
// @Description File a report for the caller's application. A rejected report is resubmitted in place
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 reportapimodels.SubmitRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/report/submit [post]
func (c *portalApiController) submitReport(ctx *fiber.Ctx) error {
	var payload reportapimodels.SubmitRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := reporthandler.Instance.Submit(authutils.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Upload a report photo
// @Tags Worker portal
// @Description Attach a photo to the caller's own report
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    	string  true    "report ID"
// @Param   file				formData	file	true	"photo file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/report/{id}/photo [post]
func (c *portalApiController) uploadPhoto(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("report ID is not specified"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("photo file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("failed to open the uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read the uploaded file"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("failed to read the uploaded file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("failed to read the uploaded file"))
	}
	objectKey, err := reporthandler.Instance.UploadPhoto(ctx.Context(), authutils.GetUserID(ctx), id, fileHeader.Filename, body)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(objectKey))
}

// @Summary Own payment notices
// @Tags Worker portal
// @Description List the caller's payment notices, latest month first
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]paymentapimodels.NoticeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/payment/list [get]
func (c *portalApiController) payments(ctx *fiber.Ctx) error {
	list, err := paymenthandler.Instance.ListByWorker(authutils.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Approve a payment notice
// @Tags Worker portal
// @Description Confirm an issued notice that belongs to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  	true    "notice ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/my/payment/approve/{id} [post]
func (c *portalApiController) approvePayment(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("notice ID is not specified"))
	}
	meta := dbmodels.SignMeta{
		IP:        ctx.IP(),
		UserAgent: string(ctx.Request().Header.UserAgent()),
	}
	err := paymenthandler.Instance.WorkerApprove(authutils.GetUserID(ctx), id, meta)
	if err != nil {
		return c.SendError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
