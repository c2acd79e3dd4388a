package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"gig-works-backend/config"
	apiv1 "gig-works-backend/controllers/v1"
	portalapi "gig-works-backend/controllers/v1/portal"
	"gig-works-backend/fiberlog"
	"gig-works-backend/initializers"
	"gig-works-backend/middleware"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // limit of 100MB
	})
	app.Use(fiberRecover.New())
	app.Use(middleware.WithBodyLimit(10 * 1024 * 1024))
	app.Use(middleware.ErrNotify())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//back office
	backOffice := fiber.New()
	apiV1.Mount("/bo", backOffice)
	apiv1.InitAdminApiRouters(backOffice)
	apiv1.InitClientApiRouters(backOffice)
	apiv1.InitWorkerApiRouters(backOffice)
	apiv1.InitJobApiRouters(backOffice)
	apiv1.InitContractApiRouters(backOffice)
	apiv1.InitReportApiRouters(backOffice)
	apiv1.InitPaymentApiRouters(backOffice)

	//worker portal
	portal := fiber.New()
	apiV1.Mount("/portal", portal)
	portalapi.InitPortalApiRouters(portal)

	app.Hooks().OnShutdown()

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		_ = <-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
