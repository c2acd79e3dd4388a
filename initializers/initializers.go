package initializers

import (
	"context"
	"gig-works-backend/config"
	"gig-works-backend/fiberlog"
	adminpanelhandler "gig-works-backend/lib/admin-panel"
	adminpanelauthhandler "gig-works-backend/lib/admin-panel/auth"
	clienthandler "gig-works-backend/lib/client"
	contracthandler "gig-works-backend/lib/contract"
	xlsexport "gig-works-backend/lib/export/xls"
	filestorage "gig-works-backend/lib/file-storage"
	jobhandler "gig-works-backend/lib/job"
	applicationhandler "gig-works-backend/lib/job-application"
	linepush "gig-works-backend/lib/line-push"
	paymenthandler "gig-works-backend/lib/payment"
	reporthandler "gig-works-backend/lib/report"
	teamnotify "gig-works-backend/lib/team-notify"
	workerhandler "gig-works-backend/lib/worker"
	workerauthhandler "gig-works-backend/lib/worker-auth"
	workerbulkhandler "gig-works-backend/lib/worker/bulk"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler()
	linepush.NewHandler()
	teamnotify.NewHandler()
	xlsexport.NewHandler()
	adminpanelauthhandler.NewHandler()
	adminpanelhandler.NewHandler()
	workerauthhandler.NewHandler()
	workerhandler.NewHandler()
	workerbulkhandler.NewHandler()
	clienthandler.NewHandler()
	jobhandler.NewHandler()
	applicationhandler.NewHandler()
	contracthandler.NewHandler()
	reporthandler.NewHandler()
	paymenthandler.NewHandler()
}
