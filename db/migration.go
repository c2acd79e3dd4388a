package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "gig-works-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.AdminUser{}); err != nil {
		return errors.Wrap(err, "migration failed for AdminUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Client{}); err != nil {
		return errors.Wrap(err, "migration failed for Client")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkerAccount{}); err != nil {
		return errors.Wrap(err, "migration failed for WorkerAccount")
	}
	if err := DB.AutoMigrate(&dbmodels.Worker{}); err != nil {
		return errors.Wrap(err, "migration failed for Worker")
	}
	if err := DB.AutoMigrate(&dbmodels.ReportTemplate{}); err != nil {
		return errors.Wrap(err, "migration failed for ReportTemplate")
	}
	if err := DB.AutoMigrate(&dbmodels.ContractTemplate{}); err != nil {
		return errors.Wrap(err, "migration failed for ContractTemplate")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "migration failed for Job")
	}
	if err := DB.AutoMigrate(&dbmodels.JobApplication{}); err != nil {
		return errors.Wrap(err, "migration failed for JobApplication")
	}
	if err := DB.AutoMigrate(&dbmodels.WorkerBasicContract{}); err != nil {
		return errors.Wrap(err, "migration failed for WorkerBasicContract")
	}
	if err := DB.AutoMigrate(&dbmodels.JobIndividualContract{}); err != nil {
		return errors.Wrap(err, "migration failed for JobIndividualContract")
	}
	if err := DB.AutoMigrate(&dbmodels.Report{}); err != nil {
		return errors.Wrap(err, "migration failed for Report")
	}
	if err := DB.AutoMigrate(&dbmodels.PaymentNotice{}); err != nil {
		return errors.Wrap(err, "migration failed for PaymentNotice")
	}
	if err := DB.AutoMigrate(&dbmodels.PaymentSchedule{}); err != nil {
		return errors.Wrap(err, "migration failed for PaymentSchedule")
	}
	log.Info("migrations finished")
	return nil
}
