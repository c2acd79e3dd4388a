package dbmodels

import (
	"time"

	"gig-works-backend/models"
)

type JobApplication struct {
	BaseModel
	JobID            string  `gorm:"type:varchar(36);index:idx_job_worker,unique"`
	Job              *Job    `gorm:"foreignKey:JobID"`
	WorkerID         string  `gorm:"type:varchar(36);index:idx_job_worker,unique"`
	Worker           *Worker `gorm:"foreignKey:WorkerID"`
	Status           models.ApplicationStatus `gorm:"type:varchar(50);index"`
	ScheduledStartAt time.Time
	ScheduledEndAt   time.Time
	ActualStartAt    time.Time
	ActualEndAt      time.Time
}

// CanSubmitReport reports whether a work report may be filed for the
// application in its current status.
func (a JobApplication) CanSubmitReport() bool {
	return a.Status.IsWorkable()
}
