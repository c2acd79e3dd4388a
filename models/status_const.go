package models

type JobStatus string

const (
	JobStatusDraft      JobStatus = "DRAFT"
	JobStatusOpen       JobStatus = "OPEN"
	JobStatusFilled     JobStatus = "FILLED"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusDraft:      "Draft",
	JobStatusOpen:       "Open",
	JobStatusFilled:     "Filled",
	JobStatusInProgress: "In progress",
	JobStatusCompleted:  "Completed",
	JobStatusCancelled:  "Cancelled",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s JobStatus) IsKnown() bool {
	_, exist := jobStatusHumanName[s]
	return exist
}

type ApplicationStatus string

const (
	ApplicationStatusApplied   ApplicationStatus = "APPLIED"
	ApplicationStatusAssigned  ApplicationStatus = "ASSIGNED"
	ApplicationStatusConfirmed ApplicationStatus = "CONFIRMED"
	ApplicationStatusCompleted ApplicationStatus = "COMPLETED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationStatusApplied:   "Applied",
	ApplicationStatusAssigned:  "Assigned",
	ApplicationStatusConfirmed: "Confirmed",
	ApplicationStatusCompleted: "Completed",
	ApplicationStatusCancelled: "Cancelled",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) IsKnown() bool {
	_, exist := applicationStatusHumanName[s]
	return exist
}

// IsWorkable reports whether the application may receive work reports.
func (s ApplicationStatus) IsWorkable() bool {
	return s == ApplicationStatusAssigned ||
		s == ApplicationStatusConfirmed ||
		s == ApplicationStatusCompleted
}

type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "DRAFT"
	ContractStatusPending    ContractStatus = "PENDING"
	ContractStatusSigned     ContractStatus = "SIGNED"
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusCompleted  ContractStatus = "COMPLETED"
	ContractStatusCancelled  ContractStatus = "CANCELLED"
	ContractStatusExpired    ContractStatus = "EXPIRED"
	ContractStatusTerminated ContractStatus = "TERMINATED"
)

type ContractKind string

const (
	ContractKindBasic      ContractKind = "BASIC"
	ContractKindIndividual ContractKind = "INDIVIDUAL"
)

type ReportStatus string

const (
	ReportStatusSubmitted ReportStatus = "SUBMITTED"
	ReportStatusApproved  ReportStatus = "APPROVED"
	ReportStatusRejected  ReportStatus = "REJECTED"
)

type PaymentNoticeStatus string

const (
	PaymentNoticeStatusDraft    PaymentNoticeStatus = "DRAFT"
	PaymentNoticeStatusIssued   PaymentNoticeStatus = "ISSUED"
	PaymentNoticeStatusApproved PaymentNoticeStatus = "APPROVED"
	PaymentNoticeStatusPaid     PaymentNoticeStatus = "PAID"
)

var paymentNoticeStatusHumanName = map[PaymentNoticeStatus]string{
	PaymentNoticeStatusDraft:    "Draft",
	PaymentNoticeStatusIssued:   "Issued",
	PaymentNoticeStatusApproved: "Approved",
	PaymentNoticeStatusPaid:     "Paid",
}

func (s PaymentNoticeStatus) ToHuman() string {
	if human, exist := paymentNoticeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s PaymentNoticeStatus) IsKnown() bool {
	_, exist := paymentNoticeStatusHumanName[s]
	return exist
}
