package models

import "github.com/pkg/errors"

// Business-rule errors surfaced to API callers with a specific message.
// Matched with errors.Is, so handlers can distinguish them from store failures.
var (
	ErrUnauthorized         = errors.New("operation not allowed for the caller")
	ErrNotFound             = errors.New("record not found")
	ErrDuplicateApplication = errors.New("the worker already applied for this job")
	ErrAlreadySigned        = errors.New("the contract is already signed")
	ErrAlreadySubmitted     = errors.New("a report for this application is already submitted")
	ErrNotAssigned          = errors.New("the worker is not assigned to this job")
	ErrWorkerNotFound       = errors.New("no matching worker")
	ErrNoMessagingIdentity  = errors.New("the worker has no linked messaging identity")
	ErrSelfDelete           = errors.New("deleting own account is not allowed")
	ErrUnknownStatus        = errors.New("unknown status")
)
