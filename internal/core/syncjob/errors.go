package syncjob

import "errors"

var (
	ErrInvalidJobID     = errors.New("syncjob: invalid job id")
	ErrInvalidJobType   = errors.New("syncjob: invalid job type")
	ErrJobNotFound      = errors.New("syncjob: job not found")
	ErrNoDevices        = errors.New("syncjob: at least one enabled device is required")
	ErrUnknownDevice    = errors.New("syncjob: unknown device id")
	ErrInvalidDateRange = errors.New("syncjob: invalid date range")
	ErrJobNotPending    = errors.New("syncjob: job is not pending")
)
