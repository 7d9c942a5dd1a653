package attendance

import "errors"

var (
	ErrInvalidPeriodID    = errors.New("attendance: invalid period id")
	ErrInvalidDateRange   = errors.New("attendance: invalid date range")
	ErrRecordNotFound     = errors.New("attendance: record not found")
	ErrPeriodNotFound     = errors.New("attendance: period not found")
	ErrPeriodFinalized    = errors.New("attendance: period already finalized")
	ErrPeriodNotFinalized = errors.New("attendance: period must be finalized")
)
