package payroll

import "errors"

var (
	ErrInvalidPeriodID     = errors.New("payroll: invalid period id")
	ErrPeriodNotFound      = errors.New("payroll: period not found")
	ErrPeriodAlreadyExists = errors.New("payroll: period already exists for attendance period")

	// ErrNotFinalized / ErrAlreadyApproved は適格性検証の失敗理由です。
	ErrNotFinalized    = errors.New("payroll: attendance period must be finalized")
	ErrAlreadyApproved = errors.New("payroll: payroll already approved for period")
	ErrNotCalculated   = errors.New("payroll: period must be calculated before approval")
)

// EligibilityResult は適格性検証の結果です。
type EligibilityResult struct {
	Eligible bool
	Reason   string
}
