package handler

import (
	"errors"

	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/device"
	"github.com/ogurasousui/timeclock/internal/core/payroll"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, staff.ErrInvalidID),
		errors.Is(err, staff.ErrInvalidCode),
		errors.Is(err, staff.ErrInvalidName),
		errors.Is(err, staff.ErrInvalidStatus),
		errors.Is(err, staff.ErrInvalidRate),
		errors.Is(err, attendance.ErrInvalidPeriodID),
		errors.Is(err, attendance.ErrInvalidDateRange),
		errors.Is(err, payroll.ErrInvalidPeriodID),
		errors.Is(err, syncjob.ErrInvalidJobID),
		errors.Is(err, syncjob.ErrInvalidJobType),
		errors.Is(err, syncjob.ErrInvalidDateRange),
		errors.Is(err, syncjob.ErrNoDevices),
		errors.Is(err, syncjob.ErrUnknownDevice):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, staff.ErrCodeAlreadyExists),
		errors.Is(err, payroll.ErrPeriodAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, staff.ErrStaffNotFound),
		errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, attendance.ErrPeriodNotFound),
		errors.Is(err, payroll.ErrPeriodNotFound),
		errors.Is(err, syncjob.ErrJobNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, attendance.ErrPeriodFinalized),
		errors.Is(err, attendance.ErrPeriodNotFinalized),
		errors.Is(err, payroll.ErrNotFinalized),
		errors.Is(err, payroll.ErrAlreadyApproved),
		errors.Is(err, payroll.ErrNotCalculated),
		errors.Is(err, syncjob.ErrJobNotPending):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, device.ErrCircuitOpen):
		return status.Error(codes.Unavailable, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
