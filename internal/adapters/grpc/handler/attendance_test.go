package handler

import (
	"context"
	"testing"
	"time"

	attendancepb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/attendance/v1"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubAttendanceUseCase struct {
	createStart time.Time
	createEnd   time.Time
	createOut   *attendance.Period
	createErr   error

	getOut *attendance.Period
	getErr error

	finalizeOut *attendance.Period
	finalizeErr error

	recordsOut []*attendance.Record
	recordsErr error
}

func (s *stubAttendanceUseCase) CreatePeriod(_ context.Context, start, end time.Time) (*attendance.Period, error) {
	s.createStart = start
	s.createEnd = end
	return s.createOut, s.createErr
}

func (s *stubAttendanceUseCase) GetPeriod(context.Context, string) (*attendance.Period, error) {
	return s.getOut, s.getErr
}

func (s *stubAttendanceUseCase) FinalizePeriod(context.Context, string) (*attendance.Period, error) {
	return s.finalizeOut, s.finalizeErr
}

func (s *stubAttendanceUseCase) RecordsForPeriod(context.Context, *attendance.Period) ([]*attendance.Record, error) {
	return s.recordsOut, s.recordsErr
}

func TestAttendanceGrpcHandler_CreatePeriod(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	stub := &stubAttendanceUseCase{
		createOut: &attendance.Period{
			ID:        "period-1",
			StartDate: start,
			EndDate:   end,
			Status:    attendance.PeriodStatusPending,
		},
	}
	handler := NewAttendanceGrpcHandler(stub)

	resp, err := handler.CreatePeriod(context.Background(), &attendancepb.CreatePeriodRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})
	if err != nil {
		t.Fatalf("CreatePeriod returned error: %v", err)
	}

	if !stub.createStart.Equal(start) || !stub.createEnd.Equal(end) {
		t.Errorf("expected parsed dates passed through, got %s/%s", stub.createStart, stub.createEnd)
	}

	if resp.GetPeriod().GetId() != "period-1" {
		t.Errorf("unexpected period id %s", resp.GetPeriod().GetId())
	}
	if resp.GetPeriod().GetStatus() != attendancepb.PeriodStatus_PERIOD_STATUS_PENDING {
		t.Errorf("expected PENDING, got %v", resp.GetPeriod().GetStatus())
	}
}

func TestAttendanceGrpcHandler_CreatePeriod_BadDate(t *testing.T) {
	t.Parallel()

	handler := NewAttendanceGrpcHandler(&stubAttendanceUseCase{})

	_, err := handler.CreatePeriod(context.Background(), &attendancepb.CreatePeriodRequest{
		StartDate: "06/01/2024",
		EndDate:   "2024-06-30",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestAttendanceGrpcHandler_FinalizePeriod_AlreadyFinalized(t *testing.T) {
	t.Parallel()

	stub := &stubAttendanceUseCase{finalizeErr: attendance.ErrPeriodFinalized}
	handler := NewAttendanceGrpcHandler(stub)

	_, err := handler.FinalizePeriod(context.Background(), &attendancepb.FinalizePeriodRequest{Id: "period-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestAttendanceGrpcHandler_ListPeriodRecords(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	clockIn := date.Add(9 * time.Hour)
	clockOut := date.Add(17 * time.Hour)
	hours := 8.0

	stub := &stubAttendanceUseCase{
		getOut: &attendance.Period{ID: "period-1", StartDate: date, EndDate: date.AddDate(0, 0, 6)},
		recordsOut: []*attendance.Record{{
			ID:               "rec-1",
			StaffID:          "staff-1",
			Date:             date,
			ClockIn:          &clockIn,
			ClockOut:         &clockOut,
			TotalHours:       &hours,
			SyncStatus:       attendance.SyncStatusSynced,
			ValidationStatus: attendance.ValidationStatusValid,
		}},
	}
	handler := NewAttendanceGrpcHandler(stub)

	resp, err := handler.ListPeriodRecords(context.Background(), &attendancepb.ListPeriodRecordsRequest{PeriodId: "period-1"})
	if err != nil {
		t.Fatalf("ListPeriodRecords returned error: %v", err)
	}

	if len(resp.GetRecords()) != 1 {
		t.Fatalf("expected 1 record, got %d", len(resp.GetRecords()))
	}

	rec := resp.GetRecords()[0]
	if rec.GetDate() != "2024-06-03" || rec.GetTotalHours().GetValue() != 8.0 {
		t.Errorf("unexpected record %+v", rec)
	}
}
