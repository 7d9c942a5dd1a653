package handler

import (
	"context"
	"fmt"
	"time"

	attendancepb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/attendance/v1"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const dateLayout = "2006-01-02"

// AttendanceGrpcHandler は AttendanceService の gRPC 実装です。
type AttendanceGrpcHandler struct {
	svc attendance.UseCase
	attendancepb.UnimplementedAttendanceServiceServer
}

// NewAttendanceGrpcHandler は AttendanceGrpcHandler を生成します。
func NewAttendanceGrpcHandler(svc attendance.UseCase) *AttendanceGrpcHandler {
	return &AttendanceGrpcHandler{svc: svc}
}

// CreatePeriod は勤怠期間を作成します。
func (h *AttendanceGrpcHandler) CreatePeriod(ctx context.Context, req *attendancepb.CreatePeriodRequest) (*attendancepb.CreatePeriodResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	start, err := parseDate(req.GetStartDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("start_date: %v", err))
	}
	end, err := parseDate(req.GetEndDate())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("end_date: %v", err))
	}

	created, err := h.svc.CreatePeriod(ctx, start, end)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &attendancepb.CreatePeriodResponse{Period: toProtoPeriod(created)}, nil
}

// GetPeriod は勤怠期間を取得します。
func (h *AttendanceGrpcHandler) GetPeriod(ctx context.Context, req *attendancepb.GetPeriodRequest) (*attendancepb.GetPeriodResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetPeriod(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &attendancepb.GetPeriodResponse{Period: toProtoPeriod(found)}, nil
}

// FinalizePeriod は勤怠期間を確定します。
func (h *AttendanceGrpcHandler) FinalizePeriod(ctx context.Context, req *attendancepb.FinalizePeriodRequest) (*attendancepb.FinalizePeriodResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	finalized, err := h.svc.FinalizePeriod(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &attendancepb.FinalizePeriodResponse{Period: toProtoPeriod(finalized)}, nil
}

// ListPeriodRecords は期間内の勤怠レコードを取得します。
func (h *AttendanceGrpcHandler) ListPeriodRecords(ctx context.Context, req *attendancepb.ListPeriodRecordsRequest) (*attendancepb.ListPeriodRecordsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	period, err := h.svc.GetPeriod(ctx, req.GetPeriodId())
	if err != nil {
		return nil, toStatusError(err)
	}

	records, err := h.svc.RecordsForPeriod(ctx, period)
	if err != nil {
		return nil, toStatusError(err)
	}

	protoRecords := make([]*attendancepb.AttendanceRecord, 0, len(records))
	for _, rec := range records {
		protoRecords = append(protoRecords, toProtoRecord(rec))
	}

	return &attendancepb.ListPeriodRecordsResponse{Records: protoRecords}, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return parsed.UTC(), nil
}

func toProtoPeriod(p *attendance.Period) *attendancepb.Period {
	if p == nil {
		return nil
	}
	return &attendancepb.Period{
		Id:        p.ID,
		StartDate: p.StartDate.Format(dateLayout),
		EndDate:   p.EndDate.Format(dateLayout),
		Status:    toProtoPeriodStatus(p.Status),
		CreatedAt: timestamppb.New(p.CreatedAt),
		UpdatedAt: timestamppb.New(p.UpdatedAt),
	}
}

func toProtoPeriodStatus(s attendance.PeriodStatus) attendancepb.PeriodStatus {
	switch s {
	case attendance.PeriodStatusPending:
		return attendancepb.PeriodStatus_PERIOD_STATUS_PENDING
	case attendance.PeriodStatusFinalized:
		return attendancepb.PeriodStatus_PERIOD_STATUS_FINALIZED
	default:
		return attendancepb.PeriodStatus_PERIOD_STATUS_UNSPECIFIED
	}
}

func toProtoRecord(rec *attendance.Record) *attendancepb.AttendanceRecord {
	if rec == nil {
		return nil
	}

	protoRec := &attendancepb.AttendanceRecord{
		Id:               rec.ID,
		StaffId:          rec.StaffID,
		Date:             rec.Date.Format(dateLayout),
		SyncStatus:       string(rec.SyncStatus),
		ValidationStatus: string(rec.ValidationStatus),
		HasConflict:      rec.HasConflict,
	}

	if rec.ClockIn != nil {
		protoRec.ClockIn = timestamppb.New(*rec.ClockIn)
	}
	if rec.ClockOut != nil {
		protoRec.ClockOut = timestamppb.New(*rec.ClockOut)
	}
	if rec.TotalHours != nil {
		protoRec.TotalHours = wrapperspb.Double(*rec.TotalHours)
	}

	return protoRec
}
