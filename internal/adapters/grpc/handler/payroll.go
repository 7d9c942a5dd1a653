package handler

import (
	"context"

	payrollpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/timeclock/internal/core/payroll"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// PayrollGrpcHandler は PayrollService の gRPC 実装です。
type PayrollGrpcHandler struct {
	svc payroll.UseCase
	payrollpb.UnimplementedPayrollServiceServer
}

// NewPayrollGrpcHandler は PayrollGrpcHandler を生成します。
func NewPayrollGrpcHandler(svc payroll.UseCase) *PayrollGrpcHandler {
	return &PayrollGrpcHandler{svc: svc}
}

// ValidateEligibility は勤怠期間が給与計算可能かを検証します。
func (h *PayrollGrpcHandler) ValidateEligibility(ctx context.Context, req *payrollpb.ValidateEligibilityRequest) (*payrollpb.ValidateEligibilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ValidateEligibility(ctx, req.GetAttendancePeriodId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.ValidateEligibilityResponse{
		Eligible: result.Eligible,
		Reason:   result.Reason,
	}, nil
}

// GetCalculationPreview は書き込みを伴わない計算結果を返します。
func (h *PayrollGrpcHandler) GetCalculationPreview(ctx context.Context, req *payrollpb.GetCalculationPreviewRequest) (*payrollpb.GetCalculationPreviewResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	preview, err := h.svc.GetCalculationPreview(ctx, req.GetAttendancePeriodId())
	if err != nil {
		return nil, toStatusError(err)
	}

	breakdowns := make([]*payrollpb.Breakdown, 0, len(preview.Breakdowns))
	for _, b := range preview.Breakdowns {
		breakdowns = append(breakdowns, &payrollpb.Breakdown{
			StaffId:             b.StaffID,
			TotalHours:          b.TotalHours,
			StandardHours:       b.StandardHours,
			OvertimeHours:       b.OvertimeHours,
			DailyOvertimeHours:  b.DailyOvertimeHours,
			WeeklyOvertimeHours: b.WeeklyOvertimeHours,
			StandardRate:        b.StandardRate,
			OvertimeRate:        b.OvertimeRate,
			GrossPay:            b.GrossPay,
		})
	}

	return &payrollpb.GetCalculationPreviewResponse{
		Breakdowns:         breakdowns,
		TotalHours:         preview.TotalHours,
		TotalOvertimeHours: preview.TotalOvertimeHours,
		TotalAmount:        preview.TotalAmount,
	}, nil
}

// CalculatePayroll は給与計算を実行します。既存の明細は全置換されます。
func (h *PayrollGrpcHandler) CalculatePayroll(ctx context.Context, req *payrollpb.CalculatePayrollRequest) (*payrollpb.CalculatePayrollResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	period, err := h.svc.CalculateForPeriod(ctx, req.GetAttendancePeriodId(), req.GetRequestedBy())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.CalculatePayrollResponse{Period: toProtoPayrollPeriod(period)}, nil
}

// ApprovePayroll は計算済みの給与期間を承認します。
func (h *PayrollGrpcHandler) ApprovePayroll(ctx context.Context, req *payrollpb.ApprovePayrollRequest) (*payrollpb.ApprovePayrollResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	period, err := h.svc.ApprovePeriod(ctx, req.GetPayrollPeriodId(), req.GetRequestedBy())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &payrollpb.ApprovePayrollResponse{Period: toProtoPayrollPeriod(period)}, nil
}

// GetPayrollSummary は給与期間と明細の集計を返します。
func (h *PayrollGrpcHandler) GetPayrollSummary(ctx context.Context, req *payrollpb.GetPayrollSummaryRequest) (*payrollpb.GetPayrollSummaryResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	summary, err := h.svc.GetSummary(ctx, req.GetPayrollPeriodId())
	if err != nil {
		return nil, toStatusError(err)
	}

	records := make([]*payrollpb.PayrollRecord, 0, len(summary.Records))
	for _, rec := range summary.Records {
		records = append(records, &payrollpb.PayrollRecord{
			Id:              rec.ID,
			PayrollPeriodId: rec.PayrollPeriodID,
			StaffId:         rec.StaffID,
			StandardHours:   rec.StandardHours,
			OvertimeHours:   rec.OvertimeHours,
			StandardRate:    rec.StandardRate,
			OvertimeRate:    rec.OvertimeRate,
			GrossPay:        rec.GrossPay,
		})
	}

	return &payrollpb.GetPayrollSummaryResponse{
		Period:  toProtoPayrollPeriod(summary.Period),
		Records: records,
	}, nil
}

func toProtoPayrollPeriod(p *payroll.Period) *payrollpb.PayrollPeriod {
	if p == nil {
		return nil
	}
	return &payrollpb.PayrollPeriod{
		Id:                 p.ID,
		AttendancePeriodId: p.AttendancePeriodID,
		StartDate:          p.StartDate.Format(dateLayout),
		EndDate:            p.EndDate.Format(dateLayout),
		Status:             toProtoPayrollStatus(p.Status),
		TotalHours:         p.TotalHours,
		TotalOvertimeHours: p.TotalOvertimeHours,
		TotalAmount:        p.TotalAmount,
		CreatedAt:          timestamppb.New(p.CreatedAt),
		UpdatedAt:          timestamppb.New(p.UpdatedAt),
	}
}

func toProtoPayrollStatus(s payroll.PeriodStatus) payrollpb.PayrollStatus {
	switch s {
	case payroll.PeriodStatusPending:
		return payrollpb.PayrollStatus_PAYROLL_STATUS_PENDING
	case payroll.PeriodStatusCalculating:
		return payrollpb.PayrollStatus_PAYROLL_STATUS_CALCULATING
	case payroll.PeriodStatusCalculated:
		return payrollpb.PayrollStatus_PAYROLL_STATUS_CALCULATED
	case payroll.PeriodStatusApproved:
		return payrollpb.PayrollStatus_PAYROLL_STATUS_APPROVED
	default:
		return payrollpb.PayrollStatus_PAYROLL_STATUS_UNSPECIFIED
	}
}
