package handler

import (
	"context"
	"testing"
	"time"

	payrollpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/payroll/v1"
	"github.com/ogurasousui/timeclock/internal/core/payroll"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type stubPayrollUseCase struct {
	eligibilityOut *payroll.EligibilityResult
	eligibilityErr error

	previewOut *payroll.Preview
	previewErr error

	calculateInput string
	calculateBy    string
	calculateOut   *payroll.Period
	calculateErr   error

	approveOut *payroll.Period
	approveErr error

	summaryOut *payroll.Summary
	summaryErr error
}

func (s *stubPayrollUseCase) ValidateEligibility(context.Context, string) (*payroll.EligibilityResult, error) {
	return s.eligibilityOut, s.eligibilityErr
}

func (s *stubPayrollUseCase) GetCalculationPreview(context.Context, string) (*payroll.Preview, error) {
	return s.previewOut, s.previewErr
}

func (s *stubPayrollUseCase) CalculateForPeriod(_ context.Context, attendancePeriodID, requesterID string) (*payroll.Period, error) {
	s.calculateInput = attendancePeriodID
	s.calculateBy = requesterID
	return s.calculateOut, s.calculateErr
}

func (s *stubPayrollUseCase) ApprovePeriod(context.Context, string, string) (*payroll.Period, error) {
	return s.approveOut, s.approveErr
}

func (s *stubPayrollUseCase) GetSummary(context.Context, string) (*payroll.Summary, error) {
	return s.summaryOut, s.summaryErr
}

func calculatedPeriod() *payroll.Period {
	now := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	return &payroll.Period{
		ID:                 "pay-1",
		AttendancePeriodID: "period-1",
		StartDate:          time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:            time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Status:             payroll.PeriodStatusCalculated,
		TotalHours:         50,
		TotalOvertimeHours: 10,
		TotalAmount:        550,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func TestPayrollGrpcHandler_ValidateEligibility(t *testing.T) {
	t.Parallel()

	stub := &stubPayrollUseCase{
		eligibilityOut: &payroll.EligibilityResult{
			Eligible: false,
			Reason:   "attendance period must be finalized",
		},
	}
	handler := NewPayrollGrpcHandler(stub)

	resp, err := handler.ValidateEligibility(context.Background(), &payrollpb.ValidateEligibilityRequest{
		AttendancePeriodId: "period-1",
	})
	if err != nil {
		t.Fatalf("ValidateEligibility returned error: %v", err)
	}

	if resp.GetEligible() {
		t.Errorf("expected ineligible result")
	}
	if resp.GetReason() != "attendance period must be finalized" {
		t.Errorf("unexpected reason %q", resp.GetReason())
	}
}

func TestPayrollGrpcHandler_CalculatePayroll(t *testing.T) {
	t.Parallel()

	stub := &stubPayrollUseCase{calculateOut: calculatedPeriod()}
	handler := NewPayrollGrpcHandler(stub)

	resp, err := handler.CalculatePayroll(context.Background(), &payrollpb.CalculatePayrollRequest{
		AttendancePeriodId: "period-1",
		RequestedBy:        "admin",
	})
	if err != nil {
		t.Fatalf("CalculatePayroll returned error: %v", err)
	}

	if stub.calculateInput != "period-1" || stub.calculateBy != "admin" {
		t.Errorf("expected inputs passed through, got %s/%s", stub.calculateInput, stub.calculateBy)
	}

	period := resp.GetPeriod()
	if period.GetId() != "pay-1" || period.GetStatus() != payrollpb.PayrollStatus_PAYROLL_STATUS_CALCULATED {
		t.Errorf("unexpected period %+v", period)
	}
	if period.GetTotalAmount() != 550 {
		t.Errorf("expected total amount 550, got %f", period.GetTotalAmount())
	}
	if period.GetStartDate() != "2024-06-01" || period.GetEndDate() != "2024-06-30" {
		t.Errorf("unexpected dates %s/%s", period.GetStartDate(), period.GetEndDate())
	}
}

func TestPayrollGrpcHandler_CalculatePayroll_NotFinalized(t *testing.T) {
	t.Parallel()

	stub := &stubPayrollUseCase{calculateErr: payroll.ErrNotFinalized}
	handler := NewPayrollGrpcHandler(stub)

	_, err := handler.CalculatePayroll(context.Background(), &payrollpb.CalculatePayrollRequest{
		AttendancePeriodId: "period-1",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestPayrollGrpcHandler_ApprovePayroll_AlreadyApproved(t *testing.T) {
	t.Parallel()

	stub := &stubPayrollUseCase{approveErr: payroll.ErrAlreadyApproved}
	handler := NewPayrollGrpcHandler(stub)

	_, err := handler.ApprovePayroll(context.Background(), &payrollpb.ApprovePayrollRequest{
		PayrollPeriodId: "pay-1",
	})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}
}

func TestPayrollGrpcHandler_GetPayrollSummary(t *testing.T) {
	t.Parallel()

	stub := &stubPayrollUseCase{
		summaryOut: &payroll.Summary{
			Period: calculatedPeriod(),
			Records: []*payroll.Record{{
				ID:              "rec-1",
				PayrollPeriodID: "pay-1",
				StaffID:         "staff-1",
				StandardHours:   40,
				OvertimeHours:   10,
				StandardRate:    10,
				OvertimeRate:    15,
				GrossPay:        550,
			}},
		},
	}
	handler := NewPayrollGrpcHandler(stub)

	resp, err := handler.GetPayrollSummary(context.Background(), &payrollpb.GetPayrollSummaryRequest{
		PayrollPeriodId: "pay-1",
	})
	if err != nil {
		t.Fatalf("GetPayrollSummary returned error: %v", err)
	}

	if len(resp.GetRecords()) != 1 || resp.GetRecords()[0].GetGrossPay() != 550 {
		t.Errorf("unexpected records %+v", resp.GetRecords())
	}
}
