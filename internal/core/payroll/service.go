package payroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/notify"
	"github.com/ogurasousui/timeclock/internal/core/staff"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
// 給与計算は適格性の再検証を権威あるものにするため SERIALIZABLE を要求します。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinSerializable(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinSerializable(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Config は給与計算の閾値と既定レートです。
type Config struct {
	Thresholds          Thresholds
	DefaultStandardRate float64
	DefaultOvertimeRate float64
}

// Service は給与計算のユースケースをまとめます。
type Service struct {
	payroll    Repository
	attendance attendance.Repository
	staff      staff.Repository
	audit      AuditLogger
	tx         TransactionManager
	dispatcher notify.Dispatcher
	clock      Clock
	cfg        Config
	onRun      func(result string)
}

// SetRunHook は計算実行の結果 ("success" / "failure") を受け取るフックを
// 登録します。計測用で、処理には影響しません。
func (s *Service) SetRunHook(fn func(result string)) {
	s.onRun = fn
}

func (s *Service) reportRun(result string) {
	if s.onRun != nil {
		s.onRun(result)
	}
}

// UseCase は給与計算ユースケースの公開インターフェースです。
type UseCase interface {
	ValidateEligibility(ctx context.Context, attendancePeriodID string) (*EligibilityResult, error)
	GetCalculationPreview(ctx context.Context, attendancePeriodID string) (*Preview, error)
	CalculateForPeriod(ctx context.Context, attendancePeriodID, requesterID string) (*Period, error)
	ApprovePeriod(ctx context.Context, payrollPeriodID, requesterID string) (*Period, error)
	GetSummary(ctx context.Context, payrollPeriodID string) (*Summary, error)
}

// NewService は Service を生成します。
func NewService(payrollRepo Repository, attendanceRepo attendance.Repository, staffRepo staff.Repository, audit AuditLogger, tx TransactionManager, dispatcher notify.Dispatcher, clock Clock, cfg Config) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if dispatcher == nil {
		dispatcher = notify.Noop{}
	}
	if clock == nil {
		clock = realClock{}
	}
	cfg.Thresholds = cfg.Thresholds.normalized()
	return &Service{
		payroll:    payrollRepo,
		attendance: attendanceRepo,
		staff:      staffRepo,
		audit:      audit,
		tx:         tx,
		dispatcher: dispatcher,
		clock:      clock,
		cfg:        cfg,
	}
}

// Preview は書き込みを伴わない計算結果です。
type Preview struct {
	AttendancePeriodID string
	Breakdowns         []Breakdown
	TotalHours         float64
	TotalOvertimeHours float64
	TotalAmount        float64
}

// Summary は給与期間の集計ビューです。
type Summary struct {
	Period  *Period
	Records []*Record
}

// ValidateEligibility は勤怠期間が給与計算可能かを検証します。
// 勤怠期間が FINALIZED でない、または承認済みの給与期間が既に存在する
// 場合は不適格です。
func (s *Service) ValidateEligibility(ctx context.Context, attendancePeriodID string) (*EligibilityResult, error) {
	if strings.TrimSpace(attendancePeriodID) == "" {
		return nil, ErrInvalidPeriodID
	}

	var result *EligibilityResult
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		r, err := s.checkEligibility(txCtx, attendancePeriodID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// checkEligibility はトランザクション内からも呼ばれる適格性検査の本体です。
func (s *Service) checkEligibility(ctx context.Context, attendancePeriodID string) (*EligibilityResult, error) {
	period, err := s.attendance.FindPeriod(ctx, attendancePeriodID)
	if err != nil {
		return nil, err
	}

	if period.Status != attendance.PeriodStatusFinalized {
		return &EligibilityResult{Eligible: false, Reason: "attendance period must be finalized"}, nil
	}

	existing, err := s.payroll.FindPeriodByAttendancePeriod(ctx, attendancePeriodID)
	if err != nil && !errors.Is(err, ErrPeriodNotFound) {
		return nil, err
	}
	if existing != nil && existing.Status == PeriodStatusApproved {
		return &EligibilityResult{Eligible: false, Reason: "payroll already approved"}, nil
	}

	return &EligibilityResult{Eligible: true}, nil
}

// GetCalculationPreview は永続化せずに計算結果を返します。
func (s *Service) GetCalculationPreview(ctx context.Context, attendancePeriodID string) (*Preview, error) {
	if strings.TrimSpace(attendancePeriodID) == "" {
		return nil, ErrInvalidPeriodID
	}

	var preview *Preview
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		period, err := s.attendance.FindPeriod(txCtx, attendancePeriodID)
		if err != nil {
			return err
		}

		breakdowns, err := s.computeBreakdowns(txCtx, period)
		if err != nil {
			return err
		}

		preview = &Preview{AttendancePeriodID: attendancePeriodID, Breakdowns: breakdowns}
		for _, b := range breakdowns {
			preview.TotalHours += b.TotalHours
			preview.TotalOvertimeHours += b.OvertimeHours
			preview.TotalAmount += b.GrossPay
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return preview, nil
}

// CalculateForPeriod は単一のアトミックなトランザクション内で給与を計算します。
// 適格性の再検証、CALCULATING への遷移、既存明細の全削除、明細の再作成、
// 集計の更新、監査ログの追記までを一括で行い、途中の失敗はすべて
// ロールバックされます。
func (s *Service) CalculateForPeriod(ctx context.Context, attendancePeriodID, requesterID string) (*Period, error) {
	if strings.TrimSpace(attendancePeriodID) == "" {
		return nil, ErrInvalidPeriodID
	}

	var calculated *Period

	err := s.tx.WithinSerializable(ctx, func(txCtx context.Context) error {
		// チェックとコミットの間の競合を閉じるため、同一トランザクション内で
		// 適格性を再検証します。
		eligibility, err := s.checkEligibility(txCtx, attendancePeriodID)
		if err != nil {
			return err
		}
		if !eligibility.Eligible {
			if strings.Contains(eligibility.Reason, "approved") {
				return fmt.Errorf("%s: %w", attendancePeriodID, ErrAlreadyApproved)
			}
			return fmt.Errorf("%s: %w", attendancePeriodID, ErrNotFinalized)
		}

		attPeriod, err := s.attendance.FindPeriod(txCtx, attendancePeriodID)
		if err != nil {
			return err
		}

		now := s.clock.Now()

		period, err := s.payroll.FindPeriodByAttendancePeriod(txCtx, attendancePeriodID)
		if err != nil {
			if !errors.Is(err, ErrPeriodNotFound) {
				return err
			}
			period, err = s.payroll.CreatePeriod(txCtx, &Period{
				AttendancePeriodID: attendancePeriodID,
				StartDate:          attPeriod.StartDate,
				EndDate:            attPeriod.EndDate,
				Status:             PeriodStatusCalculating,
				CreatedAt:          now,
				UpdatedAt:          now,
			})
			if err != nil {
				return err
			}
		} else {
			period.Status = PeriodStatusCalculating
			period.UpdatedAt = now
			if period, err = s.payroll.UpdatePeriod(txCtx, period); err != nil {
				return err
			}
		}

		// 再計算は差分適用ではなく全置換です。
		if err := s.payroll.DeleteRecords(txCtx, period.ID); err != nil {
			return err
		}

		breakdowns, err := s.computeBreakdowns(txCtx, attPeriod)
		if err != nil {
			return err
		}

		records := make([]*Record, 0, len(breakdowns))
		period.TotalHours = 0
		period.TotalOvertimeHours = 0
		period.TotalAmount = 0

		for _, b := range breakdowns {
			records = append(records, &Record{
				PayrollPeriodID: period.ID,
				StaffID:         b.StaffID,
				StandardHours:   b.StandardHours,
				OvertimeHours:   b.OvertimeHours,
				StandardRate:    b.StandardRate,
				OvertimeRate:    b.OvertimeRate,
				GrossPay:        b.GrossPay,
				CreatedAt:       now,
			})
			period.TotalHours += b.TotalHours
			period.TotalOvertimeHours += b.OvertimeHours
			period.TotalAmount += b.GrossPay
		}

		if err := s.payroll.InsertRecords(txCtx, records); err != nil {
			return err
		}

		period.Status = PeriodStatusCalculated
		period.UpdatedAt = now
		if period, err = s.payroll.UpdatePeriod(txCtx, period); err != nil {
			return err
		}

		if err := s.audit.Append(txCtx, AuditEntry{
			Action:     "payroll.calculate",
			ActorID:    requesterID,
			TargetID:   period.ID,
			Detail:     fmt.Sprintf("calculated %d records, total %.2f", len(records), period.TotalAmount),
			RecordedAt: now,
		}); err != nil {
			return err
		}

		calculated = period
		return nil
	})
	if err != nil {
		s.reportRun("failure")
		return nil, err
	}
	s.reportRun("success")

	s.dispatcher.Send(ctx, notify.ChannelPayroll, notify.Payload{
		Subject: "payroll calculated",
		Body:    fmt.Sprintf("payroll period %s calculated (total %.2f)", calculated.ID, calculated.TotalAmount),
		Tags:    map[string]string{"payroll_period_id": calculated.ID},
	})

	return calculated, nil
}

// ApprovePeriod は CALCULATED な給与期間を承認します。承認は終端状態で、
// 以降の再計算は明示的なアンロック (本コアの範囲外) なしには行えません。
func (s *Service) ApprovePeriod(ctx context.Context, payrollPeriodID, requesterID string) (*Period, error) {
	if strings.TrimSpace(payrollPeriodID) == "" {
		return nil, ErrInvalidPeriodID
	}

	var approved *Period

	err := s.tx.WithinSerializable(ctx, func(txCtx context.Context) error {
		period, err := s.payroll.FindPeriod(txCtx, payrollPeriodID)
		if err != nil {
			return err
		}

		if period.Status != PeriodStatusCalculated {
			return fmt.Errorf("period %s in status %s: %w", payrollPeriodID, period.Status, ErrNotCalculated)
		}

		now := s.clock.Now()
		period.Status = PeriodStatusApproved
		period.UpdatedAt = now

		if period, err = s.payroll.UpdatePeriod(txCtx, period); err != nil {
			return err
		}

		if err := s.audit.Append(txCtx, AuditEntry{
			Action:     "payroll.approve",
			ActorID:    requesterID,
			TargetID:   period.ID,
			Detail:     fmt.Sprintf("approved, total %.2f", period.TotalAmount),
			RecordedAt: now,
		}); err != nil {
			return err
		}

		approved = period
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatcher.Send(ctx, notify.ChannelPayroll, notify.Payload{
		Subject: "payroll approved",
		Body:    fmt.Sprintf("payroll period %s approved", approved.ID),
		Tags:    map[string]string{"payroll_period_id": approved.ID},
	})

	return approved, nil
}

// GetSummary は給与期間と明細の集計ビューを返します。
func (s *Service) GetSummary(ctx context.Context, payrollPeriodID string) (*Summary, error) {
	if strings.TrimSpace(payrollPeriodID) == "" {
		return nil, ErrInvalidPeriodID
	}

	var summary *Summary
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		period, err := s.payroll.FindPeriod(txCtx, payrollPeriodID)
		if err != nil {
			return err
		}
		records, err := s.payroll.ListRecords(txCtx, payrollPeriodID)
		if err != nil {
			return err
		}
		summary = &Summary{Period: period, Records: records}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// computeBreakdowns は期間内の勤怠からレートを解決し、純関数の計算器に渡します。
// 時刻が揃っていない日は 0 時間の行として残します (従業員を脱落させません)。
func (s *Service) computeBreakdowns(ctx context.Context, period *attendance.Period) ([]Breakdown, error) {
	records, err := s.attendance.ListRecords(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	rows := make([]HoursRow, 0, len(records))
	rates := make(map[string]RateCard)

	for _, rec := range records {
		hours := 0.0
		if rec.TotalHours != nil {
			hours = *rec.TotalHours
		}
		rows = append(rows, HoursRow{StaffID: rec.StaffID, Hours: hours})

		if _, ok := rates[rec.StaffID]; ok {
			continue
		}

		card := RateCard{StandardRate: s.cfg.DefaultStandardRate, OvertimeRate: s.cfg.DefaultOvertimeRate}
		member, err := s.staff.FindByID(ctx, rec.StaffID)
		if err != nil {
			if !errors.Is(err, staff.ErrStaffNotFound) {
				return nil, err
			}
		} else {
			if member.StandardRate > 0 {
				card.StandardRate = member.StandardRate
			}
			if member.OvertimeRate > 0 {
				card.OvertimeRate = member.OvertimeRate
			}
		}
		rates[rec.StaffID] = card
	}

	return CalculateOvertime(rows, rates, s.cfg.Thresholds), nil
}
