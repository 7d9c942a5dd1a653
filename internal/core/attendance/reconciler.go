package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ogurasousui/timeclock/internal/core/device"
	"github.com/ogurasousui/timeclock/internal/core/staff"
)

// BatchErrorCode は突合処理中の 1 打刻に対するエラー種別です。
type BatchErrorCode string

const (
	BatchErrorEmployeeMapping BatchErrorCode = "EMPLOYEE_MAPPING"
	BatchErrorValidation      BatchErrorCode = "VALIDATION"
	BatchErrorPersistence     BatchErrorCode = "PERSISTENCE"
)

// BatchError は打刻 1 件の適用に失敗した理由です。バッチ全体は継続します。
type BatchError struct {
	Code          BatchErrorCode
	EmployeeCode  string
	TransactionID string
	Message       string
}

// BatchSummary は 1 バッチ分の突合結果です。
type BatchSummary struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []BatchError
}

// Merge は別のサマリーを取り込みます。
func (s *BatchSummary) Merge(other *BatchSummary) {
	if other == nil {
		return
	}
	s.TotalProcessed += other.TotalProcessed
	s.Created += other.Created
	s.Skipped += other.Skipped
	s.Errors = append(s.Errors, other.Errors...)
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Reconciler は端末打刻を勤怠レコードへ突合します。
// 同一打刻バッチを同一の保存状態に対して再実行しても追加のレコードは
// 作成されません (冪等)。
//
// 突合は期間の確定 (FinalizePeriod) より前に完了している前提です。
// 確定済み期間に属する日付のガードは持たないため、遅延した同期ジョブは
// 対象期間を確定する前に実行してください。
type Reconciler struct {
	records Repository
	staff   staff.Repository
	clock   Clock
}

// NewReconciler は Reconciler を生成します。
func NewReconciler(records Repository, staffRepo staff.Repository, clock Clock) *Reconciler {
	if clock == nil {
		clock = realClock{}
	}
	return &Reconciler{records: records, staff: staffRepo, clock: clock}
}

// Reconcile は打刻のバッチを適用し、サマリーを返します。
// 従業員の解決失敗や検証エラーは記録されますがバッチを停止しません。
func (r *Reconciler) Reconcile(ctx context.Context, punches []device.Punch) (*BatchSummary, error) {
	summary := &BatchSummary{}

	for _, punch := range punches {
		summary.TotalProcessed++

		// 取引 ID の欠落を「既知の重複」と誤認すると 2 件目以降の打刻を
		// 失います。重複判定の前にはじきます。
		if punch.TransactionID == "" {
			summary.Errors = append(summary.Errors, BatchError{
				Code:         BatchErrorValidation,
				EmployeeCode: punch.EmployeeCode,
				Message:      "missing transaction id",
			})
			continue
		}

		seen, err := r.records.TransactionSeen(ctx, punch.TransactionID)
		if err != nil {
			return summary, fmt.Errorf("attendance: check transaction %s: %w", punch.TransactionID, err)
		}
		if seen {
			summary.Skipped++
			continue
		}

		member, err := r.staff.FindByCode(ctx, punch.EmployeeCode)
		if err != nil {
			if errors.Is(err, staff.ErrStaffNotFound) {
				summary.Errors = append(summary.Errors, BatchError{
					Code:          BatchErrorEmployeeMapping,
					EmployeeCode:  punch.EmployeeCode,
					TransactionID: punch.TransactionID,
					Message:       fmt.Sprintf("no staff for employee code %q", punch.EmployeeCode),
				})
				continue
			}
			return summary, fmt.Errorf("attendance: resolve employee %s: %w", punch.EmployeeCode, err)
		}

		created, batchErr, err := r.applyPunch(ctx, member.ID, punch)
		if err != nil {
			return summary, err
		}
		if batchErr != nil {
			summary.Errors = append(summary.Errors, *batchErr)
		}
		if created {
			summary.Created++
		}
	}

	return summary, nil
}

// applyPunch は 1 打刻をレコードへ反映します。
func (r *Reconciler) applyPunch(ctx context.Context, staffID string, punch device.Punch) (created bool, batchErr *BatchError, err error) {
	date := DayOf(punch.Timestamp)
	now := r.clock.Now()

	record, err := r.records.FindRecord(ctx, staffID, date)
	if err != nil && !errors.Is(err, ErrRecordNotFound) {
		return false, nil, fmt.Errorf("attendance: find record: %w", err)
	}

	if record == nil {
		record = &Record{
			StaffID:             staffID,
			Date:                date,
			SourceTransactionID: punch.TransactionID,
			SyncStatus:          SyncStatusSynced,
			ValidationStatus:    ValidationStatusPending,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		applyTimestamp(record, punch)
		batchErr = deriveTotals(record, punch)

		stored, err := r.records.CreateRecord(ctx, record)
		if err != nil {
			return false, nil, fmt.Errorf("attendance: create record: %w", err)
		}
		if err := r.records.MarkTransactionApplied(ctx, punch.TransactionID, stored.ID); err != nil {
			return false, nil, fmt.Errorf("attendance: mark transaction: %w", err)
		}
		return true, batchErr, nil
	}

	applyTimestamp(record, punch)
	batchErr = deriveTotals(record, punch)
	record.UpdatedAt = now

	if _, err := r.records.UpdateRecord(ctx, record); err != nil {
		return false, nil, fmt.Errorf("attendance: update record: %w", err)
	}
	if err := r.records.MarkTransactionApplied(ctx, punch.TransactionID, record.ID); err != nil {
		return false, nil, fmt.Errorf("attendance: mark transaction: %w", err)
	}
	return false, batchErr, nil
}

// applyTimestamp は打刻種別に応じて時刻を反映します。
// 出勤は最も早い打刻、退勤は最も遅い打刻を採用します。
func applyTimestamp(record *Record, punch device.Punch) {
	ts := punch.Timestamp.UTC()

	switch punch.Type {
	case device.PunchIn:
		if record.ClockIn == nil || ts.Before(*record.ClockIn) {
			record.ClockIn = &ts
		}
	case device.PunchOut:
		if record.ClockOut == nil || ts.After(*record.ClockOut) {
			record.ClockOut = &ts
		}
	}
}

// deriveTotals は両方の時刻が揃ったときだけ TotalHours を導出します。
// 出勤が退勤より後の場合は検証エラーとして衝突フラグを立てます。
func deriveTotals(record *Record, punch device.Punch) *BatchError {
	if record.ClockIn == nil || record.ClockOut == nil {
		record.TotalHours = nil
		record.ValidationStatus = ValidationStatusPending
		return nil
	}

	if record.ClockIn.After(*record.ClockOut) {
		record.TotalHours = nil
		record.ValidationStatus = ValidationStatusInvalid
		record.HasConflict = true
		return &BatchError{
			Code:          BatchErrorValidation,
			TransactionID: punch.TransactionID,
			Message:       fmt.Sprintf("clock-in %s after clock-out %s", record.ClockIn.Format(time.RFC3339), record.ClockOut.Format(time.RFC3339)),
		}
	}

	hours := record.ClockOut.Sub(*record.ClockIn).Hours()
	record.TotalHours = &hours
	record.ValidationStatus = ValidationStatusValid
	record.HasConflict = false
	return nil
}

// DayOf はタイムスタンプを UTC の日付 (0 時) に正規化します。
func DayOf(ts time.Time) time.Time {
	t := ts.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
