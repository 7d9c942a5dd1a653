package attendance

import "time"

// SyncStatus は勤怠レコードの同期状態です。
type SyncStatus string

const (
	SyncStatusSynced SyncStatus = "synced"
	SyncStatusManual SyncStatus = "manual"
)

// ValidationStatus は勤怠レコードの検証状態です。
type ValidationStatus string

const (
	ValidationStatusPending ValidationStatus = "pending"
	ValidationStatusValid   ValidationStatus = "valid"
	ValidationStatusInvalid ValidationStatus = "invalid"
)

// Record は 1 従業員 1 日分の勤怠レコードです。
// 不変条件: ClockIn と ClockOut が両方存在するとき ClockIn <= ClockOut。
// TotalHours は両方の時刻が揃うまで nil です。
type Record struct {
	ID                  string
	StaffID             string
	Date                time.Time
	ClockIn             *time.Time
	ClockOut            *time.Time
	TotalHours          *float64
	SourceTransactionID string
	SyncStatus          SyncStatus
	ValidationStatus    ValidationStatus
	HasConflict         bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PeriodStatus は勤怠期間の状態です。
type PeriodStatus string

const (
	PeriodStatusPending   PeriodStatus = "PENDING"
	PeriodStatusFinalized PeriodStatus = "FINALIZED"
)

// Period は勤怠期間です。期間内のレコードを日付範囲で参照します。
// FINALIZED への遷移は一方向で、以降の勤怠編集は明示的なアンロック操作
// (本コアの範囲外) なしには行えません。
type Period struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
	Status    PeriodStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains は日付がこの期間に含まれるかを返します。
func (p *Period) Contains(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}
