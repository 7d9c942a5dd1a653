package payroll

import (
	"context"
	"time"
)

// Repository は給与期間・給与明細の永続化の抽象です。
type Repository interface {
	CreatePeriod(ctx context.Context, p *Period) (*Period, error)
	UpdatePeriod(ctx context.Context, p *Period) (*Period, error)
	FindPeriod(ctx context.Context, id string) (*Period, error)
	// FindPeriodByAttendancePeriod は勤怠期間に紐づく給与期間を返します。
	FindPeriodByAttendancePeriod(ctx context.Context, attendancePeriodID string) (*Period, error)

	// DeleteRecords は給与期間の明細を全削除します (再計算は全置換)。
	DeleteRecords(ctx context.Context, payrollPeriodID string) error
	InsertRecords(ctx context.Context, records []*Record) error
	ListRecords(ctx context.Context, payrollPeriodID string) ([]*Record, error)
}

// AuditLogger は監査ログの追記口です。
type AuditLogger interface {
	Append(ctx context.Context, entry AuditEntry) error
}

// AuditEntry は監査ログ 1 件です。
type AuditEntry struct {
	Action     string
	ActorID    string
	TargetID   string
	Detail     string
	RecordedAt time.Time
}
