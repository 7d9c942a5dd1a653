package attendance

import (
	"context"
	"time"
)

// Repository は勤怠レコード・勤怠期間の永続化の抽象です。
type Repository interface {
	CreateRecord(ctx context.Context, r *Record) (*Record, error)
	UpdateRecord(ctx context.Context, r *Record) (*Record, error)
	FindRecord(ctx context.Context, staffID string, date time.Time) (*Record, error)
	ListRecords(ctx context.Context, from, to time.Time) ([]*Record, error)

	// TransactionSeen は端末トランザクション ID が適用済みかを返します。
	TransactionSeen(ctx context.Context, transactionID string) (bool, error)
	// MarkTransactionApplied は端末トランザクション ID を適用済みとして記録します。
	MarkTransactionApplied(ctx context.Context, transactionID, recordID string) error

	CreatePeriod(ctx context.Context, p *Period) (*Period, error)
	UpdatePeriod(ctx context.Context, p *Period) (*Period, error)
	FindPeriod(ctx context.Context, id string) (*Period, error)
	FindPeriodByRange(ctx context.Context, start, end time.Time) (*Period, error)
}
