package postgres

import (
	"context"

	"github.com/ogurasousui/timeclock/internal/core/payroll"
	pgdb "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
)

// AuditLogger は PostgreSQL を利用した監査ログの実装です。
// 給与計算・承認と同一トランザクション内で追記されます。
type AuditLogger struct {
	pool pgdb.Queryer
}

// NewAuditLogger は AuditLogger を生成します。
func NewAuditLogger(pool pgdb.Queryer) *AuditLogger {
	return &AuditLogger{pool: pool}
}

// Append は監査ログを 1 件追記します。
func (l *AuditLogger) Append(ctx context.Context, entry payroll.AuditEntry) error {
	exec := pgdb.QueryerFromContext(ctx, l.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO audit_log (action, actor_id, target_id, detail, recorded_at)
        VALUES ($1, $2, $3, $4, $5)
    `,
		entry.Action,
		entry.ActorID,
		entry.TargetID,
		entry.Detail,
		entry.RecordedAt,
	)
	return err
}
