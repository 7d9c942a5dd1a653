package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	pgdb "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
)

const attendanceUniqueViolationCode = "23505"

// AttendanceRepository は PostgreSQL を利用した勤怠レコード・勤怠期間
// 永続化の実装です。適用済み端末トランザクションの台帳も同じスキーマに
// 持ち、勤怠レコードと同一トランザクション内で更新されます。
type AttendanceRepository struct {
	pool pgdb.Queryer
}

// NewAttendanceRepository は AttendanceRepository を生成します。
func NewAttendanceRepository(pool pgdb.Queryer) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// CreateRecord は勤怠レコードを新規作成します。
func (r *AttendanceRepository) CreateRecord(ctx context.Context, rec *attendance.Record) (*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO attendance_records
            (staff_id, work_date, clock_in, clock_out, total_hours, source_transaction_id,
             sync_status, validation_status, has_conflict, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, staff_id, work_date, clock_in, clock_out, total_hours, source_transaction_id,
                  sync_status, validation_status, has_conflict, created_at, updated_at
    `,
		rec.StaffID,
		rec.Date,
		rec.ClockIn,
		rec.ClockOut,
		rec.TotalHours,
		rec.SourceTransactionID,
		string(rec.SyncStatus),
		string(rec.ValidationStatus),
		rec.HasConflict,
		rec.CreatedAt,
		rec.UpdatedAt,
	)

	created, err := scanAttendanceRecord(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return created, nil
}

// UpdateRecord は勤怠レコードを更新します。
func (r *AttendanceRepository) UpdateRecord(ctx context.Context, rec *attendance.Record) (*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE attendance_records
           SET clock_in = $1,
               clock_out = $2,
               total_hours = $3,
               source_transaction_id = $4,
               sync_status = $5,
               validation_status = $6,
               has_conflict = $7,
               updated_at = $8
         WHERE id = $9
        RETURNING id, staff_id, work_date, clock_in, clock_out, total_hours, source_transaction_id,
                  sync_status, validation_status, has_conflict, created_at, updated_at
    `,
		rec.ClockIn,
		rec.ClockOut,
		rec.TotalHours,
		rec.SourceTransactionID,
		string(rec.SyncStatus),
		string(rec.ValidationStatus),
		rec.HasConflict,
		rec.UpdatedAt,
		rec.ID,
	)

	updated, err := scanAttendanceRecord(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return updated, nil
}

// FindRecord は従業員 ID と日付で勤怠レコードを取得します。
func (r *AttendanceRepository) FindRecord(ctx context.Context, staffID string, date time.Time) (*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, staff_id, work_date, clock_in, clock_out, total_hours, source_transaction_id,
               sync_status, validation_status, has_conflict, created_at, updated_at
          FROM attendance_records
         WHERE staff_id = $1 AND work_date = $2
         LIMIT 1
    `, staffID, date)

	found, err := scanAttendanceRecord(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return found, nil
}

// ListRecords は日付範囲で勤怠レコードを取得します。
func (r *AttendanceRepository) ListRecords(ctx context.Context, from, to time.Time) ([]*attendance.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, staff_id, work_date, clock_in, clock_out, total_hours, source_transaction_id,
               sync_status, validation_status, has_conflict, created_at, updated_at
          FROM attendance_records
         WHERE work_date >= $1 AND work_date <= $2
         ORDER BY work_date ASC, staff_id ASC
    `, from, to)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	defer rows.Close()

	var records []*attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, translateAttendancePgError(err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, translateAttendancePgError(err)
	}

	return records, nil
}

// TransactionSeen は端末トランザクション ID が適用済みかを返します。
func (r *AttendanceRepository) TransactionSeen(ctx context.Context, transactionID string) (bool, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM applied_transactions WHERE transaction_id = $1
        )
    `, transactionID)

	var seen bool
	if err := row.Scan(&seen); err != nil {
		return false, translateAttendancePgError(err)
	}
	return seen, nil
}

// MarkTransactionApplied は端末トランザクション ID を適用済みとして記録します。
// 同一 ID の再記録は無視します (同期ジョブ再実行時の冪等性)。
func (r *AttendanceRepository) MarkTransactionApplied(ctx context.Context, transactionID, recordID string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO applied_transactions (transaction_id, record_id, applied_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (transaction_id) DO NOTHING
    `, transactionID, recordID)
	if err != nil {
		return translateAttendancePgError(err)
	}
	return nil
}

// CreatePeriod は勤怠期間を新規作成します。
func (r *AttendanceRepository) CreatePeriod(ctx context.Context, p *attendance.Period) (*attendance.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO attendance_periods (start_date, end_date, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, start_date, end_date, status, created_at, updated_at
    `, p.StartDate, p.EndDate, string(p.Status), p.CreatedAt, p.UpdatedAt)

	created, err := scanAttendancePeriod(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return created, nil
}

// UpdatePeriod は勤怠期間を更新します。
func (r *AttendanceRepository) UpdatePeriod(ctx context.Context, p *attendance.Period) (*attendance.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE attendance_periods
           SET status = $1,
               updated_at = $2
         WHERE id = $3
        RETURNING id, start_date, end_date, status, created_at, updated_at
    `, string(p.Status), p.UpdatedAt, p.ID)

	updated, err := scanAttendancePeriod(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return updated, nil
}

// FindPeriod は ID で勤怠期間を取得します。
func (r *AttendanceRepository) FindPeriod(ctx context.Context, id string) (*attendance.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, start_date, end_date, status, created_at, updated_at
          FROM attendance_periods
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanAttendancePeriod(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return found, nil
}

// FindPeriodByRange は開始日と終了日が一致する勤怠期間を取得します。
func (r *AttendanceRepository) FindPeriodByRange(ctx context.Context, start, end time.Time) (*attendance.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, start_date, end_date, status, created_at, updated_at
          FROM attendance_periods
         WHERE start_date = $1 AND end_date = $2
         LIMIT 1
    `, start, end)

	found, err := scanAttendancePeriod(row)
	if err != nil {
		return nil, translateAttendancePgError(err)
	}
	return found, nil
}

func scanAttendanceRecord(row pgx.Row) (*attendance.Record, error) {
	var (
		id            string
		staffID       string
		workDate      time.Time
		clockIn       sql.NullTime
		clockOut      sql.NullTime
		totalHours    sql.NullFloat64
		transactionID string
		syncStatus    string
		validation    string
		hasConflict   bool
		createdAt     time.Time
		updatedAt     time.Time
	)

	if err := row.Scan(
		&id,
		&staffID,
		&workDate,
		&clockIn,
		&clockOut,
		&totalHours,
		&transactionID,
		&syncStatus,
		&validation,
		&hasConflict,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, err
	}

	rec := &attendance.Record{
		ID:                  id,
		StaffID:             staffID,
		Date:                workDate.UTC(),
		SourceTransactionID: transactionID,
		SyncStatus:          attendance.SyncStatus(syncStatus),
		ValidationStatus:    attendance.ValidationStatus(validation),
		HasConflict:         hasConflict,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}

	if clockIn.Valid {
		t := clockIn.Time.UTC()
		rec.ClockIn = &t
	}
	if clockOut.Valid {
		t := clockOut.Time.UTC()
		rec.ClockOut = &t
	}
	if totalHours.Valid {
		h := totalHours.Float64
		rec.TotalHours = &h
	}

	return rec, nil
}

func scanAttendancePeriod(row pgx.Row) (*attendance.Period, error) {
	var (
		id        string
		startDate time.Time
		endDate   time.Time
		status    string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &startDate, &endDate, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, attendance.ErrPeriodNotFound
		}
		return nil, err
	}

	return &attendance.Period{
		ID:        id,
		StartDate: startDate.UTC(),
		EndDate:   endDate.UTC(),
		Status:    attendance.PeriodStatus(status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func translateAttendancePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return attendance.ErrRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == attendanceUniqueViolationCode && pgErr.ConstraintName == "attendance_periods_start_date_end_date_key" {
			return attendance.ErrInvalidDateRange
		}
	}

	return err
}
