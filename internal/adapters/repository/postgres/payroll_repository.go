package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/timeclock/internal/core/payroll"
	pgdb "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
)

const payrollUniqueViolationCode = "23505"

// PayrollRepository は PostgreSQL を利用した給与期間・給与明細永続化の
// 実装です。再計算は明細の全削除と再挿入で行われ、呼び出し側の
// トランザクション内で実行されます。
type PayrollRepository struct {
	pool pgdb.Queryer
}

// NewPayrollRepository は PayrollRepository を生成します。
func NewPayrollRepository(pool pgdb.Queryer) *PayrollRepository {
	return &PayrollRepository{pool: pool}
}

const payrollPeriodColumns = `id, attendance_period_id, start_date, end_date, status, total_hours, total_overtime_hours, total_amount, created_at, updated_at`

// CreatePeriod は給与期間を新規作成します。
func (r *PayrollRepository) CreatePeriod(ctx context.Context, p *payroll.Period) (*payroll.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO payroll_periods
            (attendance_period_id, start_date, end_date, status, total_hours, total_overtime_hours, total_amount, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING `+payrollPeriodColumns+`
    `,
		p.AttendancePeriodID,
		p.StartDate,
		p.EndDate,
		string(p.Status),
		p.TotalHours,
		p.TotalOvertimeHours,
		p.TotalAmount,
		p.CreatedAt,
		p.UpdatedAt,
	)

	created, err := scanPayrollPeriod(row)
	if err != nil {
		return nil, translatePayrollPgError(err)
	}
	return created, nil
}

// UpdatePeriod は給与期間を更新します。
func (r *PayrollRepository) UpdatePeriod(ctx context.Context, p *payroll.Period) (*payroll.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE payroll_periods
           SET status = $1,
               total_hours = $2,
               total_overtime_hours = $3,
               total_amount = $4,
               updated_at = $5
         WHERE id = $6
        RETURNING `+payrollPeriodColumns+`
    `,
		string(p.Status),
		p.TotalHours,
		p.TotalOvertimeHours,
		p.TotalAmount,
		p.UpdatedAt,
		p.ID,
	)

	updated, err := scanPayrollPeriod(row)
	if err != nil {
		return nil, translatePayrollPgError(err)
	}
	return updated, nil
}

// FindPeriod は ID で給与期間を取得します。
func (r *PayrollRepository) FindPeriod(ctx context.Context, id string) (*payroll.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+payrollPeriodColumns+`
          FROM payroll_periods
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanPayrollPeriod(row)
	if err != nil {
		return nil, translatePayrollPgError(err)
	}
	return found, nil
}

// FindPeriodByAttendancePeriod は勤怠期間に紐づく給与期間を取得します。
func (r *PayrollRepository) FindPeriodByAttendancePeriod(ctx context.Context, attendancePeriodID string) (*payroll.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+payrollPeriodColumns+`
          FROM payroll_periods
         WHERE attendance_period_id = $1
         LIMIT 1
    `, attendancePeriodID)

	found, err := scanPayrollPeriod(row)
	if err != nil {
		return nil, translatePayrollPgError(err)
	}
	return found, nil
}

// DeleteRecords は給与期間の明細を全削除します。
func (r *PayrollRepository) DeleteRecords(ctx context.Context, payrollPeriodID string) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM payroll_records WHERE payroll_period_id = $1`, payrollPeriodID); err != nil {
		return translatePayrollPgError(err)
	}
	return nil
}

// InsertRecords は給与明細をまとめて挿入します。
func (r *PayrollRepository) InsertRecords(ctx context.Context, records []*payroll.Record) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	for _, rec := range records {
		_, err := exec.Exec(ctx, `
            INSERT INTO payroll_records
                (payroll_period_id, staff_id, standard_hours, overtime_hours, standard_rate, overtime_rate, gross_pay, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `,
			rec.PayrollPeriodID,
			rec.StaffID,
			rec.StandardHours,
			rec.OvertimeHours,
			rec.StandardRate,
			rec.OvertimeRate,
			rec.GrossPay,
			rec.CreatedAt,
		)
		if err != nil {
			return translatePayrollPgError(err)
		}
	}
	return nil
}

// ListRecords は給与期間の明細を従業員 ID 順に取得します。
func (r *PayrollRepository) ListRecords(ctx context.Context, payrollPeriodID string) ([]*payroll.Record, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, payroll_period_id, staff_id, standard_hours, overtime_hours, standard_rate, overtime_rate, gross_pay, created_at
          FROM payroll_records
         WHERE payroll_period_id = $1
         ORDER BY staff_id ASC
    `, payrollPeriodID)
	if err != nil {
		return nil, translatePayrollPgError(err)
	}
	defer rows.Close()

	var records []*payroll.Record
	for rows.Next() {
		rec, err := scanPayrollRecord(rows)
		if err != nil {
			return nil, translatePayrollPgError(err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, translatePayrollPgError(err)
	}

	return records, nil
}

func scanPayrollPeriod(row pgx.Row) (*payroll.Period, error) {
	var (
		id                 string
		attendancePeriodID string
		startDate          time.Time
		endDate            time.Time
		status             string
		totalHours         float64
		totalOvertime      float64
		totalAmount        float64
		createdAt          time.Time
		updatedAt          time.Time
	)

	if err := row.Scan(
		&id,
		&attendancePeriodID,
		&startDate,
		&endDate,
		&status,
		&totalHours,
		&totalOvertime,
		&totalAmount,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPeriodNotFound
		}
		return nil, err
	}

	return &payroll.Period{
		ID:                 id,
		AttendancePeriodID: attendancePeriodID,
		StartDate:          startDate.UTC(),
		EndDate:            endDate.UTC(),
		Status:             payroll.PeriodStatus(status),
		TotalHours:         totalHours,
		TotalOvertimeHours: totalOvertime,
		TotalAmount:        totalAmount,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

func scanPayrollRecord(row pgx.Row) (*payroll.Record, error) {
	var (
		id            string
		periodID      string
		staffID       string
		standardHours float64
		overtimeHours float64
		standardRate  float64
		overtimeRate  float64
		grossPay      float64
		createdAt     time.Time
	)

	if err := row.Scan(
		&id,
		&periodID,
		&staffID,
		&standardHours,
		&overtimeHours,
		&standardRate,
		&overtimeRate,
		&grossPay,
		&createdAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPeriodNotFound
		}
		return nil, err
	}

	return &payroll.Record{
		ID:              id,
		PayrollPeriodID: periodID,
		StaffID:         staffID,
		StandardHours:   standardHours,
		OvertimeHours:   overtimeHours,
		StandardRate:    standardRate,
		OvertimeRate:    overtimeRate,
		GrossPay:        grossPay,
		CreatedAt:       createdAt,
	}, nil
}

func translatePayrollPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return payroll.ErrPeriodNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == payrollUniqueViolationCode && pgErr.ConstraintName == "payroll_periods_attendance_period_id_key" {
			return payroll.ErrPeriodAlreadyExists
		}
	}

	return err
}
