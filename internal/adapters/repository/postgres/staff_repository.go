package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	pgdb "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
)

const staffUniqueViolationCode = "23505"

// StaffRepository は PostgreSQL を利用した従業員永続化の実装です。
type StaffRepository struct {
	pool pgdb.Queryer
}

// NewStaffRepository は StaffRepository を生成します。
func NewStaffRepository(pool pgdb.Queryer) *StaffRepository {
	return &StaffRepository{pool: pool}
}

// Create は従業員を新規作成します。
func (r *StaffRepository) Create(ctx context.Context, s *staff.Staff) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO staff (code, name, status, standard_rate, overtime_rate, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, code, name, status, standard_rate, overtime_rate, created_at, updated_at
    `, s.Code, s.Name, string(s.Status), s.StandardRate, s.OvertimeRate, s.CreatedAt, s.UpdatedAt)

	created, err := scanStaff(row)
	if err != nil {
		return nil, translateStaffPgError(err)
	}
	return created, nil
}

// Update は従業員情報を更新します。
func (r *StaffRepository) Update(ctx context.Context, s *staff.Staff) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE staff
           SET code = $1,
               name = $2,
               status = $3,
               standard_rate = $4,
               overtime_rate = $5,
               updated_at = $6
         WHERE id = $7
        RETURNING id, code, name, status, standard_rate, overtime_rate, created_at, updated_at
    `, s.Code, s.Name, string(s.Status), s.StandardRate, s.OvertimeRate, s.UpdatedAt, s.ID)

	updated, err := scanStaff(row)
	if err != nil {
		return nil, translateStaffPgError(err)
	}
	return updated, nil
}

// FindByID は ID で従業員を取得します。
func (r *StaffRepository) FindByID(ctx context.Context, id string) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, code, name, status, standard_rate, overtime_rate, created_at, updated_at
          FROM staff
         WHERE id = $1
         LIMIT 1
    `, id)

	found, err := scanStaff(row)
	if err != nil {
		return nil, translateStaffPgError(err)
	}
	return found, nil
}

// FindByCode は従業員コードで従業員を取得します。
func (r *StaffRepository) FindByCode(ctx context.Context, code string) (*staff.Staff, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT id, code, name, status, standard_rate, overtime_rate, created_at, updated_at
          FROM staff
         WHERE code = $1
         LIMIT 1
    `, code)

	found, err := scanStaff(row)
	if err != nil {
		return nil, translateStaffPgError(err)
	}
	return found, nil
}

// List は従業員の一覧を取得します。
func (r *StaffRepository) List(ctx context.Context, filter staff.ListFilter) ([]*staff.Staff, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	args := make([]any, 0, 3)
	whereClause := ""
	if filter.Status != nil {
		whereClause = " WHERE status = $1"
		args = append(args, string(*filter.Status))
	}

	limitPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, limit)
	offsetPlaceholder := "$" + strconv.Itoa(len(args)+1)
	args = append(args, offset)

	query := `
        SELECT id, code, name, status, standard_rate, overtime_rate, created_at, updated_at
          FROM staff` + whereClause + `
         ORDER BY code ASC
         LIMIT ` + limitPlaceholder + `
        OFFSET ` + offsetPlaceholder + `
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translateStaffPgError(err)
	}
	defer rows.Close()

	members := make([]*staff.Staff, 0, limit)
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, translateStaffPgError(err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, translateStaffPgError(err)
	}

	return members, nil
}

func scanStaff(row pgx.Row) (*staff.Staff, error) {
	var (
		id           string
		code         string
		name         string
		status       string
		standardRate float64
		overtimeRate float64
		createdAt    time.Time
		updatedAt    time.Time
	)

	if err := row.Scan(&id, &code, &name, &status, &standardRate, &overtimeRate, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, staff.ErrStaffNotFound
		}
		return nil, err
	}

	return &staff.Staff{
		ID:           id,
		Code:         code,
		Name:         name,
		Status:       staff.Status(status),
		StandardRate: standardRate,
		OvertimeRate: overtimeRate,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

func translateStaffPgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.ErrStaffNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == staffUniqueViolationCode && strings.Contains(pgErr.ConstraintName, "code") {
			return staff.ErrCodeAlreadyExists
		}
	}

	return err
}
