package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

type fixedRow struct {
	scanFn func(dest ...interface{}) error
}

func (r fixedRow) Scan(dest ...interface{}) error {
	return r.scanFn(dest...)
}

func TestScanStaff_NoRows(t *testing.T) {
	t.Parallel()

	row := fixedRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanStaff(row)
	if !errors.Is(err, staff.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}

func TestTranslateStaffPgError(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: staffUniqueViolationCode, ConstraintName: "staff_code_key"}
	if !errors.Is(translateStaffPgError(pgErr), staff.ErrCodeAlreadyExists) {
		t.Fatalf("expected code exists error mapping")
	}

	otherErr := errors.New("random")
	if translateStaffPgError(otherErr) != otherErr {
		t.Fatalf("unexpected translation for generic error")
	}
}

func TestStaffRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStaffRepository(mock)

	now := time.Now().UTC()
	query := regexp.QuoteMeta(`
        INSERT INTO staff (code, name, status, standard_rate, overtime_rate, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, code, name, status, standard_rate, overtime_rate, created_at, updated_at
    `)

	mock.ExpectQuery(query).
		WithArgs("EMP001", "Tanaka", string(staff.StatusActive), 10.0, 15.0, now, now).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "status", "standard_rate", "overtime_rate", "created_at", "updated_at"}).
			AddRow("staff-1", "EMP001", "Tanaka", string(staff.StatusActive), 10.0, 15.0, now, now))

	created, err := repo.Create(context.Background(), &staff.Staff{
		Code:         "EMP001",
		Name:         "Tanaka",
		Status:       staff.StatusActive,
		StandardRate: 10.0,
		OvertimeRate: 15.0,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != "staff-1" || created.Code != "EMP001" {
		t.Fatalf("unexpected staff %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStaffRepository_FindByCode_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStaffRepository(mock)

	mock.ExpectQuery(`SELECT id, code, name, status`).
		WithArgs("EMP404").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByCode(context.Background(), "EMP404")
	if !errors.Is(err, staff.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}

func TestStaffRepository_List_StatusFilter(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewStaffRepository(mock)

	now := time.Now().UTC()
	rows := pgxmock.NewRows([]string{"id", "code", "name", "status", "standard_rate", "overtime_rate", "created_at", "updated_at"}).
		AddRow("staff-1", "EMP001", "Tanaka", string(staff.StatusActive), 10.0, 15.0, now, now).
		AddRow("staff-2", "EMP002", "Suzuki", string(staff.StatusActive), 12.0, 18.0, now, now)

	mock.ExpectQuery(`SELECT id, code, name, status`).
		WithArgs(string(staff.StatusActive), 10, 0).
		WillReturnRows(rows)

	active := staff.StatusActive
	members, err := repo.List(context.Background(), staff.ListFilter{Status: &active, Limit: 10})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if len(members) != 2 || members[0].Code != "EMP001" || members[1].Code != "EMP002" {
		t.Fatalf("unexpected members %+v", members)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
