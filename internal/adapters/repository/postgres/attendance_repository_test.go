package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestScanAttendanceRecord_NoRows(t *testing.T) {
	t.Parallel()

	row := fixedRow{scanFn: func(dest ...interface{}) error {
		return pgx.ErrNoRows
	}}

	_, err := scanAttendanceRecord(row)
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAttendanceRepository_FindRecord(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	clockIn := date.Add(9 * time.Hour)
	clockOut := date.Add(17 * time.Hour)
	hours := 8.0
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{
		"id", "staff_id", "work_date", "clock_in", "clock_out", "total_hours",
		"source_transaction_id", "sync_status", "validation_status", "has_conflict", "created_at", "updated_at",
	}).AddRow("rec-1", "staff-1", date, clockIn, clockOut, hours,
		"tx-1", string(attendance.SyncStatusSynced), string(attendance.ValidationStatusValid), false, now, now)

	mock.ExpectQuery(`SELECT id, staff_id, work_date`).
		WithArgs("staff-1", date).
		WillReturnRows(rows)

	rec, err := repo.FindRecord(context.Background(), "staff-1", date)
	if err != nil {
		t.Fatalf("FindRecord returned error: %v", err)
	}

	if rec.ID != "rec-1" || rec.ClockIn == nil || rec.ClockOut == nil {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.TotalHours == nil || *rec.TotalHours != 8.0 {
		t.Fatalf("expected 8 total hours, got %+v", rec.TotalHours)
	}
}

func TestAttendanceRepository_FindRecord_NullTimes(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	rows := pgxmock.NewRows([]string{
		"id", "staff_id", "work_date", "clock_in", "clock_out", "total_hours",
		"source_transaction_id", "sync_status", "validation_status", "has_conflict", "created_at", "updated_at",
	}).AddRow("rec-1", "staff-1", date, nil, nil, nil,
		"tx-1", string(attendance.SyncStatusSynced), string(attendance.ValidationStatusPending), false, now, now)

	mock.ExpectQuery(`SELECT id, staff_id, work_date`).
		WithArgs("staff-1", date).
		WillReturnRows(rows)

	rec, err := repo.FindRecord(context.Background(), "staff-1", date)
	if err != nil {
		t.Fatalf("FindRecord returned error: %v", err)
	}

	if rec.ClockIn != nil || rec.ClockOut != nil || rec.TotalHours != nil {
		t.Fatalf("expected nil optional fields, got %+v", rec)
	}
}

func TestAttendanceRepository_TransactionSeen(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("tx-1").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	seen, err := repo.TransactionSeen(context.Background(), "tx-1")
	if err != nil {
		t.Fatalf("TransactionSeen returned error: %v", err)
	}
	if !seen {
		t.Fatalf("expected transaction to be seen")
	}
}

func TestAttendanceRepository_MarkTransactionApplied(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectExec(`INSERT INTO applied_transactions`).
		WithArgs("tx-1", "rec-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.MarkTransactionApplied(context.Background(), "tx-1", "rec-1"); err != nil {
		t.Fatalf("MarkTransactionApplied returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAttendanceRepository_FindPeriod_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	mock.ExpectQuery(`SELECT id, start_date, end_date`).
		WithArgs("period-404").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindPeriod(context.Background(), "period-404")
	if !errors.Is(err, attendance.ErrPeriodNotFound) {
		t.Fatalf("expected ErrPeriodNotFound, got %v", err)
	}
}

func TestAttendanceRepository_UpdatePeriod(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewAttendanceRepository(mock)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	mock.ExpectQuery(`UPDATE attendance_periods`).
		WithArgs(string(attendance.PeriodStatusFinalized), now, "period-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "start_date", "end_date", "status", "created_at", "updated_at"}).
			AddRow("period-1", start, end, string(attendance.PeriodStatusFinalized), now, now))

	updated, err := repo.UpdatePeriod(context.Background(), &attendance.Period{
		ID:        "period-1",
		StartDate: start,
		EndDate:   end,
		Status:    attendance.PeriodStatusFinalized,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("UpdatePeriod returned error: %v", err)
	}

	if updated.Status != attendance.PeriodStatusFinalized {
		t.Fatalf("unexpected period %+v", updated)
	}
}
