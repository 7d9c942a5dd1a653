//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	repo "github.com/ogurasousui/timeclock/internal/adapters/repository/postgres"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/device"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	"github.com/ogurasousui/timeclock/internal/platform/config"
	pg "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
)

const (
	migrationsDir = "assets/migrations"
	seedsDir      = "assets/seeds"
)

func TestPunchReconciliationIntegration(t *testing.T) {
	t.Parallel()

	cfgPath := configPathFromEnv()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	if err := applySeeds(cfg.Database.DSN(), seedsDir); err != nil {
		t.Fatalf("failed to apply seeds: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	staffRepo := repo.NewStaffRepository(pool)
	attendanceRepo := repo.NewAttendanceRepository(pool)

	staffSvc := staff.NewService(staffRepo, stubClock{now: time.Now().UTC()})
	created, err := staffSvc.CreateStaff(ctx, staff.CreateStaffInput{
		Code:         "emp-9001",
		Name:         "Integration Staff",
		StandardRate: 1200,
		OvertimeRate: 1500,
	})
	if err != nil {
		t.Fatalf("CreateStaff error: %v", err)
	}

	found, err := staffRepo.FindByCode(ctx, created.Code)
	if err != nil {
		t.Fatalf("FindByCode error: %v", err)
	}
	if found.ID != created.ID {
		t.Fatalf("expected staff id %s, got %s", created.ID, found.ID)
	}

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	punches := []device.Punch{
		{
			EmployeeCode:  created.Code,
			Timestamp:     day.Add(9 * time.Hour),
			TerminalID:    "entrance-1",
			TransactionID: "it-tx-1",
			Type:          device.PunchIn,
		},
		{
			EmployeeCode:  created.Code,
			Timestamp:     day.Add(18 * time.Hour),
			TerminalID:    "entrance-1",
			TransactionID: "it-tx-2",
			Type:          device.PunchOut,
		},
	}

	reconciler := attendance.NewReconciler(attendanceRepo, staffRepo, stubClock{now: time.Now().UTC()})
	summary, err := reconciler.Reconcile(ctx, punches)
	if err != nil {
		t.Fatalf("Reconcile error: %v", err)
	}
	if summary.Created == 0 || len(summary.Errors) != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	record, err := attendanceRepo.FindRecord(ctx, created.ID, day)
	if err != nil {
		t.Fatalf("FindRecord error: %v", err)
	}
	if record.ClockIn == nil || record.ClockOut == nil {
		t.Fatalf("expected both clock in and clock out, got %+v", record)
	}

	// 同じバッチの再適用では新規レコードを作成しません。
	again, err := reconciler.Reconcile(ctx, punches)
	if err != nil {
		t.Fatalf("second Reconcile error: %v", err)
	}
	if again.Created != 0 || again.Skipped != len(punches) {
		t.Fatalf("expected idempotent replay, got %+v", again)
	}

	if _, err := staffRepo.FindByCode(ctx, "missing-code"); !errors.Is(err, staff.ErrStaffNotFound) {
		t.Fatalf("expected ErrStaffNotFound, got %v", err)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func applySeeds(dsn, dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
