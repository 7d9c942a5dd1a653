package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func syncJobRowColumns() []string {
	return []string{
		"id", "job_type", "status", "config", "requested_by",
		"scheduled_at", "started_at", "finished_at", "result", "created_at", "updated_at",
	}
}

func TestSyncJobRepository_Create(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	cfg := syncjob.JobConfig{
		DeviceIDs: []string{"dev-1"},
		From:      time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		To:        time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
	}
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}

	mock.ExpectQuery(`INSERT INTO sync_jobs`).
		WithArgs("job-1", string(syncjob.TypeManualTrigger), string(syncjob.StatusPending),
			cfgJSON, "admin", now, (*time.Time)(nil), (*time.Time)(nil), []byte(nil), now, now).
		WillReturnRows(pgxmock.NewRows(syncJobRowColumns()).
			AddRow("job-1", string(syncjob.TypeManualTrigger), string(syncjob.StatusPending),
				cfgJSON, "admin", now, nil, nil, nil, now, now))

	created, err := repo.Create(context.Background(), &syncjob.Job{
		ID:          "job-1",
		Type:        syncjob.TypeManualTrigger,
		Status:      syncjob.StatusPending,
		Config:      cfg,
		RequestedBy: "admin",
		ScheduledAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID != "job-1" || created.Status != syncjob.StatusPending {
		t.Fatalf("unexpected job %+v", created)
	}
	if len(created.Config.DeviceIDs) != 1 || created.Config.DeviceIDs[0] != "dev-1" {
		t.Fatalf("unexpected config %+v", created.Config)
	}
	if created.Result != nil {
		t.Fatalf("expected nil result for a pending job")
	}
}

func TestSyncJobRepository_FindByID_WithResult(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	started := now.Add(time.Second)
	finished := now.Add(time.Minute)

	cfgJSON, _ := json.Marshal(syncjob.JobConfig{DeviceIDs: []string{"dev-1"}})
	result := syncjob.JobResult{
		Devices: []syncjob.DeviceOutcome{{DeviceID: "dev-1", Fetched: 12}},
	}
	result.Summary.TotalProcessed = 12
	result.Summary.Created = 10
	resultJSON, _ := json.Marshal(result)

	mock.ExpectQuery(`SELECT id, job_type, status`).
		WithArgs("job-1").
		WillReturnRows(pgxmock.NewRows(syncJobRowColumns()).
			AddRow("job-1", string(syncjob.TypeScheduled), string(syncjob.StatusCompleted),
				cfgJSON, "", now, started, finished, resultJSON, now, now))

	job, err := repo.FindByID(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}

	if job.Result == nil || job.Result.Summary.Created != 10 {
		t.Fatalf("unexpected result %+v", job.Result)
	}
	if job.StartedAt == nil || job.FinishedAt == nil {
		t.Fatalf("expected started/finished timestamps")
	}
	if job.Duration() != finished.Sub(started) {
		t.Fatalf("unexpected duration %s", job.Duration())
	}
}

func TestSyncJobRepository_MarkRunning(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	cfgJSON, _ := json.Marshal(syncjob.JobConfig{DeviceIDs: []string{"dev-1"}})

	mock.ExpectQuery(`UPDATE sync_jobs`).
		WithArgs(string(syncjob.StatusRunning), now, "job-1", string(syncjob.StatusPending)).
		WillReturnRows(pgxmock.NewRows(syncJobRowColumns()).
			AddRow("job-1", string(syncjob.TypeScheduled), string(syncjob.StatusRunning),
				cfgJSON, "", now, now, nil, nil, now, now))

	job, err := repo.MarkRunning(context.Background(), "job-1", now)
	if err != nil {
		t.Fatalf("MarkRunning returned error: %v", err)
	}
	if job.Status != syncjob.StatusRunning || job.StartedAt == nil {
		t.Fatalf("unexpected job %+v", job)
	}
}

func TestSyncJobRepository_MarkRunning_AlreadyCancelled(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	cfgJSON, _ := json.Marshal(syncjob.JobConfig{DeviceIDs: []string{"dev-1"}})

	// 条件付き更新は空振りし、再読取で CANCELLED が判明します。
	mock.ExpectQuery(`UPDATE sync_jobs`).
		WithArgs(string(syncjob.StatusRunning), now, "job-1", string(syncjob.StatusPending)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(`SELECT id, job_type, status`).
		WithArgs("job-1").
		WillReturnRows(pgxmock.NewRows(syncJobRowColumns()).
			AddRow("job-1", string(syncjob.TypeScheduled), string(syncjob.StatusCancelled),
				cfgJSON, "", now, nil, now, nil, now, now))

	_, err = repo.MarkRunning(context.Background(), "job-1", now)
	if !errors.Is(err, syncjob.ErrJobNotPending) {
		t.Fatalf("expected ErrJobNotPending, got %v", err)
	}
}

func TestSyncJobRepository_CancelPending(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	cfgJSON, _ := json.Marshal(syncjob.JobConfig{DeviceIDs: []string{"dev-1"}})

	mock.ExpectQuery(`UPDATE sync_jobs`).
		WithArgs(string(syncjob.StatusCancelled), now, "job-1", string(syncjob.StatusPending)).
		WillReturnRows(pgxmock.NewRows(syncJobRowColumns()).
			AddRow("job-1", string(syncjob.TypeScheduled), string(syncjob.StatusCancelled),
				cfgJSON, "", now, nil, now, nil, now, now))

	job, err := repo.CancelPending(context.Background(), "job-1", now)
	if err != nil {
		t.Fatalf("CancelPending returned error: %v", err)
	}
	if job.Status != syncjob.StatusCancelled || job.FinishedAt == nil {
		t.Fatalf("unexpected job %+v", job)
	}
}

func TestSyncJobRepository_FindByID_NotFound(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	mock.ExpectQuery(`SELECT id, job_type, status`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = repo.FindByID(context.Background(), "missing")
	if !errors.Is(err, syncjob.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestSyncJobRepository_CountByStatus(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	repo := NewSyncJobRepository(mock)

	mock.ExpectQuery(`SELECT status, COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"status", "count"}).
			AddRow(string(syncjob.StatusCompleted), 7).
			AddRow(string(syncjob.StatusFailed), 2))

	counts, err := repo.CountByStatus(context.Background())
	if err != nil {
		t.Fatalf("CountByStatus returned error: %v", err)
	}

	if counts[syncjob.StatusCompleted] != 7 || counts[syncjob.StatusFailed] != 2 {
		t.Fatalf("unexpected counts %+v", counts)
	}
}
