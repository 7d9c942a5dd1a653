package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	pgdb "github.com/ogurasousui/timeclock/internal/platform/db/postgres"
)

// SyncJobRepository は PostgreSQL を利用した同期ジョブ永続化の実装です。
// 対象端末・取得期間と実行結果は JSONB 列に保持します。
type SyncJobRepository struct {
	pool pgdb.Queryer
}

// NewSyncJobRepository は SyncJobRepository を生成します。
func NewSyncJobRepository(pool pgdb.Queryer) *SyncJobRepository {
	return &SyncJobRepository{pool: pool}
}

const syncJobColumns = `id, job_type, status, config, requested_by, scheduled_at, started_at, finished_at, result, created_at, updated_at`

// Create は同期ジョブを新規作成します。ID は呼び出し側が採番します。
func (r *SyncJobRepository) Create(ctx context.Context, job *syncjob.Job) (*syncjob.Job, error) {
	configJSON, resultJSON, err := marshalSyncJob(job)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO sync_jobs
            (id, job_type, status, config, requested_by, scheduled_at, started_at, finished_at, result, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+syncJobColumns+`
    `,
		job.ID,
		string(job.Type),
		string(job.Status),
		configJSON,
		job.RequestedBy,
		job.ScheduledAt,
		job.StartedAt,
		job.FinishedAt,
		resultJSON,
		job.CreatedAt,
		job.UpdatedAt,
	)

	return scanSyncJob(row)
}

// Update は同期ジョブを更新します。
func (r *SyncJobRepository) Update(ctx context.Context, job *syncjob.Job) (*syncjob.Job, error) {
	configJSON, resultJSON, err := marshalSyncJob(job)
	if err != nil {
		return nil, err
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE sync_jobs
           SET status = $1,
               config = $2,
               started_at = $3,
               finished_at = $4,
               result = $5,
               updated_at = $6
         WHERE id = $7
        RETURNING `+syncJobColumns+`
    `,
		string(job.Status),
		configJSON,
		job.StartedAt,
		job.FinishedAt,
		resultJSON,
		job.UpdatedAt,
		job.ID,
	)

	return scanSyncJob(row)
}

// MarkRunning は PENDING のジョブを RUNNING へ条件付き更新で遷移させます。
// 条件が満たされない場合、既に別の状態へ確定したジョブは上書きされません。
func (r *SyncJobRepository) MarkRunning(ctx context.Context, id string, startedAt time.Time) (*syncjob.Job, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE sync_jobs
           SET status = $1,
               started_at = $2,
               updated_at = $2
         WHERE id = $3
           AND status = $4
        RETURNING `+syncJobColumns+`
    `, string(syncjob.StatusRunning), startedAt, id, string(syncjob.StatusPending))

	job, err := scanSyncJob(row)
	if err != nil {
		if errors.Is(err, syncjob.ErrJobNotFound) {
			return nil, r.notPendingOrMissing(ctx, id)
		}
		return nil, err
	}
	return job, nil
}

// CancelPending は PENDING のジョブを CANCELLED へ条件付き更新で遷移させます。
func (r *SyncJobRepository) CancelPending(ctx context.Context, id string, finishedAt time.Time) (*syncjob.Job, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE sync_jobs
           SET status = $1,
               finished_at = $2,
               updated_at = $2
         WHERE id = $3
           AND status = $4
        RETURNING `+syncJobColumns+`
    `, string(syncjob.StatusCancelled), finishedAt, id, string(syncjob.StatusPending))

	job, err := scanSyncJob(row)
	if err != nil {
		if errors.Is(err, syncjob.ErrJobNotFound) {
			return nil, r.notPendingOrMissing(ctx, id)
		}
		return nil, err
	}
	return job, nil
}

// notPendingOrMissing は条件付き更新が空振りした原因 (不在か状態不一致か) を
// 区別してエラーに変換します。
func (r *SyncJobRepository) notPendingOrMissing(ctx context.Context, id string) error {
	job, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("job %s in status %s: %w", id, job.Status, syncjob.ErrJobNotPending)
}

// FindByID は ID で同期ジョブを取得します。
func (r *SyncJobRepository) FindByID(ctx context.Context, id string) (*syncjob.Job, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        SELECT `+syncJobColumns+`
          FROM sync_jobs
         WHERE id = $1
         LIMIT 1
    `, id)

	return scanSyncJob(row)
}

// ListRecent は作成の新しい順に同期ジョブを返します。
func (r *SyncJobRepository) ListRecent(ctx context.Context, limit int) ([]*syncjob.Job, error) {
	if limit <= 0 {
		limit = 20
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+syncJobColumns+`
          FROM sync_jobs
         ORDER BY created_at DESC, id DESC
         LIMIT $1
    `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSyncJobs(rows)
}

// ListDue は実行時刻を迎えた SCHEDULED かつ PENDING のジョブを返します。
func (r *SyncJobRepository) ListDue(ctx context.Context, now time.Time) ([]*syncjob.Job, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+syncJobColumns+`
          FROM sync_jobs
         WHERE job_type = $1 AND status = $2 AND scheduled_at <= $3
         ORDER BY scheduled_at ASC
    `, string(syncjob.TypeScheduled), string(syncjob.StatusPending), now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSyncJobs(rows)
}

// ListUpcoming は now より後に予定された PENDING のジョブを近い順に返します。
func (r *SyncJobRepository) ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*syncjob.Job, error) {
	if limit <= 0 {
		limit = 10
	}

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT `+syncJobColumns+`
          FROM sync_jobs
         WHERE status = $1 AND scheduled_at > $2
         ORDER BY scheduled_at ASC
         LIMIT $3
    `, string(syncjob.StatusPending), now, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSyncJobs(rows)
}

// CountByStatus は状態ごとのジョブ数を返します。
func (r *SyncJobRepository) CountByStatus(ctx context.Context) (map[syncjob.JobStatus]int, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT status, COUNT(*)
          FROM sync_jobs
         GROUP BY status
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[syncjob.JobStatus]int)
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[syncjob.JobStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

func marshalSyncJob(job *syncjob.Job) (configJSON []byte, resultJSON []byte, err error) {
	configJSON, err = json.Marshal(job.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal sync job config: %w", err)
	}

	if job.Result != nil {
		resultJSON, err = json.Marshal(job.Result)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal sync job result: %w", err)
		}
	}

	return configJSON, resultJSON, nil
}

func scanSyncJob(row pgx.Row) (*syncjob.Job, error) {
	var (
		id          string
		jobType     string
		status      string
		configJSON  []byte
		requestedBy string
		scheduledAt time.Time
		startedAt   sql.NullTime
		finishedAt  sql.NullTime
		resultJSON  []byte
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(
		&id,
		&jobType,
		&status,
		&configJSON,
		&requestedBy,
		&scheduledAt,
		&startedAt,
		&finishedAt,
		&resultJSON,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, syncjob.ErrJobNotFound
		}
		return nil, err
	}

	job := &syncjob.Job{
		ID:          id,
		Type:        syncjob.JobType(jobType),
		Status:      syncjob.JobStatus(status),
		RequestedBy: requestedBy,
		ScheduledAt: scheduledAt.UTC(),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}

	if err := json.Unmarshal(configJSON, &job.Config); err != nil {
		return nil, fmt.Errorf("unmarshal sync job config: %w", err)
	}

	if len(resultJSON) > 0 {
		job.Result = &syncjob.JobResult{}
		if err := json.Unmarshal(resultJSON, job.Result); err != nil {
			return nil, fmt.Errorf("unmarshal sync job result: %w", err)
		}
	}

	if startedAt.Valid {
		t := startedAt.Time.UTC()
		job.StartedAt = &t
	}
	if finishedAt.Valid {
		t := finishedAt.Time.UTC()
		job.FinishedAt = &t
	}

	return job, nil
}

func collectSyncJobs(rows pgx.Rows) ([]*syncjob.Job, error) {
	var jobs []*syncjob.Job
	for rows.Next() {
		job, err := scanSyncJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
