package syncjob

import (
	"time"

	"github.com/ogurasousui/timeclock/internal/core/attendance"
)

// JobType はジョブの起動契機です。
type JobType string

const (
	TypeManualTrigger JobType = "MANUAL_TRIGGER"
	TypeScheduled     JobType = "SCHEDULED"
)

// JobStatus はジョブの状態です。遷移は単調で、同じ状態に二度到達することは
// ありません (やり直しは新しいジョブとして作成されます)。
type JobStatus string

const (
	StatusPending   JobStatus = "PENDING"
	StatusRunning   JobStatus = "RUNNING"
	StatusCompleted JobStatus = "COMPLETED"
	StatusFailed    JobStatus = "FAILED"
	StatusCancelled JobStatus = "CANCELLED"
)

// Terminal は終端状態かどうかを返します。
func (s JobStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// JobConfig はジョブの対象端末と取得期間です。
type JobConfig struct {
	DeviceIDs []string
	From      time.Time
	To        time.Time
}

// DeviceError は端末 1 台の同期失敗です。ジョブ全体は継続します。
type DeviceError struct {
	DeviceID string
	Message  string
}

// DeviceOutcome は端末 1 台分の同期結果です。
type DeviceOutcome struct {
	DeviceID string
	Fetched  int
	Summary  attendance.BatchSummary
	Duration time.Duration
}

// JobResult はジョブ全体の集計結果です。部分成功も一級の結果として扱い、
// 失敗した端末があっても成功した端末のデータはコミット済みです。
type JobResult struct {
	Devices      []DeviceOutcome
	DeviceErrors []DeviceError
	Summary      attendance.BatchSummary
}

// Job は同期ジョブです。オーケストレーターが排他的に所有します。
type Job struct {
	ID          string
	Type        JobType
	Status      JobStatus
	Config      JobConfig
	RequestedBy string
	ScheduledAt time.Time
	StartedAt   *time.Time
	FinishedAt  *time.Time
	Result      *JobResult
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Duration は実行時間を返します。未完了の場合は 0 です。
func (j *Job) Duration() time.Duration {
	if j.StartedAt == nil || j.FinishedAt == nil {
		return 0
	}
	return j.FinishedAt.Sub(*j.StartedAt)
}

// Metrics はジョブ履歴の集計です。
type Metrics struct {
	TotalJobs       int
	CountsByStatus  map[JobStatus]int
	SuccessRate     float64
	AverageDuration time.Duration
	Upcoming        []*Job
}

// HealthStatus はオーケストレーターの健全性です。
type HealthStatus struct {
	Healthy             bool
	ConsecutiveFailures int
	Issues              []string
}
