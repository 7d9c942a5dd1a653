package syncjob

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/device"
	"github.com/ogurasousui/timeclock/internal/core/notify"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// DeviceRunner は端末 1 台分の同期クライアントです。
type DeviceRunner interface {
	DeviceID() string
	TestConnection(ctx context.Context) (*device.ConnectionResult, error)
	FetchPunches(ctx context.Context, dateRange device.DateRange) ([]device.Punch, error)
}

// Reconciler は打刻バッチを勤怠レコードへ突合します。
type Reconciler interface {
	Reconcile(ctx context.Context, punches []device.Punch) (*attendance.BatchSummary, error)
}

// MetricsRecorder はジョブ完了と突合結果の計測フックです。
type MetricsRecorder interface {
	JobFinished(jobType, status string, duration time.Duration)
	PunchesReconciled(created, skipped, failed int)
}

type noopMetrics struct{}

func (noopMetrics) JobFinished(string, string, time.Duration) {}

func (noopMetrics) PunchesReconciled(int, int, int) {}

const (
	defaultHealthWindow     = 10
	defaultHealthThreshold  = 3
	metricsRecentJobsWindow = 50
)

// Orchestrator は同期ジョブの作成・スケジュール・実行・取消を担います。
// 複数のジョブは並行に実行できますが、1 ジョブ内の端末は優先順に
// 逐次処理されます。取り消しは端末イテレーションの合間に確認される
// 協調的なフラグで、実行中の端末フェッチを中断しません。
type Orchestrator struct {
	jobs       Repository
	devices    []DeviceRunner
	byID       map[string]DeviceRunner
	reconciler Reconciler
	dispatcher notify.Dispatcher
	metrics    MetricsRecorder
	clock      Clock
	newID      func() string

	healthWindow    int
	healthThreshold int

	mu      sync.Mutex
	cancels map[string]*atomic.Bool
	wg      sync.WaitGroup
}

// UseCase は同期ジョブユースケースの公開インターフェースです。
type UseCase interface {
	CreateSyncJob(ctx context.Context, in CreateJobInput) (*Job, error)
	ExecuteJob(ctx context.Context, jobID string) (*Job, error)
	CancelJob(ctx context.Context, jobID string) (bool, error)
	GetJob(ctx context.Context, jobID string) (*Job, error)
	GetJobMetrics(ctx context.Context) (*Metrics, error)
	GetHealthStatus(ctx context.Context) (*HealthStatus, error)
	TestDeviceConnection(ctx context.Context, deviceID string) (*device.ConnectionResult, error)
}

// NewOrchestrator は Orchestrator を生成します。
// devices は優先順に並んでいることを前提とします。
func NewOrchestrator(jobs Repository, devices []DeviceRunner, reconciler Reconciler, dispatcher notify.Dispatcher, metrics MetricsRecorder, clock Clock) *Orchestrator {
	if dispatcher == nil {
		dispatcher = notify.Noop{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if clock == nil {
		clock = realClock{}
	}

	byID := make(map[string]DeviceRunner, len(devices))
	for _, d := range devices {
		byID[d.DeviceID()] = d
	}

	return &Orchestrator{
		jobs:            jobs,
		devices:         devices,
		byID:            byID,
		reconciler:      reconciler,
		dispatcher:      dispatcher,
		metrics:         metrics,
		clock:           clock,
		newID:           uuid.NewString,
		healthWindow:    defaultHealthWindow,
		healthThreshold: defaultHealthThreshold,
		cancels:         make(map[string]*atomic.Bool),
	}
}

// CreateJobInput はジョブ作成時の入力です。DeviceIDs が空の場合は構成済みの
// 全端末が対象になります。
type CreateJobInput struct {
	Type        JobType
	DeviceIDs   []string
	From        time.Time
	To          time.Time
	ScheduledAt time.Time
	RequestedBy string
}

// CreateSyncJob は設定を検証し PENDING のジョブを永続化します。
// MANUAL_TRIGGER のジョブは追跡されたバックグラウンドタスクとして即時実行に
// 引き渡されます。呼び出し側への契約は「ジョブを受理した」ことであり、
// 完了ではありません。
func (o *Orchestrator) CreateSyncJob(ctx context.Context, in CreateJobInput) (*Job, error) {
	if in.Type != TypeManualTrigger && in.Type != TypeScheduled {
		return nil, ErrInvalidJobType
	}

	deviceIDs, err := o.resolveDevices(in.DeviceIDs)
	if err != nil {
		return nil, err
	}

	if in.From.IsZero() || in.To.IsZero() || in.To.Before(in.From) {
		return nil, ErrInvalidDateRange
	}

	now := o.clock.Now()
	scheduledAt := in.ScheduledAt
	if scheduledAt.IsZero() {
		scheduledAt = now
	}

	job := &Job{
		ID:          o.newID(),
		Type:        in.Type,
		Status:      StatusPending,
		Config:      JobConfig{DeviceIDs: deviceIDs, From: in.From, To: in.To},
		RequestedBy: in.RequestedBy,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := o.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	if in.Type == TypeManualTrigger {
		o.spawn(created.ID)
	}

	return created, nil
}

// spawn はジョブ実行を追跡付きのバックグラウンドタスクとして起動します。
func (o *Orchestrator) spawn(jobID string) {
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		_, _ = o.ExecuteJob(context.Background(), jobID)
	}()
}

// Wait は起動済みのバックグラウンドタスクの完了を待ちます (シャットダウン用)。
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

// ExecuteJob は PENDING のジョブを RUNNING に遷移させ、対象端末を優先順に
// 逐次処理します。端末単位の失敗はジョブを失敗させず、成功した端末の
// データはコミットされたまま残ります。
func (o *Orchestrator) ExecuteJob(ctx context.Context, jobID string) (*Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidJobID
	}

	// 取消との競合を閉じるため、RUNNING への遷移より先にフラグを確保します。
	// 遷移自体は条件付き更新で、確定済みの CANCELLED を上書きしません。
	flag := o.registerCancel(jobID)
	defer o.unregisterCancel(jobID)

	job, err := o.jobs.MarkRunning(ctx, jobID, o.clock.Now())
	if err != nil {
		return nil, err
	}

	result := &JobResult{}
	cancelled := false

	for _, deviceID := range job.Config.DeviceIDs {
		// 協調的キャンセル: 端末イテレーションの合間にのみ確認します。
		if flag.Load() {
			cancelled = true
			break
		}

		runner, ok := o.byID[deviceID]
		if !ok {
			result.DeviceErrors = append(result.DeviceErrors, DeviceError{
				DeviceID: deviceID,
				Message:  "device not configured",
			})
			continue
		}

		outcome, devErr := o.syncDevice(ctx, runner, job.Config)
		if devErr != nil {
			result.DeviceErrors = append(result.DeviceErrors, *devErr)
			continue
		}

		result.Devices = append(result.Devices, *outcome)
		result.Summary.Merge(&outcome.Summary)
	}

	finishedAt := o.clock.Now()
	job.FinishedAt = &finishedAt
	job.UpdatedAt = finishedAt
	job.Result = result

	switch {
	case cancelled:
		job.Status = StatusCancelled
	case len(result.Devices) == 0 && len(result.DeviceErrors) > 0:
		job.Status = StatusFailed
	default:
		job.Status = StatusCompleted
	}

	if job, err = o.jobs.Update(ctx, job); err != nil {
		return nil, err
	}

	o.metrics.JobFinished(string(job.Type), string(job.Status), job.Duration())

	o.dispatcher.Send(ctx, notify.ChannelOps, notify.Payload{
		Subject: fmt.Sprintf("sync job %s", strings.ToLower(string(job.Status))),
		Body: fmt.Sprintf("job %s finished with %d punches processed, %d created, %d device errors",
			job.ID, result.Summary.TotalProcessed, result.Summary.Created, len(result.DeviceErrors)),
		Tags: map[string]string{"job_id": job.ID},
	})

	return job, nil
}

// syncDevice は端末 1 台分のフェッチと突合を行います。
func (o *Orchestrator) syncDevice(ctx context.Context, runner DeviceRunner, cfg JobConfig) (*DeviceOutcome, *DeviceError) {
	start := o.clock.Now()

	punches, err := runner.FetchPunches(ctx, device.DateRange{From: cfg.From, To: cfg.To})
	if err != nil {
		return nil, &DeviceError{DeviceID: runner.DeviceID(), Message: err.Error()}
	}

	summary, err := o.reconciler.Reconcile(ctx, punches)
	if err != nil {
		return nil, &DeviceError{DeviceID: runner.DeviceID(), Message: err.Error()}
	}

	o.metrics.PunchesReconciled(summary.Created, summary.Skipped, len(summary.Errors))

	return &DeviceOutcome{
		DeviceID: runner.DeviceID(),
		Fetched:  len(punches),
		Summary:  *summary,
		Duration: o.clock.Now().Sub(start),
	}, nil
}

// CancelJob はベストエフォートの取消です。終了済みのジョブには false を
// 返します。RUNNING のジョブは次の端末イテレーション境界で停止します。
func (o *Orchestrator) CancelJob(ctx context.Context, jobID string) (bool, error) {
	if strings.TrimSpace(jobID) == "" {
		return false, ErrInvalidJobID
	}

	job, err := o.jobs.FindByID(ctx, jobID)
	if err != nil {
		return false, err
	}

	if job.Status.Terminal() {
		return false, nil
	}

	// 実行側がまだフラグを確保していなくても取消要求が残るよう、
	// ここで登録してから立てます。
	flag := o.registerCancel(jobID)
	flag.Store(true)

	if _, err := o.jobs.CancelPending(ctx, jobID, o.clock.Now()); err != nil {
		if errors.Is(err, ErrJobNotPending) {
			// 実行中: 次の端末イテレーション境界でフラグにより停止します。
			return true, nil
		}
		return false, err
	}

	// PENDING のまま取消が確定したので、フラグを待つ実行側はいません。
	o.unregisterCancel(jobID)
	return true, nil
}

// GetJob はジョブを取得します。
func (o *Orchestrator) GetJob(ctx context.Context, jobID string) (*Job, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, ErrInvalidJobID
	}
	return o.jobs.FindByID(ctx, jobID)
}

// GetJobMetrics はジョブ履歴の集計と今後の予定を返します。
func (o *Orchestrator) GetJobMetrics(ctx context.Context) (*Metrics, error) {
	counts, err := o.jobs.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	metrics := &Metrics{CountsByStatus: counts}
	terminal := 0
	for status, n := range counts {
		metrics.TotalJobs += n
		if status.Terminal() {
			terminal += n
		}
	}
	if terminal > 0 {
		metrics.SuccessRate = float64(counts[StatusCompleted]) / float64(terminal)
	}

	recent, err := o.jobs.ListRecent(ctx, metricsRecentJobsWindow)
	if err != nil {
		return nil, err
	}

	var total time.Duration
	finished := 0
	for _, job := range recent {
		if d := job.Duration(); d > 0 {
			total += d
			finished++
		}
	}
	if finished > 0 {
		metrics.AverageDuration = total / time.Duration(finished)
	}

	upcoming, err := o.jobs.ListUpcoming(ctx, o.clock.Now(), 10)
	if err != nil {
		return nil, err
	}
	metrics.Upcoming = upcoming

	return metrics, nil
}

// GetHealthStatus は直近のジョブの連続失敗数から健全性を導出します。
func (o *Orchestrator) GetHealthStatus(ctx context.Context) (*HealthStatus, error) {
	recent, err := o.jobs.ListRecent(ctx, o.healthWindow)
	if err != nil {
		return nil, err
	}

	consecutive := 0
	for _, job := range recent {
		if !job.Status.Terminal() {
			continue
		}
		if job.Status != StatusFailed {
			break
		}
		consecutive++
	}

	health := &HealthStatus{
		Healthy:             consecutive < o.healthThreshold,
		ConsecutiveFailures: consecutive,
	}

	if consecutive > 0 {
		health.Issues = append(health.Issues, fmt.Sprintf("%d consecutive sync jobs failed", consecutive))
	}
	if !health.Healthy {
		health.Issues = append(health.Issues, "sync pipeline degraded, check device connectivity")
	}

	return health, nil
}

// TestDeviceConnection は構成済み端末への疎通確認を行います。
func (o *Orchestrator) TestDeviceConnection(ctx context.Context, deviceID string) (*device.ConnectionResult, error) {
	runner, ok := o.byID[deviceID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", deviceID, ErrUnknownDevice)
	}
	return runner.TestConnection(ctx)
}

// RunScheduler は実行時刻を迎えた SCHEDULED ジョブをポーリングで起動します。
// ctx のキャンセルで停止します。
func (o *Orchestrator) RunScheduler(ctx context.Context, pollInterval time.Duration) error {
	if pollInterval <= 0 {
		pollInterval = time.Minute
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			due, err := o.jobs.ListDue(ctx, o.clock.Now())
			if err != nil {
				continue
			}
			for _, job := range due {
				o.spawn(job.ID)
			}
		}
	}
}

func (o *Orchestrator) resolveDevices(requested []string) ([]string, error) {
	if len(o.devices) == 0 {
		return nil, ErrNoDevices
	}

	if len(requested) == 0 {
		ids := make([]string, 0, len(o.devices))
		for _, d := range o.devices {
			ids = append(ids, d.DeviceID())
		}
		return ids, nil
	}

	want := make(map[string]bool, len(requested))
	for _, id := range requested {
		if _, ok := o.byID[id]; !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrUnknownDevice)
		}
		want[id] = true
	}

	// 構成順 (優先順) を保ちます。
	ids := make([]string, 0, len(want))
	for _, d := range o.devices {
		if want[d.DeviceID()] {
			ids = append(ids, d.DeviceID())
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoDevices
	}
	return ids, nil
}

func (o *Orchestrator) registerCancel(jobID string) *atomic.Bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	flag, ok := o.cancels[jobID]
	if !ok {
		flag = &atomic.Bool{}
		o.cancels[jobID] = flag
	}
	return flag
}

func (o *Orchestrator) unregisterCancel(jobID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.cancels, jobID)
}
