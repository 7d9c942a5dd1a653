package handler

import (
	"context"

	syncpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/sync/v1"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// SyncGrpcHandler は SyncService の gRPC 実装です。
type SyncGrpcHandler struct {
	svc syncjob.UseCase
	syncpb.UnimplementedSyncServiceServer
}

// NewSyncGrpcHandler は SyncGrpcHandler を生成します。
func NewSyncGrpcHandler(svc syncjob.UseCase) *SyncGrpcHandler {
	return &SyncGrpcHandler{svc: svc}
}

// CreateSyncJob は同期ジョブを受理します。手動ジョブは受理後すぐに
// バックグラウンドで実行され、レスポンスは PENDING の状態を返します。
func (h *SyncGrpcHandler) CreateSyncJob(ctx context.Context, req *syncpb.CreateSyncJobRequest) (*syncpb.CreateSyncJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	input := syncjob.CreateJobInput{
		Type:        toDomainJobType(req.GetType()),
		DeviceIDs:   req.GetDeviceIds(),
		RequestedBy: req.GetRequestedBy(),
	}
	if req.GetFrom() != nil {
		input.From = req.GetFrom().AsTime()
	}
	if req.GetTo() != nil {
		input.To = req.GetTo().AsTime()
	}
	if req.GetScheduledAt() != nil {
		input.ScheduledAt = req.GetScheduledAt().AsTime()
	}

	job, err := h.svc.CreateSyncJob(ctx, input)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &syncpb.CreateSyncJobResponse{Job: toProtoSyncJob(job)}, nil
}

// GetSyncJob は同期ジョブを取得します。
func (h *SyncGrpcHandler) GetSyncJob(ctx context.Context, req *syncpb.GetSyncJobRequest) (*syncpb.GetSyncJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	job, err := h.svc.GetJob(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &syncpb.GetSyncJobResponse{Job: toProtoSyncJob(job)}, nil
}

// CancelSyncJob はジョブの取消を要求します。終了済みのジョブには
// cancelled=false を返します。
func (h *SyncGrpcHandler) CancelSyncJob(ctx context.Context, req *syncpb.CancelSyncJobRequest) (*syncpb.CancelSyncJobResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	cancelled, err := h.svc.CancelJob(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &syncpb.CancelSyncJobResponse{Cancelled: cancelled}, nil
}

// GetJobMetrics はジョブ履歴の集計を取得します。
func (h *SyncGrpcHandler) GetJobMetrics(ctx context.Context, req *syncpb.GetJobMetricsRequest) (*syncpb.GetJobMetricsResponse, error) {
	metrics, err := h.svc.GetJobMetrics(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	counts := make(map[string]int32, len(metrics.CountsByStatus))
	for jobStatus, count := range metrics.CountsByStatus {
		counts[string(jobStatus)] = int32(count)
	}

	upcoming := make([]*syncpb.SyncJob, 0, len(metrics.Upcoming))
	for _, job := range metrics.Upcoming {
		upcoming = append(upcoming, toProtoSyncJob(job))
	}

	return &syncpb.GetJobMetricsResponse{
		TotalJobs:       int32(metrics.TotalJobs),
		CountsByStatus:  counts,
		SuccessRate:     metrics.SuccessRate,
		AverageDuration: durationpb.New(metrics.AverageDuration),
		Upcoming:        upcoming,
	}, nil
}

// GetHealthStatus は同期パイプラインの健全性を取得します。
func (h *SyncGrpcHandler) GetHealthStatus(ctx context.Context, req *syncpb.GetHealthStatusRequest) (*syncpb.GetHealthStatusResponse, error) {
	health, err := h.svc.GetHealthStatus(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &syncpb.GetHealthStatusResponse{
		Healthy:             health.Healthy,
		ConsecutiveFailures: int32(health.ConsecutiveFailures),
		Issues:              health.Issues,
	}, nil
}

// TestDeviceConnection は端末への疎通確認を行います。
func (h *SyncGrpcHandler) TestDeviceConnection(ctx context.Context, req *syncpb.TestDeviceConnectionRequest) (*syncpb.TestDeviceConnectionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.TestDeviceConnection(ctx, req.GetDeviceId())
	if err != nil {
		if result != nil {
			return &syncpb.TestDeviceConnectionResponse{
				Ok:           false,
				ResponseTime: durationpb.New(result.ResponseTime),
			}, nil
		}
		return nil, toStatusError(err)
	}

	return &syncpb.TestDeviceConnectionResponse{
		Ok:           result.OK,
		ResponseTime: durationpb.New(result.ResponseTime),
	}, nil
}

func toDomainJobType(t syncpb.JobType) syncjob.JobType {
	switch t {
	case syncpb.JobType_JOB_TYPE_MANUAL_TRIGGER:
		return syncjob.TypeManualTrigger
	case syncpb.JobType_JOB_TYPE_SCHEDULED:
		return syncjob.TypeScheduled
	default:
		return ""
	}
}

func toProtoJobType(t syncjob.JobType) syncpb.JobType {
	switch t {
	case syncjob.TypeManualTrigger:
		return syncpb.JobType_JOB_TYPE_MANUAL_TRIGGER
	case syncjob.TypeScheduled:
		return syncpb.JobType_JOB_TYPE_SCHEDULED
	default:
		return syncpb.JobType_JOB_TYPE_UNSPECIFIED
	}
}

func toProtoJobStatus(s syncjob.JobStatus) syncpb.JobStatus {
	switch s {
	case syncjob.StatusPending:
		return syncpb.JobStatus_JOB_STATUS_PENDING
	case syncjob.StatusRunning:
		return syncpb.JobStatus_JOB_STATUS_RUNNING
	case syncjob.StatusCompleted:
		return syncpb.JobStatus_JOB_STATUS_COMPLETED
	case syncjob.StatusFailed:
		return syncpb.JobStatus_JOB_STATUS_FAILED
	case syncjob.StatusCancelled:
		return syncpb.JobStatus_JOB_STATUS_CANCELLED
	default:
		return syncpb.JobStatus_JOB_STATUS_UNSPECIFIED
	}
}

func toProtoSyncJob(job *syncjob.Job) *syncpb.SyncJob {
	if job == nil {
		return nil
	}

	protoJob := &syncpb.SyncJob{
		Id:          job.ID,
		Type:        toProtoJobType(job.Type),
		Status:      toProtoJobStatus(job.Status),
		DeviceIds:   job.Config.DeviceIDs,
		From:        timestamppb.New(job.Config.From),
		To:          timestamppb.New(job.Config.To),
		RequestedBy: job.RequestedBy,
		ScheduledAt: timestamppb.New(job.ScheduledAt),
	}

	if job.StartedAt != nil {
		protoJob.StartedAt = timestamppb.New(*job.StartedAt)
	}
	if job.FinishedAt != nil {
		protoJob.FinishedAt = timestamppb.New(*job.FinishedAt)
	}
	if job.Result != nil {
		protoJob.Result = toProtoJobResult(job.Result)
	}

	return protoJob
}

func toProtoJobResult(result *syncjob.JobResult) *syncpb.JobResult {
	devices := make([]*syncpb.DeviceOutcome, 0, len(result.Devices))
	for _, outcome := range result.Devices {
		devices = append(devices, &syncpb.DeviceOutcome{
			DeviceId: outcome.DeviceID,
			Fetched:  int32(outcome.Fetched),
			Created:  int32(outcome.Summary.Created),
			Skipped:  int32(outcome.Summary.Skipped),
			Duration: durationpb.New(outcome.Duration),
		})
	}

	deviceErrors := make([]*syncpb.DeviceError, 0, len(result.DeviceErrors))
	for _, devErr := range result.DeviceErrors {
		deviceErrors = append(deviceErrors, &syncpb.DeviceError{
			DeviceId: devErr.DeviceID,
			Message:  devErr.Message,
		})
	}

	return &syncpb.JobResult{
		Devices:        devices,
		DeviceErrors:   deviceErrors,
		TotalProcessed: int32(result.Summary.TotalProcessed),
		Created:        int32(result.Summary.Created),
		Skipped:        int32(result.Summary.Skipped),
		RecordErrors:   int32(len(result.Summary.Errors)),
	}
}
