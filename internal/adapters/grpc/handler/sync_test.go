package handler

import (
	"context"
	"testing"
	"time"

	syncpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/sync/v1"
	"github.com/ogurasousui/timeclock/internal/core/device"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type stubSyncUseCase struct {
	createInput syncjob.CreateJobInput
	createOut   *syncjob.Job
	createErr   error

	cancelID  string
	cancelOut bool
	cancelErr error

	getOut *syncjob.Job
	getErr error

	metricsOut *syncjob.Metrics
	healthOut  *syncjob.HealthStatus

	testOut *device.ConnectionResult
	testErr error
}

func (s *stubSyncUseCase) CreateSyncJob(_ context.Context, in syncjob.CreateJobInput) (*syncjob.Job, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubSyncUseCase) ExecuteJob(context.Context, string) (*syncjob.Job, error) {
	return nil, nil
}

func (s *stubSyncUseCase) CancelJob(_ context.Context, jobID string) (bool, error) {
	s.cancelID = jobID
	return s.cancelOut, s.cancelErr
}

func (s *stubSyncUseCase) GetJob(context.Context, string) (*syncjob.Job, error) {
	return s.getOut, s.getErr
}

func (s *stubSyncUseCase) GetJobMetrics(context.Context) (*syncjob.Metrics, error) {
	return s.metricsOut, nil
}

func (s *stubSyncUseCase) GetHealthStatus(context.Context) (*syncjob.HealthStatus, error) {
	return s.healthOut, nil
}

func (s *stubSyncUseCase) TestDeviceConnection(context.Context, string) (*device.ConnectionResult, error) {
	return s.testOut, s.testErr
}

func TestSyncGrpcHandler_CreateSyncJob(t *testing.T) {
	t.Parallel()

	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)

	stub := &stubSyncUseCase{
		createOut: &syncjob.Job{
			ID:          "job-1",
			Type:        syncjob.TypeManualTrigger,
			Status:      syncjob.StatusPending,
			Config:      syncjob.JobConfig{DeviceIDs: []string{"dev-1"}, From: from, To: to},
			ScheduledAt: now,
		},
	}

	handler := NewSyncGrpcHandler(stub)

	resp, err := handler.CreateSyncJob(context.Background(), &syncpb.CreateSyncJobRequest{
		Type:      syncpb.JobType_JOB_TYPE_MANUAL_TRIGGER,
		DeviceIds: []string{"dev-1"},
		From:      timestamppb.New(from),
		To:        timestamppb.New(to),
	})
	if err != nil {
		t.Fatalf("CreateSyncJob returned error: %v", err)
	}

	if stub.createInput.Type != syncjob.TypeManualTrigger {
		t.Errorf("expected manual trigger type, got %s", stub.createInput.Type)
	}
	if !stub.createInput.From.Equal(from) {
		t.Errorf("expected from passed through, got %s", stub.createInput.From)
	}

	if resp.GetJob().GetId() != "job-1" {
		t.Errorf("unexpected job id %s", resp.GetJob().GetId())
	}
	if resp.GetJob().GetStatus() != syncpb.JobStatus_JOB_STATUS_PENDING {
		t.Errorf("expected PENDING, got %v", resp.GetJob().GetStatus())
	}
}

func TestSyncGrpcHandler_CreateSyncJob_InvalidRange(t *testing.T) {
	t.Parallel()

	stub := &stubSyncUseCase{createErr: syncjob.ErrInvalidDateRange}
	handler := NewSyncGrpcHandler(stub)

	_, err := handler.CreateSyncJob(context.Background(), &syncpb.CreateSyncJobRequest{
		Type: syncpb.JobType_JOB_TYPE_MANUAL_TRIGGER,
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSyncGrpcHandler_CancelSyncJob(t *testing.T) {
	t.Parallel()

	stub := &stubSyncUseCase{cancelOut: true}
	handler := NewSyncGrpcHandler(stub)

	resp, err := handler.CancelSyncJob(context.Background(), &syncpb.CancelSyncJobRequest{Id: "job-1"})
	if err != nil {
		t.Fatalf("CancelSyncJob returned error: %v", err)
	}

	if stub.cancelID != "job-1" {
		t.Errorf("expected job id passed through, got %s", stub.cancelID)
	}
	if !resp.GetCancelled() {
		t.Errorf("expected cancelled=true")
	}
}

func TestSyncGrpcHandler_GetSyncJob_NotFound(t *testing.T) {
	t.Parallel()

	stub := &stubSyncUseCase{getErr: syncjob.ErrJobNotFound}
	handler := NewSyncGrpcHandler(stub)

	_, err := handler.GetSyncJob(context.Background(), &syncpb.GetSyncJobRequest{Id: "missing"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestSyncGrpcHandler_GetJobMetrics(t *testing.T) {
	t.Parallel()

	stub := &stubSyncUseCase{
		metricsOut: &syncjob.Metrics{
			TotalJobs: 5,
			CountsByStatus: map[syncjob.JobStatus]int{
				syncjob.StatusCompleted: 4,
				syncjob.StatusFailed:    1,
			},
			SuccessRate:     0.8,
			AverageDuration: 30 * time.Second,
		},
	}
	handler := NewSyncGrpcHandler(stub)

	resp, err := handler.GetJobMetrics(context.Background(), &syncpb.GetJobMetricsRequest{})
	if err != nil {
		t.Fatalf("GetJobMetrics returned error: %v", err)
	}

	if resp.GetTotalJobs() != 5 || resp.GetSuccessRate() != 0.8 {
		t.Errorf("unexpected metrics %+v", resp)
	}
	if resp.GetCountsByStatus()["COMPLETED"] != 4 {
		t.Errorf("unexpected counts %+v", resp.GetCountsByStatus())
	}
	if resp.GetAverageDuration().AsDuration() != 30*time.Second {
		t.Errorf("unexpected average duration %s", resp.GetAverageDuration().AsDuration())
	}
}

func TestSyncGrpcHandler_TestDeviceConnection(t *testing.T) {
	t.Parallel()

	stub := &stubSyncUseCase{
		testOut: &device.ConnectionResult{OK: true, ResponseTime: 12 * time.Millisecond},
	}
	handler := NewSyncGrpcHandler(stub)

	resp, err := handler.TestDeviceConnection(context.Background(), &syncpb.TestDeviceConnectionRequest{DeviceId: "dev-1"})
	if err != nil {
		t.Fatalf("TestDeviceConnection returned error: %v", err)
	}

	if !resp.GetOk() || resp.GetResponseTime().AsDuration() != 12*time.Millisecond {
		t.Errorf("unexpected response %+v", resp)
	}
}
