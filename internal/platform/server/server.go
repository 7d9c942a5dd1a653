package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	attendancepb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/attendance/v1"
	payrollpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/payroll/v1"
	staffpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/staff/v1"
	syncpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/sync/v1"
	"github.com/ogurasousui/timeclock/internal/adapters/grpc/handler"
	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/payroll"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	"github.com/ogurasousui/timeclock/internal/core/syncjob"
	"google.golang.org/grpc"
)

// Services はサーバーに登録するユースケースの束です。
type Services struct {
	Staff      staff.UseCase
	Attendance attendance.UseCase
	Sync       syncjob.UseCase
	Payroll    payroll.UseCase
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, services Services, opts ...grpc.ServerOption) *Server {
	srv := grpc.NewServer(opts...)

	staffpb.RegisterStaffServiceServer(srv, handler.NewStaffGrpcHandler(services.Staff))
	attendancepb.RegisterAttendanceServiceServer(srv, handler.NewAttendanceGrpcHandler(services.Attendance))
	syncpb.RegisterSyncServiceServer(srv, handler.NewSyncGrpcHandler(services.Sync))
	payrollpb.RegisterPayrollServiceServer(srv, handler.NewPayrollGrpcHandler(services.Payroll))

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	go func() {
		<-ctx.Done()
		s.grpcServer.GracefulStop()
	}()

	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}
