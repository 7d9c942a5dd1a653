// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: sync/v1/sync.proto

package syncv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SyncService_CreateSyncJob_FullMethodName        = "/sync.v1.SyncService/CreateSyncJob"
	SyncService_GetSyncJob_FullMethodName           = "/sync.v1.SyncService/GetSyncJob"
	SyncService_CancelSyncJob_FullMethodName        = "/sync.v1.SyncService/CancelSyncJob"
	SyncService_GetJobMetrics_FullMethodName        = "/sync.v1.SyncService/GetJobMetrics"
	SyncService_GetHealthStatus_FullMethodName      = "/sync.v1.SyncService/GetHealthStatus"
	SyncService_TestDeviceConnection_FullMethodName = "/sync.v1.SyncService/TestDeviceConnection"
)

// SyncServiceClient is the client API for SyncService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type SyncServiceClient interface {
	// CreateSyncJob はジョブを受理し PENDING の状態で返します。
	// 手動ジョブは受理後すぐにバックグラウンドで実行されます。
	CreateSyncJob(ctx context.Context, in *CreateSyncJobRequest, opts ...grpc.CallOption) (*CreateSyncJobResponse, error)
	GetSyncJob(ctx context.Context, in *GetSyncJobRequest, opts ...grpc.CallOption) (*GetSyncJobResponse, error)
	CancelSyncJob(ctx context.Context, in *CancelSyncJobRequest, opts ...grpc.CallOption) (*CancelSyncJobResponse, error)
	GetJobMetrics(ctx context.Context, in *GetJobMetricsRequest, opts ...grpc.CallOption) (*GetJobMetricsResponse, error)
	GetHealthStatus(ctx context.Context, in *GetHealthStatusRequest, opts ...grpc.CallOption) (*GetHealthStatusResponse, error)
	TestDeviceConnection(ctx context.Context, in *TestDeviceConnectionRequest, opts ...grpc.CallOption) (*TestDeviceConnectionResponse, error)
}

type syncServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSyncServiceClient(cc grpc.ClientConnInterface) SyncServiceClient {
	return &syncServiceClient{cc}
}

func (c *syncServiceClient) CreateSyncJob(ctx context.Context, in *CreateSyncJobRequest, opts ...grpc.CallOption) (*CreateSyncJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateSyncJobResponse)
	err := c.cc.Invoke(ctx, SyncService_CreateSyncJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) GetSyncJob(ctx context.Context, in *GetSyncJobRequest, opts ...grpc.CallOption) (*GetSyncJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetSyncJobResponse)
	err := c.cc.Invoke(ctx, SyncService_GetSyncJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) CancelSyncJob(ctx context.Context, in *CancelSyncJobRequest, opts ...grpc.CallOption) (*CancelSyncJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelSyncJobResponse)
	err := c.cc.Invoke(ctx, SyncService_CancelSyncJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) GetJobMetrics(ctx context.Context, in *GetJobMetricsRequest, opts ...grpc.CallOption) (*GetJobMetricsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobMetricsResponse)
	err := c.cc.Invoke(ctx, SyncService_GetJobMetrics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) GetHealthStatus(ctx context.Context, in *GetHealthStatusRequest, opts ...grpc.CallOption) (*GetHealthStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetHealthStatusResponse)
	err := c.cc.Invoke(ctx, SyncService_GetHealthStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *syncServiceClient) TestDeviceConnection(ctx context.Context, in *TestDeviceConnectionRequest, opts ...grpc.CallOption) (*TestDeviceConnectionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TestDeviceConnectionResponse)
	err := c.cc.Invoke(ctx, SyncService_TestDeviceConnection_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SyncServiceServer is the server API for SyncService service.
// All implementations must embed UnimplementedSyncServiceServer
// for forward compatibility.
type SyncServiceServer interface {
	// CreateSyncJob はジョブを受理し PENDING の状態で返します。
	// 手動ジョブは受理後すぐにバックグラウンドで実行されます。
	CreateSyncJob(context.Context, *CreateSyncJobRequest) (*CreateSyncJobResponse, error)
	GetSyncJob(context.Context, *GetSyncJobRequest) (*GetSyncJobResponse, error)
	CancelSyncJob(context.Context, *CancelSyncJobRequest) (*CancelSyncJobResponse, error)
	GetJobMetrics(context.Context, *GetJobMetricsRequest) (*GetJobMetricsResponse, error)
	GetHealthStatus(context.Context, *GetHealthStatusRequest) (*GetHealthStatusResponse, error)
	TestDeviceConnection(context.Context, *TestDeviceConnectionRequest) (*TestDeviceConnectionResponse, error)
	mustEmbedUnimplementedSyncServiceServer()
}

// UnimplementedSyncServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSyncServiceServer struct{}

func (UnimplementedSyncServiceServer) CreateSyncJob(context.Context, *CreateSyncJobRequest) (*CreateSyncJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSyncJob not implemented")
}
func (UnimplementedSyncServiceServer) GetSyncJob(context.Context, *GetSyncJobRequest) (*GetSyncJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSyncJob not implemented")
}
func (UnimplementedSyncServiceServer) CancelSyncJob(context.Context, *CancelSyncJobRequest) (*CancelSyncJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelSyncJob not implemented")
}
func (UnimplementedSyncServiceServer) GetJobMetrics(context.Context, *GetJobMetricsRequest) (*GetJobMetricsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJobMetrics not implemented")
}
func (UnimplementedSyncServiceServer) GetHealthStatus(context.Context, *GetHealthStatusRequest) (*GetHealthStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetHealthStatus not implemented")
}
func (UnimplementedSyncServiceServer) TestDeviceConnection(context.Context, *TestDeviceConnectionRequest) (*TestDeviceConnectionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TestDeviceConnection not implemented")
}
func (UnimplementedSyncServiceServer) mustEmbedUnimplementedSyncServiceServer() {}
func (UnimplementedSyncServiceServer) testEmbeddedByValue()                     {}

// UnsafeSyncServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SyncServiceServer will
// result in compilation errors.
type UnsafeSyncServiceServer interface {
	mustEmbedUnimplementedSyncServiceServer()
}

func RegisterSyncServiceServer(s grpc.ServiceRegistrar, srv SyncServiceServer) {
	// If the following call panics, it indicates UnimplementedSyncServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SyncService_ServiceDesc, srv)
}

func _SyncService_CreateSyncJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateSyncJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).CreateSyncJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_CreateSyncJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).CreateSyncJob(ctx, req.(*CreateSyncJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_GetSyncJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSyncJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).GetSyncJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_GetSyncJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).GetSyncJob(ctx, req.(*GetSyncJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_CancelSyncJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelSyncJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).CancelSyncJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_CancelSyncJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).CancelSyncJob(ctx, req.(*CancelSyncJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_GetJobMetrics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobMetricsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).GetJobMetrics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_GetJobMetrics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).GetJobMetrics(ctx, req.(*GetJobMetricsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_GetHealthStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetHealthStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).GetHealthStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_GetHealthStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).GetHealthStatus(ctx, req.(*GetHealthStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SyncService_TestDeviceConnection_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TestDeviceConnectionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SyncServiceServer).TestDeviceConnection(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SyncService_TestDeviceConnection_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SyncServiceServer).TestDeviceConnection(ctx, req.(*TestDeviceConnectionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SyncService_ServiceDesc is the grpc.ServiceDesc for SyncService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SyncService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "sync.v1.SyncService",
	HandlerType: (*SyncServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSyncJob",
			Handler:    _SyncService_CreateSyncJob_Handler,
		},
		{
			MethodName: "GetSyncJob",
			Handler:    _SyncService_GetSyncJob_Handler,
		},
		{
			MethodName: "CancelSyncJob",
			Handler:    _SyncService_CancelSyncJob_Handler,
		},
		{
			MethodName: "GetJobMetrics",
			Handler:    _SyncService_GetJobMetrics_Handler,
		},
		{
			MethodName: "GetHealthStatus",
			Handler:    _SyncService_GetHealthStatus_Handler,
		},
		{
			MethodName: "TestDeviceConnection",
			Handler:    _SyncService_TestDeviceConnection_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sync/v1/sync.proto",
}
