// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: attendance/v1/attendance.proto

package attendancev1

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
	AttendanceService_CreatePeriod_FullMethodName      = "/attendance.v1.AttendanceService/CreatePeriod"
	AttendanceService_GetPeriod_FullMethodName         = "/attendance.v1.AttendanceService/GetPeriod"
	AttendanceService_FinalizePeriod_FullMethodName    = "/attendance.v1.AttendanceService/FinalizePeriod"
	AttendanceService_ListPeriodRecords_FullMethodName = "/attendance.v1.AttendanceService/ListPeriodRecords"
)

// AttendanceServiceClient is the client API for AttendanceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type AttendanceServiceClient interface {
	CreatePeriod(ctx context.Context, in *CreatePeriodRequest, opts ...grpc.CallOption) (*CreatePeriodResponse, error)
	GetPeriod(ctx context.Context, in *GetPeriodRequest, opts ...grpc.CallOption) (*GetPeriodResponse, error)
	// FinalizePeriod は一方向の遷移です。確定済みの期間には失敗します。
	FinalizePeriod(ctx context.Context, in *FinalizePeriodRequest, opts ...grpc.CallOption) (*FinalizePeriodResponse, error)
	ListPeriodRecords(ctx context.Context, in *ListPeriodRecordsRequest, opts ...grpc.CallOption) (*ListPeriodRecordsResponse, error)
}

type attendanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAttendanceServiceClient(cc grpc.ClientConnInterface) AttendanceServiceClient {
	return &attendanceServiceClient{cc}
}

func (c *attendanceServiceClient) CreatePeriod(ctx context.Context, in *CreatePeriodRequest, opts ...grpc.CallOption) (*CreatePeriodResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePeriodResponse)
	err := c.cc.Invoke(ctx, AttendanceService_CreatePeriod_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *attendanceServiceClient) GetPeriod(ctx context.Context, in *GetPeriodRequest, opts ...grpc.CallOption) (*GetPeriodResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPeriodResponse)
	err := c.cc.Invoke(ctx, AttendanceService_GetPeriod_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *attendanceServiceClient) FinalizePeriod(ctx context.Context, in *FinalizePeriodRequest, opts ...grpc.CallOption) (*FinalizePeriodResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinalizePeriodResponse)
	err := c.cc.Invoke(ctx, AttendanceService_FinalizePeriod_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *attendanceServiceClient) ListPeriodRecords(ctx context.Context, in *ListPeriodRecordsRequest, opts ...grpc.CallOption) (*ListPeriodRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPeriodRecordsResponse)
	err := c.cc.Invoke(ctx, AttendanceService_ListPeriodRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AttendanceServiceServer is the server API for AttendanceService service.
// All implementations must embed UnimplementedAttendanceServiceServer
// for forward compatibility.
type AttendanceServiceServer interface {
	CreatePeriod(context.Context, *CreatePeriodRequest) (*CreatePeriodResponse, error)
	GetPeriod(context.Context, *GetPeriodRequest) (*GetPeriodResponse, error)
	// FinalizePeriod は一方向の遷移です。確定済みの期間には失敗します。
	FinalizePeriod(context.Context, *FinalizePeriodRequest) (*FinalizePeriodResponse, error)
	ListPeriodRecords(context.Context, *ListPeriodRecordsRequest) (*ListPeriodRecordsResponse, error)
	mustEmbedUnimplementedAttendanceServiceServer()
}

// UnimplementedAttendanceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAttendanceServiceServer struct{}

func (UnimplementedAttendanceServiceServer) CreatePeriod(context.Context, *CreatePeriodRequest) (*CreatePeriodResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePeriod not implemented")
}
func (UnimplementedAttendanceServiceServer) GetPeriod(context.Context, *GetPeriodRequest) (*GetPeriodResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPeriod not implemented")
}
func (UnimplementedAttendanceServiceServer) FinalizePeriod(context.Context, *FinalizePeriodRequest) (*FinalizePeriodResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinalizePeriod not implemented")
}
func (UnimplementedAttendanceServiceServer) ListPeriodRecords(context.Context, *ListPeriodRecordsRequest) (*ListPeriodRecordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPeriodRecords not implemented")
}
func (UnimplementedAttendanceServiceServer) mustEmbedUnimplementedAttendanceServiceServer() {}
func (UnimplementedAttendanceServiceServer) testEmbeddedByValue()                           {}

// UnsafeAttendanceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AttendanceServiceServer will
// result in compilation errors.
type UnsafeAttendanceServiceServer interface {
	mustEmbedUnimplementedAttendanceServiceServer()
}

func RegisterAttendanceServiceServer(s grpc.ServiceRegistrar, srv AttendanceServiceServer) {
	// If the following call panics, it indicates UnimplementedAttendanceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AttendanceService_ServiceDesc, srv)
}

func _AttendanceService_CreatePeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AttendanceServiceServer).CreatePeriod(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AttendanceService_CreatePeriod_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AttendanceServiceServer).CreatePeriod(ctx, req.(*CreatePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AttendanceService_GetPeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AttendanceServiceServer).GetPeriod(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AttendanceService_GetPeriod_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AttendanceServiceServer).GetPeriod(ctx, req.(*GetPeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AttendanceService_FinalizePeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AttendanceServiceServer).FinalizePeriod(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AttendanceService_FinalizePeriod_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AttendanceServiceServer).FinalizePeriod(ctx, req.(*FinalizePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AttendanceService_ListPeriodRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPeriodRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AttendanceServiceServer).ListPeriodRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AttendanceService_ListPeriodRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AttendanceServiceServer).ListPeriodRecords(ctx, req.(*ListPeriodRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AttendanceService_ServiceDesc is the grpc.ServiceDesc for AttendanceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AttendanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "attendance.v1.AttendanceService",
	HandlerType: (*AttendanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePeriod",
			Handler:    _AttendanceService_CreatePeriod_Handler,
		},
		{
			MethodName: "GetPeriod",
			Handler:    _AttendanceService_GetPeriod_Handler,
		},
		{
			MethodName: "FinalizePeriod",
			Handler:    _AttendanceService_FinalizePeriod_Handler,
		},
		{
			MethodName: "ListPeriodRecords",
			Handler:    _AttendanceService_ListPeriodRecords_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "attendance/v1/attendance.proto",
}
