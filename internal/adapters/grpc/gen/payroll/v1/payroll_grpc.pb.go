// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: payroll/v1/payroll.proto

package payrollv1

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
	PayrollService_ValidateEligibility_FullMethodName   = "/payroll.v1.PayrollService/ValidateEligibility"
	PayrollService_GetCalculationPreview_FullMethodName = "/payroll.v1.PayrollService/GetCalculationPreview"
	PayrollService_CalculatePayroll_FullMethodName      = "/payroll.v1.PayrollService/CalculatePayroll"
	PayrollService_ApprovePayroll_FullMethodName        = "/payroll.v1.PayrollService/ApprovePayroll"
	PayrollService_GetPayrollSummary_FullMethodName     = "/payroll.v1.PayrollService/GetPayrollSummary"
)

// PayrollServiceClient is the client API for PayrollService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PayrollServiceClient interface {
	ValidateEligibility(ctx context.Context, in *ValidateEligibilityRequest, opts ...grpc.CallOption) (*ValidateEligibilityResponse, error)
	GetCalculationPreview(ctx context.Context, in *GetCalculationPreviewRequest, opts ...grpc.CallOption) (*GetCalculationPreviewResponse, error)
	// CalculatePayroll は既存の明細を全置換します。承認済みの期間には失敗します。
	CalculatePayroll(ctx context.Context, in *CalculatePayrollRequest, opts ...grpc.CallOption) (*CalculatePayrollResponse, error)
	ApprovePayroll(ctx context.Context, in *ApprovePayrollRequest, opts ...grpc.CallOption) (*ApprovePayrollResponse, error)
	GetPayrollSummary(ctx context.Context, in *GetPayrollSummaryRequest, opts ...grpc.CallOption) (*GetPayrollSummaryResponse, error)
}

type payrollServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPayrollServiceClient(cc grpc.ClientConnInterface) PayrollServiceClient {
	return &payrollServiceClient{cc}
}

func (c *payrollServiceClient) ValidateEligibility(ctx context.Context, in *ValidateEligibilityRequest, opts ...grpc.CallOption) (*ValidateEligibilityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ValidateEligibilityResponse)
	err := c.cc.Invoke(ctx, PayrollService_ValidateEligibility_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *payrollServiceClient) GetCalculationPreview(ctx context.Context, in *GetCalculationPreviewRequest, opts ...grpc.CallOption) (*GetCalculationPreviewResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCalculationPreviewResponse)
	err := c.cc.Invoke(ctx, PayrollService_GetCalculationPreview_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *payrollServiceClient) CalculatePayroll(ctx context.Context, in *CalculatePayrollRequest, opts ...grpc.CallOption) (*CalculatePayrollResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CalculatePayrollResponse)
	err := c.cc.Invoke(ctx, PayrollService_CalculatePayroll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *payrollServiceClient) ApprovePayroll(ctx context.Context, in *ApprovePayrollRequest, opts ...grpc.CallOption) (*ApprovePayrollResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ApprovePayrollResponse)
	err := c.cc.Invoke(ctx, PayrollService_ApprovePayroll_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *payrollServiceClient) GetPayrollSummary(ctx context.Context, in *GetPayrollSummaryRequest, opts ...grpc.CallOption) (*GetPayrollSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPayrollSummaryResponse)
	err := c.cc.Invoke(ctx, PayrollService_GetPayrollSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PayrollServiceServer is the server API for PayrollService service.
// All implementations must embed UnimplementedPayrollServiceServer
// for forward compatibility.
type PayrollServiceServer interface {
	ValidateEligibility(context.Context, *ValidateEligibilityRequest) (*ValidateEligibilityResponse, error)
	GetCalculationPreview(context.Context, *GetCalculationPreviewRequest) (*GetCalculationPreviewResponse, error)
	// CalculatePayroll は既存の明細を全置換します。承認済みの期間には失敗します。
	CalculatePayroll(context.Context, *CalculatePayrollRequest) (*CalculatePayrollResponse, error)
	ApprovePayroll(context.Context, *ApprovePayrollRequest) (*ApprovePayrollResponse, error)
	GetPayrollSummary(context.Context, *GetPayrollSummaryRequest) (*GetPayrollSummaryResponse, error)
	mustEmbedUnimplementedPayrollServiceServer()
}

// UnimplementedPayrollServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPayrollServiceServer struct{}

func (UnimplementedPayrollServiceServer) ValidateEligibility(context.Context, *ValidateEligibilityRequest) (*ValidateEligibilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ValidateEligibility not implemented")
}
func (UnimplementedPayrollServiceServer) GetCalculationPreview(context.Context, *GetCalculationPreviewRequest) (*GetCalculationPreviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCalculationPreview not implemented")
}
func (UnimplementedPayrollServiceServer) CalculatePayroll(context.Context, *CalculatePayrollRequest) (*CalculatePayrollResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CalculatePayroll not implemented")
}
func (UnimplementedPayrollServiceServer) ApprovePayroll(context.Context, *ApprovePayrollRequest) (*ApprovePayrollResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApprovePayroll not implemented")
}
func (UnimplementedPayrollServiceServer) GetPayrollSummary(context.Context, *GetPayrollSummaryRequest) (*GetPayrollSummaryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPayrollSummary not implemented")
}
func (UnimplementedPayrollServiceServer) mustEmbedUnimplementedPayrollServiceServer() {}
func (UnimplementedPayrollServiceServer) testEmbeddedByValue()                        {}

// UnsafePayrollServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PayrollServiceServer will
// result in compilation errors.
type UnsafePayrollServiceServer interface {
	mustEmbedUnimplementedPayrollServiceServer()
}

func RegisterPayrollServiceServer(s grpc.ServiceRegistrar, srv PayrollServiceServer) {
	// If the following call panics, it indicates UnimplementedPayrollServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PayrollService_ServiceDesc, srv)
}

func _PayrollService_ValidateEligibility_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateEligibilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).ValidateEligibility(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PayrollService_ValidateEligibility_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PayrollServiceServer).ValidateEligibility(ctx, req.(*ValidateEligibilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PayrollService_GetCalculationPreview_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCalculationPreviewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).GetCalculationPreview(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PayrollService_GetCalculationPreview_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PayrollServiceServer).GetCalculationPreview(ctx, req.(*GetCalculationPreviewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PayrollService_CalculatePayroll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CalculatePayrollRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).CalculatePayroll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PayrollService_CalculatePayroll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PayrollServiceServer).CalculatePayroll(ctx, req.(*CalculatePayrollRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PayrollService_ApprovePayroll_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApprovePayrollRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).ApprovePayroll(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PayrollService_ApprovePayroll_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PayrollServiceServer).ApprovePayroll(ctx, req.(*ApprovePayrollRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PayrollService_GetPayrollSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPayrollSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PayrollServiceServer).GetPayrollSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PayrollService_GetPayrollSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PayrollServiceServer).GetPayrollSummary(ctx, req.(*GetPayrollSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PayrollService_ServiceDesc is the grpc.ServiceDesc for PayrollService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PayrollService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "payroll.v1.PayrollService",
	HandlerType: (*PayrollServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateEligibility",
			Handler:    _PayrollService_ValidateEligibility_Handler,
		},
		{
			MethodName: "GetCalculationPreview",
			Handler:    _PayrollService_GetCalculationPreview_Handler,
		},
		{
			MethodName: "CalculatePayroll",
			Handler:    _PayrollService_CalculatePayroll_Handler,
		},
		{
			MethodName: "ApprovePayroll",
			Handler:    _PayrollService_ApprovePayroll_Handler,
		},
		{
			MethodName: "GetPayrollSummary",
			Handler:    _PayrollService_GetPayrollSummary_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "payroll/v1/payroll.proto",
}
