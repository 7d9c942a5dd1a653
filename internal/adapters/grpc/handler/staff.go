package handler

import (
	"context"
	"fmt"

	staffpb "github.com/ogurasousui/timeclock/internal/adapters/grpc/gen/staff/v1"
	"github.com/ogurasousui/timeclock/internal/core/staff"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// StaffGrpcHandler は StaffService の gRPC 実装です。
type StaffGrpcHandler struct {
	svc staff.UseCase
	staffpb.UnimplementedStaffServiceServer
}

// NewStaffGrpcHandler は StaffGrpcHandler を生成します。
func NewStaffGrpcHandler(svc staff.UseCase) *StaffGrpcHandler {
	return &StaffGrpcHandler{svc: svc}
}

// CreateStaff は従業員を作成します。
func (h *StaffGrpcHandler) CreateStaff(ctx context.Context, req *staffpb.CreateStaffRequest) (*staffpb.CreateStaffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	created, err := h.svc.CreateStaff(ctx, staff.CreateStaffInput{
		Code:         req.GetCode(),
		Name:         req.GetName(),
		StandardRate: req.GetStandardRate(),
		OvertimeRate: req.GetOvertimeRate(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffpb.CreateStaffResponse{Staff: toProtoStaff(created)}, nil
}

// GetStaff は ID で従業員を取得します。
func (h *StaffGrpcHandler) GetStaff(ctx context.Context, req *staffpb.GetStaffRequest) (*staffpb.GetStaffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetStaff(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffpb.GetStaffResponse{Staff: toProtoStaff(found)}, nil
}

// ListStaff は従業員の一覧を取得します。
func (h *StaffGrpcHandler) ListStaff(ctx context.Context, req *staffpb.ListStaffRequest) (*staffpb.ListStaffResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *staff.Status
	if req.GetStatus() != staffpb.StaffStatus_STAFF_STATUS_UNSPECIFIED {
		domainStatus, err := toStaffDomainStatus(req.GetStatus())
		if err != nil {
			return nil, toStatusError(err)
		}
		statusPtr = &domainStatus
	}

	members, err := h.svc.ListStaff(ctx, staff.ListStaffInput{
		Status: statusPtr,
		Limit:  int(req.GetPageSize()),
		Offset: int(req.GetOffset()),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	protoMembers := make([]*staffpb.Staff, 0, len(members))
	for _, member := range members {
		protoMembers = append(protoMembers, toProtoStaff(member))
	}

	return &staffpb.ListStaffResponse{Staff: protoMembers}, nil
}

func toProtoStaff(s *staff.Staff) *staffpb.Staff {
	if s == nil {
		return nil
	}
	return &staffpb.Staff{
		Id:           s.ID,
		Code:         s.Code,
		Name:         s.Name,
		Status:       toProtoStaffStatus(s.Status),
		StandardRate: s.StandardRate,
		OvertimeRate: s.OvertimeRate,
		CreatedAt:    timestamppb.New(s.CreatedAt),
		UpdatedAt:    timestamppb.New(s.UpdatedAt),
	}
}

func toProtoStaffStatus(s staff.Status) staffpb.StaffStatus {
	switch s {
	case staff.StatusActive:
		return staffpb.StaffStatus_STAFF_STATUS_ACTIVE
	case staff.StatusInactive:
		return staffpb.StaffStatus_STAFF_STATUS_INACTIVE
	default:
		return staffpb.StaffStatus_STAFF_STATUS_UNSPECIFIED
	}
}

func toStaffDomainStatus(s staffpb.StaffStatus) (staff.Status, error) {
	switch s {
	case staffpb.StaffStatus_STAFF_STATUS_ACTIVE:
		return staff.StatusActive, nil
	case staffpb.StaffStatus_STAFF_STATUS_INACTIVE:
		return staff.StatusInactive, nil
	default:
		return "", fmt.Errorf("unknown status %v: %w", s, staff.ErrInvalidStatus)
	}
}
