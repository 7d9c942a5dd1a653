// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: attendance/v1/attendance.proto

package attendancev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	wrapperspb "google.golang.org/protobuf/types/known/wrapperspb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type PeriodStatus int32

const (
	PeriodStatus_PERIOD_STATUS_UNSPECIFIED PeriodStatus = 0
	PeriodStatus_PERIOD_STATUS_PENDING     PeriodStatus = 1
	PeriodStatus_PERIOD_STATUS_FINALIZED   PeriodStatus = 2
)

// Enum value maps for PeriodStatus.
var (
	PeriodStatus_name = map[int32]string{
		0: "PERIOD_STATUS_UNSPECIFIED",
		1: "PERIOD_STATUS_PENDING",
		2: "PERIOD_STATUS_FINALIZED",
	}
	PeriodStatus_value = map[string]int32{
		"PERIOD_STATUS_UNSPECIFIED": 0,
		"PERIOD_STATUS_PENDING":     1,
		"PERIOD_STATUS_FINALIZED":   2,
	}
)

func (x PeriodStatus) Enum() *PeriodStatus {
	p := new(PeriodStatus)
	*p = x
	return p
}

func (x PeriodStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PeriodStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_attendance_v1_attendance_proto_enumTypes[0].Descriptor()
}

func (PeriodStatus) Type() protoreflect.EnumType {
	return &file_attendance_v1_attendance_proto_enumTypes[0]
}

func (x PeriodStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PeriodStatus.Descriptor instead.
func (PeriodStatus) EnumDescriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{0}
}

type Period struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// start_date / end_date は YYYY-MM-DD 形式の日付です。
	StartDate     string                 `protobuf:"bytes,2,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string                 `protobuf:"bytes,3,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Status        PeriodStatus           `protobuf:"varint,4,opt,name=status,proto3,enum=attendance.v1.PeriodStatus" json:"status,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Period) Reset() {
	*x = Period{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Period) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Period) ProtoMessage() {}

func (x *Period) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Period.ProtoReflect.Descriptor instead.
func (*Period) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{0}
}

func (x *Period) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Period) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *Period) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *Period) GetStatus() PeriodStatus {
	if x != nil {
		return x.Status
	}
	return PeriodStatus_PERIOD_STATUS_UNSPECIFIED
}

func (x *Period) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Period) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type AttendanceRecord struct {
	state            protoimpl.MessageState  `protogen:"open.v1"`
	Id               string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	StaffId          string                  `protobuf:"bytes,2,opt,name=staff_id,json=staffId,proto3" json:"staff_id,omitempty"`
	Date             string                  `protobuf:"bytes,3,opt,name=date,proto3" json:"date,omitempty"`
	ClockIn          *timestamppb.Timestamp  `protobuf:"bytes,4,opt,name=clock_in,json=clockIn,proto3" json:"clock_in,omitempty"`
	ClockOut         *timestamppb.Timestamp  `protobuf:"bytes,5,opt,name=clock_out,json=clockOut,proto3" json:"clock_out,omitempty"`
	TotalHours       *wrapperspb.DoubleValue `protobuf:"bytes,6,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	SyncStatus       string                  `protobuf:"bytes,7,opt,name=sync_status,json=syncStatus,proto3" json:"sync_status,omitempty"`
	ValidationStatus string                  `protobuf:"bytes,8,opt,name=validation_status,json=validationStatus,proto3" json:"validation_status,omitempty"`
	HasConflict      bool                    `protobuf:"varint,9,opt,name=has_conflict,json=hasConflict,proto3" json:"has_conflict,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *AttendanceRecord) Reset() {
	*x = AttendanceRecord{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttendanceRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttendanceRecord) ProtoMessage() {}

func (x *AttendanceRecord) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttendanceRecord.ProtoReflect.Descriptor instead.
func (*AttendanceRecord) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{1}
}

func (x *AttendanceRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *AttendanceRecord) GetStaffId() string {
	if x != nil {
		return x.StaffId
	}
	return ""
}

func (x *AttendanceRecord) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *AttendanceRecord) GetClockIn() *timestamppb.Timestamp {
	if x != nil {
		return x.ClockIn
	}
	return nil
}

func (x *AttendanceRecord) GetClockOut() *timestamppb.Timestamp {
	if x != nil {
		return x.ClockOut
	}
	return nil
}

func (x *AttendanceRecord) GetTotalHours() *wrapperspb.DoubleValue {
	if x != nil {
		return x.TotalHours
	}
	return nil
}

func (x *AttendanceRecord) GetSyncStatus() string {
	if x != nil {
		return x.SyncStatus
	}
	return ""
}

func (x *AttendanceRecord) GetValidationStatus() string {
	if x != nil {
		return x.ValidationStatus
	}
	return ""
}

func (x *AttendanceRecord) GetHasConflict() bool {
	if x != nil {
		return x.HasConflict
	}
	return false
}

type CreatePeriodRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StartDate     string                 `protobuf:"bytes,1,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string                 `protobuf:"bytes,2,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePeriodRequest) Reset() {
	*x = CreatePeriodRequest{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePeriodRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePeriodRequest) ProtoMessage() {}

func (x *CreatePeriodRequest) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePeriodRequest.ProtoReflect.Descriptor instead.
func (*CreatePeriodRequest) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{2}
}

func (x *CreatePeriodRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *CreatePeriodRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

type CreatePeriodResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        *Period                `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreatePeriodResponse) Reset() {
	*x = CreatePeriodResponse{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreatePeriodResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreatePeriodResponse) ProtoMessage() {}

func (x *CreatePeriodResponse) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreatePeriodResponse.ProtoReflect.Descriptor instead.
func (*CreatePeriodResponse) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{3}
}

func (x *CreatePeriodResponse) GetPeriod() *Period {
	if x != nil {
		return x.Period
	}
	return nil
}

type GetPeriodRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPeriodRequest) Reset() {
	*x = GetPeriodRequest{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPeriodRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPeriodRequest) ProtoMessage() {}

func (x *GetPeriodRequest) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPeriodRequest.ProtoReflect.Descriptor instead.
func (*GetPeriodRequest) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{4}
}

func (x *GetPeriodRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPeriodResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        *Period                `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPeriodResponse) Reset() {
	*x = GetPeriodResponse{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPeriodResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPeriodResponse) ProtoMessage() {}

func (x *GetPeriodResponse) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPeriodResponse.ProtoReflect.Descriptor instead.
func (*GetPeriodResponse) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{5}
}

func (x *GetPeriodResponse) GetPeriod() *Period {
	if x != nil {
		return x.Period
	}
	return nil
}

type FinalizePeriodRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizePeriodRequest) Reset() {
	*x = FinalizePeriodRequest{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizePeriodRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizePeriodRequest) ProtoMessage() {}

func (x *FinalizePeriodRequest) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizePeriodRequest.ProtoReflect.Descriptor instead.
func (*FinalizePeriodRequest) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{6}
}

func (x *FinalizePeriodRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type FinalizePeriodResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        *Period                `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizePeriodResponse) Reset() {
	*x = FinalizePeriodResponse{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizePeriodResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizePeriodResponse) ProtoMessage() {}

func (x *FinalizePeriodResponse) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizePeriodResponse.ProtoReflect.Descriptor instead.
func (*FinalizePeriodResponse) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{7}
}

func (x *FinalizePeriodResponse) GetPeriod() *Period {
	if x != nil {
		return x.Period
	}
	return nil
}

type ListPeriodRecordsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PeriodId      string                 `protobuf:"bytes,1,opt,name=period_id,json=periodId,proto3" json:"period_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPeriodRecordsRequest) Reset() {
	*x = ListPeriodRecordsRequest{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPeriodRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPeriodRecordsRequest) ProtoMessage() {}

func (x *ListPeriodRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPeriodRecordsRequest.ProtoReflect.Descriptor instead.
func (*ListPeriodRecordsRequest) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{8}
}

func (x *ListPeriodRecordsRequest) GetPeriodId() string {
	if x != nil {
		return x.PeriodId
	}
	return ""
}

type ListPeriodRecordsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*AttendanceRecord    `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPeriodRecordsResponse) Reset() {
	*x = ListPeriodRecordsResponse{}
	mi := &file_attendance_v1_attendance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPeriodRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPeriodRecordsResponse) ProtoMessage() {}

func (x *ListPeriodRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_attendance_v1_attendance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPeriodRecordsResponse.ProtoReflect.Descriptor instead.
func (*ListPeriodRecordsResponse) Descriptor() ([]byte, []int) {
	return file_attendance_v1_attendance_proto_rawDescGZIP(), []int{9}
}

func (x *ListPeriodRecordsResponse) GetRecords() []*AttendanceRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_attendance_v1_attendance_proto protoreflect.FileDescriptor

const file_attendance_v1_attendance_proto_rawDesc = "" +
	"\n" +
	"\x1eattendance/v1/attendance.proto\x12\rattendance.v1\x1a\x1fgoogle/protobuf/timestamp.proto\x1a\x1egoogle/protobuf/wrappers.proto\"\xfd\x01\n" +
	"\x06Period\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"start_date\x18\x02 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x03 \x01(\tR\aendDate\x123\n" +
	"\x06status\x18\x04 \x01(\x0e2\x1b.attendance.v1.PeriodStatusR\x06status\x129\n" +
	"\n" +
	"created_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\xf1\x02\n" +
	"\x10AttendanceRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bstaff_id\x18\x02 \x01(\tR\astaffId\x12\x12\n" +
	"\x04date\x18\x03 \x01(\tR\x04date\x125\n" +
	"\bclock_in\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\aclockIn\x127\n" +
	"\tclock_out\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\bclockOut\x12=\n" +
	"\vtotal_hours\x18\x06 \x01(\v2\x1c.google.protobuf.DoubleValueR\n" +
	"totalHours\x12\x1f\n" +
	"\vsync_status\x18\a \x01(\tR\n" +
	"syncStatus\x12+\n" +
	"\x11validation_status\x18\b \x01(\tR\x10validationStatus\x12!\n" +
	"\fhas_conflict\x18\t \x01(\bR\vhasConflict\"O\n" +
	"\x13CreatePeriodRequest\x12\x1d\n" +
	"\n" +
	"start_date\x18\x01 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x02 \x01(\tR\aendDate\"E\n" +
	"\x14CreatePeriodResponse\x12-\n" +
	"\x06period\x18\x01 \x01(\v2\x15.attendance.v1.PeriodR\x06period\"\"\n" +
	"\x10GetPeriodRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"B\n" +
	"\x11GetPeriodResponse\x12-\n" +
	"\x06period\x18\x01 \x01(\v2\x15.attendance.v1.PeriodR\x06period\"'\n" +
	"\x15FinalizePeriodRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"G\n" +
	"\x16FinalizePeriodResponse\x12-\n" +
	"\x06period\x18\x01 \x01(\v2\x15.attendance.v1.PeriodR\x06period\"7\n" +
	"\x18ListPeriodRecordsRequest\x12\x1b\n" +
	"\tperiod_id\x18\x01 \x01(\tR\bperiodId\"V\n" +
	"\x19ListPeriodRecordsResponse\x129\n" +
	"\arecords\x18\x01 \x03(\v2\x1f.attendance.v1.AttendanceRecordR\arecords*e\n" +
	"\fPeriodStatus\x12\x1d\n" +
	"\x19PERIOD_STATUS_UNSPECIFIED\x10\x00\x12\x19\n" +
	"\x15PERIOD_STATUS_PENDING\x10\x01\x12\x1b\n" +
	"\x17PERIOD_STATUS_FINALIZED\x10\x022\x83\x03\n" +
	"\x11AttendanceService\x12W\n" +
	"\fCreatePeriod\x12\".attendance.v1.CreatePeriodRequest\x1a#.attendance.v1.CreatePeriodResponse\x12N\n" +
	"\tGetPeriod\x12\x1f.attendance.v1.GetPeriodRequest\x1a .attendance.v1.GetPeriodResponse\x12]\n" +
	"\x0eFinalizePeriod\x12$.attendance.v1.FinalizePeriodRequest\x1a%.attendance.v1.FinalizePeriodResponse\x12f\n" +
	"\x11ListPeriodRecords\x12'.attendance.v1.ListPeriodRecordsRequest\x1a(.attendance.v1.ListPeriodRecordsResponseBXZVgithub.com/ogurasousui/timeclock/internal/adapters/grpc/gen/attendance/v1;attendancev1b\x06proto3"

var (
	file_attendance_v1_attendance_proto_rawDescOnce sync.Once
	file_attendance_v1_attendance_proto_rawDescData []byte
)

func file_attendance_v1_attendance_proto_rawDescGZIP() []byte {
	file_attendance_v1_attendance_proto_rawDescOnce.Do(func() {
		file_attendance_v1_attendance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_attendance_v1_attendance_proto_rawDesc), len(file_attendance_v1_attendance_proto_rawDesc)))
	})
	return file_attendance_v1_attendance_proto_rawDescData
}

var file_attendance_v1_attendance_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_attendance_v1_attendance_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_attendance_v1_attendance_proto_goTypes = []any{
	(PeriodStatus)(0),                 // 0: attendance.v1.PeriodStatus
	(*Period)(nil),                    // 1: attendance.v1.Period
	(*AttendanceRecord)(nil),          // 2: attendance.v1.AttendanceRecord
	(*CreatePeriodRequest)(nil),       // 3: attendance.v1.CreatePeriodRequest
	(*CreatePeriodResponse)(nil),      // 4: attendance.v1.CreatePeriodResponse
	(*GetPeriodRequest)(nil),          // 5: attendance.v1.GetPeriodRequest
	(*GetPeriodResponse)(nil),         // 6: attendance.v1.GetPeriodResponse
	(*FinalizePeriodRequest)(nil),     // 7: attendance.v1.FinalizePeriodRequest
	(*FinalizePeriodResponse)(nil),    // 8: attendance.v1.FinalizePeriodResponse
	(*ListPeriodRecordsRequest)(nil),  // 9: attendance.v1.ListPeriodRecordsRequest
	(*ListPeriodRecordsResponse)(nil), // 10: attendance.v1.ListPeriodRecordsResponse
	(*timestamppb.Timestamp)(nil),     // 11: google.protobuf.Timestamp
	(*wrapperspb.DoubleValue)(nil),    // 12: google.protobuf.DoubleValue
}
var file_attendance_v1_attendance_proto_depIdxs = []int32{
	0,  // 0: attendance.v1.Period.status:type_name -> attendance.v1.PeriodStatus
	11, // 1: attendance.v1.Period.created_at:type_name -> google.protobuf.Timestamp
	11, // 2: attendance.v1.Period.updated_at:type_name -> google.protobuf.Timestamp
	11, // 3: attendance.v1.AttendanceRecord.clock_in:type_name -> google.protobuf.Timestamp
	11, // 4: attendance.v1.AttendanceRecord.clock_out:type_name -> google.protobuf.Timestamp
	12, // 5: attendance.v1.AttendanceRecord.total_hours:type_name -> google.protobuf.DoubleValue
	1,  // 6: attendance.v1.CreatePeriodResponse.period:type_name -> attendance.v1.Period
	1,  // 7: attendance.v1.GetPeriodResponse.period:type_name -> attendance.v1.Period
	1,  // 8: attendance.v1.FinalizePeriodResponse.period:type_name -> attendance.v1.Period
	2,  // 9: attendance.v1.ListPeriodRecordsResponse.records:type_name -> attendance.v1.AttendanceRecord
	3,  // 10: attendance.v1.AttendanceService.CreatePeriod:input_type -> attendance.v1.CreatePeriodRequest
	5,  // 11: attendance.v1.AttendanceService.GetPeriod:input_type -> attendance.v1.GetPeriodRequest
	7,  // 12: attendance.v1.AttendanceService.FinalizePeriod:input_type -> attendance.v1.FinalizePeriodRequest
	9,  // 13: attendance.v1.AttendanceService.ListPeriodRecords:input_type -> attendance.v1.ListPeriodRecordsRequest
	4,  // 14: attendance.v1.AttendanceService.CreatePeriod:output_type -> attendance.v1.CreatePeriodResponse
	6,  // 15: attendance.v1.AttendanceService.GetPeriod:output_type -> attendance.v1.GetPeriodResponse
	8,  // 16: attendance.v1.AttendanceService.FinalizePeriod:output_type -> attendance.v1.FinalizePeriodResponse
	10, // 17: attendance.v1.AttendanceService.ListPeriodRecords:output_type -> attendance.v1.ListPeriodRecordsResponse
	14, // [14:18] is the sub-list for method output_type
	10, // [10:14] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_attendance_v1_attendance_proto_init() }
func file_attendance_v1_attendance_proto_init() {
	if File_attendance_v1_attendance_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_attendance_v1_attendance_proto_rawDesc), len(file_attendance_v1_attendance_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_attendance_v1_attendance_proto_goTypes,
		DependencyIndexes: file_attendance_v1_attendance_proto_depIdxs,
		EnumInfos:         file_attendance_v1_attendance_proto_enumTypes,
		MessageInfos:      file_attendance_v1_attendance_proto_msgTypes,
	}.Build()
	File_attendance_v1_attendance_proto = out.File
	file_attendance_v1_attendance_proto_goTypes = nil
	file_attendance_v1_attendance_proto_depIdxs = nil
}
