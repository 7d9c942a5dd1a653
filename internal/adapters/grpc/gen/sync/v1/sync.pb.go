// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: sync/v1/sync.proto

package syncv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	durationpb "google.golang.org/protobuf/types/known/durationpb"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
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

type JobType int32

const (
	JobType_JOB_TYPE_UNSPECIFIED    JobType = 0
	JobType_JOB_TYPE_MANUAL_TRIGGER JobType = 1
	JobType_JOB_TYPE_SCHEDULED      JobType = 2
)

// Enum value maps for JobType.
var (
	JobType_name = map[int32]string{
		0: "JOB_TYPE_UNSPECIFIED",
		1: "JOB_TYPE_MANUAL_TRIGGER",
		2: "JOB_TYPE_SCHEDULED",
	}
	JobType_value = map[string]int32{
		"JOB_TYPE_UNSPECIFIED":    0,
		"JOB_TYPE_MANUAL_TRIGGER": 1,
		"JOB_TYPE_SCHEDULED":      2,
	}
)

func (x JobType) Enum() *JobType {
	p := new(JobType)
	*p = x
	return p
}

func (x JobType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (JobType) Descriptor() protoreflect.EnumDescriptor {
	return file_sync_v1_sync_proto_enumTypes[0].Descriptor()
}

func (JobType) Type() protoreflect.EnumType {
	return &file_sync_v1_sync_proto_enumTypes[0]
}

func (x JobType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use JobType.Descriptor instead.
func (JobType) EnumDescriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{0}
}

type JobStatus int32

const (
	JobStatus_JOB_STATUS_UNSPECIFIED JobStatus = 0
	JobStatus_JOB_STATUS_PENDING     JobStatus = 1
	JobStatus_JOB_STATUS_RUNNING     JobStatus = 2
	JobStatus_JOB_STATUS_COMPLETED   JobStatus = 3
	JobStatus_JOB_STATUS_FAILED      JobStatus = 4
	JobStatus_JOB_STATUS_CANCELLED   JobStatus = 5
)

// Enum value maps for JobStatus.
var (
	JobStatus_name = map[int32]string{
		0: "JOB_STATUS_UNSPECIFIED",
		1: "JOB_STATUS_PENDING",
		2: "JOB_STATUS_RUNNING",
		3: "JOB_STATUS_COMPLETED",
		4: "JOB_STATUS_FAILED",
		5: "JOB_STATUS_CANCELLED",
	}
	JobStatus_value = map[string]int32{
		"JOB_STATUS_UNSPECIFIED": 0,
		"JOB_STATUS_PENDING":     1,
		"JOB_STATUS_RUNNING":     2,
		"JOB_STATUS_COMPLETED":   3,
		"JOB_STATUS_FAILED":      4,
		"JOB_STATUS_CANCELLED":   5,
	}
)

func (x JobStatus) Enum() *JobStatus {
	p := new(JobStatus)
	*p = x
	return p
}

func (x JobStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (JobStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_sync_v1_sync_proto_enumTypes[1].Descriptor()
}

func (JobStatus) Type() protoreflect.EnumType {
	return &file_sync_v1_sync_proto_enumTypes[1]
}

func (x JobStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use JobStatus.Descriptor instead.
func (JobStatus) EnumDescriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{1}
}

type DeviceOutcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceId      string                 `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Fetched       int32                  `protobuf:"varint,2,opt,name=fetched,proto3" json:"fetched,omitempty"`
	Created       int32                  `protobuf:"varint,3,opt,name=created,proto3" json:"created,omitempty"`
	Skipped       int32                  `protobuf:"varint,4,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Duration      *durationpb.Duration   `protobuf:"bytes,5,opt,name=duration,proto3" json:"duration,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceOutcome) Reset() {
	*x = DeviceOutcome{}
	mi := &file_sync_v1_sync_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceOutcome) ProtoMessage() {}

func (x *DeviceOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceOutcome.ProtoReflect.Descriptor instead.
func (*DeviceOutcome) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{0}
}

func (x *DeviceOutcome) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *DeviceOutcome) GetFetched() int32 {
	if x != nil {
		return x.Fetched
	}
	return 0
}

func (x *DeviceOutcome) GetCreated() int32 {
	if x != nil {
		return x.Created
	}
	return 0
}

func (x *DeviceOutcome) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *DeviceOutcome) GetDuration() *durationpb.Duration {
	if x != nil {
		return x.Duration
	}
	return nil
}

type DeviceError struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceId      string                 `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeviceError) Reset() {
	*x = DeviceError{}
	mi := &file_sync_v1_sync_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeviceError) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeviceError) ProtoMessage() {}

func (x *DeviceError) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeviceError.ProtoReflect.Descriptor instead.
func (*DeviceError) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{1}
}

func (x *DeviceError) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

func (x *DeviceError) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type JobResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Devices        []*DeviceOutcome       `protobuf:"bytes,1,rep,name=devices,proto3" json:"devices,omitempty"`
	DeviceErrors   []*DeviceError         `protobuf:"bytes,2,rep,name=device_errors,json=deviceErrors,proto3" json:"device_errors,omitempty"`
	TotalProcessed int32                  `protobuf:"varint,3,opt,name=total_processed,json=totalProcessed,proto3" json:"total_processed,omitempty"`
	Created        int32                  `protobuf:"varint,4,opt,name=created,proto3" json:"created,omitempty"`
	Skipped        int32                  `protobuf:"varint,5,opt,name=skipped,proto3" json:"skipped,omitempty"`
	RecordErrors   int32                  `protobuf:"varint,6,opt,name=record_errors,json=recordErrors,proto3" json:"record_errors,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *JobResult) Reset() {
	*x = JobResult{}
	mi := &file_sync_v1_sync_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *JobResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*JobResult) ProtoMessage() {}

func (x *JobResult) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use JobResult.ProtoReflect.Descriptor instead.
func (*JobResult) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{2}
}

func (x *JobResult) GetDevices() []*DeviceOutcome {
	if x != nil {
		return x.Devices
	}
	return nil
}

func (x *JobResult) GetDeviceErrors() []*DeviceError {
	if x != nil {
		return x.DeviceErrors
	}
	return nil
}

func (x *JobResult) GetTotalProcessed() int32 {
	if x != nil {
		return x.TotalProcessed
	}
	return 0
}

func (x *JobResult) GetCreated() int32 {
	if x != nil {
		return x.Created
	}
	return 0
}

func (x *JobResult) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *JobResult) GetRecordErrors() int32 {
	if x != nil {
		return x.RecordErrors
	}
	return 0
}

type SyncJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Type          JobType                `protobuf:"varint,2,opt,name=type,proto3,enum=sync.v1.JobType" json:"type,omitempty"`
	Status        JobStatus              `protobuf:"varint,3,opt,name=status,proto3,enum=sync.v1.JobStatus" json:"status,omitempty"`
	DeviceIds     []string               `protobuf:"bytes,4,rep,name=device_ids,json=deviceIds,proto3" json:"device_ids,omitempty"`
	From          *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=to,proto3" json:"to,omitempty"`
	RequestedBy   string                 `protobuf:"bytes,7,opt,name=requested_by,json=requestedBy,proto3" json:"requested_by,omitempty"`
	ScheduledAt   *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=scheduled_at,json=scheduledAt,proto3" json:"scheduled_at,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	Result        *JobResult             `protobuf:"bytes,11,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncJob) Reset() {
	*x = SyncJob{}
	mi := &file_sync_v1_sync_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncJob) ProtoMessage() {}

func (x *SyncJob) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncJob.ProtoReflect.Descriptor instead.
func (*SyncJob) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{3}
}

func (x *SyncJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SyncJob) GetType() JobType {
	if x != nil {
		return x.Type
	}
	return JobType_JOB_TYPE_UNSPECIFIED
}

func (x *SyncJob) GetStatus() JobStatus {
	if x != nil {
		return x.Status
	}
	return JobStatus_JOB_STATUS_UNSPECIFIED
}

func (x *SyncJob) GetDeviceIds() []string {
	if x != nil {
		return x.DeviceIds
	}
	return nil
}

func (x *SyncJob) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *SyncJob) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

func (x *SyncJob) GetRequestedBy() string {
	if x != nil {
		return x.RequestedBy
	}
	return ""
}

func (x *SyncJob) GetScheduledAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ScheduledAt
	}
	return nil
}

func (x *SyncJob) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *SyncJob) GetFinishedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.FinishedAt
	}
	return nil
}

func (x *SyncJob) GetResult() *JobResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type CreateSyncJobRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Type  JobType                `protobuf:"varint,1,opt,name=type,proto3,enum=sync.v1.JobType" json:"type,omitempty"`
	// 空の場合は構成済みの全端末が対象になります。
	DeviceIds     []string               `protobuf:"bytes,2,rep,name=device_ids,json=deviceIds,proto3" json:"device_ids,omitempty"`
	From          *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=from,proto3" json:"from,omitempty"`
	To            *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=to,proto3" json:"to,omitempty"`
	ScheduledAt   *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=scheduled_at,json=scheduledAt,proto3" json:"scheduled_at,omitempty"`
	RequestedBy   string                 `protobuf:"bytes,6,opt,name=requested_by,json=requestedBy,proto3" json:"requested_by,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSyncJobRequest) Reset() {
	*x = CreateSyncJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSyncJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSyncJobRequest) ProtoMessage() {}

func (x *CreateSyncJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSyncJobRequest.ProtoReflect.Descriptor instead.
func (*CreateSyncJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{4}
}

func (x *CreateSyncJobRequest) GetType() JobType {
	if x != nil {
		return x.Type
	}
	return JobType_JOB_TYPE_UNSPECIFIED
}

func (x *CreateSyncJobRequest) GetDeviceIds() []string {
	if x != nil {
		return x.DeviceIds
	}
	return nil
}

func (x *CreateSyncJobRequest) GetFrom() *timestamppb.Timestamp {
	if x != nil {
		return x.From
	}
	return nil
}

func (x *CreateSyncJobRequest) GetTo() *timestamppb.Timestamp {
	if x != nil {
		return x.To
	}
	return nil
}

func (x *CreateSyncJobRequest) GetScheduledAt() *timestamppb.Timestamp {
	if x != nil {
		return x.ScheduledAt
	}
	return nil
}

func (x *CreateSyncJobRequest) GetRequestedBy() string {
	if x != nil {
		return x.RequestedBy
	}
	return ""
}

type CreateSyncJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *SyncJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSyncJobResponse) Reset() {
	*x = CreateSyncJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSyncJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSyncJobResponse) ProtoMessage() {}

func (x *CreateSyncJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSyncJobResponse.ProtoReflect.Descriptor instead.
func (*CreateSyncJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{5}
}

func (x *CreateSyncJobResponse) GetJob() *SyncJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetSyncJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSyncJobRequest) Reset() {
	*x = GetSyncJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSyncJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSyncJobRequest) ProtoMessage() {}

func (x *GetSyncJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSyncJobRequest.ProtoReflect.Descriptor instead.
func (*GetSyncJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{6}
}

func (x *GetSyncJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetSyncJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *SyncJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSyncJobResponse) Reset() {
	*x = GetSyncJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSyncJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSyncJobResponse) ProtoMessage() {}

func (x *GetSyncJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSyncJobResponse.ProtoReflect.Descriptor instead.
func (*GetSyncJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{7}
}

func (x *GetSyncJobResponse) GetJob() *SyncJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelSyncJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelSyncJobRequest) Reset() {
	*x = CancelSyncJobRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelSyncJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelSyncJobRequest) ProtoMessage() {}

func (x *CancelSyncJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelSyncJobRequest.ProtoReflect.Descriptor instead.
func (*CancelSyncJobRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{8}
}

func (x *CancelSyncJobRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type CancelSyncJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cancelled     bool                   `protobuf:"varint,1,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelSyncJobResponse) Reset() {
	*x = CancelSyncJobResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelSyncJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelSyncJobResponse) ProtoMessage() {}

func (x *CancelSyncJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelSyncJobResponse.ProtoReflect.Descriptor instead.
func (*CancelSyncJobResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{9}
}

func (x *CancelSyncJobResponse) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

type GetJobMetricsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobMetricsRequest) Reset() {
	*x = GetJobMetricsRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobMetricsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobMetricsRequest) ProtoMessage() {}

func (x *GetJobMetricsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobMetricsRequest.ProtoReflect.Descriptor instead.
func (*GetJobMetricsRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{10}
}

type GetJobMetricsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TotalJobs       int32                  `protobuf:"varint,1,opt,name=total_jobs,json=totalJobs,proto3" json:"total_jobs,omitempty"`
	CountsByStatus  map[string]int32       `protobuf:"bytes,2,rep,name=counts_by_status,json=countsByStatus,proto3" json:"counts_by_status,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	SuccessRate     float64                `protobuf:"fixed64,3,opt,name=success_rate,json=successRate,proto3" json:"success_rate,omitempty"`
	AverageDuration *durationpb.Duration   `protobuf:"bytes,4,opt,name=average_duration,json=averageDuration,proto3" json:"average_duration,omitempty"`
	Upcoming        []*SyncJob             `protobuf:"bytes,5,rep,name=upcoming,proto3" json:"upcoming,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetJobMetricsResponse) Reset() {
	*x = GetJobMetricsResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobMetricsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobMetricsResponse) ProtoMessage() {}

func (x *GetJobMetricsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobMetricsResponse.ProtoReflect.Descriptor instead.
func (*GetJobMetricsResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{11}
}

func (x *GetJobMetricsResponse) GetTotalJobs() int32 {
	if x != nil {
		return x.TotalJobs
	}
	return 0
}

func (x *GetJobMetricsResponse) GetCountsByStatus() map[string]int32 {
	if x != nil {
		return x.CountsByStatus
	}
	return nil
}

func (x *GetJobMetricsResponse) GetSuccessRate() float64 {
	if x != nil {
		return x.SuccessRate
	}
	return 0
}

func (x *GetJobMetricsResponse) GetAverageDuration() *durationpb.Duration {
	if x != nil {
		return x.AverageDuration
	}
	return nil
}

func (x *GetJobMetricsResponse) GetUpcoming() []*SyncJob {
	if x != nil {
		return x.Upcoming
	}
	return nil
}

type GetHealthStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHealthStatusRequest) Reset() {
	*x = GetHealthStatusRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthStatusRequest) ProtoMessage() {}

func (x *GetHealthStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthStatusRequest.ProtoReflect.Descriptor instead.
func (*GetHealthStatusRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{12}
}

type GetHealthStatusResponse struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Healthy             bool                   `protobuf:"varint,1,opt,name=healthy,proto3" json:"healthy,omitempty"`
	ConsecutiveFailures int32                  `protobuf:"varint,2,opt,name=consecutive_failures,json=consecutiveFailures,proto3" json:"consecutive_failures,omitempty"`
	Issues              []string               `protobuf:"bytes,3,rep,name=issues,proto3" json:"issues,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GetHealthStatusResponse) Reset() {
	*x = GetHealthStatusResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthStatusResponse) ProtoMessage() {}

func (x *GetHealthStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthStatusResponse.ProtoReflect.Descriptor instead.
func (*GetHealthStatusResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{13}
}

func (x *GetHealthStatusResponse) GetHealthy() bool {
	if x != nil {
		return x.Healthy
	}
	return false
}

func (x *GetHealthStatusResponse) GetConsecutiveFailures() int32 {
	if x != nil {
		return x.ConsecutiveFailures
	}
	return 0
}

func (x *GetHealthStatusResponse) GetIssues() []string {
	if x != nil {
		return x.Issues
	}
	return nil
}

type TestDeviceConnectionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DeviceId      string                 `protobuf:"bytes,1,opt,name=device_id,json=deviceId,proto3" json:"device_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TestDeviceConnectionRequest) Reset() {
	*x = TestDeviceConnectionRequest{}
	mi := &file_sync_v1_sync_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TestDeviceConnectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TestDeviceConnectionRequest) ProtoMessage() {}

func (x *TestDeviceConnectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TestDeviceConnectionRequest.ProtoReflect.Descriptor instead.
func (*TestDeviceConnectionRequest) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{14}
}

func (x *TestDeviceConnectionRequest) GetDeviceId() string {
	if x != nil {
		return x.DeviceId
	}
	return ""
}

type TestDeviceConnectionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	ResponseTime  *durationpb.Duration   `protobuf:"bytes,2,opt,name=response_time,json=responseTime,proto3" json:"response_time,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TestDeviceConnectionResponse) Reset() {
	*x = TestDeviceConnectionResponse{}
	mi := &file_sync_v1_sync_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TestDeviceConnectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TestDeviceConnectionResponse) ProtoMessage() {}

func (x *TestDeviceConnectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_sync_v1_sync_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TestDeviceConnectionResponse.ProtoReflect.Descriptor instead.
func (*TestDeviceConnectionResponse) Descriptor() ([]byte, []int) {
	return file_sync_v1_sync_proto_rawDescGZIP(), []int{15}
}

func (x *TestDeviceConnectionResponse) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *TestDeviceConnectionResponse) GetResponseTime() *durationpb.Duration {
	if x != nil {
		return x.ResponseTime
	}
	return nil
}

var File_sync_v1_sync_proto protoreflect.FileDescriptor

const file_sync_v1_sync_proto_rawDesc = "" +
	"\n" +
	"\x12sync/v1/sync.proto\x12\async.v1\x1a\x1egoogle/protobuf/duration.proto\x1a\x1fgoogle/protobuf/timestamp.proto\"\xb1\x01\n" +
	"\rDeviceOutcome\x12\x1b\n" +
	"\tdevice_id\x18\x01 \x01(\tR\bdeviceId\x12\x18\n" +
	"\afetched\x18\x02 \x01(\x05R\afetched\x12\x18\n" +
	"\acreated\x18\x03 \x01(\x05R\acreated\x12\x18\n" +
	"\askipped\x18\x04 \x01(\x05R\askipped\x125\n" +
	"\bduration\x18\x05 \x01(\v2\x19.google.protobuf.DurationR\bduration\"D\n" +
	"\vDeviceError\x12\x1b\n" +
	"\tdevice_id\x18\x01 \x01(\tR\bdeviceId\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\"\xfa\x01\n" +
	"\tJobResult\x120\n" +
	"\adevices\x18\x01 \x03(\v2\x16.sync.v1.DeviceOutcomeR\adevices\x129\n" +
	"\rdevice_errors\x18\x02 \x03(\v2\x14.sync.v1.DeviceErrorR\fdeviceErrors\x12'\n" +
	"\x0ftotal_processed\x18\x03 \x01(\x05R\x0etotalProcessed\x12\x18\n" +
	"\acreated\x18\x04 \x01(\x05R\acreated\x12\x18\n" +
	"\askipped\x18\x05 \x01(\x05R\askipped\x12#\n" +
	"\rrecord_errors\x18\x06 \x01(\x05R\frecordErrors\"\xec\x03\n" +
	"\aSyncJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12$\n" +
	"\x04type\x18\x02 \x01(\x0e2\x10.sync.v1.JobTypeR\x04type\x12*\n" +
	"\x06status\x18\x03 \x01(\x0e2\x12.sync.v1.JobStatusR\x06status\x12\x1d\n" +
	"\n" +
	"device_ids\x18\x04 \x03(\tR\tdeviceIds\x12.\n" +
	"\x04from\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\x12!\n" +
	"\frequested_by\x18\a \x01(\tR\vrequestedBy\x12=\n" +
	"\fscheduled_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\vscheduledAt\x129\n" +
	"\n" +
	"started_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12;\n" +
	"\vfinished_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\n" +
	"finishedAt\x12*\n" +
	"\x06result\x18\v \x01(\v2\x12.sync.v1.JobResultR\x06result\"\x99\x02\n" +
	"\x14CreateSyncJobRequest\x12$\n" +
	"\x04type\x18\x01 \x01(\x0e2\x10.sync.v1.JobTypeR\x04type\x12\x1d\n" +
	"\n" +
	"device_ids\x18\x02 \x03(\tR\tdeviceIds\x12.\n" +
	"\x04from\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x04from\x12*\n" +
	"\x02to\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\x02to\x12=\n" +
	"\fscheduled_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\vscheduledAt\x12!\n" +
	"\frequested_by\x18\x06 \x01(\tR\vrequestedBy\";\n" +
	"\x15CreateSyncJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.sync.v1.SyncJobR\x03job\"#\n" +
	"\x11GetSyncJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"8\n" +
	"\x12GetSyncJobResponse\x12\"\n" +
	"\x03job\x18\x01 \x01(\v2\x10.sync.v1.SyncJobR\x03job\"&\n" +
	"\x14CancelSyncJobRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"5\n" +
	"\x15CancelSyncJobResponse\x12\x1c\n" +
	"\tcancelled\x18\x01 \x01(\bR\tcancelled\"\x16\n" +
	"\x14GetJobMetricsRequest\"\xee\x02\n" +
	"\x15GetJobMetricsResponse\x12\x1d\n" +
	"\n" +
	"total_jobs\x18\x01 \x01(\x05R\ttotalJobs\x12\\\n" +
	"\x10counts_by_status\x18\x02 \x03(\v22.sync.v1.GetJobMetricsResponse.CountsByStatusEntryR\x0ecountsByStatus\x12!\n" +
	"\fsuccess_rate\x18\x03 \x01(\x01R\vsuccessRate\x12D\n" +
	"\x10average_duration\x18\x04 \x01(\v2\x19.google.protobuf.DurationR\x0faverageDuration\x12,\n" +
	"\bupcoming\x18\x05 \x03(\v2\x10.sync.v1.SyncJobR\bupcoming\x1aA\n" +
	"\x13CountsByStatusEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\x18\n" +
	"\x16GetHealthStatusRequest\"~\n" +
	"\x17GetHealthStatusResponse\x12\x18\n" +
	"\ahealthy\x18\x01 \x01(\bR\ahealthy\x121\n" +
	"\x14consecutive_failures\x18\x02 \x01(\x05R\x13consecutiveFailures\x12\x16\n" +
	"\x06issues\x18\x03 \x03(\tR\x06issues\":\n" +
	"\x1bTestDeviceConnectionRequest\x12\x1b\n" +
	"\tdevice_id\x18\x01 \x01(\tR\bdeviceId\"n\n" +
	"\x1cTestDeviceConnectionResponse\x12\x0e\n" +
	"\x02ok\x18\x01 \x01(\bR\x02ok\x12>\n" +
	"\rresponse_time\x18\x02 \x01(\v2\x19.google.protobuf.DurationR\fresponseTime*X\n" +
	"\aJobType\x12\x18\n" +
	"\x14JOB_TYPE_UNSPECIFIED\x10\x00\x12\x1b\n" +
	"\x17JOB_TYPE_MANUAL_TRIGGER\x10\x01\x12\x16\n" +
	"\x12JOB_TYPE_SCHEDULED\x10\x02*\xa2\x01\n" +
	"\tJobStatus\x12\x1a\n" +
	"\x16JOB_STATUS_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12JOB_STATUS_PENDING\x10\x01\x12\x16\n" +
	"\x12JOB_STATUS_RUNNING\x10\x02\x12\x18\n" +
	"\x14JOB_STATUS_COMPLETED\x10\x03\x12\x15\n" +
	"\x11JOB_STATUS_FAILED\x10\x04\x12\x18\n" +
	"\x14JOB_STATUS_CANCELLED\x10\x052\xff\x03\n" +
	"\vSyncService\x12N\n" +
	"\rCreateSyncJob\x12\x1d.sync.v1.CreateSyncJobRequest\x1a\x1e.sync.v1.CreateSyncJobResponse\x12E\n" +
	"\n" +
	"GetSyncJob\x12\x1a.sync.v1.GetSyncJobRequest\x1a\x1b.sync.v1.GetSyncJobResponse\x12N\n" +
	"\rCancelSyncJob\x12\x1d.sync.v1.CancelSyncJobRequest\x1a\x1e.sync.v1.CancelSyncJobResponse\x12N\n" +
	"\rGetJobMetrics\x12\x1d.sync.v1.GetJobMetricsRequest\x1a\x1e.sync.v1.GetJobMetricsResponse\x12T\n" +
	"\x0fGetHealthStatus\x12\x1f.sync.v1.GetHealthStatusRequest\x1a .sync.v1.GetHealthStatusResponse\x12c\n" +
	"\x14TestDeviceConnection\x12$.sync.v1.TestDeviceConnectionRequest\x1a%.sync.v1.TestDeviceConnectionResponseBLZJgithub.com/ogurasousui/timeclock/internal/adapters/grpc/gen/sync/v1;syncv1b\x06proto3"

var (
	file_sync_v1_sync_proto_rawDescOnce sync.Once
	file_sync_v1_sync_proto_rawDescData []byte
)

func file_sync_v1_sync_proto_rawDescGZIP() []byte {
	file_sync_v1_sync_proto_rawDescOnce.Do(func() {
		file_sync_v1_sync_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_sync_v1_sync_proto_rawDesc), len(file_sync_v1_sync_proto_rawDesc)))
	})
	return file_sync_v1_sync_proto_rawDescData
}

var file_sync_v1_sync_proto_enumTypes = make([]protoimpl.EnumInfo, 2)
var file_sync_v1_sync_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_sync_v1_sync_proto_goTypes = []any{
	(JobType)(0),                         // 0: sync.v1.JobType
	(JobStatus)(0),                       // 1: sync.v1.JobStatus
	(*DeviceOutcome)(nil),                // 2: sync.v1.DeviceOutcome
	(*DeviceError)(nil),                  // 3: sync.v1.DeviceError
	(*JobResult)(nil),                    // 4: sync.v1.JobResult
	(*SyncJob)(nil),                      // 5: sync.v1.SyncJob
	(*CreateSyncJobRequest)(nil),         // 6: sync.v1.CreateSyncJobRequest
	(*CreateSyncJobResponse)(nil),        // 7: sync.v1.CreateSyncJobResponse
	(*GetSyncJobRequest)(nil),            // 8: sync.v1.GetSyncJobRequest
	(*GetSyncJobResponse)(nil),           // 9: sync.v1.GetSyncJobResponse
	(*CancelSyncJobRequest)(nil),         // 10: sync.v1.CancelSyncJobRequest
	(*CancelSyncJobResponse)(nil),        // 11: sync.v1.CancelSyncJobResponse
	(*GetJobMetricsRequest)(nil),         // 12: sync.v1.GetJobMetricsRequest
	(*GetJobMetricsResponse)(nil),        // 13: sync.v1.GetJobMetricsResponse
	(*GetHealthStatusRequest)(nil),       // 14: sync.v1.GetHealthStatusRequest
	(*GetHealthStatusResponse)(nil),      // 15: sync.v1.GetHealthStatusResponse
	(*TestDeviceConnectionRequest)(nil),  // 16: sync.v1.TestDeviceConnectionRequest
	(*TestDeviceConnectionResponse)(nil), // 17: sync.v1.TestDeviceConnectionResponse
	nil,                                  // 18: sync.v1.GetJobMetricsResponse.CountsByStatusEntry
	(*durationpb.Duration)(nil),          // 19: google.protobuf.Duration
	(*timestamppb.Timestamp)(nil),        // 20: google.protobuf.Timestamp
}
var file_sync_v1_sync_proto_depIdxs = []int32{
	19, // 0: sync.v1.DeviceOutcome.duration:type_name -> google.protobuf.Duration
	2,  // 1: sync.v1.JobResult.devices:type_name -> sync.v1.DeviceOutcome
	3,  // 2: sync.v1.JobResult.device_errors:type_name -> sync.v1.DeviceError
	0,  // 3: sync.v1.SyncJob.type:type_name -> sync.v1.JobType
	1,  // 4: sync.v1.SyncJob.status:type_name -> sync.v1.JobStatus
	20, // 5: sync.v1.SyncJob.from:type_name -> google.protobuf.Timestamp
	20, // 6: sync.v1.SyncJob.to:type_name -> google.protobuf.Timestamp
	20, // 7: sync.v1.SyncJob.scheduled_at:type_name -> google.protobuf.Timestamp
	20, // 8: sync.v1.SyncJob.started_at:type_name -> google.protobuf.Timestamp
	20, // 9: sync.v1.SyncJob.finished_at:type_name -> google.protobuf.Timestamp
	4,  // 10: sync.v1.SyncJob.result:type_name -> sync.v1.JobResult
	0,  // 11: sync.v1.CreateSyncJobRequest.type:type_name -> sync.v1.JobType
	20, // 12: sync.v1.CreateSyncJobRequest.from:type_name -> google.protobuf.Timestamp
	20, // 13: sync.v1.CreateSyncJobRequest.to:type_name -> google.protobuf.Timestamp
	20, // 14: sync.v1.CreateSyncJobRequest.scheduled_at:type_name -> google.protobuf.Timestamp
	5,  // 15: sync.v1.CreateSyncJobResponse.job:type_name -> sync.v1.SyncJob
	5,  // 16: sync.v1.GetSyncJobResponse.job:type_name -> sync.v1.SyncJob
	18, // 17: sync.v1.GetJobMetricsResponse.counts_by_status:type_name -> sync.v1.GetJobMetricsResponse.CountsByStatusEntry
	19, // 18: sync.v1.GetJobMetricsResponse.average_duration:type_name -> google.protobuf.Duration
	5,  // 19: sync.v1.GetJobMetricsResponse.upcoming:type_name -> sync.v1.SyncJob
	19, // 20: sync.v1.TestDeviceConnectionResponse.response_time:type_name -> google.protobuf.Duration
	6,  // 21: sync.v1.SyncService.CreateSyncJob:input_type -> sync.v1.CreateSyncJobRequest
	8,  // 22: sync.v1.SyncService.GetSyncJob:input_type -> sync.v1.GetSyncJobRequest
	10, // 23: sync.v1.SyncService.CancelSyncJob:input_type -> sync.v1.CancelSyncJobRequest
	12, // 24: sync.v1.SyncService.GetJobMetrics:input_type -> sync.v1.GetJobMetricsRequest
	14, // 25: sync.v1.SyncService.GetHealthStatus:input_type -> sync.v1.GetHealthStatusRequest
	16, // 26: sync.v1.SyncService.TestDeviceConnection:input_type -> sync.v1.TestDeviceConnectionRequest
	7,  // 27: sync.v1.SyncService.CreateSyncJob:output_type -> sync.v1.CreateSyncJobResponse
	9,  // 28: sync.v1.SyncService.GetSyncJob:output_type -> sync.v1.GetSyncJobResponse
	11, // 29: sync.v1.SyncService.CancelSyncJob:output_type -> sync.v1.CancelSyncJobResponse
	13, // 30: sync.v1.SyncService.GetJobMetrics:output_type -> sync.v1.GetJobMetricsResponse
	15, // 31: sync.v1.SyncService.GetHealthStatus:output_type -> sync.v1.GetHealthStatusResponse
	17, // 32: sync.v1.SyncService.TestDeviceConnection:output_type -> sync.v1.TestDeviceConnectionResponse
	27, // [27:33] is the sub-list for method output_type
	21, // [21:27] is the sub-list for method input_type
	21, // [21:21] is the sub-list for extension type_name
	21, // [21:21] is the sub-list for extension extendee
	0,  // [0:21] is the sub-list for field type_name
}

func init() { file_sync_v1_sync_proto_init() }
func file_sync_v1_sync_proto_init() {
	if File_sync_v1_sync_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_sync_v1_sync_proto_rawDesc), len(file_sync_v1_sync_proto_rawDesc)),
			NumEnums:      2,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_sync_v1_sync_proto_goTypes,
		DependencyIndexes: file_sync_v1_sync_proto_depIdxs,
		EnumInfos:         file_sync_v1_sync_proto_enumTypes,
		MessageInfos:      file_sync_v1_sync_proto_msgTypes,
	}.Build()
	File_sync_v1_sync_proto = out.File
	file_sync_v1_sync_proto_goTypes = nil
	file_sync_v1_sync_proto_depIdxs = nil
}
