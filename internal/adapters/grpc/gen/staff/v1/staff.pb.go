// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: staff/v1/staff.proto

package staffv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
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

type StaffStatus int32

const (
	StaffStatus_STAFF_STATUS_UNSPECIFIED StaffStatus = 0
	StaffStatus_STAFF_STATUS_ACTIVE      StaffStatus = 1
	StaffStatus_STAFF_STATUS_INACTIVE    StaffStatus = 2
)

// Enum value maps for StaffStatus.
var (
	StaffStatus_name = map[int32]string{
		0: "STAFF_STATUS_UNSPECIFIED",
		1: "STAFF_STATUS_ACTIVE",
		2: "STAFF_STATUS_INACTIVE",
	}
	StaffStatus_value = map[string]int32{
		"STAFF_STATUS_UNSPECIFIED": 0,
		"STAFF_STATUS_ACTIVE":      1,
		"STAFF_STATUS_INACTIVE":    2,
	}
)

func (x StaffStatus) Enum() *StaffStatus {
	p := new(StaffStatus)
	*p = x
	return p
}

func (x StaffStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (StaffStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_staff_v1_staff_proto_enumTypes[0].Descriptor()
}

func (StaffStatus) Type() protoreflect.EnumType {
	return &file_staff_v1_staff_proto_enumTypes[0]
}

func (x StaffStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use StaffStatus.Descriptor instead.
func (StaffStatus) EnumDescriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{0}
}

type Staff struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Status        StaffStatus            `protobuf:"varint,4,opt,name=status,proto3,enum=staff.v1.StaffStatus" json:"status,omitempty"`
	StandardRate  float64                `protobuf:"fixed64,5,opt,name=standard_rate,json=standardRate,proto3" json:"standard_rate,omitempty"`
	OvertimeRate  float64                `protobuf:"fixed64,6,opt,name=overtime_rate,json=overtimeRate,proto3" json:"overtime_rate,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Staff) Reset() {
	*x = Staff{}
	mi := &file_staff_v1_staff_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Staff) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Staff) ProtoMessage() {}

func (x *Staff) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Staff.ProtoReflect.Descriptor instead.
func (*Staff) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{0}
}

func (x *Staff) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Staff) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Staff) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Staff) GetStatus() StaffStatus {
	if x != nil {
		return x.Status
	}
	return StaffStatus_STAFF_STATUS_UNSPECIFIED
}

func (x *Staff) GetStandardRate() float64 {
	if x != nil {
		return x.StandardRate
	}
	return 0
}

func (x *Staff) GetOvertimeRate() float64 {
	if x != nil {
		return x.OvertimeRate
	}
	return 0
}

func (x *Staff) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Staff) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type CreateStaffRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Code          string                 `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	StandardRate  float64                `protobuf:"fixed64,3,opt,name=standard_rate,json=standardRate,proto3" json:"standard_rate,omitempty"`
	OvertimeRate  float64                `protobuf:"fixed64,4,opt,name=overtime_rate,json=overtimeRate,proto3" json:"overtime_rate,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStaffRequest) Reset() {
	*x = CreateStaffRequest{}
	mi := &file_staff_v1_staff_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStaffRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStaffRequest) ProtoMessage() {}

func (x *CreateStaffRequest) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStaffRequest.ProtoReflect.Descriptor instead.
func (*CreateStaffRequest) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{1}
}

func (x *CreateStaffRequest) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *CreateStaffRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateStaffRequest) GetStandardRate() float64 {
	if x != nil {
		return x.StandardRate
	}
	return 0
}

func (x *CreateStaffRequest) GetOvertimeRate() float64 {
	if x != nil {
		return x.OvertimeRate
	}
	return 0
}

type CreateStaffResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Staff         *Staff                 `protobuf:"bytes,1,opt,name=staff,proto3" json:"staff,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateStaffResponse) Reset() {
	*x = CreateStaffResponse{}
	mi := &file_staff_v1_staff_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateStaffResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateStaffResponse) ProtoMessage() {}

func (x *CreateStaffResponse) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateStaffResponse.ProtoReflect.Descriptor instead.
func (*CreateStaffResponse) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{2}
}

func (x *CreateStaffResponse) GetStaff() *Staff {
	if x != nil {
		return x.Staff
	}
	return nil
}

type GetStaffRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStaffRequest) Reset() {
	*x = GetStaffRequest{}
	mi := &file_staff_v1_staff_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStaffRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStaffRequest) ProtoMessage() {}

func (x *GetStaffRequest) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStaffRequest.ProtoReflect.Descriptor instead.
func (*GetStaffRequest) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{3}
}

func (x *GetStaffRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetStaffResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Staff         *Staff                 `protobuf:"bytes,1,opt,name=staff,proto3" json:"staff,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStaffResponse) Reset() {
	*x = GetStaffResponse{}
	mi := &file_staff_v1_staff_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStaffResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStaffResponse) ProtoMessage() {}

func (x *GetStaffResponse) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStaffResponse.ProtoReflect.Descriptor instead.
func (*GetStaffResponse) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{4}
}

func (x *GetStaffResponse) GetStaff() *Staff {
	if x != nil {
		return x.Staff
	}
	return nil
}

type ListStaffRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        StaffStatus            `protobuf:"varint,1,opt,name=status,proto3,enum=staff.v1.StaffStatus" json:"status,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Offset        int32                  `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStaffRequest) Reset() {
	*x = ListStaffRequest{}
	mi := &file_staff_v1_staff_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStaffRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStaffRequest) ProtoMessage() {}

func (x *ListStaffRequest) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStaffRequest.ProtoReflect.Descriptor instead.
func (*ListStaffRequest) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{5}
}

func (x *ListStaffRequest) GetStatus() StaffStatus {
	if x != nil {
		return x.Status
	}
	return StaffStatus_STAFF_STATUS_UNSPECIFIED
}

func (x *ListStaffRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListStaffRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListStaffResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Staff         []*Staff               `protobuf:"bytes,1,rep,name=staff,proto3" json:"staff,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListStaffResponse) Reset() {
	*x = ListStaffResponse{}
	mi := &file_staff_v1_staff_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListStaffResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListStaffResponse) ProtoMessage() {}

func (x *ListStaffResponse) ProtoReflect() protoreflect.Message {
	mi := &file_staff_v1_staff_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListStaffResponse.ProtoReflect.Descriptor instead.
func (*ListStaffResponse) Descriptor() ([]byte, []int) {
	return file_staff_v1_staff_proto_rawDescGZIP(), []int{6}
}

func (x *ListStaffResponse) GetStaff() []*Staff {
	if x != nil {
		return x.Staff
	}
	return nil
}

var File_staff_v1_staff_proto protoreflect.FileDescriptor

const file_staff_v1_staff_proto_rawDesc = "" +
	"\n" +
	"\x14staff/v1/staff.proto\x12\bstaff.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xae\x02\n" +
	"\x05Staff\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12-\n" +
	"\x06status\x18\x04 \x01(\x0e2\x15.staff.v1.StaffStatusR\x06status\x12#\n" +
	"\rstandard_rate\x18\x05 \x01(\x01R\fstandardRate\x12#\n" +
	"\rovertime_rate\x18\x06 \x01(\x01R\fovertimeRate\x129\n" +
	"\n" +
	"created_at\x18\a \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\b \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x86\x01\n" +
	"\x12CreateStaffRequest\x12\x12\n" +
	"\x04code\x18\x01 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rstandard_rate\x18\x03 \x01(\x01R\fstandardRate\x12#\n" +
	"\rovertime_rate\x18\x04 \x01(\x01R\fovertimeRate\"<\n" +
	"\x13CreateStaffResponse\x12%\n" +
	"\x05staff\x18\x01 \x01(\v2\x0f.staff.v1.StaffR\x05staff\"!\n" +
	"\x0fGetStaffRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"9\n" +
	"\x10GetStaffResponse\x12%\n" +
	"\x05staff\x18\x01 \x01(\v2\x0f.staff.v1.StaffR\x05staff\"v\n" +
	"\x10ListStaffRequest\x12-\n" +
	"\x06status\x18\x01 \x01(\x0e2\x15.staff.v1.StaffStatusR\x06status\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06offset\x18\x03 \x01(\x05R\x06offset\":\n" +
	"\x11ListStaffResponse\x12%\n" +
	"\x05staff\x18\x01 \x03(\v2\x0f.staff.v1.StaffR\x05staff*_\n" +
	"\vStaffStatus\x12\x1c\n" +
	"\x18STAFF_STATUS_UNSPECIFIED\x10\x00\x12\x17\n" +
	"\x13STAFF_STATUS_ACTIVE\x10\x01\x12\x19\n" +
	"\x15STAFF_STATUS_INACTIVE\x10\x022\xe3\x01\n" +
	"\fStaffService\x12J\n" +
	"\vCreateStaff\x12\x1c.staff.v1.CreateStaffRequest\x1a\x1d.staff.v1.CreateStaffResponse\x12A\n" +
	"\bGetStaff\x12\x19.staff.v1.GetStaffRequest\x1a\x1a.staff.v1.GetStaffResponse\x12D\n" +
	"\tListStaff\x12\x1a.staff.v1.ListStaffRequest\x1a\x1b.staff.v1.ListStaffResponseBNZLgithub.com/ogurasousui/timeclock/internal/adapters/grpc/gen/staff/v1;staffv1b\x06proto3"

var (
	file_staff_v1_staff_proto_rawDescOnce sync.Once
	file_staff_v1_staff_proto_rawDescData []byte
)

func file_staff_v1_staff_proto_rawDescGZIP() []byte {
	file_staff_v1_staff_proto_rawDescOnce.Do(func() {
		file_staff_v1_staff_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_staff_v1_staff_proto_rawDesc), len(file_staff_v1_staff_proto_rawDesc)))
	})
	return file_staff_v1_staff_proto_rawDescData
}

var file_staff_v1_staff_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_staff_v1_staff_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_staff_v1_staff_proto_goTypes = []any{
	(StaffStatus)(0),              // 0: staff.v1.StaffStatus
	(*Staff)(nil),                 // 1: staff.v1.Staff
	(*CreateStaffRequest)(nil),    // 2: staff.v1.CreateStaffRequest
	(*CreateStaffResponse)(nil),   // 3: staff.v1.CreateStaffResponse
	(*GetStaffRequest)(nil),       // 4: staff.v1.GetStaffRequest
	(*GetStaffResponse)(nil),      // 5: staff.v1.GetStaffResponse
	(*ListStaffRequest)(nil),      // 6: staff.v1.ListStaffRequest
	(*ListStaffResponse)(nil),     // 7: staff.v1.ListStaffResponse
	(*timestamppb.Timestamp)(nil), // 8: google.protobuf.Timestamp
}
var file_staff_v1_staff_proto_depIdxs = []int32{
	0,  // 0: staff.v1.Staff.status:type_name -> staff.v1.StaffStatus
	8,  // 1: staff.v1.Staff.created_at:type_name -> google.protobuf.Timestamp
	8,  // 2: staff.v1.Staff.updated_at:type_name -> google.protobuf.Timestamp
	1,  // 3: staff.v1.CreateStaffResponse.staff:type_name -> staff.v1.Staff
	1,  // 4: staff.v1.GetStaffResponse.staff:type_name -> staff.v1.Staff
	0,  // 5: staff.v1.ListStaffRequest.status:type_name -> staff.v1.StaffStatus
	1,  // 6: staff.v1.ListStaffResponse.staff:type_name -> staff.v1.Staff
	2,  // 7: staff.v1.StaffService.CreateStaff:input_type -> staff.v1.CreateStaffRequest
	4,  // 8: staff.v1.StaffService.GetStaff:input_type -> staff.v1.GetStaffRequest
	6,  // 9: staff.v1.StaffService.ListStaff:input_type -> staff.v1.ListStaffRequest
	3,  // 10: staff.v1.StaffService.CreateStaff:output_type -> staff.v1.CreateStaffResponse
	5,  // 11: staff.v1.StaffService.GetStaff:output_type -> staff.v1.GetStaffResponse
	7,  // 12: staff.v1.StaffService.ListStaff:output_type -> staff.v1.ListStaffResponse
	10, // [10:13] is the sub-list for method output_type
	7,  // [7:10] is the sub-list for method input_type
	7,  // [7:7] is the sub-list for extension type_name
	7,  // [7:7] is the sub-list for extension extendee
	0,  // [0:7] is the sub-list for field type_name
}

func init() { file_staff_v1_staff_proto_init() }
func file_staff_v1_staff_proto_init() {
	if File_staff_v1_staff_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_staff_v1_staff_proto_rawDesc), len(file_staff_v1_staff_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_staff_v1_staff_proto_goTypes,
		DependencyIndexes: file_staff_v1_staff_proto_depIdxs,
		EnumInfos:         file_staff_v1_staff_proto_enumTypes,
		MessageInfos:      file_staff_v1_staff_proto_msgTypes,
	}.Build()
	File_staff_v1_staff_proto = out.File
	file_staff_v1_staff_proto_goTypes = nil
	file_staff_v1_staff_proto_depIdxs = nil
}
