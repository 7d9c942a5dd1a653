// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: payroll/v1/payroll.proto

package payrollv1

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

type PayrollStatus int32

const (
	PayrollStatus_PAYROLL_STATUS_UNSPECIFIED PayrollStatus = 0
	PayrollStatus_PAYROLL_STATUS_PENDING     PayrollStatus = 1
	PayrollStatus_PAYROLL_STATUS_CALCULATING PayrollStatus = 2
	PayrollStatus_PAYROLL_STATUS_CALCULATED  PayrollStatus = 3
	PayrollStatus_PAYROLL_STATUS_APPROVED    PayrollStatus = 4
)

// Enum value maps for PayrollStatus.
var (
	PayrollStatus_name = map[int32]string{
		0: "PAYROLL_STATUS_UNSPECIFIED",
		1: "PAYROLL_STATUS_PENDING",
		2: "PAYROLL_STATUS_CALCULATING",
		3: "PAYROLL_STATUS_CALCULATED",
		4: "PAYROLL_STATUS_APPROVED",
	}
	PayrollStatus_value = map[string]int32{
		"PAYROLL_STATUS_UNSPECIFIED": 0,
		"PAYROLL_STATUS_PENDING":     1,
		"PAYROLL_STATUS_CALCULATING": 2,
		"PAYROLL_STATUS_CALCULATED":  3,
		"PAYROLL_STATUS_APPROVED":    4,
	}
)

func (x PayrollStatus) Enum() *PayrollStatus {
	p := new(PayrollStatus)
	*p = x
	return p
}

func (x PayrollStatus) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (PayrollStatus) Descriptor() protoreflect.EnumDescriptor {
	return file_payroll_v1_payroll_proto_enumTypes[0].Descriptor()
}

func (PayrollStatus) Type() protoreflect.EnumType {
	return &file_payroll_v1_payroll_proto_enumTypes[0]
}

func (x PayrollStatus) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use PayrollStatus.Descriptor instead.
func (PayrollStatus) EnumDescriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{0}
}

type PayrollPeriod struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Id                 string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AttendancePeriodId string                 `protobuf:"bytes,2,opt,name=attendance_period_id,json=attendancePeriodId,proto3" json:"attendance_period_id,omitempty"`
	StartDate          string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate            string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	Status             PayrollStatus          `protobuf:"varint,5,opt,name=status,proto3,enum=payroll.v1.PayrollStatus" json:"status,omitempty"`
	TotalHours         float64                `protobuf:"fixed64,6,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	TotalOvertimeHours float64                `protobuf:"fixed64,7,opt,name=total_overtime_hours,json=totalOvertimeHours,proto3" json:"total_overtime_hours,omitempty"`
	TotalAmount        float64                `protobuf:"fixed64,8,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	CreatedAt          *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt          *timestamppb.Timestamp `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *PayrollPeriod) Reset() {
	*x = PayrollPeriod{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PayrollPeriod) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PayrollPeriod) ProtoMessage() {}

func (x *PayrollPeriod) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PayrollPeriod.ProtoReflect.Descriptor instead.
func (*PayrollPeriod) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{0}
}

func (x *PayrollPeriod) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PayrollPeriod) GetAttendancePeriodId() string {
	if x != nil {
		return x.AttendancePeriodId
	}
	return ""
}

func (x *PayrollPeriod) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *PayrollPeriod) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *PayrollPeriod) GetStatus() PayrollStatus {
	if x != nil {
		return x.Status
	}
	return PayrollStatus_PAYROLL_STATUS_UNSPECIFIED
}

func (x *PayrollPeriod) GetTotalHours() float64 {
	if x != nil {
		return x.TotalHours
	}
	return 0
}

func (x *PayrollPeriod) GetTotalOvertimeHours() float64 {
	if x != nil {
		return x.TotalOvertimeHours
	}
	return 0
}

func (x *PayrollPeriod) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

func (x *PayrollPeriod) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *PayrollPeriod) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.UpdatedAt
	}
	return nil
}

type PayrollRecord struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PayrollPeriodId string                 `protobuf:"bytes,2,opt,name=payroll_period_id,json=payrollPeriodId,proto3" json:"payroll_period_id,omitempty"`
	StaffId         string                 `protobuf:"bytes,3,opt,name=staff_id,json=staffId,proto3" json:"staff_id,omitempty"`
	StandardHours   float64                `protobuf:"fixed64,4,opt,name=standard_hours,json=standardHours,proto3" json:"standard_hours,omitempty"`
	OvertimeHours   float64                `protobuf:"fixed64,5,opt,name=overtime_hours,json=overtimeHours,proto3" json:"overtime_hours,omitempty"`
	StandardRate    float64                `protobuf:"fixed64,6,opt,name=standard_rate,json=standardRate,proto3" json:"standard_rate,omitempty"`
	OvertimeRate    float64                `protobuf:"fixed64,7,opt,name=overtime_rate,json=overtimeRate,proto3" json:"overtime_rate,omitempty"`
	GrossPay        float64                `protobuf:"fixed64,8,opt,name=gross_pay,json=grossPay,proto3" json:"gross_pay,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PayrollRecord) Reset() {
	*x = PayrollRecord{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PayrollRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PayrollRecord) ProtoMessage() {}

func (x *PayrollRecord) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PayrollRecord.ProtoReflect.Descriptor instead.
func (*PayrollRecord) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{1}
}

func (x *PayrollRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PayrollRecord) GetPayrollPeriodId() string {
	if x != nil {
		return x.PayrollPeriodId
	}
	return ""
}

func (x *PayrollRecord) GetStaffId() string {
	if x != nil {
		return x.StaffId
	}
	return ""
}

func (x *PayrollRecord) GetStandardHours() float64 {
	if x != nil {
		return x.StandardHours
	}
	return 0
}

func (x *PayrollRecord) GetOvertimeHours() float64 {
	if x != nil {
		return x.OvertimeHours
	}
	return 0
}

func (x *PayrollRecord) GetStandardRate() float64 {
	if x != nil {
		return x.StandardRate
	}
	return 0
}

func (x *PayrollRecord) GetOvertimeRate() float64 {
	if x != nil {
		return x.OvertimeRate
	}
	return 0
}

func (x *PayrollRecord) GetGrossPay() float64 {
	if x != nil {
		return x.GrossPay
	}
	return 0
}

type Breakdown struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	StaffId             string                 `protobuf:"bytes,1,opt,name=staff_id,json=staffId,proto3" json:"staff_id,omitempty"`
	TotalHours          float64                `protobuf:"fixed64,2,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	StandardHours       float64                `protobuf:"fixed64,3,opt,name=standard_hours,json=standardHours,proto3" json:"standard_hours,omitempty"`
	OvertimeHours       float64                `protobuf:"fixed64,4,opt,name=overtime_hours,json=overtimeHours,proto3" json:"overtime_hours,omitempty"`
	DailyOvertimeHours  float64                `protobuf:"fixed64,5,opt,name=daily_overtime_hours,json=dailyOvertimeHours,proto3" json:"daily_overtime_hours,omitempty"`
	WeeklyOvertimeHours float64                `protobuf:"fixed64,6,opt,name=weekly_overtime_hours,json=weeklyOvertimeHours,proto3" json:"weekly_overtime_hours,omitempty"`
	StandardRate        float64                `protobuf:"fixed64,7,opt,name=standard_rate,json=standardRate,proto3" json:"standard_rate,omitempty"`
	OvertimeRate        float64                `protobuf:"fixed64,8,opt,name=overtime_rate,json=overtimeRate,proto3" json:"overtime_rate,omitempty"`
	GrossPay            float64                `protobuf:"fixed64,9,opt,name=gross_pay,json=grossPay,proto3" json:"gross_pay,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Breakdown) Reset() {
	*x = Breakdown{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Breakdown) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Breakdown) ProtoMessage() {}

func (x *Breakdown) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Breakdown.ProtoReflect.Descriptor instead.
func (*Breakdown) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{2}
}

func (x *Breakdown) GetStaffId() string {
	if x != nil {
		return x.StaffId
	}
	return ""
}

func (x *Breakdown) GetTotalHours() float64 {
	if x != nil {
		return x.TotalHours
	}
	return 0
}

func (x *Breakdown) GetStandardHours() float64 {
	if x != nil {
		return x.StandardHours
	}
	return 0
}

func (x *Breakdown) GetOvertimeHours() float64 {
	if x != nil {
		return x.OvertimeHours
	}
	return 0
}

func (x *Breakdown) GetDailyOvertimeHours() float64 {
	if x != nil {
		return x.DailyOvertimeHours
	}
	return 0
}

func (x *Breakdown) GetWeeklyOvertimeHours() float64 {
	if x != nil {
		return x.WeeklyOvertimeHours
	}
	return 0
}

func (x *Breakdown) GetStandardRate() float64 {
	if x != nil {
		return x.StandardRate
	}
	return 0
}

func (x *Breakdown) GetOvertimeRate() float64 {
	if x != nil {
		return x.OvertimeRate
	}
	return 0
}

func (x *Breakdown) GetGrossPay() float64 {
	if x != nil {
		return x.GrossPay
	}
	return 0
}

type ValidateEligibilityRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AttendancePeriodId string                 `protobuf:"bytes,1,opt,name=attendance_period_id,json=attendancePeriodId,proto3" json:"attendance_period_id,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ValidateEligibilityRequest) Reset() {
	*x = ValidateEligibilityRequest{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateEligibilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateEligibilityRequest) ProtoMessage() {}

func (x *ValidateEligibilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateEligibilityRequest.ProtoReflect.Descriptor instead.
func (*ValidateEligibilityRequest) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{3}
}

func (x *ValidateEligibilityRequest) GetAttendancePeriodId() string {
	if x != nil {
		return x.AttendancePeriodId
	}
	return ""
}

type ValidateEligibilityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Eligible      bool                   `protobuf:"varint,1,opt,name=eligible,proto3" json:"eligible,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateEligibilityResponse) Reset() {
	*x = ValidateEligibilityResponse{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateEligibilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateEligibilityResponse) ProtoMessage() {}

func (x *ValidateEligibilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateEligibilityResponse.ProtoReflect.Descriptor instead.
func (*ValidateEligibilityResponse) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{4}
}

func (x *ValidateEligibilityResponse) GetEligible() bool {
	if x != nil {
		return x.Eligible
	}
	return false
}

func (x *ValidateEligibilityResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type GetCalculationPreviewRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AttendancePeriodId string                 `protobuf:"bytes,1,opt,name=attendance_period_id,json=attendancePeriodId,proto3" json:"attendance_period_id,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetCalculationPreviewRequest) Reset() {
	*x = GetCalculationPreviewRequest{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCalculationPreviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCalculationPreviewRequest) ProtoMessage() {}

func (x *GetCalculationPreviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCalculationPreviewRequest.ProtoReflect.Descriptor instead.
func (*GetCalculationPreviewRequest) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{5}
}

func (x *GetCalculationPreviewRequest) GetAttendancePeriodId() string {
	if x != nil {
		return x.AttendancePeriodId
	}
	return ""
}

type GetCalculationPreviewResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	Breakdowns         []*Breakdown           `protobuf:"bytes,1,rep,name=breakdowns,proto3" json:"breakdowns,omitempty"`
	TotalHours         float64                `protobuf:"fixed64,2,opt,name=total_hours,json=totalHours,proto3" json:"total_hours,omitempty"`
	TotalOvertimeHours float64                `protobuf:"fixed64,3,opt,name=total_overtime_hours,json=totalOvertimeHours,proto3" json:"total_overtime_hours,omitempty"`
	TotalAmount        float64                `protobuf:"fixed64,4,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetCalculationPreviewResponse) Reset() {
	*x = GetCalculationPreviewResponse{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCalculationPreviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCalculationPreviewResponse) ProtoMessage() {}

func (x *GetCalculationPreviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCalculationPreviewResponse.ProtoReflect.Descriptor instead.
func (*GetCalculationPreviewResponse) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{6}
}

func (x *GetCalculationPreviewResponse) GetBreakdowns() []*Breakdown {
	if x != nil {
		return x.Breakdowns
	}
	return nil
}

func (x *GetCalculationPreviewResponse) GetTotalHours() float64 {
	if x != nil {
		return x.TotalHours
	}
	return 0
}

func (x *GetCalculationPreviewResponse) GetTotalOvertimeHours() float64 {
	if x != nil {
		return x.TotalOvertimeHours
	}
	return 0
}

func (x *GetCalculationPreviewResponse) GetTotalAmount() float64 {
	if x != nil {
		return x.TotalAmount
	}
	return 0
}

type CalculatePayrollRequest struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	AttendancePeriodId string                 `protobuf:"bytes,1,opt,name=attendance_period_id,json=attendancePeriodId,proto3" json:"attendance_period_id,omitempty"`
	RequestedBy        string                 `protobuf:"bytes,2,opt,name=requested_by,json=requestedBy,proto3" json:"requested_by,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *CalculatePayrollRequest) Reset() {
	*x = CalculatePayrollRequest{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CalculatePayrollRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalculatePayrollRequest) ProtoMessage() {}

func (x *CalculatePayrollRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalculatePayrollRequest.ProtoReflect.Descriptor instead.
func (*CalculatePayrollRequest) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{7}
}

func (x *CalculatePayrollRequest) GetAttendancePeriodId() string {
	if x != nil {
		return x.AttendancePeriodId
	}
	return ""
}

func (x *CalculatePayrollRequest) GetRequestedBy() string {
	if x != nil {
		return x.RequestedBy
	}
	return ""
}

type CalculatePayrollResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        *PayrollPeriod         `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CalculatePayrollResponse) Reset() {
	*x = CalculatePayrollResponse{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CalculatePayrollResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CalculatePayrollResponse) ProtoMessage() {}

func (x *CalculatePayrollResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CalculatePayrollResponse.ProtoReflect.Descriptor instead.
func (*CalculatePayrollResponse) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{8}
}

func (x *CalculatePayrollResponse) GetPeriod() *PayrollPeriod {
	if x != nil {
		return x.Period
	}
	return nil
}

type ApprovePayrollRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	PayrollPeriodId string                 `protobuf:"bytes,1,opt,name=payroll_period_id,json=payrollPeriodId,proto3" json:"payroll_period_id,omitempty"`
	RequestedBy     string                 `protobuf:"bytes,2,opt,name=requested_by,json=requestedBy,proto3" json:"requested_by,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ApprovePayrollRequest) Reset() {
	*x = ApprovePayrollRequest{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApprovePayrollRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApprovePayrollRequest) ProtoMessage() {}

func (x *ApprovePayrollRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApprovePayrollRequest.ProtoReflect.Descriptor instead.
func (*ApprovePayrollRequest) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{9}
}

func (x *ApprovePayrollRequest) GetPayrollPeriodId() string {
	if x != nil {
		return x.PayrollPeriodId
	}
	return ""
}

func (x *ApprovePayrollRequest) GetRequestedBy() string {
	if x != nil {
		return x.RequestedBy
	}
	return ""
}

type ApprovePayrollResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        *PayrollPeriod         `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApprovePayrollResponse) Reset() {
	*x = ApprovePayrollResponse{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApprovePayrollResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApprovePayrollResponse) ProtoMessage() {}

func (x *ApprovePayrollResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApprovePayrollResponse.ProtoReflect.Descriptor instead.
func (*ApprovePayrollResponse) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{10}
}

func (x *ApprovePayrollResponse) GetPeriod() *PayrollPeriod {
	if x != nil {
		return x.Period
	}
	return nil
}

type GetPayrollSummaryRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	PayrollPeriodId string                 `protobuf:"bytes,1,opt,name=payroll_period_id,json=payrollPeriodId,proto3" json:"payroll_period_id,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetPayrollSummaryRequest) Reset() {
	*x = GetPayrollSummaryRequest{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPayrollSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPayrollSummaryRequest) ProtoMessage() {}

func (x *GetPayrollSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPayrollSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetPayrollSummaryRequest) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{11}
}

func (x *GetPayrollSummaryRequest) GetPayrollPeriodId() string {
	if x != nil {
		return x.PayrollPeriodId
	}
	return ""
}

type GetPayrollSummaryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Period        *PayrollPeriod         `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	Records       []*PayrollRecord       `protobuf:"bytes,2,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPayrollSummaryResponse) Reset() {
	*x = GetPayrollSummaryResponse{}
	mi := &file_payroll_v1_payroll_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPayrollSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPayrollSummaryResponse) ProtoMessage() {}

func (x *GetPayrollSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_payroll_v1_payroll_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPayrollSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetPayrollSummaryResponse) Descriptor() ([]byte, []int) {
	return file_payroll_v1_payroll_proto_rawDescGZIP(), []int{12}
}

func (x *GetPayrollSummaryResponse) GetPeriod() *PayrollPeriod {
	if x != nil {
		return x.Period
	}
	return nil
}

func (x *GetPayrollSummaryResponse) GetRecords() []*PayrollRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

var File_payroll_v1_payroll_proto protoreflect.FileDescriptor

const file_payroll_v1_payroll_proto_rawDesc = "" +
	"\n" +
	"\x18payroll/v1/payroll.proto\x12\n" +
	"payroll.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xaa\x03\n" +
	"\rPayrollPeriod\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x120\n" +
	"\x14attendance_period_id\x18\x02 \x01(\tR\x12attendancePeriodId\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\x121\n" +
	"\x06status\x18\x05 \x01(\x0e2\x19.payroll.v1.PayrollStatusR\x06status\x12\x1f\n" +
	"\vtotal_hours\x18\x06 \x01(\x01R\n" +
	"totalHours\x120\n" +
	"\x14total_overtime_hours\x18\a \x01(\x01R\x12totalOvertimeHours\x12!\n" +
	"\ftotal_amount\x18\b \x01(\x01R\vtotalAmount\x129\n" +
	"\n" +
	"created_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\x9b\x02\n" +
	"\rPayrollRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12*\n" +
	"\x11payroll_period_id\x18\x02 \x01(\tR\x0fpayrollPeriodId\x12\x19\n" +
	"\bstaff_id\x18\x03 \x01(\tR\astaffId\x12%\n" +
	"\x0estandard_hours\x18\x04 \x01(\x01R\rstandardHours\x12%\n" +
	"\x0eovertime_hours\x18\x05 \x01(\x01R\rovertimeHours\x12#\n" +
	"\rstandard_rate\x18\x06 \x01(\x01R\fstandardRate\x12#\n" +
	"\rovertime_rate\x18\a \x01(\x01R\fovertimeRate\x12\x1b\n" +
	"\tgross_pay\x18\b \x01(\x01R\bgrossPay\"\xe2\x02\n" +
	"\tBreakdown\x12\x19\n" +
	"\bstaff_id\x18\x01 \x01(\tR\astaffId\x12\x1f\n" +
	"\vtotal_hours\x18\x02 \x01(\x01R\n" +
	"totalHours\x12%\n" +
	"\x0estandard_hours\x18\x03 \x01(\x01R\rstandardHours\x12%\n" +
	"\x0eovertime_hours\x18\x04 \x01(\x01R\rovertimeHours\x120\n" +
	"\x14daily_overtime_hours\x18\x05 \x01(\x01R\x12dailyOvertimeHours\x122\n" +
	"\x15weekly_overtime_hours\x18\x06 \x01(\x01R\x13weeklyOvertimeHours\x12#\n" +
	"\rstandard_rate\x18\a \x01(\x01R\fstandardRate\x12#\n" +
	"\rovertime_rate\x18\b \x01(\x01R\fovertimeRate\x12\x1b\n" +
	"\tgross_pay\x18\t \x01(\x01R\bgrossPay\"N\n" +
	"\x1aValidateEligibilityRequest\x120\n" +
	"\x14attendance_period_id\x18\x01 \x01(\tR\x12attendancePeriodId\"Q\n" +
	"\x1bValidateEligibilityResponse\x12\x1a\n" +
	"\beligible\x18\x01 \x01(\bR\beligible\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"P\n" +
	"\x1cGetCalculationPreviewRequest\x120\n" +
	"\x14attendance_period_id\x18\x01 \x01(\tR\x12attendancePeriodId\"\xcc\x01\n" +
	"\x1dGetCalculationPreviewResponse\x125\n" +
	"\n" +
	"breakdowns\x18\x01 \x03(\v2\x15.payroll.v1.BreakdownR\n" +
	"breakdowns\x12\x1f\n" +
	"\vtotal_hours\x18\x02 \x01(\x01R\n" +
	"totalHours\x120\n" +
	"\x14total_overtime_hours\x18\x03 \x01(\x01R\x12totalOvertimeHours\x12!\n" +
	"\ftotal_amount\x18\x04 \x01(\x01R\vtotalAmount\"n\n" +
	"\x17CalculatePayrollRequest\x120\n" +
	"\x14attendance_period_id\x18\x01 \x01(\tR\x12attendancePeriodId\x12!\n" +
	"\frequested_by\x18\x02 \x01(\tR\vrequestedBy\"M\n" +
	"\x18CalculatePayrollResponse\x121\n" +
	"\x06period\x18\x01 \x01(\v2\x19.payroll.v1.PayrollPeriodR\x06period\"f\n" +
	"\x15ApprovePayrollRequest\x12*\n" +
	"\x11payroll_period_id\x18\x01 \x01(\tR\x0fpayrollPeriodId\x12!\n" +
	"\frequested_by\x18\x02 \x01(\tR\vrequestedBy\"K\n" +
	"\x16ApprovePayrollResponse\x121\n" +
	"\x06period\x18\x01 \x01(\v2\x19.payroll.v1.PayrollPeriodR\x06period\"F\n" +
	"\x18GetPayrollSummaryRequest\x12*\n" +
	"\x11payroll_period_id\x18\x01 \x01(\tR\x0fpayrollPeriodId\"\x83\x01\n" +
	"\x19GetPayrollSummaryResponse\x121\n" +
	"\x06period\x18\x01 \x01(\v2\x19.payroll.v1.PayrollPeriodR\x06period\x123\n" +
	"\arecords\x18\x02 \x03(\v2\x19.payroll.v1.PayrollRecordR\arecords*\xa7\x01\n" +
	"\rPayrollStatus\x12\x1e\n" +
	"\x1aPAYROLL_STATUS_UNSPECIFIED\x10\x00\x12\x1a\n" +
	"\x16PAYROLL_STATUS_PENDING\x10\x01\x12\x1e\n" +
	"\x1aPAYROLL_STATUS_CALCULATING\x10\x02\x12\x1d\n" +
	"\x19PAYROLL_STATUS_CALCULATED\x10\x03\x12\x1b\n" +
	"\x17PAYROLL_STATUS_APPROVED\x10\x042\x80\x04\n" +
	"\x0ePayrollService\x12f\n" +
	"\x13ValidateEligibility\x12&.payroll.v1.ValidateEligibilityRequest\x1a'.payroll.v1.ValidateEligibilityResponse\x12l\n" +
	"\x15GetCalculationPreview\x12(.payroll.v1.GetCalculationPreviewRequest\x1a).payroll.v1.GetCalculationPreviewResponse\x12]\n" +
	"\x10CalculatePayroll\x12#.payroll.v1.CalculatePayrollRequest\x1a$.payroll.v1.CalculatePayrollResponse\x12W\n" +
	"\x0eApprovePayroll\x12!.payroll.v1.ApprovePayrollRequest\x1a\".payroll.v1.ApprovePayrollResponse\x12`\n" +
	"\x11GetPayrollSummary\x12$.payroll.v1.GetPayrollSummaryRequest\x1a%.payroll.v1.GetPayrollSummaryResponseBRZPgithub.com/ogurasousui/timeclock/internal/adapters/grpc/gen/payroll/v1;payrollv1b\x06proto3"

var (
	file_payroll_v1_payroll_proto_rawDescOnce sync.Once
	file_payroll_v1_payroll_proto_rawDescData []byte
)

func file_payroll_v1_payroll_proto_rawDescGZIP() []byte {
	file_payroll_v1_payroll_proto_rawDescOnce.Do(func() {
		file_payroll_v1_payroll_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_payroll_v1_payroll_proto_rawDesc), len(file_payroll_v1_payroll_proto_rawDesc)))
	})
	return file_payroll_v1_payroll_proto_rawDescData
}

var file_payroll_v1_payroll_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_payroll_v1_payroll_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_payroll_v1_payroll_proto_goTypes = []any{
	(PayrollStatus)(0),                    // 0: payroll.v1.PayrollStatus
	(*PayrollPeriod)(nil),                 // 1: payroll.v1.PayrollPeriod
	(*PayrollRecord)(nil),                 // 2: payroll.v1.PayrollRecord
	(*Breakdown)(nil),                     // 3: payroll.v1.Breakdown
	(*ValidateEligibilityRequest)(nil),    // 4: payroll.v1.ValidateEligibilityRequest
	(*ValidateEligibilityResponse)(nil),   // 5: payroll.v1.ValidateEligibilityResponse
	(*GetCalculationPreviewRequest)(nil),  // 6: payroll.v1.GetCalculationPreviewRequest
	(*GetCalculationPreviewResponse)(nil), // 7: payroll.v1.GetCalculationPreviewResponse
	(*CalculatePayrollRequest)(nil),       // 8: payroll.v1.CalculatePayrollRequest
	(*CalculatePayrollResponse)(nil),      // 9: payroll.v1.CalculatePayrollResponse
	(*ApprovePayrollRequest)(nil),         // 10: payroll.v1.ApprovePayrollRequest
	(*ApprovePayrollResponse)(nil),        // 11: payroll.v1.ApprovePayrollResponse
	(*GetPayrollSummaryRequest)(nil),      // 12: payroll.v1.GetPayrollSummaryRequest
	(*GetPayrollSummaryResponse)(nil),     // 13: payroll.v1.GetPayrollSummaryResponse
	(*timestamppb.Timestamp)(nil),         // 14: google.protobuf.Timestamp
}
var file_payroll_v1_payroll_proto_depIdxs = []int32{
	0,  // 0: payroll.v1.PayrollPeriod.status:type_name -> payroll.v1.PayrollStatus
	14, // 1: payroll.v1.PayrollPeriod.created_at:type_name -> google.protobuf.Timestamp
	14, // 2: payroll.v1.PayrollPeriod.updated_at:type_name -> google.protobuf.Timestamp
	3,  // 3: payroll.v1.GetCalculationPreviewResponse.breakdowns:type_name -> payroll.v1.Breakdown
	1,  // 4: payroll.v1.CalculatePayrollResponse.period:type_name -> payroll.v1.PayrollPeriod
	1,  // 5: payroll.v1.ApprovePayrollResponse.period:type_name -> payroll.v1.PayrollPeriod
	1,  // 6: payroll.v1.GetPayrollSummaryResponse.period:type_name -> payroll.v1.PayrollPeriod
	2,  // 7: payroll.v1.GetPayrollSummaryResponse.records:type_name -> payroll.v1.PayrollRecord
	4,  // 8: payroll.v1.PayrollService.ValidateEligibility:input_type -> payroll.v1.ValidateEligibilityRequest
	6,  // 9: payroll.v1.PayrollService.GetCalculationPreview:input_type -> payroll.v1.GetCalculationPreviewRequest
	8,  // 10: payroll.v1.PayrollService.CalculatePayroll:input_type -> payroll.v1.CalculatePayrollRequest
	10, // 11: payroll.v1.PayrollService.ApprovePayroll:input_type -> payroll.v1.ApprovePayrollRequest
	12, // 12: payroll.v1.PayrollService.GetPayrollSummary:input_type -> payroll.v1.GetPayrollSummaryRequest
	5,  // 13: payroll.v1.PayrollService.ValidateEligibility:output_type -> payroll.v1.ValidateEligibilityResponse
	7,  // 14: payroll.v1.PayrollService.GetCalculationPreview:output_type -> payroll.v1.GetCalculationPreviewResponse
	9,  // 15: payroll.v1.PayrollService.CalculatePayroll:output_type -> payroll.v1.CalculatePayrollResponse
	11, // 16: payroll.v1.PayrollService.ApprovePayroll:output_type -> payroll.v1.ApprovePayrollResponse
	13, // 17: payroll.v1.PayrollService.GetPayrollSummary:output_type -> payroll.v1.GetPayrollSummaryResponse
	13, // [13:18] is the sub-list for method output_type
	8,  // [8:13] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_payroll_v1_payroll_proto_init() }
func file_payroll_v1_payroll_proto_init() {
	if File_payroll_v1_payroll_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_payroll_v1_payroll_proto_rawDesc), len(file_payroll_v1_payroll_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_payroll_v1_payroll_proto_goTypes,
		DependencyIndexes: file_payroll_v1_payroll_proto_depIdxs,
		EnumInfos:         file_payroll_v1_payroll_proto_enumTypes,
		MessageInfos:      file_payroll_v1_payroll_proto_msgTypes,
	}.Build()
	File_payroll_v1_payroll_proto = out.File
	file_payroll_v1_payroll_proto_goTypes = nil
	file_payroll_v1_payroll_proto_depIdxs = nil
}
