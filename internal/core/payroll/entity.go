package payroll

import "time"

// PeriodStatus は給与期間の状態です。
type PeriodStatus string

const (
	PeriodStatusPending     PeriodStatus = "PENDING"
	PeriodStatusCalculating PeriodStatus = "CALCULATING"
	PeriodStatusCalculated  PeriodStatus = "CALCULATED"
	PeriodStatusApproved    PeriodStatus = "APPROVED"
)

// Period は給与計算期間です。FINALIZED な勤怠期間からのみ作成され、
// 同一勤怠期間に対して有効な Period は高々 1 つです。
type Period struct {
	ID                 string
	AttendancePeriodID string
	StartDate          time.Time
	EndDate            time.Time
	Status             PeriodStatus
	TotalHours         float64
	TotalOvertimeHours float64
	TotalAmount        float64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Record は従業員 1 人分の給与明細行です。再計算時は部分更新ではなく
// 全削除のうえ作り直されます。
type Record struct {
	ID              string
	PayrollPeriodID string
	StaffID         string
	StandardHours   float64
	OvertimeHours   float64
	StandardRate    float64
	OvertimeRate    float64
	GrossPay        float64
	CreatedAt       time.Time
}
