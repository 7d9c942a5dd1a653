package staff

import "time"

// Status は従業員の状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Staff は従業員エンティティです。
// Code は端末が報告する外部 ID (打刻の employeeExternalId) に対応します。
type Staff struct {
	ID           string
	Code         string
	Name         string
	Status       Status
	StandardRate float64
	OvertimeRate float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
