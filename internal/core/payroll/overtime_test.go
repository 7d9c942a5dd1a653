package payroll

import (
	"reflect"
	"testing"
)

func rowsFor(staffID string, daily []float64) []HoursRow {
	rows := make([]HoursRow, 0, len(daily))
	for _, h := range daily {
		rows = append(rows, HoursRow{StaffID: staffID, Hours: h})
	}
	return rows
}

func TestCalculateOvertime_WeeklyCapGoverns(t *testing.T) {
	t.Parallel()

	// 10 時間 ×5 日: 週 40 時間の上限が支配し、残業は 10 時間 (20 ではない)。
	rows := rowsFor("staff-1", []float64{10, 10, 10, 10, 10})
	rates := map[string]RateCard{"staff-1": {StandardRate: 10, OvertimeRate: 15}}

	out := CalculateOvertime(rows, rates, DefaultThresholds())
	if len(out) != 1 {
		t.Fatalf("expected 1 breakdown, got %d", len(out))
	}

	b := out[0]
	if b.StandardHours != 40 {
		t.Errorf("expected 40 standard hours, got %v", b.StandardHours)
	}
	if b.OvertimeHours != 10 {
		t.Errorf("expected 10 overtime hours, got %v", b.OvertimeHours)
	}
	if b.GrossPay != 550 {
		t.Errorf("expected gross pay 550, got %v", b.GrossPay)
	}
	if b.DailyOvertimeHours != 10 {
		t.Errorf("expected daily overtime view 10, got %v", b.DailyOvertimeHours)
	}
	if b.WeeklyOvertimeHours != 10 {
		t.Errorf("expected weekly overtime view 10, got %v", b.WeeklyOvertimeHours)
	}
}

func TestCalculateOvertime_DailyCapBelowWeeklyThreshold(t *testing.T) {
	t.Parallel()

	// [8, 9.5]: 週 40 時間未満でも日次 8 時間の上限が標準時間を 16 に抑える。
	rows := rowsFor("staff-1", []float64{8, 9.5})
	rates := map[string]RateCard{"staff-1": {StandardRate: 10, OvertimeRate: 15}}

	out := CalculateOvertime(rows, rates, DefaultThresholds())
	if len(out) != 1 {
		t.Fatalf("expected 1 breakdown, got %d", len(out))
	}

	b := out[0]
	if b.StandardHours != 16 {
		t.Errorf("expected 16 standard hours, got %v", b.StandardHours)
	}
	if b.OvertimeHours != 1.5 {
		t.Errorf("expected 1.5 overtime hours, got %v", b.OvertimeHours)
	}
	if b.GrossPay != 187.5 {
		t.Errorf("expected gross pay 187.5, got %v", b.GrossPay)
	}
}

func TestCalculateOvertime_ZeroHoursStillEmitted(t *testing.T) {
	t.Parallel()

	rows := []HoursRow{
		{StaffID: "staff-1", Hours: 0},
		{StaffID: "staff-2", Hours: 8},
	}

	out := CalculateOvertime(rows, map[string]RateCard{}, DefaultThresholds())
	if len(out) != 2 {
		t.Fatalf("expected zero-hour staff to remain in output, got %d entries", len(out))
	}

	if out[0].StaffID != "staff-1" || out[0].TotalHours != 0 || out[0].GrossPay != 0 {
		t.Fatalf("unexpected zero-hour breakdown: %+v", out[0])
	}
}

func TestCalculateOvertime_Deterministic(t *testing.T) {
	t.Parallel()

	rows := []HoursRow{
		{StaffID: "staff-2", Hours: 9},
		{StaffID: "staff-1", Hours: 7.25},
		{StaffID: "staff-2", Hours: 10.5},
		{StaffID: "staff-1", Hours: 8},
	}
	rates := map[string]RateCard{
		"staff-1": {StandardRate: 12, OvertimeRate: 18},
		"staff-2": {StandardRate: 11, OvertimeRate: 16.5},
	}

	first := CalculateOvertime(rows, rates, DefaultThresholds())
	second := CalculateOvertime(rows, rates, DefaultThresholds())

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected bit-identical output for identical input")
	}

	// 出力は StaffID 順で安定していること。
	if first[0].StaffID != "staff-1" || first[1].StaffID != "staff-2" {
		t.Fatalf("expected sorted output, got %s then %s", first[0].StaffID, first[1].StaffID)
	}
}

func TestCalculateOvertime_NegativeHoursTreatedAsZero(t *testing.T) {
	t.Parallel()

	out := CalculateOvertime([]HoursRow{{StaffID: "staff-1", Hours: -3}}, nil, DefaultThresholds())
	if out[0].TotalHours != 0 {
		t.Fatalf("expected negative hours clamped to zero, got %v", out[0].TotalHours)
	}
}
