package payroll

import "sort"

// Thresholds は残業判定の閾値 (日次/週次) です。
type Thresholds struct {
	Daily  float64
	Weekly float64
}

// DefaultThresholds は規定の 8 時間/日・40 時間/週を返します。
func DefaultThresholds() Thresholds {
	return Thresholds{Daily: 8, Weekly: 40}
}

func (t Thresholds) normalized() Thresholds {
	if t.Daily <= 0 {
		t.Daily = 8
	}
	if t.Weekly <= 0 {
		t.Weekly = 40
	}
	return t
}

// HoursRow は従業員 1 人 1 日分の勤務時間です。勤怠レコードの射影で、
// 時刻が揃っていない日は 0 時間として渡されます。
type HoursRow struct {
	StaffID string
	Hours   float64
}

// RateCard は従業員の時給レートです。
type RateCard struct {
	StandardRate float64
	OvertimeRate float64
}

// Breakdown は従業員 1 人分の計算結果です。
// DailyOvertimeHours / WeeklyOvertimeHours は参考値で、支払いに使われる
// 確定値は StandardHours / OvertimeHours です (二重計上しません)。
type Breakdown struct {
	StaffID             string
	TotalHours          float64
	StandardHours       float64
	OvertimeHours       float64
	DailyOvertimeHours  float64
	WeeklyOvertimeHours float64
	StandardRate        float64
	OvertimeRate        float64
	GrossPay            float64
}

// CalculateOvertime は従業員ごとの時間バケットを標準/残業に分割し、
// 総支給額を計算します。純関数で、同じ入力に対してビット単位で同じ
// 出力を返します (プレビュー用途の前提)。
//
//	standard = min(min(Σd, weekly), Σ min(d, daily))
//	overtime = Σd - standard
//	gross    = standard*standardRate + overtime*overtimeRate
//
// 勤務時間が 0 の従業員も 0 時間のエントリとして出力されます。
func CalculateOvertime(rows []HoursRow, rates map[string]RateCard, thresholds Thresholds) []Breakdown {
	thresholds = thresholds.normalized()

	type bucket struct {
		total    float64
		capped   float64
		dailyOT  float64
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, row := range rows {
		b, ok := buckets[row.StaffID]
		if !ok {
			b = &bucket{}
			buckets[row.StaffID] = b
			order = append(order, row.StaffID)
		}

		hours := row.Hours
		if hours < 0 {
			hours = 0
		}

		b.total += hours
		if hours > thresholds.Daily {
			b.capped += thresholds.Daily
			b.dailyOT += hours - thresholds.Daily
		} else {
			b.capped += hours
		}
	}

	sort.Strings(order)

	out := make([]Breakdown, 0, len(order))
	for _, staffID := range order {
		b := buckets[staffID]

		standard := b.total
		if standard > thresholds.Weekly {
			standard = thresholds.Weekly
		}
		if b.capped < standard {
			standard = b.capped
		}

		overtime := b.total - standard

		weeklyOT := b.total - thresholds.Weekly
		if weeklyOT < 0 {
			weeklyOT = 0
		}

		rate := rates[staffID]

		out = append(out, Breakdown{
			StaffID:             staffID,
			TotalHours:          b.total,
			StandardHours:       standard,
			OvertimeHours:       overtime,
			DailyOvertimeHours:  b.dailyOT,
			WeeklyOvertimeHours: weeklyOT,
			StandardRate:        rate.StandardRate,
			OvertimeRate:        rate.OvertimeRate,
			GrossPay:            standard*rate.StandardRate + overtime*rate.OvertimeRate,
		})
	}

	return out
}
