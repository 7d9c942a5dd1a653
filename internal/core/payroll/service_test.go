package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ogurasousui/timeclock/internal/core/attendance"
	"github.com/ogurasousui/timeclock/internal/core/notify"
	"github.com/ogurasousui/timeclock/internal/core/staff"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakePayrollRepo struct {
	periods  map[string]*Period
	records  map[string][]*Record
	sequence int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		periods: make(map[string]*Period),
		records: make(map[string][]*Record),
	}
}

func (r *fakePayrollRepo) CreatePeriod(_ context.Context, p *Period) (*Period, error) {
	clone := *p
	r.sequence++
	clone.ID = fmt.Sprintf("pay-%d", r.sequence)
	r.periods[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakePayrollRepo) UpdatePeriod(_ context.Context, p *Period) (*Period, error) {
	if _, ok := r.periods[p.ID]; !ok {
		return nil, ErrPeriodNotFound
	}
	clone := *p
	r.periods[p.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakePayrollRepo) FindPeriod(_ context.Context, id string) (*Period, error) {
	p, ok := r.periods[id]
	if !ok {
		return nil, ErrPeriodNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakePayrollRepo) FindPeriodByAttendancePeriod(_ context.Context, attendancePeriodID string) (*Period, error) {
	for _, p := range r.periods {
		if p.AttendancePeriodID == attendancePeriodID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, ErrPeriodNotFound
}

func (r *fakePayrollRepo) DeleteRecords(_ context.Context, payrollPeriodID string) error {
	delete(r.records, payrollPeriodID)
	return nil
}

func (r *fakePayrollRepo) InsertRecords(_ context.Context, records []*Record) error {
	for _, rec := range records {
		clone := *rec
		r.sequence++
		clone.ID = fmt.Sprintf("payrec-%d", r.sequence)
		r.records[clone.PayrollPeriodID] = append(r.records[clone.PayrollPeriodID], &clone)
	}
	return nil
}

func (r *fakePayrollRepo) ListRecords(_ context.Context, payrollPeriodID string) ([]*Record, error) {
	out := make([]*Record, 0, len(r.records[payrollPeriodID]))
	for _, rec := range r.records[payrollPeriodID] {
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	periods map[string]*attendance.Period
	records []*attendance.Record
}

func (r *fakeAttendanceRepo) CreateRecord(_ context.Context, rec *attendance.Record) (*attendance.Record, error) {
	return rec, nil
}

func (r *fakeAttendanceRepo) UpdateRecord(_ context.Context, rec *attendance.Record) (*attendance.Record, error) {
	return rec, nil
}

func (r *fakeAttendanceRepo) FindRecord(_ context.Context, _ string, _ time.Time) (*attendance.Record, error) {
	return nil, attendance.ErrRecordNotFound
}

func (r *fakeAttendanceRepo) ListRecords(_ context.Context, from, to time.Time) ([]*attendance.Record, error) {
	var out []*attendance.Record
	for _, rec := range r.records {
		if rec.Date.Before(from) || rec.Date.After(to) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r *fakeAttendanceRepo) TransactionSeen(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (r *fakeAttendanceRepo) MarkTransactionApplied(_ context.Context, _, _ string) error {
	return nil
}

func (r *fakeAttendanceRepo) CreatePeriod(_ context.Context, p *attendance.Period) (*attendance.Period, error) {
	return p, nil
}

func (r *fakeAttendanceRepo) UpdatePeriod(_ context.Context, p *attendance.Period) (*attendance.Period, error) {
	return p, nil
}

func (r *fakeAttendanceRepo) FindPeriod(_ context.Context, id string) (*attendance.Period, error) {
	p, ok := r.periods[id]
	if !ok {
		return nil, attendance.ErrPeriodNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *fakeAttendanceRepo) FindPeriodByRange(_ context.Context, _, _ time.Time) (*attendance.Period, error) {
	return nil, attendance.ErrPeriodNotFound
}

type fakeStaffRepo struct {
	byID map[string]*staff.Staff
}

func (r *fakeStaffRepo) Create(_ context.Context, s *staff.Staff) (*staff.Staff, error) {
	return s, nil
}

func (r *fakeStaffRepo) Update(_ context.Context, s *staff.Staff) (*staff.Staff, error) {
	return s, nil
}

func (r *fakeStaffRepo) FindByID(_ context.Context, id string) (*staff.Staff, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, staff.ErrStaffNotFound
	}
	return s, nil
}

func (r *fakeStaffRepo) FindByCode(_ context.Context, _ string) (*staff.Staff, error) {
	return nil, staff.ErrStaffNotFound
}

func (r *fakeStaffRepo) List(_ context.Context, _ staff.ListFilter) ([]*staff.Staff, error) {
	return nil, nil
}

type fakeAudit struct {
	entries []AuditEntry
}

func (a *fakeAudit) Append(_ context.Context, entry AuditEntry) error {
	a.entries = append(a.entries, entry)
	return nil
}

type recordingDispatcher struct {
	payloads []notify.Payload
}

func (d *recordingDispatcher) Send(_ context.Context, _ notify.Channel, payload notify.Payload) {
	d.payloads = append(d.payloads, payload)
}

func hoursPtr(h float64) *float64 {
	return &h
}

func testFixture(finalized bool) (*Service, *fakePayrollRepo, *fakeAudit, *recordingDispatcher) {
	status := attendance.PeriodStatusPending
	if finalized {
		status = attendance.PeriodStatusFinalized
	}

	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	attRepo := &fakeAttendanceRepo{
		periods: map[string]*attendance.Period{
			"att-1": {ID: "att-1", StartDate: start, EndDate: end, Status: status},
		},
	}
	for day := 0; day < 5; day++ {
		attRepo.records = append(attRepo.records, &attendance.Record{
			StaffID:    "staff-1",
			Date:       start.AddDate(0, 0, day),
			TotalHours: hoursPtr(10),
		})
	}

	staffRepo := &fakeStaffRepo{byID: map[string]*staff.Staff{
		"staff-1": {ID: "staff-1", Code: "1001", StandardRate: 10, OvertimeRate: 15},
	}}

	payRepo := newFakePayrollRepo()
	audit := &fakeAudit{}
	dispatcher := &recordingDispatcher{}
	clock := &stubClock{now: time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)}

	svc := NewService(payRepo, attRepo, staffRepo, audit, nil, dispatcher, clock, Config{
		Thresholds:          DefaultThresholds(),
		DefaultStandardRate: 8,
		DefaultOvertimeRate: 12,
	})

	return svc, payRepo, audit, dispatcher
}

func TestValidateEligibility_NotFinalized(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := testFixture(false)

	result, err := svc.ValidateEligibility(context.Background(), "att-1")
	if err != nil {
		t.Fatalf("ValidateEligibility returned error: %v", err)
	}
	if result.Eligible {
		t.Fatal("expected ineligible for pending attendance period")
	}
	if result.Reason != "attendance period must be finalized" {
		t.Fatalf("unexpected reason: %q", result.Reason)
	}
}

func TestValidateEligibility_AlreadyApproved(t *testing.T) {
	t.Parallel()

	svc, payRepo, _, _ := testFixture(true)

	if _, err := payRepo.CreatePeriod(context.Background(), &Period{
		AttendancePeriodID: "att-1",
		Status:             PeriodStatusApproved,
	}); err != nil {
		t.Fatalf("seed period failed: %v", err)
	}

	result, err := svc.ValidateEligibility(context.Background(), "att-1")
	if err != nil {
		t.Fatalf("ValidateEligibility returned error: %v", err)
	}
	if result.Eligible {
		t.Fatal("expected ineligible when approved payroll exists")
	}
	if result.Reason != "payroll already approved" {
		t.Fatalf("unexpected reason: %q", result.Reason)
	}
}

func TestCalculateForPeriod_Success(t *testing.T) {
	t.Parallel()

	svc, payRepo, audit, dispatcher := testFixture(true)

	period, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1")
	if err != nil {
		t.Fatalf("CalculateForPeriod returned error: %v", err)
	}

	if period.Status != PeriodStatusCalculated {
		t.Fatalf("expected CALCULATED, got %s", period.Status)
	}
	if period.TotalHours != 50 {
		t.Errorf("expected total hours 50, got %v", period.TotalHours)
	}
	if period.TotalOvertimeHours != 10 {
		t.Errorf("expected overtime hours 10, got %v", period.TotalOvertimeHours)
	}
	if period.TotalAmount != 550 {
		t.Errorf("expected total amount 550, got %v", period.TotalAmount)
	}

	records, _ := payRepo.ListRecords(context.Background(), period.ID)
	if len(records) != 1 {
		t.Fatalf("expected 1 payroll record, got %d", len(records))
	}
	if records[0].GrossPay != 550 {
		t.Errorf("expected gross pay 550, got %v", records[0].GrossPay)
	}

	if len(audit.entries) != 1 || audit.entries[0].Action != "payroll.calculate" {
		t.Fatalf("expected calculate audit entry, got %+v", audit.entries)
	}
	if len(dispatcher.payloads) != 1 {
		t.Fatalf("expected milestone notification, got %d", len(dispatcher.payloads))
	}
}

func TestCalculateForPeriod_NotFinalizedFails(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := testFixture(false)

	if _, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1"); !errors.Is(err, ErrNotFinalized) {
		t.Fatalf("expected ErrNotFinalized, got %v", err)
	}
}

func TestCalculateForPeriod_RecalculationReplacesRecords(t *testing.T) {
	t.Parallel()

	svc, payRepo, _, _ := testFixture(true)

	first, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1")
	if err != nil {
		t.Fatalf("first calculation failed: %v", err)
	}

	second, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1")
	if err != nil {
		t.Fatalf("second calculation failed: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected the payroll period to be reused, got %s then %s", first.ID, second.ID)
	}

	records, _ := payRepo.ListRecords(context.Background(), second.ID)
	if len(records) != 1 {
		t.Fatalf("expected records replaced not duplicated, got %d", len(records))
	}
}

func TestCalculateForPeriod_ApprovedIsTerminal(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := testFixture(true)

	period, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1")
	if err != nil {
		t.Fatalf("calculation failed: %v", err)
	}

	if _, err := svc.ApprovePeriod(context.Background(), period.ID, "admin-1"); err != nil {
		t.Fatalf("approval failed: %v", err)
	}

	if _, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1"); !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved after approval, got %v", err)
	}
}

func TestApprovePeriod_RequiresCalculated(t *testing.T) {
	t.Parallel()

	svc, payRepo, _, _ := testFixture(true)

	seeded, err := payRepo.CreatePeriod(context.Background(), &Period{
		AttendancePeriodID: "att-1",
		Status:             PeriodStatusPending,
	})
	if err != nil {
		t.Fatalf("seed period failed: %v", err)
	}

	if _, err := svc.ApprovePeriod(context.Background(), seeded.ID, "admin-1"); !errors.Is(err, ErrNotCalculated) {
		t.Fatalf("expected ErrNotCalculated, got %v", err)
	}
}

func TestGetCalculationPreview_NoWrites(t *testing.T) {
	t.Parallel()

	svc, payRepo, audit, _ := testFixture(true)

	preview, err := svc.GetCalculationPreview(context.Background(), "att-1")
	if err != nil {
		t.Fatalf("GetCalculationPreview returned error: %v", err)
	}

	if preview.TotalAmount != 550 {
		t.Errorf("expected preview total 550, got %v", preview.TotalAmount)
	}
	if len(payRepo.periods) != 0 {
		t.Error("preview must not create payroll periods")
	}
	if len(audit.entries) != 0 {
		t.Error("preview must not write audit entries")
	}
}

func TestGetSummary(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := testFixture(true)

	period, err := svc.CalculateForPeriod(context.Background(), "att-1", "admin-1")
	if err != nil {
		t.Fatalf("calculation failed: %v", err)
	}

	summary, err := svc.GetSummary(context.Background(), period.ID)
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if summary.Period.ID != period.ID || len(summary.Records) != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}
