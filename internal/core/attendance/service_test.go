package attendance

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	clock := &stubClock{now: time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)}
	return NewService(repo, clock), repo
}

func TestCreatePeriod_NormalizesDates(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	period, err := svc.CreatePeriod(context.Background(),
		time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC),
		time.Date(2025, 6, 6, 2, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("CreatePeriod returned error: %v", err)
	}

	if !period.StartDate.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected start normalized to midnight, got %v", period.StartDate)
	}
	if period.Status != PeriodStatusPending {
		t.Errorf("expected PENDING, got %s", period.Status)
	}
}

func TestCreatePeriod_InvalidRange(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.CreatePeriod(context.Background(),
		time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	)
	if !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
}

func TestFinalizePeriod_OneWay(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	period, err := svc.CreatePeriod(context.Background(),
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("CreatePeriod returned error: %v", err)
	}

	finalized, err := svc.FinalizePeriod(context.Background(), period.ID)
	if err != nil {
		t.Fatalf("FinalizePeriod returned error: %v", err)
	}
	if finalized.Status != PeriodStatusFinalized {
		t.Fatalf("expected FINALIZED, got %s", finalized.Status)
	}

	if _, err := svc.FinalizePeriod(context.Background(), period.ID); !errors.Is(err, ErrPeriodFinalized) {
		t.Fatalf("expected ErrPeriodFinalized on second finalize, got %v", err)
	}
}

func TestFinalizePeriod_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	if _, err := svc.FinalizePeriod(context.Background(), "missing"); !errors.Is(err, ErrPeriodNotFound) {
		t.Fatalf("expected ErrPeriodNotFound, got %v", err)
	}
}
