package staff

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeStaffRepo struct {
	staff    map[string]*Staff
	sequence int
	order    []string
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: make(map[string]*Staff)}
}

func (r *fakeStaffRepo) Create(_ context.Context, s *Staff) (*Staff, error) {
	clone := *s
	r.sequence++
	clone.ID = fmt.Sprintf("staff-%d", r.sequence)
	r.staff[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	result := clone
	return &result, nil
}

func (r *fakeStaffRepo) Update(_ context.Context, s *Staff) (*Staff, error) {
	if _, ok := r.staff[s.ID]; !ok {
		return nil, ErrStaffNotFound
	}
	clone := *s
	r.staff[s.ID] = &clone
	result := clone
	return &result, nil
}

func (r *fakeStaffRepo) FindByID(_ context.Context, id string) (*Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, ErrStaffNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *fakeStaffRepo) FindByCode(_ context.Context, code string) (*Staff, error) {
	for _, s := range r.staff {
		if s.Code == code {
			clone := *s
			return &clone, nil
		}
	}
	return nil, ErrStaffNotFound
}

func (r *fakeStaffRepo) List(_ context.Context, filter ListFilter) ([]*Staff, error) {
	var out []*Staff
	for _, id := range r.order {
		s := r.staff[id]
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func newTestService() (*Service, *fakeStaffRepo) {
	repo := newFakeStaffRepo()
	clock := &stubClock{now: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	return NewService(repo, clock), repo
}

func TestCreateStaff_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	created, err := svc.CreateStaff(context.Background(), CreateStaffInput{
		Code:         "1001",
		Name:         "Yamada Taro",
		StandardRate: 10,
		OvertimeRate: 15,
	})
	if err != nil {
		t.Fatalf("CreateStaff returned error: %v", err)
	}

	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.Status != StatusActive {
		t.Errorf("expected default status active, got %s", created.Status)
	}
}

func TestCreateStaff_DuplicateCode(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	input := CreateStaffInput{Code: "1001", Name: "Yamada Taro", StandardRate: 10, OvertimeRate: 15}
	if _, err := svc.CreateStaff(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	if _, err := svc.CreateStaff(context.Background(), input); !errors.Is(err, ErrCodeAlreadyExists) {
		t.Fatalf("expected ErrCodeAlreadyExists, got %v", err)
	}
}

func TestCreateStaff_Validation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	cases := []struct {
		name     string
		input    CreateStaffInput
		expected error
	}{
		{"empty code", CreateStaffInput{Name: "A"}, ErrInvalidCode},
		{"bad code", CreateStaffInput{Code: "-leading", Name: "A"}, ErrInvalidCode},
		{"empty name", CreateStaffInput{Code: "1001"}, ErrInvalidName},
		{"negative rate", CreateStaffInput{Code: "1001", Name: "A", StandardRate: -1}, ErrInvalidRate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateStaff(context.Background(), tc.input); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestGetStaff_InvalidID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	if _, err := svc.GetStaff(context.Background(), "  "); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestListStaff_FiltersByStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	inactive := StatusInactive
	if _, err := svc.CreateStaff(context.Background(), CreateStaffInput{Code: "1001", Name: "A"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateStaff(context.Background(), CreateStaffInput{Code: "1002", Name: "B", Status: &inactive}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	active := StatusActive
	result, err := svc.ListStaff(context.Background(), ListStaffInput{Status: &active})
	if err != nil {
		t.Fatalf("ListStaff returned error: %v", err)
	}
	if len(result) != 1 || result[0].Code != "1001" {
		t.Fatalf("expected only active staff, got %d entries", len(result))
	}
}
