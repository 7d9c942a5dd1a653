package staff

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

var codePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Service は従業員に関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase は従業員ユースケースの公開インターフェースです。
type UseCase interface {
	CreateStaff(ctx context.Context, in CreateStaffInput) (*Staff, error)
	GetStaff(ctx context.Context, id string) (*Staff, error)
	ListStaff(ctx context.Context, in ListStaffInput) ([]*Staff, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// CreateStaffInput は従業員作成時の入力です。
type CreateStaffInput struct {
	Code         string
	Name         string
	StandardRate float64
	OvertimeRate float64
	Status       *Status
}

// ListStaffInput は一覧取得時の入力です。
type ListStaffInput struct {
	Status *Status
	Limit  int
	Offset int
}

// CreateStaff は新しい従業員を登録します。
func (s *Service) CreateStaff(ctx context.Context, in CreateStaffInput) (*Staff, error) {
	code, err := normalizeCode(in.Code)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if in.StandardRate < 0 || in.OvertimeRate < 0 {
		return nil, ErrInvalidRate
	}

	status := StatusActive
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status = *in.Status
	}

	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil && !errors.Is(err, ErrStaffNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCodeAlreadyExists
	}

	now := s.clock.Now()
	return s.repo.Create(ctx, &Staff{
		Code:         code,
		Name:         name,
		Status:       status,
		StandardRate: in.StandardRate,
		OvertimeRate: in.OvertimeRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// GetStaff は従業員を取得します。
func (s *Service) GetStaff(ctx context.Context, id string) (*Staff, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, id)
}

// ListStaff は従業員の一覧を取得します。
func (s *Service) ListStaff(ctx context.Context, in ListStaffInput) ([]*Staff, error) {
	if in.Status != nil && !isValidStatus(*in.Status) {
		return nil, ErrInvalidStatus
	}

	limit := in.Limit
	if limit <= 0 {
		limit = 50
	}

	return s.repo.List(ctx, ListFilter{Status: in.Status, Limit: limit, Offset: in.Offset})
}

func normalizeCode(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !codePattern.MatchString(trimmed) {
		return "", ErrInvalidCode
	}
	return trimmed, nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}
