package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service は勤怠期間のライフサイクルを扱います。
// 期間の確定 (FINALIZED) は一方向の遷移で、給与計算の前提条件です。
type Service struct {
	repo  Repository
	clock Clock
}

// UseCase は勤怠期間ユースケースの公開インターフェースです。
type UseCase interface {
	CreatePeriod(ctx context.Context, start, end time.Time) (*Period, error)
	GetPeriod(ctx context.Context, id string) (*Period, error)
	FinalizePeriod(ctx context.Context, id string) (*Period, error)
	RecordsForPeriod(ctx context.Context, period *Period) ([]*Record, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{repo: repo, clock: clock}
}

// CreatePeriod は PENDING 状態の勤怠期間を作成します。
func (s *Service) CreatePeriod(ctx context.Context, start, end time.Time) (*Period, error) {
	start = DayOf(start)
	end = DayOf(end)

	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	now := s.clock.Now()
	return s.repo.CreatePeriod(ctx, &Period{
		StartDate: start,
		EndDate:   end,
		Status:    PeriodStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// GetPeriod は勤怠期間を取得します。
func (s *Service) GetPeriod(ctx context.Context, id string) (*Period, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidPeriodID
	}
	return s.repo.FindPeriod(ctx, id)
}

// FinalizePeriod は勤怠期間を確定します。確定済みの期間はエラーになります。
func (s *Service) FinalizePeriod(ctx context.Context, id string) (*Period, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidPeriodID
	}

	period, err := s.repo.FindPeriod(ctx, id)
	if err != nil {
		return nil, err
	}

	if period.Status == PeriodStatusFinalized {
		return nil, fmt.Errorf("period %s: %w", id, ErrPeriodFinalized)
	}

	period.Status = PeriodStatusFinalized
	period.UpdatedAt = s.clock.Now()

	return s.repo.UpdatePeriod(ctx, period)
}

// RecordsForPeriod は期間内の勤怠レコードを返します。
func (s *Service) RecordsForPeriod(ctx context.Context, period *Period) ([]*Record, error) {
	if period == nil {
		return nil, ErrPeriodNotFound
	}
	return s.repo.ListRecords(ctx, period.StartDate, period.EndDate)
}
