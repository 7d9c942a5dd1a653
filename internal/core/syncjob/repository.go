package syncjob

import (
	"context"
	"time"
)

// Repository は同期ジョブ永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, job *Job) (*Job, error)
	Update(ctx context.Context, job *Job) (*Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)

	// MarkRunning は PENDING のジョブを RUNNING へ原子的に遷移させます。
	// 状態遷移は単調であるため、PENDING 以外のジョブには ErrJobNotPending を
	// 返し、呼び出し側の古いスナップショットで上書きさせません。
	MarkRunning(ctx context.Context, id string, startedAt time.Time) (*Job, error)
	// CancelPending は PENDING のジョブを CANCELLED へ原子的に遷移させます。
	// PENDING 以外のジョブには ErrJobNotPending を返します。
	CancelPending(ctx context.Context, id string, finishedAt time.Time) (*Job, error)

	// ListRecent は新しい順にジョブを返します。
	ListRecent(ctx context.Context, limit int) ([]*Job, error)
	// ListDue は実行時刻を迎えた SCHEDULED かつ PENDING のジョブを返します。
	ListDue(ctx context.Context, now time.Time) ([]*Job, error)
	// ListUpcoming は now より後に予定されたジョブを近い順に返します。
	ListUpcoming(ctx context.Context, now time.Time, limit int) ([]*Job, error)
	CountByStatus(ctx context.Context) (map[JobStatus]int, error)
}
