package staff

import "context"

// Repository は従業員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, s *Staff) (*Staff, error)
	Update(ctx context.Context, s *Staff) (*Staff, error)
	FindByID(ctx context.Context, id string) (*Staff, error)
	FindByCode(ctx context.Context, code string) (*Staff, error)
	List(ctx context.Context, filter ListFilter) ([]*Staff, error)
}

// ListFilter は一覧取得用フィルタです。
type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}
