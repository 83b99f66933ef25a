package repository

import (
	"context"

	"wedding/guesthub/internal/model"
)

type WishRepository interface {
	Create(ctx context.Context, wish *model.Wish) error
	GetByID(ctx context.Context, id uint) (*model.Wish, error)
	// List returns wishes newest first with the owning guest preloaded.
	List(ctx context.Context, approvedOnly bool) ([]model.Wish, error)
	SetApproval(ctx context.Context, id uint, approved bool) (*model.Wish, error)
	ApproveAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (total int64, approved int64, err error)
}
