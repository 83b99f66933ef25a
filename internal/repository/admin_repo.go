package repository

import (
	"context"

	"wedding/guesthub/internal/model"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	GetByID(ctx context.Context, id uint) (*model.Admin, error)
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}
