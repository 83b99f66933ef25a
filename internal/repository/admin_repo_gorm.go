package repository

import (
	"context"

	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
)

type gormAdminRepository struct {
	db *gorm.DB
}

func NewGormAdminRepository(db *gorm.DB) AdminRepository {
	return &gormAdminRepository{db: db}
}

func (r *gormAdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return translateError(r.db.WithContext(ctx).Create(admin).Error)
}

func (r *gormAdminRepository) GetByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}

func (r *gormAdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, translateError(err)
	}
	return &admin, nil
}
