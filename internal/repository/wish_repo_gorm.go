package repository

import (
	"context"

	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
)

type gormWishRepository struct {
	db *gorm.DB
}

func NewGormWishRepository(db *gorm.DB) WishRepository {
	return &gormWishRepository{db: db}
}

func (r *gormWishRepository) Create(ctx context.Context, wish *model.Wish) error {
	return translateError(r.db.WithContext(ctx).Create(wish).Error)
}

func (r *gormWishRepository) GetByID(ctx context.Context, id uint) (*model.Wish, error) {
	var wish model.Wish
	if err := r.db.WithContext(ctx).Preload("Guest").First(&wish, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &wish, nil
}

func (r *gormWishRepository) List(ctx context.Context, approvedOnly bool) ([]model.Wish, error) {
	q := r.db.WithContext(ctx).Preload("Guest")
	if approvedOnly {
		q = q.Where("is_approved = ?", true)
	}
	var wishes []model.Wish
	if err := q.Order("created_at DESC").Order("id DESC").Find(&wishes).Error; err != nil {
		return nil, err
	}
	return wishes, nil
}

func (r *gormWishRepository) SetApproval(ctx context.Context, id uint, approved bool) (*model.Wish, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Wish{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *gormWishRepository) ApproveAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Wish{}).
		Where("is_approved = ?", false).
		Update("is_approved", true)
	return res.RowsAffected, res.Error
}

func (r *gormWishRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Wish{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormWishRepository) Count(ctx context.Context) (int64, int64, error) {
	var total, approved int64
	if err := r.db.WithContext(ctx).Model(&model.Wish{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).
		Model(&model.Wish{}).
		Where("is_approved = ?", true).
		Count(&approved).Error
	if err != nil {
		return 0, 0, err
	}
	return total, approved, nil
}
