package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"wedding/guesthub/internal/model"
)

type gormGuestRepository struct {
	db *gorm.DB
}

func NewGormGuestRepository(db *gorm.DB) GuestRepository {
	return &gormGuestRepository{db: db}
}

func (r *gormGuestRepository) Create(ctx context.Context, guest *model.Guest) error {
	return translateError(r.db.WithContext(ctx).Create(guest).Error)
}

func (r *gormGuestRepository) GetByID(ctx context.Context, id uint) (*model.Guest, error) {
	var guest model.Guest
	if err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &guest, nil
}

func (r *gormGuestRepository) GetByIDWithWishes(ctx context.Context, id uint) (*model.Guest, error) {
	var guest model.Guest
	err := r.db.WithContext(ctx).
		Preload("Wishes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&guest, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &guest, nil
}

func (r *gormGuestRepository) GetBySlug(ctx context.Context, slug string) (*model.Guest, error) {
	var guest model.Guest
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&guest).Error; err != nil {
		return nil, translateError(err)
	}
	return &guest, nil
}

func (r *gormGuestRepository) GetByQRCode(ctx context.Context, qrCode string) (*model.Guest, error) {
	var guest model.Guest
	if err := r.db.WithContext(ctx).Where("qr_code_string = ?", qrCode).First(&guest).Error; err != nil {
		return nil, translateError(err)
	}
	return &guest, nil
}

func (r *gormGuestRepository) UpdateRSVP(ctx context.Context, id uint, update RSVPUpdate) (*model.Guest, error) {
	values := map[string]interface{}{
		"rsvp_status": string(update.Status),
		"guest_count": update.GuestCount,
	}
	if update.PhoneNumber != nil {
		values["phone_number"] = *update.PhoneNumber
	}
	return r.updateAndReload(ctx, id, values)
}

func (r *gormGuestRepository) UpdateDetails(ctx context.Context, id uint, details GuestDetails) (*model.Guest, error) {
	return r.updateAndReload(ctx, id, map[string]interface{}{
		"name":         details.Name,
		"phone_number": details.PhoneNumber,
		"category":     string(details.Category),
	})
}

// CheckIn stamps the check-in time only if it is still empty, so the first
// arrival time survives repeated commits. The conditional UPDATE is what
// decides the returned already flag: it touches a row only for the first
// check-in. The gift type is overwritten when one is given and otherwise
// defaults to model.DefaultGiftType.
func (r *gormGuestRepository) CheckIn(ctx context.Context, id uint, giftType string, at time.Time) (*model.Guest, bool, error) {
	gift := interface{}(gorm.Expr("COALESCE(gift_type, ?)", model.DefaultGiftType))
	if giftType != "" {
		gift = giftType
	}

	res := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ? AND check_in_time IS NULL", id).
		Updates(map[string]interface{}{
			"check_in_time": at,
			"gift_type":     gift,
		})
	if res.Error != nil {
		return nil, false, translateError(res.Error)
	}
	if res.RowsAffected == 1 {
		guest, err := r.GetByID(ctx, id)
		return guest, false, err
	}

	// Already checked in, or no such guest; the reload tells them apart.
	guest, err := r.updateAndReload(ctx, id, map[string]interface{}{"gift_type": gift})
	if err != nil {
		return nil, false, err
	}
	return guest, true, nil
}

// updateAndReload issues a single UPDATE and reads the row back. The read
// doubles as the existence check since MySQL reports zero affected rows for
// no-op updates.
func (r *gormGuestRepository) updateAndReload(ctx context.Context, id uint, values map[string]interface{}) (*model.Guest, error) {
	err := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Where("id = ?", id).
		Updates(values).Error
	if err != nil {
		return nil, translateError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the guest together with its wishes.
func (r *gormGuestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id = ?", id).Delete(&model.Wish{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Guest{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *gormGuestRepository) List(ctx context.Context, filter GuestFilter) ([]model.Guest, error) {
	q := r.db.WithContext(ctx).Model(&model.Guest{})
	if filter.Category != "" {
		q = q.Where("category = ?", string(filter.Category))
	}
	if filter.RSVPStatus != "" {
		q = q.Where("rsvp_status = ?", string(filter.RSVPStatus))
	}
	if filter.CheckedIn != nil {
		if *filter.CheckedIn {
			q = q.Where("check_in_time IS NOT NULL")
		} else {
			q = q.Where("check_in_time IS NULL")
		}
	}
	if s := strings.TrimSpace(filter.Query); s != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if len(filter.IDs) > 0 {
		q = q.Where("id IN ?", filter.IDs)
	}

	var guests []model.Guest
	if err := q.Order("created_at DESC").Order("id DESC").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

func (r *gormGuestRepository) Stats(ctx context.Context) (*GuestStats, error) {
	var stats GuestStats
	err := r.db.WithContext(ctx).
		Model(&model.Guest{}).
		Select(
			"COUNT(*) AS total_guests, "+
				"COALESCE(SUM(CASE WHEN category = ? THEN 1 ELSE 0 END), 0) AS vip_guests, "+
				"COALESCE(SUM(CASE WHEN category = ? THEN 1 ELSE 0 END), 0) AS regular_guests, "+
				"COALESCE(SUM(CASE WHEN rsvp_status = ? THEN 1 ELSE 0 END), 0) AS rsvp_coming, "+
				"COALESCE(SUM(CASE WHEN rsvp_status = ? THEN 1 ELSE 0 END), 0) AS rsvp_not_coming, "+
				"COALESCE(SUM(CASE WHEN rsvp_status = ? THEN 1 ELSE 0 END), 0) AS rsvp_pending, "+
				"COALESCE(SUM(CASE WHEN check_in_time IS NOT NULL THEN 1 ELSE 0 END), 0) AS checked_in, "+
				"COALESCE(SUM(CASE WHEN rsvp_status = ? THEN guest_count ELSE 0 END), 0) AS expected_people",
			string(model.GuestCategoryVIP),
			string(model.GuestCategoryRegular),
			string(model.RSVPStatusComing),
			string(model.RSVPStatusNotComing),
			string(model.RSVPStatusPending),
			string(model.RSVPStatusComing),
		).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
