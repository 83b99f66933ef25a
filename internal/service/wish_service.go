package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

const MaxWishLength = 1000

// SubmittedWish is returned to the public form after a wish is stored.
type SubmittedWish struct {
	ID        uint      `json:"id"`
	GuestName string    `json:"guestName"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type WishAuthor struct {
	Name string `json:"name"`
}

// WishView is a wish as listed on the wall or the moderation page.
type WishView struct {
	ID         uint       `json:"id"`
	GuestID    uint       `json:"guestId"`
	Message    string     `json:"message"`
	IsApproved bool       `json:"isApproved"`
	CreatedAt  time.Time  `json:"createdAt"`
	Guest      WishAuthor `json:"guest"`
}

type WishService interface {
	Submit(ctx context.Context, name, message string) (*SubmittedWish, error)
	// List returns approved wishes only unless all is set.
	List(ctx context.Context, all bool) ([]WishView, error)
	SetApproval(ctx context.Context, id uint, approved bool) (*WishView, error)
	ApproveAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type wishService struct {
	wishRepo repository.WishRepository
	factory  *guestFactory
	logger   *zap.Logger
}

func NewWishService(wishRepo repository.WishRepository, guestRepo repository.GuestRepository, opts IdentityOptions, logger *zap.Logger) WishService {
	return &wishService{
		wishRepo: wishRepo,
		factory:  newGuestFactory(guestRepo, opts, logger),
		logger:   logger,
	}
}

func (s *wishService) Submit(ctx context.Context, name, message string) (*SubmittedWish, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return nil, invalid("name and message are required")
	}
	if err := checkLength("name", name, model.MaxNameLength); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(message) > MaxWishLength {
		return nil, invalid(fmt.Sprintf("message must be at most %d characters", MaxWishLength))
	}

	guest, _, err := s.factory.findOrCreate(ctx, &model.Guest{
		Name:       name,
		Category:   model.GuestCategoryRegular,
		RSVPStatus: model.RSVPStatusPending,
		GuestCount: 1,
	})
	if err != nil {
		return nil, err
	}

	wish := &model.Wish{GuestID: guest.ID, Message: message}
	if err := s.wishRepo.Create(ctx, wish); err != nil {
		return nil, fmt.Errorf("create wish: %w", err)
	}
	s.logger.Info("wish submitted", zap.Uint("wish_id", wish.ID), zap.Uint("guest_id", guest.ID))

	return &SubmittedWish{
		ID:        wish.ID,
		GuestName: guest.Name,
		Message:   wish.Message,
		CreatedAt: wish.CreatedAt,
	}, nil
}

func (s *wishService) List(ctx context.Context, all bool) ([]WishView, error) {
	wishes, err := s.wishRepo.List(ctx, !all)
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}
	views := make([]WishView, 0, len(wishes))
	for i := range wishes {
		views = append(views, wishView(&wishes[i]))
	}
	return views, nil
}

func (s *wishService) SetApproval(ctx context.Context, id uint, approved bool) (*WishView, error) {
	wish, err := s.wishRepo.SetApproval(ctx, id, approved)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWishNotFound
		}
		return nil, fmt.Errorf("set wish approval: %w", err)
	}
	view := wishView(wish)
	return &view, nil
}

func (s *wishService) ApproveAll(ctx context.Context) (int64, error) {
	n, err := s.wishRepo.ApproveAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("approve wishes: %w", err)
	}
	return n, nil
}

func (s *wishService) Delete(ctx context.Context, id uint) error {
	if err := s.wishRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWishNotFound
		}
		return fmt.Errorf("delete wish: %w", err)
	}
	return nil
}

func wishView(w *model.Wish) WishView {
	v := WishView{
		ID:         w.ID,
		GuestID:    w.GuestID,
		Message:    w.Message,
		IsApproved: w.IsApproved,
		CreatedAt:  w.CreatedAt,
	}
	if w.Guest != nil {
		v.Guest.Name = w.Guest.Name
	}
	return v
}

var _ WishService = (*wishService)(nil)
