package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

// GuestInput carries the admin-editable guest fields.
type GuestInput struct {
	Name        string
	PhoneNumber *string
	Category    model.GuestCategory
}

// GuestPatch is an admin edit. Nil Name or Category keeps the stored value;
// PhoneNumber is always written, so nil or blank clears it.
type GuestPatch struct {
	Name        *string
	PhoneNumber *string
	Category    *model.GuestCategory
}

// DashboardStats extends the guest counts with wish moderation counts.
type DashboardStats struct {
	repository.GuestStats
	TotalWishes    int64 `json:"totalWishes"`
	ApprovedWishes int64 `json:"approvedWishes"`
}

// ShareInfo is everything needed to send a guest their invitation.
type ShareInfo struct {
	Link        string `json:"link"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

type GuestService interface {
	Create(ctx context.Context, in GuestInput) (*model.Guest, error)
	// Get returns the guest with its wishes.
	Get(ctx context.Context, id uint) (*model.Guest, error)
	Update(ctx context.Context, id uint, patch GuestPatch) (*model.Guest, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repository.GuestFilter) ([]model.Guest, error)
	Stats(ctx context.Context) (*DashboardStats, error)
	InvitationLink(slug string) string
	Share(ctx context.Context, id uint) (*ShareInfo, error)
	QRCodePNG(ctx context.Context, id uint, size int) ([]byte, *model.Guest, error)
	ExportCSV(ctx context.Context, w io.Writer, ids []uint) error
}

// InvitationOptions configures generated links and WhatsApp numbers.
type InvitationOptions struct {
	PublicBaseURL    string
	PhoneCountryCode string
}

type guestService struct {
	guestRepo    repository.GuestRepository
	wishRepo     repository.WishRepository
	settingsRepo repository.EventSettingsRepository
	factory      *guestFactory
	invitation   InvitationOptions
	logger       *zap.Logger
}

func NewGuestService(
	guestRepo repository.GuestRepository,
	wishRepo repository.WishRepository,
	settingsRepo repository.EventSettingsRepository,
	identity IdentityOptions,
	invitation InvitationOptions,
	logger *zap.Logger,
) GuestService {
	return &guestService{
		guestRepo:    guestRepo,
		wishRepo:     wishRepo,
		settingsRepo: settingsRepo,
		factory:      newGuestFactory(guestRepo, identity, logger),
		invitation:   invitation,
		logger:       logger,
	}
}

func (s *guestService) Create(ctx context.Context, in GuestInput) (*model.Guest, error) {
	details, err := cleanGuestInput(in)
	if err != nil {
		return nil, err
	}
	guest := &model.Guest{
		Name:        details.Name,
		PhoneNumber: details.PhoneNumber,
		Category:    details.Category,
		RSVPStatus:  model.RSVPStatusPending,
		GuestCount:  1,
	}
	if err := s.factory.create(ctx, guest); err != nil {
		return nil, err
	}
	s.logger.Info("guest created", zap.Uint("guest_id", guest.ID), zap.String("slug", guest.Slug))
	return guest, nil
}

func (s *guestService) Get(ctx context.Context, id uint) (*model.Guest, error) {
	guest, err := s.guestRepo.GetByIDWithWishes(ctx, id)
	if err != nil {
		return nil, guestLookupError(err)
	}
	return guest, nil
}

func (s *guestService) Update(ctx context.Context, id uint, patch GuestPatch) (*model.Guest, error) {
	current, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, guestLookupError(err)
	}
	in := GuestInput{
		Name:        current.Name,
		PhoneNumber: patch.PhoneNumber,
		Category:    current.Category,
	}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Category != nil {
		in.Category = *patch.Category
	}

	details, err := cleanGuestInput(in)
	if err != nil {
		return nil, err
	}
	guest, err := s.guestRepo.UpdateDetails(ctx, id, details)
	if err != nil {
		return nil, guestLookupError(err)
	}
	return guest, nil
}

func (s *guestService) Delete(ctx context.Context, id uint) error {
	if err := s.guestRepo.Delete(ctx, id); err != nil {
		return guestLookupError(err)
	}
	s.logger.Info("guest deleted", zap.Uint("guest_id", id))
	return nil
}

func (s *guestService) List(ctx context.Context, filter repository.GuestFilter) ([]model.Guest, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, invalid("unknown category")
	}
	if filter.RSVPStatus != "" && !filter.RSVPStatus.Valid() {
		return nil, invalid("unknown rsvpStatus")
	}
	guests, err := s.guestRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return guests, nil
}

func (s *guestService) Stats(ctx context.Context) (*DashboardStats, error) {
	guestStats, err := s.guestRepo.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("guest stats: %w", err)
	}
	total, approved, err := s.wishRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("wish counts: %w", err)
	}
	return &DashboardStats{
		GuestStats:     *guestStats,
		TotalWishes:    total,
		ApprovedWishes: approved,
	}, nil
}

func (s *guestService) InvitationLink(slug string) string {
	return strings.TrimRight(s.invitation.PublicBaseURL, "/") + "/invite/" + slug
}

func cleanGuestInput(in GuestInput) (repository.GuestDetails, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.GuestDetails{}, invalid("name is required")
	}
	if err := checkLength("name", name, model.MaxNameLength); err != nil {
		return repository.GuestDetails{}, err
	}
	phone := trimmedOrNil(in.PhoneNumber)
	if phone != nil {
		if err := checkLength("phoneNumber", *phone, model.MaxPhoneLength); err != nil {
			return repository.GuestDetails{}, err
		}
	}
	category := in.Category
	if category == "" {
		category = model.GuestCategoryRegular
	}
	if !category.Valid() {
		return repository.GuestDetails{}, invalid("category must be VIP or Regular")
	}
	return repository.GuestDetails{
		Name:        name,
		PhoneNumber: phone,
		Category:    category,
	}, nil
}

func guestLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGuestNotFound
	}
	return err
}

var _ GuestService = (*guestService)(nil)
