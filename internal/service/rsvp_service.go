package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
)

// RSVPInput is a public RSVP submission. Slug identifies an invited guest;
// without it Name is used to find or create one.
type RSVPInput struct {
	Slug        string
	Name        string
	PhoneNumber *string
	RSVPStatus  model.RSVPStatus
	GuestCount  *int
}

// PublicGuest is the guest projection exposed to unauthenticated callers.
type PublicGuest struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Slug       string           `json:"slug"`
	RSVPStatus model.RSVPStatus `json:"rsvpStatus"`
	GuestCount int              `json:"guestCount"`
}

type RSVPResult struct {
	Guest   PublicGuest
	Created bool
}

// Invitation is what a personalized invitation page renders.
type Invitation struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Slug         string              `json:"slug"`
	Category     model.GuestCategory `json:"category"`
	RSVPStatus   model.RSVPStatus    `json:"rsvpStatus"`
	GuestCount   int                 `json:"guestCount"`
	QRCodeString string              `json:"qrCodeString"`
	CheckedIn    bool                `json:"checkedIn"`
}

type RSVPService interface {
	Submit(ctx context.Context, in RSVPInput) (*RSVPResult, error)
	Invitation(ctx context.Context, slug string) (*Invitation, error)
}

type rsvpService struct {
	guestRepo repository.GuestRepository
	factory   *guestFactory
	logger    *zap.Logger
}

func NewRSVPService(guestRepo repository.GuestRepository, opts IdentityOptions, logger *zap.Logger) RSVPService {
	return &rsvpService{
		guestRepo: guestRepo,
		factory:   newGuestFactory(guestRepo, opts, logger),
		logger:    logger,
	}
}

func (s *rsvpService) Submit(ctx context.Context, in RSVPInput) (*RSVPResult, error) {
	if !in.RSVPStatus.Valid() {
		return nil, invalid("rsvpStatus must be one of Coming, Not Coming, Pending")
	}
	slug := strings.TrimSpace(in.Slug)
	name := strings.TrimSpace(in.Name)
	if slug == "" && name == "" {
		return nil, invalid("name is required")
	}
	if err := checkLength("name", name, model.MaxNameLength); err != nil {
		return nil, err
	}
	phone := trimmedOrNil(in.PhoneNumber)
	if phone != nil {
		if err := checkLength("phoneNumber", *phone, model.MaxPhoneLength); err != nil {
			return nil, err
		}
	}

	count := 1
	if in.GuestCount != nil {
		if *in.GuestCount < 0 {
			return nil, invalid("guestCount must not be negative")
		}
		if *in.GuestCount > 0 {
			count = *in.GuestCount
		}
	}

	update := repository.RSVPUpdate{
		Status:      in.RSVPStatus,
		GuestCount:  count,
		PhoneNumber: phone,
	}

	if slug != "" {
		existing, err := s.guestRepo.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrGuestNotFound
			}
			return nil, fmt.Errorf("get guest by slug: %w", err)
		}
		guest, err := s.guestRepo.UpdateRSVP(ctx, existing.ID, update)
		if err != nil {
			return nil, fmt.Errorf("update rsvp: %w", err)
		}
		return &RSVPResult{Guest: publicGuest(guest)}, nil
	}

	guest, created, err := s.factory.findOrCreate(ctx, &model.Guest{
		Name:        name,
		PhoneNumber: update.PhoneNumber,
		Category:    model.GuestCategoryRegular,
		RSVPStatus:  in.RSVPStatus,
		GuestCount:  count,
	})
	if err != nil {
		return nil, err
	}
	if !created {
		guest, err = s.guestRepo.UpdateRSVP(ctx, guest.ID, update)
		if err != nil {
			return nil, fmt.Errorf("update rsvp: %w", err)
		}
	}

	s.logger.Info("rsvp recorded",
		zap.Uint("guest_id", guest.ID),
		zap.String("status", string(guest.RSVPStatus)),
		zap.Bool("created", created),
	)
	return &RSVPResult{Guest: publicGuest(guest), Created: created}, nil
}

func (s *rsvpService) Invitation(ctx context.Context, slug string) (*Invitation, error) {
	guest, err := s.guestRepo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("get guest by slug: %w", err)
	}
	return &Invitation{
		ID:           guest.ID,
		Name:         guest.Name,
		Slug:         guest.Slug,
		Category:     guest.Category,
		RSVPStatus:   guest.RSVPStatus,
		GuestCount:   guest.GuestCount,
		QRCodeString: guest.QRCodeString,
		CheckedIn:    guest.CheckedIn(),
	}, nil
}

func publicGuest(g *model.Guest) PublicGuest {
	return PublicGuest{
		ID:         g.ID,
		Name:       g.Name,
		Slug:       g.Slug,
		RSVPStatus: g.RSVPStatus,
		GuestCount: g.GuestCount,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

var _ RSVPService = (*rsvpService)(nil)
