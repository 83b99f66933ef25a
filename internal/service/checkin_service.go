package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/pkg/ident"
)

const maxQRCodeInput = 64

// GuestSummary is shown to the door operator after a scan.
type GuestSummary struct {
	ID          uint                `json:"id"`
	Name        string              `json:"name"`
	Category    model.GuestCategory `json:"category"`
	RSVPStatus  model.RSVPStatus    `json:"rsvpStatus"`
	GuestCount  int                 `json:"guestCount"`
	CheckInTime *time.Time          `json:"checkInTime"`
	GiftType    *string             `json:"giftType"`
}

type CheckInResult struct {
	Guest            *model.Guest
	AlreadyCheckedIn bool
}

type CheckInService interface {
	// Validate resolves a scanned or typed QR token without side effects.
	Validate(ctx context.Context, qrCodeString string) (*GuestSummary, error)
	// Commit admits a guest. Repeat commits keep the first check-in time.
	Commit(ctx context.Context, guestID uint, giftType string) (*CheckInResult, error)
}

type checkInService struct {
	guestRepo repository.GuestRepository
	logger    *zap.Logger
	now       func() time.Time
}

func NewCheckInService(guestRepo repository.GuestRepository, logger *zap.Logger) CheckInService {
	return &checkInService{
		guestRepo: guestRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *checkInService) Validate(ctx context.Context, qrCodeString string) (*GuestSummary, error) {
	code := ident.NormalizeQRString(qrCodeString)
	if code == "" {
		return nil, invalid("qrCodeString is required")
	}
	if len(code) > maxQRCodeInput || !ident.HasQRAlphabet(code) {
		return nil, ErrInvalidQRCode
	}

	guest, err := s.guestRepo.GetByQRCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidQRCode
		}
		return nil, fmt.Errorf("get guest by qr code: %w", err)
	}
	return summarize(guest), nil
}

func (s *checkInService) Commit(ctx context.Context, guestID uint, giftType string) (*CheckInResult, error) {
	if guestID == 0 {
		return nil, invalid("guestId is required")
	}
	giftType = strings.TrimSpace(giftType)
	if err := checkLength("giftType", giftType, model.MaxGiftTypeLength); err != nil {
		return nil, err
	}

	guest, already, err := s.guestRepo.CheckIn(ctx, guestID, giftType, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("check in guest: %w", err)
	}

	s.logger.Info("guest checked in",
		zap.Uint("guest_id", guest.ID),
		zap.Bool("repeat", already),
	)
	return &CheckInResult{Guest: guest, AlreadyCheckedIn: already}, nil
}

func summarize(g *model.Guest) *GuestSummary {
	return &GuestSummary{
		ID:          g.ID,
		Name:        g.Name,
		Category:    g.Category,
		RSVPStatus:  g.RSVPStatus,
		GuestCount:  g.GuestCount,
		CheckInTime: g.CheckInTime,
		GiftType:    g.GiftType,
	}
}

var _ CheckInService = (*checkInService)(nil)
