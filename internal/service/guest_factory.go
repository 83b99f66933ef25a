package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/pkg/ident"
)

const (
	defaultMaxCreateAttempts = 5
)

// IdentityOptions controls identifier allocation for new guests.
type IdentityOptions struct {
	QRLength    int
	MaxAttempts int
}

func (o IdentityOptions) normalized() IdentityOptions {
	if o.QRLength <= 0 {
		o.QRLength = ident.DefaultQRLength
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxCreateAttempts
	}
	return o
}

// guestFactory inserts guests with freshly generated slug and QR token,
// relying on the directory's unique constraints to detect collisions.
type guestFactory struct {
	guests  repository.GuestRepository
	opts    IdentityOptions
	logger  *zap.Logger
	newSlug func(name string) string
	newQR   func(n int) (string, error)
}

func newGuestFactory(guests repository.GuestRepository, opts IdentityOptions, logger *zap.Logger) *guestFactory {
	return &guestFactory{
		guests:  guests,
		opts:    opts.normalized(),
		logger:  logger,
		newSlug: ident.GenerateSlug,
		newQR:   ident.GenerateQRStringN,
	}
}

// create inserts guest, regenerating both identifiers after every conflict.
func (f *guestFactory) create(ctx context.Context, guest *model.Guest) error {
	for attempt := 1; attempt <= f.opts.MaxAttempts; attempt++ {
		qr, err := f.newQR(f.opts.QRLength)
		if err != nil {
			return fmt.Errorf("generate qr token: %w", err)
		}
		guest.ID = 0
		guest.Slug = f.newSlug(guest.Name)
		guest.QRCodeString = qr

		err = f.guests.Create(ctx, guest)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			return fmt.Errorf("create guest: %w", err)
		}
		f.logger.Warn("guest identifier collision",
			zap.Int("attempt", attempt),
			zap.String("slug", guest.Slug),
		)
	}
	return ErrIdentifierExhausted
}

// findOrCreate derives a slug from the guest name once and inserts. When the
// insert conflicts and a guest with that slug now exists, that guest is
// returned with created=false. Otherwise the QR token collided and only the
// token is regenerated.
func (f *guestFactory) findOrCreate(ctx context.Context, guest *model.Guest) (*model.Guest, bool, error) {
	slug := f.newSlug(guest.Name)
	for attempt := 1; attempt <= f.opts.MaxAttempts; attempt++ {
		qr, err := f.newQR(f.opts.QRLength)
		if err != nil {
			return nil, false, fmt.Errorf("generate qr token: %w", err)
		}
		guest.ID = 0
		guest.Slug = slug
		guest.QRCodeString = qr

		err = f.guests.Create(ctx, guest)
		if err == nil {
			return guest, true, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			return nil, false, fmt.Errorf("create guest: %w", err)
		}

		existing, lookupErr := f.guests.GetBySlug(ctx, slug)
		if lookupErr == nil {
			return existing, false, nil
		}
		if !errors.Is(lookupErr, repository.ErrNotFound) {
			return nil, false, fmt.Errorf("get guest by slug: %w", lookupErr)
		}
		f.logger.Warn("qr token collision",
			zap.Int("attempt", attempt),
			zap.String("slug", slug),
		)
	}
	return nil, false, ErrIdentifierExhausted
}
