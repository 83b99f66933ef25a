package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/pkg/phone"
)

const (
	DefaultQRImageSize = 300
	minQRImageSize     = 64
	maxQRImageSize     = 1024

	DefaultShareTemplate = "Hello {name}, you are invited to our wedding. Details: {link}"

	csvTimeLayout = "2006-01-02 15:04:05"
)

var csvHeader = []string{
	"Name", "Phone", "Category", "RSVP Status", "Guest Count", "Check-in", "Gift", "Invitation Link",
}

func (s *guestService) Share(ctx context.Context, id uint) (*ShareInfo, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, guestLookupError(err)
	}

	template := DefaultShareTemplate
	settings, err := s.settingsRepo.Get(ctx)
	switch {
	case err == nil:
		if strings.TrimSpace(settings.WATemplateMsg) != "" {
			template = settings.WATemplateMsg
		}
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, fmt.Errorf("get event settings: %w", err)
	}

	link := s.InvitationLink(guest.Slug)
	info := &ShareInfo{
		Link:    link,
		Message: RenderShareMessage(template, guest.Name, link),
	}
	if guest.PhoneNumber != nil && *guest.PhoneNumber != "" {
		number := phone.ForWhatsApp(*guest.PhoneNumber, s.invitation.PhoneCountryCode)
		if number != "" {
			info.WhatsAppURL = "https://wa.me/" + number + "?text=" +
				strings.ReplaceAll(url.QueryEscape(info.Message), "+", "%20")
		}
	}
	return info, nil
}

// RenderShareMessage fills the {nama}/{name} and {link} placeholders.
func RenderShareMessage(template, name, link string) string {
	return strings.NewReplacer(
		"{nama}", name,
		"{name}", name,
		"{link}", link,
	).Replace(template)
}

// QRCodePNG renders the guest's QR token. size is clamped to a sane range;
// zero selects the default.
func (s *guestService) QRCodePNG(ctx context.Context, id uint, size int) ([]byte, *model.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, guestLookupError(err)
	}
	switch {
	case size == 0:
		size = DefaultQRImageSize
	case size < minQRImageSize:
		size = minQRImageSize
	case size > maxQRImageSize:
		size = maxQRImageSize
	}
	png, err := qrcode.Encode(guest.QRCodeString, qrcode.Medium, size)
	if err != nil {
		return nil, nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, guest, nil
}

// ExportCSV writes the guest list, restricted to ids when given.
func (s *guestService) ExportCSV(ctx context.Context, w io.Writer, ids []uint) error {
	guests, err := s.guestRepo.List(ctx, repository.GuestFilter{IDs: ids})
	if err != nil {
		return fmt.Errorf("list guests: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range guests {
		g := &guests[i]
		var phoneNumber, checkIn, gift string
		if g.PhoneNumber != nil {
			phoneNumber = *g.PhoneNumber
		}
		if g.CheckInTime != nil {
			checkIn = g.CheckInTime.Format(csvTimeLayout)
		}
		if g.GiftType != nil {
			gift = *g.GiftType
		}
		record := []string{
			g.Name,
			phoneNumber,
			string(g.Category),
			string(g.RSVPStatus),
			strconv.Itoa(g.GuestCount),
			checkIn,
			gift,
			s.InvitationLink(g.Slug),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
