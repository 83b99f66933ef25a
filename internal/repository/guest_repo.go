package repository

import (
	"context"
	"time"

	"wedding/guesthub/internal/model"
)

type GuestFilter struct {
	Category   model.GuestCategory
	RSVPStatus model.RSVPStatus
	CheckedIn  *bool
	Query      string
	IDs        []uint
}

type RSVPUpdate struct {
	Status     model.RSVPStatus
	GuestCount int
	// PhoneNumber is written only when non-nil.
	PhoneNumber *string
}

type GuestDetails struct {
	Name        string
	PhoneNumber *string
	Category    model.GuestCategory
}

// GuestStats columns are tagged explicitly: the default naming strategy
// would map VIPGuests to v_ip_guests.
type GuestStats struct {
	TotalGuests    int64 `gorm:"column:total_guests" json:"totalGuests"`
	VIPGuests      int64 `gorm:"column:vip_guests" json:"vipGuests"`
	RegularGuests  int64 `gorm:"column:regular_guests" json:"regularGuests"`
	RSVPComing     int64 `gorm:"column:rsvp_coming" json:"rsvpComing"`
	RSVPNotComing  int64 `gorm:"column:rsvp_not_coming" json:"rsvpNotComing"`
	RSVPPending    int64 `gorm:"column:rsvp_pending" json:"rsvpPending"`
	CheckedIn      int64 `gorm:"column:checked_in" json:"checkedIn"`
	ExpectedPeople int64 `gorm:"column:expected_people" json:"expectedPeople"`
}

// GuestRepository is the guest directory. Lookups return ErrNotFound on a
// miss; Create returns ErrConflict when the slug or QR token is taken.
// CheckIn reports whether the guest had already been checked in before the
// call, decided by the same statement that stamps the first check-in.
type GuestRepository interface {
	Create(ctx context.Context, guest *model.Guest) error
	GetByID(ctx context.Context, id uint) (*model.Guest, error)
	GetByIDWithWishes(ctx context.Context, id uint) (*model.Guest, error)
	GetBySlug(ctx context.Context, slug string) (*model.Guest, error)
	GetByQRCode(ctx context.Context, qrCode string) (*model.Guest, error)
	UpdateRSVP(ctx context.Context, id uint, update RSVPUpdate) (*model.Guest, error)
	UpdateDetails(ctx context.Context, id uint, details GuestDetails) (*model.Guest, error)
	CheckIn(ctx context.Context, id uint, giftType string, at time.Time) (*model.Guest, bool, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter GuestFilter) ([]model.Guest, error)
	Stats(ctx context.Context) (*GuestStats, error)
}
