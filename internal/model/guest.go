package model

import "time"

type GuestCategory string

const (
	GuestCategoryVIP     GuestCategory = "VIP"
	GuestCategoryRegular GuestCategory = "Regular"
)

func (c GuestCategory) Valid() bool {
	switch c {
	case GuestCategoryVIP, GuestCategoryRegular:
		return true
	}
	return false
}

type RSVPStatus string

const (
	RSVPStatusPending   RSVPStatus = "Pending"
	RSVPStatusComing    RSVPStatus = "Coming"
	RSVPStatusNotComing RSVPStatus = "Not Coming"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPStatusPending, RSVPStatusComing, RSVPStatusNotComing:
		return true
	}
	return false
}

// DefaultGiftType is recorded when a check-in does not name a gift.
const DefaultGiftType = "None"

// Column widths in characters. Input beyond them is rejected before it
// reaches the database.
const (
	MaxNameLength     = 255
	MaxPhoneLength    = 32
	MaxGiftTypeLength = 64
)

// Guest is keyed by ID, Slug and QRCodeString; Slug and QRCodeString are
// assigned on insert and never rewritten.
type Guest struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"type:varchar(255);not null" json:"name"`
	PhoneNumber  *string       `gorm:"type:varchar(32)" json:"phoneNumber"`
	Category     GuestCategory `gorm:"type:varchar(32);not null;default:'Regular';index" json:"category"`
	Slug         string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	QRCodeString string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"qrCodeString"`
	RSVPStatus   RSVPStatus    `gorm:"type:varchar(16);not null;default:'Pending';index" json:"rsvpStatus"`
	GuestCount   int           `gorm:"not null;default:1" json:"guestCount"`
	CheckInTime  *time.Time    `json:"checkInTime"`
	GiftType     *string       `gorm:"type:varchar(64)" json:"giftType"`
	CreatedAt    time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Wishes []Wish `gorm:"foreignKey:GuestID" json:"wishes,omitempty"`
}

func (Guest) TableName() string { return "guests" }

// CheckedIn reports whether the guest has been admitted.
func (g *Guest) CheckedIn() bool { return g.CheckInTime != nil }
