package model

import "time"

type Wish struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GuestID    uint      `gorm:"not null;index" json:"guestId"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	IsApproved bool      `gorm:"not null;default:false;index" json:"isApproved"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`

	Guest *Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

func (Wish) TableName() string { return "wishes" }
