package model

import "time"

// EventSettingsID is the primary key of the single event_settings row.
const EventSettingsID uint = 1

type EventSettings struct {
	ID            uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Partner1Name  string    `gorm:"type:varchar(128)" json:"partner1Name"`
	Partner2Name  string    `gorm:"type:varchar(128)" json:"partner2Name"`
	Tagline       string    `gorm:"type:varchar(255)" json:"tagline"`
	EventDate     time.Time `json:"eventDate"`
	StartTime     string    `gorm:"type:varchar(8)" json:"startTime"`
	EndTime       string    `gorm:"type:varchar(8)" json:"endTime"`
	VenueName     string    `gorm:"type:varchar(255)" json:"venueName"`
	VenueAddress  string    `gorm:"type:varchar(512)" json:"venueAddress"`
	MapLinkURL    string    `gorm:"type:varchar(1024)" json:"mapLinkUrl"`
	WATemplateMsg string    `gorm:"type:text" json:"waTemplateMsg"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (EventSettings) TableName() string { return "event_settings" }
