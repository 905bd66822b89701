package models

import (
	"time"
)

// AdminSettingsID is the fixed primary key of the single settings row.
const AdminSettingsID uint64 = 1

// AdminSettings is the single-row record holding the site owner profile and
// notification preferences. It is upserted as a whole on every save.
type AdminSettings struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255" json:"name"`
	Email    string `gorm:"size:255" json:"email"`
	Bio      string `gorm:"type:text" json:"bio"`
	Location string `gorm:"size:255" json:"location"`
	Website  string `gorm:"size:500" json:"website"`

	// Notification flags normalize to true/false, never null.
	EmailNotifications bool `gorm:"not null;default:false" json:"email_notifications"`
	PushNotifications  bool `gorm:"not null;default:false" json:"push_notifications"`
	WeeklyDigest       bool `gorm:"not null;default:false" json:"weekly_digest"`
	SecurityAlerts     bool `gorm:"not null;default:false" json:"security_alerts"`

	UpdatedAt time.Time `json:"updated_at"`
}
