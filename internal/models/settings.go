package models

import (
	"time"
)

// Settings represents the settings table. A single published row holds
// the global defaults; updating creates the next revision.
type Settings struct {
	ID                     uint       `json:"id" gorm:"primarykey"`
	CurrentBillingMonth    string     `json:"current_billing_month" gorm:"column:current_billing_month"`
	NextBillingMonth       string     `json:"next_billing_month" gorm:"column:next_billing_month"`
	WiFiMonthlyCharge      int64      `json:"wifi_monthly_charge" gorm:"column:wifi_monthly_charge"`
	SecurityDepositDefault int64      `json:"security_deposit_default" gorm:"column:security_deposit_default"`
	AdminPhones            string     `json:"admin_phones" gorm:"column:admin_phones"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	PublishedAt            *time.Time `json:"published_at"`
	UpdatedByID            *int       `json:"updated_by_id"`
}

// TableName sets the insert table name for Settings
func (Settings) TableName() string {
	return "settings"
}
