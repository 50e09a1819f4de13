package models

import "time"

// OrganizationIdentity is the fixed primary key of the singleton
// organization_info row.
const OrganizationIdentity uint = 1

// OrganizationInfo is the singleton business profile shown on public pages.
type OrganizationInfo struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:200;not null" json:"name"`
	Address         string `gorm:"size:500" json:"address"`
	Phone           string `gorm:"size:20" json:"phone"`
	Email           string `gorm:"size:255" json:"email"`
	Description     string `gorm:"size:2000" json:"description,omitempty"`
	EstablishedYear string `gorm:"size:4" json:"established_year,omitempty"`
	LicenseNumber   string `gorm:"size:50" json:"license_number,omitempty"`
	Website         string `gorm:"size:255" json:"website,omitempty"`
	LogoPath        string `gorm:"size:500" json:"logo_path,omitempty"`

	MondayHours    string `gorm:"size:50" json:"monday_hours,omitempty"`
	TuesdayHours   string `gorm:"size:50" json:"tuesday_hours,omitempty"`
	WednesdayHours string `gorm:"size:50" json:"wednesday_hours,omitempty"`
	ThursdayHours  string `gorm:"size:50" json:"thursday_hours,omitempty"`
	FridayHours    string `gorm:"size:50" json:"friday_hours,omitempty"`
	SaturdayHours  string `gorm:"size:50" json:"saturday_hours,omitempty"`
	SundayHours    string `gorm:"size:50" json:"sunday_hours,omitempty"`

	FacebookURL  string `gorm:"size:255" json:"facebook_url,omitempty"`
	TwitterURL   string `gorm:"size:255" json:"twitter_url,omitempty"`
	LinkedinURL  string `gorm:"size:255" json:"linkedin_url,omitempty"`
	InstagramURL string `gorm:"size:255" json:"instagram_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrganizationInfo) TableName() string { return "organization_info" }

// DefaultOrganizationInfo is the hardcoded fallback profile returned when the
// singleton row has not been created yet.
func DefaultOrganizationInfo() *OrganizationInfo {
	return &OrganizationInfo{
		ID:              OrganizationIdentity,
		Name:            "RS FINANCE SERVICE",
		Address:         "Nutunhat, Near Indian Oil Petrol Pump, West Bengal",
		Phone:           "8391808557",
		Email:           "info@rsfinanceservice.com",
		Description:     "RS Finance Service is a trusted financial services provider offering comprehensive loan solutions for individuals and businesses.",
		EstablishedYear: "2019",
		LicenseNumber:   "NBFC-MFI-2019-001",
		Website:         "www.rsfinanceservice.com",
	}
}
