package models

import "time"

// ContactMessage is a visitor-submitted inquiry from the contact page.
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	Subject   string    `gorm:"size:200;not null" json:"subject"`
	Message   string    `gorm:"size:2000;not null" json:"message"`
	IsRead    bool      `gorm:"default:false;index" json:"is_read"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }
