package models

import "time"

// SystemLog is one diagnostic or audit row. Written by the audit middleware
// for staff mutations and by services for notable events.
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Level     string    `gorm:"size:10;index" json:"level"` // info, warning, error
	Module    string    `gorm:"size:50;index" json:"module"`
	Action    string    `gorm:"size:100" json:"action"`
	Message   string    `gorm:"size:1000" json:"message"`
	AdminID   *uint     `gorm:"index" json:"admin_id,omitempty"`
	IP        string    `gorm:"size:45" json:"ip,omitempty"`
	UserAgent string    `gorm:"size:500" json:"user_agent,omitempty"`
	Extra     string    `gorm:"size:4000" json:"extra,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (SystemLog) TableName() string { return "system_logs" }
