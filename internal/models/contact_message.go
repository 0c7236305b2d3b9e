package models

import (
	"time"
)

// ContactMessage represents a contact form submission stored in the database
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	IPAddress *string   `gorm:"size:45" json:"ip_address"`
}

// TableName specifies the table name for ContactMessage
func (ContactMessage) TableName() string {
	return "contact_messages"
}
