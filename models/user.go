package models

import "time"

// User is a staff login account for the office. There are no roles: anyone
// with an account can operate every screen.
type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Usr    string `gorm:"size:255;uniqueIndex;not null" json:"usr"`
	Psswrd string `gorm:"size:255;not null" json:"-"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
