package models

import (
	"time"
)

// Friendship is a relationship row between two users. While IsAccepted is
// false it is a directional pending request owned by the requester; once
// accepted it is treated as an undirected friends edge. At most one row may
// exist per unordered user pair, in either direction (enforced by a unique
// index on the normalized pair, see database.Connect).
type Friendship struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RequesterID uint      `gorm:"not null;index" json:"requester_id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient_id"`
	IsAccepted  bool      `gorm:"not null;default:false" json:"is_accepted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Recipient User `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}

// Involves reports whether the given user is either side of the relationship.
func (f *Friendship) Involves(userID uint) bool {
	return f.RequesterID == userID || f.RecipientID == userID
}

// OtherSide returns the user id on the opposite side of the relationship.
func (f *Friendship) OtherSide(userID uint) uint {
	if f.RequesterID == userID {
		return f.RecipientID
	}
	return f.RequesterID
}
