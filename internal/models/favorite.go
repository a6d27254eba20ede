package models

import (
	"time"
)

// Favorite is the "user liked this movie" edge. The composite primary key
// makes a duplicate like impossible at the storage level.
type Favorite struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	MovieID   uint      `gorm:"primaryKey;autoIncrement:false" json:"movie_id"`
	CreatedAt time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Movie Movie `gorm:"foreignKey:MovieID" json:"-"`
}

// TableName specifies the table name for GORM
func (Favorite) TableName() string {
	return "favorites"
}
