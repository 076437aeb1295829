package models

import "time"

type Table struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Number      uint64    `gorm:"uniqueIndex;not null" json:"number"`
	Seats       uint      `gorm:"not null" json:"seats"`
	Description string    `gorm:"type:varchar(256)" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
