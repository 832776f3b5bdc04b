package models

import (
	"time"
)

// BaseModel provides the serial primary key and timestamps shared by all tables
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
