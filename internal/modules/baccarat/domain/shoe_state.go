package domain

import "time"

// ShoeState is the single durable shoe record. Only one row exists per
// server; Cards holds the remaining ordered sequence in encoded form.
type ShoeState struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Cards     string    `gorm:"type:text;not null" json:"cards"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (ShoeState) TableName() string {
	return "shoe_states"
}
