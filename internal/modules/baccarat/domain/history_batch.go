package domain

import "time"

// HistoryBatch is one flushed group of round outcome codes, stored as a
// comma-joined line. Rows are append-only.
type HistoryBatch struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Entries   string    `gorm:"type:varchar(64);not null" json:"entries"`
	CreatedAt time.Time `gorm:"not null;index:idx_history_batches_created_at" json:"created_at"`
}

// TableName overrides the table name
func (HistoryBatch) TableName() string {
	return "history_batches"
}
