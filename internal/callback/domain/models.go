// Package domain contains the callback record model and service contracts.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Status assigned to a callback when the provider omits one.
const StatusReceived = "received"

// CallbackRecord is one stored scan result callback. Records are immutable
// once inserted; the only mutation is deletion.
type CallbackRecord struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID string         `gorm:"type:text;not null;index" json:"customer_id"`
	ScanID     string         `gorm:"type:text;not null" json:"scan_id"`
	Timestamp  string         `gorm:"type:text" json:"timestamp"`
	Status     string         `gorm:"type:text;not null" json:"status"`
	Payload    datatypes.JSON `gorm:"column:callback_data" json:"callback_data"`
	CreatedAt  time.Time      `gorm:"not null;index" json:"created_at"`
}

// TableName sets the database table name.
func (CallbackRecord) TableName() string { return "callbacks" }
