package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RecordModel mirrors the 'records' table, one row per opaque document of the
// generic record store. Kind names the collection (vehicles, bookings, ...).
type RecordModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind      string         `gorm:"type:varchar(100);not null;index:idx_records_kind"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "records"
}
