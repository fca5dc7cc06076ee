package usecase

import (
	"context"
	"encoding/json"

	"smartcity/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecordInput defines the data required to store a new record.
type CreateRecordInput struct {
	Kind    string
	Payload json.RawMessage
}

// UpdateRecordInput defines the data required to replace a record's payload.
type UpdateRecordInput struct {
	Kind    string
	ID      uuid.UUID
	Payload json.RawMessage
}

// RecordUsecase defines the interface for generic record-store operations.
// Records are opaque documents grouped by kind; the payload is not interpreted.
type RecordUsecase interface {
	ListRecords(ctx context.Context, kind string) ([]*entity.Record, error)
	GetRecord(ctx context.Context, kind string, id uuid.UUID) (*entity.Record, error)
	CreateRecord(ctx context.Context, input *CreateRecordInput) (*entity.Record, error)
	UpdateRecord(ctx context.Context, input *UpdateRecordInput) (*entity.Record, error)
	DeleteRecord(ctx context.Context, kind string, id uuid.UUID) error
}
