package postgres

import (
	"context"
	"encoding/json"

	"smartcity/internal/domain/entity"
	domainerrors "smartcity/internal/domain/errors"
	"smartcity/internal/domain/repository"
	"smartcity/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// recordRepository implements the domain.RecordRepository interface using GORM.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

// List returns all records of a kind, newest first.
func (repo *recordRepository) List(ctx context.Context, kind string) ([]*entity.Record, error) {
	var recordModels []*model.RecordModel
	if err := repo.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list records")
	}

	records := make([]*entity.Record, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toRecordDomain(recordM))
	}

	return records, nil
}

// FindByID retrieves a single record of a kind by its unique ID.
func (repo *recordRepository) FindByID(ctx context.Context, kind string, id uuid.UUID) (*entity.Record, error) {
	var recordM model.RecordModel
	if err := repo.db.WithContext(ctx).
		Where("kind = ? AND id = ?", kind, id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrap(err, "failed to find record by id")
	}

	return toRecordDomain(&recordM), nil
}

// Create persists a new record.
func (repo *recordRepository) Create(ctx context.Context, record *entity.Record) error {
	recordM := fromRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required record information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// Update replaces the payload of an existing record.
func (repo *recordRepository) Update(ctx context.Context, record *entity.Record) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RecordModel{}).
		Where("kind = ? AND id = ?", record.Kind, record.ID).
		Update("payload", datatypes.JSON(record.Payload))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update record")
	}

	// If no rows were affected, the record was not found.
	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// Delete removes a record of a kind by its unique ID.
func (repo *recordRepository) Delete(ctx context.Context, kind string, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("kind = ? AND id = ?", kind, id).
		Delete(&model.RecordModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete record")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecordNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecordDomain converts a GORM RecordModel to a domain Record entity.
func toRecordDomain(data *model.RecordModel) *entity.Record {
	if data == nil {
		return nil
	}

	return &entity.Record{
		ID:        data.ID,
		Kind:      data.Kind,
		Payload:   json.RawMessage(data.Payload),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRecordDomain converts a domain Record entity to a GORM RecordModel.
func fromRecordDomain(data *entity.Record) *model.RecordModel {
	if data == nil {
		return nil
	}

	return &model.RecordModel{
		ID:      data.ID,
		Kind:    data.Kind,
		Payload: datatypes.JSON(data.Payload),
	}
}
