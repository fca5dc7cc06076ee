package impl

import (
	"context"
	"log/slog"

	deliverycontext "smartcity/internal/delivery/context"
	"smartcity/internal/domain/entity"
	domainerrors "smartcity/internal/domain/errors"
	"smartcity/internal/domain/repository"
	"smartcity/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recordService implements the RecordUsecase interface.
type recordService struct {
	txManager  repository.TransactionManager
	recordRepo repository.RecordRepository
	logger     *slog.Logger
}

// RecordServiceParams holds dependencies for recordService, injected by Fx.
type RecordServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecordRepo repository.RecordRepository
	Logger     *slog.Logger
}

// NewRecordService is the constructor for recordService.
func NewRecordService(params RecordServiceParams) usecase.RecordUsecase {
	return &recordService{
		txManager:  params.TxManager,
		recordRepo: params.RecordRepo,
		logger:     params.Logger,
	}
}

func (srv *recordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecords returns all records of a kind, newest first.
func (srv *recordService) ListRecords(ctx context.Context, kind string) ([]*entity.Record, error) {
	// Single query operation, no transaction needed.
	records, err := srv.recordRepo.List(ctx, kind)
	if err != nil {
		srv.log(ctx).Error("Failed to list records", slog.String("kind", kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list records")
	}

	return records, nil
}

// GetRecord retrieves a single record of a kind by ID.
func (srv *recordService) GetRecord(ctx context.Context, kind string, id uuid.UUID) (*entity.Record, error) {
	record, err := srv.recordRepo.FindByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecordNotFound, "record not found")
		}
		srv.log(ctx).Error("Failed to get record", slog.String("kind", kind), slog.Any("recordID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get record")
	}

	return record, nil
}

// CreateRecord stores a new opaque record.
func (srv *recordService) CreateRecord(ctx context.Context, input *usecase.CreateRecordInput) (*entity.Record, error) {
	record := &entity.Record{
		Kind:    input.Kind,
		Payload: input.Payload,
	}

	if err := srv.recordRepo.Create(ctx, record); err != nil {
		srv.log(ctx).Error("Failed to create record", slog.String("kind", input.Kind), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create record")
	}

	srv.log(ctx).Debug("Record created", slog.String("kind", input.Kind), slog.Any("recordID", record.ID))

	return record, nil
}

// UpdateRecord replaces a record's payload and returns the stored result.
func (srv *recordService) UpdateRecord(ctx context.Context, input *usecase.UpdateRecordInput) (*entity.Record, error) {
	var updated *entity.Record

	// Update and re-read in one transaction so the returned record matches what was stored.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recordRepo := repoFactory.RecordRepo()

		record := &entity.Record{
			ID:      input.ID,
			Kind:    input.Kind,
			Payload: input.Payload,
		}

		if err := recordRepo.Update(ctx, record); err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "record not found")
			}

			return errors.Wrap(err, "failed to update record")
		}

		var findErr error
		updated, findErr = recordRepo.FindByID(ctx, input.Kind, input.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload updated record")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update record", slog.String("kind", input.Kind), slog.Any("recordID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute record update transaction")
	}

	return updated, nil
}

// DeleteRecord removes a record of a kind by ID.
func (srv *recordService) DeleteRecord(ctx context.Context, kind string, id uuid.UUID) error {
	if err := srv.recordRepo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "record not found")
		}
		srv.log(ctx).Error("Failed to delete record", slog.String("kind", kind), slog.Any("recordID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete record")
	}

	srv.log(ctx).Debug("Record deleted", slog.String("kind", kind), slog.Any("recordID", id))

	return nil
}
