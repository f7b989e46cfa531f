// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
	"github.com/e-budget/backend/internal/integration/persistence/model"
)

// transferRepository implements the adapter.TransferRepository interface.
type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository creates a new transfer repository instance.
func NewTransferRepository(db *gorm.DB) adapter.TransferRepository {
	return &transferRepository{
		db: db,
	}
}

// Create creates a new transfer in the database.
func (r *transferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(model.TransferFromEntity(transfer)).Error
}

// FindByID retrieves a transfer by its ID.
func (r *transferRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transfer, error) {
	var transferModel model.TransferModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transferModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransferNotFound
		}
		return nil, result.Error
	}
	return transferModel.ToEntity(), nil
}

// FindDetailsByID retrieves a transfer with both accounts.
func (r *transferRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.TransferDetails, error) {
	var transferModel model.TransferModel
	result := r.db.WithContext(ctx).
		Preload("FromAccount").
		Preload("ToAccount").
		Where("id = ?", id).
		First(&transferModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransferNotFound
		}
		return nil, result.Error
	}
	return transferModel.ToDetails(), nil
}

// ListDetails retrieves all transfers, most recent first.
func (r *transferRepository) ListDetails(ctx context.Context) ([]*entity.TransferDetails, error) {
	var transferModels []model.TransferModel
	result := r.db.WithContext(ctx).
		Preload("FromAccount").
		Preload("ToAccount").
		Order("created_at DESC").
		Find(&transferModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transfers := make([]*entity.TransferDetails, len(transferModels))
	for i := range transferModels {
		transfers[i] = transferModels[i].ToDetails()
	}
	return transfers, nil
}

// Delete removes a transfer from the database.
func (r *transferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TransferModel{}, "id = ?", id).Error
}
