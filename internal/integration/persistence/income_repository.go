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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(model.IncomeFromEntity(income)).Error
}

// FindByID retrieves an income by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindDetailsByID retrieves an income with its account.
func (r *incomeRepository) FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.IncomeDetails, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Account").
		Where("id = ?", id).
		First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToDetails(), nil
}

// ListDetails retrieves all incomes, most recent first.
func (r *incomeRepository) ListDetails(ctx context.Context) ([]*entity.IncomeDetails, error) {
	var incomeModels []model.IncomeModel
	result := r.db.WithContext(ctx).
		Preload("Account").
		Order("created_at DESC").
		Find(&incomeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.IncomeDetails, len(incomeModels))
	for i := range incomeModels {
		incomes[i] = incomeModels[i].ToDetails()
	}
	return incomes, nil
}

// Update updates an existing income in the database.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(model.IncomeFromEntity(income)).Error
}

// Delete removes an income from the database.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id).Error
}
