// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/domain/entity"
)

// TransferModel represents the transfers table in the database.
type TransferModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FromAccountID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ToAccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	FromAccount *AccountModel `gorm:"foreignKey:FromAccountID;references:ID"`
	ToAccount   *AccountModel `gorm:"foreignKey:ToAccountID;references:ID"`
}

// TableName returns the table name for the TransferModel.
func (TransferModel) TableName() string {
	return "transfers"
}

// ToEntity converts a TransferModel to a domain Transfer entity.
func (m *TransferModel) ToEntity() *entity.Transfer {
	return &entity.Transfer{
		ID:            m.ID,
		Description:   m.Description,
		Amount:        m.Amount,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ToDetails converts a TransferModel with both preloaded accounts.
func (m *TransferModel) ToDetails() *entity.TransferDetails {
	details := &entity.TransferDetails{Transfer: m.ToEntity()}
	if m.FromAccount != nil {
		details.FromAccount = m.FromAccount.ToEntity()
	}
	if m.ToAccount != nil {
		details.ToAccount = m.ToAccount.ToEntity()
	}
	return details
}

// TransferFromEntity creates a TransferModel from a domain Transfer entity.
func TransferFromEntity(transfer *entity.Transfer) *TransferModel {
	return &TransferModel{
		ID:            transfer.ID,
		Description:   transfer.Description,
		Amount:        transfer.Amount,
		FromAccountID: transfer.FromAccountID,
		ToAccountID:   transfer.ToAccountID,
		CreatedAt:     transfer.CreatedAt,
		UpdatedAt:     transfer.UpdatedAt,
	}
}
