// Package ledger persists per-user calculation history. Every read and
// delete is scoped by the owner id resolved by the auth middleware; a
// client-supplied id never reaches this package.
package ledger

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"calculator-service/internal/models"
)

const defaultLimit = 100

type Ledger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Record appends one completed calculation.
func (l *Ledger) Record(ctx context.Context, userID int64, op string, a, b, result float64) (*models.Calculation, error) {
	calc := models.Calculation{
		UserID:    userID,
		Operation: op,
		Operand1:  a,
		Operand2:  b,
		Result:    result,
	}
	if err := l.db.WithContext(ctx).Create(&calc).Error; err != nil {
		return nil, fmt.Errorf("record calculation: %w", err)
	}
	return &calc, nil
}

// List returns the owner's calculations, newest first. Out-of-range skip
// yields an empty slice.
func (l *Ledger) List(ctx context.Context, userID int64, skip, limit int) ([]models.Calculation, error) {
	skip, limit = normalize(skip, limit)
	calcs := make([]models.Calculation, 0, limit)
	err := l.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&calcs).Error
	if err != nil {
		return nil, fmt.Errorf("list calculations: %w", err)
	}
	return calcs, nil
}

// Clear deletes all of the owner's calculations and returns the count.
func (l *Ledger) Clear(ctx context.Context, userID int64) (int64, error) {
	tx := l.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Calculation{})
	if tx.Error != nil {
		return 0, fmt.Errorf("clear calculations: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

// RecordExpression appends one evaluated expression.
func (l *Ledger) RecordExpression(ctx context.Context, userID int64, expr string, result float64) (*models.Expression, error) {
	rec := models.Expression{
		UserID:     userID,
		Expression: expr,
		Result:     result,
	}
	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("record expression: %w", err)
	}
	return &rec, nil
}

func (l *Ledger) ListExpressions(ctx context.Context, userID int64, skip, limit int) ([]models.Expression, error) {
	skip, limit = normalize(skip, limit)
	exprs := make([]models.Expression, 0, limit)
	err := l.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(skip).Limit(limit).
		Find(&exprs).Error
	if err != nil {
		return nil, fmt.Errorf("list expressions: %w", err)
	}
	return exprs, nil
}

func (l *Ledger) ClearExpressions(ctx context.Context, userID int64) (int64, error) {
	tx := l.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Expression{})
	if tx.Error != nil {
		return 0, fmt.Errorf("clear expressions: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func normalize(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return skip, limit
}
