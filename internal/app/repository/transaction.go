package repository

import (
	"context"
	"errors"
	"time"

	"adagency/internal/app/ds"
)

// Transaction ledger methods. Status is monotonic: a row leaves pending
// exactly once and never transitions out of completed/failed.

func (r *Repository) CreateTransaction(ctx context.Context, txn *ds.Transaction) error {
	if txn.Amount <= 0 {
		return errors.New("transaction amount must be positive")
	}
	if txn.Status == "" {
		txn.Status = ds.TxStatusPending
	}
	return r.db.WithContext(ctx).Create(txn).Error
}

// CloseTransaction moves a pending transaction to completed or failed.
// The status guard in the WHERE clause is what makes the transition
// monotonic under concurrent closers.
func (r *Repository) CloseTransaction(ctx context.Context, id uint, status, referenceID string) error {
	if status != ds.TxStatusCompleted && status != ds.TxStatusFailed {
		return errors.New("invalid closing status: " + status)
	}

	now := time.Now()
	result := r.db.WithContext(ctx).Model(&ds.Transaction{}).
		Where("id = ? AND status = ?", id, ds.TxStatusPending).
		Updates(map[string]interface{}{
			"status":               status,
			"payment_reference_id": referenceID,
			"completed_at":         now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("transaction not found or already closed")
	}
	return nil
}

func (r *Repository) GetTransactionByID(ctx context.Context, id uint) (*ds.Transaction, error) {
	var txn ds.Transaction
	err := r.db.WithContext(ctx).Preload("User").Preload("Domain").First(&txn, id).Error
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// ListTransactions filters by user and/or status; nil userID means all
// users (admin view).
func (r *Repository) ListTransactions(ctx context.Context, userID *uint, status string) ([]ds.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&ds.Transaction{}).Order("id desc")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var txns []ds.Transaction
	err := query.Find(&txns).Error
	return txns, err
}

// ListStalePending returns pending transactions created before the cutoff,
// feeding the reconciliation sweep.
func (r *Repository) ListStalePending(ctx context.Context, olderThan time.Time) ([]ds.Transaction, error) {
	var txns []ds.Transaction
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", ds.TxStatusPending, olderThan).
		Find(&txns).Error
	return txns, err
}

// DeleteTransaction is the explicit admin-only removal path; nothing else
// ever deletes ledger rows.
func (r *Repository) DeleteTransaction(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ds.Transaction{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("transaction not found")
	}
	return nil
}
