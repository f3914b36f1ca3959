package checkout

import (
	"context"
	"fmt"
	"time"

	"adagency/internal/app/ds"

	"github.com/sirupsen/logrus"
)

// ReconcileLedger is the slice of the ledger the sweep needs.
type ReconcileLedger interface {
	ListStalePending(ctx context.Context, olderThan time.Time) ([]ds.Transaction, error)
	CloseTransaction(ctx context.Context, id uint, status, referenceID string) error
}

// Reconciler periodically closes out transactions stuck in pending, which
// happens when the process dies or the gateway is unreachable between the
// pending write and the status update. WaafiPay exposes no status-query
// API in our integration, so stale transactions are failed (consistent
// with the checker's fail-closed polarity) and logged for manual review.
type Reconciler struct {
	ledger   ReconcileLedger
	interval time.Duration
	age      time.Duration
}

func NewReconciler(ledger ReconcileLedger, interval, age time.Duration) *Reconciler {
	return &Reconciler{
		ledger:   ledger,
		interval: interval,
		age:      age,
	}
}

// Run blocks until ctx is cancelled, sweeping on every tick.
func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	logrus.Infof("reconciler started, interval=%s pending_age=%s", r.interval, r.age)
	for {
		select {
		case <-ctx.Done():
			logrus.Info("reconciler stopped")
			return
		case <-ticker.C:
			if err := r.Sweep(ctx); err != nil {
				logrus.Error("reconcile sweep failed: ", err)
			}
		}
	}
}

// Sweep fails every pending transaction older than the configured age.
func (r *Reconciler) Sweep(ctx context.Context) error {
	cutoff := time.Now().Add(-r.age)
	stale, err := r.ledger.ListStalePending(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("list stale pending: %w", err)
	}

	for _, txn := range stale {
		logrus.Warnf("reconciling stale pending txn %d (user %d, amount %.2f)", txn.ID, txn.UserID, txn.Amount)
		refID := txn.PaymentReferenceID
		if refID == "" {
			refID = fmt.Sprintf("%d", txn.ID)
		}
		if err := r.ledger.CloseTransaction(ctx, txn.ID, ds.TxStatusFailed, refID); err != nil {
			logrus.Errorf("could not close stale txn %d: %v", txn.ID, err)
		}
	}

	return nil
}
