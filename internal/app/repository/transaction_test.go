package repository

import (
	"context"
	"testing"
	"time"

	"adagency/internal/app/ds"
)

func TestCloseTransactionIsMonotonic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	txn := &ds.Transaction{
		UserID:      user.ID,
		Type:        ds.TxTypeRegister,
		Amount:      12.99,
		Description: "Domain registration: example.com",
	}
	if err := repo.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if txn.Status != ds.TxStatusPending {
		t.Fatalf("new transaction status = %s, want pending", txn.Status)
	}

	if err := repo.CloseTransaction(ctx, txn.ID, ds.TxStatusCompleted, "WF-1001"); err != nil {
		t.Fatalf("first close: %v", err)
	}

	got, err := repo.GetTransactionByID(ctx, txn.ID)
	if err != nil {
		t.Fatalf("GetTransactionByID: %v", err)
	}
	if got.Status != ds.TxStatusCompleted || got.PaymentReferenceID != "WF-1001" {
		t.Errorf("unexpected closed transaction: %+v", got)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt not set on close")
	}

	// A second close of any kind must be rejected.
	if err := repo.CloseTransaction(ctx, txn.ID, ds.TxStatusFailed, "WF-9999"); err == nil {
		t.Fatal("expected error closing an already-closed transaction")
	}
	got, _ = repo.GetTransactionByID(ctx, txn.ID)
	if got.Status != ds.TxStatusCompleted || got.PaymentReferenceID != "WF-1001" {
		t.Errorf("closed transaction was mutated: %+v", got)
	}
}

func TestCloseTransactionRejectsInvalidStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	txn := &ds.Transaction{UserID: user.ID, Type: ds.TxTypePayment, Amount: 5}
	if err := repo.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	for _, status := range []string{ds.TxStatusPending, "refunded", ""} {
		if err := repo.CloseTransaction(ctx, txn.ID, status, "ref"); err == nil {
			t.Errorf("status %q accepted as closing status", status)
		}
	}
}

func TestCreateTransactionRejectsNonPositiveAmount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	for _, amount := range []float64{0, -10} {
		err := repo.CreateTransaction(ctx, &ds.Transaction{UserID: user.ID, Type: ds.TxTypePayment, Amount: amount})
		if err == nil {
			t.Errorf("amount %v accepted", amount)
		}
	}
}

func TestListTransactionsFilters(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	other := &ds.User{FullName: "Other", Email: "other@example.com", PasswordHash: "x", RoleID: user.RoleID}
	if err := repo.CreateUser(ctx, other); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	t1 := &ds.Transaction{UserID: user.ID, Type: ds.TxTypeRegister, Amount: 10}
	t2 := &ds.Transaction{UserID: other.ID, Type: ds.TxTypeRegister, Amount: 20}
	repo.CreateTransaction(ctx, t1)
	repo.CreateTransaction(ctx, t2)
	repo.CloseTransaction(ctx, t2.ID, ds.TxStatusCompleted, "r")

	all, err := repo.ListTransactions(ctx, nil, "")
	if err != nil || len(all) != 2 {
		t.Fatalf("admin view: got %d txns, err %v", len(all), err)
	}

	mine, err := repo.ListTransactions(ctx, &user.ID, "")
	if err != nil || len(mine) != 1 || mine[0].ID != t1.ID {
		t.Fatalf("user view: got %+v, err %v", mine, err)
	}

	completed, err := repo.ListTransactions(ctx, nil, ds.TxStatusCompleted)
	if err != nil || len(completed) != 1 || completed[0].ID != t2.ID {
		t.Fatalf("status filter: got %+v, err %v", completed, err)
	}
}

func TestListStalePending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	old := &ds.Transaction{UserID: user.ID, Type: ds.TxTypePayment, Amount: 10}
	fresh := &ds.Transaction{UserID: user.ID, Type: ds.TxTypePayment, Amount: 20}
	repo.CreateTransaction(ctx, old)
	repo.CreateTransaction(ctx, fresh)

	// Backdate the first row past the cutoff.
	backdated := time.Now().Add(-time.Hour)
	repo.db.Model(&ds.Transaction{}).Where("id = ?", old.ID).Update("created_at", backdated)

	stale, err := repo.ListStalePending(ctx, time.Now().Add(-30*time.Minute))
	if err != nil {
		t.Fatalf("ListStalePending: %v", err)
	}
	if len(stale) != 1 || stale[0].ID != old.ID {
		t.Fatalf("expected only the backdated row, got %+v", stale)
	}
}

func TestDeleteTransaction(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	user := seedUser(t, repo)

	txn := &ds.Transaction{UserID: user.ID, Type: ds.TxTypePayment, Amount: 10}
	repo.CreateTransaction(ctx, txn)

	if err := repo.DeleteTransaction(ctx, txn.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if err := repo.DeleteTransaction(ctx, txn.ID); err == nil {
		t.Fatal("expected error deleting a missing transaction")
	}
}
