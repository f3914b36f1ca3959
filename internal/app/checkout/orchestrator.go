package checkout

import (
	"context"
	"fmt"
	"time"

	"adagency/internal/app/ds"
	"adagency/internal/app/payment"

	"github.com/sirupsen/logrus"
)

// Line item types as sent by the storefront cart.
const (
	ItemDomain  = "domain"
	ItemService = "service"
	ItemHosting = "hosting"
)

// LineItem is one purchasable unit from the client-held cart.
type LineItem struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle"`
	Price        float64 `json:"price"`
	Options      string  `json:"options"`
	RenewalPrice float64 `json:"renewalPrice"`
	// ReferenceID points at the chosen service package or hosting package
	// for non-domain items.
	ReferenceID uint `json:"referenceId"`
}

// ItemResult reports the outcome for a single cart line item.
type ItemResult struct {
	ItemID        string `json:"itemId"`
	Title         string `json:"title"`
	TransactionID uint   `json:"transactionId,omitempty"`
	Status        string `json:"status"`
	Message       string `json:"message,omitempty"`
}

// Result is the itemized outcome of a checkout. Success only when every
// item completed; partial success is reported per item, never rolled back.
type Result struct {
	Success bool         `json:"success"`
	Items   []ItemResult `json:"items"`
}

// Ledger is the persistence surface the orchestrator needs.
type Ledger interface {
	RegisterDomain(ctx context.Context, userID uint, name string, price float64) (*ds.Domain, error)
	ActivateDomain(ctx context.Context, domainID uint) error
	ServicePackageExists(ctx context.Context, id uint) (bool, error)
	HostingPackageExists(ctx context.Context, id uint) (bool, error)
	CreateTransaction(ctx context.Context, txn *ds.Transaction) error
	CloseTransaction(ctx context.Context, id uint, status, referenceID string) error
}

// Gateway is the payment side, satisfied by *payment.Client.
type Gateway interface {
	Purchase(ctx context.Context, req payment.PurchaseRequest) (*payment.PurchaseResponse, error)
}

// Notifier sends the post-payment receipt. Send failures never fail the
// checkout.
type Notifier interface {
	SendReceipt(to string, txn *ds.Transaction) error
}

// Orchestrator runs the per-item checkout pipeline: persist the purchasable
// entity, write a pending transaction, call the gateway once, close the
// transaction exactly once. Items are processed strictly in cart order so
// gateway calls stay serialized per buyer.
type Orchestrator struct {
	ledger   Ledger
	gateway  Gateway
	notifier Notifier
}

func NewOrchestrator(ledger Ledger, gateway Gateway, notifier Notifier) *Orchestrator {
	return &Orchestrator{
		ledger:   ledger,
		gateway:  gateway,
		notifier: notifier,
	}
}

// Process handles the cart for an already-resolved buyer. It never returns
// an error for item-level failures; those are reported in the Result.
func (o *Orchestrator) Process(ctx context.Context, user *ds.User, accountNo string, items []LineItem) *Result {
	result := &Result{Success: true}

	for _, item := range items {
		ir := o.processItem(ctx, user, accountNo, item)
		if ir.Status != ds.TxStatusCompleted {
			result.Success = false
		}
		result.Items = append(result.Items, ir)
	}

	return result
}

func (o *Orchestrator) processItem(ctx context.Context, user *ds.User, accountNo string, item LineItem) ItemResult {
	ir := ItemResult{ItemID: item.ID, Title: item.Title}

	if item.Price <= 0 {
		ir.Status = ds.TxStatusFailed
		ir.Message = "item price must be positive"
		return ir
	}

	txn, err := o.buildTransaction(ctx, user, item)
	if err != nil {
		ir.Status = ds.TxStatusFailed
		ir.Message = err.Error()
		return ir
	}

	if err := o.ledger.CreateTransaction(ctx, txn); err != nil {
		logrus.Error("Error creating transaction: ", err)
		ir.Status = ds.TxStatusFailed
		ir.Message = "could not record transaction"
		return ir
	}
	ir.TransactionID = txn.ID

	resp, err := o.gateway.Purchase(ctx, payment.PurchaseRequest{
		TransactionID: txn.ID,
		AccountNo:     accountNo,
		Amount:        txn.Amount,
		Description:   txn.Description,
	})
	if err != nil {
		// Transport failure: the transaction stays pending and the
		// reconciliation sweep closes it out later.
		logrus.Errorf("gateway call failed for txn %d: %v", txn.ID, err)
		ir.Status = ds.TxStatusPending
		ir.Message = "payment gateway unreachable, status pending"
		return ir
	}

	refID := resp.ReferenceID
	if refID == "" {
		refID = fmt.Sprintf("%d", txn.ID)
	}

	if !resp.Success() {
		if err := o.ledger.CloseTransaction(ctx, txn.ID, ds.TxStatusFailed, refID); err != nil {
			logrus.Error("Error closing transaction: ", err)
		}
		ir.Status = ds.TxStatusFailed
		ir.Message = resp.ResponseMsg
		return ir
	}

	if err := o.ledger.CloseTransaction(ctx, txn.ID, ds.TxStatusCompleted, refID); err != nil {
		logrus.Error("Error closing transaction: ", err)
		ir.Status = ds.TxStatusPending
		ir.Message = "payment accepted but not recorded, will reconcile"
		return ir
	}

	if txn.DomainID != nil {
		if err := o.ledger.ActivateDomain(ctx, *txn.DomainID); err != nil {
			logrus.Errorf("Error activating domain %d: %v", *txn.DomainID, err)
		}
	}

	if o.notifier != nil {
		txn.Status = ds.TxStatusCompleted
		txn.PaymentReferenceID = refID
		if err := o.notifier.SendReceipt(user.Email, txn); err != nil {
			logrus.Warnf("receipt email failed for txn %d: %v", txn.ID, err)
		}
	}

	ir.Status = ds.TxStatusCompleted
	return ir
}

// buildTransaction persists the purchasable entity where needed and shapes
// the pending transaction for the item.
func (o *Orchestrator) buildTransaction(ctx context.Context, user *ds.User, item LineItem) (*ds.Transaction, error) {
	txn := &ds.Transaction{
		UserID:        user.ID,
		Amount:        item.Price,
		Status:        ds.TxStatusPending,
		PaymentMethod: "waafi",
		CreatedAt:     time.Now(),
	}

	switch item.Type {
	case ItemDomain:
		domain, err := o.ledger.RegisterDomain(ctx, user.ID, item.Title, item.Price)
		if err != nil {
			return nil, fmt.Errorf("could not register domain %s: %v", item.Title, err)
		}
		txn.DomainID = &domain.ID
		txn.Type = ds.TxTypeRegister
		txn.Description = "Domain registration: " + item.Title

	case ItemService:
		ok, err := o.ledger.ServicePackageExists(ctx, item.ReferenceID)
		if err != nil || !ok {
			return nil, fmt.Errorf("service package not found")
		}
		id := item.ReferenceID
		txn.ServiceID = &id
		txn.Type = ds.TxTypeServicePayment
		txn.Description = "Service package: " + item.Title

	case ItemHosting:
		ok, err := o.ledger.HostingPackageExists(ctx, item.ReferenceID)
		if err != nil || !ok {
			return nil, fmt.Errorf("hosting package not found")
		}
		id := item.ReferenceID
		txn.HostingPackageID = &id
		txn.Type = ds.TxTypeHostingPayment
		txn.Description = "Hosting package: " + item.Title

	default:
		return nil, fmt.Errorf("unknown line item type %q", item.Type)
	}

	return txn, nil
}
