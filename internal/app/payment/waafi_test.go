package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"adagency/internal/app/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.WaafiConfig{
		Endpoint:    srv.URL,
		MerchantUID: "M0912345",
		APIUserID:   "1000123",
		APIKey:      "API-TEST-KEY",
		Timeout:     5 * time.Second,
	})
}

func TestPurchaseSuccess(t *testing.T) {
	var captured waafiPayload
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("could not decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"responseCode": "2001",
			"responseMsg":  "RCS_SUCCESS",
			"referenceId":  "WF-778899",
		})
	})

	resp, err := client.Purchase(context.Background(), PurchaseRequest{
		TransactionID: 42,
		AccountNo:     "615123456",
		Amount:        12.99,
		Description:   "Domain registration: example.com",
	})
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}

	if !resp.Success() {
		t.Errorf("expected success for 2001, got %+v", resp)
	}
	if resp.ReferenceID != "WF-778899" {
		t.Errorf("expected gateway referenceId propagated, got %q", resp.ReferenceID)
	}

	// Fixed-schema payload fields the gateway validates.
	if captured.SchemaVersion != "1.0" {
		t.Errorf("schemaVersion = %q, want 1.0", captured.SchemaVersion)
	}
	if captured.ServiceName != "API_PURCHASE" {
		t.Errorf("serviceName = %q, want API_PURCHASE", captured.ServiceName)
	}
	if captured.ChannelName != "WEB" {
		t.Errorf("channelName = %q, want WEB", captured.ChannelName)
	}
	if captured.RequestID == "" || captured.Timestamp == "" {
		t.Error("requestId and timestamp must be set")
	}
	if captured.ServiceParams.PaymentMethod != "mwallet_account" {
		t.Errorf("paymentMethod = %q, want mwallet_account", captured.ServiceParams.PaymentMethod)
	}
	if captured.ServiceParams.PayerInfo.AccountNo != "252615123456" {
		t.Errorf("accountNo = %q, want 252615123456", captured.ServiceParams.PayerInfo.AccountNo)
	}

	info := captured.ServiceParams.TransactionInfo
	if info.Amount != "12.99" {
		t.Errorf("amount = %q, want \"12.99\"", info.Amount)
	}
	if info.Currency != "USD" {
		t.Errorf("currency = %q, want USD", info.Currency)
	}
	if info.ReferenceID != "42" || info.InvoiceID != "42" {
		t.Errorf("referenceId/invoiceId = %q/%q, want 42/42", info.ReferenceID, info.InvoiceID)
	}
}

func TestPurchaseDeclinePassesThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"responseCode": "5306",
			"responseMsg":  "Payment declined by subscriber",
		})
	})

	resp, err := client.Purchase(context.Background(), PurchaseRequest{
		TransactionID: 7,
		AccountNo:     "252615123456",
		Amount:        50,
	})
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if resp.Success() {
		t.Error("a non-2001 code must not count as success")
	}
	if resp.ResponseMsg != "Payment declined by subscriber" {
		t.Errorf("unexpected message: %q", resp.ResponseMsg)
	}
}

func TestPurchaseZeroAmountShortCircuits(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	// 0.004 rounds to "0.00" and must never reach the gateway.
	for _, amount := range []float64{0, 0.004} {
		resp, err := client.Purchase(context.Background(), PurchaseRequest{
			TransactionID: 1,
			AccountNo:     "615123456",
			Amount:        amount,
		})
		if err != nil {
			t.Fatalf("Purchase returned error: %v", err)
		}
		if resp.ResponseCode != CodeLocalError {
			t.Errorf("amount %v: expected local 9999, got %q", amount, resp.ResponseCode)
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("gateway was called %d times for unprocessable amounts", hits)
	}
}

func TestPurchaseMissingAccountShortCircuits(t *testing.T) {
	var hits int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	})

	resp, err := client.Purchase(context.Background(), PurchaseRequest{
		TransactionID: 1,
		AccountNo:     "  + ",
		Amount:        10,
	})
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if resp.ResponseCode != CodeLocalError {
		t.Errorf("expected local 9999 for missing account, got %q", resp.ResponseCode)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Error("gateway must not be called without an account number")
	}
}

func TestPurchaseTransportErrorReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(config.WaafiConfig{
		Endpoint: srv.URL,
		Timeout:  2 * time.Second,
	})
	srv.Close()

	_, err := client.Purchase(context.Background(), PurchaseRequest{
		TransactionID: 1,
		AccountNo:     "615123456",
		Amount:        10,
	})
	if err == nil {
		t.Fatal("expected a transport error, got nil")
	}
}

func TestNormalizeAccountNo(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"615123456", "252615123456", false},
		{"+252615123456", "252615123456", false},
		{"252615123456", "252615123456", false},
		{"+615123456", "252615123456", false},
		{" 615123456 ", "252615123456", false},
		{"", "", true},
		{"+", "", true},
		{"12345", "12345", false},
	}
	for _, tt := range tests {
		got, err := NormalizeAccountNo(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("NormalizeAccountNo(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeAccountNo(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("NormalizeAccountNo(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
