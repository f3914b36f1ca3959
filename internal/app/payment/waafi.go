package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"adagency/internal/app/config"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Gateway response codes. 2001 is WaafiPay's success sentinel; 9999 is
// synthesized locally for pre-flight validation failures.
const (
	CodeSuccess    = "2001"
	CodeLocalError = "9999"
)

// PurchaseRequest carries what the orchestrator knows about one payment.
type PurchaseRequest struct {
	TransactionID uint
	AccountNo     string
	Amount        float64
	Description   string
}

// PurchaseResponse mirrors the gateway's answer.
type PurchaseResponse struct {
	ResponseCode string `json:"responseCode"`
	ResponseMsg  string `json:"responseMsg"`
	ReferenceID  string `json:"referenceId"`
}

// Success reports whether the gateway accepted the payment.
func (r *PurchaseResponse) Success() bool {
	return r.ResponseCode == CodeSuccess
}

// waafiPayload is the fixed-schema request body for the /asm endpoint.
type waafiPayload struct {
	SchemaVersion string      `json:"schemaVersion"`
	RequestID     string      `json:"requestId"`
	Timestamp     string      `json:"timestamp"`
	ChannelName   string      `json:"channelName"`
	ServiceName   string      `json:"serviceName"`
	ServiceParams waafiParams `json:"serviceParams"`
}

type waafiParams struct {
	MerchantUID     string               `json:"merchantUid"`
	APIUserID       string               `json:"apiUserId"`
	APIKey          string               `json:"apiKey"`
	PaymentMethod   string               `json:"paymentMethod"`
	PayerInfo       waafiPayerInfo       `json:"payerInfo"`
	TransactionInfo waafiTransactionInfo `json:"transactionInfo"`
}

type waafiPayerInfo struct {
	AccountNo string `json:"accountNo"`
}

type waafiTransactionInfo struct {
	ReferenceID string `json:"referenceId"`
	InvoiceID   string `json:"invoiceId"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

// Client is the WaafiPay adapter. One synchronous call per transaction.
type Client struct {
	httpClient *http.Client
	cfg        config.WaafiConfig
}

func NewClient(cfg config.WaafiConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// Purchase runs pre-flight validation and, if it passes, posts the payment
// to the gateway. Validation failures come back as a local 9999 response
// without touching the network; transport errors are returned as errors
// and leave the transaction pending for the reconciliation sweep.
func (c *Client) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResponse, error) {
	amount := fmt.Sprintf("%.2f", req.Amount)
	if amount == "0.00" {
		return &PurchaseResponse{
			ResponseCode: CodeLocalError,
			ResponseMsg:  "Amount too low to process",
		}, nil
	}

	accountNo, err := NormalizeAccountNo(req.AccountNo)
	if err != nil {
		return &PurchaseResponse{
			ResponseCode: CodeLocalError,
			ResponseMsg:  err.Error(),
		}, nil
	}

	refID := fmt.Sprintf("%d", req.TransactionID)
	payload := waafiPayload{
		SchemaVersion: "1.0",
		RequestID:     uuid.New().String(),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		ChannelName:   "WEB",
		ServiceName:   "API_PURCHASE",
		ServiceParams: waafiParams{
			MerchantUID:   c.cfg.MerchantUID,
			APIUserID:     c.cfg.APIUserID,
			APIKey:        c.cfg.APIKey,
			PaymentMethod: "mwallet_account",
			PayerInfo:     waafiPayerInfo{AccountNo: accountNo},
			TransactionInfo: waafiTransactionInfo{
				ReferenceID: refID,
				InvoiceID:   refID,
				Amount:      amount,
				Currency:    "USD",
				Description: req.Description,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal waafi payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("waafi request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read waafi response: %w", err)
	}

	var result PurchaseResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode waafi response: %w", err)
	}

	logrus.Infof("waafi purchase txn=%d code=%s", req.TransactionID, result.ResponseCode)
	return &result, nil
}

// NormalizeAccountNo strips "+" and prefixes the 252 country code when a
// 9-digit local number is supplied.
func NormalizeAccountNo(accountNo string) (string, error) {
	accountNo = strings.ReplaceAll(strings.TrimSpace(accountNo), "+", "")
	if accountNo == "" {
		return "", fmt.Errorf("account number is required")
	}
	if len(accountNo) == 9 {
		accountNo = "252" + accountNo
	}
	return accountNo, nil
}
