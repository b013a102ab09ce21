package clients

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is the payment-initiation handle returned to the caller. The
// provider confirms payment later through the webhook.
type Invoice struct {
	TxID       string
	PaymentURL string
}

type invoiceRequest struct {
	OrderID  string `json:"order_id"`
	Amount   string `json:"price_amount"`
	Currency string `json:"price_currency"`
}

type invoiceResponse struct {
	InvoiceID  string `json:"id"`
	InvoiceURL string `json:"invoice_url"`
}

type PaymentClient struct {
	client HTTPClientI
	url    string
	apiKey string
}

func NewPaymentClient(url, apiKey string) *PaymentClient {
	return &PaymentClient{
		client: &HTTPClientAdapter{client: &http.Client{Timeout: timeout}},
		url:    url,
		apiKey: apiKey,
	}
}

// CreateInvoice registers a payment with the provider and returns the link
// the user pays through. Nothing is written to the ledger here.
func (c *PaymentClient) CreateInvoice(planID string, amount decimal.Decimal) (*Invoice, error) {
	body, err := json.Marshal(invoiceRequest{
		OrderID:  uuid.NewString(),
		Amount:   amount.String(),
		Currency: "usd",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoice request: %w", err)
	}

	headers := http.Header{}
	if c.apiKey != "" {
		headers.Set("x-api-key", c.apiKey)
	}

	statusCode, respBody, err := c.client.Post(c.url+"/v1/invoice", headers, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice for plan %s: %w", planID, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment provider returned status %d", statusCode)
	}

	var resp invoiceResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse invoice response: %w", err)
	}
	if resp.InvoiceID == "" || resp.InvoiceURL == "" {
		return nil, fmt.Errorf("payment provider returned incomplete invoice")
	}

	return &Invoice{TxID: resp.InvoiceID, PaymentURL: resp.InvoiceURL}, nil
}

func (c *PaymentClient) SetClient(mock HTTPClientI) {
	c.client = mock
}
