package crossmint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client wraps the Crossmint REST API for deal payments, commission tokens
// and achievement NFTs. When the API key or project id is missing the client
// stays in disabled mode and every call returns a "disabled" result instead
// of an error, so reward processing degrades without breaking deal flow.
type Client struct {
	apiKey     string
	projectID  string
	baseURL    string
	httpClient *http.Client
}

type Config struct {
	APIKey      string
	ProjectID   string
	Environment string
	// BaseURL overrides the environment-derived endpoint when set.
	BaseURL string
	Timeout time.Duration
}

const (
	productionBaseURL = "https://api.crossmint.com"
	stagingBaseURL    = "https://staging.crossmint.com"
	apiVersion        = "2022-06-09"

	// CommissionRate is the sales agent cut applied to every closed deal.
	CommissionRate = 0.15

	StatusSuccess  = "success"
	StatusDisabled = "disabled"
	StatusError    = "error"
)

func NewClient(cfg Config) *Client {
	baseURL := stagingBaseURL
	if cfg.Environment == "production" {
		baseURL = productionBaseURL
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		projectID:  cfg.ProjectID,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether the client has credentials to reach Crossmint.
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.projectID != ""
}

type PaymentResult struct {
	Status     string  `json:"status"`
	Message    string  `json:"message,omitempty"`
	PaymentID  string  `json:"payment_id,omitempty"`
	PaymentURL string  `json:"payment_url,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Plan       string  `json:"plan,omitempty"`
}

type CommissionResult struct {
	Status           string  `json:"status"`
	Message          string  `json:"message,omitempty"`
	TokenID          string  `json:"token_id,omitempty"`
	TransactionHash  string  `json:"transaction_hash,omitempty"`
	CommissionAmount float64 `json:"commission_amount,omitempty"`
	DealID           string  `json:"deal_id,omitempty"`
}

type AchievementResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	NFTID   string `json:"nft_id,omitempty"`
}

// DealPaymentResult aggregates the three reward legs of a closed deal.
type DealPaymentResult struct {
	Status           string             `json:"status"`
	Message          string             `json:"message,omitempty"`
	DealID           string             `json:"deal_id,omitempty"`
	Payment          *PaymentResult     `json:"payment,omitempty"`
	Commission       *CommissionResult  `json:"commission,omitempty"`
	Achievement      *AchievementResult `json:"achievement,omitempty"`
	TotalAmount      float64            `json:"total_amount,omitempty"`
	CommissionAmount float64            `json:"commission_amount,omitempty"`
}

type paymentIntentRequest struct {
	Type        string                 `json:"type"`
	Currency    string                 `json:"currency"`
	Amount      int64                  `json:"amount"`
	Description string                 `json:"description"`
	Customer    paymentCustomer        `json:"customer"`
	Metadata    map[string]interface{} `json:"metadata"`
	SuccessURL  string                 `json:"success_url"`
	CancelURL   string                 `json:"cancel_url"`
}

type paymentCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Message      string `json:"message"`
}

// CreatePayment creates a payment intent for a subscription or custom deal.
func (c *Client) CreatePayment(ctx context.Context, customerEmail, customerName, planType string, amount float64) (*PaymentResult, error) {
	if !c.Enabled() {
		return &PaymentResult{Status: StatusDisabled, Message: "Crossmint not configured"}, nil
	}

	payload := paymentIntentRequest{
		Type:        "payment-intent",
		Currency:    "USD",
		Amount:      int64(amount * 100),
		Description: fmt.Sprintf("Digital Sales Agent %s - Monthly Subscription", planType),
		Customer:    paymentCustomer{Email: customerEmail, Name: customerName},
		Metadata: map[string]interface{}{
			"service":         "sales_automation",
			"tier":            planType,
			"created_at":      time.Now().Format(time.RFC3339),
			"subscription_id": uuid.NewString(),
		},
		SuccessURL: "http://localhost:3000/dashboard?payment=success",
		CancelURL:  "http://localhost:3000/dashboard?payment=cancelled",
	}

	var res paymentIntentResponse
	if err := c.post(ctx, fmt.Sprintf("/api/%s/payment-intents", apiVersion), payload, &res); err != nil {
		return &PaymentResult{Status: StatusError, Message: err.Error()}, err
	}

	return &PaymentResult{
		Status:     StatusSuccess,
		PaymentID:  res.ID,
		PaymentURL: res.ClientSecret,
		Amount:     amount,
		Plan:       planType,
	}, nil
}

type tokenRequest struct {
	Recipient string                 `json:"recipient"`
	Amount    string                 `json:"amount"`
	Metadata  map[string]interface{} `json:"metadata"`
}

type tokenResponse struct {
	ID      string `json:"id"`
	OnChain struct {
		TxID string `json:"txId"`
	} `json:"onChain"`
	Message string `json:"message"`
}

// CreateCommissionToken mints fungible commission tokens for a closed deal.
func (c *Client) CreateCommissionToken(ctx context.Context, salesAgentID string, commissionAmount float64, dealID, recipientEmail string) (*CommissionResult, error) {
	if !c.Enabled() {
		return &CommissionResult{Status: StatusDisabled, Message: "Crossmint not configured"}, nil
	}

	payload := tokenRequest{
		Recipient: fmt.Sprintf("email:%s:polygon", recipientEmail),
		Amount:    fmt.Sprintf("%d", int64(commissionAmount*100)),
		Metadata: map[string]interface{}{
			"name":              "Sales Commission Token",
			"symbol":            "SCT",
			"description":       fmt.Sprintf("Commission token for deal %s", dealID),
			"decimals":          2,
			"commission_amount": commissionAmount,
			"deal_id":           dealID,
			"sales_agent_id":    salesAgentID,
			"created_at":        time.Now().Format(time.RFC3339),
		},
	}

	var res tokenResponse
	path := fmt.Sprintf("/api/%s/collections/%s/tokens", apiVersion, c.projectID)
	if err := c.post(ctx, path, payload, &res); err != nil {
		return &CommissionResult{Status: StatusError, Message: err.Error()}, err
	}

	return &CommissionResult{
		Status:           StatusSuccess,
		TokenID:          res.ID,
		TransactionHash:  res.OnChain.TxID,
		CommissionAmount: commissionAmount,
		DealID:           dealID,
	}, nil
}

type nftRequest struct {
	Recipient string                 `json:"recipient"`
	Metadata  map[string]interface{} `json:"metadata"`
}

// MintDealClosureNFT mints an achievement NFT when a deal closes.
func (c *Client) MintDealClosureNFT(ctx context.Context, recipientEmail string, dealAmount float64) (*AchievementResult, error) {
	if !c.Enabled() {
		return &AchievementResult{Status: StatusDisabled, Message: "Crossmint not configured"}, nil
	}

	payload := nftRequest{
		Recipient: fmt.Sprintf("email:%s:polygon", recipientEmail),
		Metadata: map[string]interface{}{
			"name":        "Deal Closer Champion",
			"description": "Successfully closed a sales deal",
			"image":       "https://via.placeholder.com/400x400/blue/white?text=Deal+Closer",
			"attributes": []map[string]interface{}{
				{"trait_type": "Achievement", "value": "Deal Closer"},
				{"trait_type": "Revenue Generated", "value": fmt.Sprintf("$%.2f", dealAmount)},
				{"trait_type": "Date", "value": time.Now().Format("2006-01-02")},
			},
		},
	}

	var res tokenResponse
	path := fmt.Sprintf("/api/%s/collections/%s/nfts", apiVersion, c.projectID)
	if err := c.post(ctx, path, payload, &res); err != nil {
		return &AchievementResult{Status: StatusError, Message: err.Error()}, err
	}

	return &AchievementResult{Status: StatusSuccess, NFTID: res.ID}, nil
}

// ProcessDealPayment runs the full reward flow for a closed deal: customer
// payment, agent commission at CommissionRate, then the achievement NFT.
// Reward legs after the payment are best effort and never fail the deal.
func (c *Client) ProcessDealPayment(ctx context.Context, dealID string, amount float64, customerEmail, salesAgentID string) (*DealPaymentResult, error) {
	if !c.Enabled() {
		return &DealPaymentResult{Status: StatusDisabled, Message: "Crossmint not configured"}, nil
	}

	payment, err := c.CreatePayment(ctx, customerEmail, "Deal Customer", "custom_deal", amount)
	if err != nil {
		return &DealPaymentResult{Status: StatusError, Message: err.Error(), DealID: dealID}, err
	}

	commissionAmount := amount * CommissionRate
	commission, _ := c.CreateCommissionToken(ctx, salesAgentID, commissionAmount, dealID, customerEmail)
	achievement, _ := c.MintDealClosureNFT(ctx, customerEmail, amount)

	return &DealPaymentResult{
		Status:           StatusSuccess,
		DealID:           dealID,
		Payment:          payment,
		Commission:       commission,
		Achievement:      achievement,
		TotalAmount:      amount,
		CommissionAmount: commissionAmount,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payloadJson))
	if err != nil {
		return err
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf(
			"status error, got status %d. with response body %s",
			res.StatusCode,
			string(resBody),
		)
	}

	return json.Unmarshal(resBody, out)
}
