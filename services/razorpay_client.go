// services/razorpay_client.go
package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RazorpayClient talks to the Razorpay Orders API and verifies payment
// callback signatures with the shared key secret.
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// NewRazorpayClient creates a gateway client. With empty credentials the
// client is degraded: CreateOrder reports a configuration error.
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   "https://api.razorpay.com/v1",
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether gateway credentials were provided
func (c *RazorpayClient) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

// KeyID returns the public key id, needed by the checkout page
func (c *RazorpayClient) KeyID() string {
	return c.keyID
}

// CreateOrder reserves an amount (in minor units) at the gateway and returns
// the opaque order identifier. The receipt tags the order with our booking id.
func (c *RazorpayClient) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (string, error) {
	if !c.Configured() {
		return "", errors.New("payment gateway is not configured")
	}

	requestBody := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal order request: %v", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create order request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call payment gateway: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("payment gateway returned non-200 status: %d - %s", resp.StatusCode, string(bodyBytes))
	}

	var order struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", fmt.Errorf("failed to decode order response: %v", err)
	}
	if order.ID == "" {
		return "", errors.New("payment gateway returned no order id")
	}

	return order.ID, nil
}

// VerifySignature checks that a payment callback genuinely originated from
// the gateway for this order/payment pair: the signature must be the
// HMAC-SHA256 of "orderID|paymentID" under the shared key secret.
func (c *RazorpayClient) VerifySignature(orderID, paymentID, signature string) bool {
	if !c.Configured() || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
