package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com"

// ResendSender sends transactional email through the Resend HTTP API
type ResendSender struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewResendSender creates a Resend-backed sender
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{
		apiKey:  apiKey,
		baseURL: defaultResendEndpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewResendSenderWithBaseURL creates a sender against a custom endpoint.
// Used by tests to point at a local server.
func NewResendSenderWithBaseURL(apiKey, baseURL string) *ResendSender {
	s := NewResendSender(apiKey)
	s.baseURL = baseURL
	return s
}

// resendSendRequest is the Resend /emails payload
type resendSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// resendErrorResponse is the error body Resend returns for rejected sends
type resendErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

// Send delivers the envelope via Resend. A reachable provider that
// rejects the message yields a *ProviderError; anything that prevents
// getting a response out of the provider yields a plain error.
func (s *ResendSender) Send(ctx context.Context, envelope Envelope) (*Receipt, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("resend API key not configured")
	}

	payload := resendSendRequest{
		From:    envelope.From,
		To:      []string{envelope.To},
		Subject: envelope.Subject,
		ReplyTo: envelope.ReplyTo,
		HTML:    envelope.HTML,
		Text:    envelope.Text,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send request: %w", err)
	}

	url := s.baseURL + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach email provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody resendErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Message == "" {
			return nil, &ProviderError{StatusCode: resp.StatusCode}
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: errBody.Message}
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	return &receipt, nil
}
