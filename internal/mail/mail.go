package mail

import (
	"context"
	"fmt"
)

// Envelope is a single outbound transactional email
type Envelope struct {
	From    string
	To      string
	Subject string
	ReplyTo string
	HTML    string
	Text    string
}

// Receipt is the provider's acknowledgement of an accepted send
type Receipt struct {
	ID string `json:"id"`
}

// Sender delivers an envelope through an email provider.
// Implementations return a *ProviderError when the provider itself
// rejected the message, any other error for transport-level faults.
type Sender interface {
	Send(ctx context.Context, envelope Envelope) (*Receipt, error)
}

// ProviderError is an application-level rejection embedded in the
// provider's response, as opposed to a failure to reach the provider
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("email provider returned status %d", e.StatusCode)
	}
	return e.Message
}
