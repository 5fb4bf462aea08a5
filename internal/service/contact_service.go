package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"portfolio-api/internal/logging"
	"portfolio-api/internal/mail"
	"portfolio-api/internal/ratelimit"
)

// Field limits for a contact submission
const (
	maxNameLength    = 100
	maxEmailLength   = 500
	maxMessageLength = 5000
)

// Sliding-window submission cap per sender email
const (
	submissionWindow = time.Hour
	maxPerWindow     = 3
)

// User-facing failure messages. Kept deliberately terse; the spam
// message in particular must not hint at what tripped the filter.
const (
	msgSpamDetected   = "Spam detected"
	msgInvalidName    = "Invalid name"
	msgInvalidEmail   = "Invalid email address"
	msgInvalidMessage = "Invalid message"
	msgRateLimited    = "Too many submissions. Please try again later."
	msgSendFallback   = "Failed to send email"
)

// Submission is a contact form submission as received from the client.
// Honeypot is a hidden field; humans leave it empty.
type Submission struct {
	SenderName  string
	SenderEmail string
	Message     string
	Honeypot    string
}

// ContactService validates, filters, rate-limits and forwards contact
// form submissions to the email provider.
type ContactService struct {
	store  ratelimit.SubmissionStore
	sender mail.Sender
	from   string
	to     string

	// mu serializes the ledger read-modify-write so that concurrent
	// submissions from one sender cannot both be admitted past the cap
	mu sync.Mutex

	// now is replaceable in tests
	now func() time.Time
}

// NewContactService creates a contact service. from is the fixed display
// sender, to the owner inbox that receives every submission.
func NewContactService(store ratelimit.SubmissionStore, sender mail.Sender, from, to string) *ContactService {
	return &ContactService{
		store:  store,
		sender: sender,
		from:   from,
		to:     to,
		now:    time.Now,
	}
}

// Submit runs the submission pipeline: honeypot check, field validation,
// sliding-window rate limit, then dispatch. Every failure comes back as a
// *SubmissionError; nothing escapes as a panic.
func (s *ContactService) Submit(ctx context.Context, sub Submission) (*mail.Receipt, error) {
	logger := logging.GetLogger()

	// Cheapest rejection first. Bots fill every field they find.
	if sub.Honeypot != "" {
		logger.Warn("Contact submission dropped by honeypot")
		return nil, newSubmissionError(KindSpamDetected, msgSpamDetected)
	}

	// Fixed order: name, email, message. First failure wins.
	if !validField(sub.SenderName, maxNameLength) {
		return nil, newSubmissionError(KindInvalidName, msgInvalidName)
	}
	if !validField(sub.SenderEmail, maxEmailLength) {
		return nil, newSubmissionError(KindInvalidEmail, msgInvalidEmail)
	}
	if !validField(sub.Message, maxMessageLength) {
		return nil, newSubmissionError(KindInvalidMessage, msgInvalidMessage)
	}

	if err := s.admit(sub.SenderEmail); err != nil {
		return nil, err
	}

	receipt, err := s.dispatch(ctx, sub)
	if err != nil {
		return nil, err
	}

	logger.Info("Contact submission from %q dispatched, id=%s", sub.SenderEmail, receipt.ID)
	return receipt, nil
}

// validField reports whether a submitted value is non-empty and within
// maxLen. Values are taken verbatim; no trimming.
func validField(value string, maxLen int) bool {
	return len(value) > 0 && len(value) <= maxLen
}

// admit applies the per-sender sliding window. The sender email is used
// verbatim as the ledger key, matching what goes on the reply-to line.
// Admission appends the current timestamp to the filtered sequence and
// stores it back, which compacts expired entries for that key as a side
// effect. A rejected attempt leaves the ledger untouched.
func (s *ContactService) admit(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	window := submissionWindow.Milliseconds()

	recent := make([]int64, 0, maxPerWindow)
	for _, ts := range s.store.Get(key) {
		if now-ts < window {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= maxPerWindow {
		return newSubmissionError(KindRateLimited, msgRateLimited)
	}

	s.store.Put(key, append(recent, now))
	return nil
}

// dispatch renders the notification body and sends it through the
// provider. The email is sent at most once; there is no retry, a failed
// send surfaces to the caller who may resubmit.
func (s *ContactService) dispatch(ctx context.Context, sub Submission) (*mail.Receipt, error) {
	logger := logging.GetLogger()

	data := mail.ContactEmailData{
		SenderName:  sub.SenderName,
		SenderEmail: sub.SenderEmail,
		Message:     sub.Message,
	}

	html, err := mail.RenderContactEmail(data)
	if err != nil {
		return nil, &SubmissionError{Kind: KindDispatchFailed, Message: msgSendFallback, Err: err}
	}

	receipt, err := s.sender.Send(ctx, mail.Envelope{
		From:    s.from,
		To:      s.to,
		Subject: fmt.Sprintf("Portfolio Contact: %s", sub.SenderName),
		ReplyTo: sub.SenderEmail,
		HTML:    html,
		Text:    mail.RenderContactEmailText(data),
	})
	if err != nil {
		var providerErr *mail.ProviderError
		if errors.As(err, &providerErr) {
			logger.Error("Email provider rejected contact submission: %v", providerErr)
			message := providerErr.Message
			if message == "" {
				message = msgSendFallback
			}
			return nil, &SubmissionError{Kind: KindProviderRejected, Message: message, Err: err}
		}
		logger.Error("Failed to dispatch contact submission: %v", err)
		return nil, &SubmissionError{Kind: KindDispatchFailed, Message: err.Error(), Err: err}
	}

	return receipt, nil
}

// Window returns the rate-limit window, for the background sweep task
func Window() time.Duration {
	return submissionWindow
}
