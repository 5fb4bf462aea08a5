package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-api/internal/mail"
	"portfolio-api/internal/ratelimit"
)

// fakeSender records sends and returns a canned result
type fakeSender struct {
	mu      sync.Mutex
	calls   int32
	lastEnv mail.Envelope
	receipt *mail.Receipt
	err     error
}

func (f *fakeSender) Send(ctx context.Context, envelope mail.Envelope) (*mail.Receipt, error) {
	atomic.AddInt32(&f.calls, 1)
	f.mu.Lock()
	f.lastEnv = envelope
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.receipt, nil
}

func newTestService(sender *fakeSender) (*ContactService, *ratelimit.MemoryStore) {
	if sender.receipt == nil && sender.err == nil {
		sender.receipt = &mail.Receipt{ID: "email-123"}
	}
	store := ratelimit.NewMemoryStore()
	svc := NewContactService(store, sender, "Contact Form <onboarding@resend.dev>", "owner@example.com")
	return svc, store
}

func validSubmission() Submission {
	return Submission{
		SenderName:  "Jo",
		SenderEmail: "jo@example.com",
		Message:     "Hi",
	}
}

func TestSubmitHoneypot(t *testing.T) {
	sender := &fakeSender{}
	svc, store := newTestService(sender)

	sub := validSubmission()
	sub.Honeypot = "x"

	_, err := svc.Submit(context.Background(), sub)
	assertKind(t, err, KindSpamDetected, "Spam detected")

	if n := atomic.LoadInt32(&sender.calls); n != 0 {
		t.Errorf("sender called %d times, want 0", n)
	}
	// A trapped submission must not touch the ledger
	if got := store.Get(sub.SenderEmail); got != nil {
		t.Errorf("ledger for %q = %v, want untouched", sub.SenderEmail, got)
	}
}

func TestSubmitHoneypotPrecedesValidation(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(sender)

	// Everything else invalid too; the honeypot error must win
	_, err := svc.Submit(context.Background(), Submission{Honeypot: "bot"})
	assertKind(t, err, KindSpamDetected, "Spam detected")
}

func TestSubmitFieldValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Submission)
		kind    ErrorKind
		message string
	}{
		{"empty name", func(s *Submission) { s.SenderName = "" }, KindInvalidName, "Invalid name"},
		{"name too long", func(s *Submission) { s.SenderName = strings.Repeat("a", 101) }, KindInvalidName, "Invalid name"},
		{"empty email", func(s *Submission) { s.SenderEmail = "" }, KindInvalidEmail, "Invalid email address"},
		{"email too long", func(s *Submission) { s.SenderEmail = strings.Repeat("a", 501) }, KindInvalidEmail, "Invalid email address"},
		{"empty message", func(s *Submission) { s.Message = "" }, KindInvalidMessage, "Invalid message"},
		{"message too long", func(s *Submission) { s.Message = strings.Repeat("a", 5001) }, KindInvalidMessage, "Invalid message"},
		{"name at limit is valid", func(s *Submission) { s.SenderName = strings.Repeat("a", 100) }, "", ""},
		{"message at limit is valid", func(s *Submission) { s.Message = strings.Repeat("a", 5000) }, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc, _ := newTestService(sender)

			sub := validSubmission()
			tt.mutate(&sub)

			receipt, err := svc.Submit(context.Background(), sub)
			if tt.kind == "" {
				if err != nil {
					t.Fatalf("Submit() error = %v, want success", err)
				}
				if receipt == nil || receipt.ID == "" {
					t.Fatal("Submit() returned no receipt")
				}
				return
			}
			assertKind(t, err, tt.kind, tt.message)
			if n := atomic.LoadInt32(&sender.calls); n != 0 {
				t.Errorf("sender called %d times, want 0", n)
			}
		})
	}
}

func TestSubmitValidationOrder(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(sender)

	// All three fields invalid; the name error must be reported
	_, err := svc.Submit(context.Background(), Submission{})
	assertKind(t, err, KindInvalidName, "Invalid name")
}

func TestSubmitRateLimit(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(sender)

	now := time.Now()
	svc.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
			t.Fatalf("submission %d: unexpected error %v", i+1, err)
		}
	}

	_, err := svc.Submit(context.Background(), validSubmission())
	assertKind(t, err, KindRateLimited, "Too many submissions. Please try again later.")

	// Once the oldest timestamp ages past the window, admission resumes
	now = now.Add(submissionWindow + time.Millisecond)
	if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatalf("submission after window: unexpected error %v", err)
	}
}

func TestSubmitRateLimitLeavesLedgerUntouched(t *testing.T) {
	sender := &fakeSender{}
	svc, store := newTestService(sender)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
			t.Fatalf("submission %d: unexpected error %v", i+1, err)
		}
	}

	before := store.Get("jo@example.com")
	if _, err := svc.Submit(context.Background(), validSubmission()); err == nil {
		t.Fatal("4th submission admitted, want rate limited")
	}
	after := store.Get("jo@example.com")

	if len(before) != len(after) {
		t.Errorf("rejected submission changed ledger: before %v, after %v", before, after)
	}
}

func TestSubmitRateLimitPerKey(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(sender)

	for i := 0; i < 3; i++ {
		sub := validSubmission()
		sub.SenderEmail = "a@x.com"
		if _, err := svc.Submit(context.Background(), sub); err != nil {
			t.Fatalf("a@x.com submission %d: unexpected error %v", i+1, err)
		}
	}

	// A different sender still has full quota
	sub := validSubmission()
	sub.SenderEmail = "b@x.com"
	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("b@x.com submission: unexpected error %v", err)
	}
}

func TestSubmitConcurrentAdmitsAtMostThree(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(sender)

	const n = 10
	var wg sync.WaitGroup
	var admitted, limited int32

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Submit(context.Background(), validSubmission())
			if err == nil {
				atomic.AddInt32(&admitted, 1)
				return
			}
			var subErr *SubmissionError
			if errors.As(err, &subErr) && subErr.Kind == KindRateLimited {
				atomic.AddInt32(&limited, 1)
			}
		}()
	}
	wg.Wait()

	if admitted != 3 {
		t.Errorf("admitted = %d, want 3", admitted)
	}
	if limited != n-3 {
		t.Errorf("rate limited = %d, want %d", limited, n-3)
	}
}

func TestSubmitDispatchEnvelope(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(sender)

	sub := Submission{
		SenderName:  "Jo <script>",
		SenderEmail: "jo@example.com",
		Message:     "Hello there",
	}
	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	env := sender.lastEnv
	if env.From != "Contact Form <onboarding@resend.dev>" {
		t.Errorf("From = %q", env.From)
	}
	if env.To != "owner@example.com" {
		t.Errorf("To = %q", env.To)
	}
	if env.Subject != "Portfolio Contact: Jo <script>" {
		t.Errorf("Subject = %q", env.Subject)
	}
	if env.ReplyTo != "jo@example.com" {
		t.Errorf("ReplyTo = %q", env.ReplyTo)
	}
	if !strings.Contains(env.HTML, "Hello there") {
		t.Errorf("HTML body missing message: %q", env.HTML)
	}
	if strings.Contains(env.HTML, "<script>") {
		t.Errorf("HTML body contains unescaped input: %q", env.HTML)
	}
}

func TestSubmitDispatchFailed(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("connection refused")}
	svc, _ := newTestService(sender)

	_, err := svc.Submit(context.Background(), validSubmission())
	assertKind(t, err, KindDispatchFailed, "connection refused")
}

func TestSubmitProviderRejected(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{"with provider message", &mail.ProviderError{StatusCode: 422, Message: "Invalid from address"}, "Invalid from address"},
		{"without provider message", &mail.ProviderError{StatusCode: 500}, "Failed to send email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{err: tt.err}
			svc, _ := newTestService(sender)

			_, err := svc.Submit(context.Background(), validSubmission())
			assertKind(t, err, KindProviderRejected, tt.message)
		})
	}
}

func TestSubmitResultShape(t *testing.T) {
	// Success yields a receipt and no error
	okSender := &fakeSender{}
	svc, _ := newTestService(okSender)
	receipt, err := svc.Submit(context.Background(), validSubmission())
	if err != nil || receipt == nil {
		t.Fatalf("Submit() = (%v, %v), want receipt and nil error", receipt, err)
	}

	// Failure yields an error and no receipt
	badSender := &fakeSender{err: fmt.Errorf("boom")}
	svc, _ = newTestService(badSender)
	receipt, err = svc.Submit(context.Background(), validSubmission())
	if err == nil || receipt != nil {
		t.Fatalf("Submit() = (%v, %v), want nil receipt and error", receipt, err)
	}
}

func assertKind(t *testing.T, err error, kind ErrorKind, message string) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("error %T is not a SubmissionError", err)
	}
	if subErr.Kind != kind {
		t.Errorf("kind = %s, want %s", subErr.Kind, kind)
	}
	if subErr.Message != message {
		t.Errorf("message = %q, want %q", subErr.Message, message)
	}
}
