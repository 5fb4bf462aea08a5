package service

// ErrorKind classifies why a contact submission was refused
type ErrorKind string

const (
	KindSpamDetected     ErrorKind = "SPAM_DETECTED"
	KindInvalidName      ErrorKind = "INVALID_NAME"
	KindInvalidEmail     ErrorKind = "INVALID_EMAIL"
	KindInvalidMessage   ErrorKind = "INVALID_MESSAGE"
	KindRateLimited      ErrorKind = "RATE_LIMITED"
	KindDispatchFailed   ErrorKind = "DISPATCH_FAILED"
	KindProviderRejected ErrorKind = "PROVIDER_REJECTED"
)

// SubmissionError is the single failure value the contact pipeline
// produces. Message is safe to show to the end user as-is.
type SubmissionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func newSubmissionError(kind ErrorKind, message string) *SubmissionError {
	return &SubmissionError{Kind: kind, Message: message}
}
