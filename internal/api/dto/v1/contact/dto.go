package contact

// ContactRequest represents a contact form submission.
// Honeypot mirrors a hidden form field; no binding tags on purpose,
// the submission pipeline applies its own checks in a fixed order.
type ContactRequest struct {
	SenderName  string `json:"senderName"`
	SenderEmail string `json:"senderEmail"`
	Message     string `json:"message"`
	Honeypot    string `json:"honeypot"`
}

// ContactResponse represents the response after a dispatched submission
type ContactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
