package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// contactEmailHTML renders the body of a contact form notification.
// html/template escapes the user-supplied fields.
var contactEmailHTML = template.Must(template.New("contact").Parse(`<html>
  <body style="background-color:#f3f4f6;font-family:sans-serif;">
    <div style="background-color:#ffffff;border-radius:8px;padding:24px;margin:24px auto;max-width:560px;">
      <h2 style="font-size:18px;">You received the following message from the contact form</h2>
      <p style="white-space:pre-wrap;">{{.Message}}</p>
      <hr />
      <p>The sender's email is: <a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></p>
      <p>Sent by: {{.SenderName}}</p>
    </div>
  </body>
</html>`))

// ContactEmailData is the input to the contact notification template
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Message     string
}

// RenderContactEmail produces the HTML body for a contact notification
func RenderContactEmail(data ContactEmailData) (string, error) {
	var buf strings.Builder
	if err := contactEmailHTML.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render contact email: %w", err)
	}
	return buf.String(), nil
}

// RenderContactEmailText produces the plain-text fallback body
func RenderContactEmailText(data ContactEmailData) string {
	return fmt.Sprintf(
		"You received the following message from the contact form\n\n%s\n\nSender: %s <%s>\n",
		data.Message, data.SenderName, data.SenderEmail,
	)
}
