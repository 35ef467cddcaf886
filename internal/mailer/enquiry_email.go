package mailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy removes all markup from user-supplied fields before they are
// interpolated into the notification body. The fields are plain text; any
// tags in them are treated as injection attempts, not content.
var stripPolicy = bluemonday.StrictPolicy()

// EnquiryDetails carries the submitted form fields into the email builder.
type EnquiryDetails struct {
	Name        string
	Phone       string
	Suburb      string
	Email       string
	ProjectType string
	Message     string
}

// BuildEnquiryEmail formats the owner notification for one enquiry. Optional
// fields are rendered with their placeholders rather than dropped, and the
// submitter email becomes the reply-to when present.
func BuildEnquiryEmail(details EnquiryDetails, to, from string) Email {
	email := strings.TrimSpace(details.Email)
	emailDisplay := email
	if emailDisplay == "" {
		emailDisplay = "Not provided"
	}

	message := strings.TrimSpace(details.Message)
	if message == "" {
		message = "No message provided"
	}

	html := fmt.Sprintf(`
      <h2>New Contact Form Submission</h2>
      <p><strong>Name:</strong> %s</p>
      <p><strong>Phone:</strong> %s</p>
      <p><strong>Suburb:</strong> %s</p>
      <p><strong>Email:</strong> %s</p>
      <p><strong>Project Type:</strong> %s</p>
      <p><strong>Message:</strong></p>
      <p>%s</p>
      <hr>
      <p><small>Submitted at: %s</small></p>
    `,
		stripPolicy.Sanitize(details.Name),
		stripPolicy.Sanitize(details.Phone),
		stripPolicy.Sanitize(details.Suburb),
		stripPolicy.Sanitize(emailDisplay),
		stripPolicy.Sanitize(details.ProjectType),
		stripPolicy.Sanitize(message),
		submittedAt(time.Now()),
	)

	return Email{
		From:    from,
		To:      to,
		Subject: fmt.Sprintf("New Enquiry from %s - %s", details.Name, details.ProjectType),
		HTML:    html,
		ReplyTo: email,
	}
}

func submittedAt(now time.Time) string {
	loc, err := time.LoadLocation("Australia/Melbourne")
	if err != nil {
		loc = time.UTC
	}
	return now.In(loc).Format("2/1/2006, 3:04:05 pm")
}

// EnquiryMailer adapts the Resend client to the enquiry pipeline's notifier.
type EnquiryMailer struct {
	client *Resend
	to     string
	from   string
}

// NewEnquiryMailer wires the notification recipient and sender.
func NewEnquiryMailer(client *Resend, to, from string) *EnquiryMailer {
	return &EnquiryMailer{client: client, to: to, from: from}
}

// Enabled reports whether notifications can be delivered at all.
func (n *EnquiryMailer) Enabled() bool {
	return n.client != nil && n.client.Enabled()
}

// NotifyEnquiry sends the owner notification for a persisted enquiry.
func (n *EnquiryMailer) NotifyEnquiry(details EnquiryDetails) (string, error) {
	if n.client == nil {
		return "", ErrNotConfigured
	}
	return n.client.Send(BuildEnquiryEmail(details, n.to, n.from))
}
