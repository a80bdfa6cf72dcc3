package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Message is a rendered email ready for a Transport.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Transport delivers a rendered message.
type Transport interface {
	Send(ctx context.Context, msg *Message) error
}

// Profile is the sender information embedded in support emails.
type Profile struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
}

type ContactSupportData struct {
	Profile Profile
	Subject string
	Message string
	SentAt  time.Time
}

// Dispatcher renders templates and hands the result to a Transport.
type Dispatcher struct {
	transport    Transport
	from         string
	supportEmail string
	templates    *template.Template
	now          func() time.Time
}

func NewDispatcher(transport Transport, from, supportEmail string) (*Dispatcher, error) {
	if transport == nil {
		return nil, fmt.Errorf("email transport is required")
	}
	if supportEmail == "" {
		return nil, fmt.Errorf("support address is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &Dispatcher{
		transport:    transport,
		from:         from,
		supportEmail: supportEmail,
		templates:    templates,
		now:          time.Now,
	}, nil
}

// NotifySupport sends a contact request to the fixed support address. Replies go
// to the customer.
func (d *Dispatcher) NotifySupport(ctx context.Context, profile Profile, subject, message string) error {
	data := ContactSupportData{
		Profile: profile,
		Subject: subject,
		Message: message,
		SentAt:  d.now(),
	}

	var body bytes.Buffer
	if err := d.templates.ExecuteTemplate(&body, "contact_support.html", data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	return d.transport.Send(ctx, &Message{
		From:    d.from,
		To:      d.supportEmail,
		ReplyTo: profile.Email,
		Subject: "Contact request: " + headerSafe(subject),
		HTML:    body.String(),
	})
}

// headerSafe drops line breaks so a subject cannot add headers.
func headerSafe(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	return strings.TrimSpace(s)
}
