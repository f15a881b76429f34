// Package mail delivers contact-form messages to the portfolio owner.
package mail

import "context"

// Message is a single contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
