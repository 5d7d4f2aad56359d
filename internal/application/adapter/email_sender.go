// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing notification emails.
type EmailService interface {
	// QueueGoalAchievedEmail queues a congratulation email for a seller
	// who just reached their monthly goal.
	QueueGoalAchievedEmail(ctx context.Context, input QueueGoalAchievedInput) error
}

// QueueGoalAchievedInput represents the input for queueing a goal
// achievement email.
type QueueGoalAchievedInput struct {
	SellerEmail    string
	SellerName     string
	ReferenceMonth string
	TargetAmount   string
	RealizedAmount string
	Percent        string
	SuperTarget    bool
}
