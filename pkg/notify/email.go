// Package notify sends customer-facing emails about order activity.
// Delivery failures are the caller's to log; they never fail the order
// operation that triggered them.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// Notifier is what the order service depends on.
type Notifier interface {
	OrderStatusChanged(ctx context.Context, to, orderID, status string) error
}

// EmailNotifier sends through AWS SESv2.
type EmailNotifier struct {
	client *sesv2.Client
	sender string
}

// NewEmailNotifier builds an SES-backed notifier using the default AWS
// credential chain for the given region.
func NewEmailNotifier(ctx context.Context, region, sender string) (*EmailNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("notify: load aws config: %w", err)
	}
	return &EmailNotifier{client: sesv2.NewFromConfig(cfg), sender: sender}, nil
}

func (n *EmailNotifier) OrderStatusChanged(ctx context.Context, to, orderID, status string) error {
	subject := fmt.Sprintf("Your order is now %s", status)
	body := fmt.Sprintf("Order %s moved to status %s. Open the app to track it live.", orderID, status)

	_, err := n.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(n.sender),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("notify: send email: %w", err)
	}
	return nil
}

// NoopNotifier drops every notification. Used in tests and when SES is not
// configured.
type NoopNotifier struct{}

func (NoopNotifier) OrderStatusChanged(ctx context.Context, to, orderID, status string) error {
	return nil
}
