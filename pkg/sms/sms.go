package sms

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Client sends SMS through the Twilio REST API.
type Client struct {
	rest *twilio.RestClient
	from string
}

func New(accountSID, authToken, fromNumber string) *Client {
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &Client{rest: rest, from: fromNumber}
}

// Send delivers one message. The context bounds the caller's patience; the
// Twilio SDK manages its own HTTP timeouts underneath.
func (c *Client) Send(ctx context.Context, toNumber, body string) error {
	if !strings.HasPrefix(toNumber, "+") {
		return fmt.Errorf("invalid phone number: %s", toNumber)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{
		To:   &toNumber,
		From: &c.from,
		Body: &body,
	}
	if _, err := c.rest.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS to %s: %v", toNumber, err)
	}
	return nil
}
