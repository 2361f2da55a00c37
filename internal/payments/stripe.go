package payments

import (
	"context"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// IntentClient creates payment intents with an external processor. The
// processor is an external collaborator: this package only translates a
// dollar price into an intent and hands back the client secret.
type IntentClient interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

type StripeClient struct {
	api *client.API
}

func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent opens a card payment intent in USD. Price arrives in dollars
// and is charged in cents.
func (s *StripeClient) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
