package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/NovaLinkServices/salon-scheduler/internal/models"
)

// Client creates Mercado Pago checkout links for appointment deposits.
// Salons opt in via RequireDeposit; deployments without an access token
// simply never construct one.
type Client struct {
	pref preference.Client
}

func New(accessToken string) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Client{pref: preference.NewClient(cfg)}, nil
}

func (c *Client) DepositLink(
	ctx context.Context,
	salon *models.Salon,
	ap *models.Appointment,
	svc *models.Service,
) (string, error) {

	amount := salon.DepositAmount
	if amount <= 0 {
		amount = svc.Price
	}

	resp, err := c.pref.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:      fmt.Sprintf("%s - booking deposit", svc.Name),
				Quantity:   1,
				UnitPrice:  amount,
				CurrencyID: "BRL",
			},
		},
		ExternalReference: ap.PublicRef,
	})
	if err != nil {
		return "", fmt.Errorf("create preference: %w", err)
	}

	return resp.InitPoint, nil
}
