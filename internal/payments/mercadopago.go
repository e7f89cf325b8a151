package payments

import (
	"context"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/SUPERMITA777/reset-fire-sub001/internal/models"
)

// Client crea preferencias de Mercado Pago para cobrar la seña de un
// turno. Sin access token queda deshabilitado.
type Client struct {
	prefs preference.Client
}

func New(accessToken string) (*Client, error) {
	if accessToken == "" {
		return &Client{}, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &Client{prefs: preference.NewClient(cfg)}, nil
}

func (c *Client) Enabled() bool {
	return c != nil && c.prefs != nil
}

type DepositPreference struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

func (c *Client) CreateDepositPreference(
	ctx context.Context,
	ap *models.Appointment,
	title string,
) (*DepositPreference, error) {

	if !c.Enabled() {
		return nil, fmt.Errorf("mercadopago not configured")
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: ap.Deposit,
			},
		},
		ExternalReference: strconv.FormatUint(uint64(ap.ID), 10),
	}

	pref, err := c.prefs.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}

	return &DepositPreference{
		PreferenceID: pref.ID,
		InitPoint:    pref.InitPoint,
	}, nil
}
