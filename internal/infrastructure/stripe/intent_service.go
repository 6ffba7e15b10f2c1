package stripe

import (
	"fmt"

	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/tekup-hr/payroll-api/internal/application/ports"
)

var _ ports.PaymentIntents = (*IntentService)(nil)

// IntentService adaptador del puerto PaymentIntents sobre el SDK oficial de Stripe.
type IntentService struct {
	api *client.API
}

// NewIntentService construye el cliente de Stripe con la secret key de la app.
func NewIntentService(secretKey string) *IntentService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &IntentService{api: api}
}

// CreateIntent crea un payment intent por amountMinor en la moneda dada
// (solo tarjeta) y devuelve el client secret para el frontend.
func (s *IntentService) CreateIntent(amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("crear payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
