package ports

// PaymentIntents es el contrato mínimo con el colaborador de pagos.
// amountMinor va en unidades menores de la moneda (centavos).
// Lo implementa el adaptador de Stripe; los tests usan un fake.
type PaymentIntents interface {
	CreateIntent(amountMinor int64, currency string) (clientSecret string, err error)
}
