package payment

import "context"

// ===============================
// Cobrança do sinal
// ===============================

type ChargeInput struct {
	Amount      float64
	Description string
	PayerEmail  string
	CardToken   string
}

type ChargeResult struct {
	ProviderID int
	Status     string
}

// DepositCharger é o colaborador externo de pagamento. Implementações
// devem devolver erro em falha — o wizard nunca assume sucesso.
type DepositCharger interface {
	ChargeDeposit(ctx context.Context, in ChargeInput) (*ChargeResult, error)
}
