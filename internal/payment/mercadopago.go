package payment

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ======================================================
// Mercado Pago
// ======================================================

type MercadoPagoCharger struct {
	client mppayment.Client
}

func NewMercadoPagoCharger(accessToken string) (*MercadoPagoCharger, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payment: mercadopago config: %w", err)
	}

	return &MercadoPagoCharger{
		client: mppayment.NewClient(cfg),
	}, nil
}

func (m *MercadoPagoCharger) ChargeDeposit(
	ctx context.Context,
	in ChargeInput,
) (*ChargeResult, error) {

	req := mppayment.Request{
		TransactionAmount: in.Amount,
		Description:       in.Description,
		Token:             in.CardToken,
		Installments:      1,
		Payer: &mppayment.PayerRequest{
			Email: in.PayerEmail,
		},
	}

	resp, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("payment: create: %w", err)
	}

	// qualquer status fora de approved volta ao passo de pagamento
	if resp.Status != "approved" {
		return nil, httperr.ErrBusiness("deposit_rejected")
	}

	return &ChargeResult{
		ProviderID: resp.ID,
		Status:     resp.Status,
	}, nil
}

var _ DepositCharger = (*MercadoPagoCharger)(nil)
