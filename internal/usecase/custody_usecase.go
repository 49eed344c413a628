package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
)

// FundCustody collects amount through the payment gateway and, once the
// provider approves it, credits the custodial pool claims are paid from.
func (u *InsuranceUseCase) FundCustody(ctx context.Context, caller common.Address, amount uint64, mpPayload json.RawMessage) (entities.Receipt, error) {
	log.Printf("[custody][usecase] fund start from=%s amount=%d payload_len=%d", caller.Hex(), amount, len(mpPayload))
	if amount == 0 {
		return entities.Receipt{}, ErrInvalidFundingAmount
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		log.Printf("[custody][usecase] invalid payload (not-json) from=%s", caller.Hex())
		return entities.Receipt{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		log.Printf("[custody][usecase] gateway not configured from=%s", caller.Hex())
		return entities.Receipt{}, ErrPaymentGatewayNotConfigured
	}

	payload, err := enrichFundingPayload(mpPayload, caller, amount, u.payerEmail)
	if err != nil {
		log.Printf("[custody][usecase] payload enrich failed from=%s err=%v", caller.Hex(), err)
		return entities.Receipt{}, ErrInvalidMPPayload
	}

	// The provider call stays outside the ledger lock; only the credit is a transition.
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[custody][usecase] payment gateway failed from=%s err=%v", caller.Hex(), err)
		return entities.Receipt{}, fmt.Errorf("%w: %w", ErrFundingNotApproved, err)
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[custody][usecase] payment not approved from=%s provider_payment_id=%s provider_status=%s", caller.Hex(), providerPaymentID, providerStatus)
		return entities.Receipt{}, ErrFundingNotApproved
	}

	events, err := u.apply(ctx, "fund-custody", func(tx *ledger.Tx) error {
		if err := tx.CreditCustody(amount); err != nil {
			return err
		}
		tx.Emit(entities.NewCustodyFunded(caller, amount))
		return nil
	})
	if err != nil {
		// Funds were collected but not credited; the provider id is the reconciliation key.
		log.Printf("[custody][usecase] credit failed after payment from=%s provider_payment_id=%s amount=%d err=%v", caller.Hex(), providerPaymentID, amount, err)
		return entities.Receipt{}, err
	}
	log.Printf("[custody][usecase] fund success from=%s provider_payment_id=%s amount=%d", caller.Hex(), providerPaymentID, amount)
	return entities.Receipt{Events: events}, nil
}

// enrichFundingPayload makes the ledger the source of truth for the amount and
// links the payment back to the depositor. Mercado Pago charges
// transaction_amount in whole currency units.
func enrichFundingPayload(mpPayload json.RawMessage, from common.Address, amount uint64, payerEmail string) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		return nil, err
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = from.Hex()
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = "Car body insurance custodial pool funding"
	}
	ensurePayerDefaults(reqMap, payerEmail)
	reqMap["transaction_amount"] = entities.ToCurrencyUnits(amount)
	return json.Marshal(reqMap)
}

func ensurePayerDefaults(m map[string]any, defaultEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if s, _ := payer["email"].(string); strings.TrimSpace(s) != "" {
		return
	}
	if email := strings.TrimSpace(defaultEmail); email != "" {
		payer["email"] = email
	}
}
