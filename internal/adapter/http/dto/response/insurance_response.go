package response

import "carbody_insurance/internal/domain/entities"

type PolicyResponse struct {
	PolicyID uint64 `json:"policy_id"`
	Holder   string `json:"holder"`
	IsActive bool   `json:"is_active"`
	entities.PolicyInput
}

type ClaimResponse struct {
	ClaimID    uint64 `json:"claim_id"`
	PolicyID   uint64 `json:"policy_id"`
	Amount     uint64 `json:"amount"`
	IsApproved bool   `json:"is_approved"`
}

type TransferResponse struct {
	TransferID string `json:"transfer_id"`
	ClaimID    uint64 `json:"claim_id"`
	To         string `json:"to"`
	Amount     uint64 `json:"amount"`
	Sequence   uint64 `json:"sequence"`
}

// ReceiptResponse is returned by every accepted mutation.
type ReceiptResponse struct {
	Policy   *PolicyResponse   `json:"policy,omitempty"`
	Claim    *ClaimResponse    `json:"claim,omitempty"`
	Transfer *TransferResponse `json:"transfer,omitempty"`
	Events   []entities.Event  `json:"events"`
}

type TokenBalanceResponse struct {
	Holder  string `json:"holder"`
	Balance uint64 `json:"balance"`
}

type CustodyResponse struct {
	Balance   uint64             `json:"balance"`
	Transfers []TransferResponse `json:"transfers"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	return PolicyResponse{
		PolicyID:    p.ID,
		Holder:      p.Holder.Hex(),
		IsActive:    p.IsActive,
		PolicyInput: p.PolicyInput,
	}
}

func FromClaim(c entities.Claim) ClaimResponse {
	return ClaimResponse{
		ClaimID:    c.ID,
		PolicyID:   c.PolicyID,
		Amount:     c.Amount,
		IsApproved: c.IsApproved,
	}
}

func FromTransfer(t entities.Transfer) TransferResponse {
	return TransferResponse{
		TransferID: t.ID,
		ClaimID:    t.ClaimID,
		To:         t.To.Hex(),
		Amount:     t.Amount,
		Sequence:   t.Sequence,
	}
}

func FromReceipt(r entities.Receipt) ReceiptResponse {
	out := ReceiptResponse{Events: r.Events}
	if out.Events == nil {
		out.Events = []entities.Event{}
	}
	if r.Policy != nil {
		p := FromPolicy(*r.Policy)
		out.Policy = &p
	}
	if r.Claim != nil {
		c := FromClaim(*r.Claim)
		out.Claim = &c
	}
	if r.Transfer != nil {
		t := FromTransfer(*r.Transfer)
		out.Transfer = &t
	}
	return out
}

func FromCustody(balance uint64, transfers []entities.Transfer) CustodyResponse {
	out := CustodyResponse{Balance: balance, Transfers: make([]TransferResponse, 0, len(transfers))}
	for _, t := range transfers {
		out.Transfers = append(out.Transfers, FromTransfer(t))
	}
	return out
}
