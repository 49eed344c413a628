package entities

import "github.com/ethereum/go-ethereum/common"

// Claim is a payout request against a policy's coverage.
//
// IsApproved starts false and is overwritten by every approve/reject.
type Claim struct {
	ID         uint64 `json:"id"`
	PolicyID   uint64 `json:"policy_id"`
	Amount     uint64 `json:"amount"`
	IsApproved bool   `json:"is_approved"`
}

// Transfer is a payout issued from the custodial pool to a policy holder
// when a claim is approved.
type Transfer struct {
	ID       string         `json:"id"`
	ClaimID  uint64         `json:"claim_id"`
	To       common.Address `json:"to"`
	Amount   uint64         `json:"amount"`
	Sequence uint64         `json:"sequence"`
}

// Receipt is what an accepted transition hands back to its caller.
type Receipt struct {
	Policy   *Policy   `json:"policy,omitempty"`
	Claim    *Claim    `json:"claim,omitempty"`
	Transfer *Transfer `json:"transfer,omitempty"`
	Events   []Event   `json:"events"`
}
