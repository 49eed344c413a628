package entities

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// EventKind names an event emitted by the ledger.
type EventKind string

const (
	EventPolicyCreated  EventKind = "policy.created"
	EventClaimSubmitted EventKind = "claim.submitted"
	EventClaimApproved  EventKind = "claim.approved"
	EventClaimRejected  EventKind = "claim.rejected"
	EventTokensAssigned EventKind = "tokens.assigned"
	EventCustodyFunded  EventKind = "custody.funded"
)

// Event is a flat record of a ledger event. Only the fields relevant to
// Kind are populated, and only those are encoded (zero values included).
//
// ID and Sequence are assigned when the event is staged; Sequence is dense
// across the whole ledger and gives the total emission order.
type Event struct {
	ID       string    `json:"id"`
	Sequence uint64    `json:"sequence"`
	Kind     EventKind `json:"kind"`

	PolicyID       uint64          `json:"policy_id,omitempty"`
	ClaimID        uint64          `json:"claim_id,omitempty"`
	Holder         *common.Address `json:"holder,omitempty"`
	Premium        uint64          `json:"premium,omitempty"`
	CoverageAmount uint64          `json:"coverage_amount,omitempty"`
	Amount         uint64          `json:"amount,omitempty"`
}

func NewPolicyCreated(policyID uint64, holder common.Address, premium, coverageAmount uint64) Event {
	return Event{Kind: EventPolicyCreated, PolicyID: policyID, Holder: &holder, Premium: premium, CoverageAmount: coverageAmount}
}

func NewClaimSubmitted(claimID, policyID, amount uint64) Event {
	return Event{Kind: EventClaimSubmitted, ClaimID: claimID, PolicyID: policyID, Amount: amount}
}

func NewClaimApproved(claimID, amount uint64) Event {
	return Event{Kind: EventClaimApproved, ClaimID: claimID, Amount: amount}
}

func NewClaimRejected(claimID uint64) Event {
	return Event{Kind: EventClaimRejected, ClaimID: claimID}
}

func NewTokensAssigned(holder common.Address, amount uint64) Event {
	return Event{Kind: EventTokensAssigned, Holder: &holder, Amount: amount}
}

func NewCustodyFunded(from common.Address, amount uint64) Event {
	return Event{Kind: EventCustodyFunded, Holder: &from, Amount: amount}
}

// MarshalJSON writes the fields Kind defines, keeping zero amounts.
func (e Event) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"id":       e.ID,
		"sequence": e.Sequence,
		"kind":     e.Kind,
	}
	switch e.Kind {
	case EventPolicyCreated:
		out["policy_id"] = e.PolicyID
		out["holder"] = e.Holder
		out["premium"] = e.Premium
		out["coverage_amount"] = e.CoverageAmount
	case EventClaimSubmitted:
		out["claim_id"] = e.ClaimID
		out["policy_id"] = e.PolicyID
		out["amount"] = e.Amount
	case EventClaimApproved:
		out["claim_id"] = e.ClaimID
		out["amount"] = e.Amount
	case EventClaimRejected:
		out["claim_id"] = e.ClaimID
	case EventTokensAssigned, EventCustodyFunded:
		out["holder"] = e.Holder
		out["amount"] = e.Amount
	default:
		type plain Event
		return json.Marshal(plain(e))
	}
	return json.Marshal(out)
}
