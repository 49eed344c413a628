// Package ledger holds the authoritative policy/claim/token state and the
// staging transaction every mutation goes through.
package ledger

import (
	"bytes"
	"errors"
	"sort"

	"carbody_insurance/internal/domain/entities"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrInsufficientCustody = errors.New("insufficient custodial balance")
	ErrTxClosed            = errors.New("ledger transaction already closed")
	ErrStaleChangeSet      = errors.New("change set does not follow the current ledger sequence")
	ErrUnreservedID        = errors.New("record id was not reserved by this transaction")
	ErrOrphanID            = errors.New("reserved id has no record")
)

// State is the in-memory ledger. It is not safe for concurrent use; callers
// serialize access.
type State struct {
	policyCount uint64
	claimCount  uint64
	sequence    uint64
	custody     uint64

	policies  map[uint64]entities.Policy
	claims    map[uint64]entities.Claim
	tokens    map[common.Address]uint64
	transfers []entities.Transfer
}

// TokenBalance pairs a holder with an absolute token balance.
type TokenBalance struct {
	Holder  common.Address `json:"holder"`
	Balance uint64         `json:"balance"`
}

// Snapshot is a complete, durable image of a State.
type Snapshot struct {
	PolicyCount uint64
	ClaimCount  uint64
	Sequence    uint64
	Custody     uint64
	Policies    []entities.Policy
	Claims      []entities.Claim
	Tokens      []TokenBalance
	Transfers   []entities.Transfer
}

// New returns an empty ledger: counters at zero, all mappings empty.
func New() *State {
	return &State{
		policies: make(map[uint64]entities.Policy),
		claims:   make(map[uint64]entities.Claim),
		tokens:   make(map[common.Address]uint64),
	}
}

// Restore rebuilds a State from a snapshot.
func Restore(snap Snapshot) *State {
	s := New()
	s.policyCount = snap.PolicyCount
	s.claimCount = snap.ClaimCount
	s.sequence = snap.Sequence
	s.custody = snap.Custody
	for _, p := range snap.Policies {
		s.policies[p.ID] = p
	}
	for _, c := range snap.Claims {
		s.claims[c.ID] = c
	}
	for _, tb := range snap.Tokens {
		s.tokens[tb.Holder] = tb.Balance
	}
	s.transfers = append(s.transfers, snap.Transfers...)
	return s
}

func (s *State) Policy(id uint64) (entities.Policy, bool) {
	p, ok := s.policies[id]
	return p, ok
}

func (s *State) Claim(id uint64) (entities.Claim, bool) {
	c, ok := s.claims[id]
	return c, ok
}

// TokenBalance returns zero for holders that never created a policy.
func (s *State) TokenBalance(holder common.Address) uint64 {
	return s.tokens[holder]
}

func (s *State) PolicyCount() uint64 { return s.policyCount }
func (s *State) ClaimCount() uint64  { return s.claimCount }
func (s *State) Sequence() uint64    { return s.sequence }
func (s *State) Custody() uint64     { return s.custody }

func (s *State) Transfers() []entities.Transfer {
	out := make([]entities.Transfer, len(s.transfers))
	copy(out, s.transfers)
	return out
}

func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		PolicyCount: s.policyCount,
		ClaimCount:  s.claimCount,
		Sequence:    s.sequence,
		Custody:     s.custody,
		Policies:    make([]entities.Policy, 0, len(s.policies)),
		Claims:      make([]entities.Claim, 0, len(s.claims)),
		Tokens:      make([]TokenBalance, 0, len(s.tokens)),
		Transfers:   s.Transfers(),
	}
	for _, p := range s.policies {
		snap.Policies = append(snap.Policies, p)
	}
	sort.Slice(snap.Policies, func(i, j int) bool { return snap.Policies[i].ID < snap.Policies[j].ID })
	for _, c := range s.claims {
		snap.Claims = append(snap.Claims, c)
	}
	sort.Slice(snap.Claims, func(i, j int) bool { return snap.Claims[i].ID < snap.Claims[j].ID })
	for h, b := range s.tokens {
		snap.Tokens = append(snap.Tokens, TokenBalance{Holder: h, Balance: b})
	}
	sortTokens(snap.Tokens)
	return snap
}

// Apply folds a change set into the state. The change set must have been
// staged against the current sequence.
func (s *State) Apply(cs ChangeSet) error {
	if cs.PrevSequence != s.sequence {
		return ErrStaleChangeSet
	}
	if cs.PolicyCount < s.policyCount || cs.ClaimCount < s.claimCount || cs.Sequence < s.sequence {
		return ErrStaleChangeSet
	}
	for _, p := range cs.Policies {
		s.policies[p.ID] = p
	}
	for _, c := range cs.Claims {
		s.claims[c.ID] = c
	}
	for _, tb := range cs.Tokens {
		s.tokens[tb.Holder] = tb.Balance
	}
	s.transfers = append(s.transfers, cs.Transfers...)
	s.policyCount = cs.PolicyCount
	s.claimCount = cs.ClaimCount
	s.custody = cs.Custody
	s.sequence = cs.Sequence
	return nil
}

func sortTokens(tokens []TokenBalance) {
	sort.Slice(tokens, func(i, j int) bool {
		return bytes.Compare(tokens[i].Holder.Bytes(), tokens[j].Holder.Bytes()) < 0
	})
}
