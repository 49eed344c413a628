package ledger

import (
	"sort"

	"carbody_insurance/internal/domain/entities"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// ChangeSet is everything one transition changes, in absolute values.
// It is the unit persisted by repositories and applied by State.Apply.
type ChangeSet struct {
	PrevSequence uint64
	Sequence     uint64
	PolicyCount  uint64
	ClaimCount   uint64
	Custody      uint64

	Policies  []entities.Policy
	Claims    []entities.Claim
	Tokens    []TokenBalance
	Transfers []entities.Transfer
	Events    []entities.Event
}

// Tx stages mutations over a State. Nothing is visible through the State
// until Commit; an abandoned Tx has no effect, including on id counters.
type Tx struct {
	state  *State
	closed bool

	basePolicies uint64
	baseClaims   uint64
	baseSequence uint64

	policyCount uint64
	claimCount  uint64
	sequence    uint64
	custody     uint64

	policies  map[uint64]entities.Policy
	claims    map[uint64]entities.Claim
	tokens    map[common.Address]uint64
	transfers []entities.Transfer
	events    []entities.Event
}

func (s *State) Begin() *Tx {
	return &Tx{
		state:        s,
		basePolicies: s.policyCount,
		baseClaims:   s.claimCount,
		baseSequence: s.sequence,
		policyCount:  s.policyCount,
		claimCount:   s.claimCount,
		sequence:     s.sequence,
		custody:      s.custody,
		policies:     make(map[uint64]entities.Policy),
		claims:       make(map[uint64]entities.Claim),
		tokens:       make(map[common.Address]uint64),
	}
}

// NextPolicyID reserves the next policy id. The reservation must be filled
// by PutPolicy before the Tx can commit.
func (tx *Tx) NextPolicyID() uint64 {
	tx.policyCount++
	return tx.policyCount
}

func (tx *Tx) NextClaimID() uint64 {
	tx.claimCount++
	return tx.claimCount
}

func (tx *Tx) Policy(id uint64) (entities.Policy, bool) {
	if p, ok := tx.policies[id]; ok {
		return p, true
	}
	return tx.state.Policy(id)
}

func (tx *Tx) Claim(id uint64) (entities.Claim, bool) {
	if c, ok := tx.claims[id]; ok {
		return c, true
	}
	return tx.state.Claim(id)
}

// PutPolicy stores a policy under an id that is either already committed or
// reserved by this Tx.
func (tx *Tx) PutPolicy(p entities.Policy) error {
	if p.ID == 0 || p.ID > tx.policyCount {
		return ErrUnreservedID
	}
	tx.policies[p.ID] = p
	return nil
}

func (tx *Tx) PutClaim(c entities.Claim) error {
	if c.ID == 0 || c.ID > tx.claimCount {
		return ErrUnreservedID
	}
	tx.claims[c.ID] = c
	return nil
}

func (tx *Tx) TokenBalance(holder common.Address) uint64 {
	if b, ok := tx.tokens[holder]; ok {
		return b
	}
	return tx.state.TokenBalance(holder)
}

// CreditTokens adds to a holder's balance. Balances never decrease.
func (tx *Tx) CreditTokens(holder common.Address, amount uint64) error {
	cur := tx.TokenBalance(holder)
	next := cur + amount
	if next < cur {
		return ErrArithmeticOverflow
	}
	tx.tokens[holder] = next
	return nil
}

func (tx *Tx) Custody() uint64 { return tx.custody }

func (tx *Tx) CreditCustody(amount uint64) error {
	next := tx.custody + amount
	if next < tx.custody {
		return ErrArithmeticOverflow
	}
	tx.custody = next
	return nil
}

// IssueTransfer debits the custodial pool and records a payout to the holder.
func (tx *Tx) IssueTransfer(claimID uint64, to common.Address, amount uint64) (entities.Transfer, error) {
	if amount > tx.custody {
		return entities.Transfer{}, ErrInsufficientCustody
	}
	tx.custody -= amount
	t := entities.Transfer{
		ID:       uuid.NewString(),
		ClaimID:  claimID,
		To:       to,
		Amount:   amount,
		Sequence: tx.sequence,
	}
	tx.transfers = append(tx.transfers, t)
	return t, nil
}

// Emit stages an event and assigns its id and ledger sequence.
func (tx *Tx) Emit(e entities.Event) entities.Event {
	tx.sequence++
	e.ID = uuid.NewString()
	e.Sequence = tx.sequence
	tx.events = append(tx.events, e)
	return e
}

// Changes returns the staged change set. It fails if a reserved id was never
// filled with a record.
func (tx *Tx) Changes() (ChangeSet, error) {
	for id := tx.basePolicies + 1; id <= tx.policyCount; id++ {
		if _, ok := tx.policies[id]; !ok {
			return ChangeSet{}, ErrOrphanID
		}
	}
	for id := tx.baseClaims + 1; id <= tx.claimCount; id++ {
		if _, ok := tx.claims[id]; !ok {
			return ChangeSet{}, ErrOrphanID
		}
	}

	cs := ChangeSet{
		PrevSequence: tx.baseSequence,
		Sequence:     tx.sequence,
		PolicyCount:  tx.policyCount,
		ClaimCount:   tx.claimCount,
		Custody:      tx.custody,
		Transfers:    append([]entities.Transfer(nil), tx.transfers...),
		Events:       append([]entities.Event(nil), tx.events...),
	}
	for _, p := range tx.policies {
		cs.Policies = append(cs.Policies, p)
	}
	sort.Slice(cs.Policies, func(i, j int) bool { return cs.Policies[i].ID < cs.Policies[j].ID })
	for _, c := range tx.claims {
		cs.Claims = append(cs.Claims, c)
	}
	sort.Slice(cs.Claims, func(i, j int) bool { return cs.Claims[i].ID < cs.Claims[j].ID })
	for h, b := range tx.tokens {
		cs.Tokens = append(cs.Tokens, TokenBalance{Holder: h, Balance: b})
	}
	sortTokens(cs.Tokens)
	return cs, nil
}

// Commit applies the staged changes to the State and closes the Tx.
func (tx *Tx) Commit() error {
	if tx.closed {
		return ErrTxClosed
	}
	cs, err := tx.Changes()
	if err != nil {
		return err
	}
	if err := tx.state.Apply(cs); err != nil {
		return err
	}
	tx.closed = true
	return nil
}

// Discard closes the Tx without touching the State.
func (tx *Tx) Discard() {
	tx.closed = true
}
