package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/ledger"
	"carbody_insurance/internal/usecase/interfaces"

	"github.com/ethereum/go-ethereum/common"
)

// IInsuranceUseCase is the transition engine of the car-body insurance ledger.
//
// Every mutating operation takes the caller identity supplied by the
// environment and is applied as one atomic unit: the change set is persisted,
// then committed in memory, then its events are relayed. A rejected operation
// has no observable effect.

type IInsuranceUseCase interface {
	CreatePolicy(ctx context.Context, caller common.Address, in entities.PolicyInput) (entities.Receipt, error)
	SubmitClaim(ctx context.Context, caller common.Address, policyID, amount uint64) (entities.Receipt, error)
	ApproveClaim(ctx context.Context, caller common.Address, claimID uint64) (entities.Receipt, error)
	RejectClaim(ctx context.Context, caller common.Address, claimID uint64) (entities.Receipt, error)
	FundCustody(ctx context.Context, caller common.Address, amount uint64, mpPayload json.RawMessage) (entities.Receipt, error)

	GetPolicy(ctx context.Context, id uint64) (entities.Policy, error)
	GetClaim(ctx context.Context, id uint64) (entities.Claim, error)
	GetTokenBalance(ctx context.Context, holder common.Address) (uint64, error)
	GetCustody(ctx context.Context) (uint64, []entities.Transfer, error)
}

type InsuranceUseCase struct {
	mu        sync.RWMutex
	state     *ledger.State
	repo      interfaces.ILedgerRepository
	publisher interfaces.IEventPublisher
	gateway   interfaces.IPaymentGateway

	payerEmail string
}

var _ IInsuranceUseCase = (*InsuranceUseCase)(nil)

// NewInsuranceUseCase wires the engine over an already restored state.
// publisher and gateway may be nil.
func NewInsuranceUseCase(state *ledger.State, repo interfaces.ILedgerRepository, publisher interfaces.IEventPublisher, gateway interfaces.IPaymentGateway) *InsuranceUseCase {
	if state == nil {
		state = ledger.New()
	}
	return &InsuranceUseCase{state: state, repo: repo, publisher: publisher, gateway: gateway}
}

// WithDefaultPayerEmail sets the payer email used for custody deposits whose
// Mercado Pago payload carries none.
func (u *InsuranceUseCase) WithDefaultPayerEmail(email string) *InsuranceUseCase {
	u.payerEmail = email
	return u
}

func (u *InsuranceUseCase) CreatePolicy(ctx context.Context, caller common.Address, in entities.PolicyInput) (entities.Receipt, error) {
	log.Printf("[policy][usecase] create start holder=%s premium=%d coverage=%d", caller.Hex(), in.Premium, in.CoverageAmount)

	var policy entities.Policy
	events, err := u.apply(ctx, "create-policy", func(tx *ledger.Tx) error {
		policy = entities.Policy{
			ID:          tx.NextPolicyID(),
			Holder:      caller,
			PolicyInput: in,
			IsActive:    true,
		}
		if err := tx.PutPolicy(policy); err != nil {
			return err
		}

		tokens := entities.CalculateTokens(in.Premium)
		if err := tx.CreditTokens(caller, tokens); err != nil {
			return err
		}
		tx.Emit(entities.NewTokensAssigned(caller, tokens))
		tx.Emit(entities.NewPolicyCreated(policy.ID, caller, in.Premium, in.CoverageAmount))
		return nil
	})
	if err != nil {
		log.Printf("[policy][usecase] create failed holder=%s kind=%s err=%v", caller.Hex(), KindOf(err), err)
		return entities.Receipt{}, err
	}
	log.Printf("[policy][usecase] create success policy_id=%d holder=%s", policy.ID, caller.Hex())
	return entities.Receipt{Policy: &policy, Events: events}, nil
}

func (u *InsuranceUseCase) SubmitClaim(ctx context.Context, caller common.Address, policyID, amount uint64) (entities.Receipt, error) {
	log.Printf("[claim][usecase] submit start policy_id=%d amount=%d caller=%s", policyID, amount, caller.Hex())

	var claim entities.Claim
	events, err := u.apply(ctx, "submit-claim", func(tx *ledger.Tx) error {
		policy, ok := tx.Policy(policyID)
		if !ok {
			return ErrPolicyNotFound
		}
		if !policy.IsActive {
			return ErrPolicyInactive
		}
		if policy.Holder != caller {
			return ErrNotPolicyHolder
		}

		claim = entities.Claim{ID: tx.NextClaimID(), PolicyID: policyID, Amount: amount}
		if err := tx.PutClaim(claim); err != nil {
			return err
		}
		tx.Emit(entities.NewClaimSubmitted(claim.ID, policyID, amount))
		return nil
	})
	if err != nil {
		log.Printf("[claim][usecase] submit failed policy_id=%d caller=%s kind=%s err=%v", policyID, caller.Hex(), KindOf(err), err)
		return entities.Receipt{}, err
	}
	log.Printf("[claim][usecase] submit success claim_id=%d policy_id=%d", claim.ID, policyID)
	return entities.Receipt{Claim: &claim, Events: events}, nil
}

// ApproveClaim marks the claim approved and pays its amount from the custodial
// pool to the policy holder. Repeated approvals are accepted and pay again.
func (u *InsuranceUseCase) ApproveClaim(ctx context.Context, caller common.Address, claimID uint64) (entities.Receipt, error) {
	log.Printf("[claim][usecase] approve start claim_id=%d caller=%s", claimID, caller.Hex())

	var (
		claim    entities.Claim
		transfer entities.Transfer
	)
	events, err := u.apply(ctx, "approve-claim", func(tx *ledger.Tx) error {
		var ok bool
		claim, ok = tx.Claim(claimID)
		if !ok {
			return ErrClaimNotFound
		}
		policy, ok := tx.Policy(claim.PolicyID)
		if !ok {
			return ErrPolicyNotFound
		}
		if !policy.IsActive {
			return ErrPolicyInactive
		}
		if claim.Amount > policy.CoverageAmount {
			return ErrClaimExceedsCoverage
		}

		claim.IsApproved = true
		if err := tx.PutClaim(claim); err != nil {
			return err
		}
		tx.Emit(entities.NewClaimApproved(claim.ID, claim.Amount))

		var err error
		transfer, err = tx.IssueTransfer(claim.ID, policy.Holder, claim.Amount)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrTransferFailed, err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[claim][usecase] approve failed claim_id=%d kind=%s err=%v", claimID, KindOf(err), err)
		return entities.Receipt{}, err
	}
	log.Printf("[claim][usecase] approve success claim_id=%d transfer_id=%s to=%s amount=%d", claim.ID, transfer.ID, transfer.To.Hex(), transfer.Amount)
	return entities.Receipt{Claim: &claim, Transfer: &transfer, Events: events}, nil
}

// RejectClaim clears the approval flag. It does not reverse a payout already
// issued by an earlier approval.
func (u *InsuranceUseCase) RejectClaim(ctx context.Context, caller common.Address, claimID uint64) (entities.Receipt, error) {
	log.Printf("[claim][usecase] reject start claim_id=%d caller=%s", claimID, caller.Hex())

	var claim entities.Claim
	events, err := u.apply(ctx, "reject-claim", func(tx *ledger.Tx) error {
		var ok bool
		claim, ok = tx.Claim(claimID)
		if !ok {
			return ErrClaimNotFound
		}
		claim.IsApproved = false
		if err := tx.PutClaim(claim); err != nil {
			return err
		}
		tx.Emit(entities.NewClaimRejected(claim.ID))
		return nil
	})
	if err != nil {
		log.Printf("[claim][usecase] reject failed claim_id=%d kind=%s err=%v", claimID, KindOf(err), err)
		return entities.Receipt{}, err
	}
	log.Printf("[claim][usecase] reject success claim_id=%d", claim.ID)
	return entities.Receipt{Claim: &claim, Events: events}, nil
}

func (u *InsuranceUseCase) GetPolicy(_ context.Context, id uint64) (entities.Policy, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	p, ok := u.state.Policy(id)
	if !ok {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *InsuranceUseCase) GetClaim(_ context.Context, id uint64) (entities.Claim, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	c, ok := u.state.Claim(id)
	if !ok {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *InsuranceUseCase) GetTokenBalance(_ context.Context, holder common.Address) (uint64, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state.TokenBalance(holder), nil
}

func (u *InsuranceUseCase) GetCustody(_ context.Context) (uint64, []entities.Transfer, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state.Custody(), u.state.Transfers(), nil
}

// reload replaces the in-memory state with the stored ledger after another
// writer moved it. Callers hold u.mu.
func (u *InsuranceUseCase) reload(ctx context.Context) {
	snap, err := u.repo.Load(ctx)
	if err != nil {
		log.Printf("[ledger][usecase] reload failed err=%v", err)
		return
	}
	u.state = ledger.Restore(snap)
	log.Printf("[ledger][usecase] reloaded seq=%d policies=%d claims=%d", snap.Sequence, snap.PolicyCount, snap.ClaimCount)
}

// apply runs stage on a fresh transaction and, if it succeeds, persists and
// commits the result. Operations are serialized by u.mu.
func (u *InsuranceUseCase) apply(ctx context.Context, op string, stage func(tx *ledger.Tx) error) ([]entities.Event, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := u.state.Begin()
	if err := stage(tx); err != nil {
		tx.Discard()
		return nil, err
	}

	cs, err := tx.Changes()
	if err != nil {
		tx.Discard()
		return nil, err
	}

	if u.repo != nil {
		if err := u.repo.Commit(ctx, cs); err != nil {
			tx.Discard()
			log.Printf("[ledger][usecase] persist failed op=%s seq=%d err=%v", op, cs.Sequence, err)
			if errors.Is(err, ledger.ErrStaleChangeSet) {
				u.reload(ctx)
			}
			return nil, fmt.Errorf("persist %s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		// The repository accepted a change set the in-memory state refused.
		log.Printf("[ledger][usecase] commit diverged from store op=%s seq=%d err=%v", op, cs.Sequence, err)
		return nil, fmt.Errorf("commit %s: %w", op, err)
	}
	log.Printf("[ledger][usecase] committed op=%s seq=%d events=%d", op, cs.Sequence, len(cs.Events))

	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, cs.Events); err != nil {
			log.Printf("[events][usecase] relay failed op=%s seq=%d err=%v", op, cs.Sequence, err)
		}
	}
	return cs.Events, nil
}
