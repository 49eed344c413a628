package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"carbody_insurance/internal/adapter/persistence/repository"
	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/ledger"
	mock_interfaces "carbody_insurance/internal/usecase/interfaces/mocks"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/mock/gomock"
)

var (
	holderH  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	outsider = common.HexToAddress("0x2222222222222222222222222222222222222222")
	adjuster = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func newTestUseCase() (*InsuranceUseCase, *ledger.State) {
	state := ledger.New()
	return NewInsuranceUseCase(state, repository.NewLedgerMemoryRepository(), nil, nil), state
}

func policyInput(premium, coverage uint64) entities.PolicyInput {
	return entities.PolicyInput{
		PolicyholderName:      "Sara Ahmadi",
		NationalCode:          "0012345678",
		InsurancePolicyNumber: "CB-1402-0001",
		VehicleType:           "sedan",
		VehicleValue:          900000,
		Premium:               premium,
		CoverageAmount:        coverage,
	}
}

// fund credits the custodial pool directly, bypassing the payment gateway.
func fund(t *testing.T, u *InsuranceUseCase, amount uint64) {
	t.Helper()
	_, err := u.apply(context.Background(), "test-fund", func(tx *ledger.Tx) error {
		if err := tx.CreditCustody(amount); err != nil {
			return err
		}
		tx.Emit(entities.NewCustodyFunded(adjuster, amount))
		return nil
	})
	if err != nil {
		t.Fatalf("fund custody: %v", err)
	}
}

func kinds(events []entities.Event) []entities.EventKind {
	out := make([]entities.EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func TestInsuranceUseCase_CreatePolicy(t *testing.T) {
	t.Run("assigns dense ids in call order", func(t *testing.T) {
		u, _ := newTestUseCase()
		for want := uint64(1); want <= 5; want++ {
			r, err := u.CreatePolicy(context.Background(), holderH, policyInput(want*10, 1000))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Policy.ID != want {
				t.Fatalf("expected policy id %d, got %d", want, r.Policy.ID)
			}
		}
	})

	t.Run("credits tokens and emits events in order", func(t *testing.T) {
		u, _ := newTestUseCase()
		r, err := u.CreatePolicy(context.Background(), holderH, policyInput(1500, 10000))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Policy.IsActive || r.Policy.Holder != holderH {
			t.Fatalf("unexpected policy: %+v", r.Policy)
		}
		got := kinds(r.Events)
		if len(got) != 2 || got[0] != entities.EventTokensAssigned || got[1] != entities.EventPolicyCreated {
			t.Fatalf("unexpected event order: %v", got)
		}
		if r.Events[0].Amount != 15 || *r.Events[0].Holder != holderH {
			t.Fatalf("unexpected TokensAssigned: %+v", r.Events[0])
		}
		pc := r.Events[1]
		if pc.PolicyID != 1 || pc.Premium != 1500 || pc.CoverageAmount != 10000 {
			t.Fatalf("unexpected PolicyCreated: %+v", pc)
		}
		if pc.Sequence != r.Events[0].Sequence+1 {
			t.Fatalf("expected consecutive sequences, got %d then %d", r.Events[0].Sequence, pc.Sequence)
		}
	})

	t.Run("token balance is the sum of floored premiums", func(t *testing.T) {
		u, _ := newTestUseCase()
		premiums := []uint64{1500, 99, 250, 0, 100}
		var want uint64
		for _, p := range premiums {
			want += p / 100
			if _, err := u.CreatePolicy(context.Background(), holderH, policyInput(p, 1)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		if _, err := u.CreatePolicy(context.Background(), outsider, policyInput(700, 1)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := u.GetTokenBalance(context.Background(), holderH)
		if got != want {
			t.Fatalf("expected balance %d, got %d", want, got)
		}
		other, _ := u.GetTokenBalance(context.Background(), outsider)
		if other != 7 {
			t.Fatalf("expected balance 7, got %d", other)
		}
	})

	t.Run("token overflow rejects without effect", func(t *testing.T) {
		u, state := newTestUseCase()
		big := policyInput(^uint64(0), 1)
		for i := 0; i < 100; i++ {
			if _, err := u.CreatePolicy(context.Background(), holderH, big); err != nil {
				t.Fatalf("unexpected error at %d: %v", i, err)
			}
		}
		before := state.Snapshot()

		_, err := u.CreatePolicy(context.Background(), holderH, big)
		if !errors.Is(err, ErrArithmeticOverflow) {
			t.Fatalf("expected ErrArithmeticOverflow, got %v", err)
		}
		if KindOf(err) != FailureInvariant {
			t.Fatalf("expected invariant kind, got %s", KindOf(err))
		}
		if state.PolicyCount() != before.PolicyCount || state.Sequence() != before.Sequence {
			t.Fatalf("state changed after rejected create")
		}
	})
}

func TestInsuranceUseCase_SubmitClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("policy not found", func(t *testing.T) {
		u, state := newTestUseCase()
		_, err := u.SubmitClaim(ctx, holderH, 1, 10)
		if !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
		if state.ClaimCount() != 0 {
			t.Fatalf("claim id consumed on failure")
		}
	})

	t.Run("caller is not the holder", func(t *testing.T) {
		u, state := newTestUseCase()
		if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := u.SubmitClaim(ctx, outsider, 1, 10)
		if !errors.Is(err, ErrNotPolicyHolder) {
			t.Fatalf("expected ErrNotPolicyHolder, got %v", err)
		}
		if KindOf(err) != FailureUnauthorized {
			t.Fatalf("expected unauthorized kind, got %s", KindOf(err))
		}
		if state.ClaimCount() != 0 {
			t.Fatalf("claim id consumed on failure")
		}
	})

	t.Run("inactive policy", func(t *testing.T) {
		state := ledger.New()
		tx := state.Begin()
		id := tx.NextPolicyID()
		if err := tx.PutPolicy(entities.Policy{ID: id, Holder: holderH, IsActive: false}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		u := NewInsuranceUseCase(state, nil, nil, nil)

		_, err := u.SubmitClaim(ctx, holderH, id, 10)
		if !errors.Is(err, ErrPolicyInactive) {
			t.Fatalf("expected ErrPolicyInactive, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		u, _ := newTestUseCase()
		if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r, err := u.SubmitClaim(ctx, holderH, 1, 5000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Claim.ID != 1 || r.Claim.IsApproved || r.Claim.Amount != 5000 {
			t.Fatalf("unexpected claim: %+v", r.Claim)
		}
		if len(r.Events) != 1 || r.Events[0].Kind != entities.EventClaimSubmitted || r.Events[0].PolicyID != 1 {
			t.Fatalf("unexpected events: %+v", r.Events)
		}
	})
}

func TestInsuranceUseCase_ClaimLifecycleScenario(t *testing.T) {
	ctx := context.Background()
	u, state := newTestUseCase()
	fund(t, u, 8000)

	created, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Policy.ID != 1 || !created.Policy.IsActive {
		t.Fatalf("unexpected policy: %+v", created.Policy)
	}
	if bal, _ := u.GetTokenBalance(ctx, holderH); bal != 15 {
		t.Fatalf("expected 15 tokens, got %d", bal)
	}

	submitted, err := u.SubmitClaim(ctx, holderH, 1, 5000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if submitted.Claim.ID != 1 || submitted.Claim.IsApproved {
		t.Fatalf("unexpected claim: %+v", submitted.Claim)
	}

	approved, err := u.ApproveClaim(ctx, adjuster, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approved.Claim.IsApproved {
		t.Fatalf("expected approved claim")
	}
	if approved.Transfer == nil || approved.Transfer.To != holderH || approved.Transfer.Amount != 5000 {
		t.Fatalf("unexpected transfer: %+v", approved.Transfer)
	}
	if len(approved.Events) != 1 || approved.Events[0].Kind != entities.EventClaimApproved || approved.Events[0].Amount != 5000 {
		t.Fatalf("unexpected events: %+v", approved.Events)
	}
	if state.Custody() != 3000 {
		t.Fatalf("expected custody 3000, got %d", state.Custody())
	}

	rejected, err := u.RejectClaim(ctx, adjuster, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rejected.Claim.IsApproved {
		t.Fatalf("expected rejected claim")
	}
	c, err := u.GetClaim(ctx, 1)
	if err != nil || c.IsApproved {
		t.Fatalf("unexpected claim after reject: %+v err=%v", c, err)
	}
	custody, transfers, _ := u.GetCustody(ctx)
	if custody != 3000 || len(transfers) != 1 {
		t.Fatalf("reject must not reverse the payout: custody=%d transfers=%d", custody, len(transfers))
	}
}

func TestInsuranceUseCase_ApproveClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("claim not found", func(t *testing.T) {
		u, _ := newTestUseCase()
		_, err := u.ApproveClaim(ctx, adjuster, 42)
		if !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("amount exceeds coverage", func(t *testing.T) {
		u, state := newTestUseCase()
		fund(t, u, 50000)
		if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := u.SubmitClaim(ctx, holderH, 1, 20000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seq := state.Sequence()

		_, err := u.ApproveClaim(ctx, adjuster, 1)
		if !errors.Is(err, ErrClaimExceedsCoverage) {
			t.Fatalf("expected ErrClaimExceedsCoverage, got %v", err)
		}
		if KindOf(err) != FailureInvariant {
			t.Fatalf("expected invariant kind, got %s", KindOf(err))
		}
		c, _ := u.GetClaim(ctx, 1)
		if c.IsApproved {
			t.Fatalf("claim must stay unapproved")
		}
		if state.Custody() != 50000 || len(state.Transfers()) != 0 || state.Sequence() != seq {
			t.Fatalf("rejected approval had effects")
		}
	})

	t.Run("inactive policy", func(t *testing.T) {
		u, state := newTestUseCase()
		fund(t, u, 1000)

		tx := state.Begin()
		policyID := tx.NextPolicyID()
		if err := tx.PutPolicy(entities.Policy{ID: policyID, Holder: holderH, PolicyInput: policyInput(1500, 10000), IsActive: false}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		claimID := tx.NextClaimID()
		if err := tx.PutClaim(entities.Claim{ID: claimID, PolicyID: policyID, Amount: 500}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tx.Commit(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seq := state.Sequence()

		_, err := u.ApproveClaim(ctx, adjuster, claimID)
		if !errors.Is(err, ErrPolicyInactive) {
			t.Fatalf("expected ErrPolicyInactive, got %v", err)
		}
		if KindOf(err) != FailureInvariant {
			t.Fatalf("expected invariant kind, got %s", KindOf(err))
		}
		c, _ := u.GetClaim(ctx, claimID)
		if c.IsApproved {
			t.Fatalf("claim must stay unapproved")
		}
		if state.Custody() != 1000 || len(state.Transfers()) != 0 || state.Sequence() != seq {
			t.Fatalf("rejected approval had effects")
		}
	})

	t.Run("underfunded custody fails the transfer and the approval", func(t *testing.T) {
		u, state := newTestUseCase()
		fund(t, u, 100)
		if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := u.SubmitClaim(ctx, holderH, 1, 5000); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := u.ApproveClaim(ctx, adjuster, 1)
		if !errors.Is(err, ErrTransferFailed) || !errors.Is(err, ledger.ErrInsufficientCustody) {
			t.Fatalf("expected ErrTransferFailed, got %v", err)
		}
		c, _ := u.GetClaim(ctx, 1)
		if c.IsApproved {
			t.Fatalf("approval recorded without transfer")
		}
		if state.Custody() != 100 {
			t.Fatalf("custody changed: %d", state.Custody())
		}
	})

	t.Run("repeated approval pays again", func(t *testing.T) {
		u, state := newTestUseCase()
		fund(t, u, 1000)
		if _, err := u.CreatePolicy(ctx, holderH, policyInput(0, 500)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := u.SubmitClaim(ctx, holderH, 1, 400); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < 2; i++ {
			r, err := u.ApproveClaim(ctx, adjuster, 1)
			if err != nil {
				t.Fatalf("approval %d: %v", i, err)
			}
			if len(r.Events) != 1 {
				t.Fatalf("expected one event per approval")
			}
		}
		if len(state.Transfers()) != 2 || state.Custody() != 200 {
			t.Fatalf("expected two payouts, got transfers=%d custody=%d", len(state.Transfers()), state.Custody())
		}

		_, err := u.ApproveClaim(ctx, adjuster, 1)
		if !errors.Is(err, ErrTransferFailed) {
			t.Fatalf("expected third approval to fail on custody, got %v", err)
		}
	})
}

func TestInsuranceUseCase_RejectClaim(t *testing.T) {
	u, _ := newTestUseCase()
	_, err := u.RejectClaim(context.Background(), adjuster, 1)
	if !errors.Is(err, ErrClaimNotFound) {
		t.Fatalf("expected ErrClaimNotFound, got %v", err)
	}
}

func TestInsuranceUseCase_Reads(t *testing.T) {
	u, _ := newTestUseCase()
	ctx := context.Background()

	if _, err := u.GetPolicy(ctx, 1); !errors.Is(err, ErrPolicyNotFound) {
		t.Fatalf("expected ErrPolicyNotFound, got %v", err)
	}
	if _, err := u.GetClaim(ctx, 1); !errors.Is(err, ErrClaimNotFound) {
		t.Fatalf("expected ErrClaimNotFound, got %v", err)
	}
	if bal, err := u.GetTokenBalance(ctx, outsider); err != nil || bal != 0 {
		t.Fatalf("expected zero balance, got %d err=%v", bal, err)
	}

	if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := u.GetPolicy(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PolicyholderName != "Sara Ahmadi" || p.CoverageAmount != 10000 {
		t.Fatalf("descriptive fields not stored verbatim: %+v", p)
	}
}

func TestInsuranceUseCase_Persistence(t *testing.T) {
	ctx := context.Background()

	t.Run("repository failure leaves state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		state := ledger.New()
		u := NewInsuranceUseCase(state, repo, publisher, nil)

		repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(errors.New("dynamodb unavailable"))

		_, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000))
		if err == nil {
			t.Fatalf("expected error")
		}
		if state.PolicyCount() != 0 || state.TokenBalance(holderH) != 0 || state.Sequence() != 0 {
			t.Fatalf("state changed after failed persist")
		}
	})

	t.Run("committed events are relayed in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		u := NewInsuranceUseCase(ledger.New(), repo, publisher, nil)

		var persisted ledger.ChangeSet
		gomock.InOrder(
			repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cs ledger.ChangeSet) error {
				persisted = cs
				return nil
			}),
			publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, events []entities.Event) error {
				got := kinds(events)
				if len(got) != 2 || got[0] != entities.EventTokensAssigned || got[1] != entities.EventPolicyCreated {
					t.Fatalf("unexpected relayed events: %v", got)
				}
				return nil
			}),
		)

		if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.PrevSequence != 0 || persisted.Sequence != 2 || persisted.PolicyCount != 1 || len(persisted.Tokens) != 1 {
			t.Fatalf("unexpected change set: %+v", persisted)
		}
	})

	t.Run("stale change set reloads the stored ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		u := NewInsuranceUseCase(ledger.New(), repo, nil, nil)

		stored := ledger.Snapshot{
			PolicyCount: 1,
			Sequence:    2,
			Policies:    []entities.Policy{{ID: 1, Holder: outsider, PolicyInput: policyInput(1500, 10000), IsActive: true}},
			Tokens:      []ledger.TokenBalance{{Holder: outsider, Balance: 15}},
		}
		gomock.InOrder(
			repo.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: conditional check failed", ledger.ErrStaleChangeSet)),
			repo.EXPECT().Load(gomock.Any()).Return(stored, nil),
			repo.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, cs ledger.ChangeSet) error {
				if cs.PrevSequence != 2 || cs.PolicyCount != 2 {
					t.Fatalf("retry not staged on the reloaded ledger: %+v", cs)
				}
				return nil
			}),
		)

		_, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000))
		if !errors.Is(err, ledger.ErrStaleChangeSet) {
			t.Fatalf("expected ErrStaleChangeSet, got %v", err)
		}
		if p, err := u.GetPolicy(ctx, 1); err != nil || p.Holder != outsider {
			t.Fatalf("expected reloaded policy, got %+v err=%v", p, err)
		}

		r, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000))
		if err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		if r.Policy.ID != 2 {
			t.Fatalf("expected policy id 2, got %d", r.Policy.ID)
		}
	})

	t.Run("failed validation never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILedgerRepository(ctrl)
		u := NewInsuranceUseCase(ledger.New(), repo, nil, nil)

		if _, err := u.SubmitClaim(ctx, holderH, 7, 1); !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("relay failure does not undo the commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
		state := ledger.New()
		u := NewInsuranceUseCase(state, nil, publisher, nil)

		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

		if _, err := u.CreatePolicy(ctx, holderH, policyInput(1500, 10000)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.PolicyCount() != 1 {
			t.Fatalf("expected committed policy")
		}
	})
}
