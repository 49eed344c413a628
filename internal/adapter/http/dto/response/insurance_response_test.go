package response

import (
	"testing"

	"carbody_insurance/internal/domain/entities"

	"github.com/ethereum/go-ethereum/common"
)

var holder = common.HexToAddress("0x1111111111111111111111111111111111111111")

func TestFromReceipt(t *testing.T) {
	t.Run("policy receipt", func(t *testing.T) {
		p := entities.Policy{ID: 1, Holder: holder, IsActive: true, PolicyInput: entities.PolicyInput{Premium: 1500, CoverageAmount: 10000}}
		out := FromReceipt(entities.Receipt{Policy: &p})

		if out.Policy == nil || out.Policy.PolicyID != 1 || out.Policy.Holder != holder.Hex() || out.Policy.Premium != 1500 {
			t.Fatalf("unexpected policy: %+v", out.Policy)
		}
		if out.Claim != nil || out.Transfer != nil {
			t.Fatalf("unexpected extra sections: %+v", out)
		}
		if out.Events == nil {
			t.Fatalf("expected empty events slice, got nil")
		}
	})

	t.Run("approval receipt", func(t *testing.T) {
		c := entities.Claim{ID: 2, PolicyID: 1, Amount: 500, IsApproved: true}
		tr := entities.Transfer{ID: "t-1", ClaimID: 2, To: holder, Amount: 500, Sequence: 7}
		ev := []entities.Event{entities.NewClaimApproved(2, 500)}
		out := FromReceipt(entities.Receipt{Claim: &c, Transfer: &tr, Events: ev})

		if out.Claim == nil || out.Claim.ClaimID != 2 || !out.Claim.IsApproved {
			t.Fatalf("unexpected claim: %+v", out.Claim)
		}
		if out.Transfer == nil || out.Transfer.To != holder.Hex() || out.Transfer.Amount != 500 {
			t.Fatalf("unexpected transfer: %+v", out.Transfer)
		}
		if len(out.Events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(out.Events))
		}
	})
}

func TestFromCustody(t *testing.T) {
	out := FromCustody(3000, nil)
	if out.Balance != 3000 || out.Transfers == nil || len(out.Transfers) != 0 {
		t.Fatalf("unexpected custody: %+v", out)
	}

	out = FromCustody(0, []entities.Transfer{{ID: "t-1", ClaimID: 1, To: holder, Amount: 10, Sequence: 3}})
	if len(out.Transfers) != 1 || out.Transfers[0].TransferID != "t-1" {
		t.Fatalf("unexpected transfers: %+v", out.Transfers)
	}
}
