package interfaces

import (
	"context"

	"carbody_insurance/internal/ledger"
)

// ILedgerRepository abstracts durable storage of the ledger.
//
// Commit must apply a whole change set or nothing, and must refuse a change
// set whose PrevSequence is not the stored sequence. Load returns the image
// used to rebuild the in-memory State at startup.

type ILedgerRepository interface {
	Load(ctx context.Context) (ledger.Snapshot, error)
	Commit(ctx context.Context, cs ledger.ChangeSet) error
}
