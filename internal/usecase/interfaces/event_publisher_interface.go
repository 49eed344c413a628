package interfaces

import (
	"context"

	"carbody_insurance/internal/domain/entities"
)

// IEventPublisher relays committed ledger events, in order, to subscribers.
type IEventPublisher interface {
	Publish(ctx context.Context, events []entities.Event) error
}
