package messaging

import (
	"context"
	"log"

	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/usecase/interfaces"
)

// LogPublisher writes events to the process log. Used when no NATS_URL is set.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, events []entities.Event) error {
	for _, e := range events {
		log.Printf("[events][log] seq=%d kind=%s id=%s policy_id=%d claim_id=%d amount=%d", e.Sequence, e.Kind, e.ID, e.PolicyID, e.ClaimID, e.Amount)
	}
	return nil
}
