package workers

import (
	"context"
	"testing"

	"agora/contexts/meeting-governance/voting-service/adapters/memory"
	"agora/contexts/meeting-governance/voting-service/application/commands"
	"agora/contexts/meeting-governance/voting-service/domain/entities"
	"agora/contexts/meeting-governance/voting-service/ports"
	"agora/internal/shared/events"
)

type capturingPublisher struct {
	topics    []string
	envelopes []events.Envelope
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, envelope events.Envelope) error {
	p.topics = append(p.topics, topic)
	p.envelopes = append(p.envelopes, envelope)
	return nil
}

func TestRunOncePublishesPendingAndMarksThem(t *testing.T) {
	store := memory.NewStore()
	store.SetMeeting(ports.MeetingProjection{MeetingID: 1, Status: "in_progress"})
	store.SetAgendaItem(ports.AgendaItemProjection{ItemID: 7, MeetingID: 1})
	ctx := context.Background()

	uc := commands.VoteUseCase{Ballots: store, Results: store, Outbox: store, Clock: store}
	if _, err := uc.RecordVoteResult(ctx, commands.RecordVoteResultCommand{
		AgendaItemID: 7,
		VotesFor:     5,
		VotesAgainst: 2,
		VotesAbstain: 1,
		TotalVotes:   8,
		Result:       entities.OutcomeApproved,
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay run: %v", err)
	}

	if len(publisher.topics) != 1 {
		t.Fatalf("expected one published event, got %d", len(publisher.topics))
	}
	if publisher.topics[0] != "vote_result.recorded" {
		t.Fatalf("unexpected topic %q", publisher.topics[0])
	}
	if publisher.envelopes[0].EntityID != "7" {
		t.Fatalf("unexpected entity id %q", publisher.envelopes[0].EntityID)
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list outbox: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected drained outbox, got %d pending rows", len(pending))
	}
}

func TestRunOnceNoPendingIsANoop(t *testing.T) {
	store := memory.NewStore()
	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run: %v", err)
	}
	if len(publisher.topics) != 0 {
		t.Fatalf("expected no publishes, got %d", len(publisher.topics))
	}
}
