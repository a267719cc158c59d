package votingservice

import (
	"log/slog"

	httpadapter "agora/contexts/meeting-governance/voting-service/adapters/http"
	"agora/contexts/meeting-governance/voting-service/adapters/memory"
	"agora/contexts/meeting-governance/voting-service/application/commands"
	"agora/contexts/meeting-governance/voting-service/application/queries"
	"agora/contexts/meeting-governance/voting-service/application/workers"
	"agora/contexts/meeting-governance/voting-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Relay   workers.OutboxRelay
	Store   *memory.Store
}

type Dependencies struct {
	Ballots   ports.BallotRepository
	Results   ports.ResultRepository
	Outbox    ports.OutboxWriter
	OutboxLog ports.OutboxRepository
	Publisher ports.EventPublisher
	Clock     ports.Clock
	IDs       ports.IDGenerator
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	commandUseCase := commands.VoteUseCase{
		Ballots: deps.Ballots,
		Results: deps.Results,
		Outbox:  deps.Outbox,
		Clock:   deps.Clock,
		IDs:     deps.IDs,
		Logger:  deps.Logger,
	}
	queryUseCase := queries.VoteUseCase{
		Ballots: deps.Ballots,
		Results: deps.Results,
	}
	return Module{
		Handler: httpadapter.Handler{
			Commands: commandUseCase,
			Queries:  queryUseCase,
			Logger:   deps.Logger,
		},
		Relay: workers.OutboxRelay{
			Outbox:    deps.OutboxLog,
			Publisher: deps.Publisher,
			Clock:     deps.Clock,
			Logger:    deps.Logger,
		},
	}
}

func NewInMemoryModule(publisher ports.EventPublisher, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Ballots:   store,
		Results:   store,
		Outbox:    store,
		OutboxLog: store,
		Publisher: publisher,
		Clock:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
