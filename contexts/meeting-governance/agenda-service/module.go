package agendaservice

import (
	"log/slog"

	httpadapter "agora/contexts/meeting-governance/agenda-service/adapters/http"
	"agora/contexts/meeting-governance/agenda-service/adapters/memory"
	"agora/contexts/meeting-governance/agenda-service/application/commands"
	"agora/contexts/meeting-governance/agenda-service/application/queries"
	"agora/contexts/meeting-governance/agenda-service/domain/entities"
	"agora/contexts/meeting-governance/agenda-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Agenda   ports.AgendaRepository
	Comments ports.CommentRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	commandUseCase := commands.AgendaUseCase{
		Agenda:   deps.Agenda,
		Comments: deps.Comments,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	queryUseCase := queries.AgendaUseCase{
		Agenda:   deps.Agenda,
		Comments: deps.Comments,
	}
	return Module{
		Handler: httpadapter.Handler{
			Commands: commandUseCase,
			Queries:  queryUseCase,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.AgendaItem, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Agenda:   store,
		Comments: store,
		Clock:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
