package meetingservice

import (
	"log/slog"

	httpadapter "agora/contexts/meeting-governance/meeting-service/adapters/http"
	"agora/contexts/meeting-governance/meeting-service/adapters/memory"
	"agora/contexts/meeting-governance/meeting-service/application/commands"
	"agora/contexts/meeting-governance/meeting-service/application/queries"
	"agora/contexts/meeting-governance/meeting-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Committees ports.CommitteeRepository
	Meetings   ports.MeetingRepository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	commandUseCase := commands.MeetingUseCase{
		Committees: deps.Committees,
		Meetings:   deps.Meetings,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	queryUseCase := queries.MeetingUseCase{
		Committees: deps.Committees,
		Meetings:   deps.Meetings,
	}
	return Module{
		Handler: httpadapter.Handler{
			Commands: commandUseCase,
			Queries:  queryUseCase,
			Logger:   deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Committees: store,
		Meetings:   store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
