package bulletinservice

import (
	"log/slog"

	httpadapter "agora/contexts/civic-communication/bulletin-service/adapters/http"
	"agora/contexts/civic-communication/bulletin-service/adapters/memory"
	"agora/contexts/civic-communication/bulletin-service/application/commands"
	"agora/contexts/civic-communication/bulletin-service/application/queries"
	"agora/contexts/civic-communication/bulletin-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Announcements ports.AnnouncementRepository
	Tasks         ports.TaskRepository
	Clock         ports.Clock
	Logger        *slog.Logger
}

func NewModule(deps Dependencies) Module {
	commandUseCase := commands.BulletinUseCase{
		Announcements: deps.Announcements,
		Tasks:         deps.Tasks,
		Clock:         deps.Clock,
		Logger:        deps.Logger,
	}
	queryUseCase := queries.BulletinUseCase{
		Announcements: deps.Announcements,
		Tasks:         deps.Tasks,
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
		Announcements: store,
		Tasks:         store,
		Clock:         store,
		Logger:        logger,
	})
	module.Store = store
	return module
}
