package components

import (
	"boat-quotes/internal/infra/draftstore"
	"boat-quotes/internal/infra/repository"
	"boat-quotes/internal/pkg/config"
	"boat-quotes/internal/usecase/commands"
	"boat-quotes/internal/usecase/queries"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewInquiryRepository,
			fx.As(new(commands.InquiryRepository)),
		),
		fx.Annotate(
			repository.NewInquiryReadStore,
			fx.As(new(queries.InquiryReadStore)),
		),
		fx.Annotate(
			NewDraftStore,
			fx.As(new(commands.DraftStore)),
			fx.As(new(queries.DraftReader)),
		),
	),
)

func NewDraftStore(client *goredis.Client, cfg config.Config) *draftstore.DraftStore {
	return draftstore.NewDraftStore(client, cfg.Drafts.Retention)
}
