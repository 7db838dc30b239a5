package components

import (
	"membership-portal/internal/infra/readstore"
	repo_impl "membership-portal/internal/infra/repository"
	"membership-portal/internal/usecase/commands"
	"membership-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewMemberRepository,
			fx.As(new(commands.MemberWriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewDuesRepository,
			fx.As(new(commands.DuesRepository)),
			fx.As(new(commands.DuesLedgerRepository)),
		),
		fx.Annotate(
			repo_impl.NewCampaignRepository,
			fx.As(new(commands.CampaignRepository)),
			fx.As(new(commands.CampaignWriteRepository)),
		),
		fx.Annotate(
			repo_impl.NewTokenRepository,
			fx.As(new(commands.TokenRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberReadStore)),
		),
		fx.Annotate(
			readstore.NewDuesReadStore,
			fx.As(new(queries.DuesReadStore)),
		),
		fx.Annotate(
			readstore.NewCampaignReadStore,
			fx.As(new(queries.CampaignReadStore)),
		),
	),
)
