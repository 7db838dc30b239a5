package components

import (
	"time"

	"membership-portal/internal/pkg/clock"
	"membership-portal/internal/pkg/config"
	"membership-portal/internal/pkg/jwt"
	"membership-portal/internal/usecase"
	"membership-portal/internal/usecase/commands"
	"membership-portal/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewMemberCommands,
		commands.NewDuesCommands,
		commands.NewCampaignCommands,
		NewRedemptionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMemberQueries,
		queries.NewDuesQueries,
		queries.NewCampaignQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(memberReadStore queries.MemberReadStore, jwtService *jwt.Service, cfg config.Config) commands.AuthCommands {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}
	return commands.NewAuthCommands(memberReadStore, jwtService, tokenDuration)
}

func NewRedemptionCommands(
	campaignRepo commands.CampaignRepository,
	tokenRepo commands.TokenRepository,
	duesRepo commands.DuesRepository,
	memberReadStore queries.MemberReadStore,
	clk clock.Clock,
	cfg config.Config,
) commands.RedemptionCommands {
	return commands.NewRedemptionCommands(campaignRepo, tokenRepo, duesRepo, memberReadStore, clk, cfg.Redemption.TokenTTL)
}
