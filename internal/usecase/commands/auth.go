package commands

import (
	"context"
	"time"

	"membership-portal/internal/domain/member"
	reqdto "membership-portal/internal/handler/dto/request"
	"membership-portal/internal/infra"
	"membership-portal/internal/pkg/errs"
	"membership-portal/internal/pkg/jwt"
	"membership-portal/internal/pkg/password"
	"membership-portal/internal/usecase/queries"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrMemberNotApproved  = errs.New("member not approved")
)

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Member      *queries.MemberView
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	memberReadStore queries.MemberReadStore
	jwtService      *jwt.Service
	tokenDuration   time.Duration
}

func NewAuthCommands(memberReadStore queries.MemberReadStore, jwtService *jwt.Service, tokenDuration time.Duration) AuthCommands {
	return &authCommandsImpl{
		memberReadStore: memberReadStore,
		jwtService:      jwtService,
		tokenDuration:   tokenDuration,
	}
}

// Login resolves to the same ErrInvalidCredentials whether the username is
// unknown or the password is wrong, so responses do not confirm usernames.
func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	view, hash, err := a.memberReadStore.FindByUsername(ctx, req.Username)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsApproved {
		return nil, ErrMemberNotApproved
	}

	role := member.RoleMember
	if view.IsAdmin {
		role = member.RoleAdmin
	}

	accessToken, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign access token")
	}

	return &LoginResult{
		AccessToken: accessToken,
		ExpiresAt:   time.Now().Add(a.tokenDuration),
		Member:      view,
	}, nil
}
