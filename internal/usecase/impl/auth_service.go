package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cafe/internal/delivery/context"
	"cafe/internal/domain/entity"
	domainerrors "cafe/internal/domain/errors"
	"cafe/internal/domain/repository"
	"cafe/internal/domain/service"
	"cafe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	principalRepo repository.PrincipalRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	PrincipalRepo repository.PrincipalRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		principalRepo: params.PrincipalRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		logger:        params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the account in the role's namespace.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown role")
	}

	email := strings.TrimSpace(input.Email)
	srv.log(ctx).Info("Starting signup", slog.Any("role", input.Role), slog.String("email", email))

	_, err := srv.principalRepo.FindByEmail(ctx, input.Role, email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateEmail
	}
	if !errors.Is(err, repository.ErrPrincipalNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	principal := &entity.Principal{
		Role:         input.Role,
		FullName:     strings.TrimSpace(input.FullName),
		Email:        email,
		Mobile:       strings.TrimSpace(input.Mobile),
		PasswordHash: hash,
	}
	if err := srv.principalRepo.Create(ctx, principal); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrDuplicateEmail
		}

		return nil, errors.Wrapf(err, "failed to create %s", input.Role)
	}

	output := &usecase.SignupOutput{Profile: principal.Profile()}

	// Vendors are signed in straight away; users log in separately.
	if principal.Role == entity.RoleVendor {
		token, err := srv.issueToken(principal)
		if err != nil {
			return nil, err
		}
		output.Token = token
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("role", principal.Role), slog.Any("id", principal.ID))

	return output, nil
}

// Login checks the credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidation.WithDetails("unknown role")
	}

	email := strings.TrimSpace(input.Email)

	principal, err := srv.principalRepo.FindByEmail(ctx, input.Role, email)
	if errors.Is(err, repository.ErrPrincipalNotFound) {
		srv.log(ctx).Info("Login rejected: unknown email", slog.Any("role", input.Role))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	if !srv.hasher.Check(input.Password, principal.PasswordHash) {
		srv.log(ctx).Info("Login rejected: wrong password", slog.Any("role", input.Role), slog.Any("id", principal.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.issueToken(principal)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{Profile: principal.Profile(), Token: token}, nil
}

func (srv *authService) issueToken(principal *entity.Principal) (string, error) {
	token, err := srv.tokenService.Issue(service.TokenClaims{
		SubjectID: principal.ID,
		Email:     principal.Email,
		Role:      principal.Role,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to issue token")
	}

	return token, nil
}
